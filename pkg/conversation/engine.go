package conversation

import (
	"context"
	"strings"

	"studybot-be/internal/entity"
)

// QuestionSource is the read side of the question bank the engine depends on.
// A nil question signals end of sequence, not an error.
type QuestionSource interface {
	FindByTopicAt(ctx context.Context, topic string, index int) (*entity.Question, error)
}

// Engine owns the conversation state machine. Advance is a pure transition
// over its inputs: it never persists the session or delivers the reply, and it
// returns the next session by value so callers decide what to commit.
type Engine struct {
	questions QuestionSource
}

func NewEngine(questions QuestionSource) *Engine {
	return &Engine{questions: questions}
}

// Advance computes (next session, reply) for one inbound message. The only
// error source is the question bank; user input never produces an error, it
// produces a corrective prompt with the session unchanged.
func (e *Engine) Advance(ctx context.Context, session entity.ConversationSession, rawText string) (entity.ConversationSession, OutgoingMessage, error) {
	text := strings.ToLower(strings.TrimSpace(rawText))

	switch session.State {
	case StateTopicSelection:
		return e.handleTopicSelection(ctx, session, text)
	case StateQuestionMode:
		return e.handleAnswer(ctx, session, text)
	case StateMenu:
		return e.handleMenu(session, text)
	default:
		// StateInitial and anything unrecognized: greet and move on.
		session.State = StateTopicSelection
		return session, WelcomeMessage(), nil
	}
}

func (e *Engine) handleTopicSelection(ctx context.Context, session entity.ConversationSession, text string) (entity.ConversationSession, OutgoingMessage, error) {
	if !IsKnownTopic(text) {
		return session, TextMessage(invalidTopicText), nil
	}

	first, err := e.questions.FindByTopicAt(ctx, text, 0)
	if err != nil {
		return session, OutgoingMessage{}, err
	}
	if first == nil {
		return session, TextMessage(emptyTopicText), nil
	}

	session.SelectedTopic = text
	session.State = StateQuestionMode
	session.CurrentQuestionIndex = 0
	session.Score = 0
	return session, TextMessage(topicIntro(text, first)), nil
}

func (e *Engine) handleAnswer(ctx context.Context, session entity.ConversationSession, text string) (entity.ConversationSession, OutgoingMessage, error) {
	if text != "a" && text != "b" && text != "c" && text != "d" {
		return session, TextMessage(answerFormatText), nil
	}

	current, err := e.questions.FindByTopicAt(ctx, session.SelectedTopic, session.CurrentQuestionIndex)
	if err != nil {
		return session, OutgoingMessage{}, err
	}
	if current == nil {
		// Bank shrank under us; close out the run.
		session.State = StateMenu
		return session, TextMessage(strings.TrimSpace(quizCompleteSuffix(session.Score, session.CurrentQuestionIndex))), nil
	}

	correct := text == strings.ToLower(current.CorrectAnswer)
	if correct {
		session.Score++
	}
	session.CurrentQuestionIndex++

	body := answerFeedback(correct, current.CorrectAnswer, current.Explanation)

	next, err := e.questions.FindByTopicAt(ctx, session.SelectedTopic, session.CurrentQuestionIndex)
	if err != nil {
		return session, OutgoingMessage{}, err
	}
	if next != nil {
		body += nextQuestionSuffix(next)
	} else {
		body += quizCompleteSuffix(session.Score, session.CurrentQuestionIndex)
		session.State = StateMenu
	}
	return session, TextMessage(body), nil
}

func (e *Engine) handleMenu(session entity.ConversationSession, text string) (entity.ConversationSession, OutgoingMessage, error) {
	switch text {
	case "menu", "restart":
		session.SelectedTopic = ""
		session.CurrentQuestionIndex = 0
		session.Score = 0
		session.State = StateTopicSelection
		return session, WelcomeMessage(), nil
	default:
		return session, TextMessage(menuReminderText), nil
	}
}
