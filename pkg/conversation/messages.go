package conversation

import (
	"fmt"
	"strings"

	"studybot-be/internal/entity"
)

const (
	welcomeText      = "🎓 Welcome to StudyBot! I'm here to help you practice with questions on various topics. Choose a subject to get started:"
	invalidTopicText = "Please select a valid topic by clicking one of the buttons above."
	emptyTopicText   = "Sorry, there are no questions for that topic yet. Please choose another one."
	answerFormatText = "Please reply with A, B, C, or D to answer the question."
	menuReminderText = "Type 'menu' to choose another topic or 'restart' to start over."
)

// WelcomeMessage is the choice prompt listing all quiz topics.
func WelcomeMessage() OutgoingMessage {
	options := make([]ChoiceOption, len(Topics))
	for i, t := range Topics {
		options[i] = ChoiceOption{Id: t.Tag, Label: t.Label}
	}
	return ChoiceMessage(welcomeText, options)
}

// renderQuestion is the fixed question shape: text, four lettered options and
// the reply instruction. Reused for the first question and every follow-up.
func renderQuestion(q *entity.Question) string {
	return fmt.Sprintf("%s\n\nA) %s\nB) %s\nC) %s\nD) %s\n\nReply with A, B, C, or D",
		q.Question, q.OptionA, q.OptionB, q.OptionC, q.OptionD)
}

func topicIntro(topic string, q *entity.Question) string {
	return fmt.Sprintf("Great choice! Let's start with %s questions.\n\n%s",
		strings.ToUpper(topic), renderQuestion(q))
}

func answerFeedback(correct bool, correctAnswer, explanation string) string {
	var b strings.Builder
	if correct {
		b.WriteString("✅ Correct!")
	} else {
		fmt.Fprintf(&b, "❌ Incorrect. The correct answer is %s.", strings.ToUpper(correctAnswer))
	}
	fmt.Fprintf(&b, "\n\nExplanation: %s", explanation)
	return b.String()
}

func nextQuestionSuffix(q *entity.Question) string {
	return fmt.Sprintf("\n\n--- Next Question ---\n\n%s", renderQuestion(q))
}

func quizCompleteSuffix(score, answered int) string {
	return fmt.Sprintf("\n\n🎉 Quiz Complete!\nYour score: %d/%d\n\n%s",
		score, answered, menuReminderText)
}
