package conversation

import (
	"context"
	"errors"
	"strings"
	"testing"

	"studybot-be/internal/entity"
	"studybot-be/internal/seed"
)

// stubSource serves questions from an in-memory map in insertion order.
type stubSource struct {
	byTopic map[string][]*entity.Question
	err     error
}

func (s *stubSource) FindByTopicAt(_ context.Context, topic string, index int) (*entity.Question, error) {
	if s.err != nil {
		return nil, s.err
	}
	questions := s.byTopic[topic]
	if index < 0 || index >= len(questions) {
		return nil, nil
	}
	return questions[index], nil
}

// sampleSource loads the seeded question bank (5 questions per topic).
func sampleSource() *stubSource {
	byTopic := make(map[string][]*entity.Question)
	for i, m := range seed.SampleQuestions() {
		q := &entity.Question{
			Id:            int64(i + 1),
			Topic:         m.Topic,
			Question:      m.Question,
			OptionA:       m.OptionA,
			OptionB:       m.OptionB,
			OptionC:       m.OptionC,
			OptionD:       m.OptionD,
			CorrectAnswer: m.CorrectAnswer,
			Explanation:   m.Explanation,
			Difficulty:    m.Difficulty,
		}
		byTopic[q.Topic] = append(byTopic[q.Topic], q)
	}
	return &stubSource{byTopic: byTopic}
}

func newSession(state string) entity.ConversationSession {
	return entity.ConversationSession{UserId: "15551234567", State: state}
}

func TestAdvanceInitialAlwaysWelcomes(t *testing.T) {
	engine := NewEngine(sampleSource())

	for _, text := range []string{"hi", "", "MATH", "menu", "anything at all"} {
		session := newSession(StateInitial)
		next, msg, err := engine.Advance(context.Background(), session, text)
		if err != nil {
			t.Fatalf("Advance(%q) error: %v", text, err)
		}
		if next.State != StateTopicSelection {
			t.Errorf("Advance(%q) state = %q, want %q", text, next.State, StateTopicSelection)
		}
		if msg.Kind != KindChoice {
			t.Errorf("Advance(%q) kind = %q, want choice", text, msg.Kind)
		}
		if len(msg.Options) != 4 {
			t.Errorf("Advance(%q) options = %d, want 4", text, len(msg.Options))
		}
	}
}

func TestAdvanceUnknownStateFallsBackToWelcome(t *testing.T) {
	engine := NewEngine(sampleSource())

	session := newSession("definitely_not_a_state")
	next, msg, err := engine.Advance(context.Background(), session, "hello")
	if err != nil {
		t.Fatalf("Advance error: %v", err)
	}
	if next.State != StateTopicSelection {
		t.Errorf("state = %q, want %q", next.State, StateTopicSelection)
	}
	if msg.Kind != KindChoice {
		t.Errorf("kind = %q, want choice", msg.Kind)
	}
}

func TestAdvanceTopicSelection(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		wantState string
		wantTopic string
	}{
		{"math", "math", StateQuestionMode, "math"},
		{"science", "science", StateQuestionMode, "science"},
		{"english", "english", StateQuestionMode, "english"},
		{"history", "history", StateQuestionMode, "history"},
		{"uppercase with spaces", "  MATH  ", StateQuestionMode, "math"},
		{"unknown topic", "geography", StateTopicSelection, ""},
		{"empty", "", StateTopicSelection, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := NewEngine(sampleSource())
			session := newSession(StateTopicSelection)
			session.Score = 3
			session.CurrentQuestionIndex = 3

			next, msg, err := engine.Advance(context.Background(), session, tt.text)
			if err != nil {
				t.Fatalf("Advance error: %v", err)
			}
			if next.State != tt.wantState {
				t.Errorf("state = %q, want %q", next.State, tt.wantState)
			}
			if next.SelectedTopic != tt.wantTopic {
				t.Errorf("topic = %q, want %q", next.SelectedTopic, tt.wantTopic)
			}
			if tt.wantState == StateQuestionMode {
				if next.Score != 0 || next.CurrentQuestionIndex != 0 {
					t.Errorf("counters = %d/%d, want 0/0", next.Score, next.CurrentQuestionIndex)
				}
				if !strings.Contains(msg.Body, "Reply with A, B, C, or D") {
					t.Errorf("reply missing question rendering: %q", msg.Body)
				}
			} else {
				// re-prompt must not touch counters
				if next.Score != 3 || next.CurrentQuestionIndex != 3 {
					t.Errorf("counters changed on re-prompt: %d/%d", next.Score, next.CurrentQuestionIndex)
				}
			}
		})
	}
}

func TestAdvanceTopicWithoutQuestions(t *testing.T) {
	engine := NewEngine(&stubSource{byTopic: map[string][]*entity.Question{}})

	session := newSession(StateTopicSelection)
	next, msg, err := engine.Advance(context.Background(), session, "math")
	if err != nil {
		t.Fatalf("Advance error: %v", err)
	}
	if next.State != StateTopicSelection {
		t.Errorf("state = %q, want %q", next.State, StateTopicSelection)
	}
	if next.SelectedTopic != "" {
		t.Errorf("topic = %q, want empty", next.SelectedTopic)
	}
	if msg.Kind != KindText {
		t.Errorf("kind = %q, want text", msg.Kind)
	}
}

func TestAdvanceAnswerScoring(t *testing.T) {
	tests := []struct {
		name      string
		answer    string
		wantScore int
		wantIndex int
	}{
		{"correct lowercase", "b", 1, 1},
		{"correct uppercase", "B", 1, 1},
		{"correct padded", " b ", 1, 1},
		{"wrong letter", "a", 0, 1},
		{"another wrong letter", "d", 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := NewEngine(sampleSource())
			session := newSession(StateQuestionMode)
			session.SelectedTopic = "math"

			next, msg, err := engine.Advance(context.Background(), session, tt.answer)
			if err != nil {
				t.Fatalf("Advance error: %v", err)
			}
			if next.Score != tt.wantScore {
				t.Errorf("score = %d, want %d", next.Score, tt.wantScore)
			}
			if next.CurrentQuestionIndex != tt.wantIndex {
				t.Errorf("index = %d, want %d", next.CurrentQuestionIndex, tt.wantIndex)
			}
			if next.State != StateQuestionMode {
				t.Errorf("state = %q, want %q", next.State, StateQuestionMode)
			}
			if !strings.Contains(msg.Body, "--- Next Question ---") {
				t.Errorf("reply missing next question: %q", msg.Body)
			}
			if !strings.Contains(msg.Body, "Explanation:") {
				t.Errorf("reply missing explanation: %q", msg.Body)
			}
		})
	}
}

func TestAdvanceInvalidAnswerLeavesSessionUntouched(t *testing.T) {
	engine := NewEngine(sampleSource())
	session := newSession(StateQuestionMode)
	session.SelectedTopic = "math"
	session.CurrentQuestionIndex = 2
	session.Score = 1

	next, msg, err := engine.Advance(context.Background(), session, "z")
	if err != nil {
		t.Fatalf("Advance error: %v", err)
	}
	if next.Score != 1 || next.CurrentQuestionIndex != 2 || next.State != StateQuestionMode {
		t.Errorf("session mutated on invalid answer: %+v", next)
	}
	if msg.Body != "Please reply with A, B, C, or D to answer the question." {
		t.Errorf("unexpected reply: %q", msg.Body)
	}
}

func TestAdvanceFirstMathQuestionSequence(t *testing.T) {
	engine := NewEngine(sampleSource())
	ctx := context.Background()

	session := newSession(StateTopicSelection)
	session, msg, err := engine.Advance(ctx, session, "math")
	if err != nil {
		t.Fatalf("Advance error: %v", err)
	}
	if !strings.Contains(msg.Body, "What is the value of 15 + 27?") {
		t.Fatalf("first question wrong: %q", msg.Body)
	}

	// 15 + 27 = 42 is option B
	session, msg, err = engine.Advance(ctx, session, "b")
	if err != nil {
		t.Fatalf("Advance error: %v", err)
	}
	if session.Score != 1 || session.CurrentQuestionIndex != 1 {
		t.Errorf("counters = %d/%d, want 1/1", session.Score, session.CurrentQuestionIndex)
	}
	if !strings.Contains(msg.Body, "✅ Correct!") {
		t.Errorf("missing correct feedback: %q", msg.Body)
	}
	if !strings.Contains(msg.Body, "what type of triangle is it?") {
		t.Errorf("next (triangle) question not appended: %q", msg.Body)
	}
}

func TestAdvanceFullQuizTransitionsToMenu(t *testing.T) {
	engine := NewEngine(sampleSource())
	ctx := context.Background()

	session := newSession(StateTopicSelection)
	session, _, err := engine.Advance(ctx, session, "math")
	if err != nil {
		t.Fatalf("Advance error: %v", err)
	}

	// the five math answers in seeded order
	answers := []string{"b", "c", "b", "b", "b"}
	var msg OutgoingMessage
	for i, answer := range answers {
		session, msg, err = engine.Advance(ctx, session, answer)
		if err != nil {
			t.Fatalf("Advance(answer %d) error: %v", i, err)
		}
		if session.Score > session.CurrentQuestionIndex {
			t.Fatalf("invariant violated: score %d > index %d", session.Score, session.CurrentQuestionIndex)
		}
	}

	if session.State != StateMenu {
		t.Errorf("state = %q, want %q", session.State, StateMenu)
	}
	if !strings.Contains(msg.Body, "Your score: 5/5") {
		t.Errorf("completion summary wrong: %q", msg.Body)
	}
}

func TestAdvanceMixedAnswersKeepScoreInvariant(t *testing.T) {
	engine := NewEngine(sampleSource())
	ctx := context.Background()

	session := newSession(StateTopicSelection)
	session, _, _ = engine.Advance(ctx, session, "science")

	var msg OutgoingMessage
	var err error
	for _, answer := range []string{"a", "a", "a", "a", "a"} {
		session, msg, err = engine.Advance(ctx, session, answer)
		if err != nil {
			t.Fatalf("Advance error: %v", err)
		}
		if session.Score > session.CurrentQuestionIndex {
			t.Fatalf("invariant violated: score %d > index %d", session.Score, session.CurrentQuestionIndex)
		}
	}

	// only the first science question has answer A
	if session.Score != 1 {
		t.Errorf("score = %d, want 1", session.Score)
	}
	if session.State != StateMenu {
		t.Errorf("state = %q, want %q", session.State, StateMenu)
	}
	if !strings.Contains(msg.Body, "Your score: 1/5") {
		t.Errorf("completion summary wrong: %q", msg.Body)
	}
}

func TestAdvanceMenu(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		wantState string
		wantReset bool
	}{
		{"menu resets", "menu", StateTopicSelection, true},
		{"restart resets", "restart", StateTopicSelection, true},
		{"menu uppercase", " MENU ", StateTopicSelection, true},
		{"other text stays", "hello", StateMenu, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := NewEngine(sampleSource())
			session := newSession(StateMenu)
			session.SelectedTopic = "math"
			session.CurrentQuestionIndex = 5
			session.Score = 4

			next, msg, err := engine.Advance(context.Background(), session, tt.text)
			if err != nil {
				t.Fatalf("Advance error: %v", err)
			}
			if next.State != tt.wantState {
				t.Errorf("state = %q, want %q", next.State, tt.wantState)
			}
			if tt.wantReset {
				if next.SelectedTopic != "" || next.CurrentQuestionIndex != 0 || next.Score != 0 {
					t.Errorf("session not reset: %+v", next)
				}
				if msg.Kind != KindChoice {
					t.Errorf("kind = %q, want choice", msg.Kind)
				}
			} else {
				if next.SelectedTopic != "math" || next.CurrentQuestionIndex != 5 || next.Score != 4 {
					t.Errorf("session mutated: %+v", next)
				}
				if msg.Body != "Type 'menu' to choose another topic or 'restart' to start over." {
					t.Errorf("unexpected reminder: %q", msg.Body)
				}
			}
		})
	}
}

func TestAdvanceQuestionSourceErrorPropagates(t *testing.T) {
	wantErr := errors.New("storage unreachable")
	engine := NewEngine(&stubSource{err: wantErr})

	session := newSession(StateTopicSelection)
	_, _, err := engine.Advance(context.Background(), session, "math")
	if !errors.Is(err, wantErr) {
		t.Errorf("err = %v, want %v", err, wantErr)
	}

	session = newSession(StateQuestionMode)
	session.SelectedTopic = "math"
	_, _, err = engine.Advance(context.Background(), session, "a")
	if !errors.Is(err, wantErr) {
		t.Errorf("err = %v, want %v", err, wantErr)
	}
}
