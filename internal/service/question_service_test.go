package service

import (
	"context"
	"sort"
	"testing"

	"studybot-be/internal/dto"
	"studybot-be/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeQuestions is an in-memory QuestionRepository backed by a slice.
type fakeQuestions struct {
	bank   []*entity.Question
	nextId int64
}

func (f *fakeQuestions) FindByTopicAt(_ context.Context, topic string, index int) (*entity.Question, error) {
	seen := 0
	for _, q := range f.bank {
		if q.Topic != topic {
			continue
		}
		if seen == index {
			return q, nil
		}
		seen++
	}
	return nil, nil
}

func (f *fakeQuestions) SampleByTopic(_ context.Context, topic string, limit int) ([]*entity.Question, error) {
	var out []*entity.Question
	for _, q := range f.bank {
		if topic != "" && q.Topic != topic {
			continue
		}
		out = append(out, q)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (f *fakeQuestions) CountByTopic(_ context.Context, topic string) (int64, error) {
	var count int64
	for _, q := range f.bank {
		if topic == "" || q.Topic == topic {
			count++
		}
	}
	return count, nil
}

func (f *fakeQuestions) ListTopics(_ context.Context) ([]string, error) {
	set := map[string]struct{}{}
	for _, q := range f.bank {
		set[q.Topic] = struct{}{}
	}
	topics := make([]string, 0, len(set))
	for topic := range set {
		topics = append(topics, topic)
	}
	sort.Strings(topics)
	return topics, nil
}

func (f *fakeQuestions) Create(_ context.Context, question *entity.Question) error {
	f.nextId++
	question.Id = f.nextId
	f.bank = append(f.bank, question)
	return nil
}

func TestAddQuestionNormalizesInput(t *testing.T) {
	repo := &fakeQuestions{}
	svc := NewQuestionService(repo)

	resp, err := svc.AddQuestion(context.Background(), &dto.AddQuestionRequest{
		Topic:         "  Math ",
		Question:      "What is 2 + 2?",
		OptionA:       "3",
		OptionB:       "4",
		OptionC:       "5",
		OptionD:       "6",
		CorrectAnswer: "b",
		Explanation:   "2 + 2 = 4.",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.Id)

	require.Len(t, repo.bank, 1)
	stored := repo.bank[0]
	assert.Equal(t, "math", stored.Topic)
	assert.Equal(t, "B", stored.CorrectAnswer)
	assert.Equal(t, "medium", stored.Difficulty)
}

func TestAddQuestionKeepsExplicitDifficulty(t *testing.T) {
	repo := &fakeQuestions{}
	svc := NewQuestionService(repo)

	_, err := svc.AddQuestion(context.Background(), &dto.AddQuestionRequest{
		Topic:         "history",
		Question:      "When did the Berlin Wall fall?",
		OptionA:       "1987",
		OptionB:       "1989",
		OptionC:       "1991",
		OptionD:       "1993",
		CorrectAnswer: "B",
		Explanation:   "The Berlin Wall fell in November 1989.",
		Difficulty:    "hard",
	})
	require.NoError(t, err)
	assert.Equal(t, "hard", repo.bank[0].Difficulty)
}

func TestTopicsReportsCounts(t *testing.T) {
	repo := &fakeQuestions{bank: []*entity.Question{
		{Id: 1, Topic: "math"},
		{Id: 2, Topic: "math"},
		{Id: 3, Topic: "science"},
	}}
	svc := NewQuestionService(repo)

	resp, err := svc.Topics(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"math", "science"}, resp.Topics)
	assert.Equal(t, int64(2), resp.Counts["math"])
	assert.Equal(t, int64(1), resp.Counts["science"])
}

func TestSampleAppliesDefaultLimit(t *testing.T) {
	repo := &fakeQuestions{}
	for i := 0; i < 15; i++ {
		repo.bank = append(repo.bank, &entity.Question{Id: int64(i + 1), Topic: "math"})
	}
	svc := NewQuestionService(repo)

	questions, err := svc.Sample(context.Background(), "math", 0)
	require.NoError(t, err)
	assert.Len(t, questions, 10)
}

func TestSampleMapsOptions(t *testing.T) {
	repo := &fakeQuestions{bank: []*entity.Question{{
		Id:      1,
		Topic:   "math",
		OptionA: "40", OptionB: "42", OptionC: "44", OptionD: "46",
	}}}
	svc := NewQuestionService(repo)

	questions, err := svc.Sample(context.Background(), "math", 5)
	require.NoError(t, err)
	require.Len(t, questions, 1)
	assert.Equal(t, []string{"40", "42", "44", "46"}, questions[0].Options)
}
