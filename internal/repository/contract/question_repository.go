package contract

import (
	"context"

	"studybot-be/internal/entity"
)

// QuestionRepository is the question source. Sequential reads are ordered by the
// auto-increment id so a (topic, index) pair is stable across calls.
type QuestionRepository interface {
	// FindByTopicAt returns the question at the zero-based index within a topic,
	// or nil when the index is past the end. Absence is not an error.
	FindByTopicAt(ctx context.Context, topic string, index int) (*entity.Question, error)
	// SampleByTopic returns up to limit questions of a topic in random order.
	SampleByTopic(ctx context.Context, topic string, limit int) ([]*entity.Question, error)
	// CountByTopic counts questions; an empty topic counts the whole bank.
	CountByTopic(ctx context.Context, topic string) (int64, error)
	// ListTopics returns the distinct topic tags sorted ascending.
	ListTopics(ctx context.Context) ([]string, error)
	// Create appends a question and fills in its generated id.
	Create(ctx context.Context, question *entity.Question) error
}
