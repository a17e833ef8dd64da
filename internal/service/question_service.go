package service

import (
	"context"
	"strings"

	"studybot-be/internal/dto"
	"studybot-be/internal/entity"
	"studybot-be/internal/repository/contract"
)

// IQuestionService is the admin surface over the question bank. The quiz loop
// itself reads questions through the conversation engine, not through this.
type IQuestionService interface {
	AddQuestion(ctx context.Context, request *dto.AddQuestionRequest) (*dto.AddQuestionResponse, error)
	Topics(ctx context.Context) (*dto.TopicsResponse, error)
	Sample(ctx context.Context, topic string, limit int) ([]*dto.QuestionResponse, error)
}

type questionService struct {
	questions contract.QuestionRepository
}

func NewQuestionService(questions contract.QuestionRepository) IQuestionService {
	return &questionService{questions: questions}
}

func (s *questionService) AddQuestion(ctx context.Context, request *dto.AddQuestionRequest) (*dto.AddQuestionResponse, error) {
	difficulty := request.Difficulty
	if difficulty == "" {
		difficulty = "medium"
	}
	question := &entity.Question{
		Topic:         strings.ToLower(strings.TrimSpace(request.Topic)),
		Question:      request.Question,
		OptionA:       request.OptionA,
		OptionB:       request.OptionB,
		OptionC:       request.OptionC,
		OptionD:       request.OptionD,
		CorrectAnswer: strings.ToUpper(request.CorrectAnswer),
		Explanation:   request.Explanation,
		Difficulty:    difficulty,
	}
	if err := s.questions.Create(ctx, question); err != nil {
		return nil, err
	}
	return &dto.AddQuestionResponse{Id: question.Id}, nil
}

func (s *questionService) Topics(ctx context.Context) (*dto.TopicsResponse, error) {
	topics, err := s.questions.ListTopics(ctx)
	if err != nil {
		return nil, err
	}
	counts := make(map[string]int64, len(topics))
	for _, topic := range topics {
		count, err := s.questions.CountByTopic(ctx, topic)
		if err != nil {
			return nil, err
		}
		counts[topic] = count
	}
	return &dto.TopicsResponse{Topics: topics, Counts: counts}, nil
}

func (s *questionService) Sample(ctx context.Context, topic string, limit int) ([]*dto.QuestionResponse, error) {
	if limit <= 0 {
		limit = 10
	}
	questions, err := s.questions.SampleByTopic(ctx, topic, limit)
	if err != nil {
		return nil, err
	}
	responses := make([]*dto.QuestionResponse, len(questions))
	for i, q := range questions {
		options := q.Options()
		responses[i] = &dto.QuestionResponse{
			Id:          q.Id,
			Topic:       q.Topic,
			Question:    q.Question,
			Options:     options[:],
			Explanation: q.Explanation,
			Difficulty:  q.Difficulty,
			CreatedAt:   q.CreatedAt,
		}
	}
	return responses, nil
}
