package mapper

import (
	"studybot-be/internal/entity"
	"studybot-be/internal/model"

	"gorm.io/datatypes"
)

type SessionMapper struct{}

func NewSessionMapper() *SessionMapper {
	return &SessionMapper{}
}

func (m *SessionMapper) ToEntity(s *model.ConversationSession) *entity.ConversationSession {
	if s == nil {
		return nil
	}
	extra := map[string]interface{}(s.Extra)
	if extra == nil {
		extra = make(map[string]interface{})
	}
	return &entity.ConversationSession{
		Id:                   s.Id,
		UserId:               s.UserId,
		State:                s.State,
		SelectedTopic:        s.SelectedTopic,
		CurrentQuestionIndex: s.CurrentQuestionIndex,
		Score:                s.Score,
		CreatedAt:            s.CreatedAt,
		LastActivityAt:       s.LastActivityAt,
		Extra:                extra,
	}
}

func (m *SessionMapper) ToModel(s *entity.ConversationSession) *model.ConversationSession {
	if s == nil {
		return nil
	}
	return &model.ConversationSession{
		Id:                   s.Id,
		UserId:               s.UserId,
		State:                s.State,
		SelectedTopic:        s.SelectedTopic,
		CurrentQuestionIndex: s.CurrentQuestionIndex,
		Score:                s.Score,
		CreatedAt:            s.CreatedAt,
		LastActivityAt:       s.LastActivityAt,
		Extra:                datatypes.JSONMap(s.Extra),
	}
}
