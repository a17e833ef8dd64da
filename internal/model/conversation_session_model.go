package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type ConversationSession struct {
	Id                   uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId               string            `gorm:"type:text;not null;uniqueIndex"` // WhatsApp phone number
	State                string            `gorm:"type:text;not null"`
	SelectedTopic        string            `gorm:"type:text"`
	CurrentQuestionIndex int               `gorm:"not null;default:0"`
	Score                int               `gorm:"not null;default:0"`
	CreatedAt            time.Time         `gorm:"autoCreateTime"`
	LastActivityAt       time.Time         `gorm:"not null;index"`
	Extra                datatypes.JSONMap `gorm:"type:jsonb"`
}

func (ConversationSession) TableName() string {
	return "conversation_sessions"
}
