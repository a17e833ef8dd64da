package entity

import (
	"time"

	"github.com/google/uuid"
)

// ConversationSession tracks one user's quiz conversation across webhook events.
// UserId is the WhatsApp phone number and the lookup key; exactly one session
// exists per UserId at any time.
type ConversationSession struct {
	Id                   uuid.UUID
	UserId               string
	State                string
	SelectedTopic        string // empty until a topic is chosen
	CurrentQuestionIndex int
	Score                int
	CreatedAt            time.Time
	LastActivityAt       time.Time
	Extra                map[string]interface{}
}

// SessionStats is a derived snapshot over the session store.
type SessionStats struct {
	Total          int            `json:"total"`
	ActiveLastHour int            `json:"active_last_hour"`
	ActiveLastDay  int            `json:"active_last_day"`
	Topics         map[string]int `json:"topics"`
}
