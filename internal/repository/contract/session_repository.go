package contract

import (
	"context"
	"time"

	"studybot-be/internal/entity"
)

// SessionRepository owns the conversation session lifecycle, keyed by userId.
// "Not found" is represented as absence (nil, nil), never as an error.
type SessionRepository interface {
	// GetOrCreate returns the existing session for userId or creates a fresh
	// one in the initial state with zeroed counters.
	GetOrCreate(ctx context.Context, userId string) (*entity.ConversationSession, error)
	// Save upserts the session by userId and stamps LastActivityAt.
	Save(ctx context.Context, session *entity.ConversationSession) error
	// Reset forces an existing session back to initial-state defaults, keeping
	// its id and CreatedAt. Returns nil when the session is absent.
	Reset(ctx context.Context, userId string) (*entity.ConversationSession, error)
	// Delete removes the session for userId, if any.
	Delete(ctx context.Context, userId string) error
	// ExpireOlderThan removes sessions idle longer than maxIdle and reports how
	// many were dropped. Runs off the request path.
	ExpireOlderThan(ctx context.Context, maxIdle time.Duration) (int, error)
	// Stats returns a read-only observability snapshot.
	Stats(ctx context.Context) (*entity.SessionStats, error)
}
