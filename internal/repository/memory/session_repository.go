package memory

import (
	"context"
	"sync"
	"time"

	"studybot-be/internal/entity"
	"studybot-be/internal/repository/contract"
	"studybot-be/pkg/conversation"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

// SessionRepository is the default in-process session store. Each Save re-sets
// the cache entry, so the cache TTL acts as an idle timeout safety net behind
// the explicit ExpireOlderThan sweep.
type SessionRepository struct {
	mu    sync.Mutex // guards the check-then-create in GetOrCreate
	cache *cache.Cache
}

func NewSessionRepository(defaultTTL time.Duration) contract.SessionRepository {
	// Purge expired items every 10 minutes
	c := cache.New(defaultTTL, 10*time.Minute)
	return &SessionRepository{cache: c}
}

func (r *SessionRepository) GetOrCreate(_ context.Context, userId string) (*entity.ConversationSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if x, found := r.cache.Get(userId); found {
		return copySession(x.(*entity.ConversationSession)), nil
	}

	now := time.Now()
	fresh := &entity.ConversationSession{
		Id:             uuid.New(),
		UserId:         userId,
		State:          conversation.StateInitial,
		CreatedAt:      now,
		LastActivityAt: now,
		Extra:          make(map[string]interface{}),
	}
	r.cache.Set(userId, fresh, cache.DefaultExpiration)
	return copySession(fresh), nil
}

func (r *SessionRepository) Save(_ context.Context, session *entity.ConversationSession) error {
	session.LastActivityAt = time.Now()
	if session.Id == uuid.Nil {
		session.Id = uuid.New()
	}
	r.cache.Set(session.UserId, copySession(session), cache.DefaultExpiration)
	return nil
}

func (r *SessionRepository) Reset(ctx context.Context, userId string) (*entity.ConversationSession, error) {
	x, found := r.cache.Get(userId)
	if !found {
		return nil, nil
	}
	session := copySession(x.(*entity.ConversationSession))
	session.State = conversation.StateInitial
	session.SelectedTopic = ""
	session.CurrentQuestionIndex = 0
	session.Score = 0
	session.Extra = make(map[string]interface{})
	if err := r.Save(ctx, session); err != nil {
		return nil, err
	}
	return copySession(session), nil
}

func (r *SessionRepository) Delete(_ context.Context, userId string) error {
	r.cache.Delete(userId)
	return nil
}

func (r *SessionRepository) ExpireOlderThan(_ context.Context, maxIdle time.Duration) (int, error) {
	cutoff := time.Now().Add(-maxIdle)
	removed := 0
	for key, item := range r.cache.Items() {
		session := item.Object.(*entity.ConversationSession)
		if session.LastActivityAt.Before(cutoff) {
			r.cache.Delete(key)
			removed++
		}
	}
	return removed, nil
}

func (r *SessionRepository) Stats(_ context.Context) (*entity.SessionStats, error) {
	now := time.Now()
	stats := &entity.SessionStats{Topics: make(map[string]int)}
	for _, item := range r.cache.Items() {
		session := item.Object.(*entity.ConversationSession)
		stats.Total++
		if session.LastActivityAt.After(now.Add(-time.Hour)) {
			stats.ActiveLastHour++
		}
		if session.LastActivityAt.After(now.Add(-24 * time.Hour)) {
			stats.ActiveLastDay++
		}
		if session.SelectedTopic != "" {
			stats.Topics[session.SelectedTopic]++
		}
	}
	return stats, nil
}

// copySession hands out value copies so callers never alias the stored session.
func copySession(s *entity.ConversationSession) *entity.ConversationSession {
	c := *s
	if s.Extra != nil {
		c.Extra = make(map[string]interface{}, len(s.Extra))
		for k, v := range s.Extra {
			c.Extra[k] = v
		}
	}
	return &c
}
