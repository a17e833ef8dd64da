package service

import (
	"context"
	"sync"
	"time"

	"studybot-be/internal/entity"
	"studybot-be/internal/pkg/logger"
	"studybot-be/internal/repository/contract"
	"studybot-be/pkg/conversation"
)

const apologyText = "Sorry, I encountered an error. Please try again."

// Sender delivers engine replies over the messaging transport. Retries, if
// any, live behind this interface; the dispatcher never re-sends.
type Sender interface {
	Send(ctx context.Context, to string, msg conversation.OutgoingMessage) error
	MarkAsRead(ctx context.Context, messageId string) error
}

// IConversationService is the dispatcher: it bridges inbound webhook messages
// to the conversation engine and the outbound sender.
type IConversationService interface {
	HandleInbound(ctx context.Context, from, messageId, text string) error
	Stats(ctx context.Context) (*entity.SessionStats, error)
	RunCleanup(ctx context.Context, interval, maxIdle time.Duration)
}

type conversationService struct {
	sessions contract.SessionRepository
	engine   *conversation.Engine
	sender   Sender
	logger   logger.ILogger

	// one in-flight transition per user; distinct users proceed in parallel
	userLocks sync.Map // map[string]*sync.Mutex
}

func NewConversationService(
	sessions contract.SessionRepository,
	engine *conversation.Engine,
	sender Sender,
	sysLogger logger.ILogger,
) IConversationService {
	return &conversationService{
		sessions: sessions,
		engine:   engine,
		sender:   sender,
		logger:   sysLogger,
	}
}

func (s *conversationService) lockUser(userId string) *sync.Mutex {
	mu, _ := s.userLocks.LoadOrStore(userId, &sync.Mutex{})
	return mu.(*sync.Mutex)
}

// HandleInbound runs the full pipeline for one inbound message: fetch-or-create
// the session, advance the state machine, persist the new session, deliver the
// reply. Pipeline failures are answered with a generic apology when delivery is
// still possible; the error is returned for the caller to record.
func (s *conversationService) HandleInbound(ctx context.Context, from, messageId, text string) error {
	mu := s.lockUser(from)
	mu.Lock()
	defer mu.Unlock()

	if messageId != "" {
		// Best effort; a failed read receipt never blocks the reply.
		if err := s.sender.MarkAsRead(ctx, messageId); err != nil {
			s.logger.Warn("conversation", "Failed to mark message as read", map[string]interface{}{
				"message_id": messageId, "error": err.Error(),
			})
		}
	}

	session, err := s.sessions.GetOrCreate(ctx, from)
	if err != nil {
		s.apologize(ctx, from, err, "session lookup failed")
		return err
	}

	next, reply, err := s.engine.Advance(ctx, *session, text)
	if err != nil {
		s.apologize(ctx, from, err, "transition failed")
		return err
	}

	if err := s.sessions.Save(ctx, &next); err != nil {
		s.apologize(ctx, from, err, "session save failed")
		return err
	}

	if err := s.sender.Send(ctx, from, reply); err != nil {
		s.logger.Error("conversation", "Reply delivery failed", map[string]interface{}{
			"user_id": from, "error": err.Error(),
		})
		return err
	}

	s.logger.Info("conversation", "Message handled", map[string]interface{}{
		"user_id": from, "state": next.State, "score": next.Score,
	})
	return nil
}

func (s *conversationService) apologize(ctx context.Context, to string, cause error, msg string) {
	s.logger.Error("conversation", msg, map[string]interface{}{
		"user_id": to, "error": cause.Error(),
	})
	if sendErr := s.sender.Send(ctx, to, conversation.TextMessage(apologyText)); sendErr != nil {
		s.logger.Error("conversation", "Apology delivery failed", map[string]interface{}{
			"user_id": to, "error": sendErr.Error(),
		})
	}
}

func (s *conversationService) Stats(ctx context.Context) (*entity.SessionStats, error) {
	return s.sessions.Stats(ctx)
}

// RunCleanup expires idle sessions on a ticker until ctx is cancelled. Runs
// off the request path; a failed sweep is logged and retried next tick.
func (s *conversationService) RunCleanup(ctx context.Context, interval, maxIdle time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			removed, err := s.sessions.ExpireOlderThan(ctx, maxIdle)
			if err != nil {
				s.logger.Error("conversation", "Session cleanup failed", map[string]interface{}{
					"error": err.Error(),
				})
				continue
			}
			if removed > 0 {
				s.logger.Info("conversation", "Expired idle sessions", map[string]interface{}{
					"removed": removed, "max_idle": maxIdle.String(),
				})
			}
		}
	}
}
