package implementation

import (
	"context"
	"errors"
	"time"

	"studybot-be/internal/entity"
	"studybot-be/internal/mapper"
	"studybot-be/internal/model"
	"studybot-be/internal/repository/contract"
	"studybot-be/internal/repository/specification"
	"studybot-be/pkg/conversation"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SessionRepositoryImpl is the durable session store: one row per userId.
type SessionRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.SessionMapper
}

func NewSessionRepository(db *gorm.DB) contract.SessionRepository {
	return &SessionRepositoryImpl{
		db:     db,
		mapper: mapper.NewSessionMapper(),
	}
}

func (r *SessionRepositoryImpl) findByUserId(ctx context.Context, userId string) (*model.ConversationSession, error) {
	var m model.ConversationSession
	query := specification.ByUserId{UserId: userId}.Apply(r.db.WithContext(ctx))
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

func (r *SessionRepositoryImpl) GetOrCreate(ctx context.Context, userId string) (*entity.ConversationSession, error) {
	m, err := r.findByUserId(ctx, userId)
	if err != nil {
		return nil, err
	}
	if m != nil {
		return r.mapper.ToEntity(m), nil
	}

	now := time.Now()
	fresh := &model.ConversationSession{
		Id:             uuid.New(),
		UserId:         userId,
		State:          conversation.StateInitial,
		CreatedAt:      now,
		LastActivityAt: now,
	}
	// Two racing creates for the same user collapse onto the existing row.
	err = r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "user_id"}}, DoNothing: true}).
		Create(fresh).Error
	if err != nil {
		return nil, err
	}
	m, err = r.findByUserId(ctx, userId)
	if err != nil {
		return nil, err
	}
	return r.mapper.ToEntity(m), nil
}

func (r *SessionRepositoryImpl) Save(ctx context.Context, session *entity.ConversationSession) error {
	session.LastActivityAt = time.Now()
	if session.Id == uuid.Nil {
		session.Id = uuid.New()
	}
	m := r.mapper.ToModel(session)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"state", "selected_topic", "current_question_index",
				"score", "last_activity_at", "extra",
			}),
		}).
		Create(m).Error
}

func (r *SessionRepositoryImpl) Reset(ctx context.Context, userId string) (*entity.ConversationSession, error) {
	m, err := r.findByUserId(ctx, userId)
	if err != nil || m == nil {
		return nil, err
	}
	m.State = conversation.StateInitial
	m.SelectedTopic = ""
	m.CurrentQuestionIndex = 0
	m.Score = 0
	m.Extra = nil
	m.LastActivityAt = time.Now()
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntity(m), nil
}

func (r *SessionRepositoryImpl) Delete(ctx context.Context, userId string) error {
	query := specification.ByUserId{UserId: userId}.Apply(r.db.WithContext(ctx))
	return query.Delete(&model.ConversationSession{}).Error
}

func (r *SessionRepositoryImpl) ExpireOlderThan(ctx context.Context, maxIdle time.Duration) (int, error) {
	cutoff := time.Now().Add(-maxIdle)
	query := specification.LastActivityBefore{Cutoff: cutoff}.Apply(r.db.WithContext(ctx))
	result := query.Delete(&model.ConversationSession{})
	if result.Error != nil {
		return 0, result.Error
	}
	return int(result.RowsAffected), nil
}

func (r *SessionRepositoryImpl) Stats(ctx context.Context) (*entity.SessionStats, error) {
	db := r.db.WithContext(ctx).Model(&model.ConversationSession{})

	var total int64
	if err := db.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, err
	}

	now := time.Now()
	var lastHour, lastDay int64
	if err := db.Session(&gorm.Session{}).Where("last_activity_at > ?", now.Add(-time.Hour)).Count(&lastHour).Error; err != nil {
		return nil, err
	}
	if err := db.Session(&gorm.Session{}).Where("last_activity_at > ?", now.Add(-24*time.Hour)).Count(&lastDay).Error; err != nil {
		return nil, err
	}

	type topicRow struct {
		SelectedTopic string
		Count         int
	}
	var rows []topicRow
	err := db.Session(&gorm.Session{}).
		Select("selected_topic, COUNT(*) as count").
		Where("selected_topic <> ''").
		Group("selected_topic").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	topics := make(map[string]int, len(rows))
	for _, row := range rows {
		topics[row.SelectedTopic] = row.Count
	}

	return &entity.SessionStats{
		Total:          int(total),
		ActiveLastHour: int(lastHour),
		ActiveLastDay:  int(lastDay),
		Topics:         topics,
	}, nil
}
