package seed

import (
	"context"

	"studybot-be/internal/model"

	"gorm.io/gorm"
)

// advisory lock key for the seeding transaction; any stable value works as
// long as every instance uses the same one
const seedLockKey = 874219

// QuestionSeeder inserts the sample question bank on an empty database.
// Seeding is idempotent and safe against concurrent startups: the count check
// and the inserts run in one transaction behind a Postgres advisory lock.
type QuestionSeeder struct {
	db *gorm.DB
}

func NewQuestionSeeder(db *gorm.DB) *QuestionSeeder {
	return &QuestionSeeder{db: db}
}

// Run seeds the bank when it is empty and reports how many rows it inserted.
func (s *QuestionSeeder) Run(ctx context.Context) (int, error) {
	inserted := 0
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("SELECT pg_advisory_xact_lock(?)", seedLockKey).Error; err != nil {
			return err
		}

		var count int64
		if err := tx.Model(&model.Question{}).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return nil
		}

		questions := SampleQuestions()
		if err := tx.Create(&questions).Error; err != nil {
			return err
		}
		inserted = len(questions)
		return nil
	})
	return inserted, err
}
