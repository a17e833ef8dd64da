package integration

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"studybot-be/internal/model"
	"studybot-be/internal/repository/implementation"
	"studybot-be/internal/seed"
	"studybot-be/pkg/conversation"
	"studybot-be/pkg/database"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// Load .env from root
	if err := godotenv.Load("../../.env"); err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	if err := db.AutoMigrate(&model.Question{}, &model.ConversationSession{}); err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}
	return db
}

func TestQuestionRepositoryAgainstSeededBank(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	inserted, err := seed.NewQuestionSeeder(db).Run(ctx)
	require.NoError(t, err)
	t.Logf("Seeder inserted %d questions", inserted)

	// running the seeder again must be a no-op
	again, err := seed.NewQuestionSeeder(db).Run(ctx)
	require.NoError(t, err)
	assert.Zero(t, again)

	repo := implementation.NewQuestionRepository(db)

	total, err := repo.CountByTopic(ctx, "")
	require.NoError(t, err)
	assert.GreaterOrEqual(t, total, int64(20))

	topics, err := repo.ListTopics(ctx)
	require.NoError(t, err)
	assert.Subset(t, topics, []string{"english", "history", "math", "science"})

	t.Run("sequential order is stable", func(t *testing.T) {
		first, err := repo.FindByTopicAt(ctx, "math", 0)
		require.NoError(t, err)
		require.NotNil(t, first)

		firstAgain, err := repo.FindByTopicAt(ctx, "math", 0)
		require.NoError(t, err)
		require.NotNil(t, firstAgain)
		assert.Equal(t, first.Id, firstAgain.Id)

		second, err := repo.FindByTopicAt(ctx, "math", 1)
		require.NoError(t, err)
		require.NotNil(t, second)
		assert.Greater(t, second.Id, first.Id)
	})

	t.Run("index past the end is absence", func(t *testing.T) {
		count, err := repo.CountByTopic(ctx, "math")
		require.NoError(t, err)

		q, err := repo.FindByTopicAt(ctx, "math", int(count))
		require.NoError(t, err)
		assert.Nil(t, q)
	})

	t.Run("sample respects limit", func(t *testing.T) {
		questions, err := repo.SampleByTopic(ctx, "science", 3)
		require.NoError(t, err)
		assert.Len(t, questions, 3)
		for _, q := range questions {
			assert.Equal(t, "science", q.Topic)
		}
	})
}

func TestSessionRepositoryRoundTrip(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	repo := implementation.NewSessionRepository(db)

	userId := "integration-" + time.Now().Format("150405.000000000")
	t.Cleanup(func() { _ = repo.Delete(context.Background(), userId) })

	created, err := repo.GetOrCreate(ctx, userId)
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, conversation.StateInitial, created.State)

	stable, err := repo.GetOrCreate(ctx, userId)
	require.NoError(t, err)
	assert.Equal(t, created.Id, stable.Id)

	created.State = conversation.StateQuestionMode
	created.SelectedTopic = "math"
	created.CurrentQuestionIndex = 3
	created.Score = 2
	require.NoError(t, repo.Save(ctx, created))

	loaded, err := repo.GetOrCreate(ctx, userId)
	require.NoError(t, err)
	assert.Equal(t, conversation.StateQuestionMode, loaded.State)
	assert.Equal(t, "math", loaded.SelectedTopic)
	assert.Equal(t, 3, loaded.CurrentQuestionIndex)
	assert.Equal(t, 2, loaded.Score)

	reset, err := repo.Reset(ctx, userId)
	require.NoError(t, err)
	require.NotNil(t, reset)
	assert.Equal(t, created.Id, reset.Id)
	assert.Equal(t, conversation.StateInitial, reset.State)
	assert.Empty(t, reset.SelectedTopic)
	assert.Zero(t, reset.Score)

	stats, err := repo.Stats(ctx)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, stats.Total, 1)
}
