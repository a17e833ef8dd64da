package main

import (
	"context"
	"log"

	"studybot-be/internal/bootstrap"
	"studybot-be/internal/config"
	"studybot-be/internal/seed"
	"studybot-be/internal/server"
	"studybot-be/pkg/database"
)

func main() {
	// 1. Load Configuration
	cfg := config.Load()

	// 2. Initialize Database
	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	// 3. Seed the question bank when empty (no-op otherwise)
	seeder := seed.NewQuestionSeeder(gormDB)
	inserted, err := seeder.Run(context.Background())
	if err != nil {
		log.Panicf("Question seeding failed: %v", err)
	}
	if inserted > 0 {
		log.Printf("Seeded %d sample questions", inserted)
	}

	// 4. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(gormDB, cfg)

	// 5. Expire idle sessions off the request path
	go container.ConversationService.RunCleanup(
		context.Background(),
		cfg.Session.CleanupInterval,
		cfg.Session.MaxIdle,
	)

	// 6. Run Server
	srv := server.New(cfg, container)
	log.Fatal(srv.Run())
}
