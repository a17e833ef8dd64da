package main

import (
	"context"
	"log"
	"os"

	"studybot-be/internal/seed"
	"studybot-be/pkg/database"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	log.Println("Seeding question bank...")

	seeder := seed.NewQuestionSeeder(db)
	inserted, err := seeder.Run(context.Background())
	if err != nil {
		log.Fatalf("Error: Seeding failed: %v", err)
	}

	if inserted == 0 {
		log.Println("Questions already exist, nothing to do")
	} else {
		log.Printf("Inserted %d sample questions", inserted)
	}
}
