package bootstrap

import (
	"log"

	"studybot-be/internal/config"
	"studybot-be/internal/controller"
	"studybot-be/internal/pkg/logger"
	"studybot-be/internal/repository/contract"
	"studybot-be/internal/repository/implementation"
	"studybot-be/internal/repository/memory"
	"studybot-be/internal/service"
	"studybot-be/pkg/conversation"
	"studybot-be/pkg/whatsapp"

	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	WebhookController controller.IWebhookController
	AdminController   controller.IAdminController
	HealthController  controller.IHealthController

	// Exposed for main.go to run the cleanup loop
	ConversationService service.IConversationService

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// Repositories
	questionRepo := implementation.NewQuestionRepository(db)

	var sessionRepo contract.SessionRepository
	if cfg.Session.Store == "postgres" {
		sessionRepo = implementation.NewSessionRepository(db)
		log.Println("[INFO] Using Session Store: POSTGRES")
	} else {
		sessionRepo = memory.NewSessionRepository(cfg.Session.MaxIdle)
		log.Println("[INFO] Using Session Store: MEMORY")
	}

	// Core
	engine := conversation.NewEngine(questionRepo)
	sender := whatsapp.NewClient(
		cfg.WhatsApp.AccessToken,
		cfg.WhatsApp.PhoneNumberId,
		cfg.WhatsApp.APIBaseURL,
	)

	// Services
	conversationService := service.NewConversationService(sessionRepo, engine, sender, sysLogger)
	questionService := service.NewQuestionService(questionRepo)

	return &Container{
		WebhookController:   controller.NewWebhookController(conversationService, cfg.WhatsApp.VerifyToken, sysLogger),
		AdminController:     controller.NewAdminController(conversationService, questionService),
		HealthController:    controller.NewHealthController(),
		ConversationService: conversationService,
		Logger:              sysLogger,
	}
}
