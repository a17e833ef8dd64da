package controller

import (
	"studybot-be/internal/dto"
	"studybot-be/internal/pkg/logger"
	"studybot-be/internal/pkg/serverutils"
	"studybot-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IWebhookController interface {
	RegisterRoutes(r fiber.Router, appSecret string)
	Verify(ctx *fiber.Ctx) error
	Receive(ctx *fiber.Ctx) error
}

type webhookController struct {
	conversations service.IConversationService
	verifyToken   string
	logger        logger.ILogger
}

func NewWebhookController(conversations service.IConversationService, verifyToken string, sysLogger logger.ILogger) IWebhookController {
	return &webhookController{
		conversations: conversations,
		verifyToken:   verifyToken,
		logger:        sysLogger,
	}
}

func (c *webhookController) RegisterRoutes(r fiber.Router, appSecret string) {
	r.Get("/webhook", c.Verify)
	r.Post("/webhook", serverutils.SignatureMiddleware(appSecret), c.Receive)
}

// Verify answers Meta's subscription handshake: echo hub.challenge when the
// verify token matches.
func (c *webhookController) Verify(ctx *fiber.Ctx) error {
	mode := ctx.Query("hub.mode")
	token := ctx.Query("hub.verify_token")
	challenge := ctx.Query("hub.challenge")

	if mode == "" || token == "" {
		return ctx.Status(fiber.StatusBadRequest).SendString("Bad Request")
	}
	if mode != "subscribe" || token != c.verifyToken {
		c.logger.Warn("webhook", "Webhook verification failed", map[string]interface{}{
			"mode": mode,
		})
		return ctx.Status(fiber.StatusForbidden).SendString("Forbidden")
	}

	c.logger.Info("webhook", "Webhook verified", nil)
	return ctx.Status(fiber.StatusOK).SendString(challenge)
}

// Receive handles an inbound webhook delivery. Entries are processed
// sequentially and independently: one bad entry is logged and skipped without
// losing its siblings, and the response is 200 either way so Meta does not
// re-deliver the batch.
func (c *webhookController) Receive(ctx *fiber.Ctx) error {
	var payload dto.WebhookPayload
	if err := ctx.BodyParser(&payload); err != nil {
		c.logger.Warn("webhook", "Unparseable webhook payload", map[string]interface{}{
			"error": err.Error(),
		})
		return ctx.Status(fiber.StatusBadRequest).SendString("Bad Request")
	}

	if payload.Object != "whatsapp_business_account" {
		return ctx.SendString("OK")
	}

	for _, entry := range payload.Entry {
		if err := c.processEntry(ctx, entry); err != nil {
			c.logger.Error("webhook", "Entry processing failed", map[string]interface{}{
				"entry_id": entry.Id, "error": err.Error(),
			})
		}
	}

	return ctx.SendString("OK")
}

func (c *webhookController) processEntry(ctx *fiber.Ctx, entry dto.WebhookEntry) error {
	if len(entry.Changes) == 0 {
		return nil
	}
	value := entry.Changes[0].Value
	if len(value.Messages) == 0 {
		return nil
	}

	message := value.Messages[0]
	text := message.BodyText()

	c.logger.Info("webhook", "Inbound message", map[string]interface{}{
		"from": message.From, "type": message.Type,
	})

	return c.conversations.HandleInbound(ctx.Context(), message.From, message.Id, text)
}
