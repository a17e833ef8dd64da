package controller

import (
	"studybot-be/internal/dto"
	"studybot-be/internal/pkg/serverutils"
	"studybot-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAdminController interface {
	RegisterRoutes(r fiber.Router)
	GetStats(ctx *fiber.Ctx) error
	GetTopics(ctx *fiber.Ctx) error
	SampleQuestions(ctx *fiber.Ctx) error
	AddQuestion(ctx *fiber.Ctx) error
}

type adminController struct {
	conversations service.IConversationService
	questions     service.IQuestionService
}

func NewAdminController(conversations service.IConversationService, questions service.IQuestionService) IAdminController {
	return &adminController{
		conversations: conversations,
		questions:     questions,
	}
}

func (c *adminController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/admin/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("stats", c.GetStats)
	h.Get("topics", c.GetTopics)
	h.Get("questions/sample", c.SampleQuestions)
	h.Post("questions", c.AddQuestion)
}

func (c *adminController) GetStats(ctx *fiber.Ctx) error {
	res, err := c.conversations.Stats(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get session stats", res))
}

func (c *adminController) GetTopics(ctx *fiber.Ctx) error {
	res, err := c.questions.Topics(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get topics", res))
}

func (c *adminController) SampleQuestions(ctx *fiber.Ctx) error {
	topic := ctx.Query("topic", "")
	if topic == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "topic parameter is required"))
	}
	limit := ctx.QueryInt("limit", 10)

	res, err := c.questions.Sample(ctx.Context(), topic, limit)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success sample questions", res))
}

func (c *adminController) AddQuestion(ctx *fiber.Ctx) error {
	var req dto.AddQuestionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.questions.AddQuestion(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success add question", res))
}
