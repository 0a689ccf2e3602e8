package handlers

import (
	"errors"

	"intent-chatbot/internal/dto"
	"intent-chatbot/internal/service"
	"intent-chatbot/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const (
	typeMessagePrompt  = "Please type a message!"
	enterMessagePrompt = "Please enter a message!"
)

type ChatHandler struct {
	chatService *service.ChatService
	logger      *zap.Logger
}

func NewChatHandler(chatService *service.ChatService, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{
		chatService: chatService,
		logger:      logger,
	}
}

// Chat godoc
// @Summary Chat with the bot
// @Description Matches the message against the intent catalog and returns a reply
// @Tags chat
// @Accept json
// @Produce json
// @Param request body dto.ChatRequest true "Chat message"
// @Success 200 {object} dto.ChatResponse
// @Router /chat [post]
func (h *ChatHandler) Chat(c *fiber.Ctx) error {
	var req dto.ChatRequest
	if err := c.BodyParser(&req); err != nil {
		h.logger.Warn("Invalid chat request", zap.Error(err), zap.String("request_id", middleware.GetRequestID(c)))
		return c.JSON(dto.ChatResponse{
			Response: "Sorry, I encountered an error: invalid request body",
		})
	}

	resp, err := h.chatService.Reply(c.UserContext(), req.Message)
	if err != nil {
		if errors.Is(err, service.ErrEmptyMessage) {
			return c.JSON(dto.ChatResponse{Response: typeMessagePrompt})
		}
		h.logger.Error("Chat failed", zap.Error(err))
		return c.JSON(dto.ChatResponse{
			Response: "Sorry, I encountered an error: " + err.Error(),
		})
	}

	resp.Status = ""
	return c.JSON(resp)
}

// APIChat godoc
// @Summary Chat with the bot
// @Description Serverless-style chat endpoint with an explicit status field
// @Tags chat
// @Accept json
// @Produce json
// @Param request body dto.ChatRequest true "Chat message"
// @Success 200 {object} dto.ChatResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/chat [post]
func (h *ChatHandler) APIChat(c *fiber.Ctx) error {
	var req dto.ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "Invalid JSON",
		})
	}

	resp, err := h.chatService.Reply(c.UserContext(), req.Message)
	if err != nil {
		if errors.Is(err, service.ErrEmptyMessage) {
			return c.JSON(dto.ChatResponse{
				Response: enterMessagePrompt,
				Status:   dto.StatusError,
			})
		}
		h.logger.Error("Chat failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: err.Error(),
		})
	}

	return c.JSON(resp)
}
