package handlers

import (
	"intent-chatbot/internal/dto"
	"intent-chatbot/internal/service"

	"github.com/gofiber/fiber/v2"
)

const (
	ServiceName = "Chatbot API"
	Version     = "1.0.0"
)

type SystemHandler struct {
	chatService *service.ChatService
	scorer      string
}

func NewSystemHandler(chatService *service.ChatService, scorer string) *SystemHandler {
	return &SystemHandler{
		chatService: chatService,
		scorer:      scorer,
	}
}

// Health godoc
// @Summary Health check
// @Tags system
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router /health [get]
func (h *SystemHandler) Health(c *fiber.Ctx) error {
	info := h.chatService.DebugInfo()
	return c.JSON(dto.HealthResponse{
		Status:  "healthy",
		Service: ServiceName,
		Version: Version,
		Intents: len(info.Intents),
		Trained: len(info.Intents) > 0,
		Scorer:  h.scorer,
	})
}

// Info godoc
// @Summary API information
// @Tags system
// @Produce json
// @Success 200 {object} dto.InfoResponse
// @Router /api/info [get]
func (h *SystemHandler) Info(c *fiber.Ctx) error {
	return c.JSON(dto.InfoResponse{
		Name:        "Intent Chatbot",
		Description: "Simple intent-matching chatbot",
		Endpoints: map[string]string{
			"GET /":           "Home page",
			"POST /chat":      "Chat with bot",
			"POST /train":     "Retrain bot from the configured source",
			"POST /api/chat":  "Chat with bot",
			"POST /api/train": "Retrain bot",
			"GET /api/debug":  "Catalog debug information",
			"GET /health":     "Health check",
			"GET /api/info":   "API information",
		},
	})
}

// Debug godoc
// @Summary Catalog debug information
// @Tags system
// @Produce json
// @Success 200 {object} matcher.DebugInfo
// @Router /api/debug [get]
func (h *SystemHandler) Debug(c *fiber.Ctx) error {
	return c.JSON(h.chatService.DebugInfo())
}
