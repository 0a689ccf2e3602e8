package handlers

import (
	"errors"

	"intent-chatbot/internal/dto"
	"intent-chatbot/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type AuthHandler struct {
	authService *service.AuthService
	validator   *validator.Validate
	logger      *zap.Logger
}

func NewAuthHandler(authService *service.AuthService, validate *validator.Validate, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		validator:   validate,
		logger:      logger,
	}
}

// Token godoc
// @Summary Issue an admin token
// @Description Exchange the admin password for a bearer token that unlocks the training endpoints
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.TokenRequest true "Admin password"
// @Success 200 {object} dto.TokenResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /api/auth/token [post]
func (h *AuthHandler) Token(c *fiber.Ctx) error {
	var req dto.TokenRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "Invalid request body",
		})
	}
	if err := h.validator.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "Password is required",
		})
	}

	resp, err := h.authService.IssueToken(c.UserContext(), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: "Invalid credentials",
			})
		}
		h.logger.Error("Token issue failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: "Token issue failed",
		})
	}

	return c.JSON(resp)
}
