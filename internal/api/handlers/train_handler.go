package handlers

import (
	"errors"

	"intent-chatbot/internal/dto"
	"intent-chatbot/internal/matcher"
	"intent-chatbot/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type TrainHandler struct {
	trainingService *service.TrainingService
	logger          *zap.Logger
}

func NewTrainHandler(trainingService *service.TrainingService, logger *zap.Logger) *TrainHandler {
	return &TrainHandler{
		trainingService: trainingService,
		logger:          logger,
	}
}

// Train godoc
// @Summary Retrain the bot
// @Description Reloads the configured catalog source and rebuilds the intent catalog
// @Tags training
// @Produce json
// @Security Bearer
// @Success 200 {object} dto.TrainResponse
// @Router /train [post]
func (h *TrainHandler) Train(c *fiber.Ctx) error {
	resp, err := h.trainingService.Retrain(c.UserContext())
	if err != nil {
		return c.JSON(dto.TrainErrorResponse{
			Status:  dto.StatusError,
			Message: err.Error(),
		})
	}
	return c.JSON(resp)
}

// APITrain godoc
// @Summary Retrain the bot
// @Description Rebuilds the intent catalog from the request body, or from the configured source when the body is empty
// @Tags training
// @Accept json
// @Produce json
// @Param request body dto.TrainRequest false "Intent definitions"
// @Security Bearer
// @Success 200 {object} dto.TrainResponse
// @Failure 400 {object} dto.TrainErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/train [post]
func (h *TrainHandler) APITrain(c *fiber.Ctx) error {
	var req dto.TrainRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: "Invalid JSON",
			})
		}
	}

	resp, err := h.trainingService.TrainWith(c.UserContext(), req.Intents)
	if err != nil {
		var defErr *matcher.DefinitionError
		if errors.As(err, &defErr) {
			index := defErr.Index
			return c.Status(fiber.StatusBadRequest).JSON(dto.TrainErrorResponse{
				Status:  dto.StatusError,
				Message: defErr.Error(),
				Index:   &index,
				Tag:     defErr.Tag,
				Field:   defErr.Field,
			})
		}
		h.logger.Error("Training failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: err.Error(),
		})
	}

	return c.JSON(resp)
}
