package service

import (
	"context"
	"fmt"

	"intent-chatbot/internal/dto"
	"intent-chatbot/internal/models"
	"intent-chatbot/internal/source"

	"go.uber.org/zap"
)

const trainedMessage = "Chatbot trained successfully!"

type TrainingService struct {
	matcher IntentMatcher
	source  source.CatalogSource
	logger  *zap.Logger
}

func NewTrainingService(m IntentMatcher, src source.CatalogSource, logger *zap.Logger) *TrainingService {
	return &TrainingService{
		matcher: m,
		source:  src,
		logger:  logger,
	}
}

// Retrain reloads the configured catalog source and replaces the catalog.
func (s *TrainingService) Retrain(ctx context.Context) (*dto.TrainResponse, error) {
	defs, err := s.source.Load(ctx)
	if err != nil {
		s.logger.Error("Failed to load intent definitions", zap.String("source", s.source.Name()), zap.Error(err))
		return nil, fmt.Errorf("failed to load intent definitions: %w", err)
	}
	return s.train(defs, s.source.Name())
}

// TrainWith replaces the catalog with defs. No definitions means Retrain.
func (s *TrainingService) TrainWith(ctx context.Context, defs []models.IntentDefinition) (*dto.TrainResponse, error) {
	if len(defs) == 0 {
		return s.Retrain(ctx)
	}
	return s.train(defs, "request")
}

func (s *TrainingService) train(defs []models.IntentDefinition, origin string) (*dto.TrainResponse, error) {
	summary, err := s.matcher.Train(defs)
	if err != nil {
		s.logger.Warn("Training rejected", zap.String("source", origin), zap.Error(err))
		return nil, err
	}

	s.logger.Info("Training complete",
		zap.String("source", origin),
		zap.Int("intents", summary.Intents),
		zap.Int("vocabulary", summary.Vocabulary),
		zap.Int("documents", summary.Documents),
	)

	return &dto.TrainResponse{
		Status:         dto.StatusSuccess,
		Message:        trainedMessage,
		IntentsCount:   summary.Intents,
		VocabularySize: summary.Vocabulary,
		DocumentsCount: summary.Documents,
		Source:         origin,
	}, nil
}
