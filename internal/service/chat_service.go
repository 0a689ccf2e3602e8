package service

import (
	"context"
	"errors"
	"strings"

	"intent-chatbot/internal/dto"
	"intent-chatbot/internal/matcher"
	"intent-chatbot/internal/models"

	"go.uber.org/zap"
)

var ErrEmptyMessage = errors.New("message is empty")

// IntentMatcher is the engine surface used by the services.
type IntentMatcher interface {
	RespondWithResult(text string) (string, matcher.Result)
	Train(defs []models.IntentDefinition) (matcher.Summary, error)
	DebugInfo() matcher.DebugInfo
	Trained() bool
	Strategy() matcher.Strategy
}

type ChatService struct {
	matcher IntentMatcher
	logger  *zap.Logger
}

func NewChatService(m IntentMatcher, logger *zap.Logger) *ChatService {
	return &ChatService{
		matcher: m,
		logger:  logger,
	}
}

// Reply answers one user message. Blank messages return ErrEmptyMessage
// without reaching the matcher.
func (s *ChatService) Reply(ctx context.Context, message string) (*dto.ChatResponse, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, ErrEmptyMessage
	}

	response, res := s.matcher.RespondWithResult(message)

	s.logger.Debug("Message matched",
		zap.String("intent", res.Tag),
		zap.Float64("score", res.Score),
		zap.Bool("matched", res.Matched),
		zap.Bool("trained", res.Trained),
	)

	out := &dto.ChatResponse{
		Response:    response,
		Status:      dto.StatusSuccess,
		UserMessage: message,
		Score:       res.Score,
	}
	if res.Matched {
		out.Intent = res.Tag
	}
	return out, nil
}

func (s *ChatService) DebugInfo() matcher.DebugInfo {
	return s.matcher.DebugInfo()
}
