package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"intent-chatbot/internal/dto"
	"intent-chatbot/internal/matcher"
	"intent-chatbot/internal/models"
	"intent-chatbot/internal/source"
	"intent-chatbot/pkg/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubSource struct {
	defs  []models.IntentDefinition
	err   error
	loads int
}

func (s *stubSource) Name() string { return "stub" }

func (s *stubSource) Load(context.Context) ([]models.IntentDefinition, error) {
	s.loads++
	return s.defs, s.err
}

var greeting = []models.IntentDefinition{
	{Tag: "greeting", Patterns: []string{"hello"}, Responses: []string{"Hi!"}},
}

func TestChatServiceReply(t *testing.T) {
	engine := matcher.New()
	_, err := engine.Train(greeting)
	require.NoError(t, err)
	svc := NewChatService(engine, zap.NewNop())

	resp, err := svc.Reply(context.Background(), "  hello there ")
	require.NoError(t, err)
	assert.Equal(t, "Hi!", resp.Response)
	assert.Equal(t, dto.StatusSuccess, resp.Status)
	assert.Equal(t, "hello there", resp.UserMessage)
	assert.Equal(t, "greeting", resp.Intent)

	resp, err = svc.Reply(context.Background(), "xyzzy")
	require.NoError(t, err)
	assert.Contains(t, matcher.FallbackResponses, resp.Response)
	assert.Empty(t, resp.Intent)
}

type countingMatcher struct {
	IntentMatcher
	calls int
}

func (c *countingMatcher) RespondWithResult(text string) (string, matcher.Result) {
	c.calls++
	return "", matcher.Result{}
}

func TestChatServiceEmptyMessageSkipsMatcher(t *testing.T) {
	m := &countingMatcher{}
	svc := NewChatService(m, zap.NewNop())

	for _, msg := range []string{"", "   ", "\n\t"} {
		_, err := svc.Reply(context.Background(), msg)
		assert.ErrorIs(t, err, ErrEmptyMessage)
	}
	assert.Zero(t, m.calls)
}

func TestChatServiceUntrained(t *testing.T) {
	svc := NewChatService(matcher.New(), zap.NewNop())
	resp, err := svc.Reply(context.Background(), "hello")
	require.NoError(t, err)
	assert.Equal(t, matcher.UntrainedResponse, resp.Response)
}

func TestTrainingServiceRetrain(t *testing.T) {
	engine := matcher.New()
	src := &stubSource{defs: matcher.DefaultDefinitions()}
	svc := NewTrainingService(engine, src, zap.NewNop())

	resp, err := svc.Retrain(context.Background())
	require.NoError(t, err)
	assert.Equal(t, dto.StatusSuccess, resp.Status)
	assert.Equal(t, "Chatbot trained successfully!", resp.Message)
	assert.Equal(t, len(matcher.DefaultDefinitions()), resp.IntentsCount)
	assert.Equal(t, "stub", resp.Source)
	assert.True(t, engine.Trained())
}

func TestTrainingServiceTrainWith(t *testing.T) {
	engine := matcher.New()
	src := &stubSource{defs: matcher.DefaultDefinitions()}
	svc := NewTrainingService(engine, src, zap.NewNop())

	resp, err := svc.TrainWith(context.Background(), greeting)
	require.NoError(t, err)
	assert.Equal(t, 1, resp.IntentsCount)
	assert.Equal(t, "request", resp.Source)
	assert.Zero(t, src.loads)

	resp, err = svc.TrainWith(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, 1, src.loads)
	assert.Equal(t, len(matcher.DefaultDefinitions()), resp.IntentsCount)
}

func TestTrainingServiceInvalidKeepsCatalog(t *testing.T) {
	engine := matcher.New()
	svc := NewTrainingService(engine, &stubSource{}, zap.NewNop())
	_, err := svc.TrainWith(context.Background(), greeting)
	require.NoError(t, err)

	_, err = svc.TrainWith(context.Background(), []models.IntentDefinition{{Tag: "broken"}})
	require.Error(t, err)
	assert.ErrorIs(t, err, matcher.ErrInvalidDefinition)
	assert.Equal(t, []string{"greeting"}, engine.DebugInfo().Intents)
}

func TestTrainingServiceSourceError(t *testing.T) {
	engine := matcher.New()
	svc := NewTrainingService(engine, &stubSource{err: source.ErrNoDefinitions}, zap.NewNop())

	_, err := svc.Retrain(context.Background())
	assert.ErrorIs(t, err, source.ErrNoDefinitions)
	assert.False(t, engine.Trained())
}

func TestAuthServiceIssueToken(t *testing.T) {
	hash, err := auth.HashPassword("s3cret")
	require.NoError(t, err)
	jwtManager := auth.NewJWTManager("test-key", time.Hour)
	svc := NewAuthService(jwtManager, hash, zap.NewNop())

	resp, err := svc.IssueToken(context.Background(), &dto.TokenRequest{Password: "s3cret"})
	require.NoError(t, err)
	assert.Equal(t, "Bearer", resp.TokenType)
	assert.Equal(t, int64(3600), resp.ExpiresIn)

	claims, err := jwtManager.ValidateToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Subject)

	_, err = svc.IssueToken(context.Background(), &dto.TokenRequest{Password: "wrong"})
	assert.True(t, errors.Is(err, ErrInvalidCredentials))
}
