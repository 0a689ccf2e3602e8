// Package source loads intent definitions for training.
package source

import (
	"context"
	"errors"

	"intent-chatbot/internal/matcher"
	"intent-chatbot/internal/models"

	"go.uber.org/zap"
)

// ErrNoDefinitions means a source is reachable but holds no intents.
var ErrNoDefinitions = errors.New("no intent definitions")

// CatalogSource supplies the definitions a retrain starts from.
type CatalogSource interface {
	Name() string
	Load(ctx context.Context) ([]models.IntentDefinition, error)
}

// Builtin serves the compiled-in default catalog.
type Builtin struct{}

func (Builtin) Name() string { return "builtin" }

func (Builtin) Load(context.Context) ([]models.IntentDefinition, error) {
	return matcher.DefaultDefinitions(), nil
}

// Fallback tries Primary and falls back to Secondary when Primary is missing
// or empty. Any other Primary error is returned as is.
type Fallback struct {
	Primary   CatalogSource
	Secondary CatalogSource
	Logger    *zap.Logger
}

func (f *Fallback) Name() string { return f.Primary.Name() }

func (f *Fallback) Load(ctx context.Context) ([]models.IntentDefinition, error) {
	defs, err := f.Primary.Load(ctx)
	if err == nil {
		return defs, nil
	}
	if !errors.Is(err, ErrNoDefinitions) {
		return nil, err
	}
	if f.Logger != nil {
		f.Logger.Info("Catalog source unavailable, using fallback",
			zap.String("source", f.Primary.Name()),
			zap.String("fallback", f.Secondary.Name()),
			zap.Error(err),
		)
	}
	return f.Secondary.Load(ctx)
}
