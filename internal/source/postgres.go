package source

import (
	"context"
	"fmt"

	"intent-chatbot/internal/models"
)

// IntentLister is the part of the intent repository the Postgres source needs.
type IntentLister interface {
	List(ctx context.Context) ([]*models.IntentRecord, error)
}

type Postgres struct {
	Repo IntentLister
}

func (p *Postgres) Name() string { return "postgres" }

func (p *Postgres) Load(ctx context.Context) ([]models.IntentDefinition, error) {
	records, err := p.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load intents from postgres: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: intents table is empty", ErrNoDefinitions)
	}

	defs := make([]models.IntentDefinition, 0, len(records))
	for _, rec := range records {
		defs = append(defs, rec.Definition())
	}
	return defs, nil
}
