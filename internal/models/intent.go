package models

import (
	"time"

	"github.com/google/uuid"
)

// IntentDefinition is one labeled intent as supplied for training.
type IntentDefinition struct {
	Tag       string   `json:"tag" yaml:"tag" validate:"required"`
	Patterns  []string `json:"patterns" yaml:"patterns" validate:"required,min=1,dive,required"`
	Responses []string `json:"responses" yaml:"responses" validate:"required,min=1,dive,required"`
}

// TrainingData is the shape of training files and train request bodies.
type TrainingData struct {
	Intents []IntentDefinition `json:"intents" yaml:"intents"`
}

// IntentRecord is a row of the intents table. Position keeps catalog order.
type IntentRecord struct {
	ID        uuid.UUID `db:"id"`
	Tag       string    `db:"tag"`
	Patterns  []string  `db:"patterns"`
	Responses []string  `db:"responses"`
	Position  int       `db:"position"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (r *IntentRecord) Definition() IntentDefinition {
	return IntentDefinition{
		Tag:       r.Tag,
		Patterns:  r.Patterns,
		Responses: r.Responses,
	}
}
