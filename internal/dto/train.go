package dto

import "intent-chatbot/internal/models"

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// TrainRequest bodies are optional; no intents means reload from the configured source.
type TrainRequest struct {
	Intents []models.IntentDefinition `json:"intents"`
}

type TrainResponse struct {
	Status         string `json:"status"`
	Message        string `json:"message"`
	IntentsCount   int    `json:"intents_count"`
	VocabularySize int    `json:"vocabulary_size"`
	DocumentsCount int    `json:"documents_count"`
	Source         string `json:"source,omitempty"`
}

type TrainErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Index   *int   `json:"index,omitempty"`
	Tag     string `json:"tag,omitempty"`
	Field   string `json:"field,omitempty"`
}
