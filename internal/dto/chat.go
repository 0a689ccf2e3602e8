package dto

type ChatRequest struct {
	Message string `json:"message"`
}

type ChatResponse struct {
	Response    string  `json:"response"`
	Status      string  `json:"status,omitempty"`
	UserMessage string  `json:"user_message,omitempty"`
	Intent      string  `json:"intent,omitempty"`
	Score       float64 `json:"score,omitempty"`
}
