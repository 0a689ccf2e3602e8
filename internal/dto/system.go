package dto

type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Version string `json:"version"`
	Intents int    `json:"intents"`
	Trained bool   `json:"trained"`
	Scorer  string `json:"scorer"`
}

type InfoResponse struct {
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Endpoints   map[string]string `json:"endpoints"`
}

type ErrorResponse struct {
	Error      string `json:"error"`
	StatusCode int    `json:"status_code,omitempty"`
}
