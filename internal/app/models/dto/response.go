package dto

// HealthResponse represents the health check payload
type HealthResponse struct {
	Status string `json:"status" example:"ok"`
}
