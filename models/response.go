package models

// OptimizationResult is returned when the provider produced a completion.
type OptimizationResult struct {
	Optimized string `json:"optimized"`
}

// ErrorResponse carries the failure message for every non-2xx response.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

type HealthResponse struct {
	Status string `json:"status"`
}
