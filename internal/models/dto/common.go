package dto

// ErrorResponseDTO is the JSON body of every non-2xx response.
type ErrorResponseDTO struct {
	Error   string `json:"error,omitempty"`
	Message string `json:"message"`
}

// RateLimitResponse is returned when the request rate limit is exceeded.
type RateLimitResponse struct {
	Message string `json:"message"`
}
