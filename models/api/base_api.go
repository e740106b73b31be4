package apimodels

import "time"

type ErrorResponse struct {
	Error   string `json:"error"`             //сообщение об ошибке
	Details string `json:"details,omitempty"` //подробности, если есть
}

func NewError(message string) ErrorResponse {
	return ErrorResponse{
		Error: message,
	}
}

func NewErrorDetails(message, details string) ErrorResponse {
	return ErrorResponse{
		Error:   message,
		Details: details,
	}
}

type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}
