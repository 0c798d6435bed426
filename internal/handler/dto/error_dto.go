package dto

import "net/http"

// Фиксированные сообщения таксономии ошибок API
const (
	messageBadRequest    = "bad request"
	messageNotFound      = "resource not found"
	messageUnprocessable = "unprocessable"
)

// ErrorResponse - единое тело ошибки для всех отказов API
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   int    `json:"error"`
	Message string `json:"message"`
}

// NewErrorResponse создает тело ошибки для кода таксономии.
// Таксономия закрыта тремя кодами, все прочее приводится к 422.
func NewErrorResponse(status int) ErrorResponse {
	var message string
	switch status {
	case http.StatusBadRequest:
		message = messageBadRequest
	case http.StatusNotFound:
		message = messageNotFound
	default:
		status = http.StatusUnprocessableEntity
		message = messageUnprocessable
	}
	return ErrorResponse{
		Success: false,
		Error:   status,
		Message: message,
	}
}
