package utils

import "net/http"

// AppError is a service-layer failure that already knows which HTTP status it
// maps to. Anything else bubbling out of a service is treated as a 500.
type AppError struct {
	Status  int
	Message string
}

func (e *AppError) Error() string { return e.Message }

func NewAppError(status int, message string) *AppError {
	return &AppError{Status: status, Message: message}
}

func ErrValidation(message string) *AppError {
	return NewAppError(http.StatusBadRequest, message)
}

func ErrUnauthenticated(message string) *AppError {
	return NewAppError(http.StatusUnauthorized, message)
}

func ErrForbidden() *AppError {
	return NewAppError(http.StatusForbidden, "forbidden")
}

func ErrNotFound(message string) *AppError {
	return NewAppError(http.StatusNotFound, message)
}

func ErrConflict(message string) *AppError {
	return NewAppError(http.StatusConflict, message)
}
