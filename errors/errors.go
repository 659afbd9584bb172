package errors

import (
	"fmt"
	"net/http"
	"strings"
)

// Error is the API error type carried through services up to the handlers.
// Status is the HTTP status the handler should respond with.
type Error struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
}

var (
	ErrNotFound            = New("resource not found", http.StatusNotFound)
	ErrBadRequest          = New("bad request", http.StatusBadRequest)
	ErrUnauthorized        = New("unauthorized", http.StatusUnauthorized)
	ErrForbidden           = New("forbidden", http.StatusForbidden)
	ErrInvalidPassword     = New("invalid email or password", http.StatusUnprocessableEntity)
	ErrInternalServerError = New("internal server error", http.StatusInternalServerError)
)

func New(message string, status int) *Error {
	return &Error{
		Message: message,
		Status:  status,
	}
}

func (e *Error) Error() string {
	return fmt.Sprintf("error: message: %s; status: %d", e.Message, e.Status)
}

// GetUniqueContraintError maps a postgres unique-violation failure to a
// client-facing 400, so repos can return the raw gorm error.
func GetUniqueContraintError(err error) *Error {
	if err == nil {
		return nil
	}
	msg := err.Error()
	if strings.Contains(msg, "duplicate key value") || strings.Contains(msg, "23505") {
		return New("record already exists", http.StatusBadRequest)
	}
	return ErrInternalServerError
}
