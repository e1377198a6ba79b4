package response

import (
	"github.com/gin-gonic/gin"
)

// Error codes used across the service layer
const (
	ErrCodeValidation    = "VALIDATION_ERROR"
	ErrCodeUnauthorized  = "UNAUTHORIZED"
	ErrCodeNotFound      = "NOT_FOUND"
	ErrCodeAlreadyExists = "ALREADY_EXISTS"
	ErrCodeInternal      = "INTERNAL_ERROR"
)

// AppError is the error type raised by the service layer. Field carries the
// offending request field for validation and credential errors.
type AppError struct {
	Code    string
	Message string
	Field   string
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Field != "" {
		return e.Code + ": " + e.Field + ": " + e.Message
	}
	return e.Code + ": " + e.Message
}

// NewAppError creates a new AppError
func NewAppError(code, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

// NewValidationError creates a validation error naming the malformed field
func NewValidationError(field, message string) *AppError {
	return &AppError{Code: ErrCodeValidation, Message: message, Field: field}
}

// NewUnauthorizedError creates a credential error. field may be empty when
// the failure is not tied to a single request field.
func NewUnauthorizedError(field, message string) *AppError {
	return &AppError{Code: ErrCodeUnauthorized, Message: message, Field: field}
}

// NewNotFoundError creates an entity-absent error
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: ErrCodeNotFound, Message: message}
}

// ErrorDetail represents error details in an HTTP response body
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// ErrorResponse represents an error response body
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// MessageResponse represents a plain acknowledgment body
type MessageResponse struct {
	Message string `json:"message"`
}

// SendError sends a structured error response
func SendError(c *gin.Context, status int, code, message string) {
	c.JSON(status, ErrorResponse{Error: ErrorDetail{Code: code, Message: message}})
}

// SendAppError sends a structured error response preserving the field name
func SendAppError(c *gin.Context, status int, err *AppError) {
	c.JSON(status, ErrorResponse{Error: ErrorDetail{Code: err.Code, Message: err.Message, Field: err.Field}})
}

// SendMessage sends a plain acknowledgment response
func SendMessage(c *gin.Context, status int, message string) {
	c.JSON(status, MessageResponse{Message: message})
}
