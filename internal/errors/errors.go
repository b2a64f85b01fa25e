// Package errors provides the error taxonomy shared by the bizdesk client and
// its reference collaborator. Every failure surfaced to a caller is an
// *AppError so that presentation code can branch on a stable code and show a
// message without inspecting transport details.
package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"strings"
)

// FieldError describes a single client-side validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, and optional internal error.
type AppError struct {
	Code       string       `json:"code"`
	Message    string       `json:"message"`
	StatusCode int          `json:"-"`
	Fields     []FieldError `json:"fields,omitempty"`

	// ServerMessage is the collaborator's own message, empty when the
	// response carried none.
	ServerMessage string `json:"-"`
	Body          string `json:"-"`
	Internal      error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if len(e.Fields) == 0 {
		return e.Message
	}
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Message)
	}
	return e.Message + ": " + strings.Join(parts, "; ")
}

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Is reports whether target is an AppError with the same code, so derived
// errors still match their sentinel.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// HasField reports whether a validation error names the given field.
func (e *AppError) HasField(field string) bool {
	for _, f := range e.Fields {
		if f.Field == field {
			return true
		}
	}
	return false
}

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// WithStatus creates a new AppError carrying a different HTTP status.
func WithStatus(sentinel *AppError, status int) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: status,
		Internal:   sentinel.Internal,
	}
}

// Validation builds a VALIDATION_FAILED error carrying the given field errors.
func Validation(fields ...FieldError) *AppError {
	return &AppError{
		Code:       ErrValidation.Code,
		Message:    ErrValidation.Message,
		StatusCode: ErrValidation.StatusCode,
		Fields:     fields,
	}
}

// Required is shorthand for a "required" field error.
func Required(field string) FieldError {
	return FieldError{Field: field, Rule: "required", Message: field + " is required"}
}

// Invalid is shorthand for a malformed field value.
func Invalid(field, rule string) FieldError {
	return FieldError{Field: field, Rule: rule, Message: fmt.Sprintf("%s is invalid (%s)", field, rule)}
}

// Code returns the code of an AppError, or "" for any other error.
func Code(err error) string {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Code
	}
	return ""
}

// ServerMessage returns the collaborator-supplied message carried by err, if any.
func ServerMessage(err error) string {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.ServerMessage
	}
	return ""
}

// Client-side errors.
var (
	ErrValidation         = &AppError{Code: "VALIDATION_FAILED", Message: "Please fill in all required fields", StatusCode: http.StatusBadRequest}
	ErrInvalidCredentials = &AppError{Code: "INVALID_CREDENTIALS", Message: "Invalid username or password", StatusCode: http.StatusUnauthorized}
	ErrRequestFailed      = &AppError{Code: "REQUEST_FAILED", Message: "Request failed"}
	ErrNetwork            = &AppError{Code: "NETWORK_ERROR", Message: "Network error. Please try again."}
	ErrSessionExpired     = &AppError{Code: "SESSION_EXPIRED", Message: "Your session has expired, please log in again", StatusCode: http.StatusUnauthorized}
	ErrUnauthenticated    = &AppError{Code: "UNAUTHENTICATED", Message: "Authentication required", StatusCode: http.StatusUnauthorized}
	ErrForbidden          = &AppError{Code: "FORBIDDEN", Message: "You do not have permission to access this resource", StatusCode: http.StatusForbidden}
)

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrNotFound       = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// Account errors.
var (
	ErrAccountNotFound       = &AppError{Code: "ACCOUNT_NOT_FOUND", Message: "Account not found", StatusCode: http.StatusNotFound}
	ErrDuplicateUsername     = &AppError{Code: "DUPLICATE_USERNAME", Message: "Username is already taken", StatusCode: http.StatusConflict}
	ErrDuplicateAccountEmail = &AppError{Code: "DUPLICATE_ACCOUNT_EMAIL", Message: "Email is already registered", StatusCode: http.StatusConflict}
)

// User errors.
var (
	ErrUserNotFound   = &AppError{Code: "USER_NOT_FOUND", Message: "User not found", StatusCode: http.StatusNotFound}
	ErrDuplicateEmail = &AppError{Code: "DUPLICATE_EMAIL", Message: "A user with this email already exists", StatusCode: http.StatusConflict}
)

// Expense and category errors.
var (
	ErrExpenseNotFound  = &AppError{Code: "EXPENSE_NOT_FOUND", Message: "Expense not found", StatusCode: http.StatusNotFound}
	ErrCategoryNotFound = &AppError{Code: "CATEGORY_NOT_FOUND", Message: "Category not found", StatusCode: http.StatusNotFound}
)
