// Package errors provides custom error types for the Allowance API.
// All service-layer errors should use AppError to ensure consistent,
// secure error responses that never leak internal details to clients.
package errors

import "net/http"

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, and optional internal error.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

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

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrNotFound       = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// Storage errors. The storage layer is the only place allowed to mint
// STORAGE_UNAVAILABLE; it is never silently treated as "empty".
var (
	ErrStorageUnavailable = &AppError{Code: "STORAGE_UNAVAILABLE", Message: "Storage is temporarily unavailable, please retry", StatusCode: http.StatusServiceUnavailable}
)

// Budget period errors.
var (
	ErrPeriodNotFound         = &AppError{Code: "PERIOD_NOT_FOUND", Message: "Budget period not found", StatusCode: http.StatusNotFound}
	ErrPeriodNotEditable      = &AppError{Code: "PERIOD_NOT_EDITABLE", Message: "This budget period is outside the editable window", StatusCode: http.StatusUnprocessableEntity}
	ErrNoValidCategories      = &AppError{Code: "NO_VALID_CATEGORIES", Message: "At least one category with a name and a positive amount is required", StatusCode: http.StatusBadRequest}
	ErrPartialSaveFailure     = &AppError{Code: "PARTIAL_SAVE_FAILURE", Message: "The budget could not be saved completely, please retry", StatusCode: http.StatusInternalServerError}
	ErrConcurrentModification = &AppError{Code: "CONCURRENT_MODIFICATION", Message: "The budget was modified by another request, reload and retry", StatusCode: http.StatusConflict}
)

// Template errors.
var (
	ErrTemplateEmpty = &AppError{Code: "TEMPLATE_EMPTY", Message: "No template budget exists to base suggestions on", StatusCode: http.StatusUnprocessableEntity}
)

// Category errors.
var (
	ErrCategoryNotFound = &AppError{Code: "CATEGORY_NOT_FOUND", Message: "Category not found", StatusCode: http.StatusNotFound}
)

// Transaction errors.
var (
	ErrTransactionNotFound    = &AppError{Code: "TRANSACTION_NOT_FOUND", Message: "Transaction not found", StatusCode: http.StatusNotFound}
	ErrInvalidTransactionType = &AppError{Code: "INVALID_TRANSACTION_TYPE", Message: "Unsupported transaction type", StatusCode: http.StatusBadRequest}
)
