// Package errors provides custom error types for the Sitedesk API.
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
	ErrForbidden      = &AppError{Code: "FORBIDDEN", Message: "Action not allowed for this role", StatusCode: http.StatusForbidden}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// Project errors.
var (
	ErrProjectNotFound = &AppError{Code: "PROJECT_NOT_FOUND", Message: "Project not found", StatusCode: http.StatusNotFound}
)

// Partner errors.
var (
	ErrPartnerNotFound = &AppError{Code: "PARTNER_NOT_FOUND", Message: "Partner not found", StatusCode: http.StatusNotFound}
	ErrInvalidShare    = &AppError{Code: "INVALID_SHARE", Message: "Partner share must be between 0 and 100", StatusCode: http.StatusBadRequest}
)

// Transaction errors.
var (
	ErrInvalidTransactionType = &AppError{Code: "INVALID_TRANSACTION_TYPE", Message: "Unsupported transaction type", StatusCode: http.StatusBadRequest}
	ErrNonPositiveAmount      = &AppError{Code: "NON_POSITIVE_AMOUNT", Message: "Amount must be greater than zero", StatusCode: http.StatusBadRequest}
)

// Site report errors.
var (
	ErrReportNotFound = &AppError{Code: "REPORT_NOT_FOUND", Message: "Site report not found", StatusCode: http.StatusNotFound}
	ErrInvalidDraft   = &AppError{Code: "INVALID_DRAFT", Message: "Report draft has missing or invalid fields", StatusCode: http.StatusBadRequest}
)

// Inventory errors.
var (
	ErrInventoryItemNotFound = &AppError{Code: "INVENTORY_ITEM_NOT_FOUND", Message: "Inventory item not found", StatusCode: http.StatusNotFound}
	ErrInsufficientStock     = &AppError{Code: "INSUFFICIENT_STOCK", Message: "Not enough stock to consume", StatusCode: http.StatusBadRequest}
)

// Purchase request errors.
var (
	ErrRequestNotFound       = &AppError{Code: "REQUEST_NOT_FOUND", Message: "Purchase request not found", StatusCode: http.StatusNotFound}
	ErrIllegalTransition     = &AppError{Code: "ILLEGAL_TRANSITION", Message: "Purchase request status transition is not allowed", StatusCode: http.StatusBadRequest}
	ErrInvalidInitialStatus  = &AppError{Code: "INVALID_INITIAL_STATUS", Message: "Purchase requests must be created as pending", StatusCode: http.StatusBadRequest}
)

// Progress stage errors.
var (
	ErrStageNotFound = &AppError{Code: "STAGE_NOT_FOUND", Message: "Progress stage not found", StatusCode: http.StatusNotFound}
)

// Assistant errors.
var (
	ErrAssistantNotConfigured = &AppError{Code: "ASSISTANT_NOT_CONFIGURED", Message: "Assistant API key is not configured", StatusCode: http.StatusServiceUnavailable}
	ErrAssistantUnavailable   = &AppError{Code: "ASSISTANT_UNAVAILABLE", Message: "The assistant service could not be reached", StatusCode: http.StatusBadGateway}
)
