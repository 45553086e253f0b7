package errors

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/feral-file/rustaceans/internal/domain"
)

// ErrorCode represents a standardized error code
type ErrorCode string

const (
	// Client errors (4xx)
	ErrCodeBadRequest       ErrorCode = "bad_request"
	ErrCodeNotFound         ErrorCode = "not_found"
	ErrCodeValidationFailed ErrorCode = "validation_failed"
	ErrCodeUnauthorized     ErrorCode = "unauthorized"
	ErrCodeForbidden        ErrorCode = "forbidden"

	// Server errors (5xx)
	ErrCodeInternalError ErrorCode = "internal_error"
	ErrCodeServiceError  ErrorCode = "service_error"
)

// APIError represents a structured API error that carries error code and details.
// Rejected issuance calls use the domain reason (e.g. PRICE_NOT_MET) as the code.
type APIError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Details string    `json:"details,omitempty"`
}

func (e *APIError) Error() string {
	jsonErr, _ := json.Marshal(e)
	return string(jsonErr)
}

// Response is the envelope every error is returned in
type Response struct {
	Error *APIError `json:"error"`
}

// Wrap returns the response envelope for e
func (e *APIError) Wrap() Response {
	return Response{Error: e}
}

// Error constructors for common error types
func NewBadRequestError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeBadRequest,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

func NewNotFoundError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeNotFound,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

func NewValidationError(details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeValidationFailed,
		Message: "Validation failed",
		Details: strings.Join(details, ", "),
	}
}

func NewUnauthorizedError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeUnauthorized,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

func NewForbiddenError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeForbidden,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

func NewInternalError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeInternalError,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

func NewServiceError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeServiceError,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

// rejectionStatus maps domain reasons to HTTP statuses
var rejectionStatus = map[string]int{
	domain.ReasonNotOwner:         http.StatusForbidden,
	domain.ReasonNotTokenOwner:    http.StatusForbidden,
	domain.ReasonNotEnoughCranes:  http.StatusUnprocessableEntity,
	domain.ReasonPriceNotMet:      http.StatusPaymentRequired,
	domain.ReasonUnknownToken:     http.StatusNotFound,
	domain.ReasonInvalidRecipient: http.StatusBadRequest,
	domain.ReasonInvalidAmount:    http.StatusBadRequest,
}

// FromDomainError converts an error returned by the issuance controller into
// an HTTP status and API error. Anything that is not a rejection is internal.
func FromDomainError(err error) (int, *APIError) {
	if !domain.IsRejection(err) {
		return http.StatusInternalServerError, NewInternalError("Internal server error")
	}

	reason := domain.Reason(err)
	apiErr := &APIError{
		Code:    ErrorCode(reason),
		Message: rootMessage(err),
	}
	if diag := domain.Diagnostic(err); diag != reason {
		apiErr.Details = diag
	}

	status, ok := rejectionStatus[reason]
	if !ok {
		status = http.StatusBadRequest
	}
	return status, apiErr
}

// rootMessage returns the message of the outermost sentinel, without the
// operation prefixes added while wrapping
func rootMessage(err error) string {
	for _, sentinel := range []error{
		domain.ErrNotOwner,
		domain.ErrInsufficientCranes,
		domain.ErrPaymentTooLow,
		domain.ErrUnknownToken,
		domain.ErrInvalidRecipient,
		domain.ErrInvalidAmount,
		domain.ErrNotTokenOwner,
	} {
		if errors.Is(err, sentinel) {
			return sentinel.Error()
		}
	}
	return err.Error()
}
