// AngelaMos | 2026
// errors.go

package core

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrDuplicateKey = errors.New("duplicate key")
	ErrInvalidInput = errors.New("invalid input")
	ErrUnauthorized = errors.New("unauthorized")
	ErrTokenInvalid = errors.New("token invalid")
	ErrTokenExpired = errors.New("token expired")
)

// Business rule kinds. Each one is terminal for the request and reported to
// the caller with a stable code.
var (
	ErrMissingBoatLicense            = errors.New("missing boat license")
	ErrNoOwnedBoat                   = errors.New("no owned boat")
	ErrCapacityExceeded              = errors.New("capacity exceeded")
	ErrInvalidBoundingBox            = errors.New("invalid bounding box")
	ErrIncompleteProfessionalProfile = errors.New("incomplete professional profile")
	ErrDuplicateEmail                = errors.New("duplicate email")
	ErrInvalidCapacity               = errors.New("invalid capacity")
	ErrBerthsExceedCapacity          = errors.New("berths exceed capacity")
	ErrNegativePrice                 = errors.New("negative price")
	ErrInvalidPassengerCount         = errors.New("invalid passenger count")
	ErrPassengerCountExceedsCapacity = errors.New("passenger count exceeds capacity")
	ErrInvalidDateRange              = errors.New("invalid date range")
	ErrInvalidTimeRange              = errors.New("invalid time range")
	ErrOccurrenceTripMismatch        = errors.New("occurrence trip mismatch")
	ErrInvalidPlaceCount             = errors.New("invalid place count")
	ErrInvalidSize                   = errors.New("invalid size")
	ErrInvalidWeight                 = errors.New("invalid weight")
	ErrFutureDate                    = errors.New("future date")
	ErrUnauthenticated               = errors.New("unauthenticated")
	ErrInvalidCredentials            = errors.New("invalid credentials")
	ErrInvalidBoatReference          = errors.New("invalid boat reference")
)

const (
	CodeMissingBoatLicense            = "FF-001"
	CodeNoOwnedBoat                   = "FF-002"
	CodeCapacityExceeded              = "FF-003"
	CodeInvalidBoundingBox            = "FF-004"
	CodeIncompleteProfessionalProfile = "FF-005"
	CodeDuplicateEmail                = "FF-006"
	CodeUserNotFound                  = "FF-007"
	CodeInvalidCapacity               = "FF-008"
	CodeBerthsExceedCapacity          = "FF-009"
	CodeNegativePrice                 = "FF-010"
	CodeBoatNotFound                  = "FF-011"
	CodeInvalidBoatReference          = "FF-012"
	CodeInvalidPassengerCount         = "FF-013"
	CodePassengerCountExceedsCapacity = "FF-014"
	CodeTripNotFound                  = "FF-015"
	CodeInvalidDateRange              = "FF-016"
	CodeInvalidTimeRange              = "FF-017"
	CodeOccurrenceTripMismatch        = "FF-018"
	CodeInvalidPlaceCount             = "FF-019"
	CodeBookingNotFound               = "FF-020"
	CodeInvalidSize                   = "FF-021"
	CodeInvalidWeight                 = "FF-022"
	CodeFutureDate                    = "FF-023"
	CodeLogEntryNotFound              = "FF-024"
	CodeOccurrenceNotFound            = "FF-025"
	CodeBoatDeleteDenied              = "FF-026"
	CodeTripDeleteDenied              = "FF-027"
	CodeBookingDeleteDenied           = "FF-028"
	CodeLogEntryDeleteDenied          = "FF-029"
	CodeInvalidInput                  = "FF-400"
	CodeUnauthenticated               = "FF-401"
	CodeInvalidCredentials            = "FF-401"
)

// BusinessError is a precondition violation. Kind is one of the sentinels
// above (or ErrNotFound / ErrUnauthorized / ErrInvalidInput) so callers can
// match with errors.Is.
type BusinessError struct {
	Kind    error
	Code    string
	Message string
}

func (e *BusinessError) Error() string {
	return e.Message
}

func (e *BusinessError) Unwrap() error {
	return e.Kind
}

func NewBusinessError(kind error, code, message string) *BusinessError {
	return &BusinessError{Kind: kind, Code: code, Message: message}
}

func Businessf(
	kind error,
	code, format string,
	args ...any,
) *BusinessError {
	return NewBusinessError(kind, code, fmt.Sprintf(format, args...))
}

func IsBusinessError(err error) bool {
	var be *BusinessError
	return errors.As(err, &be)
}

func AsBusinessError(err error) (*BusinessError, bool) {
	var be *BusinessError
	if errors.As(err, &be) {
		return be, true
	}
	return nil, false
}

func Unauthenticated(message string) *BusinessError {
	return NewBusinessError(ErrUnauthenticated, CodeUnauthenticated, message)
}

func InvalidInput(message string) *BusinessError {
	return NewBusinessError(ErrInvalidInput, CodeInvalidInput, message)
}

// AppError is an HTTP-facing error for the plain JSON endpoints.
type AppError struct {
	Err        error
	Message    string
	StatusCode int
	Code       string
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewAppError(err error, message string, status int, code string) *AppError {
	return &AppError{
		Err:        err,
		Message:    message,
		StatusCode: status,
		Code:       code,
	}
}

func InternalError(err error) *AppError {
	return NewAppError(
		err,
		"internal server error",
		http.StatusInternalServerError,
		"INTERNAL_SERVER_ERROR",
	)
}
