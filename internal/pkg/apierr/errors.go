package apierr

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

const (
	CodeNotFound            = "NOT_FOUND"
	CodeInvalidRequest      = "INVALID_REQUEST"
	CodeEmptyScript         = "EMPTY_SCRIPT"
	CodePlatformMismatch    = "PLATFORM_MISMATCH"
	CodeUnsupportedPlatform = "UNSUPPORTED_PLATFORM"
	CodeStorageError        = "STORAGE_ERROR"
	CodeInternalError       = "INTERNAL_ERROR"
)

var (
	// ErrNotFound is returned when no snippet is stored under the requested identity.
	// Storage transport failures on read are reported the same way.
	ErrNotFound = New(fiber.StatusNotFound, CodeNotFound, "snippet not found")

	// ErrInvalidReq is returned when a request is invalid.
	ErrInvalidReq = New(fiber.StatusBadRequest, CodeInvalidRequest, "invalid request: some or all request parameters are invalid")

	// ErrEmptyScript is returned when a write carries no script body.
	ErrEmptyScript = New(fiber.StatusBadRequest, CodeEmptyScript, "script cannot be empty")

	// ErrPlatformMismatch is returned when a snippet exists for the identity but was
	// stored for another platform than the one requested.
	ErrPlatformMismatch = New(fiber.StatusUnsupportedMediaType, CodePlatformMismatch, "snippet exists under a different platform")

	// ErrUnsupportedPlatform is returned when a platform has no renderer.
	ErrUnsupportedPlatform = New(fiber.StatusBadRequest, CodeUnsupportedPlatform, "invalid snippet format")

	// ErrStorage is returned when the resource store rejects or fails a write.
	ErrStorage = New(fiber.StatusInternalServerError, CodeStorageError, "failed to persist snippet")

	// ErrInternalError is returned when an internal error occurs.
	ErrInternalError = New(fiber.StatusInternalServerError, CodeInternalError, "internal server error occurred")
)

type Extras map[string]any

type Error struct {
	StatusCode int    `example:"400"`
	ErrorCode  string `example:"INVALID_REQUEST"`
	Message    string `example:"invalid request: some or all request parameters are invalid"`
	Extras     *Extras
}

func New(statusCode int, errorCode string, message string) *Error {
	return &Error{
		StatusCode: statusCode,
		ErrorCode:  errorCode,
		Message:    message,
	}
}

func (e Error) Msg(format string, parts ...any) *Error {
	e.Message = fmt.Sprintf(format, parts...)
	return &e
}

func (e Error) WithExtras(extras Extras) *Error {
	e.Extras = &extras
	return &e
}

func NewInvalidViolations(violations any) *Error {
	// copy ErrInvalidReq as e
	e := *ErrInvalidReq
	e.Extras = &Extras{
		"violations": violations,
	}
	return &e
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.ErrorCode, e.Message)
}

// Is reports whether target carries the same error code, so copies made
// by Msg or WithExtras still match their sentinel under errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.ErrorCode == t.ErrorCode
}
