package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"unitracker/internal/service"
	"unitracker/internal/workspace"

	"unitracker/internal/http/middleware"
)

// Machine-readable error codes.
const (
	CodeInvalidBody      = "INVALID_BODY"
	CodeValidationFailed = "VALIDATION_FAILED"
	CodeReadOnly         = "READ_ONLY"
	CodeFileRequired     = "FILE_REQUIRED"
	CodeIDRequired       = "ID_REQUIRED"
	CodeNotFound         = "NOT_FOUND"
	CodeFileMissing      = "FILE_MISSING"
	CodeInvalidQuery     = "INVALID_QUERY"
	CodeInternal         = "INTERNAL_ERROR"
)

// errorPayload defines the standardized error response body.
type errorPayload struct {
	RequestID string        `json:"request_id"`
	Error     errorEnvelope `json:"error"`
}

type errorEnvelope struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// writeError writes a standardized JSON error response without leaking internal errors.
//
// Parameters:
// - status: HTTP status code to return
// - code: machine-readable short error code (e.g., "ID_REQUIRED", "NOT_FOUND", "INTERNAL_ERROR")
// - message: human-readable safe message (no internal details)
func writeError(c *fiber.Ctx, status int, code, message string) error {
	res := errorPayload{
		RequestID: middleware.GetRequestID(c),
		Error: errorEnvelope{
			Code:    code,
			Message: message,
		},
	}
	return c.Status(status).JSON(res)
}

// serviceError maps service and workspace sentinel errors to the error envelope. Anything
// unrecognized is logged and answered with a generic 500.
func serviceError(c *fiber.Ctx, log *zap.Logger, err error) error {
	switch {
	case errors.Is(err, service.ErrIDRequired):
		return writeError(c, fiber.StatusBadRequest, CodeIDRequired, "id is required")
	case errors.Is(err, service.ErrNotFound), errors.Is(err, workspace.ErrNotFound):
		return writeError(c, fiber.StatusNotFound, CodeNotFound, "not found")
	case errors.Is(err, service.ErrFileMissing):
		return writeError(c, fiber.StatusNotFound, CodeFileMissing, "file is missing from the upload store")
	case errors.Is(err, workspace.ErrValidation):
		return writeError(c, fiber.StatusBadRequest, CodeValidationFailed, err.Error())
	}
	log.Error("request_failed",
		zap.String("request_id", middleware.GetRequestID(c)),
		zap.String("path", c.Path()),
		zap.Error(err),
	)
	return writeError(c, fiber.StatusInternalServerError, CodeInternal, "internal server error")
}

// ErrorHandler returns a Fiber global error handler that standardizes error responses.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		if e, ok := err.(*fiber.Error); ok {
			status = e.Code
		}

		switch status {
		case fiber.StatusBadRequest:
			return writeError(c, status, "BAD_REQUEST", "bad request")
		case fiber.StatusRequestEntityTooLarge:
			return writeError(c, status, "PAYLOAD_TOO_LARGE", "request body too large")
		case fiber.StatusNotFound:
			return writeError(c, status, "NOT_FOUND", "resource not found")
		case fiber.StatusMethodNotAllowed:
			return writeError(c, status, "METHOD_NOT_ALLOWED", "method not allowed")
		default:
			return writeError(c, status, CodeInternal, "internal server error")
		}
	}
}
