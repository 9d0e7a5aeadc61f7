package middleware

import (
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"ticketassign/pkg/apperr"
	"ticketassign/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// errorResponse mirrors adapter/in/http's APIResponse shape so a panic or an
// unhandled fiber.Error produces the same envelope as a normal error path.
type errorResponse struct {
	Success   bool        `json:"success"`
	Error     errorDetail `json:"error"`
	RequestID string      `json:"request_id,omitempty"`
	Timestamp string      `json:"timestamp"`
}

type errorDetail struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

// ErrorHandler is the fiber.Config ErrorHandler: every error returned by a
// handler (including ones bypassing AppErrorResponse) lands here.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		requestID, _ := c.Locals("request_id").(string)

		response := errorResponse{
			RequestID: requestID,
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		}

		var status int
		switch e := err.(type) {
		case *apperr.AppError:
			status = e.Status
			response.Error = errorDetail{Code: e.Code, Message: e.Message, Details: e.Details}
			log := logger.WithField("request_id", requestID).WithField("error_code", e.Code).WithError(e.Err)
			if status >= 500 {
				log.Error("internal error: %s", e.Message)
			} else {
				log.Warn("client error: %s", e.Message)
			}
		case *fiber.Error:
			status = e.Code
			response.Error = errorDetail{Code: mapHTTPStatusToCode(e.Code), Message: e.Message}
		default:
			status = fiber.StatusInternalServerError
			response.Error = errorDetail{Code: apperr.CodeInternalError, Message: "an unexpected error occurred"}
			logger.WithField("request_id", requestID).WithError(err).Error("unexpected error: %s", err.Error())
		}

		return c.Status(status).JSON(response)
	}
}

// RequestID stamps every request with an X-Request-ID, generating one when
// the caller didn't supply it.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		requestID := c.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Locals("request_id", requestID)
		c.Set("X-Request-ID", requestID)
		return c.Next()
	}
}

// RequestLogger logs one structured line per request after it completes.
func RequestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		requestID, _ := c.Locals("request_id").(string)

		err := c.Next()

		duration := time.Since(start)
		status := c.Response().StatusCode()

		log := logger.WithFields(map[string]any{
			"request_id":  requestID,
			"method":      c.Method(),
			"path":        c.Path(),
			"status":      status,
			"duration_ms": float64(duration.Microseconds()) / 1000.0,
			"ip":          c.IP(),
		})
		if operatorID, ok := c.Locals("operator_id").(string); ok && operatorID != "" {
			log = log.WithField("operator_id", operatorID)
		}

		switch {
		case status >= 500:
			log.Error("request failed: %s %s -> %d", c.Method(), c.Path(), status)
		case status >= 400:
			log.Warn("request error: %s %s -> %d", c.Method(), c.Path(), status)
		default:
			log.Info("request completed: %s %s -> %d", c.Method(), c.Path(), status)
		}

		return err
	}
}

// Recover catches a panic in any downstream handler, logs it, and returns a
// 500 instead of crashing the process.
func Recover() fiber.Handler {
	return func(c *fiber.Ctx) error {
		defer func() {
			if r := recover(); r != nil {
				requestID, _ := c.Locals("request_id").(string)
				stack := string(debug.Stack())

				fmt.Fprintf(os.Stderr, "=== PANIC RECOVERED ===\nrequest_id=%s %s %s\npanic: %v\n%s\n", requestID, c.Method(), c.Path(), r, stack)
				logger.WithFields(map[string]any{
					"request_id": requestID,
					"panic":      fmt.Sprintf("%v", r),
					"path":       c.Path(),
					"method":     c.Method(),
				}).Error("panic recovered")

				_ = c.Status(fiber.StatusInternalServerError).JSON(errorResponse{
					RequestID: requestID,
					Timestamp: time.Now().UTC().Format(time.RFC3339),
					Error:     errorDetail{Code: apperr.CodeInternalError, Message: "an unexpected error occurred"},
				})
			}
		}()
		return c.Next()
	}
}

func mapHTTPStatusToCode(status int) string {
	switch status {
	case 400:
		return apperr.CodeValidationFailed
	case 401:
		return apperr.CodeUnauthorized
	case 403:
		return apperr.CodeForbidden
	case 404:
		return apperr.CodeNotFound
	case 409:
		return apperr.CodeConflict
	case 429:
		return "RATE_LIMITED"
	case 500:
		return apperr.CodeInternalError
	case 502, 503, 504:
		return "SERVICE_UNAVAILABLE"
	default:
		return "UNKNOWN_ERROR"
	}
}
