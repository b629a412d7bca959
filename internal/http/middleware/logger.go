package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is a middleware that logs each HTTP request through log.
// Fields:
// - request_id (taken from context locals set by RequestID middleware)
// - method
// - path
// - status
// - latency (in milliseconds, as float)
//
// 5xx responses are logged at error level, 4xx at warn.
func Logger(log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		status := c.Response().StatusCode()
		if fe, ok := err.(*fiber.Error); ok {
			status = fe.Code
		}

		lvl := zapcore.InfoLevel
		switch {
		case status >= fiber.StatusInternalServerError:
			lvl = zapcore.ErrorLevel
		case status >= fiber.StatusBadRequest:
			lvl = zapcore.WarnLevel
		}

		log.Log(lvl, "http_request",
			zap.String("request_id", GetRequestID(c)),
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", status),
			zap.Float64("latency", float64(time.Since(start).Microseconds())/1000),
		)

		return err
	}
}
