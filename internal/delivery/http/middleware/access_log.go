package middleware

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

// AccessLogMiddleware logs one line per request and tags every response with
// an X-Request-ID so storefront sessions can be traced across log lines.
type AccessLogMiddleware struct {
	logger *log.Logger
}

func NewAccessLogMiddleware(logger *log.Logger) *AccessLogMiddleware {
	if logger == nil {
		logger = log.Default()
	}
	return &AccessLogMiddleware{logger: logger}
}

func (m *AccessLogMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		start := time.Now()

		rid := c.Get("X-Request-ID")
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Set("X-Request-ID", rid)

		err := c.Next()

		m.logger.Printf(
			"HTTP %s %s | rid=%s status=%d latency=%s ip=%s bytes_out=%d",
			c.Method(),
			c.OriginalURL(),
			rid,
			c.Response().StatusCode(),
			time.Since(start),
			c.IP(),
			c.Response().Header.ContentLength(),
		)

		return err
	}
}
