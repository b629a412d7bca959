package middleware

import "github.com/gofiber/fiber/v2"

// NoStore marks responses as uncacheable. The workspace changes on every save, so clients must
// never reuse a cached copy.
func NoStore() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderCacheControl, "no-store")
		return c.Next()
	}
}
