package middleware

import (
	"github.com/gofiber/fiber/v2"
)

// CORS allows any origin, mirroring a permissive default cors() setup: the
// catalog is public and unauthenticated, so there is nothing to protect
// beyond echoing the headers browsers expect.
func CORS() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Set("Access-Control-Allow-Origin", "*")
		c.Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Set("Access-Control-Allow-Headers", "Content-Type")
		if c.Method() == fiber.MethodOptions {
			return c.SendStatus(fiber.StatusNoContent)
		}
		return c.Next()
	}
}
