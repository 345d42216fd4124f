// middleware/device.go
package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// DeviceAuthMiddleware gates the single-user API behind a device token.
// With an empty token the gate is open, which is the expected mode for a
// purely local deployment.
func DeviceAuthMiddleware(expectedToken string) fiber.Handler {
	if expectedToken == "" {
		logrus.Warn("DEVICE_TOKEN not set — API is open to all local callers")
		return func(c *fiber.Ctx) error {
			return c.Next()
		}
	}

	return func(c *fiber.Ctx) error {
		token := c.Get("X-Device-Token")
		if token == "" {
			// Fall back to "Bearer <token>" for clients that only speak Authorization.
			auth := c.Get("Authorization")
			token = strings.TrimPrefix(auth, "Bearer ")
		}

		if token != expectedToken {
			logrus.WithField("path", c.Path()).Warn("rejected request with invalid device token")
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "invalid device token",
			})
		}
		return c.Next()
	}
}
