// handlers/sync_routes.go
package handlers

import (
	"errors"

	"eco-garden-system/services"

	"github.com/gofiber/fiber/v2"
)

// SetupSyncRoutes wires the explicit restore-from-backup endpoint. A pull
// that finds no rows for the user succeeds with a zero-effect message;
// transport and format problems are hard errors that leave the ledger
// untouched.
func SetupSyncRoutes(app *fiber.App, sync *services.SheetSyncService) {
	app.Post("/sync/restore", func(c *fiber.Ctx) error {
		result, err := sync.SyncFromSheet(c.UserContext())
		if errors.Is(err, services.ErrNoBackupURL) {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "backup sheet URL not configured"})
		}
		if err != nil {
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
				"error": "restore failed",
				"cause": err.Error(),
			})
		}
		return c.JSON(result)
	})
}
