// handlers/garden_routes.go
package handlers

import (
	"time"

	"eco-garden-system/services"

	"github.com/gofiber/fiber/v2"
)

// SetupGardenRoutes wires the profile, streak and log endpoints.
func SetupGardenRoutes(app *fiber.App, ledger *services.LedgerService) {
	app.Get("/user/profile", func(c *fiber.Ctx) error {
		user, err := ledger.Storage.GetUser()
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to load ledger",
				"cause": err.Error(),
			})
		}
		logEntries, err := ledger.Storage.GetLogs()
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to load logs",
				"cause": err.Error(),
			})
		}

		return c.JSON(fiber.Map{
			"name":                     user.Name,
			"points":                   user.Points,
			"lifetime_points":          user.LifetimePoints,
			"total_missions_completed": user.TotalMissionsCompleted,
			"stage":                    user.Stage,
			"stage_rank":               services.StageRank(user.Stage),
			"inventory":                user.Inventory,
			"streak":                   services.CalculateStreak(logEntries, time.Now()),
		})
	})

	app.Put("/user/name", func(c *fiber.Ctx) error {
		var req struct {
			Name string `json:"name"`
		}
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
		}

		user, err := ledger.Rename(req.Name)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		return c.JSON(user)
	})

	app.Get("/user/streak", func(c *fiber.Ctx) error {
		logEntries, err := ledger.Storage.GetLogs()
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to load logs",
				"cause": err.Error(),
			})
		}
		return c.JSON(fiber.Map{
			"streak": services.CalculateStreak(logEntries, time.Now()),
		})
	})

	app.Get("/logs", func(c *fiber.Ctx) error {
		logEntries, err := ledger.Storage.GetLogs()
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to load logs",
				"cause": err.Error(),
			})
		}
		return c.JSON(logEntries)
	})
}
