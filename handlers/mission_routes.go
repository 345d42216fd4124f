// handlers/mission_routes.go
package handlers

import (
	"errors"
	"strconv"
	"time"

	"eco-garden-system/models"
	"eco-garden-system/services"

	"github.com/gofiber/fiber/v2"
)

// SetupMissionRoutes wires mission suggestions and completion. notify
// receives the completed mission after the earn transaction is durable;
// it must not block.
func SetupMissionRoutes(
	app *fiber.App,
	ledger *services.LedgerService,
	weather *services.WeatherService,
	missions *services.MissionService,
	notify func(models.PushRecord),
) {
	app.Get("/missions/suggestions", func(c *fiber.Ctx) error {
		lat, err := strconv.ParseFloat(c.Query("lat"), 64)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid lat"})
		}
		lon, err := strconv.ParseFloat(c.Query("lon"), 64)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid lon"})
		}
		forcedType := c.Query("type")
		if forcedType != "" && forcedType != "indoor" && forcedType != "outdoor" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "type must be indoor or outdoor"})
		}

		logEntries, err := ledger.Storage.GetLogs()
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to load logs",
				"cause": err.Error(),
			})
		}
		today := time.Now().Format("2006-01-02")
		completedToday := services.CompletedTodayTitles(logEntries, today)

		current := weather.CurrentWeather(c.UserContext(), lat, lon)
		return c.JSON(fiber.Map{
			"weather":  current,
			"missions": missions.Suggest(current, forcedType, completedToday),
		})
	})

	app.Post("/missions/complete", func(c *fiber.Ctx) error {
		var req struct {
			ID     string `json:"id"`
			Title  string `json:"title"`
			Points int    `json:"points"`
			Type   string `json:"type"`
		}
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
		}

		user, entry, err := ledger.CompleteMission(models.Mission{
			ID:     req.ID,
			Title:  req.Title,
			Points: req.Points,
			Type:   req.Type,
		})
		if errors.Is(err, services.ErrInvalidAmount) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "points must be positive"})
		}
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to record completion",
				"cause": err.Error(),
			})
		}

		// Local ledger is durable at this point; the push is best-effort.
		notify(models.PushRecord{
			User:    user.Name,
			Mission: entry.Title,
			Points:  entry.Points,
			Level:   user.Stage,
		})

		return c.JSON(fiber.Map{
			"user": user,
			"log":  entry,
		})
	})
}
