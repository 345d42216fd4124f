// handlers/place_routes.go
package handlers

import (
	"eco-garden-system/models"
	"eco-garden-system/services"

	"github.com/gofiber/fiber/v2"
)

// SetupPlaceRoutes wires the saved-place bookmark endpoints.
func SetupPlaceRoutes(app *fiber.App, places *services.PlaceService) {
	app.Get("/places", func(c *fiber.Ctx) error {
		list, err := places.ListPlaces()
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to load places",
				"cause": err.Error(),
			})
		}
		return c.JSON(list)
	})

	app.Post("/places", func(c *fiber.Ctx) error {
		var req struct {
			Name    string  `json:"name"`
			Type    string  `json:"type"`
			Address string  `json:"address"`
			Lat     float64 `json:"lat"`
			Lon     float64 `json:"lon"`
		}
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
		}

		place, err := places.AddPlace(models.SavedPlace{
			Name:    req.Name,
			Type:    req.Type,
			Address: req.Address,
			Lat:     req.Lat,
			Lon:     req.Lon,
		})
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusCreated).JSON(place)
	})
}
