// handlers/shop_routes.go
package handlers

import (
	"errors"

	"eco-garden-system/services"

	"github.com/gofiber/fiber/v2"
)

// SetupShopRoutes wires the decoration catalog and purchase endpoints.
func SetupShopRoutes(app *fiber.App, ledger *services.LedgerService) {
	app.Get("/shop/items", func(c *fiber.Ctx) error {
		return c.JSON(services.ShopItems())
	})

	app.Post("/shop/purchase", func(c *fiber.Ctx) error {
		var req struct {
			ItemID string `json:"item_id"`
		}
		if err := c.BodyParser(&req); err != nil || req.ItemID == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "item_id is required"})
		}

		user, err := ledger.PurchaseItem(req.ItemID)
		switch {
		case errors.Is(err, services.ErrUnknownItem):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "unknown shop item"})
		case errors.Is(err, services.ErrAlreadyOwned):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "item already owned"})
		case errors.Is(err, services.ErrInsufficientFunds):
			return c.Status(fiber.StatusPaymentRequired).JSON(fiber.Map{
				"error":  "not enough points",
				"points": user.Points,
			})
		case err != nil:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "purchase failed",
				"cause": err.Error(),
			})
		}
		return c.JSON(user)
	})
}
