// services/shop.go
package services

// ShopItem is a garden decoration purchasable with spendable points.
type ShopItem struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
	Cost int    `json:"cost"`
}

var shopCatalog = []ShopItem{
	{ID: "bird", Name: "Bluebird", Icon: "🐦", Cost: 100},
	{ID: "squirrel", Name: "Squirrel", Icon: "🐿️", Cost: 150},
	{ID: "butterfly", Name: "Butterfly", Icon: "🦋", Cost: 50},
	{ID: "rainbow", Name: "Rainbow", Icon: "🌈", Cost: 300},
	{ID: "sun", Name: "Sun", Icon: "☀️", Cost: 120},
	{ID: "flower_patch", Name: "Flower Patch", Icon: "🌻", Cost: 80},
	{ID: "rabbit", Name: "Rabbit", Icon: "🐇", Cost: 200},
	{ID: "mushroom", Name: "Mushroom", Icon: "🍄", Cost: 60},
}

// ShopItems returns the decoration catalog.
func ShopItems() []ShopItem {
	items := make([]ShopItem, len(shopCatalog))
	copy(items, shopCatalog)
	return items
}

// ShopItemByID looks up a catalog entry.
func ShopItemByID(id string) (ShopItem, bool) {
	for _, item := range shopCatalog {
		if item.ID == id {
			return item, true
		}
	}
	return ShopItem{}, false
}
