package models

// User is the single persisted ledger for this installation: spendable
// wallet, lifetime score, derived garden stage and owned decorations.
type User struct {
	Name                   string   `json:"name"`
	Points                 int      `json:"points"`
	LifetimePoints         int      `json:"lifetimePoints"`
	TotalMissionsCompleted int      `json:"totalMissionsCompleted"`
	Stage                  string   `json:"stage"`
	Inventory              []string `json:"inventory"`
}

// Owns reports whether the decoration is already in the user's inventory.
func (u *User) Owns(itemID string) bool {
	for _, owned := range u.Inventory {
		if owned == itemID {
			return true
		}
	}
	return false
}
