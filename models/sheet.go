package models

// SheetRow is one row pulled from the remote backup sheet. The sheet is an
// external, loosely typed system: Points may arrive as a number or as a
// decorated string ("120P"), Timestamp may be absent. Every field is
// validated and defaulted before it touches the ledger.
type SheetRow struct {
	User      string `json:"user"`
	Mission   string `json:"mission"`
	Points    any    `json:"points"`
	Timestamp string `json:"timestamp"`
}

// PushRecord is the payload posted to the backup sheet after an earn
// transaction. The endpoint's response is ignored.
type PushRecord struct {
	User    string `json:"user"`
	Mission string `json:"mission"`
	Points  int    `json:"points"`
	Level   string `json:"level"`
}
