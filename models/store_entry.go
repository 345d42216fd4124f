package models

// StoreEntry is one row of the device-local key-value store. Values are
// whole JSON documents; a write always replaces the full value.
// Table name: store_entries
type StoreEntry struct {
	Key   string `gorm:"primaryKey;type:varchar(64)" json:"key"`
	Value string `gorm:"type:text;not null" json:"value"`
}
