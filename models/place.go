package models

// SavedPlace is a user-defined location bookmark. Indoor/outdoor steers
// which missions get suggested there.
type SavedPlace struct {
	ID      int64   `json:"id"`
	Name    string  `json:"name"`
	Type    string  `json:"type"` // indoor or outdoor
	Address string  `json:"address"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}
