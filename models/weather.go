package models

// Weather is the current-conditions reading consumed by mission
// suggestions. Main is the coarse bucket (Sunny, Clouds, Fog, Rain, Snow,
// Storm); Condition is the display label.
type Weather struct {
	Temp      float64 `json:"temp"`
	Condition string  `json:"condition"`
	Main      string  `json:"main"`
}
