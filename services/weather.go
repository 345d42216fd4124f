// services/weather.go
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"eco-garden-system/models"

	"github.com/sirupsen/logrus"
)

const openMeteoURL = "https://api.open-meteo.com/v1/forecast"

// WeatherService fetches current conditions from Open-Meteo. The reading
// only steers mission suggestions, so any failure degrades to a clear-sky
// fallback instead of propagating.
type WeatherService struct {
	BaseURL    string
	HTTPClient *http.Client
}

func NewWeatherService(client *http.Client) *WeatherService {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &WeatherService{BaseURL: openMeteoURL, HTTPClient: client}
}

func fallbackWeather() models.Weather {
	return models.Weather{Temp: 18, Condition: "Clear", Main: "Sunny"}
}

// CurrentWeather returns the conditions at the given coordinates, or the
// fallback reading when the provider is unreachable or unparseable.
func (s *WeatherService) CurrentWeather(ctx context.Context, lat, lon float64) models.Weather {
	url := fmt.Sprintf("%s?latitude=%f&longitude=%f&current=temperature_2m,weather_code,is_day", s.BaseURL, lat, lon)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fallbackWeather()
	}

	resp, err := s.HTTPClient.Do(req)
	if err != nil {
		logrus.WithError(err).Warn("weather fetch failed, using fallback")
		return fallbackWeather()
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logrus.WithField("status", resp.StatusCode).Warn("weather provider error, using fallback")
		return fallbackWeather()
	}

	var payload struct {
		Current *struct {
			Temperature float64 `json:"temperature_2m"`
			WeatherCode int     `json:"weather_code"`
		} `json:"current"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil || payload.Current == nil {
		logrus.Warn("weather response unparseable, using fallback")
		return fallbackWeather()
	}

	condition, main := describeWeatherCode(payload.Current.WeatherCode)
	return models.Weather{
		Temp:      payload.Current.Temperature,
		Condition: condition,
		Main:      main,
	}
}

// describeWeatherCode buckets WMO weather codes into display labels.
func describeWeatherCode(code int) (condition, main string) {
	switch {
	case code >= 1 && code <= 3:
		return "Partly cloudy", "Clouds"
	case code >= 45 && code <= 48:
		return "Fog", "Fog"
	case code >= 51 && code <= 67:
		return "Rain", "Rain"
	case code >= 71 && code <= 77:
		return "Snow", "Snow"
	case code >= 80 && code <= 82:
		return "Rain showers", "Rain"
	case code >= 95:
		return "Thunderstorm", "Storm"
	default:
		return "Clear", "Sunny"
	}
}
