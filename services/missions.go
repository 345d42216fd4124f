// services/missions.go
package services

import (
	"eco-garden-system/models"
)

// Duration clamp for suggested missions (demo-friendly lengths).
const (
	minMissionSeconds = 10
	maxMissionSeconds = 60
)

// missionCatalog is the built-in suggestion pool, used in place of the
// external mission generator. Indoor missions lean on saving energy and
// water; outdoor ones on cleanup and low-impact transport.
var missionCatalog = []models.Mission{
	{ID: "pick-up-litter", Title: "Pick up 3 pieces of litter", Description: "Grab three pieces of trash nearby and leave the street cleaner than you found it.", DurationSeconds: 15, Points: 10, Type: "outdoor", IconName: "trash"},
	{ID: "walk-short-trip", Title: "Walk instead of driving", Description: "Cover your next short trip on foot and skip the emissions entirely.", DurationSeconds: 60, Points: 15, Type: "outdoor", IconName: "footprints"},
	{ID: "refill-bottle", Title: "Refill a reusable bottle", Description: "Top up a reusable bottle instead of buying a plastic one.", DurationSeconds: 10, Points: 10, Type: "outdoor", IconName: "droplets"},
	{ID: "use-tumbler", Title: "Use a tumbler", Description: "Ask for your drink in your own tumbler instead of a single-use cup.", DurationSeconds: 10, Points: 20, Type: "indoor", IconName: "coffee"},
	{ID: "unplug-idle", Title: "Unplug idle electronics", Description: "Walk around and unplug chargers and devices that are just sipping standby power.", DurationSeconds: 30, Points: 15, Type: "indoor", IconName: "wind"},
	{ID: "sort-recycling", Title: "Sort the recycling", Description: "Separate paper, plastic and glass properly before they go out.", DurationSeconds: 45, Points: 20, Type: "indoor", IconName: "check"},
	{ID: "shorter-shower", Title: "Take a shorter shower", Description: "Shave a minute off your next shower and save litres of hot water.", DurationSeconds: 20, Points: 10, Type: "indoor", IconName: "droplets"},
	{ID: "air-dry-laundry", Title: "Air-dry a load of laundry", Description: "Skip the dryer for one load and let the air do the work.", DurationSeconds: 30, Points: 15, Type: "indoor", IconName: "wind"},
}

// MissionService picks activity suggestions for the user's current
// context. The weather decides indoor vs outdoor when the caller does not
// force a type, and missions already completed today are never suggested
// again.
type MissionService struct{}

func NewMissionService() *MissionService {
	return &MissionService{}
}

// Suggest returns up to three missions fitting the weather and place
// type. forcedType may be "indoor", "outdoor" or "" (weather decides).
func (s *MissionService) Suggest(weather models.Weather, forcedType string, completedToday []string) []models.Mission {
	wantType := forcedType
	if wantType == "" {
		wantType = "outdoor"
		switch weather.Main {
		case "Rain", "Snow", "Storm":
			wantType = "indoor"
		}
	}

	done := make(map[string]struct{}, len(completedToday))
	for _, title := range completedToday {
		done[title] = struct{}{}
	}

	var suggestions []models.Mission
	for _, mission := range missionCatalog {
		if mission.Type != wantType {
			continue
		}
		if _, ok := done[mission.Title]; ok {
			continue
		}
		mission.DurationSeconds = clampDuration(mission.DurationSeconds)
		suggestions = append(suggestions, mission)
		if len(suggestions) == 3 {
			break
		}
	}
	return suggestions
}

func clampDuration(seconds int) int {
	if seconds < minMissionSeconds {
		return minMissionSeconds
	}
	if seconds > maxMissionSeconds {
		return maxMissionSeconds
	}
	return seconds
}

// CompletedTodayTitles extracts the titles of missions already completed
// on the given calendar day, for suggestion filtering.
func CompletedTodayTitles(logEntries []models.MissionLog, dayPrefix string) []string {
	var titles []string
	for _, entry := range logEntries {
		if entry.Day() == dayPrefix {
			titles = append(titles, entry.Title)
		}
	}
	return titles
}
