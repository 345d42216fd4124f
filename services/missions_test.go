package services

import (
	"testing"

	"eco-garden-system/models"
)

func TestSuggestWeatherPicksType(t *testing.T) {
	svc := NewMissionService()

	tests := []struct {
		name     string
		weather  models.Weather
		forced   string
		wantType string
	}{
		{"clear defaults outdoor", models.Weather{Main: "Sunny"}, "", "outdoor"},
		{"rain goes indoor", models.Weather{Main: "Rain"}, "", "indoor"},
		{"snow goes indoor", models.Weather{Main: "Snow"}, "", "indoor"},
		{"forced indoor wins over clear sky", models.Weather{Main: "Sunny"}, "indoor", "indoor"},
		{"forced outdoor wins over rain", models.Weather{Main: "Rain"}, "outdoor", "outdoor"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			suggestions := svc.Suggest(tt.weather, tt.forced, nil)
			if len(suggestions) == 0 {
				t.Fatal("no suggestions returned")
			}
			if len(suggestions) > 3 {
				t.Errorf("got %d suggestions, want at most 3", len(suggestions))
			}
			for _, m := range suggestions {
				if m.Type != tt.wantType {
					t.Errorf("mission %q has type %q, want %q", m.Title, m.Type, tt.wantType)
				}
				if m.DurationSeconds < minMissionSeconds || m.DurationSeconds > maxMissionSeconds {
					t.Errorf("mission %q duration %ds out of clamp range", m.Title, m.DurationSeconds)
				}
			}
		})
	}
}

func TestSuggestExcludesCompletedToday(t *testing.T) {
	svc := NewMissionService()

	completed := []string{"Use a tumbler", "Sort the recycling"}
	suggestions := svc.Suggest(models.Weather{Main: "Rain"}, "", completed)
	for _, m := range suggestions {
		for _, done := range completed {
			if m.Title == done {
				t.Errorf("already-completed mission %q suggested again", done)
			}
		}
	}
}

func TestCompletedTodayTitles(t *testing.T) {
	logEntries := []models.MissionLog{
		{Title: "Use a tumbler", CompletedAt: "2026-08-30T08:00:00Z"},
		{Title: "Pick up litter", CompletedAt: "2026-08-29T08:00:00Z"},
		{Title: "Sort the recycling", CompletedAt: "2026-08-30T20:00:00Z"},
	}

	titles := CompletedTodayTitles(logEntries, "2026-08-30")
	if len(titles) != 2 {
		t.Fatalf("len = %d, want 2", len(titles))
	}
	if titles[0] != "Use a tumbler" || titles[1] != "Sort the recycling" {
		t.Errorf("titles = %v", titles)
	}
}
