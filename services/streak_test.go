package services

import (
	"testing"
	"time"

	"eco-garden-system/models"
)

func logOn(day string) models.MissionLog {
	return models.MissionLog{
		ID:          "log-" + day,
		Title:       "test mission",
		Points:      10,
		CompletedAt: day + "T12:00:00Z",
	}
}

func TestCalculateStreak(t *testing.T) {
	now := time.Date(2026, 8, 30, 15, 0, 0, 0, time.UTC)
	day := func(offset int) string {
		return now.AddDate(0, 0, offset).Format("2006-01-02")
	}

	tests := []struct {
		name string
		days []string
		want int
	}{
		{"no logs", nil, 0},
		{"today only", []string{day(0)}, 1},
		{"yesterday only survives via grace", []string{day(-1)}, 1},
		{"neither today nor yesterday", []string{day(-2), day(-5)}, 0},
		{"three consecutive days", []string{day(0), day(-1), day(-2)}, 3},
		{"gap two days back stops the count", []string{day(0), day(-1), day(-3)}, 2},
		{"grace start walks backward too", []string{day(-1), day(-2), day(-3)}, 3},
		{"duplicate logs one day", []string{day(0), day(0), day(0)}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var logEntries []models.MissionLog
			for _, d := range tt.days {
				logEntries = append(logEntries, logOn(d))
			}
			if got := CalculateStreak(logEntries, now); got != tt.want {
				t.Errorf("CalculateStreak() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCalculateStreakIgnoresMalformedTimestamps(t *testing.T) {
	now := time.Date(2026, 8, 30, 15, 0, 0, 0, time.UTC)
	logEntries := []models.MissionLog{
		{ID: "bad", CompletedAt: "oops"},
		logOn("2026-08-30"),
	}
	if got := CalculateStreak(logEntries, now); got != 1 {
		t.Errorf("CalculateStreak() = %d, want 1", got)
	}
}
