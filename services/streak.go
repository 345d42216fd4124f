// services/streak.go
package services

import (
	"time"

	"eco-garden-system/models"
)

// CalculateStreak counts consecutive calendar days with at least one
// completed mission, ending today. A streak that is only missing today's
// entry survives: counting may start from yesterday so the run is not
// broken before the user gets a chance to complete something today.
// Pure function of the log collection and the supplied clock time.
func CalculateStreak(logEntries []models.MissionLog, now time.Time) int {
	if len(logEntries) == 0 {
		return 0
	}

	days := make(map[string]struct{}, len(logEntries))
	for _, entry := range logEntries {
		if day := entry.Day(); day != "" {
			days[day] = struct{}{}
		}
	}

	day := now
	if _, ok := days[dayKey(day)]; !ok {
		day = day.AddDate(0, 0, -1)
		if _, ok := days[dayKey(day)]; !ok {
			return 0
		}
	}

	streak := 0
	for {
		if _, ok := days[dayKey(day)]; !ok {
			break
		}
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}

func dayKey(t time.Time) string {
	return t.Format("2006-01-02")
}
