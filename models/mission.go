package models

// Mission is an activity suggestion the user can complete for points.
type Mission struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	Description     string `json:"description"`
	DurationSeconds int    `json:"duration_seconds"`
	Points          int    `json:"points"`
	Type            string `json:"type"` // indoor, outdoor, recycling, habit
	IconName        string `json:"icon_name,omitempty"`
}

// MissionLog is one completed activity. CompletedAt is an ISO-8601
// date-time string; its first 10 characters are the calendar-day bucket
// used by the streak calculation.
type MissionLog struct {
	ID          string `json:"id"`
	MissionID   string `json:"missionId"`
	Title       string `json:"title"`
	Points      int    `json:"points"`
	CompletedAt string `json:"completedAt"`
	Type        string `json:"type,omitempty"`
}

// Day returns the calendar-day prefix of CompletedAt, or "" when the
// timestamp is too short to carry one.
func (l MissionLog) Day() string {
	if len(l.CompletedAt) < 10 {
		return ""
	}
	return l.CompletedAt[:10]
}
