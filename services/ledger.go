// services/ledger.go
package services

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"eco-garden-system/models"

	"github.com/gosimple/slug"
	"github.com/sirupsen/logrus"
)

var (
	ErrInvalidAmount     = errors.New("points amount must be positive")
	ErrInsufficientFunds = errors.New("insufficient points balance")
	ErrAlreadyOwned      = errors.New("item already owned")
	ErrUnknownItem       = errors.New("unknown shop item")
)

// LedgerService is the points transaction engine. Every operation reads
// the current ledger, applies one mutation and persists the whole record;
// a failed operation leaves the persisted ledger untouched. The stage
// field is only ever written here, recomputed from lifetime points.
type LedgerService struct {
	Storage *StorageService
	Now     func() time.Time
}

func NewLedgerService(storage *StorageService) *LedgerService {
	return &LedgerService{Storage: storage, Now: time.Now}
}

// Earn credits a completed mission's points. Both the wallet and the
// lifetime score grow; the stage is recomputed from the lifetime score.
// The caller appends the matching mission log as part of the same logical
// transaction (see CompleteMission).
func (s *LedgerService) Earn(amount int) (models.User, error) {
	if amount <= 0 {
		return models.User{}, ErrInvalidAmount
	}
	user, err := s.Storage.GetUser()
	if err != nil {
		return models.User{}, err
	}

	user.Points += amount
	user.LifetimePoints += amount
	user.TotalMissionsCompleted++
	user.Stage = StageForPoints(user.LifetimePoints)

	if err := s.Storage.SaveUser(user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

// CompleteMission runs the earn transaction for a finished mission and
// appends its log entry. The log id comes from the completion timestamp.
func (s *LedgerService) CompleteMission(mission models.Mission) (models.User, models.MissionLog, error) {
	user, err := s.Earn(mission.Points)
	if err != nil {
		return models.User{}, models.MissionLog{}, err
	}

	now := s.Now()
	entry := models.MissionLog{
		ID:          strconv.FormatInt(now.UnixNano(), 10),
		MissionID:   mission.ID,
		Title:       mission.Title,
		Points:      mission.Points,
		CompletedAt: now.Format(time.RFC3339),
		Type:        mission.Type,
	}
	if err := s.Storage.AppendLog(entry); err != nil {
		return models.User{}, models.MissionLog{}, err
	}

	logrus.WithFields(logrus.Fields{
		"mission": mission.Title,
		"points":  mission.Points,
		"stage":   user.Stage,
	}).Info("mission completed")

	return user, entry, nil
}

// PurchaseItem spends points on a garden decoration. The lifetime score
// and stage are a ratchet: spending never touches them. Repurchase of an
// owned item is rejected without charging.
func (s *LedgerService) PurchaseItem(itemID string) (models.User, error) {
	item, ok := ShopItemByID(itemID)
	if !ok {
		return models.User{}, ErrUnknownItem
	}

	user, err := s.Storage.GetUser()
	if err != nil {
		return models.User{}, err
	}
	if user.Owns(item.ID) {
		return user, ErrAlreadyOwned
	}
	if user.Points < item.Cost {
		return user, ErrInsufficientFunds
	}

	user.Points -= item.Cost
	user.Inventory = append(user.Inventory, item.ID)

	if err := s.Storage.SaveUser(user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

// Rename changes the display name. The name is what restore matches
// remote rows against, so it is trimmed before saving.
func (s *LedgerService) Rename(name string) (models.User, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return models.User{}, errors.New("display name must not be empty")
	}
	user, err := s.Storage.GetUser()
	if err != nil {
		return models.User{}, err
	}
	user.Name = trimmed
	if err := s.Storage.SaveUser(user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

// RestoreResult reports the outcome of a backup restore. A pull that
// found no rows for the user is a soft success: Restored is false, the
// ledger is untouched and Message explains why.
type RestoreResult struct {
	Restored    bool                `json:"restored"`
	Message     string              `json:"message"`
	TotalPoints int                 `json:"total_points"`
	User        models.User         `json:"user"`
	Logs        []models.MissionLog `json:"logs,omitempty"`
}

// RestoreFromRows rebuilds the entire ledger from remote backup rows.
// This is a wholesale replace, not a merge: the local log history is
// discarded, the wallet and lifetime score both become the sum of the
// restored rows (spend history is not reconstructable), and the stage is
// recomputed. Rows are matched on trimmed owner-name equality against the
// current display name.
func (s *LedgerService) RestoreFromRows(rows []models.SheetRow) (RestoreResult, error) {
	user, err := s.Storage.GetUser()
	if err != nil {
		return RestoreResult{}, err
	}
	targetUser := strings.TrimSpace(user.Name)

	var matched []models.SheetRow
	for _, row := range rows {
		if strings.TrimSpace(row.User) == targetUser {
			matched = append(matched, row)
		}
	}

	if len(matched) == 0 {
		return RestoreResult{
			Restored: false,
			Message:  fmt.Sprintf("no backup rows found for %q", targetUser),
			User:     user,
		}, nil
	}

	now := s.Now()
	recovered := make([]models.MissionLog, 0, len(matched))
	totalPoints := 0
	for i, row := range matched {
		entry := models.MissionLog{
			ID:          fmt.Sprintf("rec-%d-%d", i, now.UnixMilli()),
			MissionID:   recoveredMissionID(i, row.Mission),
			Title:       row.Mission,
			Points:      ParseSheetPoints(row.Points),
			CompletedAt: row.Timestamp,
			Type:        "recovered",
		}
		if entry.Title == "" {
			entry.Title = "Recovered mission"
		}
		if entry.CompletedAt == "" {
			entry.CompletedAt = now.Format(time.RFC3339)
		}
		totalPoints += entry.Points
		recovered = append(recovered, entry)
	}

	if err := s.Storage.SaveLogs(recovered); err != nil {
		return RestoreResult{}, err
	}

	user.LifetimePoints = totalPoints
	user.Points = totalPoints
	user.TotalMissionsCompleted = len(recovered)
	user.Stage = StageForPoints(totalPoints)
	if err := s.Storage.SaveUser(user); err != nil {
		return RestoreResult{}, err
	}

	logrus.WithFields(logrus.Fields{
		"rows":   len(recovered),
		"points": totalPoints,
	}).Info("ledger restored from backup")

	return RestoreResult{
		Restored:    true,
		Message:     fmt.Sprintf("restored %d entries, %dP total", len(recovered), totalPoints),
		TotalPoints: totalPoints,
		User:        user,
		Logs:        recovered,
	}, nil
}

func recoveredMissionID(index int, title string) string {
	if t := strings.TrimSpace(title); t != "" {
		if tag := slug.Make(t); tag != "" {
			return fmt.Sprintf("sheet-%d-%s", index, tag)
		}
	}
	return fmt.Sprintf("sheet-%d", index)
}

// ParseSheetPoints turns a loosely typed sheet value into a point count.
// Digits are kept, everything else is stripped; anything unparseable
// becomes 0 rather than failing the restore.
func ParseSheetPoints(value any) int {
	if value == nil {
		return 0
	}
	raw := fmt.Sprint(value)
	var digits strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	points, err := strconv.Atoi(digits.String())
	if err != nil {
		return 0
	}
	return points
}
