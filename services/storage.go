// services/storage.go
package services

import (
	"encoding/json"
	"fmt"

	"eco-garden-system/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Storage keys. One key holds one whole JSON document; writes never touch
// individual fields.
const (
	UserKey      = "eco_user_v1"
	LogsKey      = "eco_logs_v1"
	PlacesKey    = "eco_places_v1"
	WeeklyLogKey = "eco_weekly_log_v1" // reserved, unused by current logic
)

// Store is the device-local key-value contract. Get reports absence via
// the bool, not an error. Set overwrites the whole value.
type Store interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
}

// GormStore backs the key-value contract with a local SQLite file.
type GormStore struct {
	DB *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{DB: db}
}

func (s *GormStore) Get(key string) (string, bool, error) {
	var entry models.StoreEntry
	if err := s.DB.First(&entry, "key = ?", key).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return "", false, nil
		}
		return "", false, fmt.Errorf("store get %q: %w", key, err)
	}
	return entry.Value, true, nil
}

func (s *GormStore) Set(key, value string) error {
	entry := models.StoreEntry{Key: key, Value: value}
	if err := s.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&entry).Error; err != nil {
		return fmt.Errorf("store set %q: %w", key, err)
	}
	return nil
}

// StorageService is the typed repository over the key-value store. All
// ledger reads and writes go through it, so tests can swap in a memory
// Store.
type StorageService struct {
	Store Store
}

func NewStorageService(store Store) *StorageService {
	return &StorageService{Store: store}
}

// DefaultUserName is the display name a fresh installation starts with.
const DefaultUserName = "EcoGuardian"

func defaultUser() models.User {
	return models.User{
		Name:      DefaultUserName,
		Stage:     StageSeed,
		Inventory: []string{},
	}
}

func defaultPlaces() []models.SavedPlace {
	return []models.SavedPlace{
		{ID: 1, Name: "Home", Type: "indoor", Address: "Gangnam-gu, Seoul", Lat: 37.5642, Lon: 127.0016},
		{ID: 2, Name: "Office", Type: "indoor", Address: "Jung-gu, Seoul", Lat: 37.5635, Lon: 126.9750},
		{ID: 3, Name: "Neighborhood Park", Type: "outdoor", Address: "Mapo-gu, Seoul", Lat: 37.5568, Lon: 126.9237},
	}
}

// storedUser matches the persisted shape. Pointer fields distinguish
// "absent" from zero so records written by older versions migrate cleanly.
type storedUser struct {
	Name                   string   `json:"name"`
	Points                 int      `json:"points"`
	LifetimePoints         *int     `json:"lifetimePoints"`
	TotalMissionsCompleted int      `json:"totalMissionsCompleted"`
	Stage                  string   `json:"stage"`
	Inventory              []string `json:"inventory"`
}

// GetUser loads the ledger, creating defaults on first access and
// backfilling fields older records lack. The migration is idempotent: a
// record missing lifetimePoints inherits points, a record missing the
// inventory gets an empty one, and re-loading the result changes nothing.
func (s *StorageService) GetUser() (models.User, error) {
	raw, ok, err := s.Store.Get(UserKey)
	if err != nil {
		return models.User{}, err
	}
	if !ok {
		return defaultUser(), nil
	}

	var stored storedUser
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		return models.User{}, fmt.Errorf("decode stored user: %w", err)
	}

	user := models.User{
		Name:                   stored.Name,
		Points:                 stored.Points,
		TotalMissionsCompleted: stored.TotalMissionsCompleted,
		Stage:                  stored.Stage,
		Inventory:              stored.Inventory,
	}
	if stored.LifetimePoints != nil {
		user.LifetimePoints = *stored.LifetimePoints
	} else {
		user.LifetimePoints = stored.Points
	}
	if user.Inventory == nil {
		user.Inventory = []string{}
	}
	if user.Stage == "" {
		user.Stage = StageForPoints(user.LifetimePoints)
	}
	return user, nil
}

func (s *StorageService) SaveUser(user models.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}
	return s.Store.Set(UserKey, string(data))
}

func (s *StorageService) GetLogs() ([]models.MissionLog, error) {
	raw, ok, err := s.Store.Get(LogsKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []models.MissionLog{}, nil
	}
	var logEntries []models.MissionLog
	if err := json.Unmarshal([]byte(raw), &logEntries); err != nil {
		return nil, fmt.Errorf("decode stored logs: %w", err)
	}
	return logEntries, nil
}

func (s *StorageService) SaveLogs(logEntries []models.MissionLog) error {
	data, err := json.Marshal(logEntries)
	if err != nil {
		return fmt.Errorf("encode logs: %w", err)
	}
	return s.Store.Set(LogsKey, string(data))
}

// AppendLog rewrites the whole collection with one more entry at the end.
func (s *StorageService) AppendLog(entry models.MissionLog) error {
	logEntries, err := s.GetLogs()
	if err != nil {
		return err
	}
	return s.SaveLogs(append(logEntries, entry))
}

// GetPlaces returns the saved places, seeding sample bookmarks for a
// fresh installation.
func (s *StorageService) GetPlaces() ([]models.SavedPlace, error) {
	raw, ok, err := s.Store.Get(PlacesKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		return defaultPlaces(), nil
	}
	var places []models.SavedPlace
	if err := json.Unmarshal([]byte(raw), &places); err != nil {
		return nil, fmt.Errorf("decode stored places: %w", err)
	}
	return places, nil
}

func (s *StorageService) SavePlaces(places []models.SavedPlace) error {
	data, err := json.Marshal(places)
	if err != nil {
		return fmt.Errorf("encode places: %w", err)
	}
	return s.Store.Set(PlacesKey, string(data))
}
