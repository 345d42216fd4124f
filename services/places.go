// services/places.go
package services

import (
	"errors"
	"strings"

	"eco-garden-system/models"
)

// PlaceService manages the user's saved location bookmarks. Places share
// the ledger's key-value store and are never auto-deleted.
type PlaceService struct {
	Storage *StorageService
}

func NewPlaceService(storage *StorageService) *PlaceService {
	return &PlaceService{Storage: storage}
}

func (s *PlaceService) ListPlaces() ([]models.SavedPlace, error) {
	return s.Storage.GetPlaces()
}

// AddPlace saves a new bookmark with the next numeric identifier.
func (s *PlaceService) AddPlace(place models.SavedPlace) (models.SavedPlace, error) {
	place.Name = strings.TrimSpace(place.Name)
	if place.Name == "" {
		return models.SavedPlace{}, errors.New("place name must not be empty")
	}
	if place.Type != "indoor" && place.Type != "outdoor" {
		return models.SavedPlace{}, errors.New("place type must be indoor or outdoor")
	}

	places, err := s.Storage.GetPlaces()
	if err != nil {
		return models.SavedPlace{}, err
	}

	var maxID int64
	for _, p := range places {
		if p.ID > maxID {
			maxID = p.ID
		}
	}
	place.ID = maxID + 1

	if err := s.Storage.SavePlaces(append(places, place)); err != nil {
		return models.SavedPlace{}, err
	}
	return place, nil
}
