package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ListingPreference is the per-(user, facility) listing state the UI keeps
// between visits: sort key, direction and extension filter.
type ListingPreference struct {
	SortBy        string `json:"sort_by"`
	SortDirection string `json:"sort_direction"`
	FilterType    string `json:"filter_type,omitempty"`
}

// PreferenceService persists listing preferences in Redis. A nil service is
// valid and means preferences are not persisted.
type PreferenceService struct {
	client *redis.Client
	ttl    time.Duration
}

func NewPreferenceService(addr, password string) *PreferenceService {
	if addr == "" {
		return nil
	}
	return &PreferenceService{
		client: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
		}),
		ttl: 90 * 24 * time.Hour,
	}
}

func preferenceKey(userID, facilityID string) string {
	return fmt.Sprintf("listing_prefs:%s:%s", userID, facilityID)
}

func (s *PreferenceService) Get(ctx context.Context, userID, facilityID string) (*ListingPreference, error) {
	if s == nil {
		return nil, nil
	}

	raw, err := s.client.Get(ctx, preferenceKey(userID, facilityID)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read listing preference: %w", err)
	}

	var pref ListingPreference
	if err := json.Unmarshal([]byte(raw), &pref); err != nil {
		return nil, fmt.Errorf("failed to decode listing preference: %w", err)
	}
	return &pref, nil
}

func (s *PreferenceService) Set(ctx context.Context, userID, facilityID string, pref ListingPreference) error {
	if s == nil {
		return nil
	}

	raw, err := json.Marshal(pref)
	if err != nil {
		return fmt.Errorf("failed to encode listing preference: %w", err)
	}

	if err := s.client.Set(ctx, preferenceKey(userID, facilityID), raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store listing preference: %w", err)
	}
	return nil
}
