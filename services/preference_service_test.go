package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPreferenceKey(t *testing.T) {
	key := preferenceKey("user-1", "facility-9")
	assert.Equal(t, "listing_prefs:user-1:facility-9", key)
}

func TestPreferenceService_NilMeansDisabled(t *testing.T) {
	svc := NewPreferenceService("", "")
	assert.Nil(t, svc)

	// A nil service is a no-op, not a panic.
	pref, err := svc.Get(context.Background(), "u", "f")
	assert.NoError(t, err)
	assert.Nil(t, pref)

	assert.NoError(t, svc.Set(context.Background(), "u", "f", ListingPreference{SortBy: SortByName}))
}
