package places

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildFieldMaskDeterministic(t *testing.T) {
	first, err := BuildFieldMask(TierStandard, OpNearby)
	require.NoError(t, err)
	second, err := BuildFieldMask(TierStandard, OpNearby)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestBuildFieldMaskListPrefix(t *testing.T) {
	mask, err := BuildFieldMask(TierBasic, OpTextSearch)
	require.NoError(t, err)
	require.NotEmpty(t, mask)
	for _, path := range mask {
		assert.True(t, strings.HasPrefix(path, "places."), "path %q should carry the places. prefix", path)
	}
	assert.Contains(t, mask, "places.displayName")
}

func TestBuildFieldMaskDetailsUnwrapped(t *testing.T) {
	mask, err := BuildFieldMask(TierFull, OpDetails)
	require.NoError(t, err)
	for _, path := range mask {
		assert.False(t, strings.HasPrefix(path, "places."), "details path %q must not be wrapped", path)
	}
	assert.Contains(t, mask, "nationalPhoneNumber")
}

func TestBuildFieldMaskTierBounds(t *testing.T) {
	basic, err := BuildFieldMask(TierBasic, OpNearby)
	require.NoError(t, err)
	standard, err := BuildFieldMask(TierStandard, OpNearby)
	require.NoError(t, err)
	full, err := BuildFieldMask(TierFull, OpNearby)
	require.NoError(t, err)

	assert.Less(t, len(basic), len(standard))
	assert.Less(t, len(standard), len(full))
	assert.NotContains(t, basic, "places.rating")
	assert.Contains(t, standard, "places.rating")
	assert.NotContains(t, standard, "places.websiteUri")
}

func TestBuildFieldMaskDefaultsToStandard(t *testing.T) {
	standard, err := BuildFieldMask(TierStandard, OpNearby)
	require.NoError(t, err)
	defaulted, err := BuildFieldMask("", OpNearby)
	require.NoError(t, err)
	assert.Equal(t, standard, defaulted)
}

func TestBuildFieldMaskAutocomplete(t *testing.T) {
	// Autocomplete carries its own lightweight mask regardless of tier.
	mask, err := BuildFieldMask(TierFull, OpAutocomplete)
	require.NoError(t, err)
	for _, path := range mask {
		assert.True(t, strings.HasPrefix(path, "suggestions."))
	}
}

func TestBuildFieldMaskUnknownTier(t *testing.T) {
	_, err := BuildFieldMask("deluxe", OpNearby)
	require.Error(t, err)

	var placesErr *Error
	require.True(t, errors.As(err, &placesErr))
	assert.Equal(t, KindUnknownDetailTier, placesErr.Kind)
}
