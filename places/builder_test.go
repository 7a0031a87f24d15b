package places

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *Config {
	return DefaultConfig("test-api-key")
}

func mustMask(t *testing.T, tier DetailTier, kind OperationKind) FieldMask {
	t.Helper()
	mask, err := BuildFieldMask(tier, kind)
	require.NoError(t, err)
	return mask
}

func TestBuildCallSpecNearby(t *testing.T) {
	cfg := testConfig()
	req := proximityRequest(1500)
	req.Category = "restaurant"
	req.MaxResultCount = 10

	spec, err := BuildCallSpec(cfg, req, OpNearby, mustMask(t, TierStandard, OpNearby))
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, spec.Method)
	assert.Equal(t, cfg.BaseURL+cfg.NearbyPath, spec.URL)
	assert.Equal(t, "test-api-key", spec.Headers[cfg.APIKeyHeader])
	assert.Contains(t, spec.Headers[cfg.FieldMaskHeader], "places.rating")

	var body nearbyBody
	require.NoError(t, json.Unmarshal(spec.Body, &body))
	assert.Equal(t, 40.7, body.LocationRestriction.Circle.Center.Latitude)
	assert.Equal(t, 1500.0, body.LocationRestriction.Circle.Radius)
	assert.Equal(t, []string{"restaurant"}, body.IncludedTypes)
	assert.Equal(t, 10, body.MaxResultCount)
}

func TestBuildCallSpecRadiusBounds(t *testing.T) {
	cfg := testConfig()
	mask := mustMask(t, TierBasic, OpNearby)

	for _, radius := range []float64{0, -5, MaxRadiusMeters + 1} {
		_, err := BuildCallSpec(cfg, proximityRequest(radius), OpNearby, mask)
		require.Error(t, err, "radius %f should be rejected", radius)
		var placesErr *Error
		require.True(t, errors.As(err, &placesErr))
		assert.Equal(t, KindRadiusOutOfRange, placesErr.Kind)
	}

	// Boundary inclusive on both ends.
	for _, radius := range []float64{1, MaxRadiusMeters} {
		_, err := BuildCallSpec(cfg, proximityRequest(radius), OpNearby, mask)
		assert.NoError(t, err, "radius %f should be accepted", radius)
	}
}

func TestBuildCallSpecTextSearch(t *testing.T) {
	cfg := testConfig()
	req := &UnifiedPlaceRequest{
		TextQuery: "best ramen",
		OpenNow:   true,
		Latitude:  floatPtr(35.68),
		Longitude: floatPtr(139.76),
	}

	spec, err := BuildCallSpec(cfg, req, OpTextSearch, mustMask(t, TierStandard, OpTextSearch))
	require.NoError(t, err)
	assert.Equal(t, cfg.BaseURL+cfg.TextSearchPath, spec.URL)

	var body textSearchBody
	require.NoError(t, json.Unmarshal(spec.Body, &body))
	assert.Equal(t, "best ramen", body.TextQuery)
	assert.True(t, body.OpenNow)
	require.NotNil(t, body.LocationBias)
	assert.Equal(t, 35.68, body.LocationBias.Circle.Center.Latitude)
}

func TestBuildCallSpecDetails(t *testing.T) {
	cfg := testConfig()
	req := &UnifiedPlaceRequest{PlaceID: "ChIJN1t_tDeuEmsRUsoyG83frY4", LanguageCode: "en"}

	spec, err := BuildCallSpec(cfg, req, OpDetails, mustMask(t, TierFull, OpDetails))
	require.NoError(t, err)

	assert.Equal(t, http.MethodGet, spec.Method)
	assert.Equal(t, cfg.BaseURL+"/v1/places/ChIJN1t_tDeuEmsRUsoyG83frY4?languageCode=en", spec.URL)
	assert.Empty(t, spec.Body)
	assert.NotContains(t, spec.Headers, "Content-Type")
	assert.Contains(t, spec.Headers[cfg.FieldMaskHeader], "websiteUri")
}

func TestBuildCallSpecAutocomplete(t *testing.T) {
	cfg := testConfig()
	req := &UnifiedPlaceRequest{InputFragment: "piz", Category: "restaurant"}

	spec, err := BuildCallSpec(cfg, req, OpAutocomplete, mustMask(t, TierBasic, OpAutocomplete))
	require.NoError(t, err)
	assert.Equal(t, cfg.BaseURL+cfg.AutocompletePath, spec.URL)

	var body autocompleteBody
	require.NoError(t, json.Unmarshal(spec.Body, &body))
	assert.Equal(t, "piz", body.Input)
	assert.Equal(t, []string{"restaurant"}, body.IncludedPrimaryTypes)
	assert.Nil(t, body.LocationBias)
}

func TestBuildCallSpecNeverLeaksKeyInURL(t *testing.T) {
	cfg := testConfig()
	for kind, req := range map[OperationKind]*UnifiedPlaceRequest{
		OpNearby:       proximityRequest(100),
		OpTextSearch:   {TextQuery: "tea"},
		OpDetails:      {PlaceID: "ChIJabc"},
		OpAutocomplete: {InputFragment: "te"},
	} {
		spec, err := BuildCallSpec(cfg, req, kind, mustMask(t, TierBasic, kind))
		require.NoError(t, err)
		assert.NotContains(t, spec.URL, cfg.APIKey)
		assert.NotContains(t, string(spec.Body), cfg.APIKey)
	}
}
