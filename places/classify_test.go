package places

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 { return &v }

func proximityRequest(radius float64) *UnifiedPlaceRequest {
	return &UnifiedPlaceRequest{
		Latitude:     floatPtr(40.7),
		Longitude:    floatPtr(-74.0),
		RadiusMeters: floatPtr(radius),
	}
}

func TestClassifySingleGroup(t *testing.T) {
	tests := []struct {
		name string
		req  *UnifiedPlaceRequest
		want OperationKind
	}{
		{"details", &UnifiedPlaceRequest{PlaceID: "ChIJabc123"}, OpDetails},
		{"autocomplete", &UnifiedPlaceRequest{InputFragment: "piz"}, OpAutocomplete},
		{"nearby", proximityRequest(1500), OpNearby},
		{"text search", &UnifiedPlaceRequest{TextQuery: "pizza in brooklyn"}, OpTextSearch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, err := Classify(tt.req)
			require.NoError(t, err)
			assert.Equal(t, tt.want, kind)
		})
	}
}

func TestClassifyPriorityOrder(t *testing.T) {
	// Higher-priority groups win silently when multiple are populated.
	req := proximityRequest(1000)
	req.TextQuery = "coffee"
	req.InputFragment = "cof"
	req.PlaceID = "ChIJxyz"

	kind, err := Classify(req)
	require.NoError(t, err)
	assert.Equal(t, OpDetails, kind)

	req.PlaceID = ""
	kind, err = Classify(req)
	require.NoError(t, err)
	assert.Equal(t, OpAutocomplete, kind)

	req.InputFragment = ""
	kind, err = Classify(req)
	require.NoError(t, err)
	assert.Equal(t, OpNearby, kind)

	req.RadiusMeters = nil
	kind, err = Classify(req)
	require.NoError(t, err)
	assert.Equal(t, OpTextSearch, kind)
}

func TestClassifyEmptyRequest(t *testing.T) {
	_, err := Classify(&UnifiedPlaceRequest{})
	require.Error(t, err)

	var placesErr *Error
	require.True(t, errors.As(err, &placesErr))
	assert.Equal(t, KindInvalidRequestShape, placesErr.Kind)
}

func TestClassifyPartialProximityGroup(t *testing.T) {
	// lat+lng without a radius does not form the proximity group.
	req := &UnifiedPlaceRequest{Latitude: floatPtr(1), Longitude: floatPtr(2)}
	_, err := Classify(req)
	require.Error(t, err)

	var placesErr *Error
	require.True(t, errors.As(err, &placesErr))
	assert.Equal(t, KindInvalidRequestShape, placesErr.Kind)
}
