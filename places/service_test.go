package places

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T, handler http.HandlerFunc) (*Service, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := DefaultConfig("test-key")
	cfg.BaseURL = server.URL
	return NewService(cfg, server.Client(), zerolog.Nop()), server
}

func TestFindNearbyEndToEnd(t *testing.T) {
	var gotPath, gotMask string
	var gotBody nearbyBody

	service, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotMask = r.Header.Get("X-Goog-FieldMask")
		assert.Equal(t, "test-key", r.Header.Get("X-Goog-Api-Key"))

		payload, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(payload, &gotBody))

		json.NewEncoder(w).Encode(map[string]interface{}{
			"places": []map[string]interface{}{
				{"id": "p1", "primaryType": "restaurant", "displayName": map[string]string{"text": "First"}},
				{"id": "p2", "primaryType": "restaurant"},
			},
		})
	})

	req := proximityRequest(1500)
	req.Category = "restaurant"

	result, err := service.Find(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, "/v1/places:searchNearby", gotPath)
	assert.Contains(t, gotMask, "places.rating")
	assert.Equal(t, []string{"restaurant"}, gotBody.IncludedTypes)
	assert.Equal(t, 1500.0, gotBody.LocationRestriction.Circle.Radius)

	require.Len(t, result.Places, 2)
	assert.Equal(t, "p1", result.Places[0].ID)
	assert.Equal(t, "p2", result.Places[1].ID)
	for _, p := range result.Places {
		require.NotNil(t, p.PrimaryType)
		assert.Equal(t, "restaurant", *p.PrimaryType)
	}
}

func TestFindDetailsEndToEnd(t *testing.T) {
	service, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/v1/places/ChIJ123", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"id":          "ChIJ123",
			"displayName": map[string]string{"text": "Somewhere"},
		})
	})

	result, err := service.Find(context.Background(), &UnifiedPlaceRequest{PlaceID: "ChIJ123"})
	require.NoError(t, err)
	require.Len(t, result.Places, 1)
	assert.Equal(t, OpDetails, result.Operation)
}

func TestFindInvalidRequestSkipsUpstream(t *testing.T) {
	called := false
	service, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	_, err := service.Find(context.Background(), &UnifiedPlaceRequest{})
	require.Error(t, err)
	assert.False(t, called, "classification failures must not reach the upstream")

	var placesErr *Error
	require.True(t, errors.As(err, &placesErr))
	assert.Equal(t, KindInvalidRequestShape, placesErr.Kind)
}

func TestFindUpstreamFailurePropagates(t *testing.T) {
	service, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"error":{"status":"PERMISSION_DENIED"}}`))
	})

	_, err := service.Find(context.Background(), &UnifiedPlaceRequest{TextQuery: "x"})
	require.Error(t, err)

	var placesErr *Error
	require.True(t, errors.As(err, &placesErr))
	assert.Equal(t, KindUpstreamError, placesErr.Kind)
	assert.Equal(t, http.StatusForbidden, placesErr.HTTPStatus())
}

func TestFindZeroResultsIsSuccess(t *testing.T) {
	service, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"places":[]}`))
	})

	result, err := service.Find(context.Background(), &UnifiedPlaceRequest{TextQuery: "nothing here"})
	require.NoError(t, err)
	assert.Empty(t, result.Places)
}
