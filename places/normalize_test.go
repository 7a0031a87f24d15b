package places

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeSearchList(t *testing.T) {
	raw := []byte(`{
		"places": [
			{
				"id": "p1",
				"displayName": {"text": "Luigi's", "languageCode": "en"},
				"formattedAddress": "1 Main St",
				"location": {"latitude": 40.7, "longitude": -74.0},
				"rating": 4.5,
				"userRatingCount": 120,
				"priceLevel": "PRICE_LEVEL_MODERATE",
				"primaryType": "restaurant",
				"types": ["restaurant", "food"],
				"currentOpeningHours": {"openNow": true}
			},
			{"id": "p2"}
		]
	}`)

	result, err := Normalize(OpNearby, raw)
	require.NoError(t, err)
	require.Len(t, result.Places, 2)

	first := result.Places[0]
	assert.Equal(t, "p1", first.ID)
	require.NotNil(t, first.DisplayName)
	assert.Equal(t, "Luigi's", *first.DisplayName)
	require.NotNil(t, first.Location)
	assert.Equal(t, 40.7, first.Location.Latitude)
	require.NotNil(t, first.Rating)
	assert.Equal(t, 4.5, *first.Rating)
	require.NotNil(t, first.OpenNow)
	assert.True(t, *first.OpenNow)

	// Absent fields stay absent, not zero-valued.
	second := result.Places[1]
	assert.Equal(t, "p2", second.ID)
	assert.Nil(t, second.DisplayName)
	assert.Nil(t, second.Rating)
	assert.Nil(t, second.Location)
	assert.Nil(t, second.OpenNow)
	assert.Nil(t, second.PriceLevel)
}

func TestNormalizePreservesUpstreamOrder(t *testing.T) {
	raw := []byte(`{"places":[{"id":"c"},{"id":"a"},{"id":"b"}]}`)
	result, err := Normalize(OpTextSearch, raw)
	require.NoError(t, err)

	ids := make([]string, len(result.Places))
	for i, p := range result.Places {
		ids[i] = p.ID
	}
	assert.Equal(t, []string{"c", "a", "b"}, ids)
}

func TestNormalizeEmptyListIsSuccess(t *testing.T) {
	result, err := Normalize(OpNearby, []byte(`{"places":[]}`))
	require.NoError(t, err)
	assert.Empty(t, result.Places)
	assert.Equal(t, OpNearby, result.Operation)
}

func TestNormalizeMissingPlacesKey(t *testing.T) {
	_, err := Normalize(OpNearby, []byte(`{}`))
	require.Error(t, err)

	var placesErr *Error
	require.True(t, errors.As(err, &placesErr))
	assert.Equal(t, KindMalformedUpstreamResponse, placesErr.Kind)
}

func TestNormalizeAutocomplete(t *testing.T) {
	raw := []byte(`{
		"suggestions": [
			{"placePrediction": {"placeId": "p1", "text": {"text": "Pizza Palace, Main St"}, "types": ["restaurant"]}},
			{"placePrediction": {"placeId": "p2"}}
		]
	}`)

	result, err := Normalize(OpAutocomplete, raw)
	require.NoError(t, err)
	require.Len(t, result.Places, 2)
	require.NotNil(t, result.Places[0].DisplayName)
	assert.Equal(t, "Pizza Palace, Main St", *result.Places[0].DisplayName)
	assert.Nil(t, result.Places[1].DisplayName)
}

func TestNormalizeAutocompleteMissingSuggestionsKey(t *testing.T) {
	_, err := Normalize(OpAutocomplete, []byte(`{"places":[]}`))
	var placesErr *Error
	require.True(t, errors.As(err, &placesErr))
	assert.Equal(t, KindMalformedUpstreamResponse, placesErr.Kind)
}

func TestNormalizeDetails(t *testing.T) {
	raw := []byte(`{
		"id": "ChIJdetail",
		"displayName": {"text": "Town Hall"},
		"nationalPhoneNumber": "(02) 9265 9333",
		"websiteUri": "https://example.org"
	}`)

	result, err := Normalize(OpDetails, raw)
	require.NoError(t, err)
	require.Len(t, result.Places, 1)

	detail := result.Places[0]
	assert.Equal(t, "ChIJdetail", detail.ID)
	require.NotNil(t, detail.Phone)
	assert.Equal(t, "(02) 9265 9333", *detail.Phone)
	require.NotNil(t, detail.Website)
}

func TestNormalizeDetailsMissingID(t *testing.T) {
	_, err := Normalize(OpDetails, []byte(`{"displayName":{"text":"nameless"}}`))
	var placesErr *Error
	require.True(t, errors.As(err, &placesErr))
	assert.Equal(t, KindMalformedUpstreamResponse, placesErr.Kind)
}

func TestNormalizeNonObjectBody(t *testing.T) {
	_, err := Normalize(OpNearby, []byte(`[]`))
	var placesErr *Error
	require.True(t, errors.As(err, &placesErr))
	assert.Equal(t, KindMalformedUpstreamResponse, placesErr.Kind)
}
