package places

import "time"

// MaxRadiusMeters is the documented Places API limit for nearby search.
const MaxRadiusMeters = 50000.0

// Config holds everything about the upstream contract that may change without
// a code change: base URL, per-operation paths and the header names carrying
// the credential and field mask. It is built once at startup and treated as
// immutable afterwards.
type Config struct {
	BaseURL          string
	NearbyPath       string
	TextSearchPath   string
	DetailsPath      string // prefix; the place id is appended
	AutocompletePath string

	APIKeyHeader    string
	FieldMaskHeader string

	APIKey         string
	RequestTimeout time.Duration
}

// DefaultConfig returns the Places API (New) defaults with the given key.
func DefaultConfig(apiKey string) *Config {
	return &Config{
		BaseURL:          "https://places.googleapis.com",
		NearbyPath:       "/v1/places:searchNearby",
		TextSearchPath:   "/v1/places:searchText",
		DetailsPath:      "/v1/places/",
		AutocompletePath: "/v1/places:autocomplete",
		APIKeyHeader:     "X-Goog-Api-Key",
		FieldMaskHeader:  "X-Goog-FieldMask",
		APIKey:           apiKey,
		RequestTimeout:   10 * time.Second,
	}
}
