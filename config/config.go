package config

import (
	"os"
	"strconv"
	"time"

	"github.com/wayfarer-app/api-go/llm"
	"github.com/wayfarer-app/api-go/places"
)

// AppConfig is built once at startup and passed explicitly into every
// component; nothing reads the environment after Load returns.
type AppConfig struct {
	Port   string
	Places *places.Config
	LLM    llm.Config
}

// Load assembles the process-wide configuration from the environment. The
// places upstream contract (base URL, operation paths, header names) can be
// overridden per deployment without a code change.
func Load() *AppConfig {
	placesCfg := places.DefaultConfig(os.Getenv("GOOGLE_PLACES_API_KEY"))
	if v := os.Getenv("PLACES_BASE_URL"); v != "" {
		placesCfg.BaseURL = v
	}
	if v := os.Getenv("PLACES_NEARBY_PATH"); v != "" {
		placesCfg.NearbyPath = v
	}
	if v := os.Getenv("PLACES_TEXT_SEARCH_PATH"); v != "" {
		placesCfg.TextSearchPath = v
	}
	if v := os.Getenv("PLACES_DETAILS_PATH"); v != "" {
		placesCfg.DetailsPath = v
	}
	if v := os.Getenv("PLACES_AUTOCOMPLETE_PATH"); v != "" {
		placesCfg.AutocompletePath = v
	}
	if v := os.Getenv("PLACES_API_KEY_HEADER"); v != "" {
		placesCfg.APIKeyHeader = v
	}
	if v := os.Getenv("PLACES_FIELD_MASK_HEADER"); v != "" {
		placesCfg.FieldMaskHeader = v
	}
	if v := os.Getenv("PLACES_TIMEOUT_SECONDS"); v != "" {
		if seconds, err := strconv.Atoi(v); err == nil && seconds > 0 {
			placesCfg.RequestTimeout = time.Duration(seconds) * time.Second
		}
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	return &AppConfig{
		Port:   port,
		Places: placesCfg,
		LLM: llm.Config{
			BaseURL: os.Getenv("LLM_BASE_URL"),
			APIKey:  os.Getenv("LLM_API_KEY"),
			Model:   os.Getenv("LLM_MODEL"),
		},
	}
}
