package places

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
)

// Upstream request body shapes for the POST operations.

type latLngBody struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type circleBody struct {
	Center latLngBody `json:"center"`
	Radius float64    `json:"radius"`
}

type locationArea struct {
	Circle circleBody `json:"circle"`
}

type nearbyBody struct {
	LocationRestriction locationArea `json:"locationRestriction"`
	IncludedTypes       []string     `json:"includedTypes,omitempty"`
	MaxResultCount      int          `json:"maxResultCount,omitempty"`
	LanguageCode        string       `json:"languageCode,omitempty"`
}

type textSearchBody struct {
	TextQuery      string        `json:"textQuery"`
	LocationBias   *locationArea `json:"locationBias,omitempty"`
	IncludedType   string        `json:"includedType,omitempty"`
	OpenNow        bool          `json:"openNow,omitempty"`
	MaxResultCount int           `json:"maxResultCount,omitempty"`
	LanguageCode   string        `json:"languageCode,omitempty"`
}

type autocompleteBody struct {
	Input                string        `json:"input"`
	LocationBias         *locationArea `json:"locationBias,omitempty"`
	IncludedPrimaryTypes []string      `json:"includedPrimaryTypes,omitempty"`
	LanguageCode         string        `json:"languageCode,omitempty"`
}

// BuildCallSpec assembles the exact upstream call for an already-classified
// request. It performs no I/O. The API credential is injected into the headers
// here; the spec must never be logged with its headers intact.
func BuildCallSpec(cfg *Config, req *UnifiedPlaceRequest, kind OperationKind, mask FieldMask) (*CallSpec, error) {
	headers := map[string]string{
		cfg.APIKeyHeader:    cfg.APIKey,
		cfg.FieldMaskHeader: strings.Join(mask, ","),
		"Content-Type":      "application/json",
	}

	switch kind {
	case OpNearby:
		radius := *req.RadiusMeters
		if radius <= 0 || radius > MaxRadiusMeters {
			return nil, newError(KindRadiusOutOfRange,
				"radiusMeters must be in (0, %.0f], got %f", MaxRadiusMeters, radius)
		}
		body := nearbyBody{
			LocationRestriction: locationArea{Circle: circleBody{
				Center: latLngBody{Latitude: *req.Latitude, Longitude: *req.Longitude},
				Radius: radius,
			}},
			MaxResultCount: req.MaxResultCount,
			LanguageCode:   req.LanguageCode,
		}
		if req.Category != "" {
			body.IncludedTypes = []string{req.Category}
		}
		return postSpec(cfg, cfg.NearbyPath, headers, body)

	case OpTextSearch:
		body := textSearchBody{
			TextQuery:      req.TextQuery,
			IncludedType:   req.Category,
			OpenNow:        req.OpenNow,
			MaxResultCount: req.MaxResultCount,
			LanguageCode:   req.LanguageCode,
		}
		if bias := locationBias(req); bias != nil {
			body.LocationBias = bias
		}
		return postSpec(cfg, cfg.TextSearchPath, headers, body)

	case OpDetails:
		delete(headers, "Content-Type")
		u := cfg.BaseURL + cfg.DetailsPath + url.PathEscape(req.PlaceID)
		if req.LanguageCode != "" {
			u += "?languageCode=" + url.QueryEscape(req.LanguageCode)
		}
		return &CallSpec{Method: http.MethodGet, URL: u, Headers: headers}, nil

	case OpAutocomplete:
		body := autocompleteBody{
			Input:        req.InputFragment,
			LanguageCode: req.LanguageCode,
		}
		if req.Category != "" {
			body.IncludedPrimaryTypes = []string{req.Category}
		}
		if bias := locationBias(req); bias != nil {
			body.LocationBias = bias
		}
		return postSpec(cfg, cfg.AutocompletePath, headers, body)
	}

	return nil, newError(KindInvalidRequestShape, "unsupported operation kind %q", kind)
}

// locationBias builds an optional circle bias when the caller supplied
// coordinates alongside a higher-priority group.
func locationBias(req *UnifiedPlaceRequest) *locationArea {
	if req.Latitude == nil || req.Longitude == nil {
		return nil
	}
	radius := 5000.0
	if req.RadiusMeters != nil && *req.RadiusMeters > 0 && *req.RadiusMeters <= MaxRadiusMeters {
		radius = *req.RadiusMeters
	}
	return &locationArea{Circle: circleBody{
		Center: latLngBody{Latitude: *req.Latitude, Longitude: *req.Longitude},
		Radius: radius,
	}}
}

func postSpec(cfg *Config, path string, headers map[string]string, body interface{}) (*CallSpec, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, newError(KindInvalidRequestShape, "failed to encode upstream body: %v", err)
	}
	return &CallSpec{
		Method:  http.MethodPost,
		URL:     cfg.BaseURL + path,
		Headers: headers,
		Body:    payload,
	}, nil
}
