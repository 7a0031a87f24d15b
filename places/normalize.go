package places

import "encoding/json"

// Upstream response shapes, kept to the fields the masks can request.

type upstreamDisplayName struct {
	Text string `json:"text"`
}

type upstreamLocation struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type upstreamOpeningHours struct {
	OpenNow *bool `json:"openNow"`
}

type upstreamPlace struct {
	ID                  string                `json:"id"`
	DisplayName         *upstreamDisplayName  `json:"displayName"`
	FormattedAddress    *string               `json:"formattedAddress"`
	Location            *upstreamLocation     `json:"location"`
	Rating              *float64              `json:"rating"`
	UserRatingCount     *int                  `json:"userRatingCount"`
	PriceLevel          *string               `json:"priceLevel"`
	PrimaryType         *string               `json:"primaryType"`
	Types               []string              `json:"types"`
	CurrentOpeningHours *upstreamOpeningHours `json:"currentOpeningHours"`
	NationalPhoneNumber *string               `json:"nationalPhoneNumber"`
	WebsiteURI          *string               `json:"websiteUri"`
}

type upstreamPrediction struct {
	PlacePrediction *struct {
		PlaceID string               `json:"placeId"`
		Text    *upstreamDisplayName `json:"text"`
		Types   []string             `json:"types"`
	} `json:"placePrediction"`
}

// Normalize maps a raw upstream response into the unified result. A missing
// top-level key ("places" for searches, "suggestions" for autocomplete, "id"
// for details) fails with MalformedUpstreamResponse so upstream schema drift
// surfaces immediately instead of masquerading as an empty success. An empty
// list under a present key is a legitimate zero-result success. Upstream
// ordering is preserved.
func Normalize(kind OperationKind, raw []byte) (*UnifiedPlaceResult, error) {
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, newError(KindMalformedUpstreamResponse, "upstream response is not a JSON object: %v", err)
	}

	result := &UnifiedPlaceResult{Operation: kind, Places: []PlaceSummary{}}

	switch kind {
	case OpNearby, OpTextSearch:
		list, ok := envelope["places"]
		if !ok {
			return nil, newError(KindMalformedUpstreamResponse, "upstream response missing %q key", "places")
		}
		var ups []upstreamPlace
		if err := json.Unmarshal(list, &ups); err != nil {
			return nil, newError(KindMalformedUpstreamResponse, "failed to decode places list: %v", err)
		}
		for i := range ups {
			result.Places = append(result.Places, summarize(&ups[i]))
		}

	case OpAutocomplete:
		list, ok := envelope["suggestions"]
		if !ok {
			return nil, newError(KindMalformedUpstreamResponse, "upstream response missing %q key", "suggestions")
		}
		var preds []upstreamPrediction
		if err := json.Unmarshal(list, &preds); err != nil {
			return nil, newError(KindMalformedUpstreamResponse, "failed to decode suggestions list: %v", err)
		}
		for _, p := range preds {
			if p.PlacePrediction == nil {
				continue
			}
			summary := PlaceSummary{ID: p.PlacePrediction.PlaceID, Types: p.PlacePrediction.Types}
			if p.PlacePrediction.Text != nil {
				text := p.PlacePrediction.Text.Text
				summary.DisplayName = &text
			}
			result.Places = append(result.Places, summary)
		}

	case OpDetails:
		if _, ok := envelope["id"]; !ok {
			return nil, newError(KindMalformedUpstreamResponse, "upstream details response missing %q field", "id")
		}
		var up upstreamPlace
		if err := json.Unmarshal(raw, &up); err != nil {
			return nil, newError(KindMalformedUpstreamResponse, "failed to decode place details: %v", err)
		}
		result.Places = append(result.Places, summarize(&up))

	default:
		return nil, newError(KindMalformedUpstreamResponse, "unsupported operation kind %q", kind)
	}

	return result, nil
}

// summarize copies the fields an upstream place actually carried; anything the
// upstream omitted stays nil rather than defaulting to a zero value.
func summarize(up *upstreamPlace) PlaceSummary {
	summary := PlaceSummary{
		ID:               up.ID,
		FormattedAddress: up.FormattedAddress,
		Rating:           up.Rating,
		UserRatingCount:  up.UserRatingCount,
		PriceLevel:       up.PriceLevel,
		PrimaryType:      up.PrimaryType,
		Types:            up.Types,
		Phone:            up.NationalPhoneNumber,
		Website:          up.WebsiteURI,
	}
	if up.DisplayName != nil {
		name := up.DisplayName.Text
		summary.DisplayName = &name
	}
	if up.Location != nil {
		summary.Location = &LatLng{Latitude: up.Location.Latitude, Longitude: up.Location.Longitude}
	}
	if up.CurrentOpeningHours != nil {
		summary.OpenNow = up.CurrentOpeningHours.OpenNow
	}
	return summary
}
