package places

// UnifiedPlaceRequest is the single input type for the orchestration engine.
// Exactly one parameter group must be populated: proximity (Latitude,
// Longitude, RadiusMeters), free-text (TextQuery), details (PlaceID) or
// autocomplete (InputFragment). The optional fields apply across groups where
// the upstream supports them.
type UnifiedPlaceRequest struct {
	Latitude     *float64 `json:"lat,omitempty"`
	Longitude    *float64 `json:"lng,omitempty"`
	RadiusMeters *float64 `json:"radiusMeters,omitempty"`

	TextQuery string `json:"textQuery,omitempty"`

	PlaceID string `json:"placeId,omitempty"`

	InputFragment string `json:"inputFragment,omitempty"`

	Category       string `json:"category,omitempty"`
	OpenNow        bool   `json:"openNow,omitempty"`
	MaxResultCount int    `json:"maxResultCount,omitempty"`
	LanguageCode   string `json:"languageCode,omitempty"`
	DetailTier     string `json:"detailTier,omitempty"`
}

// hasProximity reports whether all three proximity fields are present.
func (r *UnifiedPlaceRequest) hasProximity() bool {
	return r.Latitude != nil && r.Longitude != nil && r.RadiusMeters != nil
}

// OperationKind is the upstream operation selected for a request. Determined
// once by Classify and immutable thereafter.
type OperationKind string

const (
	OpNearby       OperationKind = "nearby"
	OpTextSearch   OperationKind = "text_search"
	OpDetails      OperationKind = "details"
	OpAutocomplete OperationKind = "autocomplete"
)

// DetailTier selects a named bundle of field-mask entries.
type DetailTier string

const (
	TierBasic    DetailTier = "basic"
	TierStandard DetailTier = "standard"
	TierFull     DetailTier = "full"
)

// FieldMask is an ordered list of upstream response field paths. It is built
// once per request and passed verbatim in the field-mask header.
type FieldMask []string

// CallSpec is the fully assembled upstream call. Produced by BuildCallSpec,
// consumed exactly once by the Executor. Headers carry the API credential and
// must never be logged.
type CallSpec struct {
	Method  string
	URL     string
	Headers map[string]string
	Body    []byte
}

// LatLng is a geographic point in the unified result.
type LatLng struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`
}

// PlaceSummary is one normalized place. Pointer fields distinguish "upstream
// did not return this field" from a legitimate zero value.
type PlaceSummary struct {
	ID               string   `json:"id"`
	DisplayName      *string  `json:"displayName,omitempty"`
	FormattedAddress *string  `json:"formattedAddress,omitempty"`
	Location         *LatLng  `json:"location,omitempty"`
	Rating           *float64 `json:"rating,omitempty"`
	UserRatingCount  *int     `json:"userRatingCount,omitempty"`
	PriceLevel       *string  `json:"priceLevel,omitempty"`
	PrimaryType      *string  `json:"primaryType,omitempty"`
	Types            []string `json:"types,omitempty"`
	OpenNow          *bool    `json:"openNow,omitempty"`
	Phone            *string  `json:"phone,omitempty"`
	Website          *string  `json:"website,omitempty"`
}

// UnifiedPlaceResult is the normalized output contract, independent of which
// upstream operation serviced the request. Places preserves upstream ordering.
type UnifiedPlaceResult struct {
	Operation OperationKind  `json:"operation"`
	Places    []PlaceSummary `json:"places"`
}
