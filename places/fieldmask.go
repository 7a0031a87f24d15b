package places

// Field-mask tier tables for the Places API (New). The mask bounds upstream
// response size and, for SKU-billed fields, cost: a tier never includes paths
// outside its bundle. List operations wrap every path in "places."; Details
// responses are a single object so the paths are bare. Autocomplete responses
// are prediction envelopes with their own fixed lightweight mask regardless of
// tier.

var basicFields = []string{
	"id",
	"displayName",
	"formattedAddress",
	"location",
	"primaryType",
	"types",
}

var standardFields = append(append([]string{}, basicFields...),
	"rating",
	"userRatingCount",
	"priceLevel",
	"currentOpeningHours.openNow",
)

var fullFields = append(append([]string{}, standardFields...),
	"nationalPhoneNumber",
	"websiteUri",
	"regularOpeningHours",
)

var autocompleteFields = []string{
	"suggestions.placePrediction.placeId",
	"suggestions.placePrediction.text",
	"suggestions.placePrediction.structuredFormat",
	"suggestions.placePrediction.types",
}

// BuildFieldMask returns the ordered field paths for a detail tier and
// operation kind. Identical inputs always yield an identical, order-stable
// list. An unrecognized tier fails with UnknownDetailTier; an empty tier
// defaults to Standard.
func BuildFieldMask(tier DetailTier, kind OperationKind) (FieldMask, error) {
	if kind == OpAutocomplete {
		return append(FieldMask{}, autocompleteFields...), nil
	}

	var fields []string
	switch tier {
	case TierBasic:
		fields = basicFields
	case TierStandard, "":
		fields = standardFields
	case TierFull:
		fields = fullFields
	default:
		return nil, newError(KindUnknownDetailTier, "unknown detail tier %q", tier)
	}

	mask := make(FieldMask, 0, len(fields))
	for _, f := range fields {
		if kind == OpDetails {
			mask = append(mask, f)
		} else {
			mask = append(mask, "places."+f)
		}
	}
	return mask, nil
}
