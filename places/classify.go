package places

// Classify inspects the unified request and selects the upstream operation.
// Groups are checked in a fixed priority order: Details, then Autocomplete,
// then Nearby, then TextSearch. If a caller populates more than one group the
// higher-priority group wins silently; populating none fails with
// InvalidRequestShape.
func Classify(req *UnifiedPlaceRequest) (OperationKind, error) {
	switch {
	case req.PlaceID != "":
		return OpDetails, nil
	case req.InputFragment != "":
		return OpAutocomplete, nil
	case req.hasProximity():
		return OpNearby, nil
	case req.TextQuery != "":
		return OpTextSearch, nil
	}
	return "", newError(KindInvalidRequestShape,
		"request must set one of: placeId, inputFragment, lat+lng+radiusMeters, textQuery")
}
