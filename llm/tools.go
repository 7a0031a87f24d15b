package llm

import (
	"encoding/json"
	"fmt"

	"github.com/wayfarer-app/api-go/places"
)

// FindPlacesToolName is the function name the model uses to search places.
const FindPlacesToolName = "find_places"

// FindPlacesTool declares the place-search tool. Its argument schema mirrors
// places.UnifiedPlaceRequest: the model fills exactly one parameter group and
// the engine's classifier picks the operation.
func FindPlacesTool() Tool {
	return Tool{
		Type: "function",
		Function: FunctionDef{
			Name: FindPlacesToolName,
			Description: "Search for places. Provide exactly one of: lat+lng+radiusMeters " +
				"for a proximity search, textQuery for a free-text search, placeId for a " +
				"details lookup, or inputFragment for autocomplete suggestions.",
			Parameters: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"lat":            map[string]interface{}{"type": "number", "description": "Center latitude for proximity search"},
					"lng":            map[string]interface{}{"type": "number", "description": "Center longitude for proximity search"},
					"radiusMeters":   map[string]interface{}{"type": "number", "description": "Search radius in meters, max 50000"},
					"textQuery":      map[string]interface{}{"type": "string", "description": "Free-text search query"},
					"placeId":        map[string]interface{}{"type": "string", "description": "Place identifier for a details lookup"},
					"inputFragment":  map[string]interface{}{"type": "string", "description": "Partial text for autocomplete"},
					"category":       map[string]interface{}{"type": "string", "description": "Place type filter, e.g. restaurant"},
					"openNow":        map[string]interface{}{"type": "boolean"},
					"maxResultCount": map[string]interface{}{"type": "integer"},
					"languageCode":   map[string]interface{}{"type": "string"},
					"detailTier":     map[string]interface{}{"type": "string", "enum": []string{"basic", "standard", "full"}},
				},
			},
		},
	}
}

// DecodeFindPlacesArgs parses the model's tool-call arguments into a unified
// place request.
func DecodeFindPlacesArgs(arguments string) (*places.UnifiedPlaceRequest, error) {
	var req places.UnifiedPlaceRequest
	if err := json.Unmarshal([]byte(arguments), &req); err != nil {
		return nil, fmt.Errorf("invalid find_places arguments: %w", err)
	}
	return &req, nil
}
