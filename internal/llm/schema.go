package llm

// BuildMandiJSONSchema returns a JSON-Schema (draft 2020-12 subset) for the
// parsed mandi shape as a generic map. The schema is advisory: the model is
// asked to match it, and responses are validated against it for logging, but
// acceptance only requires the top-level date/categories contract (see
// ValidateResponse). Item-level price-form violations are therefore visible in
// logs without being rejected.
func BuildMandiJSONSchema(allowedCategories []string) map[string]any {
	item := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"nameUrdu":    map[string]any{"type": "string", "minLength": 1},
			"nameEnglish": map[string]any{"type": "string"},
			"price":       priceProp(),
			"priceMin":    priceProp(),
			"priceMax":    priceProp(),
			"unit":        map[string]any{"type": "string"},
			"moisture":    map[string]any{"type": "string"},
			"mixture":     map[string]any{"type": "string"},
			"quality":     map[string]any{"type": "string"},
		},
		"required": []string{"nameUrdu", "unit"},
	}

	categoryProp := map[string]any{"type": "string", "minLength": 1}
	if len(allowedCategories) > 0 {
		categoryProp = map[string]any{
			"type": "string",
			"enum": allowedCategories,
		}
	}

	category := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"category": categoryProp,
			"items":    map[string]any{"type": "array", "items": item},
		},
		"required": []string{"category", "items"},
	}

	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"date":       map[string]any{"type": "string", "minLength": 1},
			"market":     map[string]any{"type": "string"},
			"source":     map[string]any{"type": "string"},
			"categories": map[string]any{"type": "array", "items": category},
		},
		"required": []string{"date", "categories"},
	}
}

func priceProp() map[string]any {
	return map[string]any{"type": "number", "minimum": 0}
}
