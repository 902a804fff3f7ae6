package constants

import (
	"strings"
)

// Category is the fixed mandi product taxonomy the extractor classifies into.
type Category string

const (
	Dhan    Category = "Dhan (Rice Paddy)"
	Corn    Category = "Corn/Maize"
	Wheat   Category = "Wheat"
	Rice    Category = "Rice"
	Mustard Category = "Mustard"
	Sesame  Category = "Sesame"
	Others  Category = "Others"
)

var allCategories = []Category{
	Dhan,
	Corn,
	Wheat,
	Rice,
	Mustard,
	Sesame,
	Others,
}

// UrduName returns the Urdu label used in prompts and rendered reports.
func (c Category) UrduName() string {
	switch c {
	case Dhan:
		return "دھان"
	case Corn:
		return "مکئی"
	case Wheat:
		return "گندم"
	case Rice:
		return "چاول"
	case Mustard:
		return "سرسوں"
	case Sesame:
		return "تل"
	default:
		return "دیگر"
	}
}

func AsStringSlice() []string {
	result := make([]string, len(allCategories))
	for i, cat := range allCategories {
		result[i] = string(cat)
	}
	return result
}

// Canonicalize maps free-form category labels from the model onto the taxonomy.
func Canonicalize(input string) (Category, bool) {
	if input == "" {
		return Others, false
	}

	normalized := strings.ToLower(strings.TrimSpace(input))

	// synonyms map
	synonyms := map[string]Category{
		"paddy":      Dhan,
		"rice paddy": Dhan,
		"dhan":       Dhan,
		"دھان":       Dhan,
		"maize":      Corn,
		"corn":       Corn,
		"مکئی":       Corn,
		"گندم":       Wheat,
		"چاول":       Rice,
		"سرسوں":      Mustard,
		"تل":         Sesame,
		"other":      Others,
	}

	if cat, ok := synonyms[normalized]; ok {
		return cat, true
	}

	// check if it matches any category string
	for _, cat := range allCategories {
		if normalized == strings.ToLower(string(cat)) {
			return cat, true
		}
	}

	return Others, false
}
