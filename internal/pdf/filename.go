package pdf

import "strings"

// Filename derives the report filename from the report date. Deterministic:
// the same date always yields the same name, with every non-alphanumeric rune
// of the date normalized to a single separator (15.01.2025 and 15/01/2025
// both map to Mandi-List-15-01-2025.pdf).
func Filename(date string) string {
	var b strings.Builder
	for _, r := range date {
		if (r >= '0' && r <= '9') || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			b.WriteRune(r)
		} else {
			b.WriteRune('-')
		}
	}
	return "Mandi-List-" + b.String() + ".pdf"
}
