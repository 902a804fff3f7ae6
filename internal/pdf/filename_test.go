package pdf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilename(t *testing.T) {
	cases := []struct {
		date string
		want string
	}{
		{"15.01.2025", "Mandi-List-15-01-2025.pdf"},
		{"15/01/2025", "Mandi-List-15-01-2025.pdf"},
		{"2025-01-15", "Mandi-List-2025-01-15.pdf"},
		{"15 Jan 2025", "Mandi-List-15-Jan-2025.pdf"},
		{"", "Mandi-List-.pdf"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Filename(tc.date), "date %q", tc.date)
	}
}

func TestFilenameNormalizesUrduDate(t *testing.T) {
	// the Urdu full stop is not alphanumeric and normalizes like any other mark
	got := Filename("15۔01۔2025")
	assert.Equal(t, "Mandi-List-15-01-2025.pdf", got)
}

func TestFilenameIsDeterministic(t *testing.T) {
	a := Filename("15.01.2025")
	b := Filename("15.01.2025")
	assert.Equal(t, a, b)
}
