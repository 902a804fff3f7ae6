package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalize(t *testing.T) {
	cases := []struct {
		input string
		want  Category
		ok    bool
	}{
		{"paddy", Dhan, true},
		{"Rice Paddy", Dhan, true},
		{"دھان", Dhan, true},
		{"maize", Corn, true},
		{"مکئی", Corn, true},
		{"گندم", Wheat, true},
		{"  Wheat  ", Wheat, true},
		{"dhan (rice paddy)", Dhan, true},
		{"other", Others, true},
		{"", Others, false},
		{"Fancy Pulses", Others, false},
	}
	for _, tc := range cases {
		got, ok := Canonicalize(tc.input)
		assert.Equal(t, tc.want, got, "input %q", tc.input)
		assert.Equal(t, tc.ok, ok, "input %q", tc.input)
	}
}

func TestUrduNameCoversTaxonomy(t *testing.T) {
	for _, cat := range allCategories {
		assert.NotEmpty(t, cat.UrduName(), "category %q", cat)
	}
}

func TestAsStringSliceOrder(t *testing.T) {
	got := AsStringSlice()
	assert.Equal(t, len(allCategories), len(got))
	assert.Equal(t, string(Dhan), got[0])
	assert.Equal(t, string(Others), got[len(got)-1])
}
