package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pakricemarket/mandi-admin/constants"
)

func TestValidateResponseAcceptsMinimalShape(t *testing.T) {
	raw := []byte(`{"date":"15.01.2025","market":"غلہ منڈی عارفوالا","categories":[]}`)

	out, err := ValidateResponse(raw)
	require.NoError(t, err)
	assert.Equal(t, "15.01.2025", out.Date)
	assert.Equal(t, "غلہ منڈی عارفوالا", out.Market)
	assert.Empty(t, out.Categories)
}

func TestValidateResponseRejectsMissingKeys(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"missing date", `{"categories":[]}`},
		{"missing categories", `{"date":"15.01.2025"}`},
		{"empty date", `{"date":"","categories":[]}`},
		{"not json", `mandi rates below`},
		{"json but not object", `[1,2,3]`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ValidateResponse([]byte(tc.raw))
			assert.Error(t, err)
		})
	}
}

func TestValidateResponseIgnoresItemLevelProblems(t *testing.T) {
	// shallow by contract: garbage inside categories passes here and is only
	// caught (as a warning) by the advisory schema check
	raw := []byte(`{"date":"15.01.2025","categories":[{"category":"Wheat","items":[{"price":"not-a-number"}]}]}`)

	_, err := ValidateResponse(raw)
	assert.Error(t, err) // unmarshal into typed struct still fails on wrong types

	raw = []byte(`{"date":"15.01.2025","categories":[{"category":"Wheat","items":[{"nameUrdu":"","unit":""}]}]}`)
	out, err := ValidateResponse(raw)
	require.NoError(t, err)
	assert.Equal(t, 1, out.TotalItems())
}

func TestSchemaValidationFlagsBadItems(t *testing.T) {
	schema := BuildMandiJSONSchema(constants.AsStringSlice())

	good := []byte(`{
		"date":"15.01.2025",
		"market":"غلہ منڈی عارفوالا",
		"categories":[
			{"category":"Dhan (Rice Paddy)","items":[{"nameUrdu":"ڈی 98","unit":"40kg","price":3200}]}
		]
	}`)
	assert.NoError(t, ValidateJSONAgainstSchema(schema, good))

	negativePrice := []byte(`{
		"date":"15.01.2025",
		"categories":[
			{"category":"Wheat","items":[{"nameUrdu":"گندم","unit":"40kg","price":-5}]}
		]
	}`)
	assert.Error(t, ValidateJSONAgainstSchema(schema, negativePrice))

	missingUnit := []byte(`{
		"date":"15.01.2025",
		"categories":[
			{"category":"Wheat","items":[{"nameUrdu":"گندم","price":5}]}
		]
	}`)
	assert.Error(t, ValidateJSONAgainstSchema(schema, missingUnit))
}

func TestTotalItemsCountsAcrossCategories(t *testing.T) {
	d := ParsedMandiData{
		Categories: []MandiCategory{
			{Category: "Wheat", Items: make([]MandiItem, 3)},
			{Category: "Rice", Items: make([]MandiItem, 2)},
			{Category: "Others"},
		},
	}
	assert.Equal(t, 5, d.TotalItems())
}

func TestHasRange(t *testing.T) {
	lo, hi := 2800.0, 3100.0
	assert.True(t, MandiItem{PriceMin: &lo, PriceMax: &hi}.HasRange())
	assert.False(t, MandiItem{PriceMin: &lo}.HasRange())
	assert.False(t, MandiItem{}.HasRange())
}
