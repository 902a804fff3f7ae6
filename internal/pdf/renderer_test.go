package pdf

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pakricemarket/mandi-admin/internal/llm"
)

func sampleData() llm.ParsedMandiData {
	return llm.ParsedMandiData{
		Date:   "15.01.2025",
		Market: "غلہ منڈی عارفوالا",
		Source: "WhatsApp",
		Categories: []llm.MandiCategory{
			{
				Category: "Dhan (Rice Paddy)",
				Items: []llm.MandiItem{
					{NameUrdu: "ڈی 98 ڈرائی", NameEnglish: "D98 Dry", Price: fptr(3200), Unit: "40kg", Quality: "Dry"},
					{NameUrdu: "ڈی 98", NameEnglish: "D98", PriceMin: fptr(2800), PriceMax: fptr(3100), Unit: "40kg", Moisture: "12%"},
				},
			},
			{
				Category: "Corn/Maize",
				Items: []llm.MandiItem{
					{NameUrdu: "مکئی", NameEnglish: "Corn", Price: fptr(2350), Unit: "40kg", Mixture: "20-25%"},
				},
			},
		},
	}
}

func TestRenderProducesPDF(t *testing.T) {
	fixed := time.Date(2025, 1, 15, 10, 30, 0, 0, time.UTC)
	r := NewRenderer(Config{}, nil).WithClock(func() time.Time { return fixed })

	data := sampleData()
	out, filename, err := r.Render(data)
	require.NoError(t, err)
	require.NotEmpty(t, out)

	assert.Equal(t, "%PDF", string(out[:4]))
	assert.Equal(t, "Mandi-List-15-01-2025.pdf", filename)
}

func TestRenderFilenameFollowsDate(t *testing.T) {
	r := NewRenderer(Config{}, nil)

	data := sampleData()
	data.Date = "16/01/2025"
	_, filename, err := r.Render(data)
	require.NoError(t, err)
	assert.Equal(t, "Mandi-List-16-01-2025.pdf", filename)
}

func TestRenderManyItemsPaginates(t *testing.T) {
	r := NewRenderer(Config{}, nil)

	items := make([]llm.MandiItem, 120)
	for i := range items {
		items[i] = llm.MandiItem{NameUrdu: "ڈی 98", Price: fptr(3000 + float64(i)), Unit: "40kg"}
	}
	data := llm.ParsedMandiData{
		Date:       "15.01.2025",
		Market:     "غلہ منڈی عارفوالا",
		Categories: []llm.MandiCategory{{Category: "Dhan (Rice Paddy)", Items: items}},
	}

	out, _, err := r.Render(data)
	require.NoError(t, err)
	// 120 rows cannot fit one A4 page; the output must be bigger than the
	// single-page sample without erroring.
	small, _, err := r.Render(sampleData())
	require.NoError(t, err)
	assert.Greater(t, len(out), len(small))
}

func TestRenderEmptyCategories(t *testing.T) {
	r := NewRenderer(Config{}, nil)

	out, filename, err := r.Render(llm.ParsedMandiData{Date: "15.01.2025", Market: "منڈی"})
	require.NoError(t, err)
	assert.NotEmpty(t, out)
	assert.Equal(t, "Mandi-List-15-01-2025.pdf", filename)
}
