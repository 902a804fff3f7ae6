package pdf

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pakricemarket/mandi-admin/internal/llm"
)

func fptr(v float64) *float64 { return &v }

func TestRenderPriceCell(t *testing.T) {
	t.Run("single price", func(t *testing.T) {
		got := RenderPriceCell(llm.MandiItem{Price: fptr(3200)})
		assert.Equal(t, "3200 روپے", got)
	})

	t.Run("range", func(t *testing.T) {
		got := RenderPriceCell(llm.MandiItem{PriceMin: fptr(2800), PriceMax: fptr(3100)})
		assert.Equal(t, "2800-3100 روپے", got)
	})

	t.Run("single price wins over range", func(t *testing.T) {
		got := RenderPriceCell(llm.MandiItem{
			Price:    fptr(3000),
			PriceMin: fptr(2800),
			PriceMax: fptr(3100),
		})
		assert.Equal(t, "3000 روپے", got)
	})

	t.Run("no price at all", func(t *testing.T) {
		assert.Equal(t, "-", RenderPriceCell(llm.MandiItem{}))
	})

	t.Run("half a range is no range", func(t *testing.T) {
		assert.Equal(t, "-", RenderPriceCell(llm.MandiItem{PriceMin: fptr(2800)}))
	})

	t.Run("fractional price keeps decimals", func(t *testing.T) {
		got := RenderPriceCell(llm.MandiItem{Price: fptr(3200.5)})
		assert.Equal(t, "3200.5 روپے", got)
	})
}

func TestRenderDetailsCell(t *testing.T) {
	t.Run("all fragments joined in order", func(t *testing.T) {
		got := RenderDetailsCell(llm.MandiItem{
			Moisture: "12%",
			Mixture:  "20-25%",
			Quality:  "VIP",
		})
		assert.Equal(t, "نمی: 12% | آمیزش: 20-25% | VIP", got)
	})

	t.Run("single fragment has no separator", func(t *testing.T) {
		got := RenderDetailsCell(llm.MandiItem{Quality: "Dry"})
		assert.Equal(t, "Dry", got)
	})

	t.Run("empty details collapse to dash", func(t *testing.T) {
		assert.Equal(t, "-", RenderDetailsCell(llm.MandiItem{}))
	})
}
