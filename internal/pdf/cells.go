package pdf

import (
	"strconv"
	"strings"

	"github.com/pakricemarket/mandi-admin/internal/llm"
)

// currencyUnitLabel is the Urdu rupee label appended to every price cell.
const currencyUnitLabel = "روپے"

// detailsSeparator joins the qualifier fragments in the details column.
const detailsSeparator = " | "

// RenderPriceCell formats the price column for one item: a single price as
// "{price} روپے", a range as "{min}-{max} روپے". When both forms are present
// (a malformed item the shallow validator lets through) the single price wins.
func RenderPriceCell(item llm.MandiItem) string {
	if item.Price != nil {
		return formatPrice(*item.Price) + " " + currencyUnitLabel
	}
	if item.HasRange() {
		return formatPrice(*item.PriceMin) + "-" + formatPrice(*item.PriceMax) + " " + currencyUnitLabel
	}
	return "-"
}

// RenderDetailsCell concatenates whichever of moisture, mixture and quality
// are present, or a placeholder dash when none are.
func RenderDetailsCell(item llm.MandiItem) string {
	var parts []string
	if item.Moisture != "" {
		parts = append(parts, "نمی: "+item.Moisture)
	}
	if item.Mixture != "" {
		parts = append(parts, "آمیزش: "+item.Mixture)
	}
	if item.Quality != "" {
		parts = append(parts, item.Quality)
	}
	if len(parts) == 0 {
		return "-"
	}
	return strings.Join(parts, detailsSeparator)
}

func formatPrice(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
