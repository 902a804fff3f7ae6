package llm

import (
	"strings"

	"github.com/pakricemarket/mandi-admin/constants"
)

// BuildSystemPrompt composes the fixed system message for mandi price-list
// extraction: the category taxonomy, the one-variant-one-item rule with worked
// examples, the boilerplate ignore list, and the strict JSON shape.
func BuildSystemPrompt() string {
	parts := []string{
		"You are an expert in Pakistani grain market (mandi) price lists.",
		"You will receive WhatsApp messages from Pakistani grain traders in Urdu/English mix.",
		"",
		"CRITICAL RULES - READ CAREFULLY:",
		"",
		"1. Extract the date (format: DD.MM.YYYY or similar)",
		"2. Identify the market/mandi name (e.g., غلہ منڈی عارفوالا)",
		"",
		"3. Categorize products into groups:",
	}
	for _, cat := range constants.AsStringSlice() {
		c := constants.Category(cat)
		if c == constants.Others {
			parts = append(parts, "   - "+cat)
		} else {
			parts = append(parts, "   - "+cat+" - "+c.UrduName())
		}
	}
	parts = append(parts,
		"",
		"4. EXTRACT EVERY SINGLE VARIATION AS SEPARATE ITEM:",
		"",
		"   EXAMPLE 1 - Quality Variations:",
		"   Input: \"نیو دھان 1509",
		"          خشک مال 4400 سے4800",
		"          درمیان مال 3800 سے4400\"",
		"",
		"   CREATE 2 ITEMS:",
		"   - Item 1: \"نیو دھان 1509 خشک مال\" (Dry) - 4400-4800",
		"   - Item 2: \"نیو دھان 1509 درمیان مال\" (Medium) - 3800-4400",
		"",
		"   EXAMPLE 2 - Moisture % Variations (CORN):",
		"   Input: \"12% 3250",
		"          14% 3200",
		"          15% 3150\"",
		"",
		"   CREATE 3 SEPARATE ITEMS:",
		"   - Item 1: \"نئی بہاریہ مکئی 12%\" - 3250",
		"   - Item 2: \"نئی بہاریہ مکئی 14%\" - 3200",
		"   - Item 3: \"نئی بہاریہ مکئی 15%\" - 3150",
		"",
		"   EXAMPLE 3 - Multiple Prices for Same Product:",
		"   Input: \"کائنات 1121 کچا vip",
		"          11000/40kg",
		"          10450/40kg\"",
		"",
		"   CREATE 2 ITEMS (or use range 10450-11000):",
		"   - Item 1: \"کائنات 1121 کچا vip\" - 11000",
		"   - Item 2: \"کائنات 1121 کچا vip (Alternative)\" - 10450",
		"",
		"5. DO NOT SKIP ANY ITEMS - Extract EVERY product mentioned with a price",
		"",
		"6. For each product:",
		"   - Full Urdu name (include quality: خشک، درمیان، پرانہ، نیا، etc.)",
		"   - English translation",
		"   - Price (single value or range with \"سے\")",
		"   - Unit (usually 40kg)",
		"   - Quality indicators (moisture %, mixture %, quality descriptions)",
		"",
		"7. IGNORE:",
		"   - Islamic prayers (بسم اللہ, السلام علیکم)",
		"   - Contact info (phone, addresses, email)",
		"   - Emojis (🌾🌽 etc.)",
		"   - Promotional text",
		"",
		"8. IMPORTANT: If you see multiple percentages or qualities under one product, create SEPARATE items for EACH variation!",
		"",
		"Return ONLY valid JSON:",
		`{`,
		`  "date": "DD.MM.YYYY",`,
		`  "market": "Market name",`,
		`  "source": "Business name",`,
		`  "categories": [`,
		`    {`,
		`      "category": "Category",`,
		`      "items": [`,
		`        {`,
		`          "nameUrdu": "Full Urdu name with quality",`,
		`          "nameEnglish": "Full English translation",`,
		`          "price": 13000,`,
		`          "priceMin": 4400,`,
		`          "priceMax": 4800,`,
		`          "unit": "40kg",`,
		`          "moisture": "12%",`,
		`          "mixture": "20-25%",`,
		`          "quality": "Dry/Medium/VIP/Export"`,
		`        }`,
		`      ]`,
		`    }`,
		`  ]`,
		`}`,
		"",
		"Use \"price\" for a single value, or \"priceMin\"/\"priceMax\" for a range with سے - never both forms for one item.",
		"Never output null. If a field is not present, omit it.",
		"",
		"REMEMBER: Extract EVERY SINGLE ITEM with its price variation as SEPARATE entries!",
	)
	return strings.Join(parts, "\n")
}

// BuildUserPrompt prefixes the raw message with the extraction instruction.
func BuildUserPrompt(rawText string) string {
	var b strings.Builder
	b.WriteString("Extract ALL items from this mandi message. ")
	b.WriteString("Do not skip any price variations, quality grades, or moisture percentages. ")
	b.WriteString("Each variation should be a separate item:\n\n")
	b.WriteString(rawText)
	return b.String()
}
