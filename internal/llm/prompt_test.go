package llm

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pakricemarket/mandi-admin/constants"
)

func TestBuildSystemPromptCoversTaxonomy(t *testing.T) {
	prompt := BuildSystemPrompt()

	for _, cat := range constants.AsStringSlice() {
		assert.Contains(t, prompt, cat)
	}
	// the one-variant-one-item rule and its worked examples
	assert.Contains(t, prompt, "EXTRACT EVERY SINGLE VARIATION AS SEPARATE ITEM")
	// strict output shape
	assert.Contains(t, prompt, `"categories"`)
}

func TestBuildSystemPromptIsStable(t *testing.T) {
	assert.Equal(t, BuildSystemPrompt(), BuildSystemPrompt())
}

func TestBuildUserPromptEmbedsRawText(t *testing.T) {
	raw := "غلہ منڈی عارفوالا\n15.01.2025\nڈی 98 ڈرائی 3200"
	prompt := BuildUserPrompt(raw)

	assert.Contains(t, prompt, raw)
	// instruction comes before the pasted message
	assert.Less(t, strings.Index(prompt, "Extract"), strings.Index(prompt, raw))
}
