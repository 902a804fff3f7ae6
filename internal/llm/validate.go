package llm

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// ValidateJSONAgainstSchema checks a raw model response against the mandi
// schema map. Callers treat the result as advisory (see BuildMandiJSONSchema).
func ValidateJSONAgainstSchema(schemaMap map[string]any, data []byte) error {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		return fmt.Errorf("marshal mandi schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("mandi-schema.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add mandi schema: %w", err)
	}
	schema, err := compiler.Compile("mandi-schema.json")
	if err != nil {
		return fmt.Errorf("compile mandi schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal mandi data: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("mandi data does not match schema: %w", err)
	}
	return nil
}

// ValidateResponse applies the acceptance contract to a raw model response:
// the body must be JSON with a non-empty "date" and a present "categories"
// key. Per-item checks are intentionally out of scope here; the schema
// validation above covers them as a logged advisory.
func ValidateResponse(raw []byte) (ParsedMandiData, error) {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(raw, &probe); err != nil {
		return ParsedMandiData{}, fmt.Errorf("parse response: %w", err)
	}
	if _, ok := probe["date"]; !ok {
		return ParsedMandiData{}, fmt.Errorf("invalid response format: missing date")
	}
	if _, ok := probe["categories"]; !ok {
		return ParsedMandiData{}, fmt.Errorf("invalid response format: missing categories")
	}

	var out ParsedMandiData
	if err := json.Unmarshal(raw, &out); err != nil {
		return ParsedMandiData{}, fmt.Errorf("unmarshal mandi data: %w", err)
	}
	if out.Date == "" {
		return ParsedMandiData{}, fmt.Errorf("invalid response format: empty date")
	}
	return out, nil
}
