package snapshot

import (
	_ "embed"
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

// schemaJSON is the export format contract, embedded so validation
// works wherever the binary runs.
//
//go:embed schema.json
var schemaJSON []byte

// Validate checks export JSON against the embedded schema: nodes must
// carry a non-empty id, a known kind, and numeric coordinates.
func Validate(data []byte) error {
	if len(data) == 0 {
		return ErrEmptyInput
	}

	schemaLoader := gojsonschema.NewBytesLoader(schemaJSON)
	documentLoader := gojsonschema.NewBytesLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("schema validation error: %w", err)
	}

	if !result.Valid() {
		// Collect all validation errors
		var errMsg string
		for i, desc := range result.Errors() {
			if i > 0 {
				errMsg += "; "
			}
			errMsg += fmt.Sprintf("%s: %s", desc.Field(), desc.Description())
		}
		return fmt.Errorf("schema validation failed: %s", errMsg)
	}

	return nil
}
