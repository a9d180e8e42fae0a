package config

import (
	_ "embed"
	"fmt"

	"github.com/xeipuuv/gojsonschema"

	"github.com/Eyas/schema-dts/errors"
)

//go:embed settings.schema.json
var metaSchema []byte

// validateSettings validates a decoded settings document against the
// embedded meta-schema before it is mapped onto the Settings struct. This
// rejects typos (unknown keys, wrong value types) with field-level messages
// rather than silently dropping them.
func validateSettings(doc map[string]any) error {
	schemaLoader := gojsonschema.NewBytesLoader(metaSchema)
	documentLoader := gojsonschema.NewGoLoader(doc)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return errors.WrapInvalid(err, "config", "validateSettings", "run meta-schema validation")
	}

	if !result.Valid() {
		msg := "settings validation failed:\n"
		for _, desc := range result.Errors() {
			msg += fmt.Sprintf("  - %s: %s\n", desc.Field(), desc.Description())
		}
		return errors.WrapInvalid(
			fmt.Errorf("%w: %s", errors.ErrInvalidConfig, msg),
			"config", "validateSettings", "check settings document")
	}

	return nil
}
