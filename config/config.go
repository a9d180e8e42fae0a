// Package config holds the generator settings: where the ontology comes
// from, where the declarations go, and the knobs the core consumes (the
// preferred comment language and the missing-comment verbosity flag).
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/Eyas/schema-dts/errors"
)

// DefaultOntologyURL is the canonical schema.org release document.
const DefaultOntologyURL = "https://schema.org/version/latest/schemaorg-current-https.jsonld"

// Settings represents the complete generator configuration.
type Settings struct {
	// Ontology is the source document: an http(s) URL or a local file
	// path.
	Ontology string `json:"ontology" yaml:"ontology"`

	// Out is the output file for the generated declarations; "-" writes
	// to stdout.
	Out string `json:"out" yaml:"out"`

	// Language is the BCP 47 tag used to select among language-tagged
	// comment variants and to collate emitted names.
	Language string `json:"language" yaml:"language"`

	// Verbose enables data-quality diagnostics for missing comments.
	Verbose bool `json:"verbose" yaml:"verbose"`
}

// Default returns the settings used when no config file is given.
func Default() *Settings {
	return &Settings{
		Ontology: DefaultOntologyURL,
		Out:      "-",
		Language: "en",
	}
}

// Load reads settings from a JSON or YAML file (by extension), validates
// them against the embedded meta-schema, and applies defaults for omitted
// fields.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapInvalid(
			fmt.Errorf("%w: %s", errors.ErrConfigNotFound, path),
			"config", "Load", "read settings file")
	}

	var raw map[string]any
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, errors.WrapInvalid(err, "config", "Load", "parse YAML settings")
		}
	default:
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, errors.WrapInvalid(err, "config", "Load", "parse JSON settings")
		}
	}

	if err := validateSettings(raw); err != nil {
		return nil, err
	}

	// Round-trip through JSON so YAML and JSON files share one decode
	// path.
	normalized, err := json.Marshal(raw)
	if err != nil {
		return nil, errors.WrapInvalid(err, "config", "Load", "normalize settings")
	}
	s := Default()
	if err := json.Unmarshal(normalized, s); err != nil {
		return nil, errors.WrapInvalid(err, "config", "Load", "decode settings")
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate checks settings consistency.
func (s *Settings) Validate() error {
	if s.Ontology == "" {
		return errors.WrapInvalid(
			fmt.Errorf("%w: ontology source", errors.ErrMissingConfig),
			"config", "Validate", "check ontology source")
	}
	if s.Out == "" {
		return errors.WrapInvalid(
			fmt.Errorf("%w: output path", errors.ErrMissingConfig),
			"config", "Validate", "check output path")
	}
	if s.Language != "" {
		if _, err := language.Parse(s.Language); err != nil {
			return errors.WrapInvalid(
				fmt.Errorf("%w: language %q: %v", errors.ErrInvalidConfig, s.Language, err),
				"config", "Validate", "parse language tag")
		}
	}
	return nil
}

// LanguageTag returns the parsed preferred-language tag, or und when unset.
func (s *Settings) LanguageTag() language.Tag {
	if s.Language == "" {
		return language.Und
	}
	tag, err := language.Parse(s.Language)
	if err != nil {
		return language.Und
	}
	return tag
}

// IsRemote reports whether the ontology source is an http(s) URL rather
// than a local file.
func (s *Settings) IsRemote() bool {
	return strings.HasPrefix(s.Ontology, "http://") || strings.HasPrefix(s.Ontology, "https://")
}
