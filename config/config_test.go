package config

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/Eyas/schema-dts/errors"
)

func writeSettings(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDefaultSettings(t *testing.T) {
	s := Default()
	assert.Equal(t, DefaultOntologyURL, s.Ontology)
	assert.Equal(t, "-", s.Out)
	assert.Equal(t, "en", s.Language)
	assert.False(t, s.Verbose)
	require.NoError(t, s.Validate())
}

func TestLoadJSON(t *testing.T) {
	path := writeSettings(t, "settings.json", `{
		"ontology": "ontology.jsonld",
		"out": "schema.d.ts",
		"language": "fr",
		"verbose": true
	}`)

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "ontology.jsonld", s.Ontology)
	assert.Equal(t, "schema.d.ts", s.Out)
	assert.Equal(t, "fr", s.Language)
	assert.True(t, s.Verbose)
}

func TestLoadYAML(t *testing.T) {
	path := writeSettings(t, "settings.yaml", `
ontology: https://schema.org/version/latest/schemaorg-current-https.jsonld
out: schema.d.ts
`)

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultOntologyURL, s.Ontology)
	assert.Equal(t, "schema.d.ts", s.Out)
	// Omitted fields keep their defaults.
	assert.Equal(t, "en", s.Language)
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	path := writeSettings(t, "settings.json", `{"ontology": "x.jsonld", "outfile": "y"}`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "outfile")
}

func TestLoadRejectsWrongTypes(t *testing.T) {
	path := writeSettings(t, "settings.yaml", "verbose: maybe\n")

	_, err := Load(path)
	require.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("/nonexistent/settings.json")
	require.Error(t, err)
	assert.True(t, stderrors.Is(err, errors.ErrConfigNotFound))
	assert.True(t, errors.IsInvalid(err))
}

func TestLoadMalformedJSON(t *testing.T) {
	path := writeSettings(t, "settings.json", `{"ontology":`)

	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, errors.IsInvalid(err))
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name     string
		mutate   func(*Settings)
		sentinel error
	}{
		{
			name:     "missing ontology",
			mutate:   func(s *Settings) { s.Ontology = "" },
			sentinel: errors.ErrMissingConfig,
		},
		{
			name:     "missing out",
			mutate:   func(s *Settings) { s.Out = "" },
			sentinel: errors.ErrMissingConfig,
		},
		{
			name:     "bad language tag",
			mutate:   func(s *Settings) { s.Language = "not a tag!" },
			sentinel: errors.ErrInvalidConfig,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := Default()
			tc.mutate(s)
			err := s.Validate()
			require.Error(t, err)
			assert.True(t, stderrors.Is(err, tc.sentinel))
		})
	}
}

func TestLanguageTag(t *testing.T) {
	s := Default()
	assert.Equal(t, language.English, s.LanguageTag())

	s.Language = ""
	assert.Equal(t, language.Und, s.LanguageTag())

	s.Language = "fr-CA"
	assert.Equal(t, language.MustParse("fr-CA"), s.LanguageTag())
}

func TestIsRemote(t *testing.T) {
	s := Default()
	assert.True(t, s.IsRemote())

	s.Ontology = "ontology.jsonld"
	assert.False(t, s.IsRemote())

	s.Ontology = "http://schema.org/doc.jsonld"
	assert.True(t, s.IsRemote())
}
