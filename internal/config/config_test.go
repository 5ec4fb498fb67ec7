package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "test-key", cfg.APIKey)
	assert.Equal(t, ProviderGemini, cfg.NER.Provider)
	assert.Equal(t, 30*time.Second, cfg.NER.Timeout)
	assert.Equal(t, "text-embedding-004", cfg.Embedding.Model)
	assert.Equal(t, 4, cfg.Workers)
	assert.False(t, cfg.Log.JSON)
}

func TestLoad_YAMLFile(t *testing.T) {
	path := writeConfig(t, "screener.yaml", `
ner:
  provider: rules
  timeout: 5s
embedding:
  provider: hashing
  dimensions: 256
workers: 8
vocabulary_file: vocab.yaml
log:
  json: true
  debug: true
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ProviderRules, cfg.NER.Provider)
	assert.Equal(t, 5*time.Second, cfg.NER.Timeout)
	assert.Equal(t, ProviderHashing, cfg.Embedding.Provider)
	assert.Equal(t, 256, cfg.Embedding.Dimensions)
	assert.Equal(t, 8, cfg.Workers)
	assert.Equal(t, "vocab.yaml", cfg.VocabularyFile)
	assert.True(t, cfg.Log.JSON)
	assert.True(t, cfg.Log.Debug)
	assert.False(t, cfg.NeedsAPIKey())
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "screener.json", `{"ner": {"provider": "rules"}, "embedding": {"provider": "hashing"}, "workers": 2}`)
	t.Setenv("SCREENER_WORKERS", "6")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 6, cfg.Workers)
}

func TestLoad_MissingAPIKey(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("SCREENER_API_KEY", "")

	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "api key required")
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"unknown ner provider", `{"ner": {"provider": "spacy"}, "embedding": {"provider": "hashing"}}`},
		{"unknown embedding provider", `{"ner": {"provider": "rules"}, "embedding": {"provider": "bert"}}`},
		{"zero workers", `{"ner": {"provider": "rules"}, "embedding": {"provider": "hashing"}, "workers": 0}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, "bad.json", tt.content))
			assert.Error(t, err)
		})
	}
}

func TestLoad_UnreadableFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "broken.json", `{ invalid json }`))
	assert.Error(t, err)
}

func TestLoadVocabularyFile(t *testing.T) {
	path := writeConfig(t, "vocab.yaml", `
skills:
  - terraform
  - elixir
aliases:
  tf: terraform
education_keywords:
  - diploma
experience_keywords:
  - internship
`)

	ext, err := LoadVocabularyFile(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"terraform", "elixir"}, ext.Skills)
	assert.Equal(t, "terraform", ext.Aliases["tf"])
	assert.Equal(t, []string{"diploma"}, ext.EducationKeywords)
	assert.Equal(t, []string{"internship"}, ext.ExperienceKeywords)
}

func TestLoadVocabularyFile_Missing(t *testing.T) {
	_, err := LoadVocabularyFile(filepath.Join(t.TempDir(), "none.yaml"))
	assert.Error(t, err)
}
