package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCommand(t *testing.T) {
	stdout, _, err := runCLI(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "screener dev\n", stdout)
}

func TestRootCommand_Subcommands(t *testing.T) {
	cmd := newRootCmd()
	names := make([]string, 0, len(cmd.Commands()))
	for _, c := range cmd.Commands() {
		names = append(names, c.Name())
	}
	assert.Subset(t, names, []string{"extract", "rank", "screen", "version"})

	for _, flag := range []string{"config", "debug", "json", "verbose"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(flag), flag)
	}
}

func TestNewApp_InvalidConfig(t *testing.T) {
	dir := t.TempDir()
	cfg := writeFile(t, dir, "config.yaml", "ner:\n  provider: spacy\nembedding:\n  provider: hashing\n")
	resume := writeFile(t, dir, "r.txt", weakResume)

	_, _, err := runCLIWithConfig(t, cfg, "extract", resume)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config error")
}

func TestNewApp_GeminiRequiresAPIKey(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("SCREENER_API_KEY", "")

	dir := t.TempDir()
	cfg := writeFile(t, dir, "config.yaml", "ner:\n  provider: gemini\nembedding:\n  provider: hashing\n")
	resume := writeFile(t, dir, "r.txt", weakResume)

	_, _, err := runCLIWithConfig(t, cfg, "extract", resume)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "api key required")
}

func TestNewApp_VocabularyFile(t *testing.T) {
	dir := t.TempDir()
	vocab := writeFile(t, dir, "vocab.yaml", "skills:\n  - terraform\n")
	cfg := writeFile(t, dir, "config.yaml", offlineConfig+"vocabulary_file: "+vocab+"\n")
	resume := writeFile(t, dir, "r.txt", "Platform engineer using Terraform and Go.")

	stdout, _, err := runCLIWithConfig(t, cfg, "extract", resume)
	require.NoError(t, err)
	assert.Contains(t, stdout, `"terraform"`)
	assert.Contains(t, stdout, `"go"`)
}
