package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/require"
)

// TestMain runs before all tests and loads .env if available
func TestMain(m *testing.M) {
	// Try to load .env file - ignore error if it doesn't exist (CI environment)
	_ = godotenv.Load()

	os.Exit(m.Run())
}

// offlineConfig selects the providers that need no API key
const offlineConfig = `ner:
  provider: rules
embedding:
  provider: hashing
  dimensions: 256
workers: 2
`

const testJob = `{
  "id": "job-1",
  "title": "Backend Engineer",
  "required_skills": ["python", "sql", "docker"],
  "min_experience_years": 5,
  "required_education_level": "bachelor",
  "description_text": "Backend engineer building Python services on SQL databases, shipped with Docker."
}`

const strongResume = `Senior engineer skilled in Python, SQL and Docker.
6 years of experience building backend services at Acme Corp.
Master of Science in Computer Science, Stanford University.`

const weakResume = `Java developer.
1 year of experience at Initech.`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// runCLI executes the root command in-process with the offline config
func runCLI(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	dir := t.TempDir()
	cfg := writeFile(t, dir, "config.yaml", offlineConfig)
	return runCLIWithConfig(t, cfg, args...)
}

func runCLIWithConfig(t *testing.T, cfgPath string, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{"--config", cfgPath}, args...))
	err = cmd.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}
