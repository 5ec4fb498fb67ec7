package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/jonathan/resume-screener/internal/schemas"
)

// readInput reads a JSON input file, checks it against schema and decodes it into v.
func readInput(path string, schema schemas.Schema, v any) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s file %s: %w", schema, path, err)
	}
	if err := schemas.Validate(schema, content); err != nil {
		return fmt.Errorf("invalid %s file %s: %w", schema, path, err)
	}
	if err := json.Unmarshal(content, v); err != nil {
		return fmt.Errorf("failed to unmarshal %s JSON: %w", schema, err)
	}
	return nil
}

// writeOutput marshals v, checks it against schema and writes it to path, or to stdout
// when path is empty. Output validation failures are logged, not returned.
func writeOutput(log *zap.Logger, stdout io.Writer, path string, schema schemas.Schema, v any) error {
	jsonOutput, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal %s to JSON: %w", schema, err)
	}

	if err := schemas.Validate(schema, jsonOutput); err != nil {
		log.Warn("output validation failed", zap.String("schema", string(schema)), zap.Error(err))
	}

	if path == "" {
		_, err := fmt.Fprintln(stdout, string(jsonOutput))
		return err
	}

	// Ensure output directory exists
	outputDir := filepath.Dir(path)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
		}
	}
	if err := os.WriteFile(path, append(jsonOutput, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", path, err)
	}
	log.Info("wrote output", zap.String("path", path))
	return nil
}
