package llm

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-screener/internal/prompts"
)

// ExtractionSchema defines the structure for LLM-based content extraction.
type ExtractionSchema struct {
	Name        string        // Schema name (e.g., "Entities")
	Description string        // System prompt preamble describing the extraction task
	Fields      []SchemaField // Fields of each output object
	List        bool          // Output is a JSON array of objects rather than one object
	Rules       []string      // Extra instructions appended after the defaults
}

// SchemaField defines a single field in the extraction output.
type SchemaField struct {
	Name        string // JSON field name
	Type        string // Type hint: "string", "[]string"
	Description string // Description for the LLM
	Required    bool
}

// BuildExtractionPrompt constructs the LLM prompt from schema and input text.
func BuildExtractionPrompt(schema ExtractionSchema, inputText string) string {
	var sb strings.Builder

	sb.WriteString(schema.Description)
	sb.WriteString("\n\n")

	if schema.List {
		sb.WriteString("Return ONLY a valid JSON array. Each element must match this exact structure:\n{\n")
	} else {
		sb.WriteString("Return ONLY valid JSON matching this exact structure:\n{\n")
	}
	for i, field := range schema.Fields {
		typeHint := field.Type
		if typeHint == "" {
			typeHint = "string"
		}
		requiredHint := ""
		if field.Required {
			requiredHint = " (required)"
		}
		sb.WriteString(fmt.Sprintf("  %q: %s%s", field.Name, typeHint, requiredHint))
		if field.Description != "" {
			sb.WriteString(fmt.Sprintf(" // %s", field.Description))
		}
		if i < len(schema.Fields)-1 {
			sb.WriteString(",")
		}
		sb.WriteString("\n")
	}
	sb.WriteString("}\n\n")

	sb.WriteString("IMPORTANT:\n")
	sb.WriteString("- Copy text verbatim from the input, do not invent or summarize.\n")
	sb.WriteString("- Return ONLY the JSON, no markdown, no explanation, no code blocks.\n")
	for _, rule := range schema.Rules {
		sb.WriteString("- ")
		sb.WriteString(rule)
		sb.WriteString("\n")
	}
	sb.WriteString("\n")

	sb.WriteString("Input text:\n\"\"\"\n")
	sb.WriteString(inputText)
	sb.WriteString("\n\"\"\"\n")

	return sb.String()
}

// EntityLabels lists the entity labels the recognizer prompt asks for.
var EntityLabels = []string{"organization", "place", "date", "person"}

// EntitySchema returns the extraction schema for named-entity tagging of résumé text.
func EntitySchema() ExtractionSchema {
	quoted := make([]string, len(EntityLabels))
	for i, label := range EntityLabels {
		quoted[i] = fmt.Sprintf("%q", label)
	}
	labelField := prompts.Format(prompts.MustGet("ner.json", "entity-label-field"),
		map[string]string{"Labels": strings.Join(quoted, ", ")})

	return ExtractionSchema{
		Name:        "Entities",
		Description: prompts.MustGet("ner.json", "entity-description"),
		List:        true,
		Fields: []SchemaField{
			{Name: "label", Type: "string", Description: labelField, Required: true},
			{Name: "text", Type: "string", Description: prompts.MustGet("ner.json", "entity-text-field"), Required: true},
		},
		Rules: []string{
			"List entities in the order they appear in the input.",
			"Repeat an entity once per occurrence.",
			"Return [] when there are no entities.",
		},
	}
}
