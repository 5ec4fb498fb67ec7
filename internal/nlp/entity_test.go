package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeLabel(t *testing.T) {
	tests := []struct {
		raw      string
		expected Label
		ok       bool
	}{
		{"ORG", LabelOrganization, true},
		{"organization", LabelOrganization, true},
		{"GPE", LabelPlace, true},
		{"LOC", LabelPlace, true},
		{" DATE ", LabelDate, true},
		{"PERSON", LabelPerson, true},
		{"MONEY", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			label, ok := NormalizeLabel(tt.raw)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, label)
		})
	}
}

func TestValidSpans_DropsOutOfRangeAndSorts(t *testing.T) {
	text := "Acme in 2020"
	entities := []Entity{
		{Label: LabelDate, Text: "2020", Start: 8, End: 12},
		{Label: LabelOrganization, Text: "Acme", Start: 0, End: 4},
		{Label: LabelPlace, Text: "bogus", Start: 10, End: 40},
		{Label: LabelPlace, Text: "neg", Start: -1, End: 2},
		{Label: LabelPlace, Text: "empty", Start: 3, End: 3},
	}

	got := ValidSpans(text, entities)
	require.Len(t, got, 2)
	assert.Equal(t, "Acme", got[0].Text)
	assert.Equal(t, "2020", got[1].Text)
}

func TestLocateSpans(t *testing.T) {
	text := "Worked at Acme. Later rejoined ACME for 3 years."
	mentions := []Mention{
		{Label: "organization", Text: "Acme"},
		{Label: "organization", Text: "acme"},
		{Label: "date", Text: "3 years"},
		{Label: "money", Text: "Acme"},
		{Label: "place", Text: "Atlantis"},
		{Label: "date", Text: "  "},
	}

	got := LocateSpans(text, mentions)
	require.Len(t, got, 3)

	assert.Equal(t, Entity{Label: LabelOrganization, Text: "Acme", Start: 10, End: 14}, got[0])
	assert.Equal(t, Entity{Label: LabelOrganization, Text: "ACME", Start: 31, End: 35}, got[1])
	assert.Equal(t, LabelDate, got[2].Label)
	assert.Equal(t, "3 years", text[got[2].Start:got[2].End])
}

func TestLocateSpans_RepeatedMoreThanPresent(t *testing.T) {
	text := "Acme Corp"
	got := LocateSpans(text, []Mention{
		{Label: "ORG", Text: "Acme"},
		{Label: "ORG", Text: "Acme"},
	})
	require.Len(t, got, 2)
	assert.Equal(t, 0, got[0].Start)
	assert.Equal(t, 0, got[1].Start)
}
