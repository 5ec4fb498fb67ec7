package nlp

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entityTexts(entities []Entity, label Label) []string {
	var out []string
	for _, e := range entities {
		if e.Label == label {
			out = append(out, e.Text)
		}
	}
	return out
}

func TestRuleRecognizer_Organizations(t *testing.T) {
	text := "Worked at Globex for a while. Earned a B.S. from the University of Texas. Engineer, Initech Inc."

	got, err := NewRuleRecognizer().Analyze(context.Background(), text)
	require.NoError(t, err)

	assert.Equal(t, []string{"Globex", "University of Texas", "Initech Inc"}, entityTexts(got, LabelOrganization))
	for _, e := range got {
		assert.Equal(t, e.Text, text[e.Start:e.End])
	}
}

func TestRuleRecognizer_Dates(t *testing.T) {
	text := "5+ years of experience. Acme, March 2019 - 2021. Contractor 2015 to present. 6 months as intern."

	got, err := NewRuleRecognizer().Analyze(context.Background(), text)
	require.NoError(t, err)

	assert.Equal(t, []string{"5+ years", "March 2019", "2015 to present", "6 months"}, entityTexts(got, LabelDate))
}

func TestRuleRecognizer_NoEntities(t *testing.T) {
	got, err := NewRuleRecognizer().Analyze(context.Background(), "skilled in python and sql")
	require.NoError(t, err)
	assert.Empty(t, got)
}
