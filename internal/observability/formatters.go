// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jonathan/resume-screener/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

var (
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1).
			Width(boxWidth - 2)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10")).
			Bold(true)

	failedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a bordered box with a title and content
//
//nolint:errcheck // writing to stderr; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = truncate(line, boxWidth-6)
	}
	body := titleStyle.Render(title) + "\n\n" + strings.Join(lines, "\n")
	fmt.Fprintln(p.out, boxStyle.Render(body))
}

// PrintCandidateProfile outputs a human-readable summary of an extracted profile.
func (p *Printer) PrintCandidateProfile(id string, profile *types.CandidateProfile) {
	if profile == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s %s\n\n", labelStyle.Render("Candidate:"), id))

	sb.WriteString(labelStyle.Render(fmt.Sprintf("Skills (%d):", len(profile.Skills))) + "\n")
	if len(profile.Skills) == 0 {
		sb.WriteString("  none detected\n")
	} else {
		sb.WriteString("  " + truncate(strings.Join(profile.Skills, ", "), boxWidth-8) + "\n")
	}
	sb.WriteString("\n")

	if len(profile.Education) > 0 {
		sb.WriteString(labelStyle.Render("Education:") + "\n")
		count := min(len(profile.Education), maxItemsToShow)
		for i := 0; i < count; i++ {
			entry := profile.Education[i]
			sb.WriteString(fmt.Sprintf("  • %s", entry.DegreeLevel))
			if entry.Institution != "" {
				sb.WriteString(fmt.Sprintf(" (%s)", entry.Institution))
			}
			sb.WriteString("\n")
		}
		if len(profile.Education) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(profile.Education)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if len(profile.Experience) > 0 {
		sb.WriteString(labelStyle.Render("Experience:") + "\n")
		count := min(len(profile.Experience), maxItemsToShow)
		for i := 0; i < count; i++ {
			entry := profile.Experience[i]
			company := entry.Company
			if company == "" {
				company = "unknown company"
			}
			if entry.Years != nil {
				sb.WriteString(fmt.Sprintf("  • %s, %.1f yrs\n", company, *entry.Years))
			} else {
				sb.WriteString(fmt.Sprintf("  • %s\n", company))
			}
		}
		if len(profile.Experience) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(profile.Experience)-maxItemsToShow))
		}
	}

	p.printBox("EXTRACTED PROFILE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRankedResults outputs the top ranked candidates with scores and matched skills.
func (p *Printer) PrintRankedResults(results *types.RankedResults) {
	if results == nil || len(results.Ranked) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Job: %s\nCandidates ranked: %d\n\n", results.JobID, len(results.Ranked)))

	count := min(len(results.Ranked), maxItemsToShow)
	for i := 0; i < count; i++ {
		r := results.Ranked[i]
		name := r.CandidateID
		if r.DisplayName != "" {
			name = fmt.Sprintf("%s (%s)", r.DisplayName, r.CandidateID)
		}
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, name))

		if r.Failed || r.Score == nil {
			sb.WriteString("    " + failedStyle.Render("FAILED: "+r.Error) + "\n")
		} else {
			sb.WriteString(fmt.Sprintf("    Score: %.2f", *r.Score))
			if r.Breakdown != nil {
				b := r.Breakdown
				sb.WriteString(fmt.Sprintf(" (S %.2f E %.2f Ed %.2f Sem %.2f)",
					b.SkillMatch, b.ExperienceMatch, b.EducationMatch, b.SemanticMatch))
			}
			sb.WriteString("\n")
			if len(r.MatchedSkills) > 0 {
				sb.WriteString(fmt.Sprintf("    Skills: %s\n", truncate(strings.Join(r.MatchedSkills, ", "), 40)))
			}
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(results.Ranked) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more candidates", len(results.Ranked)-maxItemsToShow))
	}

	p.printBox("TOP RANKED CANDIDATES", strings.TrimSuffix(sb.String(), "\n"))
}

func truncate(s string, width int) string {
	if lipgloss.Width(s) <= width {
		return s
	}
	runes := []rune(s)
	if len(runes) <= width-3 {
		return s
	}
	return string(runes[:width-3]) + "..."
}
