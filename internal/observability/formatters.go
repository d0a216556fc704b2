// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/mumbaikadon/RecruiterProfileManager-sub002/internal/matching"
	"github.com/mumbaikadon/RecruiterProfileManager-sub002/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintExpansion outputs the expanded title set for one input title.
func (p *Printer) PrintExpansion(title string, expanded []string) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Input:    %s\n", title))
	sb.WriteString(fmt.Sprintf("Expanded: %d titles\n\n", len(expanded)))

	for _, t := range expanded {
		sb.WriteString(fmt.Sprintf("  • %s\n", t))
	}

	p.printBox("TITLE EXPANSION", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintMatchResult outputs a title-match score with its matched title.
func (p *Printer) PrintMatchResult(jobTitle string, result matching.MatchResult) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Job title: %s\n", jobTitle))
	sb.WriteString(fmt.Sprintf("Score:     %.2f\n", result.Score))
	if result.Matched {
		sb.WriteString(fmt.Sprintf("Matched:   %s", result.MatchedTitle))
	} else {
		sb.WriteString("Matched:   (no overlap)")
	}

	p.printBox("TITLE MATCH", sb.String())
}

// PrintDiscrepancyReport outputs a human-readable summary of a history diff.
func (p *Printer) PrintDiscrepancyReport(report types.DiscrepancyReport) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Score:       %d\n", report.Score))
	sb.WriteString(fmt.Sprintf("Significant: %v\n", report.Significant))

	writeDiffSection(&sb, "Added companies", report.AddedCompanies)
	writeDiffSection(&sb, "Removed companies", report.RemovedCompanies)
	writeDiffSection(&sb, "Added titles", report.AddedTitles)
	writeDiffSection(&sb, "Removed titles", report.RemovedTitles)
	writeDiffSection(&sb, "Added dates", report.AddedDates)
	writeDiffSection(&sb, "Removed dates", report.RemovedDates)

	if !report.Changed() {
		sb.WriteString("\nNo changes detected")
	}

	p.printBox("EMPLOYMENT HISTORY DIFF", strings.TrimSuffix(sb.String(), "\n"))
}

func writeDiffSection(sb *strings.Builder, label string, items []string) {
	if len(items) == 0 {
		return
	}
	sb.WriteString(fmt.Sprintf("\n%s:\n", label))
	count := min(len(items), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", items[i]))
	}
	if len(items) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(items)-maxItemsToShow))
	}
}

// PrintSimilarityResult outputs the matches found by a pool scan.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintSimilarityResult(result types.SimilarityResult) {
	if result.Empty() {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4,
			fmt.Sprintf("NO SIMILAR CANDIDATES (%d checked)", result.TotalCandidatesChecked))
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Candidates checked: %d\n", result.TotalCandidatesChecked))

	if len(result.IdenticalChronology) > 0 {
		sb.WriteString("\nIdentical chronology:\n")
		count := min(len(result.IdenticalChronology), maxItemsToShow)
		for i := 0; i < count; i++ {
			m := result.IdenticalChronology[i]
			sb.WriteString(fmt.Sprintf("  ⚠ %s (%s)\n", m.CandidateName, m.Severity))
		}
		if len(result.IdenticalChronology) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(result.IdenticalChronology)-maxItemsToShow))
		}
	}

	if len(result.HighSimilarity) > 0 {
		sb.WriteString("\nHigh similarity:\n")
		count := min(len(result.HighSimilarity), maxItemsToShow)
		for i := 0; i < count; i++ {
			m := result.HighSimilarity[i]
			sb.WriteString(fmt.Sprintf("  ⚠ %s (%d%%, %s)\n", m.CandidateName, m.SimilarityScore, m.Severity))
		}
		if len(result.HighSimilarity) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(result.HighSimilarity)-maxItemsToShow))
		}
	}

	p.printBox("SIMILARITY SCAN", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintValidation outputs a validation record with its state and reason.
func (p *Printer) PrintValidation(v *types.Validation) {
	if v == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Validation: %s\n", v.ID))
	sb.WriteString(fmt.Sprintf("Candidate:  %s\n", v.CandidateID))
	if v.JobID != "" {
		sb.WriteString(fmt.Sprintf("Job:        %s\n", v.JobID))
	}
	sb.WriteString(fmt.Sprintf("State:      %s\n", v.State))
	if v.Reason != "" {
		sb.WriteString(fmt.Sprintf("Reason:     %s\n", v.Reason))
	}
	if v.DecidedBy != "" {
		sb.WriteString(fmt.Sprintf("Decided by: %s\n", v.DecidedBy))
	}

	p.printBox("VALIDATION", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRoles outputs the roles implied by a set of skills.
func (p *Printer) PrintRoles(skills, roles []string) {
	var sb strings.Builder
	joined := strings.Join(skills, ", ")
	if len(joined) > 45 {
		joined = joined[:42] + "..."
	}
	sb.WriteString(fmt.Sprintf("Skills: %s\n\n", joined))

	if len(roles) == 0 {
		sb.WriteString("No roles implied")
	}
	for _, role := range roles {
		sb.WriteString(fmt.Sprintf("  • %s\n", role))
	}

	p.printBox("ROLES FROM SKILLS", strings.TrimSuffix(sb.String(), "\n"))
}
