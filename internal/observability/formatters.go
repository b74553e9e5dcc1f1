// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-intel/internal/types"
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

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintInventory outputs a summary of the scanned resume inventory.
func (p *Printer) PrintInventory(inv *types.ResumeInventory) {
	if inv == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Base path: %s\n", inv.BasePath))
	sb.WriteString(fmt.Sprintf("Total resumes: %d\n", inv.TotalResumes()))

	if inv.MasterResume != nil {
		sb.WriteString(fmt.Sprintf("Master: %s\n", inv.MasterResume.Filename))
	} else {
		sb.WriteString("Master: (none)\n")
	}

	if len(inv.CandidateResumes) > 0 {
		sb.WriteString("\nCandidates:\n")
		count := min(len(inv.CandidateResumes), maxItemsToShow)
		for i := 0; i < count; i++ {
			c := inv.CandidateResumes[i]
			sb.WriteString(fmt.Sprintf("  • %s (%s", c.Filename, c.Domain))
			if c.ExperienceYears > 0 {
				sb.WriteString(fmt.Sprintf(", %dy", c.ExperienceYears))
			}
			sb.WriteString(")\n")
		}
		if len(inv.CandidateResumes) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(inv.CandidateResumes)-maxItemsToShow))
		}
	}

	p.printBox("RESUME INVENTORY", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintResult outputs the selection outcome and enhancements for one job.
func (p *Printer) PrintResult(result *types.JobIntelligenceResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Job:        %s\n", result.JobID))

	if result.SelectedResume != nil {
		sb.WriteString(fmt.Sprintf("Selected:   %s\n", result.SelectedResume.Filename))
	} else {
		sb.WriteString("Selected:   (none)\n")
	}

	sb.WriteString(fmt.Sprintf("Score:      %.1f\n", result.MatchScore))
	sb.WriteString(fmt.Sprintf("Confidence: %.2f\n", result.ConfidenceLevel))
	sb.WriteString(fmt.Sprintf("Elapsed:    %s\n", result.ProcessingTime))

	rationale := result.SelectionRationale
	if len(rationale) > 50 {
		rationale = rationale[:47] + "..."
	}
	sb.WriteString(fmt.Sprintf("Rationale:  %s", rationale))

	p.printBox("JOB INTELLIGENCE RESULT", sb.String())
}

// PrintEnhancements outputs the suggested enhancements with relevance scores.
func (p *Printer) PrintEnhancements(enhancements []types.Enhancement) {
	if len(enhancements) == 0 {
		//nolint:errcheck // writing to stdout; errors are not recoverable
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "NO ENHANCEMENTS SUGGESTED")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Suggested %d enhancements:\n\n", len(enhancements)))

	count := min(len(enhancements), maxItemsToShow)
	for i := 0; i < count; i++ {
		e := enhancements[i]
		text := e.BulletPoint
		if len(text) > 50 {
			text = text[:47] + "..."
		}
		sb.WriteString(fmt.Sprintf("• %s\n", text))
		sb.WriteString(fmt.Sprintf("  [%s %.2f]\n", e.Category, e.RelevanceScore))
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(enhancements) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more", len(enhancements)-maxItemsToShow))
	}

	p.printBox("SUGGESTED ENHANCEMENTS", sb.String())
}
