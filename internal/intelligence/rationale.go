package intelligence

import (
	"fmt"

	"github.com/jonathan/resume-intel/internal/types"
)

// Score buckets for the qualitative rationale label
const (
	excellentScore = 80.0
	goodScore      = 60.0
	moderateScore  = 40.0
)

// GenerateSelectionRationale composes a qualitative sentence from the
// domain-match flag, the keyword-match count, and a score-bucket label
func GenerateSelectionRationale(sel *types.SelectionResult) string {
	if sel.SelectedResume == nil {
		return sel.SelectionRationale
	}

	label := scoreLabel(sel.MatchScore)

	domainPart := "outside its primary domain"
	if sel.DomainMatch {
		domainPart = "within its primary domain"
	}

	return fmt.Sprintf("Selected %s: %s match (%.1f) with %d keyword matches, %s. %s",
		sel.SelectedResume.Filename, label, sel.MatchScore,
		sel.KeywordMatches, domainPart, sel.SelectionRationale)
}

// scoreLabel maps a match score to its qualitative bucket
func scoreLabel(score float64) string {
	switch {
	case score >= excellentScore:
		return "excellent"
	case score >= goodScore:
		return "good"
	case score >= moderateScore:
		return "moderate"
	default:
		return "limited"
	}
}
