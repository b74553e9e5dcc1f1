// Package types provides type definitions for structured data used throughout the resume-intel system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// ScoreSource tags how a candidate's Stage 2 score was produced
type ScoreSource string

const (
	// ScoreSourceLLM means the score came from a parsed LLM response
	ScoreSourceLLM ScoreSource = "llm"
	// ScoreSourceHeuristic means the score was derived from keyword overlap
	// because no LLM provider is configured
	ScoreSourceHeuristic ScoreSource = "heuristic"
	// ScoreSourceFallback means the LLM call for this candidate failed and the
	// keyword heuristic was substituted
	ScoreSourceFallback ScoreSource = "fallback"
)

// CandidateScore is the tagged result of scoring one candidate in Stage 2.
// The Source field replaces exception-driven branching: callers inspect it
// instead of catching provider errors.
type CandidateScore struct {
	Resume     *ResumeMetadata
	Score      float64 // 0-100
	Reason     string
	Source     ScoreSource
	Confidence float64 // 0-1
}

// SelectionResult is the outcome of one selection call for one job
type SelectionResult struct {
	SelectedResume     *ResumeMetadata `json:"selected_resume,omitempty"`
	MatchScore         float64         `json:"match_score"` // 0-100
	SelectionRationale string          `json:"selection_rationale"`
	KeywordMatches     int             `json:"keyword_matches"`
	DomainMatch        bool            `json:"domain_match"`
	ConfidenceLevel    float64         `json:"confidence_level"` // 0-1
}
