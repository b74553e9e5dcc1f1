// Package types provides type definitions for structured data used throughout the resume-intel system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// EnhancementCategory labels the kind of strength an enhancement adds
type EnhancementCategory string

// Enhancement categories are assigned round-robin to the ranked enhancements
const (
	CategoryTechnical  EnhancementCategory = "technical"
	CategoryLeadership EnhancementCategory = "leadership"
	CategoryImpact     EnhancementCategory = "impact"
)

// EnhancementCategories is the round-robin assignment order
var EnhancementCategories = []EnhancementCategory{
	CategoryTechnical,
	CategoryLeadership,
	CategoryImpact,
}

// Enhancement is a bullet point sourced from the master resume that is absent
// from the selected resume and relevant to the job
type Enhancement struct {
	BulletPoint    string              `json:"bullet_point"`
	RelevanceScore float64             `json:"relevance_score"` // 0-1
	SourceResume   string              `json:"source_resume"`   // "master" or "fallback"
	Category       EnhancementCategory `json:"category"`
	Reasoning      string              `json:"reasoning"`
}
