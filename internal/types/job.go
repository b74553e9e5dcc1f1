// Package types provides type definitions for structured data used throughout the resume-intel system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// JobPosting represents a single job posting received from the upstream
// aggregation layer. Only ID, Title, and Description participate in matching;
// the rest is carried through to the exported result.
type JobPosting struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location,omitempty"`
	Description string `json:"description"`
	Salary      string `json:"salary,omitempty"`
	URL         string `json:"url,omitempty"`
}

// JobKeywords holds the keyword signals extracted from one job posting.
// Ephemeral: derived per job and discarded after selection.
type JobKeywords struct {
	TechnicalSkills        []string `json:"technical_skills"`
	BusinessSkills         []string `json:"business_skills"`
	IndustryTerms          []string `json:"industry_terms"`
	ExperienceRequirements []string `json:"experience_requirements"`
	SeniorityTerms         []string `json:"seniority_terms,omitempty"`
	Responsibilities       []string `json:"responsibilities"`
}

// TotalKeywordCount returns the number of skill keywords used as the
// denominator when scoring candidate overlap
func (k *JobKeywords) TotalKeywordCount() int {
	return len(k.TechnicalSkills) + len(k.BusinessSkills)
}

// AllSkills returns technical and business skills as a single list
func (k *JobKeywords) AllSkills() []string {
	all := make([]string, 0, k.TotalKeywordCount())
	all = append(all, k.TechnicalSkills...)
	all = append(all, k.BusinessSkills...)
	return all
}
