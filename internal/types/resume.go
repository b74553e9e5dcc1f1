// Package types provides type definitions for structured data used throughout the resume-intel system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "time"

// ResumeType distinguishes the comprehensive master resume from selectable candidates
type ResumeType string

const (
	// ResumeTypeMaster is the single comprehensive resume used only as an enhancement source
	ResumeTypeMaster ResumeType = "master"
	// ResumeTypeCandidate is a domain-specialized resume eligible for direct selection
	ResumeTypeCandidate ResumeType = "candidate"
)

// Domain classifies the professional area a resume targets
type Domain string

// Domain constants define the supported professional domains
const (
	DomainTechnology Domain = "technology"
	DomainBusiness   Domain = "business"
	DomainCreative   Domain = "creative"
	DomainGeneric    Domain = "generic"
)

// ResumeMetadata describes a single resume file discovered during a folder scan.
// Instances are immutable once the scan that produced them completes.
type ResumeMetadata struct {
	FilePath        string    `json:"file_path"`
	Filename        string    `json:"filename"`
	ResumeType      ResumeType `json:"resume_type"`
	Domain          Domain    `json:"domain"`
	Skills          []string  `json:"skills"`
	ExperienceYears int       `json:"experience_years"`
	LastModified    time.Time `json:"last_modified"`
	FileSize        int64     `json:"file_size"`
}

// HasSkill reports whether the resume lists the given skill (exact, lowercase match)
func (r *ResumeMetadata) HasSkill(skill string) bool {
	for _, s := range r.Skills {
		if s == skill {
			return true
		}
	}
	return false
}

// ResumeInventory is the result of one folder scan: at most one master resume
// plus the candidate pool. The master is never a member of CandidateResumes.
type ResumeInventory struct {
	MasterResume     *ResumeMetadata  `json:"master_resume,omitempty"`
	CandidateResumes []ResumeMetadata `json:"candidate_resumes"`
	BasePath         string           `json:"base_path"`
}

// TotalResumes returns the candidate count plus one if a master is present
func (inv *ResumeInventory) TotalResumes() int {
	total := len(inv.CandidateResumes)
	if inv.MasterResume != nil {
		total++
	}
	return total
}

// HasCandidates reports whether any candidate resume was discovered
func (inv *ResumeInventory) HasCandidates() bool {
	return len(inv.CandidateResumes) > 0
}
