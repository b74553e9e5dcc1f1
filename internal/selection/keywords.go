// Package selection implements the hybrid selection engine: a keyword
// pre-filter that narrows the candidate pool, followed by concurrent LLM
// batch scoring when the narrowed set is still ambiguous.
package selection

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-intel/internal/keywords"
	"github.com/jonathan/resume-intel/internal/types"
)

// experienceRequirementPattern matches "N years" / "N+ years" phrases in job text
var experienceRequirementPattern = regexp.MustCompile(`\d{1,2}\s*\+?\s*years?`)

// AnalyzeJobKeywords extracts the keyword signals from a job posting by
// membership tests against the domain vocabularies applied to the lowercased
// title and description
func AnalyzeJobKeywords(job *types.JobPosting) *types.JobKeywords {
	text := strings.ToLower(job.Title + " " + job.Description)

	kw := &types.JobKeywords{
		TechnicalSkills: matchVocabulary(text, keywords.DomainSkills[types.DomainTechnology]),
		BusinessSkills:  matchVocabulary(text, keywords.DomainSkills[types.DomainBusiness]),
	}

	// Industry terms are the union of the two skill lists
	kw.IndustryTerms = append(append([]string{}, kw.TechnicalSkills...), kw.BusinessSkills...)

	kw.ExperienceRequirements = experienceRequirementPattern.FindAllString(text, -1)
	kw.SeniorityTerms = matchVocabulary(text, keywords.SeniorityTerms)
	kw.Responsibilities = matchVocabulary(text, keywords.ActionVerbs)

	return kw
}

// JobDomain infers the job's professional domain from the dominant keyword
// group. A tie or an empty extraction is GENERIC.
func JobDomain(kw *types.JobKeywords) types.Domain {
	switch {
	case len(kw.TechnicalSkills) > len(kw.BusinessSkills):
		return types.DomainTechnology
	case len(kw.BusinessSkills) > len(kw.TechnicalSkills):
		return types.DomainBusiness
	default:
		return types.DomainGeneric
	}
}

// matchVocabulary returns the vocabulary entries present in the text
func matchVocabulary(text string, vocab []string) []string {
	var matches []string
	for _, term := range vocab {
		if strings.Contains(text, term) {
			matches = append(matches, term)
		}
	}
	return matches
}
