package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-intel/internal/types"
)

func TestAnalyzeJobKeywords_TechnicalJob(t *testing.T) {
	job := &types.JobPosting{
		Title:       "Senior ML Engineer",
		Description: "We need 5+ years with python and tensorflow. You will have developed scalable pipelines.",
	}

	kw := AnalyzeJobKeywords(job)

	assert.Contains(t, kw.TechnicalSkills, "python")
	assert.Contains(t, kw.TechnicalSkills, "tensorflow")
	assert.Contains(t, kw.ExperienceRequirements, "5+ years")
	assert.Contains(t, kw.SeniorityTerms, "senior")
	assert.Contains(t, kw.Responsibilities, "developed")

	// Industry terms are the union of the two skill lists
	assert.Equal(t, kw.TotalKeywordCount(), len(kw.IndustryTerms))
}

func TestAnalyzeJobKeywords_BusinessJob(t *testing.T) {
	job := &types.JobPosting{
		Title:       "Account Executive",
		Description: "Drive sales pipeline and revenue growth using our crm.",
	}

	kw := AnalyzeJobKeywords(job)

	assert.Contains(t, kw.BusinessSkills, "sales")
	assert.Contains(t, kw.BusinessSkills, "revenue")
	assert.Contains(t, kw.BusinessSkills, "crm")
	assert.Equal(t, types.DomainBusiness, JobDomain(kw))
}

func TestJobDomain_TieIsGeneric(t *testing.T) {
	kw := &types.JobKeywords{
		TechnicalSkills: []string{"python"},
		BusinessSkills:  []string{"sales"},
	}
	assert.Equal(t, types.DomainGeneric, JobDomain(kw))

	assert.Equal(t, types.DomainGeneric, JobDomain(&types.JobKeywords{}))
}
