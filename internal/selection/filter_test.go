package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-intel/internal/types"
)

func candidate(filename string, domain types.Domain, skills ...string) types.ResumeMetadata {
	return types.ResumeMetadata{
		FilePath:   "/resumes/" + filename,
		Filename:   filename,
		ResumeType: types.ResumeTypeCandidate,
		Domain:     domain,
		Skills:     skills,
	}
}

func TestFilterCandidateResumes_ScenarioB(t *testing.T) {
	// Job mentioning python and tensorflow keeps only the AI candidate
	job := &types.JobPosting{
		Title:       "ML Engineer",
		Description: "Looking for python and tensorflow experience",
	}
	kw := AnalyzeJobKeywords(job)

	inv := &types.ResumeInventory{
		CandidateResumes: []types.ResumeMetadata{
			candidate("ai_resume.txt", types.DomainTechnology, "python", "tensorflow"),
			candidate("sales_resume.txt", types.DomainBusiness, "sales", "revenue"),
		},
	}

	filtered := FilterCandidateResumes(kw, inv, 0.3)
	require.Len(t, filtered, 1)
	assert.Equal(t, "ai_resume.txt", filtered[0].Resume.Filename)
	assert.Equal(t, 2, filtered[0].SkillMatches)
}

func TestFilterCandidateResumes_SortedDescendingAndCapped(t *testing.T) {
	kw := &types.JobKeywords{
		TechnicalSkills: []string{"python", "sql"},
	}
	inv := &types.ResumeInventory{
		CandidateResumes: []types.ResumeMetadata{
			candidate("one.txt", types.DomainTechnology, "python"),
			candidate("both.txt", types.DomainTechnology, "python", "sql"),
			candidate("also_both.txt", types.DomainTechnology, "python", "sql"),
			candidate("python_sql_expert.txt", types.DomainTechnology, "python", "sql"),
		},
	}

	filtered := FilterCandidateResumes(kw, inv, 0.3)
	require.Len(t, filtered, 3)

	// Filename substring hits break the tie upward
	assert.Equal(t, "python_sql_expert.txt", filtered[0].Resume.Filename)
	for i := 1; i < len(filtered); i++ {
		assert.GreaterOrEqual(t, filtered[i-1].KeywordScore, filtered[i].KeywordScore)
	}
}

func TestFilterCandidateResumes_ThresholdExcludes(t *testing.T) {
	kw := &types.JobKeywords{
		TechnicalSkills: []string{"python", "sql", "aws", "docker"},
	}
	inv := &types.ResumeInventory{
		CandidateResumes: []types.ResumeMetadata{
			candidate("weak.txt", types.DomainTechnology, "python"), // 1/4 = 0.25 < 0.3
		},
	}

	assert.Empty(t, FilterCandidateResumes(kw, inv, 0.3))
}

func TestFilterCandidateResumes_NoKeywords(t *testing.T) {
	inv := &types.ResumeInventory{
		CandidateResumes: []types.ResumeMetadata{
			candidate("any.txt", types.DomainGeneric, "python"),
		},
	}

	assert.Empty(t, FilterCandidateResumes(&types.JobKeywords{}, inv, 0.3))
}

func TestMostSkilledCandidate(t *testing.T) {
	inv := &types.ResumeInventory{
		CandidateResumes: []types.ResumeMetadata{
			candidate("three.txt", types.DomainGeneric, "a", "b", "c"),
			candidate("five.txt", types.DomainGeneric, "a", "b", "c", "d", "e"),
		},
	}

	best := MostSkilledCandidate(inv)
	require.NotNil(t, best)
	assert.Equal(t, "five.txt", best.Filename)

	assert.Nil(t, MostSkilledCandidate(&types.ResumeInventory{}))
}
