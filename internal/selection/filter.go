package selection

import (
	"sort"
	"strings"

	"github.com/jonathan/resume-intel/internal/types"
)

// maxFilteredCandidates caps Stage 1 output so Stage 2 never scores more
// than a handful of resumes per job
const maxFilteredCandidates = 3

// filenameHitWeight discounts filename substring hits relative to skill hits
const filenameHitWeight = 0.5

// FilteredCandidate pairs a candidate with its Stage 1 keyword score
type FilteredCandidate struct {
	Resume       *types.ResumeMetadata
	KeywordScore float64 // (skill hits + 0.5 × filename hits) / total keywords
	SkillMatches int
}

// FilterCandidateResumes scores every candidate against the job keywords,
// retains those at or above threshold sorted by descending score, and caps
// the result at three candidates
func FilterCandidateResumes(kw *types.JobKeywords, inv *types.ResumeInventory, threshold float64) []FilteredCandidate {
	total := kw.TotalKeywordCount()
	if total == 0 {
		return nil
	}

	scored := make([]FilteredCandidate, 0, len(inv.CandidateResumes))
	for i := range inv.CandidateResumes {
		candidate := &inv.CandidateResumes[i]
		skillHits, filenameHits := countHits(kw, candidate)

		score := (float64(skillHits) + filenameHitWeight*float64(filenameHits)) / float64(total)
		scored = append(scored, FilteredCandidate{
			Resume:       candidate,
			KeywordScore: score,
			SkillMatches: skillHits,
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].KeywordScore > scored[j].KeywordScore
	})

	retained := make([]FilteredCandidate, 0, maxFilteredCandidates)
	for _, c := range scored {
		if c.KeywordScore < threshold {
			break
		}
		retained = append(retained, c)
		if len(retained) == maxFilteredCandidates {
			break
		}
	}

	return retained
}

// countHits returns the skills-in-common count and the number of job
// keywords appearing as filename substrings
func countHits(kw *types.JobKeywords, resume *types.ResumeMetadata) (skillHits, filenameHits int) {
	filename := strings.ToLower(resume.Filename)

	for _, keyword := range kw.AllSkills() {
		if resume.HasSkill(keyword) {
			skillHits++
		}
		if strings.Contains(filename, keyword) {
			filenameHits++
		}
	}
	return skillHits, filenameHits
}

// MostSkilledCandidate returns the candidate with the most extracted skills,
// used as the Stage 2 fallback when nothing passes the keyword filter.
// Returns nil for an empty pool.
func MostSkilledCandidate(inv *types.ResumeInventory) *types.ResumeMetadata {
	var best *types.ResumeMetadata
	for i := range inv.CandidateResumes {
		c := &inv.CandidateResumes[i]
		if best == nil || len(c.Skills) > len(best.Skills) {
			best = c
		}
	}
	return best
}
