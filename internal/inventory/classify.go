package inventory

import (
	"strings"

	"github.com/jonathan/resume-intel/internal/keywords"
	"github.com/jonathan/resume-intel/internal/types"
)

// folderHitWeight and skillHitWeight weight the two classification signals:
// a folder-name hit counts double a skill hit.
const (
	folderHitWeight = 2.0
	skillHitWeight  = 1.0
)

// ClassifyDomain scores each professional domain from folder-name and skill
// signals, normalizes across domains, and returns the top domain only when
// its normalized share reaches confidenceThreshold; otherwise GENERIC.
func ClassifyDomain(folders []string, skills []string, confidenceThreshold float64) types.Domain {
	scores := make(map[types.Domain]float64)
	total := 0.0

	for _, domain := range keywords.DomainOrder {
		score := folderHitWeight*float64(countFolderHits(folders, domain)) +
			skillHitWeight*float64(countSkillHits(skills, domain))
		scores[domain] = score
		total += score
	}

	if total == 0 {
		return types.DomainGeneric
	}

	// Fixed iteration order: a tie goes to the earliest domain in DomainOrder
	best := types.DomainGeneric
	bestScore := 0.0
	for _, domain := range keywords.DomainOrder {
		if scores[domain] > bestScore {
			best = domain
			bestScore = scores[domain]
		}
	}

	if bestScore/total < confidenceThreshold {
		return types.DomainGeneric
	}
	return best
}

// countFolderHits counts domain folder-signal keywords appearing in the
// ancestor folder names
func countFolderHits(folders []string, domain types.Domain) int {
	hits := 0
	for _, folder := range folders {
		lower := strings.ToLower(folder)
		for _, signal := range keywords.FolderSignals[domain] {
			if strings.Contains(lower, signal) {
				hits++
			}
		}
	}
	return hits
}

// countSkillHits counts extracted skills belonging to the domain vocabulary
func countSkillHits(skills []string, domain types.Domain) int {
	vocab := make(map[string]struct{}, len(keywords.DomainSkills[domain]))
	for _, s := range keywords.DomainSkills[domain] {
		vocab[s] = struct{}{}
	}

	hits := 0
	for _, s := range skills {
		if _, ok := vocab[s]; ok {
			hits++
		}
	}
	return hits
}
