package enhancement

import (
	"regexp"
	"strings"
)

// Impact scoring rewards quantified outcomes and leadership signals.
// Each matched signal adds its weight; the total is capped at 1.0.
const (
	percentWeight    = 0.35
	dollarWeight     = 0.35
	multiplierWeight = 0.3
	verbWeight       = 0.2
)

var (
	percentPattern    = regexp.MustCompile(`\d+(?:\.\d+)?\s*%`)
	dollarPattern     = regexp.MustCompile(`\$\s*\d`)
	multiplierPattern = regexp.MustCompile(`\b\d+(?:\.\d+)?x\b`)
)

// impactVerbs signal outcomes or leadership in a bullet
var impactVerbs = []string{
	"increased", "decreased", "reduced", "improved", "grew", "saved",
	"accelerated", "led", "managed", "mentored", "drove", "delivered",
	"launched", "scaled", "spearheaded", "owned",
}

// ImpactScore is a regex-based heuristic in [0,1] rewarding percentages,
// dollar amounts, multipliers, and impact/leadership verbs
func ImpactScore(bullet string) float64 {
	lower := strings.ToLower(bullet)
	score := 0.0

	if percentPattern.MatchString(lower) {
		score += percentWeight
	}
	if dollarPattern.MatchString(lower) {
		score += dollarWeight
	}
	if multiplierPattern.MatchString(lower) {
		score += multiplierWeight
	}
	for _, verb := range impactVerbs {
		if strings.Contains(lower, verb) {
			score += verbWeight
			break
		}
	}

	if score > 1.0 {
		return 1.0
	}
	return score
}
