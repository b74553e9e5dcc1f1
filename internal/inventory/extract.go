package inventory

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/jonathan/resume-intel/internal/keywords"
)

// experiencePatterns match "N years" / "N+ years" style phrases
var experiencePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\d{1,2})\s*\+?\s*years?`),
	regexp.MustCompile(`(\d{1,2})\s*\+?\s*yrs?\b`),
}

// ExtractSkills tests the content (already lowercased) against every
// domain's skill vocabulary and returns the sorted set of matches
func ExtractSkills(content string) []string {
	if content == "" {
		return nil
	}

	seen := make(map[string]struct{})
	for _, vocab := range keywords.DomainSkills {
		for _, skill := range vocab {
			if strings.Contains(content, skill) {
				seen[skill] = struct{}{}
			}
		}
	}

	skills := make([]string, 0, len(seen))
	for s := range seen {
		skills = append(skills, s)
	}
	sort.Strings(skills)
	return skills
}

// ExtractExperienceYears returns the largest years-of-experience figure
// mentioned in the content, or 0 when none is found
func ExtractExperienceYears(content string) int {
	maxYears := 0
	for _, pattern := range experiencePatterns {
		for _, match := range pattern.FindAllStringSubmatch(content, -1) {
			years, err := strconv.Atoi(match[1])
			if err != nil {
				continue
			}
			if years > maxYears {
				maxYears = years
			}
		}
	}
	return maxYears
}
