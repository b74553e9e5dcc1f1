// Package enhancement implements the content analyzer: it extracts bullet
// points from resume text, finds master-resume content absent from the
// selected resume, and ranks it by relevance to the job.
package enhancement

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-intel/internal/keywords"
)

// minBulletLength filters out headings and fragments
const minBulletLength = 20

// maxFallbackSentences caps the sentence fallback when no bulleted lines exist
const maxFallbackSentences = 20

// bulletLinePattern matches unicode bullets, dash/asterisk bullets, numbered
// and lettered list items at the start of a line
var bulletLinePattern = regexp.MustCompile(`^\s*(?:[•●▪‣◦·*-]|\d{1,2}[.)]|[a-zA-Z][.)])\s+(.+)$`)

var sentenceSplitPattern = regexp.MustCompile(`[.!?]\s+|\n`)

// ExtractBulletPoints returns the bulleted lines of text longer than 20
// characters. When no bulleted lines are found it falls back to sentences
// beginning with an action verb, capped at 20.
func ExtractBulletPoints(text string) []string {
	var bullets []string

	for _, line := range strings.Split(text, "\n") {
		m := bulletLinePattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		content := strings.TrimSpace(m[1])
		if len(content) > minBulletLength {
			bullets = append(bullets, content)
		}
	}

	if len(bullets) > 0 {
		return bullets
	}
	return actionSentences(text)
}

// actionSentences returns sentences starting with a known action verb
func actionSentences(text string) []string {
	var sentences []string

	for _, raw := range sentenceSplitPattern.Split(text, -1) {
		sentence := strings.TrimSpace(raw)
		if len(sentence) <= minBulletLength {
			continue
		}
		if !startsWithActionVerb(sentence) {
			continue
		}
		sentences = append(sentences, sentence)
		if len(sentences) == maxFallbackSentences {
			break
		}
	}
	return sentences
}

// startsWithActionVerb checks the first word against the action-verb list
func startsWithActionVerb(sentence string) bool {
	first := strings.ToLower(strings.SplitN(sentence, " ", 2)[0])
	for _, verb := range keywords.ActionVerbs {
		if first == verb {
			return true
		}
	}
	return false
}
