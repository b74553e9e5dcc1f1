package selection

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-intel/internal/llm"
	"github.com/jonathan/resume-intel/internal/prompts"
	"github.com/jonathan/resume-intel/internal/types"
)

var (
	scorePattern  = regexp.MustCompile(`(?i)SCORE:\s*(\d{1,3})`)
	reasonPattern = regexp.MustCompile(`(?i)REASON:\s*(.+)`)
)

const (
	// defaultParsedScore is substituted when an LLM response cannot be parsed
	defaultParsedScore = 50.0
	// heuristicScoreFactor converts a keyword score in [0,1] to the 0-100 scale
	// for the fallback path
	heuristicScoreFactor = 80.0
	// heuristicConfidence is the confidence assigned to heuristic scores
	heuristicConfidence = 0.6
)

// BatchScoreCandidates scores every filtered candidate concurrently, bounded
// by maxBatch workers with a per-call timeout. A failing or timed-out call
// degrades that single candidate to a heuristic score; siblings are never
// cancelled. With a nil client every candidate is scored heuristically.
func BatchScoreCandidates(
	ctx context.Context,
	client llm.Client,
	job *types.JobPosting,
	candidates []FilteredCandidate,
	maxBatch int,
	timeout time.Duration,
	log *zap.Logger,
) []types.CandidateScore {
	if log == nil {
		log = zap.NewNop()
	}

	scores := make([]types.CandidateScore, len(candidates))

	if client == nil {
		for i, c := range candidates {
			scores[i] = heuristicScore(c, types.ScoreSourceHeuristic)
		}
		return scores
	}

	if maxBatch <= 0 {
		maxBatch = 1
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(maxBatch)

	for i := range candidates {
		g.Go(func() error {
			scores[i] = scoreOne(gCtx, client, job, candidates[i], timeout, log)
			return nil
		})
	}
	// Workers never return errors; failures degrade individual candidates
	_ = g.Wait()

	return scores
}

// scoreOne scores a single candidate via the LLM, substituting the keyword
// heuristic when the call or the parse fails
func scoreOne(
	ctx context.Context,
	client llm.Client,
	job *types.JobPosting,
	candidate FilteredCandidate,
	timeout time.Duration,
	log *zap.Logger,
) types.CandidateScore {
	callCtx := ctx
	if timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	prompt := buildScoringPrompt(job, candidate.Resume)
	response, err := client.GenerateContent(callCtx, prompt, llm.TierLite)
	if err != nil {
		log.Warn("LLM scoring failed, using heuristic fallback",
			zap.String("resume", candidate.Resume.Filename),
			zap.Error(err))
		return heuristicScore(candidate, types.ScoreSourceFallback)
	}

	score, reason := ParseScoreResponse(response)
	return types.CandidateScore{
		Resume:     candidate.Resume,
		Score:      score,
		Reason:     reason,
		Source:     types.ScoreSourceLLM,
		Confidence: score / 100.0,
	}
}

// heuristicScore converts the Stage 1 keyword score to a Stage 2 score.
// The keyword score can exceed 1 via filename bonuses, so the result is
// clamped to the 0-100 scale.
func heuristicScore(candidate FilteredCandidate, source types.ScoreSource) types.CandidateScore {
	score := candidate.KeywordScore * heuristicScoreFactor
	if score > 100 {
		score = 100
	}
	return types.CandidateScore{
		Resume:     candidate.Resume,
		Score:      score,
		Reason:     fmt.Sprintf("Keyword overlap score %.2f (heuristic)", candidate.KeywordScore),
		Source:     source,
		Confidence: heuristicConfidence,
	}
}

// buildScoringPrompt renders the scoring prompt for one candidate
func buildScoringPrompt(job *types.JobPosting, resume *types.ResumeMetadata) string {
	template := prompts.MustGet("scoring.json", "score-candidate-resume")
	return prompts.Format(template, map[string]string{
		"JobTitle":        job.Title,
		"JobCompany":      job.Company,
		"JobDescription":  job.Description,
		"ResumeFilename":  resume.Filename,
		"ResumeDomain":    string(resume.Domain),
		"ResumeSkills":    strings.Join(resume.Skills, ", "),
		"ExperienceYears": strconv.Itoa(resume.ExperienceYears),
	})
}

// ParseScoreResponse extracts the SCORE and REASON lines from an LLM
// response. An unparseable response yields the default score 50 with a
// generic reason rather than an error.
func ParseScoreResponse(response string) (float64, string) {
	score := defaultParsedScore
	reason := "Score unavailable, default applied"

	if m := scorePattern.FindStringSubmatch(response); m != nil {
		if v, err := strconv.Atoi(m[1]); err == nil {
			score = float64(v)
			if score > 100 {
				score = 100
			}
		}
	}
	if m := reasonPattern.FindStringSubmatch(response); m != nil {
		reason = strings.TrimSpace(m[1])
	}

	return score, reason
}
