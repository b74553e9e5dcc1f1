package selection

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/jonathan/resume-intel/internal/config"
	"github.com/jonathan/resume-intel/internal/llm"
	"github.com/jonathan/resume-intel/internal/types"
)

// Scores and confidences for the single-candidate and no-match paths
const (
	singleCandidateMaxScore   = 95.0
	singleCandidateConfidence = 0.8
	fallbackMatchScore        = 25.0
	fallbackConfidence        = 0.2
)

// Engine is the hybrid selection engine. A nil LLM client is a valid state:
// multi-candidate cases then score heuristically.
type Engine struct {
	cfg    *config.Config
	client llm.Client
	logger *zap.Logger
}

// NewEngine creates a selection engine with the injected configuration and
// optional LLM client
func NewEngine(cfg *config.Config, client llm.Client, log *zap.Logger) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	return &Engine{cfg: cfg, client: client, logger: log}
}

// SelectResume picks the best-fitting candidate for the job. Stage 1 narrows
// the pool by keyword overlap; Stage 2 resolves ambiguity via concurrent LLM
// scoring. Always returns a result; SelectedResume is nil only when the
// inventory holds no candidates.
func (e *Engine) SelectResume(ctx context.Context, job *types.JobPosting, inv *types.ResumeInventory) *types.SelectionResult {
	if !inv.HasCandidates() {
		return &types.SelectionResult{
			SelectionRationale: "No candidate resumes available in inventory",
		}
	}

	kw := AnalyzeJobKeywords(job)
	jobDomain := JobDomain(kw)
	filtered := FilterCandidateResumes(kw, inv, e.cfg.KeywordMatchThreshold)

	switch len(filtered) {
	case 0:
		return e.selectFallback(inv, jobDomain)
	case 1:
		return e.selectSingle(filtered[0], jobDomain)
	default:
		return e.selectFromBatch(ctx, job, filtered, jobDomain)
	}
}

// selectFallback picks the candidate with the most skills when nothing
// passed the keyword filter
func (e *Engine) selectFallback(inv *types.ResumeInventory, jobDomain types.Domain) *types.SelectionResult {
	best := MostSkilledCandidate(inv)

	e.logger.Debug("no candidate passed keyword filtering, using fallback",
		zap.String("resume", best.Filename))

	return &types.SelectionResult{
		SelectedResume:     best,
		MatchScore:         fallbackMatchScore,
		SelectionRationale: "Fallback selection: no keyword match, chose candidate with broadest skill set",
		KeywordMatches:     0,
		DomainMatch:        best.Domain == jobDomain,
		ConfidenceLevel:    fallbackConfidence,
	}
}

// selectSingle uses the lone surviving candidate directly, skipping the LLM
func (e *Engine) selectSingle(candidate FilteredCandidate, jobDomain types.Domain) *types.SelectionResult {
	score := candidate.KeywordScore * 100
	if score > singleCandidateMaxScore {
		score = singleCandidateMaxScore
	}

	return &types.SelectionResult{
		SelectedResume:     candidate.Resume,
		MatchScore:         score,
		SelectionRationale: "Single candidate passed keyword filtering",
		KeywordMatches:     candidate.SkillMatches,
		DomainMatch:        candidate.Resume.Domain == jobDomain,
		ConfidenceLevel:    singleCandidateConfidence,
	}
}

// selectFromBatch scores the ambiguous candidate set and picks the highest
func (e *Engine) selectFromBatch(ctx context.Context, job *types.JobPosting, filtered []FilteredCandidate, jobDomain types.Domain) *types.SelectionResult {
	timeout := time.Duration(e.cfg.LLMTimeoutSeconds) * time.Second
	scores := BatchScoreCandidates(ctx, e.client, job, filtered, e.cfg.MaxBatchSize, timeout, e.logger)

	winner := 0
	for i := range scores {
		if scores[i].Score > scores[winner].Score {
			winner = i
		}
	}
	best := scores[winner]

	e.logger.Debug("batch scoring complete",
		zap.String("resume", best.Resume.Filename),
		zap.Float64("score", best.Score),
		zap.String("source", string(best.Source)))

	rationale := best.Reason
	if best.Source != types.ScoreSourceLLM {
		rationale = fmt.Sprintf("Heuristic scoring (%s): %s", best.Source, best.Reason)
	}

	return &types.SelectionResult{
		SelectedResume:     best.Resume,
		MatchScore:         best.Score,
		SelectionRationale: rationale,
		KeywordMatches:     filtered[winner].SkillMatches,
		DomainMatch:        best.Resume.Domain == jobDomain,
		ConfidenceLevel:    best.Confidence,
	}
}
