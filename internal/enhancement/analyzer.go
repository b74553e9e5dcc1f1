package enhancement

import (
	"context"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/jonathan/resume-intel/internal/config"
	"github.com/jonathan/resume-intel/internal/embedding"
	"github.com/jonathan/resume-intel/internal/types"
)

// Relevance blends semantic similarity to the job with the impact heuristic
const (
	similarityWeight = 0.7
	impactWeight     = 0.3
)

// reasoningTemplates generate the per-category natural-language reasoning
var reasoningTemplates = map[types.EnhancementCategory]string{
	types.CategoryTechnical:  "Adds technical depth from the master resume relevant to the %s role",
	types.CategoryLeadership: "Highlights leadership experience the %s role values",
	types.CategoryImpact:     "Demonstrates measurable impact aligned with the %s role",
}

// Analyzer finds master-resume content that strengthens a selected resume
// for a specific job. Stateless apart from the similarity engine's bounded
// embedding cache; safe for reuse across jobs.
type Analyzer struct {
	cfg    *config.Config
	sim    *embedding.Similarity
	logger *zap.Logger
}

// NewAnalyzer creates an analyzer with the injected configuration and
// similarity engine
func NewAnalyzer(cfg *config.Config, sim *embedding.Similarity, log *zap.Logger) *Analyzer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Analyzer{cfg: cfg, sim: sim, logger: log}
}

// Similarity returns the score of two snippets in [0,1]
func (a *Analyzer) Similarity(ctx context.Context, x, y string) float64 {
	return a.sim.Score(ctx, x, y)
}

// IdentifyUniqueContent retains the master bullets whose similarity to every
// selected-resume bullet stays below the semantic similarity threshold. The
// first selected bullet at or above the threshold rejects the master bullet.
func (a *Analyzer) IdentifyUniqueContent(ctx context.Context, masterBullets, selectedBullets []string) []string {
	var unique []string

	for _, mb := range masterBullets {
		duplicate := false
		for _, sb := range selectedBullets {
			if a.sim.Score(ctx, mb, sb) >= a.cfg.SemanticSimilarityThreshold {
				duplicate = true
				break
			}
		}
		if !duplicate {
			unique = append(unique, mb)
		}
	}
	return unique
}

// ScoreRelevanceToJob rates a bullet's value for the job:
// 0.7 × similarity to title+description + 0.3 × impact heuristic
func (a *Analyzer) ScoreRelevanceToJob(ctx context.Context, bullet string, job *types.JobPosting) float64 {
	jobText := job.Title + " " + job.Description
	return similarityWeight*a.sim.Score(ctx, bullet, jobText) + impactWeight*ImpactScore(bullet)
}

// SelectTopEnhancements runs the full pipeline: extract bullets from both
// resumes, drop master content already present in the selected resume, score
// the remainder against the job, filter by the minimum relevance score, and
// return the top MaxEnhancements with round-robin categories.
func (a *Analyzer) SelectTopEnhancements(ctx context.Context, job *types.JobPosting, masterText, selectedText string) []types.Enhancement {
	masterBullets := ExtractBulletPoints(masterText)
	if len(masterBullets) == 0 {
		a.logger.Debug("master resume yielded no bullet points")
		return nil
	}
	selectedBullets := ExtractBulletPoints(selectedText)

	unique := a.IdentifyUniqueContent(ctx, masterBullets, selectedBullets)

	type scoredBullet struct {
		text  string
		score float64
	}
	scored := make([]scoredBullet, 0, len(unique))
	for _, bullet := range unique {
		score := a.ScoreRelevanceToJob(ctx, bullet, job)
		if score < a.cfg.MinEnhancementRelevanceScore {
			continue
		}
		scored = append(scored, scoredBullet{text: bullet, score: score})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})
	if len(scored) > a.cfg.MaxEnhancements {
		scored = scored[:a.cfg.MaxEnhancements]
	}

	enhancements := make([]types.Enhancement, 0, len(scored))
	for i, sb := range scored {
		category := types.EnhancementCategories[i%len(types.EnhancementCategories)]
		enhancements = append(enhancements, types.Enhancement{
			BulletPoint:    sb.text,
			RelevanceScore: sb.score,
			SourceResume:   "master",
			Category:       category,
			Reasoning:      fmt.Sprintf(reasoningTemplates[category], job.Title),
		})
	}

	a.logger.Debug("enhancement selection complete",
		zap.Int("master_bullets", len(masterBullets)),
		zap.Int("unique", len(unique)),
		zap.Int("selected", len(enhancements)))

	return enhancements
}
