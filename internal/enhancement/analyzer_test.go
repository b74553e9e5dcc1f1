package enhancement

import (
	"context"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-intel/internal/config"
	"github.com/jonathan/resume-intel/internal/embedding"
	"github.com/jonathan/resume-intel/internal/types"
)

// vectorEmbedder returns a fixed vector per exact text
type vectorEmbedder struct {
	vectors map[string][]float32
}

func (v *vectorEmbedder) Embed(_ context.Context, text string) ([]float32, error) {
	vec, ok := v.vectors[text]
	if !ok {
		return nil, fmt.Errorf("no vector for %q", text)
	}
	return vec, nil
}

func (v *vectorEmbedder) Close() error { return nil }

// unitVector builds a 2D unit vector whose cosine against (1,0) equals cos
func unitVector(cos float64) []float32 {
	sin := math.Sqrt(1 - cos*cos)
	return []float32{float32(cos), float32(sin)}
}

func TestIdentifyUniqueContent_ScenarioD(t *testing.T) {
	master := "Led team of 10 engineers"
	selected := "Managed team of 12 engineers"

	// Embeddings put the pair at similarity 0.85, above the 0.8 threshold
	emb := &vectorEmbedder{vectors: map[string][]float32{
		master:   {1, 0},
		selected: unitVector(0.85),
	}}
	sim := embedding.NewSimilarity(emb, 16, nil)
	analyzer := NewAnalyzer(config.DefaultConfig(), sim, nil)

	unique := analyzer.IdentifyUniqueContent(context.Background(), []string{master}, []string{selected})
	assert.Empty(t, unique)
}

func TestIdentifyUniqueContent_KeepsDistinctBullets(t *testing.T) {
	master := "Architected the payments platform from scratch"
	selected := "Wrote quarterly marketing reports"

	emb := &vectorEmbedder{vectors: map[string][]float32{
		master:   {1, 0},
		selected: unitVector(0.1),
	}}
	sim := embedding.NewSimilarity(emb, 16, nil)
	analyzer := NewAnalyzer(config.DefaultConfig(), sim, nil)

	unique := analyzer.IdentifyUniqueContent(context.Background(), []string{master}, []string{selected})
	require.Len(t, unique, 1)
	assert.Equal(t, master, unique[0])
}

func TestIdentifyUniqueContent_Idempotent(t *testing.T) {
	sim := embedding.NewSimilarity(nil, 0, nil) // Jaccard mode
	analyzer := NewAnalyzer(config.DefaultConfig(), sim, nil)

	masterBullets := []string{
		"Led team of 10 engineers on the core platform",
		"Shipped the self-serve onboarding flow",
	}
	selectedBullets := []string{
		"Led team of 10 engineers on the core platform",
	}

	first := analyzer.IdentifyUniqueContent(context.Background(), masterBullets, selectedBullets)
	second := analyzer.IdentifyUniqueContent(context.Background(), masterBullets, selectedBullets)
	assert.Equal(t, first, second)
}

func TestSelectTopEnhancements_ScenarioE(t *testing.T) {
	job := &types.JobPosting{ID: "job-1", Title: "Platform Engineer", Description: "go kubernetes"}
	jobText := job.Title + " " + job.Description

	bullets := []string{
		"Architected the core scheduling platform components",
		"Coordinated the multi-region failover program",
		"Established the service reliability review process",
		"Organized the quarterly office supply inventory",
	}

	// Relevance = 0.7 × cosine (no impact signals in the bullets):
	// 0.70, 0.63, 0.56, 0.07 — three above the 0.5 minimum
	vectors := map[string][]float32{
		jobText:    {1, 0},
		bullets[0]: unitVector(1.0),
		bullets[1]: unitVector(0.9),
		bullets[2]: unitVector(0.8),
		bullets[3]: unitVector(0.1),
	}
	emb := &vectorEmbedder{vectors: vectors}
	sim := embedding.NewSimilarity(emb, 16, nil)
	analyzer := NewAnalyzer(config.DefaultConfig(), sim, nil)

	masterText := "• " + bullets[0] + "\n• " + bullets[1] + "\n• " + bullets[2] + "\n• " + bullets[3]
	selectedText := "" // nothing to dedup against

	enhancements := analyzer.SelectTopEnhancements(context.Background(), job, masterText, selectedText)
	require.Len(t, enhancements, 3)

	// Sorted descending by relevance
	assert.Equal(t, bullets[0], enhancements[0].BulletPoint)
	assert.Equal(t, bullets[1], enhancements[1].BulletPoint)
	assert.Equal(t, bullets[2], enhancements[2].BulletPoint)
	for i := 1; i < len(enhancements); i++ {
		assert.GreaterOrEqual(t, enhancements[i-1].RelevanceScore, enhancements[i].RelevanceScore)
	}

	// Every returned item clears the minimum relevance score
	for _, e := range enhancements {
		assert.GreaterOrEqual(t, e.RelevanceScore, 0.5)
		assert.Equal(t, "master", e.SourceResume)
		assert.Contains(t, e.Reasoning, "Platform Engineer")
	}

	// Categories cycle technical → leadership → impact
	assert.Equal(t, types.CategoryTechnical, enhancements[0].Category)
	assert.Equal(t, types.CategoryLeadership, enhancements[1].Category)
	assert.Equal(t, types.CategoryImpact, enhancements[2].Category)
}

func TestSelectTopEnhancements_NeverExceedsMax(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.MaxEnhancements = 2
	cfg.MinEnhancementRelevanceScore = 0.0

	sim := embedding.NewSimilarity(nil, 0, nil)
	analyzer := NewAnalyzer(cfg, sim, nil)

	job := &types.JobPosting{Title: "Engineer", Description: "python platform services"}
	masterText := "• Developed python platform services for engineers\n" +
		"• Improved python platform service latency by tuning\n" +
		"• Maintained python platform deployment services daily"

	enhancements := analyzer.SelectTopEnhancements(context.Background(), job, masterText, "")
	assert.LessOrEqual(t, len(enhancements), 2)
	assert.NotEmpty(t, enhancements)
}

func TestSelectTopEnhancements_EmptyMaster(t *testing.T) {
	sim := embedding.NewSimilarity(nil, 0, nil)
	analyzer := NewAnalyzer(config.DefaultConfig(), sim, nil)

	job := &types.JobPosting{Title: "Engineer", Description: "python"}
	assert.Empty(t, analyzer.SelectTopEnhancements(context.Background(), job, "", "• Existing bullet content here"))
}
