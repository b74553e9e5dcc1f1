package intelligence

import (
	"context"

	"go.uber.org/zap"

	"github.com/jonathan/resume-intel/internal/types"
)

// ValidateEnhancementUniqueness re-checks every enhancement against every
// selected-resume bullet (must stay below the semantic similarity threshold)
// and every pair of enhancements against each other (must stay below the
// enhancement similarity threshold). Fail-closed: the first violation or any
// internal panic returns false.
func (o *Orchestrator) ValidateEnhancementUniqueness(ctx context.Context, enhancements []types.Enhancement, selectedBullets []string) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			o.logger.Warn("uniqueness validation panicked", zap.Any("panic", r))
			ok = false
		}
	}()

	for i := range enhancements {
		for _, bullet := range selectedBullets {
			if o.analyzer.Similarity(ctx, enhancements[i].BulletPoint, bullet) >= o.cfg.SemanticSimilarityThreshold {
				return false
			}
		}
		for j := i + 1; j < len(enhancements); j++ {
			if o.analyzer.Similarity(ctx, enhancements[i].BulletPoint, enhancements[j].BulletPoint) >= o.cfg.EnhancementSimilarityThreshold {
				return false
			}
		}
	}
	return true
}

// filterUniqueEnhancements greedily keeps enhancements in ranked order,
// dropping any that collide with the selected resume or an already-kept
// enhancement
func (o *Orchestrator) filterUniqueEnhancements(ctx context.Context, enhancements []types.Enhancement, selectedBullets []string) []types.Enhancement {
	kept := make([]types.Enhancement, 0, len(enhancements))

	for _, e := range enhancements {
		collides := false
		for _, bullet := range selectedBullets {
			if o.analyzer.Similarity(ctx, e.BulletPoint, bullet) >= o.cfg.SemanticSimilarityThreshold {
				collides = true
				break
			}
		}
		if !collides {
			for _, k := range kept {
				if o.analyzer.Similarity(ctx, e.BulletPoint, k.BulletPoint) >= o.cfg.EnhancementSimilarityThreshold {
					collides = true
					break
				}
			}
		}
		if !collides {
			kept = append(kept, e)
		}
	}
	return kept
}
