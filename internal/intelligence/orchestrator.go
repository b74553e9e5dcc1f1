// Package intelligence is the orchestration layer: it ties discovery,
// selection, and enhancement together and always returns a result object to
// the caller, never an error.
package intelligence

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/jonathan/resume-intel/internal/config"
	"github.com/jonathan/resume-intel/internal/enhancement"
	"github.com/jonathan/resume-intel/internal/inventory"
	"github.com/jonathan/resume-intel/internal/selection"
	"github.com/jonathan/resume-intel/internal/types"
)

// cachedInventory pairs a scanned inventory with the directory snapshot it
// was built from; a snapshot mismatch on lookup forces a rescan
type cachedInventory struct {
	inventory *types.ResumeInventory
	snapshot  string
}

// Orchestrator owns the end-to-end call and the session inventory cache.
// The cache is guarded by a mutex so one orchestrator may serve concurrent
// ProcessJob calls.
type Orchestrator struct {
	cfg      *config.Config
	scanner  *inventory.Scanner
	engine   *selection.Engine
	analyzer *enhancement.Analyzer
	logger   *zap.Logger

	mu    sync.Mutex
	cache map[string]cachedInventory
}

// NewOrchestrator wires the pipeline components together
func NewOrchestrator(
	cfg *config.Config,
	scanner *inventory.Scanner,
	engine *selection.Engine,
	analyzer *enhancement.Analyzer,
	log *zap.Logger,
) *Orchestrator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Orchestrator{
		cfg:      cfg,
		scanner:  scanner,
		engine:   engine,
		analyzer: analyzer,
		logger:   log,
		cache:    make(map[string]cachedInventory),
	}
}

// ProcessJob runs the full pipeline for one job: inventory → selection →
// enhancement → validation. It never returns an error; any failure is
// converted into a zero-confidence result carrying the error text as
// rationale.
func (o *Orchestrator) ProcessJob(ctx context.Context, job *types.JobPosting, basePath string) (result *types.JobIntelligenceResult) {
	start := time.Now()

	defer func() {
		if r := recover(); r != nil {
			o.logger.Error("job processing panicked", zap.String("job_id", job.ID), zap.Any("panic", r))
			result = o.errorResult(job, start, fmt.Sprintf("internal error: %v", r))
		}
	}()

	inv, err := o.loadInventory(basePath)
	if err != nil {
		return o.errorResult(job, start, err.Error())
	}

	if !inv.HasCandidates() {
		return &types.JobIntelligenceResult{
			JobID:              job.ID,
			SelectionRationale: "No candidate resumes found in " + basePath,
			Enhancements:       []types.Enhancement{},
			ProcessingTime:     time.Since(start),
		}
	}

	sel := o.engine.SelectResume(ctx, job, inv)
	if sel.SelectedResume == nil {
		return &types.JobIntelligenceResult{
			JobID:              job.ID,
			SelectionRationale: "No resume could be selected for this job",
			Enhancements:       []types.Enhancement{},
			ProcessingTime:     time.Since(start),
		}
	}

	enhancements := []types.Enhancement{}
	var selectedBullets []string
	if inv.MasterResume != nil {
		enhancements, selectedBullets = o.generateEnhancements(ctx, job, inv.MasterResume, sel.SelectedResume)
		// Generic fallbacks are not resume content; the uniqueness rules
		// apply only to bullets lifted from the master resume.
		if !fallbackSourced(enhancements) {
			enhancements = o.enforceUniqueness(ctx, enhancements, selectedBullets)
		}
	}

	return &types.JobIntelligenceResult{
		JobID:              job.ID,
		SelectedResume:     sel.SelectedResume,
		MatchScore:         sel.MatchScore,
		SelectionRationale: GenerateSelectionRationale(sel),
		Enhancements:       enhancements,
		ProcessingTime:     time.Since(start),
		ConfidenceLevel:    sel.ConfidenceLevel,
	}
}

// ProcessJobs processes many jobs against one base path, sharing a single
// inventory scan through the cache
func (o *Orchestrator) ProcessJobs(ctx context.Context, jobs []types.JobPosting, basePath string) []*types.JobIntelligenceResult {
	results := make([]*types.JobIntelligenceResult, 0, len(jobs))
	for i := range jobs {
		results = append(results, o.ProcessJob(ctx, &jobs[i], basePath))
	}
	return results
}

// loadInventory returns the cached inventory for basePath when its directory
// snapshot still matches, rescanning otherwise. The cached digest comes from
// the scan's own walk, so the cache never holds an inventory under a snapshot
// describing a different tree state.
func (o *Orchestrator) loadInventory(basePath string) (*types.ResumeInventory, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	snapshot, err := o.scanner.Snapshot(basePath)
	if err != nil {
		return nil, err
	}

	if cached, ok := o.cache[basePath]; ok && cached.snapshot == snapshot {
		return cached.inventory, nil
	}

	inv, scanned, err := o.scanner.ScanWithSnapshot(basePath)
	if err != nil {
		return nil, err
	}

	o.cache[basePath] = cachedInventory{inventory: inv, snapshot: scanned}
	return inv, nil
}

// generateEnhancements runs the content analyzer, substituting three generic
// fallback enhancements when analysis fails. Also returns the selected
// resume's bullets for the uniqueness check.
func (o *Orchestrator) generateEnhancements(
	ctx context.Context,
	job *types.JobPosting,
	master, selected *types.ResumeMetadata,
) (enhancements []types.Enhancement, selectedBullets []string) {
	defer func() {
		if r := recover(); r != nil {
			o.logger.Warn("enhancement generation failed, substituting fallbacks",
				zap.String("job_id", job.ID), zap.Any("panic", r))
			enhancements = FallbackEnhancements()
		}
	}()

	masterText := inventory.ResumeText(master)
	selectedText := inventory.ResumeText(selected)
	selectedBullets = enhancement.ExtractBulletPoints(selectedText)

	enhancements = o.analyzer.SelectTopEnhancements(ctx, job, masterText, selectedText)
	if enhancements == nil {
		enhancements = []types.Enhancement{}
	}
	return enhancements, selectedBullets
}

// enforceUniqueness validates the enhancement set and drops offending
// entries instead of passing them through
func (o *Orchestrator) enforceUniqueness(ctx context.Context, enhancements []types.Enhancement, selectedBullets []string) []types.Enhancement {
	if o.ValidateEnhancementUniqueness(ctx, enhancements, selectedBullets) {
		return enhancements
	}

	unique := o.filterUniqueEnhancements(ctx, enhancements, selectedBullets)
	o.logger.Warn("dropped non-unique enhancements",
		zap.Int("before", len(enhancements)), zap.Int("after", len(unique)))
	return unique
}

// errorResult builds the zero-confidence result used for any failure
func (o *Orchestrator) errorResult(job *types.JobPosting, start time.Time, reason string) *types.JobIntelligenceResult {
	return &types.JobIntelligenceResult{
		JobID:              job.ID,
		SelectionRationale: "Processing failed: " + reason,
		Enhancements:       []types.Enhancement{},
		ProcessingTime:     time.Since(start),
	}
}

// fallbackSourced reports whether the set is the generic fallback
// substitution rather than analyzed master-resume content
func fallbackSourced(enhancements []types.Enhancement) bool {
	if len(enhancements) == 0 {
		return false
	}
	for _, e := range enhancements {
		if e.SourceResume != "fallback" {
			return false
		}
	}
	return true
}

// FallbackEnhancements returns the three generic, category-tagged
// enhancements substituted when analysis fails
func FallbackEnhancements() []types.Enhancement {
	neutral := 0.5
	return []types.Enhancement{
		{
			BulletPoint:    "Review master resume for additional technical accomplishments relevant to this role",
			RelevanceScore: neutral,
			SourceResume:   "fallback",
			Category:       types.CategoryTechnical,
			Reasoning:      "Automated analysis unavailable; manual review of technical content suggested",
		},
		{
			BulletPoint:    "Consider highlighting leadership or mentoring experience from the master resume",
			RelevanceScore: neutral,
			SourceResume:   "fallback",
			Category:       types.CategoryLeadership,
			Reasoning:      "Automated analysis unavailable; manual review of leadership content suggested",
		},
		{
			BulletPoint:    "Add quantified outcomes from the master resume that match this job's focus",
			RelevanceScore: neutral,
			SourceResume:   "fallback",
			Category:       types.CategoryImpact,
			Reasoning:      "Automated analysis unavailable; manual review of impact content suggested",
		},
	}
}
