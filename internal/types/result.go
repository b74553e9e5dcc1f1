// Package types provides type definitions for structured data used throughout the resume-intel system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"fmt"
	"path/filepath"
	"time"
)

// JobIntelligenceResult is the terminal output of one orchestrator call.
// It is never persisted by this core; the exporter owns any persistence.
type JobIntelligenceResult struct {
	JobID              string        `json:"job_id"`
	SelectedResume     *ResumeMetadata `json:"selected_resume,omitempty"`
	MatchScore         float64       `json:"match_score"` // 0-100
	SelectionRationale string        `json:"selection_rationale"`
	Enhancements       []Enhancement `json:"enhancements"`
	ProcessingTime     time.Duration `json:"processing_time"`
	ConfidenceLevel    float64       `json:"confidence_level"` // 0-1
}

// ExcelColumns lists the exported column headers in order
var ExcelColumns = []string{
	"Job ID",
	"Selected Resume",
	"Match Score",
	"Selection Rationale",
	"Enhancement 1",
	"Enhancement 2",
	"Enhancement 3",
	"Confidence",
	"Processing Time",
}

// ToExcelRow maps the result to the named spreadsheet fields consumed by the
// exporter. Match Score is rendered as an "NN.N%" string.
func (r *JobIntelligenceResult) ToExcelRow() map[string]string {
	row := map[string]string{
		"Job ID":              r.JobID,
		"Selected Resume":     "",
		"Match Score":         fmt.Sprintf("%.1f%%", r.MatchScore),
		"Selection Rationale": r.SelectionRationale,
		"Enhancement 1":       "",
		"Enhancement 2":       "",
		"Enhancement 3":       "",
		"Confidence":          fmt.Sprintf("%.2f", r.ConfidenceLevel),
		"Processing Time":     r.ProcessingTime.Round(time.Millisecond).String(),
	}

	if r.SelectedResume != nil {
		row["Selected Resume"] = filepath.Base(r.SelectedResume.Filename)
	}

	for i, e := range r.Enhancements {
		if i >= 3 {
			break
		}
		row[fmt.Sprintf("Enhancement %d", i+1)] = e.BulletPoint
	}

	return row
}
