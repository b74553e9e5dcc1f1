package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestToExcelRow(t *testing.T) {
	result := &JobIntelligenceResult{
		JobID:              "job-42",
		SelectedResume:     &ResumeMetadata{Filename: "ai_resume.txt"},
		MatchScore:         87.5,
		SelectionRationale: "strong keyword overlap",
		Enhancements: []Enhancement{
			{BulletPoint: "first"},
			{BulletPoint: "second"},
		},
		ProcessingTime:  1500 * time.Millisecond,
		ConfidenceLevel: 0.875,
	}

	row := result.ToExcelRow()

	assert.Equal(t, "job-42", row["Job ID"])
	assert.Equal(t, "ai_resume.txt", row["Selected Resume"])
	assert.Equal(t, "87.5%", row["Match Score"])
	assert.Equal(t, "strong keyword overlap", row["Selection Rationale"])
	assert.Equal(t, "first", row["Enhancement 1"])
	assert.Equal(t, "second", row["Enhancement 2"])
	assert.Equal(t, "", row["Enhancement 3"])
	assert.Equal(t, "0.88", row["Confidence"])
	assert.Equal(t, "1.5s", row["Processing Time"])
}

func TestToExcelRow_NoSelection(t *testing.T) {
	result := &JobIntelligenceResult{JobID: "job-0", SelectionRationale: "no candidates"}

	row := result.ToExcelRow()

	assert.Equal(t, "", row["Selected Resume"])
	assert.Equal(t, "0.0%", row["Match Score"])
}

func TestToExcelRow_CapsEnhancementsAtThree(t *testing.T) {
	result := &JobIntelligenceResult{
		JobID: "job-9",
		Enhancements: []Enhancement{
			{BulletPoint: "a"}, {BulletPoint: "b"}, {BulletPoint: "c"}, {BulletPoint: "d"},
		},
	}

	row := result.ToExcelRow()

	assert.Equal(t, "c", row["Enhancement 3"])
	assert.NotContains(t, row, "Enhancement 4")
}
