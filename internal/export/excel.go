// Package export writes job intelligence results to an Excel workbook.
package export

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/jonathan/resume-intel/internal/types"
)

const (
	resultsSheet      = "Results"
	enhancementsSheet = "Enhancements"
)

// ExportToExcel writes one row per result to the Results sheet and one row
// per enhancement to the Enhancements sheet. The .xlsx extension is appended
// when missing.
func ExportToExcel(results []*types.JobIntelligenceResult, outputPath string) error {
	f := excelize.NewFile()
	defer f.Close()

	if !strings.HasSuffix(strings.ToLower(outputPath), ".xlsx") {
		outputPath += ".xlsx"
	}
	outputPath = filepath.Clean(outputPath)

	f.SetSheetName("Sheet1", resultsSheet)
	f.NewSheet(enhancementsSheet)

	if err := writeResultsSheet(f, results); err != nil {
		return fmt.Errorf("failed to build results sheet: %w", err)
	}
	if err := writeEnhancementsSheet(f, results); err != nil {
		return fmt.Errorf("failed to build enhancements sheet: %w", err)
	}

	if err := f.SaveAs(outputPath); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

func writeResultsSheet(f *excelize.File, results []*types.JobIntelligenceResult) error {
	headerStyle, err := headerStyle(f)
	if err != nil {
		return err
	}

	f.SetColWidth(resultsSheet, "A", "B", 20)
	f.SetColWidth(resultsSheet, "C", "C", 12)
	f.SetColWidth(resultsSheet, "D", "D", 60)
	f.SetColWidth(resultsSheet, "E", "G", 40)
	f.SetColWidth(resultsSheet, "H", "I", 12)

	for col, header := range types.ExcelColumns {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		f.SetCellValue(resultsSheet, cell, header)
		f.SetCellStyle(resultsSheet, cell, cell, headerStyle)
	}

	bucketStyles, err := scoreBucketStyles(f)
	if err != nil {
		return err
	}

	for i, result := range results {
		rowNum := i + 2
		row := result.ToExcelRow()
		for col, header := range types.ExcelColumns {
			cell, err := excelize.CoordinatesToCellName(col+1, rowNum)
			if err != nil {
				return err
			}
			f.SetCellValue(resultsSheet, cell, row[header])
		}

		style := bucketStyles.forScore(result.MatchScore)
		first, _ := excelize.CoordinatesToCellName(1, rowNum)
		last, _ := excelize.CoordinatesToCellName(len(types.ExcelColumns), rowNum)
		f.SetCellStyle(resultsSheet, first, last, style)
	}

	if len(results) > 0 {
		last, _ := excelize.CoordinatesToCellName(len(types.ExcelColumns), len(results)+1)
		f.AutoFilter(resultsSheet, "A1:"+last, nil)
	}

	return freezeHeader(f, resultsSheet)
}

func writeEnhancementsSheet(f *excelize.File, results []*types.JobIntelligenceResult) error {
	headerStyle, err := headerStyle(f)
	if err != nil {
		return err
	}

	f.SetColWidth(enhancementsSheet, "A", "A", 20)
	f.SetColWidth(enhancementsSheet, "B", "B", 60)
	f.SetColWidth(enhancementsSheet, "C", "C", 12)
	f.SetColWidth(enhancementsSheet, "D", "D", 14)
	f.SetColWidth(enhancementsSheet, "E", "E", 50)

	headers := []string{"Job ID", "Bullet Point", "Relevance", "Category", "Reasoning"}
	for col, header := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		f.SetCellValue(enhancementsSheet, cell, header)
		f.SetCellStyle(enhancementsSheet, cell, cell, headerStyle)
	}

	rowNum := 2
	for _, result := range results {
		for _, e := range result.Enhancements {
			f.SetCellValue(enhancementsSheet, fmt.Sprintf("A%d", rowNum), result.JobID)
			f.SetCellValue(enhancementsSheet, fmt.Sprintf("B%d", rowNum), e.BulletPoint)
			f.SetCellValue(enhancementsSheet, fmt.Sprintf("C%d", rowNum), fmt.Sprintf("%.2f", e.RelevanceScore))
			f.SetCellValue(enhancementsSheet, fmt.Sprintf("D%d", rowNum), string(e.Category))
			f.SetCellValue(enhancementsSheet, fmt.Sprintf("E%d", rowNum), e.Reasoning)
			rowNum++
		}
	}

	return freezeHeader(f, enhancementsSheet)
}

func headerStyle(f *excelize.File) (int, error) {
	return f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
}

// bucketStyles hold the row fill per match-score bucket
type bucketStyles struct {
	excellent, good, moderate, limited int
}

func scoreBucketStyles(f *excelize.File) (*bucketStyles, error) {
	fill := func(color string) (int, error) {
		return f.NewStyle(&excelize.Style{
			Fill: excelize.Fill{Type: "pattern", Color: []string{color}, Pattern: 1},
		})
	}

	var s bucketStyles
	var err error
	if s.excellent, err = fill("C6EFCE"); err != nil {
		return nil, err
	}
	if s.good, err = fill("FFEB9C"); err != nil {
		return nil, err
	}
	if s.moderate, err = fill("FFC7CE"); err != nil {
		return nil, err
	}
	if s.limited, err = fill("FF9999"); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *bucketStyles) forScore(score float64) int {
	switch {
	case score >= 80:
		return s.excellent
	case score >= 60:
		return s.good
	case score >= 40:
		return s.moderate
	default:
		return s.limited
	}
}

func freezeHeader(f *excelize.File, sheet string) error {
	return f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
}

// DefaultOutputPath names the workbook with a sortable timestamp
func DefaultOutputPath(dir string) string {
	name := fmt.Sprintf("job_intelligence_%s.xlsx", time.Now().Format("20060102_150405"))
	return filepath.Join(dir, name)
}
