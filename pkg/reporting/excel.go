package reporting

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/evolab/genepool/pkg/genetic"
)

// ExcelReporter writes a completed evolution run to an xlsx workbook
type ExcelReporter struct{}

// NewExcelReporter creates a new Excel reporter
func NewExcelReporter() *ExcelReporter {
	return &ExcelReporter{}
}

// WriteRun writes the per-generation history and the final population to
// an Excel file at path, creating parent directories as needed.
func (r *ExcelReporter) WriteRun(path string, history []GenerationStats, final []genetic.Individual) error {
	// Ensure directory exists before creating file
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	fx := excelize.NewFile()
	defer fx.Close()

	const generationsSheet = "Generations"
	const populationSheet = "Final Population"

	fx.SetSheetName(fx.GetSheetName(0), generationsSheet)
	if _, err := fx.NewSheet(populationSheet); err != nil {
		return err
	}

	headerStyle, err := r.createHeaderStyle(fx)
	if err != nil {
		return err
	}

	if err := r.writeGenerationsSheet(fx, generationsSheet, history, headerStyle); err != nil {
		return err
	}
	if err := r.writePopulationSheet(fx, populationSheet, final, headerStyle); err != nil {
		return err
	}

	return fx.SaveAs(path)
}

// createHeaderStyle builds the bold header style used on both sheets
func (r *ExcelReporter) createHeaderStyle(fx *excelize.File) (int, error) {
	return fx.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold:   true,
			Size:   11,
			Color:  "FFFFFF",
			Family: "Calibri",
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"2F4F4F"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
}

func (r *ExcelReporter) writeGenerationsSheet(fx *excelize.File, sheet string, history []GenerationStats, headerStyle int) error {
	headers := []string{"Generation", "Best Fitness", "Avg Fitness", "Worst Fitness"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		fx.SetCellValue(sheet, cell, h)
		fx.SetCellStyle(sheet, cell, cell, headerStyle)
	}

	for row, stats := range history {
		fx.SetCellValue(sheet, fmt.Sprintf("A%d", row+2), stats.Generation)
		fx.SetCellValue(sheet, fmt.Sprintf("B%d", row+2), stats.BestFitness)
		fx.SetCellValue(sheet, fmt.Sprintf("C%d", row+2), stats.AvgFitness)
		fx.SetCellValue(sheet, fmt.Sprintf("D%d", row+2), stats.WorstFitness)
	}

	fx.SetColWidth(sheet, "A", "A", 12)
	fx.SetColWidth(sheet, "B", "D", 14)
	return nil
}

func (r *ExcelReporter) writePopulationSheet(fx *excelize.File, sheet string, final []genetic.Individual, headerStyle int) error {
	geneCount := 0
	if len(final) > 0 {
		geneCount = len(final[0].Genes)
	}

	headers := []string{"Rank", "Fitness"}
	for g := 0; g < geneCount; g++ {
		headers = append(headers, fmt.Sprintf("Gene %d", g+1))
	}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		fx.SetCellValue(sheet, cell, h)
		fx.SetCellStyle(sheet, cell, cell, headerStyle)
	}

	for row, ind := range final {
		fx.SetCellValue(sheet, fmt.Sprintf("A%d", row+2), row+1)
		fx.SetCellValue(sheet, fmt.Sprintf("B%d", row+2), ind.Fitness)
		for g, gene := range ind.Genes {
			cell, err := excelize.CoordinatesToCellName(g+3, row+2)
			if err != nil {
				return err
			}
			fx.SetCellValue(sheet, cell, gene)
		}
	}

	fx.SetColWidth(sheet, "A", "B", 10)
	return nil
}
