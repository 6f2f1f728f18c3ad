package reporting

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/evolab/genepool/pkg/genetic"
)

// TestExcelReporter_WriteRun tests that the workbook carries the
// generation history and the final population
func TestExcelReporter_WriteRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reports", "run.xlsx")

	history := []GenerationStats{
		{Generation: 1, BestFitness: 2.5, AvgFitness: 1.2, WorstFitness: 0.4},
		{Generation: 2, BestFitness: 2.9, AvgFitness: 1.8, WorstFitness: 0.9},
	}
	final := []genetic.Individual{
		{Genes: []float64{0.9, 0.8}, Fitness: 2.9},
		{Genes: []float64{0.3, 0.1}, Fitness: 0.9},
	}

	reporter := NewExcelReporter()
	require.NoError(t, reporter.WriteRun(path, history, final))

	fx, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer fx.Close()

	gen, err := fx.GetCellValue("Generations", "A2")
	require.NoError(t, err)
	assert.Equal(t, "1", gen)

	best, err := fx.GetCellValue("Generations", "B3")
	require.NoError(t, err)
	assert.Equal(t, "2.9", best)

	rank, err := fx.GetCellValue("Final Population", "A2")
	require.NoError(t, err)
	assert.Equal(t, "1", rank)

	gene, err := fx.GetCellValue("Final Population", "C2")
	require.NoError(t, err)
	assert.Equal(t, "0.9", gene)
}

// TestExcelReporter_WriteRun_EmptyRun tests that an empty run still
// produces a valid workbook
func TestExcelReporter_WriteRun_EmptyRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.xlsx")

	reporter := NewExcelReporter()
	require.NoError(t, reporter.WriteRun(path, nil, nil))

	fx, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer fx.Close()

	header, err := fx.GetCellValue("Generations", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Generation", header)
}
