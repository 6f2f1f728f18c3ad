package reporting

import (
	"github.com/evolab/genepool/pkg/genetic"
)

// GenerationStats summarizes one evaluated generation for reporting
type GenerationStats struct {
	Generation   int
	BestFitness  float64
	AvgFitness   float64
	WorstFitness float64
}

// ConsoleOutput defines console reporting for an evolution run
type ConsoleOutput interface {
	PrintRunHeader(params genetic.Params, generations int, fitnessName string)
	PrintGeneration(gen int, individuals []genetic.Individual)
	PrintSummary(history []GenerationStats, best *genetic.Individual)
}

// FileOutput defines file export of a completed run
type FileOutput interface {
	WriteRun(path string, history []GenerationStats, final []genetic.Individual) error
}
