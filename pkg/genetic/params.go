package genetic

import (
	"fmt"

	"github.com/evolab/genepool/internal/errors"
)

// Params holds the evolutionary parameters for a run. They are fixed for
// the lifetime of a population.
type Params struct {
	PopulationSize int     // number of individuals, N
	GeneCount      int     // genes per chromosome, G
	MutationRate   float64 // per-gene probability of a fresh uniform draw
	CrossoverRate  float64 // per-gene probability of taking the second parent's allele
}

// DefaultParams returns the reference run parameters
func DefaultParams() Params {
	return Params{
		PopulationSize: 20,
		GeneCount:      5,
		MutationRate:   0.1,
		CrossoverRate:  0.7,
	}
}

// Validate rejects parameter combinations that would produce a degenerate
// or undefined run.
func (p Params) Validate() error {
	if p.PopulationSize <= 0 {
		return errors.NewValidationError("genetic", "validate_params",
			fmt.Sprintf("population size must be positive, got %d", p.PopulationSize))
	}
	if p.GeneCount <= 0 {
		return errors.NewValidationError("genetic", "validate_params",
			fmt.Sprintf("gene count must be positive, got %d", p.GeneCount))
	}
	if p.MutationRate < 0 || p.MutationRate > 1 {
		return errors.NewValidationError("genetic", "validate_params",
			fmt.Sprintf("mutation rate must be in [0, 1], got %g", p.MutationRate))
	}
	if p.CrossoverRate < 0 || p.CrossoverRate > 1 {
		return errors.NewValidationError("genetic", "validate_params",
			fmt.Sprintf("crossover rate must be in [0, 1], got %g", p.CrossoverRate))
	}
	return nil
}
