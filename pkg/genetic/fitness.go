package genetic

import (
	"fmt"
	"strings"

	"github.com/evolab/genepool/internal/errors"
)

// Built-in fitness functions for the demo driver. All are pure and return
// non-negative finite values over genes in [0, 1).

// SumFitness scores a chromosome by the sum of its genes
func SumFitness(genes []float64) float64 {
	sum := 0.0
	for _, g := range genes {
		sum += g
	}
	return sum
}

// SphereFitness rewards chromosomes close to the center of the unit cube,
// peaking at 1.0 when every gene equals 0.5.
func SphereFitness(genes []float64) float64 {
	dist := 0.0
	for _, g := range genes {
		d := g - 0.5
		dist += d * d
	}
	return 1.0 / (1.0 + dist)
}

// ProductFitness scores a chromosome by the product of its genes, which
// pressures every gene toward 1 simultaneously.
func ProductFitness(genes []float64) float64 {
	product := 1.0
	for _, g := range genes {
		product *= g
	}
	return product
}

// FitnessByName resolves a named preset for CLI use
func FitnessByName(name string) (FitnessFunc, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "sum":
		return SumFitness, nil
	case "sphere":
		return SphereFitness, nil
	case "product":
		return ProductFitness, nil
	default:
		return nil, errors.NewValidationError("genetic", "fitness_by_name",
			fmt.Sprintf("unknown fitness function %q (available: sum, sphere, product)", name))
	}
}
