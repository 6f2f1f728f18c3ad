package genetic

import (
	"math/rand"
)

// Crossover creates one offspring from two parents using discrete uniform
// crossover: for each gene position independently, the offspring takes the
// second parent's allele with probability rate, otherwise the first
// parent's. Gene values are copied out, so the offspring never aliases
// either parent. The offspring's fitness starts unevaluated.
func Crossover(parent1, parent2 *Individual, rate float64, rng *rand.Rand) *Individual {
	genes := make([]float64, len(parent1.Genes))
	for i := range genes {
		if rng.Float64() < rate {
			genes[i] = parent2.Genes[i]
		} else {
			genes[i] = parent1.Genes[i]
		}
	}
	return &Individual{Genes: genes}
}

// Mutate applies uniform reset mutation in place: each gene independently
// is replaced with a fresh draw from [0, 1) with probability rate. The
// cached fitness is cleared when any gene changes.
func Mutate(individual *Individual, rate float64, rng *rand.Rand) {
	mutated := false
	for i := range individual.Genes {
		if rng.Float64() < rate {
			individual.Genes[i] = rng.Float64()
			mutated = true
		}
	}
	if mutated {
		individual.Reset()
	}
}

// RouletteSelection picks one individual with probability proportional to
// its fitness relative to the population total. Negative fitness values
// contribute zero weight so the running sum stays monotonic. When the
// total weight is zero the wheel is ill-defined, so selection falls back
// to a uniform random pick.
func RouletteSelection(individuals []*Individual, rng *rand.Rand) *Individual {
	if len(individuals) == 0 {
		return nil
	}

	var total float64
	for _, ind := range individuals {
		if ind.Fitness > 0 {
			total += ind.Fitness
		}
	}

	if total <= 0 {
		return individuals[rng.Intn(len(individuals))]
	}

	target := rng.Float64() * total
	var cumulative float64
	for _, ind := range individuals {
		if ind.Fitness > 0 {
			cumulative += ind.Fitness
			if cumulative >= target {
				return ind
			}
		}
	}

	// Floating point slack on the last accumulation step
	return individuals[len(individuals)-1]
}
