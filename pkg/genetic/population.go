// Package genetic implements a fitness-proportional genetic algorithm over
// fixed-length real-valued chromosomes: roulette-wheel parent selection,
// discrete uniform crossover, and per-gene uniform reset mutation, with
// wholesale generational replacement and no elitism.
package genetic

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
	"time"

	"github.com/evolab/genepool/internal/errors"
)

// FitnessFunc maps a gene sequence to a scalar quality score to be
// maximized. It must be a pure function of the genes and must return a
// finite, non-negative value for selection to be well-defined.
type FitnessFunc func(genes []float64) float64

// Population owns the current generation's individuals, the fitness
// function, the run parameters, and the random source. It is not safe for
// concurrent use.
type Population struct {
	params      Params
	fitnessFn   FitnessFunc
	rng         *rand.Rand
	individuals []*Individual
	evaluated   bool
	generation  int
}

// NewPopulation creates a population of params.PopulationSize random
// individuals, each with params.GeneCount genes drawn uniformly from
// [0, 1). Fitness values start at zero and are considered unevaluated.
// A nil rng gets a time-seeded source; tests inject a seeded one for
// repeatable runs.
func NewPopulation(params Params, fitnessFn FitnessFunc, rng *rand.Rand) (*Population, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if fitnessFn == nil {
		return nil, errors.NewValidationError("genetic", "new_population", "fitness function is required")
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	individuals := make([]*Individual, params.PopulationSize)
	for i := range individuals {
		genes := make([]float64, params.GeneCount)
		for j := range genes {
			genes[j] = rng.Float64()
		}
		individuals[i] = &Individual{Genes: genes}
	}

	return &Population{
		params:      params,
		fitnessFn:   fitnessFn,
		rng:         rng,
		individuals: individuals,
	}, nil
}

// Evaluate invokes the fitness function on every individual, stores the
// results, and sorts the population descending by fitness. Tie order is
// unspecified. A NaN or infinite fitness aborts before any sorting, since
// non-finite values break total ordering.
func (p *Population) Evaluate() error {
	for i, ind := range p.individuals {
		fitness := p.fitnessFn(ind.Genes)
		if math.IsNaN(fitness) || math.IsInf(fitness, 0) {
			return errors.NewEvaluationError("genetic", "evaluate",
				fmt.Sprintf("fitness function returned non-finite value %v for individual %d", fitness, i))
		}
		ind.Fitness = fitness
	}

	sort.Slice(p.individuals, func(i, j int) bool {
		return p.individuals[i].Fitness > p.individuals[j].Fitness
	})

	p.evaluated = true
	return nil
}

// Advance replaces the population wholesale with the next generation:
// repeatedly select two parents with replacement via roulette wheel,
// cross them over, mutate the offspring, until the new buffer reaches the
// population size. The old generation is discarded entirely; there is no
// elitism. Requires a prior Evaluate so selection sees meaningful fitness.
func (p *Population) Advance() error {
	if !p.evaluated {
		return errors.NewSelectionError("genetic", "advance",
			"population has not been evaluated; call Evaluate first")
	}

	next := make([]*Individual, 0, p.params.PopulationSize)
	for len(next) < p.params.PopulationSize {
		parent1 := RouletteSelection(p.individuals, p.rng)
		parent2 := RouletteSelection(p.individuals, p.rng)

		child := Crossover(parent1, parent2, p.params.CrossoverRate, p.rng)
		Mutate(child, p.params.MutationRate, p.rng)

		next = append(next, child)
	}

	p.individuals = next
	p.evaluated = false
	p.generation++
	return nil
}

// Snapshot returns a read-only copy of the current population in its
// current order. Callers never receive references into the live buffer.
func (p *Population) Snapshot() []Individual {
	snapshot := make([]Individual, len(p.individuals))
	for i, ind := range p.individuals {
		snapshot[i] = *ind.Clone()
	}
	return snapshot
}

// Best returns a copy of the individual with the highest fitness, or nil
// for an empty population. Meaningful only after Evaluate.
func (p *Population) Best() *Individual {
	if len(p.individuals) == 0 {
		return nil
	}
	best := p.individuals[0]
	for _, ind := range p.individuals[1:] {
		if ind.Fitness > best.Fitness {
			best = ind
		}
	}
	return best.Clone()
}

// AverageFitness calculates the average fitness across the population
func (p *Population) AverageFitness() float64 {
	if len(p.individuals) == 0 {
		return 0.0
	}
	sum := 0.0
	for _, ind := range p.individuals {
		sum += ind.Fitness
	}
	return sum / float64(len(p.individuals))
}

// Size returns the number of individuals in the population
func (p *Population) Size() int {
	return len(p.individuals)
}

// GeneCount returns the chromosome length
func (p *Population) GeneCount() int {
	return p.params.GeneCount
}

// Generation returns how many times the population has been advanced
func (p *Population) Generation() int {
	return p.generation
}

// Evaluated reports whether the current individuals carry valid fitness
func (p *Population) Evaluated() bool {
	return p.evaluated
}
