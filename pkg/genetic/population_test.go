package genetic

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evolab/genepool/internal/errors"
)

func newTestRNG() *rand.Rand {
	return rand.New(rand.NewSource(42))
}

// TestNewPopulation_ShapeInvariants tests that a fresh population has the
// requested size and gene count with genes in [0, 1)
func TestNewPopulation_ShapeInvariants(t *testing.T) {
	params := Params{PopulationSize: 20, GeneCount: 5, MutationRate: 0.1, CrossoverRate: 0.7}

	pop, err := NewPopulation(params, SumFitness, newTestRNG())
	require.NoError(t, err)

	assert.Equal(t, 20, pop.Size())
	assert.Equal(t, 5, pop.GeneCount())
	assert.False(t, pop.Evaluated())

	for _, ind := range pop.Snapshot() {
		require.Len(t, ind.Genes, 5)
		assert.Equal(t, 0.0, ind.Fitness, "fitness should start unevaluated")
		for _, gene := range ind.Genes {
			assert.GreaterOrEqual(t, gene, 0.0)
			assert.Less(t, gene, 1.0)
		}
	}
}

// TestNewPopulation_InvalidParams tests that degenerate parameters are rejected
func TestNewPopulation_InvalidParams(t *testing.T) {
	tests := []struct {
		name   string
		params Params
	}{
		{"zero population", Params{PopulationSize: 0, GeneCount: 5, MutationRate: 0.1, CrossoverRate: 0.7}},
		{"zero genes", Params{PopulationSize: 20, GeneCount: 0, MutationRate: 0.1, CrossoverRate: 0.7}},
		{"negative population", Params{PopulationSize: -1, GeneCount: 5, MutationRate: 0.1, CrossoverRate: 0.7}},
		{"mutation rate above one", Params{PopulationSize: 20, GeneCount: 5, MutationRate: 1.5, CrossoverRate: 0.7}},
		{"negative mutation rate", Params{PopulationSize: 20, GeneCount: 5, MutationRate: -0.1, CrossoverRate: 0.7}},
		{"crossover rate above one", Params{PopulationSize: 20, GeneCount: 5, MutationRate: 0.1, CrossoverRate: 1.1}},
		{"negative crossover rate", Params{PopulationSize: 20, GeneCount: 5, MutationRate: 0.1, CrossoverRate: -0.5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pop, err := NewPopulation(tt.params, SumFitness, newTestRNG())
			assert.Nil(t, pop)
			require.Error(t, err)
			assert.True(t, errors.IsCategory(err, errors.ErrorCategoryValidation))
		})
	}
}

// TestNewPopulation_NilFitnessFunc tests that a fitness function is required
func TestNewPopulation_NilFitnessFunc(t *testing.T) {
	pop, err := NewPopulation(DefaultParams(), nil, newTestRNG())
	assert.Nil(t, pop)
	require.Error(t, err)
	assert.True(t, errors.IsCategory(err, errors.ErrorCategoryValidation))
}

// TestEvaluate_FitnessAndOrdering tests that evaluation stores the exact
// fitness function result for every individual and sorts descending
func TestEvaluate_FitnessAndOrdering(t *testing.T) {
	params := Params{PopulationSize: 30, GeneCount: 4, MutationRate: 0.1, CrossoverRate: 0.7}
	pop, err := NewPopulation(params, SumFitness, newTestRNG())
	require.NoError(t, err)

	require.NoError(t, pop.Evaluate())
	assert.True(t, pop.Evaluated())

	snapshot := pop.Snapshot()
	for i, ind := range snapshot {
		assert.Equal(t, SumFitness(ind.Genes), ind.Fitness, "individual %d fitness should match the fitness function", i)
		if i > 0 {
			assert.GreaterOrEqual(t, snapshot[i-1].Fitness, ind.Fitness, "population should be sorted non-increasing")
		}
	}
}

// TestEvaluate_NonFiniteFitness tests that NaN and infinite fitness values
// are rejected instead of entering the sort
func TestEvaluate_NonFiniteFitness(t *testing.T) {
	tests := []struct {
		name  string
		value float64
	}{
		{"nan", math.NaN()},
		{"positive infinity", math.Inf(1)},
		{"negative infinity", math.Inf(-1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pop, err := NewPopulation(DefaultParams(), func(genes []float64) float64 {
				return tt.value
			}, newTestRNG())
			require.NoError(t, err)

			err = pop.Evaluate()
			require.Error(t, err)
			assert.True(t, errors.IsCategory(err, errors.ErrorCategoryEvaluation))
			assert.False(t, pop.Evaluated())
		})
	}
}

// TestAdvance_BeforeEvaluate tests that advancing an unevaluated
// population is rejected rather than selecting on meaningless fitness
func TestAdvance_BeforeEvaluate(t *testing.T) {
	pop, err := NewPopulation(DefaultParams(), SumFitness, newTestRNG())
	require.NoError(t, err)

	err = pop.Advance()
	require.Error(t, err)
	assert.True(t, errors.IsCategory(err, errors.ErrorCategorySelection))
}

// TestAdvance_KeepsShape tests that population size and gene count are
// preserved across many generations
func TestAdvance_KeepsShape(t *testing.T) {
	params := Params{PopulationSize: 12, GeneCount: 7, MutationRate: 0.2, CrossoverRate: 0.6}
	pop, err := NewPopulation(params, SumFitness, newTestRNG())
	require.NoError(t, err)

	for gen := 0; gen < 10; gen++ {
		require.NoError(t, pop.Evaluate())
		require.NoError(t, pop.Advance())

		assert.Equal(t, 12, pop.Size())
		for _, ind := range pop.Snapshot() {
			assert.Len(t, ind.Genes, 7)
		}
	}
	assert.Equal(t, 10, pop.Generation())
}

// TestAdvance_ZeroFitnessFallback tests that an all-zero-fitness
// population advances through the uniform selection fallback instead of
// crashing or hanging
func TestAdvance_ZeroFitnessFallback(t *testing.T) {
	pop, err := NewPopulation(DefaultParams(), func(genes []float64) float64 {
		return 0.0
	}, newTestRNG())
	require.NoError(t, err)

	require.NoError(t, pop.Evaluate())
	require.NoError(t, pop.Advance())
	assert.Equal(t, DefaultParams().PopulationSize, pop.Size())
}

// TestAdvance_OffspringCopyParentsExactly tests the reference scenario:
// with mutation rate 0 and crossover rate 0 every offspring is an exact
// copy of its first parent, so across generations every chromosome must
// match one of the initial chromosomes gene for gene
func TestAdvance_OffspringCopyParentsExactly(t *testing.T) {
	params := Params{PopulationSize: 4, GeneCount: 2, MutationRate: 0.0, CrossoverRate: 0.0}
	pop, err := NewPopulation(params, SumFitness, newTestRNG())
	require.NoError(t, err)

	initial := pop.Snapshot()

	matchesInitial := func(genes []float64) bool {
		for _, ind := range initial {
			same := true
			for i := range genes {
				if genes[i] != ind.Genes[i] {
					same = false
					break
				}
			}
			if same {
				return true
			}
		}
		return false
	}

	for gen := 0; gen < 5; gen++ {
		require.NoError(t, pop.Evaluate())
		require.NoError(t, pop.Advance())

		for _, ind := range pop.Snapshot() {
			assert.True(t, matchesInitial(ind.Genes), "generation %d produced a chromosome not copied from the initial population", gen+1)
		}
	}
}

// TestAdvance_MutationRateOne tests that with mutation rate 1 every gene
// of every offspring is freshly redrawn
func TestAdvance_MutationRateOne(t *testing.T) {
	params := Params{PopulationSize: 10, GeneCount: 5, MutationRate: 1.0, CrossoverRate: 0.0}
	pop, err := NewPopulation(params, SumFitness, newTestRNG())
	require.NoError(t, err)

	initialValues := make(map[float64]bool)
	for _, ind := range pop.Snapshot() {
		for _, gene := range ind.Genes {
			initialValues[gene] = true
		}
	}

	require.NoError(t, pop.Evaluate())
	require.NoError(t, pop.Advance())

	// A fresh uniform draw colliding with a parent value is vanishingly
	// unlikely, so any survivor indicates a gene that was not redrawn.
	for _, ind := range pop.Snapshot() {
		for _, gene := range ind.Genes {
			assert.False(t, initialValues[gene], "gene value %v survived a rate-1 mutation", gene)
			assert.GreaterOrEqual(t, gene, 0.0)
			assert.Less(t, gene, 1.0)
		}
	}
}

// TestSnapshot_NoAliasing tests that snapshots never share gene storage
// with the live population
func TestSnapshot_NoAliasing(t *testing.T) {
	pop, err := NewPopulation(DefaultParams(), SumFitness, newTestRNG())
	require.NoError(t, err)

	before := pop.Snapshot()
	mutated := pop.Snapshot()
	for i := range mutated {
		for j := range mutated[i].Genes {
			mutated[i].Genes[j] = -1.0
		}
	}

	after := pop.Snapshot()
	assert.Equal(t, before, after, "writing through a snapshot must not touch the population")
}

// TestNilRNG tests that a nil random source gets a time-seeded default
func TestNilRNG(t *testing.T) {
	pop, err := NewPopulation(DefaultParams(), SumFitness, nil)
	require.NoError(t, err)
	require.NoError(t, pop.Evaluate())
	require.NoError(t, pop.Advance())
}
