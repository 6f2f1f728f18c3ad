package genetic

// Individual represents a single candidate solution: a fixed-length
// chromosome of real-valued genes plus a cached fitness score.
//
// Fitness is meaningful only immediately after an evaluation pass; any
// structural change to Genes (crossover, mutation) leaves it stale until
// the population is re-evaluated.
type Individual struct {
	Genes   []float64
	Fitness float64
}

// Clone creates a deep copy of the individual
func (ind *Individual) Clone() *Individual {
	genes := make([]float64, len(ind.Genes))
	copy(genes, ind.Genes)
	return &Individual{
		Genes:   genes,
		Fitness: ind.Fitness,
	}
}

// Reset clears the cached fitness so the individual is re-evaluated
func (ind *Individual) Reset() {
	ind.Fitness = 0.0
}
