package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/evolab/genepool/cmd/common"
	"github.com/evolab/genepool/internal/monitoring"
	"github.com/evolab/genepool/pkg/genetic"
	"github.com/evolab/genepool/pkg/reporting"
)

// Reference run defaults; overridable via flags or GENEPOOL_* env vars
const (
	DefaultGenerations    = 10
	DefaultPopulationSize = 20
	DefaultGeneCount      = 5
	DefaultMutationRate   = 0.1
	DefaultCrossoverRate  = 0.7
	DefaultFitness        = "sum"
)

type runFlags struct {
	populationSize int
	geneCount      int
	generations    int
	mutationRate   float64
	crossoverRate  float64
	fitnessName    string
	seed           int64
	xlsxPath       string
	metricsAddr    string
	quietTables    bool
}

func main() {
	commonFlags := common.RegisterCommonFlags()

	flags := runFlags{}
	flag.IntVar(&flags.populationSize, "population", DefaultPopulationSize, "Number of individuals in the population")
	flag.IntVar(&flags.geneCount, "genes", DefaultGeneCount, "Number of genes per chromosome")
	flag.IntVar(&flags.generations, "generations", DefaultGenerations, "Number of generations to run")
	flag.Float64Var(&flags.mutationRate, "mutation", DefaultMutationRate, "Per-gene mutation probability in [0, 1]")
	flag.Float64Var(&flags.crossoverRate, "crossover", DefaultCrossoverRate, "Per-gene crossover probability in [0, 1]")
	flag.StringVar(&flags.fitnessName, "fitness", DefaultFitness, "Fitness function: sum, sphere, or product")
	flag.Int64Var(&flags.seed, "seed", 0, "Random seed (0 = time-based)")
	flag.StringVar(&flags.xlsxPath, "xlsx", "", "Optional path for an Excel report of the run")
	flag.StringVar(&flags.metricsAddr, "metrics-addr", "", "Optional address to serve Prometheus metrics on (e.g. :9090)")
	flag.BoolVar(&flags.quietTables, "quiet-tables", false, "Skip per-generation population tables")
	flag.Parse()

	if *commonFlags.Version {
		common.PrintVersion("evolve")
		return
	}
	if *commonFlags.Help {
		flag.Usage()
		return
	}

	logger := common.NewLogger()
	logger.SetSilentMode(*commonFlags.Silent)
	logger.ShowEmojis = !*commonFlags.NoEmojis

	envLoader := common.NewEnvLoader(logger)
	envLoader.LoadEnvFile(*commonFlags.EnvFile)
	applyEnvDefaults(&flags, envLoader)

	validator := common.NewFlagValidator()
	validator.RequirePositiveInt("population", flags.populationSize)
	validator.RequirePositiveInt("genes", flags.geneCount)
	validator.RequirePositiveInt("generations", flags.generations)
	validator.RequireRate("mutation", flags.mutationRate)
	validator.RequireRate("crossover", flags.crossoverRate)
	if err := validator.Err(); err != nil {
		logger.Error("%v", err)
		os.Exit(1)
	}

	if err := run(flags, logger, *commonFlags.Silent); err != nil {
		logger.Error("%v", err)
		os.Exit(1)
	}
}

// applyEnvDefaults overrides any flag left at its default with the
// matching GENEPOOL_* environment variable.
func applyEnvDefaults(flags *runFlags, env *common.EnvLoader) {
	set := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if !set["population"] {
		flags.populationSize = env.GetEnvInt("GENEPOOL_POPULATION", flags.populationSize)
	}
	if !set["genes"] {
		flags.geneCount = env.GetEnvInt("GENEPOOL_GENES", flags.geneCount)
	}
	if !set["generations"] {
		flags.generations = env.GetEnvInt("GENEPOOL_GENERATIONS", flags.generations)
	}
	if !set["mutation"] {
		flags.mutationRate = env.GetEnvFloat("GENEPOOL_MUTATION_RATE", flags.mutationRate)
	}
	if !set["crossover"] {
		flags.crossoverRate = env.GetEnvFloat("GENEPOOL_CROSSOVER_RATE", flags.crossoverRate)
	}
	if !set["fitness"] {
		flags.fitnessName = env.GetEnvWithDefault("GENEPOOL_FITNESS", flags.fitnessName)
	}
}

func run(flags runFlags, logger *common.Logger, silent bool) error {
	fitnessFn, err := genetic.FitnessByName(flags.fitnessName)
	if err != nil {
		return err
	}

	seed := flags.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	params := genetic.Params{
		PopulationSize: flags.populationSize,
		GeneCount:      flags.geneCount,
		MutationRate:   flags.mutationRate,
		CrossoverRate:  flags.crossoverRate,
	}

	population, err := genetic.NewPopulation(params, fitnessFn, rng)
	if err != nil {
		return err
	}

	var health *monitoring.HealthChecker
	if flags.metricsAddr != "" {
		health = monitoring.NewHealthChecker()
		logger.Info("Serving Prometheus metrics on %s/metrics", flags.metricsAddr)
		monitoring.StartMetricsServer(flags.metricsAddr, health)
	}

	console := reporting.NewConsoleReporter(os.Stdout)
	if !silent {
		console.PrintRunHeader(params, flags.generations, flags.fitnessName)
	}

	history := make([]reporting.GenerationStats, 0, flags.generations)
	var finalSnapshot []genetic.Individual

	start := time.Now()
	for gen := 1; gen <= flags.generations; gen++ {
		if err := population.Evaluate(); err != nil {
			if health != nil {
				health.RecordError(err.Error())
			}
			return fmt.Errorf("generation %d: %w", gen, err)
		}

		snapshot := population.Snapshot()
		stats := statsFor(gen, snapshot)
		history = append(history, stats)
		monitoring.RecordEvaluation(flags.fitnessName, len(snapshot), stats.BestFitness, stats.AvgFitness)
		if health != nil {
			health.RecordProgress(gen, stats.BestFitness)
		}

		if !silent && !flags.quietTables {
			console.PrintGeneration(gen, snapshot)
		}
		finalSnapshot = snapshot

		if err := population.Advance(); err != nil {
			return fmt.Errorf("generation %d: %w", gen, err)
		}
		monitoring.RecordGeneration()
	}

	if !silent {
		best := bestOf(finalSnapshot)
		console.PrintSummary(history, best)
		logger.Success("Completed %d generations in %s", flags.generations, time.Since(start).Round(time.Millisecond))
	}

	if flags.xlsxPath != "" {
		excel := reporting.NewExcelReporter()
		if err := excel.WriteRun(flags.xlsxPath, history, finalSnapshot); err != nil {
			return fmt.Errorf("excel report: %w", err)
		}
		logger.Success("Excel report written to %s", flags.xlsxPath)
	}

	return nil
}

// statsFor summarizes an evaluated, descending-sorted snapshot
func statsFor(gen int, snapshot []genetic.Individual) reporting.GenerationStats {
	stats := reporting.GenerationStats{Generation: gen}
	if len(snapshot) == 0 {
		return stats
	}

	stats.BestFitness = snapshot[0].Fitness
	stats.WorstFitness = snapshot[len(snapshot)-1].Fitness

	sum := 0.0
	for _, ind := range snapshot {
		sum += ind.Fitness
	}
	stats.AvgFitness = sum / float64(len(snapshot))
	return stats
}

func bestOf(snapshot []genetic.Individual) *genetic.Individual {
	if len(snapshot) == 0 {
		return nil
	}
	best := snapshot[0]
	for _, ind := range snapshot[1:] {
		if ind.Fitness > best.Fitness {
			best = ind
		}
	}
	return &best
}
