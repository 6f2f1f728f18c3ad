package reporting

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/evolab/genepool/pkg/genetic"
)

// ConsoleReporter renders evolution progress as rounded tables on a
// text stream.
type ConsoleReporter struct {
	out io.Writer
}

// NewConsoleReporter creates a console reporter writing to out; a nil out
// defaults to stdout.
func NewConsoleReporter(out io.Writer) *ConsoleReporter {
	if out == nil {
		out = os.Stdout
	}
	return &ConsoleReporter{out: out}
}

// PrintRunHeader prints the run configuration before the first generation
func (r *ConsoleReporter) PrintRunHeader(params genetic.Params, generations int, fitnessName string) {
	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.SetTitle("EVOLUTION RUN")
	t.SetStyle(table.StyleRounded)

	t.AppendRows([]table.Row{
		{"👥 Population Size", params.PopulationSize},
		{"🧬 Gene Count", params.GeneCount},
		{"🎲 Mutation Rate", fmt.Sprintf("%.2f", params.MutationRate)},
		{"🔀 Crossover Rate", fmt.Sprintf("%.2f", params.CrossoverRate)},
		{"🔁 Generations", generations},
		{"🎯 Fitness", fitnessName},
	})

	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, WidthMin: 18, Align: text.AlignLeft},
		{Number: 2, WidthMin: 12, Align: text.AlignLeft},
	})

	t.Render()
	fmt.Fprintln(r.out)
}

// PrintGeneration prints every individual's rank, fitness, and genes for
// one evaluated generation.
func (r *ConsoleReporter) PrintGeneration(gen int, individuals []genetic.Individual) {
	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.SetTitle(fmt.Sprintf("GENERATION %d", gen))
	t.SetStyle(table.StyleRounded)

	t.AppendHeader(table.Row{"Rank", "Fitness", "Genes"})
	for i, ind := range individuals {
		t.AppendRow(table.Row{i + 1, fmt.Sprintf("%.2f", ind.Fitness), formatGenes(ind.Genes)})
	}

	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
		{Number: 2, Align: text.AlignRight},
		{Number: 3, Align: text.AlignLeft},
	})

	t.Render()
	fmt.Fprintln(r.out)
}

// PrintSummary prints the per-generation fitness trajectory and the best
// individual seen in the final generation.
func (r *ConsoleReporter) PrintSummary(history []GenerationStats, best *genetic.Individual) {
	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.SetTitle("RUN SUMMARY")
	t.SetStyle(table.StyleRounded)

	t.AppendHeader(table.Row{"Generation", "Best", "Avg", "Worst"})
	for _, stats := range history {
		t.AppendRow(table.Row{
			stats.Generation,
			fmt.Sprintf("%.2f", stats.BestFitness),
			fmt.Sprintf("%.2f", stats.AvgFitness),
			fmt.Sprintf("%.2f", stats.WorstFitness),
		})
	}
	t.Render()

	if best != nil {
		fmt.Fprintf(r.out, "\n🏆 Best individual: fitness %.2f, genes [%s]\n", best.Fitness, formatGenes(best.Genes))
	}
}

func formatGenes(genes []float64) string {
	parts := make([]string, len(genes))
	for i, g := range genes {
		parts[i] = fmt.Sprintf("%.3f", g)
	}
	return strings.Join(parts, " ")
}
