package cmd

import (
	"github.com/spf13/cobra"

	"github.com/polyglotdev/utilkit/dataset"
)

// NewGenCmd creates and returns the gen subcommand for the utilkit CLI.
// It generates random test records.
func NewGenCmd() *cobra.Command {
	var (
		count      int
		sortKey    string
		descending bool
		stats      bool
	)

	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate random test records",
		Long: `Generate random test records as a JSON array.

Each record carries a sequential id, a UUID, a name, an age, a score, a
timestamp, and an active flag. Records can optionally be sorted by any key,
or summarized with --stats instead of printed.`,
		Run: func(cmd *cobra.Command, args []string) {
			runGen(count, sortKey, descending, stats)
		},
	}

	cmd.Flags().IntVarP(&count, "count", "c", 10, "Number of records to generate")
	cmd.Flags().StringVar(&sortKey, "sort-by", "", "Sort records by this key")
	cmd.Flags().BoolVar(&descending, "descending", false, "Sort in descending order")
	cmd.Flags().BoolVar(&stats, "stats", false, "Print statistics instead of the records")

	return cmd
}

func runGen(count int, sortKey string, descending, stats bool) {
	records := dataset.Generate(count)
	if sortKey != "" {
		records = dataset.SortByKey(records, sortKey, descending)
	}

	if stats {
		emitJSON(dataset.Statistics(records))
		return
	}
	emitJSON(records)
}
