package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/polyglotdev/utilkit/util"
)

// NewConvertCmd creates and returns the convert subcommand for the utilkit
// CLI. It converts tabular data between CSV and JSON.
func NewConvertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert between CSV and JSON",
		Long: `Convert tabular data between CSV and JSON.

csv2json turns a CSV file with a header row into a JSON array of objects.
json2csv turns a JSON array of objects into a CSV file whose header is the
first object's keys in sorted order.`,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "csv2json INPUT OUTPUT",
		Short: "Convert a CSV file to a JSON array of objects",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			if err := util.CSVToJSON(args[0], args[1],
				util.WithLogger(logrus.StandardLogger())); err != nil {
				logrus.Fatalf("converting %s: %v", args[0], err)
			}
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "json2csv INPUT OUTPUT",
		Short: "Convert a JSON array of objects to a CSV file",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			if err := util.JSONToCSV(args[0], args[1],
				util.WithLogger(logrus.StandardLogger())); err != nil {
				logrus.Fatalf("converting %s: %v", args[0], err)
			}
		},
	})

	return cmd
}
