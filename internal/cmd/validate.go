package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/polyglotdev/utilkit/util"
)

// NewValidateCmd creates and returns the validate subcommand for the utilkit
// CLI. It checks files for syntactically valid JSON.
func NewValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate FILE...",
		Short: "Check files for valid JSON",
		Long: `Check that each named file contains syntactically valid JSON.

Every file is checked even after a failure. The command exits nonzero if any
file is invalid or unreadable.`,
		Args: cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			runValidate(args)
		},
	}

	return cmd
}

func runValidate(paths []string) {
	invalid := 0
	for _, path := range paths {
		if err := util.ValidateJSON(path); err != nil {
			logrus.Error(err)
			invalid++
			continue
		}
		fmt.Printf("%s: valid\n", path)
	}

	if invalid > 0 {
		fmt.Printf("\n%d of %d files failed validation\n", invalid, len(paths))
		os.Exit(1)
	}
}
