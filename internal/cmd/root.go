package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/polyglotdev/utilkit/version"
)

// NewRootCmd creates and returns the root cobra command for the utilkit CLI.
// It sets up all subcommands, command groups, and basic configuration.
func NewRootCmd() *cobra.Command {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:   "utilkit",
		Short: "utilkit - a toolbox of file, data, system, and web utilities",
		Long: `utilkit is a grab-bag of developer utilities.

It bundles the small jobs that otherwise end up as one-off scripts: finding
duplicate files by content hash, organizing directories by extension,
converting between CSV and JSON, validating JSON, inspecting system and disk
metrics, probing URLs, and generating random test data.

Use subcommands to perform different operations:
  - dedup: Find duplicate files by content hash
  - organize: Index files by extension
  - convert: Convert between CSV and JSON
  - validate: Check files for valid JSON
  - sysinfo: Show system and disk metrics
  - fetch: Fetch a URL or probe its status
  - gen: Generate random test records
  - math: Fibonacci and primality helpers`,
		Version: version.GetFullVersion(),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				logrus.SetLevel(logrus.DebugLevel)
			}
		},
	}

	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable debug logging")

	groupFiles := "files"
	groupData := "data"
	groupSystem := "system"

	rootCmd.AddGroup(&cobra.Group{
		ID:    groupFiles,
		Title: "File Operations",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    groupData,
		Title: "Data Operations",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    groupSystem,
		Title: "System and Web Operations",
	})

	dedupCmd := NewDedupCmd()
	organizeCmd := NewOrganizeCmd()
	convertCmd := NewConvertCmd()
	validateCmd := NewValidateCmd()
	sysinfoCmd := NewSysinfoCmd()
	fetchCmd := NewFetchCmd()
	genCmd := NewGenCmd()
	mathCmd := NewMathCmd()

	dedupCmd.GroupID = groupFiles
	organizeCmd.GroupID = groupFiles
	convertCmd.GroupID = groupData
	validateCmd.GroupID = groupData
	genCmd.GroupID = groupData
	mathCmd.GroupID = groupData
	sysinfoCmd.GroupID = groupSystem
	fetchCmd.GroupID = groupSystem

	rootCmd.AddCommand(dedupCmd)
	rootCmd.AddCommand(organizeCmd)
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(sysinfoCmd)
	rootCmd.AddCommand(fetchCmd)
	rootCmd.AddCommand(genCmd)
	rootCmd.AddCommand(mathCmd)

	return rootCmd
}
