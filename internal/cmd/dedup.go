package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/taigrr/colorhash"

	"github.com/polyglotdev/utilkit/util"
)

// NewDedupCmd creates and returns the dedup subcommand for the utilkit CLI.
// It finds duplicate files under a directory tree by content hash.
func NewDedupCmd() *cobra.Command {
	var (
		path   string
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "dedup [PATH]",
		Short: "Find duplicate files by content hash",
		Long: `Find duplicate files under a directory tree.

Every regular file is digested with SHA-256, streamed in fixed-size chunks so
arbitrarily large files cost constant memory. Files whose content matches are
grouped together; each group is listed in the order the files were discovered.
Files that cannot be read are skipped and reported on stderr, and a missing
directory simply produces no groups.`,
		Args: cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) > 0 {
				path = args[0]
			}
			runDedup(path, asJSON)
		},
	}

	cmd.Flags().StringVarP(&path, "path", "p", "./", "Directory tree to scan")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit duplicate groups as JSON")

	return cmd
}

func runDedup(path string, asJSON bool) {
	groups := util.FindDuplicates(path, util.WithLogger(logrus.StandardLogger()))

	if asJSON {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(groups); err != nil {
			logrus.Fatalf("encoding result: %v", err)
		}
		return
	}

	if len(groups) == 0 {
		fmt.Println("No duplicate files found.")
		return
	}
	for digest, paths := range groups {
		// Stable short label per digest, bucketed the same way on every run.
		fmt.Printf("group %03d  %s  (%d files)\n",
			colorhash.HashString(digest)%1000, digest[:12], len(paths))
		for _, p := range paths {
			fmt.Printf("  - %s\n", p)
		}
	}
}
