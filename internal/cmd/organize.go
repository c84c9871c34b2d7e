package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/polyglotdev/utilkit/util"
)

// NewOrganizeCmd creates and returns the organize subcommand for the utilkit
// CLI. It indexes the files in a directory by extension.
func NewOrganizeCmd() *cobra.Command {
	var (
		path      string
		recursive bool
		asJSON    bool
	)

	cmd := &cobra.Command{
		Use:   "organize [PATH]",
		Short: "Index files by extension",
		Long: `Index the files in a directory by lowercased extension.

Hidden files are skipped, as are node_modules, .git, target, and __pycache__
directories when scanning recursively. The pass indexes at most 100 files.`,
		Args: cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) > 0 {
				path = args[0]
			}
			runOrganize(path, recursive, asJSON)
		},
	}

	cmd.Flags().StringVarP(&path, "path", "p", "./", "Directory to index")
	cmd.Flags().BoolVarP(&recursive, "recursive", "r", false, "Descend into subdirectories")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit the index as JSON")

	return cmd
}

func runOrganize(path string, recursive, asJSON bool) {
	organized := util.OrganizeByExtension(path, recursive,
		util.WithLogger(logrus.StandardLogger()))

	if asJSON {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(organized); err != nil {
			logrus.Fatalf("encoding result: %v", err)
		}
		return
	}

	extensions := make([]string, 0, len(organized))
	for ext := range organized {
		extensions = append(extensions, ext)
	}
	sort.Strings(extensions)

	for _, ext := range extensions {
		fmt.Printf("%s (%d)\n", ext, len(organized[ext]))
		for _, p := range organized[ext] {
			fmt.Printf("  - %s\n", p)
		}
	}
}
