package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/polyglotdev/utilkit/sysmon"
)

// NewSysinfoCmd creates and returns the sysinfo subcommand for the utilkit
// CLI. It reports host metrics and per-path disk usage.
func NewSysinfoCmd() *cobra.Command {
	var (
		diskPath string
		asJSON   bool
	)

	cmd := &cobra.Command{
		Use:   "sysinfo",
		Short: "Show system and disk metrics",
		Long: `Show a snapshot of basic system information.

Reports platform, kernel, architecture, CPU count, memory, and root-disk
usage. With --disk, reports utilization of the filesystem containing the
given path instead.`,
		Run: func(cmd *cobra.Command, args []string) {
			runSysinfo(diskPath, asJSON)
		},
	}

	cmd.Flags().StringVar(&diskPath, "disk", "", "Report disk usage for this path only")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit metrics as JSON")

	return cmd
}

func runSysinfo(diskPath string, asJSON bool) {
	if diskPath != "" {
		usage, err := sysmon.DiskUsage(diskPath)
		if err != nil {
			logrus.Fatal(err)
		}
		if asJSON {
			emitJSON(usage)
			return
		}
		fmt.Printf("Disk usage for %s\n", usage.Path)
		fmt.Printf("  Total: %s\n", humanize.Bytes(usage.Total))
		fmt.Printf("  Used:  %s (%.1f%%)\n", humanize.Bytes(usage.Used), usage.UsedPercent)
		fmt.Printf("  Free:  %s\n", humanize.Bytes(usage.Free))
		return
	}

	info, err := sysmon.Collect()
	if err != nil {
		logrus.Fatal(err)
	}
	if asJSON {
		emitJSON(info)
		return
	}
	fmt.Printf("Platform:     %s %s\n", info.Platform, info.PlatformRelease)
	fmt.Printf("Architecture: %s\n", info.Architecture)
	fmt.Printf("CPUs:         %d\n", info.CPUCount)
	fmt.Printf("Memory:       %s available of %s\n",
		humanize.Bytes(info.MemoryAvailable), humanize.Bytes(info.MemoryTotal))
	fmt.Printf("Root disk:    %.1f%% used\n", info.DiskUsedPercent)
}

func emitJSON(v any) {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		logrus.Fatalf("encoding result: %v", err)
	}
}
