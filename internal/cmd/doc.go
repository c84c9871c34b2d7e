// Package cmd provides the command-line interface implementation for utilkit.
//
// This package contains all the subcommand implementations for the utilkit
// CLI tool. It uses the Cobra library for command structure and Fang for
// styled execution.
//
// The package is organized into the following commands:
//   - root: Main command coordinator and entry point
//   - dedup: Duplicate-file detection by content hash
//   - organize: Extension-based file indexing
//   - convert: CSV/JSON conversion (csv2json, json2csv)
//   - validate: JSON validation
//   - sysinfo: System and disk metrics
//   - fetch: URL fetching and status probing
//   - gen: Random record generation
//   - math: Fibonacci and primality helpers
//
// Each command is implemented as a separate file with its own constructor
// function that returns a *cobra.Command. The commands stay thin: they parse
// flags, call into the util, sysmon, webutil, dataset, and mathutil packages,
// and render results. Diagnostic output flows through logrus; library
// packages never log on their own unless handed a sink.
package cmd
