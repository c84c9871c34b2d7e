// Package main provides the utilkit command-line interface.
//
// utilkit bundles the small developer jobs that otherwise end up as one-off
// scripts: duplicate-file detection by content hash, extension-based file
// organization, CSV/JSON conversion, JSON validation, system and disk
// metrics, URL fetching, and random test-data generation.
//
// The main binary supports multiple subcommands:
//   - dedup: Find duplicate files by content hash
//   - organize: Index files by extension
//   - convert: Convert between CSV and JSON
//   - validate: Check files for valid JSON
//   - sysinfo: Show system and disk metrics
//   - fetch: Fetch a URL or probe its status
//   - gen: Generate random test records
//   - math: Fibonacci and primality helpers
package main
