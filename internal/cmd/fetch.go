package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/polyglotdev/utilkit/webutil"
)

// NewFetchCmd creates and returns the fetch subcommand for the utilkit CLI.
// It fetches URL content or probes URL reachability.
func NewFetchCmd() *cobra.Command {
	var (
		statusOnly bool
		timeout    time.Duration
		headers    []string
	)

	cmd := &cobra.Command{
		Use:   "fetch URL",
		Short: "Fetch a URL or probe its status",
		Long: `Fetch the content of a URL, or with --status just probe it.

A plain fetch issues a GET and writes the body to stdout. With --status a
HEAD request is issued instead and the status code, accessibility, and
response headers are reported. Probe failures are reported, not fatal.`,
		Args: cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			runFetch(args[0], statusOnly, timeout, headers)
		},
	}

	cmd.Flags().BoolVar(&statusOnly, "status", false, "Probe with HEAD instead of fetching the body")
	cmd.Flags().DurationVar(&timeout, "timeout", webutil.DefaultTimeout, "Request timeout")
	cmd.Flags().StringArrayVarP(&headers, "header", "H", nil, "Extra request header as 'Name: value' (repeatable)")

	return cmd
}

func runFetch(url string, statusOnly bool, timeout time.Duration, rawHeaders []string) {
	client := webutil.NewClient(timeout)

	if statusOnly {
		emitJSON(client.CheckStatus(url))
		return
	}

	headers := make(map[string]string, len(rawHeaders))
	for _, raw := range rawHeaders {
		name, value, ok := strings.Cut(raw, ":")
		if !ok {
			logrus.Fatalf("malformed header %q, want 'Name: value'", raw)
		}
		headers[strings.TrimSpace(name)] = strings.TrimSpace(value)
	}

	body, err := client.Fetch(url, headers)
	if err != nil {
		logrus.Fatal(err)
	}
	fmt.Print(body)
}
