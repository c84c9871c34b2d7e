package cmd

import (
	"fmt"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/polyglotdev/utilkit/mathutil"
)

// NewMathCmd creates and returns the math subcommand for the utilkit CLI.
// It exposes the small arithmetic helpers.
func NewMathCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "math",
		Short: "Fibonacci and primality helpers",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "fib N",
		Short: "Print the Nth Fibonacci number",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			n := parseIntArg(args[0])
			result, err := mathutil.Fibonacci(n)
			if err != nil {
				logrus.Fatal(err)
			}
			fmt.Println(result)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "prime N",
		Short: "Report whether N is prime",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			n := parseIntArg(args[0])
			if mathutil.IsPrime(n) {
				fmt.Printf("%d is prime\n", n)
			} else {
				fmt.Printf("%d is not prime\n", n)
			}
		},
	})

	return cmd
}

func parseIntArg(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil {
		logrus.Fatalf("not a number: %q", raw)
	}
	return n
}
