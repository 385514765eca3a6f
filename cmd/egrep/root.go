package main

import (
	"github.com/spf13/cobra"

	"github.com/coregx/litegrep"
	"github.com/coregx/litegrep/internal/diagnostics"
	"github.com/coregx/litegrep/internal/lineio"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "egrep <pattern> <path>",
		Short:         "Print lines of path matching pattern",
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args[0], args[1])
		},
	}
	return cmd
}

func run(cmd *cobra.Command, pattern, path string) error {
	matches, err := search(pattern, path)
	if err != nil {
		return err
	}
	return diagnostics.PrintMatches(cmd.OutOrStdout(), matches)
}

// execute runs cmd and reports any failure — a bad argument count, a file
// error, or a compile error alike — as a single "grep: ..." diagnostic on
// cmd.ErrOrStderr(). It returns the process exit code.
func execute(cmd *cobra.Command) int {
	if err := cmd.Execute(); err != nil {
		diagnostics.New(cmd.ErrOrStderr()).Fail(err)
		return 1
	}
	return 0
}

// search reads every line of path and returns those matching pattern,
// in file order.
func search(pattern, path string) ([]string, error) {
	lines, err := lineio.ReadLines(path)
	if err != nil {
		return nil, err
	}

	re, err := litegrep.Compile(pattern)
	if err != nil {
		return nil, err
	}

	var matched []string
	for _, line := range lines {
		if re.MatchString(line) {
			matched = append(matched, line)
		}
	}
	return matched, nil
}
