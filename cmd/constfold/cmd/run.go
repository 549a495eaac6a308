package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmforge/constfold/internal/errors"
	"github.com/dmforge/constfold/internal/fixture"
	"github.com/dmforge/constfold/internal/report"
	"github.com/dmforge/constfold/pkg/constfold"
)

var (
	queryPath string
	noColor   bool
)

var runCmd = &cobra.Command{
	Use:   "run <fixture.yaml>",
	Short: "Fold a class-tree fixture and print the JSON report",
	Long: `Load a class tree from a YAML fixture file, fold every
constant-evaluable variable initializer in it, and print the resulting
report as JSON.

Examples:
  # Fold a fixture and print the full report
  constfold run tree.yaml

  # Fold a fixture and pull out one class's folded value
  constfold run tree.yaml --query 'classes./datum/thing.vars.x.value'`,
	Args: cobra.ExactArgs(1),
	RunE: runFold,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&queryPath, "query", "q", "", "gjson path to extract a single value from the report instead of printing it whole")
	runCmd.Flags().BoolVar(&noColor, "no-color", false, "disable colorized JSON output")
}

func runFold(_ *cobra.Command, args []string) error {
	path := args[0]

	tree, err := fixture.LoadFile(path)
	if err != nil {
		return fmt.Errorf("failed to load fixture %s: %w", path, err)
	}

	diags, evalErr := constfold.Evaluate(tree)

	doc, err := report.Build(tree, diags)
	if err != nil {
		return fmt.Errorf("failed to build report: %w", err)
	}

	if queryPath != "" {
		value, ok := report.Query(doc, queryPath)
		if !ok {
			return fmt.Errorf("query %q matched nothing", queryPath)
		}
		fmt.Println(value)
		return evalErr
	}

	fmt.Println(string(report.Pretty(doc, !noColor)))

	for _, d := range diags {
		f := errors.Formatted{Diagnostic: d, File: path}
		fmt.Fprintln(os.Stderr, f.Format(!noColor))
	}

	return evalErr
}
