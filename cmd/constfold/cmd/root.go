package cmd

import (
	"github.com/spf13/cobra"
)

// Version information, set by build flags at link time.
var (
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "constfold",
	Short: "Constant folder for a class-tree scripting language",
	Long: `constfold loads a declarative class-tree fixture (a stand-in for a
real parser's object tree) and reduces every constant-evaluable variable
initializer in it to a literal value, reporting the result as JSON.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
}
