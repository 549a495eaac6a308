package cmd

import (
	"fmt"
	"sort"

	"github.com/maruel/natural"
	"github.com/spf13/cobra"

	"github.com/dmforge/constfold/internal/fixture"
	"github.com/dmforge/constfold/internal/objtree"
)

var listCmd = &cobra.Command{
	Use:   "list <fixture.yaml>",
	Short: "List every class in a fixture, naturally sorted by path",
	Long: `Load a class tree from a YAML fixture file and print every class
path with the variable names it declares or overrides, naturally sorted
(/obj/item2 before /obj/item10) for human-friendly reading. This sort is
presentation-only: it never affects fold order, which is unobservable —
every slot is reduced at most once regardless of when it is visited.`,
	Args: cobra.ExactArgs(1),
	RunE: listClasses,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func listClasses(_ *cobra.Command, args []string) error {
	tree, err := fixture.LoadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to load fixture %s: %w", args[0], err)
	}

	classes := tree.Classes()
	paths := make([]string, len(classes))
	byPath := make(map[string]*objtree.Class, len(classes))
	for i, c := range classes {
		paths[i] = c.Path
		byPath[c.Path] = c
	}
	sort.Sort(natural.Strings(paths))

	for _, path := range paths {
		c := byPath[path]
		names := c.VarNames()
		if len(names) == 0 {
			fmt.Println(path)
			continue
		}
		fmt.Printf("%s (%d var(s))\n", path, len(names))
		for _, name := range names {
			fmt.Printf("  %s\n", name)
		}
	}
	return nil
}
