package commands

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/zonotope"
)

func newHalfspacesCmd(a *app) *cobra.Command {
	var combinations bool
	cmd := &cobra.Command{
		Use:     "halfspaces FILE",
		Aliases: []string{"facets"},
		Short:   "Facet inequalities of the zonotope spanned by the generators in FILE",
		Long: `Compute every facet of the zonotope as a primitive integer inequality
normal·x + offset >= 0, sorted by offset and then by normal. The
generators must span the space. Use "-" to read stdin.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := loadGenerators(args[0], cmd.InOrStdin())
			if err != nil {
				return err
			}
			store, err := a.openCache()
			if err != nil {
				return err
			}
			if store != nil {
				defer store.Close()
			}

			a.log.Debug("halfspaces", "file", args[0], "n", g.Len(), "d", g.Dim())
			opts := append(a.options(cmd, store), zonotope.WithCombinations(combinations))
			hs, err := zonotope.Halfspaces(g, opts...)
			if err != nil {
				return err
			}
			r := newHalfspacesReport(g.Dim(), g.Len(), hs)

			return render(cmd.OutOrStdout(), a.cfg.Output, r, r.Table)
		},
	}
	cmd.Flags().BoolVarP(&combinations, "combinations", "c", false, "show the generators spanning each facet")

	return cmd
}
