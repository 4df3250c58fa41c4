package commands

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/zonotope"
)

func newVolumeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "volume FILE",
		Short: "Exact volume of the zonotope spanned by the generators in FILE",
		Long: `Compute the exact Euclidean volume: the sum of |det| over every
linearly independent d-subset of generators. Use "-" to read stdin.`,
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

			a.log.Debug("volume", "file", args[0], "n", g.Len(), "d", g.Dim())
			v, err := zonotope.Volume(g, a.options(cmd, store)...)
			if err != nil {
				return err
			}
			r := newVolumeReport(g.Dim(), g.Len(), v)

			return render(cmd.OutOrStdout(), a.cfg.Output, r, r.Table)
		},
	}
}
