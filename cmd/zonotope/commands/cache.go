package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/zonotope/cache"
)

func newCacheCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Result cache maintenance",
	}
	cmd.AddCommand(newCacheClearCmd(a))

	return cmd
}

func newCacheClearCmd(a *app) *cobra.Command {
	var kind string
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove cached results",
		Long: `Remove cached results. With --kind only volumes or only halfspace
lists are removed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var prefixes []cache.Key
			switch kind {
			case "":
				prefixes = []cache.Key{{cache.Namespace}}
			case "volume":
				prefixes = []cache.Key{{cache.Namespace, "volume"}}
			case "halfspaces":
				prefixes = []cache.Key{{cache.Namespace, "halfspaces"}, {cache.Namespace, "halfspaces+comb"}}
			default:
				return fmt.Errorf("unknown kind %q (want volume or halfspaces)", kind)
			}

			if a.cfg.NoCache {
				return fmt.Errorf("cache is disabled")
			}
			store, err := a.openCache()
			if err != nil {
				return err
			}
			defer store.Close()

			total := 0
			for _, p := range prefixes {
				n, err := store.Clear(cmd.Context(), p)
				if err != nil {
					return fmt.Errorf("clear %s: %w", p, err)
				}
				total += n
			}
			a.log.Debug("cache cleared", "dir", a.cfg.CacheDir, "entries", total)
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "removed %d cached results\n", total)

			return err
		},
	}
	cmd.Flags().StringVar(&kind, "kind", "", "volume or halfspaces (default: everything)")

	return cmd
}
