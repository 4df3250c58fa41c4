package commands

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/zonotope/cmd/zonotope/internal/build"
)

func newVersionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			fmt.Fprintln(w, build.String())
			if a.verbose {
				fmt.Fprintf(w, "  go:     %s\n", runtime.Version())
				fmt.Fprintf(w, "  config: %s\n", a.cfg.Path)
				fmt.Fprintf(w, "  cache:  %s\n", a.cfg.CacheDir)
			}

			return nil
		},
	}
}
