package commands

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/zonotope"
	"github.com/katalvlaran/zonotope/cache"
	"github.com/katalvlaran/zonotope/cmd/zonotope/internal/config"
)

// app carries the flag values and the resolved configuration of one run.
type app struct {
	// Global flags
	verbose    bool
	configPath string
	workers    int
	output     string
	noCache    bool
	cacheDir   string

	cfg *config.Config
	log *slog.Logger
}

// Execute runs the root command.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "zonotope",
		Short: "Exact volume and facets of zonotopes",
		Long: `zonotope - exact invariants of the Minkowski sum of line segments.

Generators are read from a YAML (or JSON) file, one generator per row.
Entries may be integers, decimals or fractions written as strings:

  generators:
    - [1, 0]
    - [0, "1/2"]
    - [1.5, 1]

Results are cached by the digest of the generator matrix. The cache lives
in the OS cache directory unless --cache-dir or the config file says
otherwise.

Configuration is read from the OS config directory:
  macOS:   ~/Library/Application Support/zonotope/config.yaml
  Linux:   ~/.config/zonotope/config.yaml
  Windows: %AppData%/zonotope/config.yaml

Examples:
  zonotope volume cube.yaml
  zonotope halfspaces --combinations -o yaml hexagon.yaml
  cat gens.yaml | zonotope volume -
  zonotope cache clear`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "debug logging")
	pf.StringVar(&a.configPath, "config", "", "config file (default: OS config dir)")
	pf.IntVarP(&a.workers, "workers", "w", 1, "goroutines used by the enumeration")
	pf.StringVarP(&a.output, "output", "o", "table", fmt.Sprintf("output format %v", config.Formats))
	pf.BoolVar(&a.noCache, "no-cache", false, "disable the result cache")
	pf.StringVar(&a.cacheDir, "cache-dir", "", "result cache directory")

	root.AddCommand(
		newVolumeCmd(a),
		newHalfspacesCmd(a),
		newCacheCmd(a),
		newVersionCmd(a),
	)

	return root
}

// setup loads the configuration file, lets explicitly set flags override
// it and installs the logger.
func (a *app) setup(cmd *cobra.Command) error {
	// 1. Config file
	var err error
	if a.configPath != "" {
		a.cfg, err = config.LoadFrom(a.configPath)
	} else {
		a.cfg, err = config.Load()
	}
	if err != nil {
		return err
	}

	// 2. Flags win over the file
	flags := cmd.Flags()
	if flags.Changed("workers") {
		a.cfg.Workers = a.workers
	}
	if flags.Changed("output") {
		a.cfg.Output = a.output
	}
	if flags.Changed("no-cache") {
		a.cfg.NoCache = a.noCache
	}
	if flags.Changed("cache-dir") {
		a.cfg.CacheDir = a.cacheDir
	}
	if a.verbose {
		a.cfg.LogLevel = "debug"
	}
	if err = a.cfg.Validate(); err != nil {
		return err
	}

	// 3. Logger
	level, _ := a.cfg.Level()
	a.log = slog.New(tint.NewHandler(cmd.ErrOrStderr(), &tint.Options{
		Level:      level,
		TimeFormat: time.TimeOnly,
	}))
	a.log.Debug("config", "path", a.cfg.Path, "workers", a.cfg.Workers, "output", a.cfg.Output,
		"cache_dir", a.cfg.CacheDir, "no_cache", a.cfg.NoCache)

	return nil
}

// openCache opens the Badger result cache, or returns nil when caching is
// disabled. The caller closes a non-nil store.
func (a *app) openCache() (cache.Store, error) {
	if a.cfg.NoCache {
		return nil, nil
	}
	if a.cfg.CacheDir == "" {
		return nil, fmt.Errorf("no cache directory; set --cache-dir or use --no-cache")
	}
	s, err := cache.NewBadger(cache.BadgerOptions{Dir: a.cfg.CacheDir, Logger: a.log})
	if err != nil {
		return nil, err
	}
	a.log.Debug("cache opened", "dir", a.cfg.CacheDir)

	return s, nil
}

// options translates the resolved configuration into library options.
func (a *app) options(cmd *cobra.Command, store cache.Store) []zonotope.Option {
	opts := []zonotope.Option{
		zonotope.WithContext(cmd.Context()),
		zonotope.WithWorkers(a.cfg.Workers),
		zonotope.WithLogger(a.log),
	}
	if store != nil {
		opts = append(opts, zonotope.WithCache(store))
	}

	return opts
}
