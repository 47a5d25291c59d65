package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/agent-platform/tools/worldclock/internal/catalog"
	"github.com/agent-platform/tools/worldclock/internal/clock"
	"github.com/agent-platform/tools/worldclock/internal/config"
	"github.com/agent-platform/tools/worldclock/internal/logging"
	"github.com/agent-platform/tools/worldclock/internal/tile"
	"github.com/agent-platform/tools/worldclock/internal/timefmt"
	"github.com/agent-platform/tools/worldclock/internal/ui"
)

// env is what every subcommand needs once flags and config are resolved.
type env struct {
	cfg       *config.Config
	logger    *slog.Logger
	catalog   catalog.Catalog
	formatter *timefmt.Formatter
	zones     *clock.Zones
	builder   *tile.Builder
}

// setup loads config, applies flag overrides and builds the shared tile
// pipeline. fullScreen front-ends log only errors unless --log-level is set,
// so log lines do not tear the display.
func setup(cmd *cobra.Command, args []string, fullScreen bool) (*env, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	if localeFlag != "" {
		cfg.Locale = localeFlag
	}
	level := cfg.Logging.Level
	switch {
	case logLevel != "":
		level = logLevel
	case fullScreen:
		level = "error"
	}
	logger, err := logging.New(logging.Options{Level: level, Format: cfg.Logging.Format, AddSource: cfg.Logging.AddSource}, os.Stderr)
	if err != nil {
		return nil, err
	}
	slog.SetDefault(logger)

	if noColor || !cfg.Color {
		ui.SetColor(false)
	}

	cat, err := selectCatalog(cfg, args)
	if err != nil {
		return nil, err
	}
	if err := cat.Validate(); err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}

	zones := clock.NewZones()
	f, err := timefmt.New(cfg.Locale, zones)
	if err != nil {
		return nil, err
	}
	logger.Debug("worldclock configured", "cities", cat.Len(), "locale", f.Locale(), "command", cmd.Name())

	return &env{
		cfg:       cfg,
		logger:    logger,
		catalog:   cat,
		formatter: f,
		zones:     zones,
		builder:   tile.NewBuilder(cat, f, zones),
	}, nil
}

// selectCatalog narrows the built-in catalog to the cities named on the
// command line, or in the config file when none are given.
func selectCatalog(cfg *config.Config, args []string) (catalog.Catalog, error) {
	names := append(append([]string(nil), args...), cityFlags...)
	if len(names) == 0 {
		names = cfg.Cities
	}
	cat := catalog.Default()
	if len(names) == 0 {
		return cat, nil
	}
	return cat.Select(names)
}

// loadConfig reads --config, or the default config file if it exists.
// Without a file, defaults and environment overrides apply.
func loadConfig() (*config.Config, error) {
	path := cfgFile
	if path == "" {
		var err error
		path, err = config.DefaultConfigPath()
		if err != nil {
			return nil, fmt.Errorf("determine config path: %w", err)
		}
	}

	cfg, err := config.Load(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && cfgFile == "" {
			return config.Defaults()
		}
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("config not found at %s (run 'worldclock init' first)", path)
		}
		return nil, err
	}
	return cfg, nil
}
