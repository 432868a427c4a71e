package config

import (
	"fmt"
	"log/slog"

	"github.com/jpalmerr/summitcheckin"
)

// OpenStorage opens the storage driver selected by the config.
//
// The caller owns the returned storage and must close it.
func OpenStorage(cfg *Config) (summitcheckin.Storage, error) {
	st, err := summitcheckin.OpenStorage(cfg.Storage.Driver, cfg.Storage.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s storage: %w", cfg.Storage.Driver, err)
	}
	return st, nil
}

// BuildOptions converts parsed configuration into SDK options.
//
// st is typically the result of [OpenStorage]. logger may be nil, in which
// case the SDK default is used.
func BuildOptions(cfg *Config, st summitcheckin.Storage, logger *slog.Logger) []summitcheckin.Option {
	opts := []summitcheckin.Option{
		summitcheckin.WithPort(cfg.Port),
		summitcheckin.WithGoal(cfg.Goal),
	}

	if cfg.Title != "" {
		opts = append(opts, summitcheckin.WithTitle(cfg.Title))
	}
	if st != nil {
		opts = append(opts, summitcheckin.WithStorage(st))
	}
	if logger != nil {
		opts = append(opts, summitcheckin.WithLogger(logger))
	}

	return opts
}
