package nndep

import (
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/treegram/nndep/config"
	filefetcher "github.com/treegram/nndep/config/fetcher/file"
	propsparser "github.com/treegram/nndep/config/parser/props"
	yamlparser "github.com/treegram/nndep/config/parser/yaml"

	"go.uber.org/fx"
)

// Options holds configuration settings for the application.
type Options struct {
	Modules   []fx.Option
	LogLevel  string
	LogFormat string
}

// Option defines a function type for applying configuration options.
type Option func(*Options)

// WithModules adds Fx modules to the application.
func WithModules(modules ...fx.Option) Option {
	return func(opts *Options) {
		opts.Modules = append(opts.Modules, modules...)
	}
}

// WithOverrides installs a configuration module that resolves the
// given override set against the compiled-in defaults and provides
// the resulting *config.Config to the container. Use at most one of
// WithOverrides and WithOverrideFile per app.
func WithOverrides(overrides map[string]string) Option {
	return func(opts *Options) {
		opts.Modules = append(opts.Modules, fx.Module("config",
			fx.Provide(func() (*config.Config, error) {
				return config.Resolve(overrides)
			}),
			logResolved(),
		))
	}
}

// WithOverrideFile installs a configuration module that reads
// overrides from the given file and provides the resolved
// *config.Config to the container. Files ending in .yaml or .yml are
// decoded as YAML, anything else as properties lines. The section
// path selects a sub-document within a YAML file; pass "" for the
// whole document.
func WithOverrideFile(fpath string, section string) Option {
	return func(opts *Options) {
		opts.Modules = append(opts.Modules, fx.Module("config",
			fx.Provide(
				fx.Annotate(filefetcher.NewFetcher(fpath), fx.As(new(config.Fetcher))),
				parserFor(fpath),
				config.Provider(section),
			),
			logResolved(),
		))
	}
}

// WithLogLevel sets the log level for the application.
// Valid levels are: "debug", "info", "warn", "error".
// If not set or invalid, defaults to "info".
func WithLogLevel(level string) Option {
	return func(opts *Options) {
		opts.LogLevel = level
	}
}

// WithLogFormat sets the log output format, "json" or "text".
// If not set or invalid, defaults to "json".
func WithLogFormat(format string) Option {
	return func(opts *Options) {
		opts.LogFormat = format
	}
}

func parserFor(fpath string) func() config.Parser {
	return func() config.Parser {
		switch strings.ToLower(filepath.Ext(fpath)) {
		case ".yaml", ".yml":
			return yamlparser.NewParser()
		default:
			return propsparser.NewParser()
		}
	}
}

//nolint:ireturn // fx.Option is the standard return type for Fx modules
func logResolved() fx.Option {
	return fx.Invoke(func(logger *slog.Logger, cfg *config.Config) {
		logger.Info("configuration resolved",
			slog.String("language", cfg.Language().String()),
			slog.Int("maxIter", cfg.MaxIter()),
			slog.Int("trainingThreads", cfg.TrainingThreads()),
		)
	})
}
