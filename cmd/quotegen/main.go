// Package main provides the CLI entry point for quotegen.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/ideamans/go-l10n"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/user/quotegen/pkg/adapters/assetstore/memstore"
	"github.com/user/quotegen/pkg/adapters/assetstore/sqlitestore"
	"github.com/user/quotegen/pkg/adapters/ggrenderer"
	"github.com/user/quotegen/pkg/adapters/logger"
	"github.com/user/quotegen/pkg/adapters/osfilesystem"
	"github.com/user/quotegen/pkg/adapters/stylestore"
	"github.com/user/quotegen/pkg/config"
	"github.com/user/quotegen/pkg/ports"
	"github.com/user/quotegen/pkg/presets"
	"github.com/user/quotegen/pkg/quotegen"
)

var version = "dev"

func main() {
	// Missing .env is fine; the flags have their own defaults.
	_ = godotenv.Load()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Fprintln(os.Stderr, l10n.T("Interrupted, shutting down..."))
		cancel()
	}()

	if err := newApp().RunContext(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, l10n.F("Error: %s", err))
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:        "quotegen",
		Usage:       l10n.T("Create quote images for social media"),
		Description: l10n.T("quotegen renders a quote with a template and brand kit at every requested platform size."),
		Version:     version,
		Flags:       globalFlags(),
		Commands: []*cli.Command{
			renderCommand(),
			presetsCommand(),
			templatesCommand(),
			assetsCommand(),
			versionCommand(),
		},
	}
}

func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     "config",
			Aliases:  []string{"c"},
			Usage:    l10n.T("Path to a YAML configuration file"),
			EnvVars:  []string{"QUOTEGEN_CONFIG"},
			Category: l10n.T("Configuration"),
		},
		&cli.StringFlag{
			Name:     "asset-db",
			Usage:    l10n.T("SQLite database for the asset library (overrides asset_store)"),
			EnvVars:  []string{"QUOTEGEN_ASSET_DB"},
			Category: l10n.T("Configuration"),
		},
		&cli.StringFlag{
			Name:     "font-dir",
			Usage:    l10n.T("Directory of .ttf fonts registered by file name"),
			EnvVars:  []string{"QUOTEGEN_FONT_DIR"},
			Category: l10n.T("Configuration"),
		},
		&cli.StringFlag{
			Name:     "log-level",
			Aliases:  []string{"l"},
			Usage:    l10n.T("Log level (debug, info, warn, error)"),
			EnvVars:  []string{"QUOTEGEN_LOG_LEVEL"},
			Category: l10n.T("Logging"),
		},
		&cli.StringFlag{
			Name:     "log-format",
			Usage:    l10n.T("Log format (text, json)"),
			EnvVars:  []string{"QUOTEGEN_LOG_FORMAT"},
			Category: l10n.T("Logging"),
		},
		&cli.BoolFlag{
			Name:     "quiet",
			Aliases:  []string{"Q"},
			Usage:    l10n.T("Suppress all log output"),
			Category: l10n.T("Logging"),
		},
	}
}

// env holds the adapters shared by every command.
type env struct {
	cfg      config.Config
	log      ports.Logger
	fs       ports.FileSystem
	renderer *ggrenderer.Renderer
	presets  *presets.Registry
	styles   *stylestore.Store
	assets   ports.AssetStore
	close    func()
}

// setup loads configuration, applies global flag overrides and builds
// the shared adapters.
func setup(c *cli.Context) (*env, error) {
	cfg := config.Defaults()
	if path := c.String("config"); path != "" {
		loaded, err := config.LoadFromFile(path)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}

	if c.IsSet("asset-db") {
		cfg.AssetStore = config.AssetStoreConfig{Driver: "sqlite", DSN: c.String("asset-db")}
	}
	if c.IsSet("font-dir") {
		cfg.FontDir = c.String("font-dir")
	}
	if c.IsSet("log-level") {
		cfg.LogLevel = c.String("log-level")
	}
	if c.IsSet("log-format") {
		cfg.LogFormat = c.String("log-format")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log := newLogger(cfg, c.Bool("quiet"))

	e := &env{
		cfg:      cfg,
		log:      log,
		fs:       osfilesystem.New(),
		renderer: ggrenderer.New(),
		close:    func() {},
	}

	n, err := quotegen.RegisterFonts(e.fs, e.renderer.Fonts(), cfg.Fonts, cfg.FontDir, log)
	if err != nil {
		return nil, err
	}
	if n > 0 {
		log.Debug(l10n.F("Registered %d fonts", n))
	}

	if e.presets, err = presets.New(cfg.Presets); err != nil {
		return nil, err
	}
	for _, w := range e.presets.Validate() {
		log.Warn(w)
	}

	if e.styles, err = stylestore.New(cfg.Templates, cfg.BrandKits); err != nil {
		return nil, err
	}

	switch cfg.AssetStore.Driver {
	case "sqlite":
		store, err := sqlitestore.Open(cfg.AssetStore.DSN)
		if err != nil {
			return nil, err
		}
		e.assets = store
		e.close = func() {
			if err := store.Close(); err != nil {
				log.Warn(l10n.F("Failed to close asset library: %v", err))
			}
		}
	default:
		e.assets = memstore.New()
	}

	return e, nil
}

// newLogger builds the pipeline logger and configures the logrus
// standard logger used by the asset stores to match.
func newLogger(cfg config.Config, quiet bool) ports.Logger {
	level := ports.ParseLogLevel(cfg.LogLevel)

	if quiet {
		logrus.SetOutput(io.Discard)
		return logger.NewNoop()
	}

	logrus.SetOutput(os.Stderr)
	if lv, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logrus.SetLevel(lv)
	}

	if cfg.LogFormat == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
		return logger.NewStructured(level, os.Stderr)
	}
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	return logger.NewConsole(level)
}

func versionCommand() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: l10n.T("Show version information"),
		Action: func(c *cli.Context) error {
			fmt.Fprintln(c.App.Writer, l10n.F("quotegen version %s", version))
			return nil
		},
	}
}
