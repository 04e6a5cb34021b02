package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"golang.org/x/term"

	"github.com/mmcdole/shelf/internal/catalog"
	"github.com/mmcdole/shelf/internal/config"
	"github.com/mmcdole/shelf/internal/domain"
	"github.com/mmcdole/shelf/internal/log"
	"github.com/mmcdole/shelf/internal/menu"
	"github.com/mmcdole/shelf/internal/search"
	"github.com/mmcdole/shelf/internal/tui"
)

// Version is set at build time via -ldflags
var Version = "dev"

type options struct {
	configPath  string
	forceTUI    bool
	writeConfig bool
}

func main() {
	var (
		showVersion bool
		opts        options
	)
	flag.BoolVar(&showVersion, "v", false, "print version")
	flag.BoolVar(&showVersion, "version", false, "print version")
	flag.StringVar(&opts.configPath, "config", "", "path to config.yaml")
	flag.BoolVar(&opts.forceTUI, "tui", false, "open the interactive browser instead of the menu")
	flag.BoolVar(&opts.writeConfig, "write-config", false, "write the default config file and exit")
	flag.Parse()

	if showVersion {
		fmt.Printf("shelf %s\n", Version)
		return
	}

	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(opts options) error {
	if opts.writeConfig {
		return writeDefaultConfig(opts.configPath)
	}

	// Load configuration
	cfg, err := config.LoadConfig(opts.configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Setup logger
	logger, closer, err := log.SetupLogger(&cfg.Logging)
	if err != nil {
		// Fall back to null logger if file logging fails
		logger = log.NullLogger()
	} else {
		defer closer.Close()
	}
	logger = logger.With("session", uuid.NewString())
	slog.SetDefault(logger)

	logger.Info("starting shelf", "version", Version, "catalog", cfg.Catalog.Name)

	cat := catalog.New(cfg.Catalog.Name, logger)
	for _, out := range cat.Import(cfg.Catalog.Seed) {
		if !out.OK() {
			logger.Warn("seed record rejected", "id", out.ID, "reason", out.Reason)
		}
	}

	locale := domain.LookupLocale(cfg.UI.Locale)

	if (opts.forceTUI || cfg.UI.Mode == config.ModeTUI) && term.IsTerminal(int(os.Stdout.Fd())) {
		return runBrowser(cat, locale, logger)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := menu.New(cat, search.NewService(cat, logger), os.Stdin, os.Stdout,
		menu.WithLocale(locale),
		menu.WithLogger(logger),
	)
	if err := m.Run(ctx); err != nil {
		return fmt.Errorf("menu: %w", err)
	}

	logger.Info("shutting down")
	return nil
}

// runBrowser runs the full-screen catalog browser
func runBrowser(cat *catalog.Catalog, locale domain.Locale, logger *slog.Logger) error {
	p := tea.NewProgram(
		tui.NewModel(cat, locale, logger),
		tea.WithAltScreen(),
	)

	logger.Info("starting TUI")

	if _, err := p.Run(); err != nil {
		logger.Error("TUI error", "error", err)
		return fmt.Errorf("TUI error: %w", err)
	}

	logger.Info("shutting down")
	return nil
}

// writeDefaultConfig saves the defaults to path, or to the default config dir
func writeDefaultConfig(path string) error {
	if path == "" {
		path = filepath.Join(config.DefaultConfigDir(), "config.yaml")
	}
	if err := config.SaveConfig(config.DefaultConfig(), path); err != nil {
		return err
	}
	fmt.Printf("✓ Configuration written to %s\n", path)
	return nil
}
