package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"

	"empsearch/internal/config"
	"empsearch/internal/logging"
	"empsearch/internal/searchapi"
	"empsearch/internal/ui"
)

func main() {
	// Parse command line arguments
	fs := pflag.NewFlagSet("empsearch", pflag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: empsearch [flags] [query...]\n\nFlags:\n")
		fs.PrintDefaults()
	}
	configPath := fs.StringP("config", "c", "", "path to config file (default: user config dir)")
	endpoint := fs.StringP("endpoint", "e", "", "search service base URL, overrides endpoint.base_url")
	query := fs.StringP("query", "q", "", "submit this query on start")
	logLevel := fs.String("log-level", "", "log level: debug, info, warn or error")
	noAltScreen := fs.Bool("no-alt-screen", false, "render inline instead of using the alternate screen")
	_ = fs.Parse(os.Args[1:])

	// Remaining args form the query when --query is not given
	if *query == "" && fs.NArg() > 0 {
		*query = strings.Join(fs.Args(), " ")
	}

	// Load configuration
	configSvc := config.NewConfigService()
	if *configPath != "" {
		configSvc = config.NewConfigServiceAt(*configPath)
	}
	cfg, err := loadOrCreateConfig(configSvc)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Flags win over the file
	if *endpoint != "" {
		cfg.Endpoint.BaseURL = *endpoint
	}
	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}
	if *noAltScreen {
		cfg.UI.AltScreen = false
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid settings: %v\n", err)
		os.Exit(2)
	}

	// Set up logging
	if err := logging.Init(cfg.Log.File, cfg.Log.Level); err != nil {
		fmt.Fprintf(os.Stderr, "Could not set up logging: %v\n", err)
		os.Exit(1)
	}
	defer logging.Close()
	logging.Info("starting", "config", configSvc.Path(), "endpoint", cfg.EndpointURL())

	client, err := searchapi.New(searchapi.Options{
		BaseURL:       cfg.Endpoint.BaseURL,
		SearchPath:    cfg.Endpoint.SearchPath,
		QueryParam:    cfg.Endpoint.QueryParam,
		Timeout:       cfg.Endpoint.Timeout.Duration,
		RatePerSecond: cfg.Endpoint.RatePerSecond,
		Logger:        logging.Logger(),
	})
	if err != nil {
		logging.Error("creating search client", "err", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	uiModel := ui.NewModel(cfg, client, ui.Options{
		Ctx:          ctx,
		Endpoint:     client.Endpoint(),
		InitialQuery: *query,
		Logger:       logging.Logger(),
		ShowReady:    os.Getenv("EMPSEARCH_E2E_TEST") != "",
	})

	// Create Bubble Tea program
	opts := []tea.ProgramOption{tea.WithContext(ctx)}
	if cfg.UI.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	p := tea.NewProgram(uiModel, opts...)

	// Handle interrupt signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigChan
		logging.Info("received signal", "signal", sig)
		cancel()
		p.Quit()
	}()

	// Run the UI
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		logging.Error("program exited with error", "err", err)
		fmt.Printf("Error running program: %v\n", err)
		logging.Close()
		os.Exit(1)
	}
	logging.Info("UI exited normally")
}

// loadOrCreateConfig loads the config file, writing the defaults out first
// when none exists yet
func loadOrCreateConfig(configSvc config.ConfigService) (*config.Config, error) {
	path := configSvc.Path()
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		cfg := config.DefaultConfig()
		if err := configSvc.Save(cfg); err != nil {
			// Not fatal, run with defaults
			fmt.Fprintf(os.Stderr, "Warning: could not write default config to %s: %v\n", path, err)
		}
		return cfg, nil
	}
	return configSvc.Load()
}
