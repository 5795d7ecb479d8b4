package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/fin-tools/filing-atlas/pkg/runtime/terminal"
	"github.com/fin-tools/filing-atlas/pkg/runtime/terminal/export"
	"github.com/fin-tools/filing-atlas/pkg/services/company"
	"github.com/fin-tools/filing-atlas/pkg/services/config"
	"github.com/fin-tools/filing-atlas/pkg/services/quarterly"
	"github.com/fin-tools/filing-atlas/pkg/store/corpcache"
	"github.com/fin-tools/filing-atlas/pkg/store/dart"
)

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	// FILING_ATLAS_CONFIG points at an optional config file; the API key can
	// also come straight from DART_API_KEY.
	cfg, err := config.Load(os.Getenv("FILING_ATLAS_CONFIG"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if cfg.APIKey == "" {
		fmt.Fprintln(os.Stderr, "Error: DART_API_KEY is not set")
		os.Exit(1)
	}

	client := dart.NewClient(dart.Config{
		APIKey:            cfg.APIKey,
		BaseURL:           cfg.BaseURL,
		Timeout:           cfg.Timeout(),
		RequestsPerSecond: cfg.RequestsPerSecond,
	})

	cli := terminal.NewCLI(terminal.Options{
		Resolver:  company.NewResolver(client, corpcache.NewStore(cfg.CacheFile)),
		Collector: quarterly.NewAggregator(client),
		Exporter:  export.NewXLSXExporter(cfg.ExportDir),
		Output:    os.Stdout,
		Logger:    logger,
	})

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
