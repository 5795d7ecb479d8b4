package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/fin-tools/filing-atlas/pkg/server"
	"github.com/fin-tools/filing-atlas/pkg/services/company"
	"github.com/fin-tools/filing-atlas/pkg/services/config"
	"github.com/fin-tools/filing-atlas/pkg/services/quarterly"
	"github.com/fin-tools/filing-atlas/pkg/store/corpcache"
	"github.com/fin-tools/filing-atlas/pkg/store/dart"
)

var cfgPath string

func main() {
	rootCmd := &cobra.Command{
		Use:   "web",
		Short: "Start the filing-atlas web server",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "", "Path to an optional config file")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if cfg.APIKey == "" {
		return fmt.Errorf("DART_API_KEY is not set")
	}

	client := dart.NewClient(dart.Config{
		APIKey:            cfg.APIKey,
		BaseURL:           cfg.BaseURL,
		Timeout:           cfg.Timeout(),
		RequestsPerSecond: cfg.RequestsPerSecond,
	})

	api := server.NewWebAPI(server.Config{
		Addr: cfg.ServerAddr,
		Dependencies: server.Dependencies{
			Resolver:  company.NewResolver(client, corpcache.NewStore(cfg.CacheFile)),
			Collector: quarterly.NewAggregator(client),
			Logger:    logger,
		},
	})

	return api.Start()
}
