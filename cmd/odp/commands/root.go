package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"

	odp "github.com/patent-dev/uspto-odp"
)

var (
	configPath string
	apiKey     string
	baseURL    string
	verbose    bool

	client *odp.Client
)

var rootCmd = &cobra.Command{
	Use:          "odp",
	Short:        "odp is a CLI for the USPTO Open Data Portal API.",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
		}))
		slog.SetDefault(logger)
		odp.SetLogger(logger)

		config, err := odp.LoadConfig(configPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if apiKey != "" {
			config.APIKey = apiKey
		}
		if baseURL != "" {
			config.BaseURL = baseURL
		}
		if config.APIKey == "" {
			logger.Warn("no API key configured; set " + odp.EnvAPIKey + " or pass --api-key")
		}
		config.Logger = logger

		client, err = odp.NewClient(config)
		return err
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "odp.json5", "Config file (JSON5 or YAML); a sibling .local file overrides it.")
	flags.StringVar(&apiKey, "api-key", "", "API key, overriding the config file and "+odp.EnvAPIKey+".")
	flags.StringVar(&baseURL, "base-url", "", "API base URL.")
	flags.BoolVarP(&verbose, "verbose", "v", false, "Log requests and responses.")
}

func ExecuteContext(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
