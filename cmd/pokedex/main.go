package main

import (
	"fmt"
	"os"

	"pokedex/internal/app"
	"pokedex/internal/config"
	"pokedex/internal/logger"

	fyneapp "fyne.io/fyne/v2/app"
	"github.com/spf13/cobra"
)

type options struct {
	configPath string
	launcher   bool
	logLevel   string
	apiURL     string
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	opts := options{}

	cmd := &cobra.Command{
		Use:          "pokedex",
		Short:        "Look up Pokémon from PokeAPI in a desktop window",
		Version:      app.AppVersion,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			return run(cfg)
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", os.Getenv("POKEDEX_CONFIG"), "path to a YAML config file")
	cmd.Flags().BoolVar(&opts.launcher, "launcher", false, "start with the login window that opens lookup windows")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "", "debug, info, warn or error")
	cmd.Flags().StringVar(&opts.apiURL, "api-url", "", "PokeAPI base URL")

	return cmd
}

// loadConfig applies flags on top of file and environment settings. Only
// flags given on the command line override.
func loadConfig(cmd *cobra.Command, opts options) (config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return config.Config{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("launcher") {
		cfg.Launcher = opts.launcher
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = opts.logLevel
	}
	if flags.Changed("api-url") {
		cfg.APIBaseURL = opts.apiURL
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func run(cfg config.Config) error {
	level := logger.ParseLevel(cfg.LogLevel)
	log := logger.NewConsoleLogger(level)
	log.Debug("main", "logger configured", map[string]interface{}{"level": level.String()})

	application := app.NewApplication(fyneapp.NewWithID(app.AppID), cfg, log)
	application.Run()
	return nil
}
