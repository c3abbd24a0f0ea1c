// Package root contains the root command for the application
package root

import (
	"fmt"

	"fjacquet/bank-reco/internal/config"
	"fjacquet/bank-reco/internal/container"
	"fjacquet/bank-reco/internal/logging"

	"github.com/spf13/cobra"
)

// CommonFlags represents the flags that are common to every command
type CommonFlags struct {
	DataFile   string
	ConfigFile string
	LogLevel   string
	LogFormat  string
	Format     string
}

var (
	// Log is the shared logger instance for commands
	Log logging.Logger = logging.NewLogrusAdapter("info", "text")

	// AppConfig is the configuration resolved before a command runs
	AppConfig *config.Config

	// AppContainer holds the wired dependencies for the running command
	AppContainer *container.Container

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "bank-reco",
		Short: "A CLI tool to filter bank products and compare them side by side.",
		Long: `bank-reco reads a table of credit cards, checking and savings accounts and
narrows it down by category, goal, fees, rates and account features.
Up to three of the remaining products can be compared side by side.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to bank-reco!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initializeApp(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if AppContainer != nil {
				if err := AppContainer.Close(); err != nil {
					Log.WithError(err).Warn("Failed to close container")
				}
			}
		},
	}

	// SharedFlags holds the persistent flags of the root command
	SharedFlags = CommonFlags{}
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.DataFile, "data", "d", "", "Product table (.csv or .xlsx, '-' for stdin)")
	Cmd.PersistentFlags().StringVar(&SharedFlags.ConfigFile, "config", "", "Config file (default searches $HOME/.bank-reco, .bank-reco and .)")
	Cmd.PersistentFlags().StringVar(&SharedFlags.LogLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")
	Cmd.PersistentFlags().StringVar(&SharedFlags.LogFormat, "log-format", "", "Log format (text or json)")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Format, "format", "f", "", "Output format (table, csv, json, yaml)")
}

func initializeApp(cmd *cobra.Command) error {
	config.LoadEnv()

	cfg, err := config.InitializeConfig(SharedFlags.ConfigFile)
	if err != nil {
		return err
	}
	if err := ApplyFlags(cfg, SharedFlags); err != nil {
		return err
	}

	c, err := container.NewContainer(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	AppConfig = cfg
	AppContainer = c
	Log = c.GetLogger()
	Log.Debug("Configuration loaded", logging.F(logging.FieldFile, cfg.Data.File))
	return nil
}

// ApplyFlags overrides cfg with the non-empty command line values and
// validates the result.
func ApplyFlags(cfg *config.Config, flags CommonFlags) error {
	if flags.DataFile != "" {
		cfg.Data.File = flags.DataFile
	}
	if flags.LogLevel != "" {
		cfg.Log.Level = flags.LogLevel
	}
	if flags.LogFormat != "" {
		cfg.Log.Format = flags.LogFormat
	}
	if flags.Format != "" {
		cfg.Output.Format = flags.Format
	}
	return config.Validate(cfg)
}

// GetContainer returns the container built for the running command, or nil
// before initialization.
func GetContainer() *container.Container {
	return AppContainer
}

// GetConfig returns the configuration resolved for the running command, or
// nil before initialization.
func GetConfig() *config.Config {
	return AppConfig
}
