// Package root contains the root command for the application
package root

import (
	"cnab240-pix/internal/common"
	"cnab240-pix/internal/config"
	"cnab240-pix/internal/currencyutils"
	"cnab240-pix/internal/fileutils"
	"cnab240-pix/internal/logging"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	Input    string
	Output   string
	Validate bool
}

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// Cfg holds the resolved application configuration after PersistentPreRun
	Cfg *config.Config

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "cnab240-pix",
		Short: "A CLI tool to generate and parse CNAB240 PIX payment batch files.",
		Long: `cnab240-pix generates Banco Inter CNAB240 remittance (.REM) files for
PIX payment batches and parses the matching return (.RET) files into CSV reports.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to cnab240-pix!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()

			cfg, err := config.InitializeConfig()
			if err != nil {
				Log.WithError(err).Fatal("Invalid configuration")
			}
			Cfg = cfg
			Log = config.ConfigureLoggingFromConfig(cfg)

			// Propagate the configured logger to the leaf packages
			common.SetLogger(Log)
			fileutils.SetLogger(Log)
			currencyutils.SetLogger(Log)

			if cfg.CSV.Delimiter != "" {
				common.SetDelimiter([]rune(cfg.CSV.Delimiter)[0])
			}
		},
	}

	// SharedFlags holds flags common to all subcommands
	SharedFlags = CommonFlags{}
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input file")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output file")
	Cmd.PersistentFlags().BoolVarP(&SharedFlags.Validate, "validate", "v", false, "Validate file format before conversion")
}

// GetLogrusAdapter returns the shared logger wrapped in the logging.Logger
// interface for packages that take the abstraction.
func GetLogrusAdapter() logging.Logger {
	return logging.NewLogrusAdapterFromLogger(Log)
}
