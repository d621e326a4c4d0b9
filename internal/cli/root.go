package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Benjamindaoson/agentic-delivery-os-sub001/internal/logger"
)

var (
	cfgFile  string
	verbose  bool
	portFlag int
)

// NewRootCommand creates and returns the root Cobra command for the delivery
// console CLI.
func NewRootCommand(runServerFunc func(cmd *cobra.Command, args []string), versionInfo VersionInfo) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "console",
		Short: "Agentic delivery monitoring console",
		Long:  `Monitoring console for the agentic delivery backend: polls task status, events, traces, and tool invocations, and serves them to UI callers.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger.InitLogger(verbose)
			if verbose {
				logger.Logger.Debug().Msg("Verbose logging enabled.")
			}
			return nil
		},
		// Default to server mode when no subcommand is provided.
		Run: runServerFunc,
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Path to configuration file (e.g., config/console.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().IntVar(&portFlag, "port", 0, "Port for the console server (overrides config if set)")

	cobra.OnInitialize(initConfig)

	rootCmd.AddCommand(NewTasksCommand())
	rootCmd.AddCommand(NewVersionCommand(versionInfo))

	serverCmd := &cobra.Command{
		Use:   "server",
		Short: "Run the delivery console server",
		Long:  `Starts the console server, providing the UI-facing API endpoints.`,
		Run:   runServerFunc,
	}
	rootCmd.AddCommand(serverCmd)

	return rootCmd
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.AddConfigPath("./config")
		viper.SetConfigName("console")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("CONSOLE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// GetConfigFilePath returns the --config flag value.
func GetConfigFilePath() string {
	return cfgFile
}

// GetPortFlag returns the --port flag value.
func GetPortFlag() int {
	return portFlag
}
