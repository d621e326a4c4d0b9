package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Benjamindaoson/agentic-delivery-os-sub001/internal/cli"
	"github.com/Benjamindaoson/agentic-delivery-os-sub001/internal/config"
	"github.com/Benjamindaoson/agentic-delivery-os-sub001/internal/logger"
	"github.com/Benjamindaoson/agentic-delivery-os-sub001/internal/server"
)

// Build-time version information (set via ldflags during build)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	versionInfo := cli.VersionInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	}

	rootCmd := cli.NewRootCommand(runServer, versionInfo)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// runServer loads configuration, applies flag/env overrides, and serves
// until interrupted.
func runServer(cmd *cobra.Command, args []string) {
	cfgFilePath, _ := cmd.Flags().GetString("config")
	cfg, err := config.LoadConfig(cfgFilePath)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("failed to load configuration")
	}

	if cmd.Flags().Lookup("port").Changed {
		port, _ := cmd.Flags().GetInt("port")
		cfg.Console.Port = port
	}
	if envPort := os.Getenv("CONSOLE_PORT"); envPort != "" {
		if port, err := strconv.Atoi(envPort); err == nil {
			cfg.Console.Port = port
		}
	}
	if envURL := os.Getenv("CONSOLE_BACKEND_URL"); envURL != "" {
		cfg.Backend.BaseURL = envURL
	}
	if envToken := os.Getenv("CONSOLE_BACKEND_TOKEN"); envToken != "" {
		cfg.Backend.Token = envToken
	}

	consoleServer, err := server.NewConsoleServer(cfg)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("failed to create console server")
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- consoleServer.Start()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			logger.Logger.Fatal().Err(err).Msg("console server failed")
		}
	case sig := <-sigCh:
		logger.Logger.Info().Str("signal", sig.String()).Msg("shutting down")
		if err := consoleServer.Shutdown(context.Background()); err != nil {
			logger.Logger.Error().Err(err).Msg("shutdown error")
		}
	}
}
