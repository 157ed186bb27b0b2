package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/VoidAwk/2020-ICTSI-Superproject-OR-Model/app"
	"github.com/VoidAwk/2020-ICTSI-Superproject-OR-Model/config"
	"github.com/VoidAwk/2020-ICTSI-Superproject-OR-Model/infra/logger"
)

var cfgPath string

var rootCmd = &cobra.Command{
	Use:           "yardmodel",
	Short:         "Yard block cycle-time model and configuration search",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "configuration file (json, jsonc or yaml)")
}

// Execute runs the CLI.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		logger.New("main").Errorf("%v", err)
	}
	return err
}

// withService loads the configuration and runs fn with a Service that is
// closed afterwards.
func withService(fn func(ctx context.Context, svc *app.Service) error) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	svc, err := app.New(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := svc.Close(); err != nil {
			logger.New("main").Errorf("service close: %v", err)
		}
	}()
	return fn(ctx, svc)
}
