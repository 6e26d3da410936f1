// Command sysmayalctl is the operator CLI: bulk imports, regulation loads,
// maintenance jobs and development tokens.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"sysmayal-backend/internal/app"
	"sysmayal-backend/internal/auth"
	"sysmayal-backend/internal/config"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// cliUser is recorded as the author of changes made from the CLI
const cliUser = "sysmayalctl"

var (
	verbose bool
	timeout time.Duration
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "sysmayalctl",
	Short: "Operate the Sysmayal distribution backend",
	Long: `sysmayalctl runs bulk imports, loads country regulations, triggers
maintenance jobs and issues development tokens against the configured database.

Configuration is read from .env, config.yaml and the environment, the same way
the API server reads it.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
		logrus.SetOutput(os.Stderr)
		if verbose {
			logrus.SetLevel(logrus.DebugLevel)
		} else {
			logrus.SetLevel(logrus.WarnLevel)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Minute, "Operation timeout")

	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(templateCmd)
	rootCmd.AddCommand(regulationsCmd)
	rootCmd.AddCommand(tasksCmd)
	rootCmd.AddCommand(tokenCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	_ = godotenv.Load()
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}

// withApp connects to the backing stores, runs fn as the CLI user and releases everything
func withApp(cmd *cobra.Command, fn func(ctx context.Context, a *app.App) error) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()
	ctx = auth.ContextWithUser(ctx, cliUser, "")

	a, err := app.New(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		closeCtx, closeCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer closeCancel()
		if err := a.Close(closeCtx); err != nil {
			logrus.Warnf("Failed to close resources: %v", err)
		}
	}()

	return fn(ctx, a)
}

func printJSON(cmd *cobra.Command, v interface{}) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
