package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/tbracken/liftlog/internal/app"
)

var (
	configPath string
	serverURL  string
	prefsPath  string
)

var rootCmd = &cobra.Command{
	Use:   "liftlog",
	Short: "Terminal client for a personal workout log",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		return app.Run(ctx, app.Options{
			ConfigPath: configPath,
			ServerURL:  serverURL,
			PrefsPath:  prefsPath,
		})
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.Flags().StringVar(&configPath, "config", "", "override config path (optional)")
	rootCmd.Flags().StringVar(&serverURL, "server", "", "workout server address, host:port or URL (optional)")
	rootCmd.Flags().StringVar(&prefsPath, "prefs", "", "override preferences path (optional)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "liftlog: %v\n", err)
		os.Exit(1)
	}
}
