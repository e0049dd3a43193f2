package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/mysavings/backend/config"
	"github.com/mysavings/backend/internal/infra/dependency"
)

var (
	flagStore   string
	flagVerbose bool

	app *dependency.Injector
)

var rootCmd = &cobra.Command{
	Use:           "mysavings",
	Short:         "Track savings goals",
	Long:          "Create savings goals, record savings against them and follow your progress.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		_ = godotenv.Load()

		level := slog.LevelWarn
		if flagVerbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

		cfg := config.Load()
		if flagStore != "" {
			cfg.Ledger.Store = flagStore
		}

		inj, err := dependency.NewInjector(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		app = inj
		return nil
	},
	PersistentPostRun: func(_ *cobra.Command, _ []string) {
		if app != nil {
			app.Close()
		}
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "  error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagStore, "store", "", "Ledger store to use: sql or redis (default from LEDGER_STORE)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log debug output to stderr")
}
