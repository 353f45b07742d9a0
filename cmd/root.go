package cmd

import (
	"log/slog"
	"os"
	"sync"

	"github.com/inovacc/fuelr/internal/application"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	initOnce sync.Once

	verbose   bool
	flagURL   string
	flagToken string
	flagCache string
)

var rootCmd = &cobra.Command{
	Use:   application.AppName,
	Short: "A Gazebo Fuel model catalog client",
	Long: `Fuelr is a command-line client for the Gazebo Fuel model catalog.
It fetches the catalog page by page, keeps a local JSON cache, and lets
you filter and browse the models without hitting the server again.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// GetRootCmd returns the root command for introspection purposes.
func GetRootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	// Assigned here rather than in the composite literal: the closure
	// references rootCmd, which the compiler rejects as an
	// initialization cycle in the literal itself.
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		// Load .env and configure logging (runs once)
		initOnce.Do(func() {
			_ = godotenv.Load()

			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: level,
			})))
		})

		rootCmd.PersistentFlags().VisitAll(func(f *pflag.Flag) {
			if !f.Changed {
				return
			}

			value := f.Value.String()
			if f.Name == "token" {
				value = maskToken(value)
			}

			slog.Debug("flag override", "flag", f.Name, "value", value)
		})
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&flagURL, "url", "", "Fuel server base URL (overrides stored config)")
	rootCmd.PersistentFlags().StringVar(&flagToken, "token", "", "Private token for the Fuel server (overrides stored config)")
	rootCmd.PersistentFlags().StringVar(&flagCache, "cache", "", "Path to the model cache file (overrides stored config)")
}
