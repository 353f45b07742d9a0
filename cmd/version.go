package cmd

import (
	"fmt"
	"os"
	"runtime"

	"github.com/inovacc/fuelr/internal/application"
	"github.com/spf13/cobra"
)

// Populated at build time via -ldflags
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		_, _ = fmt.Fprintf(os.Stdout, "%s %s (commit %s, built %s, %s)\n",
			application.AppName, version, commit, date, runtime.Version())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
