// rydercup analyses Ryder Cup match predictions against actual results.
//
// Usage:
//
//	rydercup serve  [--data=<csv>] [--strict] [--port=<n>]
//	rydercup report [--data=<csv>] [--strict]
//	rydercup export --format=csv|json|summary [-o <file>] [--data=<csv>]
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// version is set at build time via -ldflags.
var version = "dev"

var rootFlags struct {
	dataPath string
	strict   bool
}

var rootCmd = &cobra.Command{
	Use:   "rydercup",
	Short: "Prediction accuracy analysis for Ryder Cup matches",
	Long: "rydercup loads a CSV of model predictions and actual match outcomes,\n" +
		"computes accuracy, confusion and confidence statistics, and serves or exports them.",
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
	SilenceUsage: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&rootFlags.dataPath, "data", "", "Path to the predictions CSV (overrides DATA_PATH)")
	pf.BoolVar(&rootFlags.strict, "strict", false, "Fail on malformed rows instead of skipping them")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.Version = version
}

func main() {
	// Load environment variables from .env if present.
	if wd, err := os.Getwd(); err == nil {
		if errLoad := godotenv.Load(filepath.Join(wd, ".env")); errLoad != nil && !errors.Is(errLoad, os.ErrNotExist) {
			fmt.Fprintf(os.Stderr, "failed to load .env file: %v\n", errLoad)
		}
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
