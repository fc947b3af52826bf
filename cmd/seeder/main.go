// seeder writes a synthetic Ryder Cup prediction dataset in the layout the
// rydercup command reads.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var seedFlags struct {
	matches []int
	seed    uint64
	output  string
}

var rootCmd = &cobra.Command{
	Use:          "seeder",
	Short:        "Generate a synthetic prediction dataset",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, _ []string) error {
		opts := GenerateOptions{MatchesPerRound: seedFlags.matches, Seed: seedFlags.seed}

		if seedFlags.output == "" {
			return Generate(cmd.OutOrStdout(), opts)
		}
		f, err := os.Create(seedFlags.output)
		if err != nil {
			return fmt.Errorf("create %s: %w", seedFlags.output, err)
		}
		if err := Generate(f, opts); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %s\n", seedFlags.output)
		return nil
	},
}

func init() {
	f := rootCmd.Flags()
	// Four team sessions of four matches, then twelve singles.
	f.IntSliceVar(&seedFlags.matches, "matches", []int{4, 4, 4, 4, 12}, "Matches per round, in round order")
	f.Uint64Var(&seedFlags.seed, "seed", 2025, "Random seed")
	f.StringVarP(&seedFlags.output, "output", "o", "", "Output file (default stdout)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
