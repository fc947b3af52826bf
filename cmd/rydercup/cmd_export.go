package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/predictlab/rydercup-stats/internal/logic"
	"github.com/predictlab/rydercup-stats/internal/models"
)

var exportFlags struct {
	format string
	output string
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the analysis as csv, json or a summary report",
	RunE:  runExport,
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print the summary report to stdout",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return writeExport(cmd, models.ExportSummary, "")
	},
}

func init() {
	f := exportCmd.Flags()
	f.StringVar(&exportFlags.format, "format", models.ExportSummary,
		"Export format: "+strings.Join(models.ExportFormats, ", "))
	f.StringVarP(&exportFlags.output, "output", "o", "", "Output file (default stdout)")
}

func runExport(cmd *cobra.Command, _ []string) error {
	return writeExport(cmd, exportFlags.format, exportFlags.output)
}

func writeExport(cmd *cobra.Command, format, output string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	zl, flush := newLogger(cfg)
	defer flush()

	snap, err := loadSnapshot(cmd.Context(), cfg, zl.Sugar())
	if err != nil {
		return err
	}

	data, err := logic.NewExportService(snap, nil, 0, zl.Sugar()).Export(cmd.Context(), format)
	if err != nil {
		return err
	}

	if output == "" {
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}
	if err := os.WriteFile(output, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %s (%d bytes)\n", output, len(data))
	return nil
}
