package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/cv-builder/internal/export"
	"github.com/jonathan/cv-builder/internal/logging"
)

var (
	exportInput    string
	exportTemplate string
	exportOut      string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the CV to a PDF file",
	Long:  `Print the saved CV (or a CV JSON file given with --input) to an A4 PDF through a headless Chromium. Requires Chrome or Chromium to be installed.`,
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportInput, "input", "i", "", "Path to a CV JSON file (defaults to the saved CV)")
	exportCmd.Flags().StringVarP(&exportTemplate, "template", "t", "", "Template id (defaults to the saved selection)")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "Output PDF file (defaults to the CV holder's name)")
	rootCmd.AddCommand(exportCmd)
}

func runExport(_ *cobra.Command, _ []string) error {
	cv, template, err := resolveCV(exportInput, exportTemplate)
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger := logging.New(cfg.LogLevel)
	defer func() { _ = logger.Sync() }()

	exporter := export.New(cfg.ChromePath, cfg.ExportTimeout(), logger)
	pdf, err := exporter.PDF(context.Background(), cv, template)
	if err != nil {
		return err
	}

	out := exportOut
	if out == "" {
		out = export.SuggestedFilename(cv)
	}
	if err := os.WriteFile(out, pdf, 0o644); err != nil {
		return fmt.Errorf("failed to write PDF: %w", err)
	}
	fmt.Printf("Wrote %s (%d bytes)\n", out, len(pdf))
	return nil
}
