package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/cv-builder/internal/logging"
	"github.com/jonathan/cv-builder/internal/rendering"
	"github.com/jonathan/cv-builder/internal/store"
	"github.com/jonathan/cv-builder/internal/types"
)

var (
	renderInput    string
	renderTemplate string
	renderOut      string
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the CV to an HTML document",
	Long:  `Render the saved CV (or a CV JSON file given with --input) to standalone HTML, using the selected template unless --template overrides it.`,
	RunE:  runRender,
}

func init() {
	renderCmd.Flags().StringVarP(&renderInput, "input", "i", "", "Path to a CV JSON file (defaults to the saved CV)")
	renderCmd.Flags().StringVarP(&renderTemplate, "template", "t", "", "Template id (defaults to the saved selection)")
	renderCmd.Flags().StringVarP(&renderOut, "out", "o", "", "Output file (defaults to stdout)")
	rootCmd.AddCommand(renderCmd)
}

// resolveCV loads the CV and template the command should operate on, from an
// explicit input file or the saved state.
func resolveCV(inputPath, templateFlag string) (types.CVData, types.TemplateID, error) {
	cfg, err := loadConfig()
	if err != nil {
		return types.CVData{}, "", err
	}

	logger := logging.New(cfg.LogLevel)
	defer func() { _ = logger.Sync() }()

	files, err := store.NewFileStore(cfg.DataDir, logger)
	if err != nil {
		return types.CVData{}, "", err
	}
	snap := files.Load()

	cv := snap.CV
	if inputPath != "" {
		data, err := os.ReadFile(inputPath)
		if err != nil {
			return types.CVData{}, "", fmt.Errorf("failed to read CV file: %w", err)
		}
		cv = types.Empty()
		if err := json.Unmarshal(data, &cv); err != nil {
			return types.CVData{}, "", fmt.Errorf("failed to parse CV JSON: %w", err)
		}
	}

	template := snap.Template
	if templateFlag != "" {
		id := types.TemplateID(templateFlag)
		if !types.KnownTemplate(id) {
			return types.CVData{}, "", fmt.Errorf("unknown template: %s", templateFlag)
		}
		template = id
	}

	return cv, template, nil
}

func runRender(_ *cobra.Command, _ []string) error {
	cv, template, err := resolveCV(renderInput, renderTemplate)
	if err != nil {
		return err
	}

	html, err := rendering.Render(cv, template)
	if err != nil {
		return fmt.Errorf("rendering failed: %w", err)
	}

	if renderOut == "" {
		fmt.Println(html)
		return nil
	}
	if err := os.WriteFile(renderOut, []byte(html), 0o644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	fmt.Printf("Wrote %s\n", renderOut)
	return nil
}
