package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/cv-builder/internal/schemas"
	"github.com/jonathan/cv-builder/internal/types"
)

var validateCmd = &cobra.Command{
	Use:   "validate <cv.json>",
	Short: "Validate a CV JSON file",
	Long:  `Check a CV JSON file against the document schema and field constraints, reporting each problem found.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(_ *cobra.Command, args []string) error {
	path := args[0]

	if err := schemas.ValidateCVFile(path); err != nil {
		var validationErr *schemas.ValidationError
		if errors.As(err, &validationErr) {
			fmt.Printf("%s does not match the CV schema:\n", path)
			for _, fe := range validationErr.Errors {
				fmt.Printf("  %s: %s\n", fe.Field, fe.Message)
			}
			return fmt.Errorf("%d schema violation(s)", len(validationErr.Errors))
		}
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read CV file: %w", err)
	}
	cv := types.Empty()
	if err := json.Unmarshal(data, &cv); err != nil {
		return fmt.Errorf("failed to parse CV JSON: %w", err)
	}
	if err := types.Validate(cv); err != nil {
		return fmt.Errorf("field constraints violated: %w", err)
	}

	fmt.Printf("%s is valid\n", path)
	return nil
}
