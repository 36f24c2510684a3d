package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-studio/internal/schemas"
)

var validateCmd = &cobra.Command{
	Use:   "validate [document files...]",
	Short: "Validate document files against the document schema",
	Long: `Check one or more document JSON files against the document schema and
report every violation. The command exits nonzero when any file fails,
which is what makes it usable as a pre-commit or CI gate for a
documents directory.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(_ *cobra.Command, args []string) error {
	schemaPath := schemas.ResolveSchemaPath("schemas/document.schema.json")
	if schemaPath == "" {
		return fmt.Errorf("document schema not found (looked for schemas/document.schema.json)")
	}

	invalid := 0
	for _, path := range args {
		err := schemas.ValidateJSON(schemaPath, path)
		if err == nil {
			fmt.Printf("OK      %s\n", path)
			continue
		}

		var validationErr *schemas.ValidationError
		if !errors.As(err, &validationErr) {
			// Unreadable file or broken schema, not a failed document.
			return fmt.Errorf("failed to validate %s: %w", path, err)
		}

		invalid++
		fmt.Printf("INVALID %s\n", path)
		for _, fe := range validationErr.Errors {
			fmt.Printf("  - %s: %s\n", fe.Field, fe.Message)
		}
	}

	if invalid > 0 {
		return fmt.Errorf("%d of %d file(s) failed validation", invalid, len(args))
	}

	fmt.Printf("All %d file(s) are valid\n", len(args))
	return nil
}
