package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-studio/internal/engine"
	"github.com/jonathan/resume-studio/internal/observability"
	"github.com/jonathan/resume-studio/internal/store"
)

var layoutCmd = &cobra.Command{
	Use:   "layout",
	Short: "Compute the page layout for a document file",
	Long: `Load a document JSON file, run the full layout pipeline (theme
resolution, height estimation, pagination, field placement, zone
derivation) and print the result.

By default a human-readable summary is printed; --json dumps the complete
layout snapshot, which is the same payload the REST API serves.`,
	RunE: runLayout,
}

var (
	layoutFile string
	layoutJSON bool
)

func init() {
	layoutCmd.Flags().StringVarP(&layoutFile, "file", "f", "", "Path to document JSON file (required)")
	layoutCmd.Flags().BoolVar(&layoutJSON, "json", false, "Print the full layout snapshot as JSON")

	if err := layoutCmd.MarkFlagRequired("file"); err != nil {
		panic(fmt.Sprintf("failed to mark file flag as required: %v", err))
	}

	rootCmd.AddCommand(layoutCmd)
}

func runLayout(_ *cobra.Command, _ []string) error {
	doc, err := store.LoadDocumentFile(layoutFile)
	if err != nil {
		return fmt.Errorf("failed to load document: %w", err)
	}

	snapshot := engine.ComputeDocument(doc)

	if layoutJSON {
		data, err := json.MarshalIndent(snapshot, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal snapshot: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	fmt.Printf("Document: %s (%s)\n", doc.Name, doc.ID)

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintResult(&snapshot.Result)

	fmt.Printf("Computed %d page(s) with %d editable zone(s)\n",
		len(snapshot.Plan.Pages), len(snapshot.Zones))

	return nil
}
