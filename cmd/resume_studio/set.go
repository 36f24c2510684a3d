package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-studio/internal/store"
)

var setCmd = &cobra.Command{
	Use:   "set [path] [value]",
	Short: "Set a single field in a document file",
	Long: `Apply a value to one addressable field of a document and save the file.

The path addresses a field the same way the editing overlay does, for
example personal.first_name, summary, experience.<id>.role or skills.
Writing an empty value to a task line (experience.<id>.task.<n>) removes
the line; writing one index past the last line appends a new one.`,
	Args: cobra.ExactArgs(2),
	RunE: runSet,
}

var setFile string

func init() {
	setCmd.Flags().StringVarP(&setFile, "file", "f", "", "Path to document JSON file (required)")

	if err := setCmd.MarkFlagRequired("file"); err != nil {
		panic(fmt.Sprintf("failed to mark file flag as required: %v", err))
	}

	rootCmd.AddCommand(setCmd)
}

func runSet(_ *cobra.Command, args []string) error {
	doc, err := store.LoadDocumentFile(setFile)
	if err != nil {
		return fmt.Errorf("failed to load document: %w", err)
	}

	path := args[0]
	if err := store.ApplyField(doc, path, args[1]); err != nil {
		return err
	}

	if err := store.SaveDocumentFile(setFile, doc); err != nil {
		return err
	}

	// Echo the stored form, which may differ from the input after
	// normalization. An empty value can remove the addressed line
	// entirely, leaving nothing behind to resolve.
	stored, err := store.ResolveField(doc, path)
	if err != nil {
		fmt.Printf("Cleared %s\n", path)
		return nil
	}
	fmt.Printf("Set %s = %q\n", path, stored)
	return nil
}
