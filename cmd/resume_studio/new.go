package main

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-studio/internal/store"
)

var newCmd = &cobra.Command{
	Use:   "new [name]",
	Short: "Create a new resume document",
	Long: `Create a new resume document with default content and theme, and save
it as a JSON file in the documents directory.`,
	Args: cobra.ExactArgs(1),
	RunE: runNew,
}

var newDocumentsDir string

func init() {
	newCmd.Flags().StringVar(&newDocumentsDir, "documents-dir", "documents", "Directory to save the document in")
	rootCmd.AddCommand(newCmd)
}

func runNew(_ *cobra.Command, args []string) error {
	st, err := store.NewFileStore(newDocumentsDir)
	if err != nil {
		return err
	}

	doc := store.NewDocument(args[0])
	if err := st.Create(context.Background(), doc); err != nil {
		return fmt.Errorf("failed to create document: %w", err)
	}

	fmt.Printf("Created document %s\n", doc.ID)
	fmt.Printf("File: %s\n", filepath.Join(newDocumentsDir, doc.ID+".json"))
	return nil
}
