package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-studio/internal/store"
	"github.com/jonathan/resume-studio/internal/types"
)

var orderCmd = &cobra.Command{
	Use:   "order",
	Short: "Reorder sections or entries in a document file",
	Long: `Change the order of sections or of entries within a section and save
the file.

With --sections, the given list becomes the new section order. Unknown
names are dropped, duplicates collapse to their first occurrence and
missing sections are appended in canonical order, so the result is
always a complete order.

With --entry, the entry with the given stable ID moves to the position
given by --to (0-based, clamped into range).`,
	RunE: runOrder,
}

var (
	orderFile     string
	orderSections []string
	orderEntry    string
	orderTo       int
)

func init() {
	orderCmd.Flags().StringVarP(&orderFile, "file", "f", "", "Path to document JSON file (required)")
	orderCmd.Flags().StringSliceVar(&orderSections, "sections", nil, "New section order, e.g. summary,experience,skills")
	orderCmd.Flags().StringVar(&orderEntry, "entry", "", "Entry to move, as section:id (e.g. experience:9f1c...)")
	orderCmd.Flags().IntVar(&orderTo, "to", 0, "Target position for --entry (0-based)")

	if err := orderCmd.MarkFlagRequired("file"); err != nil {
		panic(fmt.Sprintf("failed to mark file flag as required: %v", err))
	}

	rootCmd.AddCommand(orderCmd)
}

func runOrder(cmd *cobra.Command, _ []string) error {
	if (len(orderSections) == 0) == (orderEntry == "") {
		return fmt.Errorf("exactly one of --sections or --entry must be given")
	}

	doc, err := store.LoadDocumentFile(orderFile)
	if err != nil {
		return fmt.Errorf("failed to load document: %w", err)
	}

	if len(orderSections) > 0 {
		kinds := make([]types.SectionKind, len(orderSections))
		for i, s := range orderSections {
			kinds[i] = types.SectionKind(strings.TrimSpace(s))
		}
		applied := store.ReorderSection(doc, kinds)

		names := make([]string, len(applied))
		for i, k := range applied {
			names[i] = string(k)
		}
		fmt.Printf("Section order: %s\n", strings.Join(names, ", "))
	} else {
		kind, id, ok := strings.Cut(orderEntry, ":")
		if !ok || kind == "" || id == "" {
			return fmt.Errorf("invalid --entry %q (expected section:id)", orderEntry)
		}
		if !cmd.Flags().Changed("to") {
			return fmt.Errorf("--to is required with --entry")
		}
		if err := store.ReorderEntry(doc, types.SectionKind(kind), id, orderTo); err != nil {
			return err
		}
		fmt.Printf("Moved %s entry %s to position %d\n", kind, id, orderTo)
	}

	return store.SaveDocumentFile(orderFile, doc)
}
