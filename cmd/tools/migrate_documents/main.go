// Command migrate_documents walks a documents directory and rewrites every
// document file that is behind the current schema version or fails
// normalization (missing entry ids, broken section order).
//
// The server and CLI migrate documents transparently at load time; this
// script makes the upgrade permanent on disk so old-format files stop
// accumulating.
//
// Usage:
//
//	go run cmd/tools/migrate_documents/main.go [documents-dir]
//
// The directory defaults to ./documents.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jonathan/resume-studio/internal/store"
	"github.com/jonathan/resume-studio/internal/types"
)

func main() {
	dir := "documents"
	if len(os.Args) > 1 {
		dir = os.Args[1]
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: Failed to read documents directory %s: %v\n", dir, err)
		os.Exit(1)
	}

	fmt.Println("=== Document Migration Script ===")
	fmt.Println()

	var paths []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".json") || strings.HasPrefix(name, ".") {
			continue
		}
		paths = append(paths, filepath.Join(dir, name))
	}

	if len(paths) == 0 {
		fmt.Printf("No document files found in %s.\n", dir)
		return
	}

	fmt.Printf("Found %d document file(s) in %s:\n\n", len(paths), dir)

	migrated := 0
	current := 0
	failed := 0

	for _, path := range paths {
		content, err := os.ReadFile(path)
		if err != nil {
			fmt.Printf("  ✗ %s: %v\n", path, err)
			failed++
			continue
		}

		var doc types.Document
		if err := json.Unmarshal(content, &doc); err != nil {
			fmt.Printf("  ✗ %s: %v\n", path, err)
			failed++
			continue
		}

		before := doc.SchemaVersion
		changed := store.Migrate(&doc)
		repaired := store.NormalizeDocument(&doc)

		if !changed && !repaired {
			fmt.Printf("  • Current: %s (v%d)\n", path, doc.SchemaVersion)
			current++
			continue
		}

		if err := store.SaveDocumentFile(path, &doc); err != nil {
			fmt.Printf("  ✗ %s: %v\n", path, err)
			failed++
			continue
		}

		switch {
		case changed:
			fmt.Printf("  ✓ Migrated: %s (v%d -> v%d)\n", path, before, doc.SchemaVersion)
		default:
			fmt.Printf("  ✓ Repaired: %s (v%d)\n", path, doc.SchemaVersion)
		}
		migrated++
	}

	fmt.Println()
	fmt.Println("=== Migration Summary ===")
	fmt.Printf("  Migrated: %d\n", migrated)
	fmt.Printf("  Current: %d\n", current)
	fmt.Printf("  Failed: %d\n", failed)
	fmt.Printf("  Total: %d\n", len(paths))

	if failed > 0 {
		os.Exit(1)
	}

	fmt.Println()
	fmt.Println("=== Migration Complete ===")
}
