package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-studio/internal/config"
	"github.com/jonathan/resume-studio/internal/engine"
	"github.com/jonathan/resume-studio/internal/render"
	"github.com/jonathan/resume-studio/internal/store"
)

var exportCmd = &cobra.Command{
	Use:   "export [document files...]",
	Short: "Export document files to PDF",
	Long: `Render one or more document JSON files to PDF. Each input file is laid
out with the same pipeline the server uses, so the exported pages match
the on-screen geometry exactly.

Files are rendered concurrently; --workers bounds the number of
simultaneous renders.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runExport,
}

var (
	exportConfigPath string
	exportOutDir     string
	exportWorkers    int
)

func init() {
	exportCmd.Flags().StringVar(&exportConfigPath, "config", "", "Path to studio.config.json (values can be overridden by other flags)")
	exportCmd.Flags().StringVarP(&exportOutDir, "out", "o", ".", "Directory to write PDF files to")
	exportCmd.Flags().IntVar(&exportWorkers, "workers", 0, "Number of concurrent renders")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	// Load config file if provided
	var cfg config.Config
	if exportConfigPath != "" {
		loaded, err := config.LoadConfig(exportConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = *loaded
	}

	// Apply CLI overrides (command-line args take priority)
	if cmd.Flags().Changed("workers") {
		cfg.ExportWorkers = exportWorkers
	}

	cfg = cfg.MergeWithDefaults(config.Config{})
	if err := cfg.Validate(); err != nil {
		return err
	}

	if err := os.MkdirAll(exportOutDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", exportOutDir, err)
	}

	g, gCtx := errgroup.WithContext(context.Background())
	g.SetLimit(cfg.ExportWorkers)

	for _, path := range args {
		g.Go(func() error {
			// Skip queued work once an earlier render has failed.
			if err := gCtx.Err(); err != nil {
				return err
			}
			return exportOne(path, exportOutDir)
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	fmt.Printf("Exported %d document(s) to %s\n", len(args), exportOutDir)
	return nil
}

func exportOne(path, outDir string) error {
	doc, err := store.LoadDocumentFile(path)
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}

	result := engine.ComputeDocument(doc)

	pdf, err := render.PDF(doc, &result.Result)
	if err != nil {
		return fmt.Errorf("failed to render %s: %w", path, err)
	}

	name := strings.TrimSuffix(filepath.Base(path), ".json") + ".pdf"
	out := filepath.Join(outDir, name)
	if err := os.WriteFile(out, pdf, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", out, err)
	}

	fmt.Printf("Exported %s -> %s (%d pages)\n", path, out, len(result.Plan.Pages))
	return nil
}
