package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-studio/internal/config"
	"github.com/jonathan/resume-studio/internal/db"
	"github.com/jonathan/resume-studio/internal/server"
	"github.com/jonathan/resume-studio/internal/store"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long: `Start an HTTP server exposing documents, computed layout geometry, field
zones and PDF export over REST.

Configuration can be loaded from a JSON file using --config. Command-line
arguments override config file values. When a database URL is configured
(flag, config or DATABASE_URL), documents live in PostgreSQL; otherwise
they live as JSON files in the documents directory.`,
	RunE: runServe,
}

var (
	serveConfigPath   string
	servePort         int
	serveDocumentsDir string
	serveDatabaseURL  string
	serveOrigins      []string
)

func init() {
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to studio.config.json (values can be overridden by other flags)")
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on")
	serveCmd.Flags().StringVar(&serveDocumentsDir, "documents-dir", "", "Directory holding document files")
	serveCmd.Flags().StringVar(&serveDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")
	serveCmd.Flags().StringSliceVar(&serveOrigins, "allow-origin", nil, "CORS origin allow list (repeatable)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	// Load config file if provided
	var cfg config.Config
	if serveConfigPath != "" {
		loaded, err := config.LoadConfig(serveConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = *loaded
	}

	// Apply CLI overrides (command-line args take priority)
	if cmd.Flags().Changed("port") {
		cfg.Port = servePort
	}
	if cmd.Flags().Changed("documents-dir") {
		cfg.DocumentsDir = serveDocumentsDir
	}
	if cmd.Flags().Changed("db-url") {
		cfg.DatabaseURL = serveDatabaseURL
	}
	if cmd.Flags().Changed("allow-origin") {
		cfg.AllowedOrigins = serveOrigins
	}

	cfg = cfg.MergeWithDefaults(config.Config{
		Port:         8080,
		DocumentsDir: "documents",
	})
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	st, cleanup, err := openStore(context.Background(), cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	srv := server.New(server.Config{
		Port:           cfg.Port,
		AllowedOrigins: cfg.AllowedOrigins,
	}, st)

	return srv.Start()
}

// openStore selects the PostgreSQL store when a database URL is configured
// and the file store otherwise. The returned cleanup releases whatever the
// store holds open.
func openStore(ctx context.Context, cfg config.Config) (store.DocumentStore, func(), error) {
	if cfg.DatabaseURL != "" {
		database, err := db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		if err := database.EnsureSchema(ctx); err != nil {
			database.Close()
			return nil, nil, fmt.Errorf("failed to ensure schema: %w", err)
		}
		return database, database.Close, nil
	}

	st, err := store.NewFileStore(cfg.DocumentsDir)
	if err != nil {
		return nil, nil, err
	}
	return st, func() {}, nil
}
