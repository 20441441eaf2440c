// Command leaguectl is the Leaguedesk staff CLI.
//
// Usage:
//
//	leaguectl import --file roster.xlsx --type player
//	leaguectl import --file roster.xlsx --type player --preview
//	leaguectl cleanup --older-than 60
//	leaguectl seed --year 2026
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/fieldside/leaguedesk/internal/config"
	"github.com/fieldside/leaguedesk/internal/db"
	"github.com/fieldside/leaguedesk/internal/importer"
	"github.com/fieldside/leaguedesk/internal/seed"
)

var logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

func main() {
	// Load .env if present
	_ = godotenv.Load(".env")

	root := &cobra.Command{
		Use:   "leaguectl",
		Short: "Leaguedesk staff CLI",
	}

	root.AddCommand(importCmd())
	root.AddCommand(cleanupCmd())
	root.AddCommand(seedCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// --------------------------------------------------------------------------
// import command
// --------------------------------------------------------------------------

func importCmd() *cobra.Command {
	var (
		file       string
		importType string
		preview    bool
	)
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Run a spreadsheet import through the parser process",
		RunE: func(cmd *cobra.Command, args []string) error {
			if file == "" {
				return fmt.Errorf("--file is required")
			}
			if !config.ValidImportType(importType) {
				return fmt.Errorf("unknown import type %q", importType)
			}

			return run(func(ctx context.Context, cfg *config.Config) error {
				runner := importer.NewRunner(cfg.ImportCommand, cfg.ImportScript, logger)

				if preview {
					rows, err := runner.Preview(ctx, file, importType)
					if err != nil {
						return err
					}
					out, err := json.MarshalIndent(rows, "", "  ")
					if err != nil {
						return err
					}
					fmt.Println(string(out))
					logger.Info("Preview finished", "file", file, "rows", len(rows))
					return nil
				}

				start := time.Now()
				message, err := runner.Import(ctx, file, importType)
				if err != nil {
					return err
				}
				logger.Info("Import finished",
					"file", file, "type", importType,
					"duration", time.Since(start).Round(time.Millisecond),
					"message", message)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "Spreadsheet to import")
	cmd.Flags().StringVar(&importType, "type", config.ImportTypePlayer, "Import type (player, parent, relative)")
	cmd.Flags().BoolVar(&preview, "preview", false, "Parse and print rows without persisting")
	return cmd
}

// --------------------------------------------------------------------------
// cleanup command
// --------------------------------------------------------------------------

func cleanupCmd() *cobra.Command {
	var olderThanMinutes int
	cmd := &cobra.Command{
		Use:   "cleanup",
		Short: "Remove stale staged uploads from the upload directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(func(ctx context.Context, cfg *config.Config) error {
				cutoff := time.Now().Add(-time.Duration(olderThanMinutes) * time.Minute)

				entries, err := os.ReadDir(cfg.UploadDir)
				if os.IsNotExist(err) {
					logger.Info("Upload directory does not exist, nothing to clean", "dir", cfg.UploadDir)
					return nil
				}
				if err != nil {
					return fmt.Errorf("read upload dir: %w", err)
				}

				removed := 0
				for _, entry := range entries {
					if entry.IsDir() {
						continue
					}
					info, err := entry.Info()
					if err != nil {
						continue
					}
					if info.ModTime().After(cutoff) {
						continue
					}
					path := filepath.Join(cfg.UploadDir, entry.Name())
					if err := os.Remove(path); err != nil {
						logger.Warn("Could not remove staged file", "path", path, "error", err)
						continue
					}
					removed++
				}
				logger.Info("Cleanup finished", "dir", cfg.UploadDir, "removed", removed)
				return nil
			})
		},
	}
	cmd.Flags().IntVar(&olderThanMinutes, "older-than", 60, "Remove files older than this many minutes")
	return cmd
}

// --------------------------------------------------------------------------
// seed command
// --------------------------------------------------------------------------

func seedCmd() *cobra.Command {
	var year string
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load the demonstration dataset into the database",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
			defer cancel()

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			pool, err := db.New(ctx, cfg)
			if err != nil {
				return err
			}
			defer pool.Close()

			result := seed.Run(ctx, pool.Pool, year, logger)
			for _, msg := range result.Errors {
				logger.Warn("Seed error", "error", msg)
			}
			if len(result.Errors) > 0 {
				return fmt.Errorf("seed finished with %d errors", len(result.Errors))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&year, "year", "2026", "Registration year to seed")
	return cmd
}

// --------------------------------------------------------------------------
// Shared setup
// --------------------------------------------------------------------------

// run handles config loading and context cancellation for the commands
// that talk to the parser process and the upload directory only.
func run(fn func(ctx context.Context, cfg *config.Config) error) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	return fn(ctx, config.LoadTool())
}
