package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"service-marketplace/internal/pkg/config"

	"ariga.io/atlas-go-sdk/atlasexec"
	"github.com/kelseyhightower/envconfig"
)

// migrate applies migrations/ with the atlas CLI, which must be on PATH.
func main() {
	dir := flag.String("dir", "migrations", "migration directory")
	dryRun := flag.Bool("dry-run", false, "print pending migrations without applying")
	flag.Parse()

	var cfg config.DBConfig
	if err := envconfig.Process("", &cfg); err != nil {
		slog.Error("failed to load database config", "error", err)
		os.Exit(1)
	}

	abs, err := filepath.Abs(*dir)
	if err != nil {
		slog.Error("invalid migration directory", "dir", *dir, "error", err)
		os.Exit(1)
	}

	client, err := atlasexec.NewClient(".", "atlas")
	if err != nil {
		slog.Error("failed to initialize atlas client", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	res, err := client.MigrateApply(ctx, &atlasexec.MigrateApplyParams{
		URL:    cfg.BuildDSN(),
		DirURL: "file://" + abs,
		DryRun: *dryRun,
	})
	if err != nil {
		slog.Error("migration failed", "error", err)
		os.Exit(1)
	}

	for _, f := range res.Applied {
		slog.Info("applied migration", "version", f.Version, "description", f.Description)
	}
	slog.Info("database is up to date", "current", res.Current, "target", res.Target, "dry_run", *dryRun)
}
