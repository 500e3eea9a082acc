// Command migrate applies the embedded schema migrations with the atlas CLI.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"lending-core/internal/handler/middleware"
	"lending-core/internal/pkg/config"
	"lending-core/internal/pkg/errs"
	"lending-core/migrations"

	"ariga.io/atlas-go-sdk/atlasexec"
)

func main() {
	atlasBin := flag.String("atlas", "atlas", "path to the atlas binary")
	dryRun := flag.Bool("dry-run", false, "print pending migrations without applying them")
	timeout := flag.Duration("timeout", 2*time.Minute, "overall timeout")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load config", "error", err.Error())
		os.Exit(1)
	}
	logger := middleware.NewLogger(cfg.Log).GetSlogLogger()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if err := run(ctx, cfg.DB, *atlasBin, *dryRun, logger); err != nil {
		logger.Error("migration failed", "error", err.Error())
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.DBConfig, atlasBin string, dryRun bool, logger *slog.Logger) error {
	wd, err := atlasexec.NewWorkingDir(atlasexec.WithMigrations(migrations.FS))
	if err != nil {
		return errs.Wrap(err, "prepare working directory")
	}
	defer wd.Close()

	client, err := atlasexec.NewClient(wd.Path(), atlasBin)
	if err != nil {
		return errs.Wrap(err, "create atlas client")
	}

	res, err := client.MigrateApply(ctx, &atlasexec.MigrateApplyParams{
		URL:    cfg.BuildDSN(),
		DirURL: "file://migrations",
		DryRun: dryRun,
	})
	if err != nil {
		return errs.Wrap(err, "apply migrations")
	}

	for _, f := range res.Applied {
		logger.Info("migration applied", "name", f.Name, "version", f.Version)
	}
	logger.Info("schema is up to date", "current", res.Current, "target", res.Target, "dry_run", dryRun)
	return nil
}
