package main

import (
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v2"

	"github.com/user/aquarealty/db"
)

func migrateCommand() *cli.Command {
	return &cli.Command{
		Name:  "migrate",
		Usage: "Manage the database schema",
		Subcommands: []*cli.Command{
			{
				Name:  "up",
				Usage: "Apply all pending migrations",
				Action: func(c *cli.Context) error {
					cfg, logger, err := loadRuntime(c)
					if err != nil {
						return err
					}
					return migrateUp(cfg.DB.URL(), logger)
				},
			},
			{
				Name:  "down",
				Usage: "Roll back every migration, dropping all tables",
				Action: func(c *cli.Context) error {
					cfg, logger, err := loadRuntime(c)
					if err != nil {
						return err
					}
					return withMigrator(cfg.DB.URL(), logger, func(m *db.Migrator) error {
						if err := m.Down(); err != nil {
							return err
						}
						logger.Info("migrations rolled back")
						return nil
					})
				},
			},
			{
				Name:  "version",
				Usage: "Print the applied migration version",
				Action: func(c *cli.Context) error {
					cfg, logger, err := loadRuntime(c)
					if err != nil {
						return err
					}
					return withMigrator(cfg.DB.URL(), logger, func(m *db.Migrator) error {
						version, dirty, err := m.Version()
						if err != nil {
							return err
						}
						_, err = fmt.Fprintf(c.App.Writer, "version %d (dirty: %t)\n", version, dirty)
						return err
					})
				},
			},
		},
	}
}

func migrateUp(databaseURL string, logger *slog.Logger) error {
	return withMigrator(databaseURL, logger, func(m *db.Migrator) error {
		if err := m.Up(); err != nil {
			return err
		}
		logger.Info("migrations applied")
		return nil
	})
}

func withMigrator(databaseURL string, logger *slog.Logger, fn func(*db.Migrator) error) error {
	m, err := db.NewMigrator(databaseURL, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := m.Close(); err != nil {
			logger.Warn("failed to close migrator", "error", err)
		}
	}()
	return fn(m)
}
