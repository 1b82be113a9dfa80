// @title AquaRealty API
// @version 1.0
// @description Manages realties, their zones and water measurement points, plus user accounts and login.
// @contact.name API Support
// @license.name MIT
// @license.url https://opensource.org/licenses/MIT
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Bearer token returned by POST /users/login
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"github.com/user/aquarealty/config"
	"github.com/user/aquarealty/logging"
)

// Build information, set via ldflags.
var (
	Version = "dev"
	Commit  = "unknown"
)

func main() {
	// A missing .env is normal outside development.
	_ = godotenv.Load()

	if err := newApp().Run(os.Args); err != nil {
		slog.Error("aquarealty failed", "error", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:    "aquarealty",
		Usage:   "Realty water-consumption REST backend",
		Version: fmt.Sprintf("%s (commit: %s)", Version, Commit),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Optional YAML configuration file; environment variables take precedence",
				EnvVars: []string{"AQUAREALTY_CONFIG"},
			},
		},
		Commands: []*cli.Command{
			serveCommand(),
			migrateCommand(),
		},
		DefaultCommand: "serve",
	}
}

// loadRuntime loads the configuration and installs the process logger.
func loadRuntime(c *cli.Context) (*config.AppConfig, *slog.Logger, error) {
	cfg, err := config.LoadConfig(c.String("config"))
	if err != nil {
		return nil, nil, err
	}
	logger := logging.New(os.Stderr, cfg.Log)
	slog.SetDefault(logger)
	return cfg, logger, nil
}
