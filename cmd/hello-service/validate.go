package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/Aidin1998/hello-service/internal/config"
	"github.com/urfave/cli/v3"
)

var validateCmd = &cli.Command{
	Name:    "validate",
	Aliases: []string{"lint"},
	Usage:   "Validate the effective configuration without starting the server",
	Action: func(ctx context.Context, cmd *cli.Command) error {
		cfg, err := config.Load(cmd.StringSlice("config")...)
		if err != nil {
			return cli.Exit(fmt.Errorf("validation failed: %w", err), 1)
		}

		fmt.Fprint(cmd.Root().Writer, describe(cfg))
		return nil
	},
}

// describe renders the settings an operator usually wants to double-check
func describe(cfg *config.Config) string {
	var b strings.Builder
	b.WriteString("Configuration is valid\n\n")
	if len(cfg.Files) == 0 {
		b.WriteString("files:    (defaults and environment only)\n")
	} else {
		fmt.Fprintf(&b, "files:    %s\n", strings.Join(cfg.Files, ", "))
	}
	fmt.Fprintf(&b, "service:  %s %s\n", cfg.Service.Name, cfg.Service.Version)
	fmt.Fprintf(&b, "listen:   %s\n", cfg.Server.Addr())
	fmt.Fprintf(&b, "logging:  %s/%s\n", cfg.Logging.Level, cfg.Logging.Format)
	fmt.Fprintf(&b, "cors:     %s\n", strings.Join(cfg.CORS.AllowOrigins, ", "))
	fmt.Fprintf(&b, "docs:     %t\n", cfg.Docs.Enabled)
	if cfg.Metrics.Enabled {
		fmt.Fprintf(&b, "metrics:  %s\n", cfg.Metrics.Path)
	} else {
		b.WriteString("metrics:  disabled\n")
	}
	return b.String()
}
