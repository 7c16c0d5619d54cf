package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Aidin1998/hello-service/docs"
	"github.com/Aidin1998/hello-service/internal/config"
	"github.com/urfave/cli/v3"
)

var openapiCmd = &cli.Command{
	Name:  "openapi",
	Usage: "Export the API document for the effective configuration",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "format",
			Aliases: []string{"f"},
			Value:   "yaml",
			Usage:   "Output format: yaml or json",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Write to this file instead of stdout",
		},
	},
	Action: func(ctx context.Context, cmd *cli.Command) error {
		format := cmd.String("format")
		if format != "yaml" && format != "json" {
			return cli.Exit(fmt.Sprintf("unsupported format %q", format), 1)
		}

		cfg, err := config.Load(cmd.StringSlice("config")...)
		if err != nil {
			return cli.Exit(fmt.Errorf("failed to load configuration: %w", err), 1)
		}
		docs.SetInfo(cfg.Service.Name, cfg.Service.Description, cfg.Service.Version)

		render := docs.YAML
		if format == "json" {
			render = docs.JSON
		}
		out, err := render()
		if err != nil {
			return cli.Exit(err, 1)
		}

		path := cmd.String("output")
		if path == "" {
			_, err = cmd.Root().Writer.Write(out)
			return err
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return cli.Exit(fmt.Errorf("failed to create output directory: %w", err), 1)
		}
		if err := os.WriteFile(path, out, 0o644); err != nil {
			return cli.Exit(fmt.Errorf("failed to write %s: %w", path, err), 1)
		}
		fmt.Fprintf(cmd.Root().Writer, "API document written to %s\n", path)
		return nil
	},
}
