package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"
)

// Version is set during build using ldflags
var Version = "dev"

var configFlag = &cli.StringSliceFlag{
	Name:    "config",
	Aliases: []string{"c"},
	Usage:   "Path to a YAML configuration file (repeatable, later files win)",
}

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	app := &cli.Command{
		Name:    "hello-service",
		Version: Version,
		Usage:   "Minimal HTTP service with health, greeting and docs endpoints",
		Flags:   []cli.Flag{configFlag},
		Action:  serve,
		Commands: []*cli.Command{
			serveCmd,
			validateCmd,
			openapiCmd,
			{
				Name:  "version",
				Usage: "Print the version information",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					fmt.Printf("hello-service version %s\n", cmd.Root().Version)
					return nil
				},
			},
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
