package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
)

// runApp runs commands under a root carrying the persistent --config flag.
// Exit codes are recorded instead of terminating the test binary.
func runApp(t *testing.T, commands []*cli.Command, args ...string) (string, error) {
	t.Helper()

	exiter := cli.OsExiter
	cli.OsExiter = func(int) {}
	t.Cleanup(func() { cli.OsExiter = exiter })

	var out bytes.Buffer
	app := &cli.Command{
		Name:     "hello-service",
		Writer:   &out,
		Flags:    []cli.Flag{configFlag},
		Commands: commands,
	}
	err := app.Run(context.Background(), append([]string{"hello-service"}, args...))
	return out.String(), err
}

func requireExitCode(t *testing.T, err error, code int) cli.ExitCoder {
	t.Helper()
	var exitErr cli.ExitCoder
	require.True(t, errors.As(err, &exitErr), "Expected cli.ExitCoder, got %T", err)
	assert.Equal(t, code, exitErr.ExitCode())
	return exitErr
}

func TestServeFailsOnInvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"malformed yaml", "service: [unterminated\n"},
		{"invalid port", "server:\n  port: 0\n"},
		{"unknown log format", "logging:\n  format: xml\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.body), 0o600))

			_, err := runApp(t, []*cli.Command{serveCmd}, "--config", path, "serve")
			exitErr := requireExitCode(t, err, 1)
			assert.Contains(t, exitErr.Error(), "failed to load configuration")
		})
	}
}
