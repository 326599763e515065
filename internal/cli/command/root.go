package command

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/memod/internal/cli/config"
	"github.com/yndnr/memod/internal/cli/connection"
	"github.com/yndnr/memod/internal/cli/output"
	"github.com/yndnr/memod/internal/infra/buildinfo"
)

const metaConfig = "cliConfig"

// App creates the CLI application.
func App() *cli.App {
	return &cli.App{
		Name:    "memod-cli",
		Usage:   "memod command-line client",
		Version: buildinfo.String(),
		Flags:   globalFlags(),
		Commands: []*cli.Command{
			MemoCommand(),
			SystemCommand(),
			ConfigCommand(),
		},
		Before: loadConfig,
	}
}

// globalFlags returns the global CLI flags. Unset flags fall back to the
// CLI config file.
func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Usage:   "CLI config file",
			EnvVars: []string{"MEMOD_CLI_CONFIG"},
			Value:   config.DefaultConfigPath(),
		},
		&cli.StringFlag{
			Name:    "server",
			Aliases: []string{"s"},
			Usage:   "memod server address (e.g., localhost:8080)",
			EnvVars: []string{"MEMOD_SERVER"},
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Output format: table, json, yaml",
		},
		&cli.BoolFlag{
			Name:    "wide",
			Aliases: []string{"w"},
			Usage:   "Show wide output (more columns, no truncation)",
		},
		&cli.DurationFlag{
			Name:  "timeout",
			Usage: "Request timeout",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"V"},
			Usage:   "Enable verbose output",
		},
	}
}

func loadConfig(c *cli.Context) error {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return err
	}
	if c.App.Metadata == nil {
		c.App.Metadata = make(map[string]any)
	}
	c.App.Metadata[metaConfig] = cfg
	return nil
}

func cliConfig(c *cli.Context) *config.CLIConfig {
	if cfg, ok := c.App.Metadata[metaConfig].(*config.CLIConfig); ok {
		return cfg
	}
	return config.Default()
}

// GlobalFlags holds the effective global settings.
type GlobalFlags struct {
	Server  string
	Output  output.Format
	Wide    bool
	Timeout time.Duration
	Verbose bool
}

// ParseGlobalFlags merges command-line flags over the CLI config file.
func ParseGlobalFlags(c *cli.Context) (*GlobalFlags, error) {
	cfg := cliConfig(c)
	flags := &GlobalFlags{
		Server:  cfg.DefaultServer,
		Timeout: cfg.Timeout,
		Wide:    c.Bool("wide"),
		Verbose: c.Bool("verbose"),
	}
	if c.IsSet("server") {
		flags.Server = c.String("server")
	}
	if c.IsSet("timeout") {
		flags.Timeout = c.Duration("timeout")
	}

	format := cfg.DefaultOutput
	if c.IsSet("output") {
		format = c.String("output")
	}
	f, err := output.ParseFormat(format)
	if err != nil {
		return nil, err
	}
	flags.Output = f
	return flags, nil
}

// EnsureConnected returns an HTTP client for the selected server.
func EnsureConnected(c *cli.Context) (*connection.HTTPClient, error) {
	flags, err := ParseGlobalFlags(c)
	if err != nil {
		return nil, err
	}

	client := connection.NewHTTPClient(flags.Server, flags.Timeout)
	if flags.Verbose {
		fmt.Fprintf(c.App.ErrWriter, "server: %s\n", client.BaseURL())
	}
	return client, nil
}

// render writes data in the selected output format.
func render(c *cli.Context, data any) error {
	flags, err := ParseGlobalFlags(c)
	if err != nil {
		return err
	}
	return output.NewFormatter(flags.Output, flags.Wide).Format(c.App.Writer, data)
}

// isTable reports whether human-oriented text should be printed.
func isTable(c *cli.Context) bool {
	flags, err := ParseGlobalFlags(c)
	return err == nil && flags.Output == output.FormatTable
}

// PrintError writes err to w, with the server request ID when known.
func PrintError(w io.Writer, err error) {
	fmt.Fprintf(w, "error: %v\n", err)

	var apiErr *connection.APIError
	if errors.As(err, &apiErr) && apiErr.RequestID != "" {
		fmt.Fprintf(w, "request id: %s\n", apiErr.RequestID)
	}
}
