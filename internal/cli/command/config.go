package command

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/memod/internal/cli/config"
	"github.com/yndnr/memod/internal/infra/confloader"
	serverconfig "github.com/yndnr/memod/internal/server/config"
)

// ConfigCommand returns the config subcommand group.
func ConfigCommand() *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "Configuration management",
		Subcommands: []*cli.Command{
			{
				Name:  "cli",
				Usage: "CLI local configuration",
				Subcommands: []*cli.Command{
					{
						Name:   "show",
						Usage:  "Show the effective CLI settings",
						Action: configCLIShow,
					},
					{
						Name:  "init",
						Usage: "Write the effective settings to the CLI config file",
						Flags: []cli.Flag{
							&cli.BoolFlag{
								Name:  "force",
								Usage: "Overwrite an existing file",
							},
						},
						Action: configCLIInit,
					},
				},
			},
			{
				Name:  "server",
				Usage: "Server configuration helpers",
				Subcommands: []*cli.Command{
					{
						Name:      "test",
						Usage:     "Validate a server configuration file",
						ArgsUsage: "FILE",
						Action:    configServerTest,
					},
				},
			},
		},
	}
}

type effectiveConfig struct {
	File    string `json:"file" yaml:"file"`
	Server  string `json:"server" yaml:"server"`
	Output  string `json:"output" yaml:"output"`
	Timeout string `json:"timeout" yaml:"timeout"`
}

func configCLIShow(c *cli.Context) error {
	flags, err := ParseGlobalFlags(c)
	if err != nil {
		return err
	}
	return render(c, effectiveConfig{
		File:    c.String("config"),
		Server:  flags.Server,
		Output:  string(flags.Output),
		Timeout: flags.Timeout.String(),
	})
}

func configCLIInit(c *cli.Context) error {
	flags, err := ParseGlobalFlags(c)
	if err != nil {
		return err
	}

	path := c.String("config")
	if _, err := os.Stat(path); err == nil && !c.Bool("force") {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	cfg := &config.CLIConfig{
		DefaultServer: flags.Server,
		DefaultOutput: string(flags.Output),
		Timeout:       flags.Timeout,
	}
	if err := config.Save(cfg, path); err != nil {
		return err
	}
	fmt.Fprintf(c.App.Writer, "✓ Wrote %s\n", path)
	return nil
}

// configServerTest loads FILE the way memod-server does, including
// MEMOD_* environment overrides, and runs the server's validation.
func configServerTest(c *cli.Context) error {
	path := c.Args().First()
	if path == "" {
		return errors.New("configuration file path required")
	}
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("read file: %w", err)
	}

	cfg := serverconfig.Default()
	if err := confloader.NewLoader(confloader.WithConfigFile(path)).Load(cfg); err != nil {
		return err
	}
	if err := serverconfig.Verify(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if !isTable(c) {
		return render(c, map[string]any{
			"file":  path,
			"valid": true,
			"addr":  cfg.Server.HTTP.Addr,
			"tls":   cfg.Server.HTTP.TLSEnabled(),
		})
	}
	fmt.Fprintf(c.App.Writer, "✓ Configuration is valid: %s\n", path)
	fmt.Fprintf(c.App.Writer, "  Listen: %s (tls: %t)\n", cfg.Server.HTTP.Addr, cfg.Server.HTTP.TLSEnabled())
	return nil
}
