package command

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/memod/internal/cli/connection"
	"github.com/yndnr/memod/internal/cli/output"
	"github.com/yndnr/memod/internal/infra/buildinfo"
)

type statusResponse struct {
	Status string `json:"status" yaml:"status"`
	Time   string `json:"time" yaml:"time"`
}

// SystemCommand returns the system subcommand group.
func SystemCommand() *cli.Command {
	return &cli.Command{
		Name:    "system",
		Aliases: []string{"sys"},
		Usage:   "Server status commands",
		Subcommands: []*cli.Command{
			{
				Name:   "health",
				Usage:  "Check server liveness",
				Action: systemProbe("/health", "healthy"),
			},
			{
				Name:   "ready",
				Usage:  "Check server readiness",
				Action: systemProbe("/ready", "ready"),
			},
			{
				Name:   "version",
				Usage:  "Show client and server versions",
				Action: systemVersion,
			},
		},
	}
}

func systemProbe(path, want string) cli.ActionFunc {
	return func(c *cli.Context) error {
		client, err := EnsureConnected(c)
		if err != nil {
			return err
		}

		resp, err := client.Get(c.Context, path)
		if err != nil {
			return fmt.Errorf("server unreachable: %w", err)
		}

		var result statusResponse
		if err := connection.ParseResponse(resp, &result); err != nil {
			return err
		}

		if !isTable(c) {
			return render(c, result)
		}
		if result.Status != want {
			return fmt.Errorf("server reported %q", result.Status)
		}
		fmt.Fprintf(c.App.Writer, "✓ Server is %s\n", result.Status)
		fmt.Fprintf(c.App.Writer, "  Target: %s\n", client.BaseURL())
		return nil
	}
}

func systemVersion(c *cli.Context) error {
	client, err := EnsureConnected(c)
	if err != nil {
		return err
	}

	resp, err := client.Get(c.Context, "/version")
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}

	var server buildinfo.Info
	if err := connection.ParseResponse(resp, &server); err != nil {
		return err
	}
	local := buildinfo.Get()

	if !isTable(c) {
		return render(c, map[string]buildinfo.Info{"client": local, "server": server})
	}

	t := &output.Table{Headers: []string{"COMPONENT", "VERSION", "COMMIT", "BUILT", "GO"}}
	t.AddRow("client", local.Version, local.Commit, local.BuildTime, local.GoVersion)
	t.AddRow("server", server.Version, server.Commit, server.BuildTime, server.GoVersion)
	return render(c, t)
}
