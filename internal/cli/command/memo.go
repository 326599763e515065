package command

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/memod/internal/cli/connection"
)

// memo mirrors the server's memo representation.
type memo struct {
	ID       int64  `json:"id" yaml:"id"`
	Title    string `json:"title" yaml:"title"`
	Contents string `json:"contents" yaml:"contents" table:"wide"`
}

// MemoCommand returns the memo subcommand group.
func MemoCommand() *cli.Command {
	return &cli.Command{
		Name:    "memo",
		Aliases: []string{"memos"},
		Usage:   "Memo management commands",
		Subcommands: []*cli.Command{
			{
				Name:    "list",
				Aliases: []string{"ls"},
				Usage:   "List all memos ordered by ID",
				Action:  memoList,
			},
			{
				Name:      "get",
				Usage:     "Show a memo",
				ArgsUsage: "ID",
				Action:    memoGet,
			},
			{
				Name:   "create",
				Usage:  "Create a memo",
				Flags:  memoFlags(),
				Action: memoCreate,
			},
			{
				Name:      "replace",
				Usage:     "Replace the title and contents of a memo",
				ArgsUsage: "ID",
				Flags:     memoFlags(),
				Action:    memoReplace,
			},
			{
				Name:      "rename",
				Usage:     "Change the title of a memo",
				ArgsUsage: "ID",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "title",
						Aliases:  []string{"t"},
						Usage:    "New title",
						Required: true,
					},
				},
				Action: memoRename,
			},
			{
				Name:      "delete",
				Aliases:   []string{"rm"},
				Usage:     "Delete a memo",
				ArgsUsage: "ID",
				Action:    memoDelete,
			},
		},
	}
}

// memoFlags builds the flags shared by create and replace.
func memoFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "title",
			Aliases: []string{"t"},
			Usage:   "Memo title",
		},
		&cli.StringFlag{
			Name:    "contents",
			Aliases: []string{"c"},
			Usage:   "Memo contents",
		},
		&cli.StringFlag{
			Name:    "contents-file",
			Aliases: []string{"f"},
			Usage:   "Read contents from a file (- for stdin)",
		},
	}
}

func memoList(c *cli.Context) error {
	client, err := EnsureConnected(c)
	if err != nil {
		return err
	}

	resp, err := client.Get(c.Context, "/memos")
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}

	memos := []memo{}
	if err := connection.ParseResponse(resp, &memos); err != nil {
		return err
	}
	return render(c, memos)
}

func memoGet(c *cli.Context) error {
	id, err := memoID(c)
	if err != nil {
		return err
	}
	client, err := EnsureConnected(c)
	if err != nil {
		return err
	}

	resp, err := client.Get(c.Context, memoPath(id))
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}

	var m memo
	if err := connection.ParseResponse(resp, &m); err != nil {
		return err
	}
	return render(c, &m)
}

func memoCreate(c *cli.Context) error {
	body, err := memoBody(c)
	if err != nil {
		return err
	}
	client, err := EnsureConnected(c)
	if err != nil {
		return err
	}

	resp, err := client.Post(c.Context, "/memos", body)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}

	var m memo
	if err := connection.ParseResponse(resp, &m); err != nil {
		return err
	}
	return render(c, &m)
}

func memoReplace(c *cli.Context) error {
	id, err := memoID(c)
	if err != nil {
		return err
	}
	body, err := memoBody(c)
	if err != nil {
		return err
	}
	client, err := EnsureConnected(c)
	if err != nil {
		return err
	}

	resp, err := client.Put(c.Context, memoPath(id), body)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}

	var m memo
	if err := connection.ParseResponse(resp, &m); err != nil {
		return err
	}
	return render(c, &m)
}

func memoRename(c *cli.Context) error {
	id, err := memoID(c)
	if err != nil {
		return err
	}
	client, err := EnsureConnected(c)
	if err != nil {
		return err
	}

	resp, err := client.Patch(c.Context, memoPath(id), map[string]string{"title": c.String("title")})
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}

	var m memo
	if err := connection.ParseResponse(resp, &m); err != nil {
		return err
	}
	return render(c, &m)
}

func memoDelete(c *cli.Context) error {
	id, err := memoID(c)
	if err != nil {
		return err
	}
	client, err := EnsureConnected(c)
	if err != nil {
		return err
	}

	resp, err := client.Delete(c.Context, memoPath(id))
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	if err := connection.ParseResponse(resp, nil); err != nil {
		return err
	}

	if isTable(c) {
		fmt.Fprintf(c.App.Writer, "memo %d deleted\n", id)
		return nil
	}
	return render(c, map[string]any{"id": id, "deleted": true})
}

func memoID(c *cli.Context) (int64, error) {
	arg := c.Args().First()
	if arg == "" {
		return 0, errors.New("memo ID required")
	}
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid memo ID %q", arg)
	}
	return id, nil
}

func memoPath(id int64) string {
	return "/memos/" + strconv.FormatInt(id, 10)
}

// memoBody sends only the fields given on the command line so the server
// can tell an absent field from an empty one.
func memoBody(c *cli.Context) (map[string]string, error) {
	body := make(map[string]string)
	if c.IsSet("title") {
		body["title"] = c.String("title")
	}

	if c.IsSet("contents") && c.IsSet("contents-file") {
		return nil, errors.New("--contents and --contents-file are mutually exclusive")
	}
	if c.IsSet("contents") {
		body["contents"] = c.String("contents")
	}
	if path := c.String("contents-file"); path != "" {
		data, err := readContents(c, path)
		if err != nil {
			return nil, err
		}
		body["contents"] = data
	}
	return body, nil
}

func readContents(c *cli.Context, path string) (string, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(c.App.Reader)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", fmt.Errorf("read contents: %w", err)
	}
	return string(data), nil
}
