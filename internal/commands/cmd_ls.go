package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/todos/internal/core/todo"
	"github.com/colonyops/todos/internal/todos"
	"github.com/colonyops/todos/pkg/iojson"
)

// LsCmd implements the todos ls command.
type LsCmd struct {
	flags *Flags
	app   *todos.App

	status   string
	jsonMode bool
}

// NewLsCmd creates a new ls command.
func NewLsCmd(flags *Flags, app *todos.App) *LsCmd {
	return &LsCmd{flags: flags, app: app}
}

// Register adds the ls command to the application.
func (cmd *LsCmd) Register(root *cli.Command) *cli.Command {
	root.Commands = append(root.Commands, &cli.Command{
		Name:      "ls",
		Aliases:   []string{"list"},
		Usage:     "List your todo items",
		UsageText: "todos ls [--status <PENDING|COMPLETED>] [--json]",
		Description: `Lists the logged-in user's todo items, newest first.

Examples:
  todos ls
  todos ls --status PENDING
  todos ls --json`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "status",
				Aliases:     []string{"s"},
				Usage:       "filter by status (PENDING, COMPLETED)",
				Destination: &cmd.status,
			},
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "emit items as JSON lines",
				Destination: &cmd.jsonMode,
			},
		},
		Action: cmd.run,
	})
	return root
}

func (cmd *LsCmd) run(ctx context.Context, c *cli.Command) error {
	owner, err := requireUser(cmd.app)
	if err != nil {
		return err
	}

	var filter todo.Status
	if cmd.status != "" {
		filter, err = todo.ParseStatus(cmd.status)
		if err != nil {
			return err
		}
	}

	items, err := cmd.app.Todos.List(ctx, owner)
	if err != nil {
		return err
	}

	if filter != "" {
		filtered := items[:0]
		for _, item := range items {
			if item.Status == filter {
				filtered = append(filtered, item)
			}
		}
		items = filtered
	}

	if cmd.jsonMode {
		for _, item := range items {
			if err := iojson.WriteLine(c.Root().Writer, item); err != nil {
				return err
			}
		}
		return nil
	}

	if len(items) == 0 {
		fmt.Fprintln(c.Root().Writer, "You have no todos yet.")
		return nil
	}

	renderList(c.Root().Writer, items)
	return nil
}
