package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/todos/internal/core/todo"
	"github.com/colonyops/todos/internal/todos"
	"github.com/colonyops/todos/pkg/iojson"
)

// resolveItem finds one of owner's items by full id or unique short
// prefix. Prefix matching only searches the owner's own items, so it
// never widens the ownership scope the store enforces.
func resolveItem(ctx context.Context, app *todos.App, owner, arg string) (todo.Item, error) {
	item, err := app.Todos.Get(ctx, arg, owner)
	if err == nil {
		return item, nil
	}
	if !errors.Is(err, todo.ErrNotFound) {
		return todo.Item{}, err
	}

	items, err := app.Todos.List(ctx, owner)
	if err != nil {
		return todo.Item{}, err
	}

	var matches []todo.Item
	for _, candidate := range items {
		if strings.HasPrefix(candidate.ID, arg) {
			matches = append(matches, candidate)
		}
	}

	switch len(matches) {
	case 0:
		return todo.Item{}, fmt.Errorf("no todo found for %q", arg)
	case 1:
		return matches[0], nil
	default:
		return todo.Item{}, fmt.Errorf("%q matches %d todos, use a longer prefix", arg, len(matches))
	}
}

// ShowCmd implements the todos show command.
type ShowCmd struct {
	flags *Flags
	app   *todos.App

	jsonMode bool
}

// NewShowCmd creates a new show command.
func NewShowCmd(flags *Flags, app *todos.App) *ShowCmd {
	return &ShowCmd{flags: flags, app: app}
}

// Register adds the show command to the application.
func (cmd *ShowCmd) Register(root *cli.Command) *cli.Command {
	root.Commands = append(root.Commands, &cli.Command{
		Name:      "show",
		Usage:     "Show the details of a todo item",
		UsageText: "todos show <id> [--json]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "emit the item as JSON",
				Destination: &cmd.jsonMode,
			},
		},
		Action: cmd.run,
	})
	return root
}

func (cmd *ShowCmd) run(ctx context.Context, c *cli.Command) error {
	if c.NArg() < 1 {
		return fmt.Errorf("usage: todos show <id>")
	}

	owner, err := requireUser(cmd.app)
	if err != nil {
		return err
	}

	item, err := resolveItem(ctx, cmd.app, owner, c.Args().Get(0))
	if err != nil {
		return err
	}

	if cmd.jsonMode {
		return iojson.WriteWith(c.Root().Writer, item)
	}

	renderDetails(c.Root().Writer, item)
	return nil
}
