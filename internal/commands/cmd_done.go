package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/todos/internal/todos"
)

// DoneCmd implements the todos done command.
type DoneCmd struct {
	flags *Flags
	app   *todos.App
}

// NewDoneCmd creates a new done command.
func NewDoneCmd(flags *Flags, app *todos.App) *DoneCmd {
	return &DoneCmd{flags: flags, app: app}
}

// Register adds the done command to the application.
func (cmd *DoneCmd) Register(root *cli.Command) *cli.Command {
	root.Commands = append(root.Commands, &cli.Command{
		Name:      "done",
		Aliases:   []string{"complete"},
		Usage:     "Mark a todo item as completed",
		UsageText: "todos done <id>",
		Action:    cmd.run,
	})
	return root
}

func (cmd *DoneCmd) run(ctx context.Context, c *cli.Command) error {
	if c.NArg() < 1 {
		return fmt.Errorf("usage: todos done <id>")
	}

	owner, err := requireUser(cmd.app)
	if err != nil {
		return err
	}

	item, err := resolveItem(ctx, cmd.app, owner, c.Args().Get(0))
	if err != nil {
		return err
	}

	completed, err := cmd.app.Todos.Complete(ctx, item.ID, owner)
	if errors.Is(err, todos.ErrAlreadyCompleted) {
		return fmt.Errorf("todo %q is already completed", item.Title)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(c.Root().Writer, "Marked %q as completed.\n", completed.Title)
	return nil
}
