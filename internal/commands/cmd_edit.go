package commands

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/todos/internal/core/todo"
	"github.com/colonyops/todos/internal/core/validate"
	"github.com/colonyops/todos/internal/todos"
)

// EditCmd implements the todos edit command.
type EditCmd struct {
	flags *Flags
	app   *todos.App

	title    string
	details  string
	priority string
	due      string
	clearDue bool
}

// NewEditCmd creates a new edit command.
func NewEditCmd(flags *Flags, app *todos.App) *EditCmd {
	return &EditCmd{flags: flags, app: app}
}

// Register adds the edit command to the application.
func (cmd *EditCmd) Register(root *cli.Command) *cli.Command {
	root.Commands = append(root.Commands, &cli.Command{
		Name:      "edit",
		Usage:     "Edit a todo item",
		UsageText: "todos edit <id> [--title <t>] [--details <d>] [--priority <p>] [--due <date>|--clear-due]",
		Description: `Edits a todo item's fields. With no field flags, opens an
interactive form prefilled with the current values.

Status is not editable here; use 'todos done' to complete an item.

Examples:
  todos edit 1b9f
  todos edit 1b9f --priority HIGH
  todos edit 1b9f --clear-due`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "title",
				Aliases:     []string{"t"},
				Usage:       "new title",
				Destination: &cmd.title,
			},
			&cli.StringFlag{
				Name:        "details",
				Aliases:     []string{"d"},
				Usage:       "new details",
				Destination: &cmd.details,
			},
			&cli.StringFlag{
				Name:        "priority",
				Aliases:     []string{"p"},
				Usage:       "new priority (HIGH, MID, LOW)",
				Destination: &cmd.priority,
			},
			&cli.StringFlag{
				Name:        "due",
				Usage:       "new due date",
				Destination: &cmd.due,
			},
			&cli.BoolFlag{
				Name:        "clear-due",
				Usage:       "remove the due date",
				Destination: &cmd.clearDue,
			},
		},
		Action: cmd.run,
	})
	return root
}

func (cmd *EditCmd) run(ctx context.Context, c *cli.Command) error {
	if c.NArg() < 1 {
		return fmt.Errorf("usage: todos edit <id>")
	}
	if cmd.due != "" && cmd.clearDue {
		return fmt.Errorf("--due and --clear-due are mutually exclusive")
	}

	owner, err := requireUser(cmd.app)
	if err != nil {
		return err
	}

	item, err := resolveItem(ctx, cmd.app, owner, c.Args().Get(0))
	if err != nil {
		return err
	}

	if cmd.hasFieldFlags() {
		if err := cmd.applyFlags(&item); err != nil {
			return err
		}
	} else {
		if err := editForm(&item); err != nil {
			return err
		}
	}

	if _, err := cmd.app.Todos.Save(ctx, item); err != nil {
		return err
	}

	fmt.Fprintf(c.Root().Writer, "Updated %q.\n", item.Title)
	return nil
}

func (cmd *EditCmd) hasFieldFlags() bool {
	return cmd.title != "" || cmd.details != "" || cmd.priority != "" || cmd.due != "" || cmd.clearDue
}

func (cmd *EditCmd) applyFlags(item *todo.Item) error {
	if cmd.title != "" {
		item.Title = cmd.title
	}
	if cmd.details != "" {
		item.Details = cmd.details
	}
	if cmd.priority != "" {
		priority, err := todo.ParsePriority(cmd.priority)
		if err != nil {
			return err
		}
		item.Priority = priority
	}
	if cmd.due != "" {
		item.SetDueDate(cmd.due)
	}
	if cmd.clearDue {
		item.SetDueDate("")
	}
	return nil
}

// editForm runs an interactive form prefilled with the item's current
// values and assigns the result back onto the item.
func editForm(item *todo.Item) error {
	due := ""
	if item.DueDate != nil {
		due = *item.DueDate
	}

	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Title").
			Validate(validate.Title).
			Value(&item.Title),
		huh.NewText().
			Title("Details").
			Value(&item.Details),
		huh.NewSelect[todo.Priority]().
			Title("Priority").
			Options(priorityOptions()...).
			Value(&item.Priority),
		huh.NewInput().
			Title("Due date (empty for none)").
			Value(&due),
	))

	if err := form.Run(); err != nil {
		return err
	}

	item.SetDueDate(due)
	return nil
}

func priorityOptions() []huh.Option[todo.Priority] {
	opts := make([]huh.Option[todo.Priority], 0, len(todo.Priorities()))
	for _, p := range todo.Priorities() {
		opts = append(opts, huh.NewOption(string(p), p))
	}
	return opts
}
