package commands

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/todos/internal/core/todo"
	"github.com/colonyops/todos/internal/core/validate"
	"github.com/colonyops/todos/internal/todos"
)

// AddCmd implements the todos add command.
type AddCmd struct {
	flags *Flags
	app   *todos.App

	title    string
	details  string
	priority string
	due      string
}

// NewAddCmd creates a new add command.
func NewAddCmd(flags *Flags, app *todos.App) *AddCmd {
	return &AddCmd{flags: flags, app: app}
}

// Register adds the add command to the application.
func (cmd *AddCmd) Register(root *cli.Command) *cli.Command {
	root.Commands = append(root.Commands, &cli.Command{
		Name:      "add",
		Usage:     "Add a todo item",
		UsageText: "todos add --title <title> [--details <text>] [--priority <HIGH|MID|LOW>] [--due <date>]",
		Description: `Adds a pending todo item for the logged-in user.

An unrecognized --priority value falls back to MID with a warning rather
than failing, matching the interactive prompt behavior.

Examples:
  todos add --title "Buy milk"
  todos add --title "File taxes" --priority HIGH --due 2026-04-15`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "title",
				Aliases:     []string{"t"},
				Usage:       "title for the todo item",
				Required:    true,
				Destination: &cmd.title,
			},
			&cli.StringFlag{
				Name:        "details",
				Aliases:     []string{"d"},
				Usage:       "optional free-text details",
				Destination: &cmd.details,
			},
			&cli.StringFlag{
				Name:        "priority",
				Aliases:     []string{"p"},
				Usage:       "priority (HIGH, MID, LOW)",
				Value:       string(todo.PriorityMid),
				Destination: &cmd.priority,
			},
			&cli.StringFlag{
				Name:        "due",
				Usage:       "optional due date",
				Destination: &cmd.due,
			},
		},
		Action: cmd.run,
	})
	return root
}

func (cmd *AddCmd) run(ctx context.Context, c *cli.Command) error {
	owner, err := requireUser(cmd.app)
	if err != nil {
		return err
	}

	if err := validate.TitleField("title", cmd.title); err != nil {
		return err
	}

	priority, err := todo.ParsePriority(cmd.priority)
	if err != nil {
		// CLI-layer default policy: the core never coerces.
		log.Warn().Str("priority", cmd.priority).Msg("invalid priority, defaulting to MID")
		fmt.Fprintln(c.Root().Writer, "Invalid priority. Defaulting to MID.")
		priority = todo.PriorityMid
	}

	item, err := cmd.app.Todos.Add(ctx, owner, cmd.title, cmd.details, priority, cmd.due)
	if err != nil {
		return err
	}

	fmt.Fprintf(c.Root().Writer, "Todo added successfully! (%s)\n", shortID(item.ID))
	return nil
}
