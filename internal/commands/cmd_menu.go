package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/colonyops/todos/internal/core/styles"
	"github.com/colonyops/todos/internal/core/todo"
	"github.com/colonyops/todos/internal/core/user"
	"github.com/colonyops/todos/internal/core/validate"
	"github.com/colonyops/todos/internal/todos"
)

// MenuCmd is the interactive menu loop that runs when todos is invoked
// without a subcommand.
type MenuCmd struct {
	flags *Flags
	app   *todos.App
}

// NewMenuCmd creates a new menu command.
func NewMenuCmd(flags *Flags, app *todos.App) *MenuCmd {
	return &MenuCmd{flags: flags, app: app}
}

// menu choices
const (
	choiceLogin    = "login"
	choiceSignup   = "signup"
	choiceAdd      = "add"
	choiceView     = "view"
	choiceDetails  = "details"
	choiceEdit     = "edit"
	choiceComplete = "complete"
	choiceLogout   = "logout"
	choiceExit     = "exit"
)

// Run drives the menu loop until the user exits or aborts.
func (cmd *MenuCmd) Run(ctx context.Context, c *cli.Command) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return fmt.Errorf("the interactive menu needs a terminal; see 'todos --help' for scriptable commands")
	}

	out := c.Root().Writer

	for {
		current, err := cmd.app.Auth.CurrentUser()
		if errors.Is(err, todos.ErrNotLoggedIn) {
			done, err := cmd.preLoginMenu(ctx, out)
			if done || err != nil {
				return cmd.exitErr(out, err)
			}
			continue
		}
		if err != nil {
			return err
		}

		done, err := cmd.mainMenu(ctx, out, current)
		if done || err != nil {
			return cmd.exitErr(out, err)
		}
	}
}

// exitErr translates a menu abort (ctrl+c / esc) into a clean exit.
func (cmd *MenuCmd) exitErr(out io.Writer, err error) error {
	if err == nil || errors.Is(err, huh.ErrUserAborted) {
		fmt.Fprintln(out, "Goodbye!")
		return nil
	}
	return err
}

func (cmd *MenuCmd) preLoginMenu(ctx context.Context, out io.Writer) (bool, error) {
	var choice string
	err := huh.NewSelect[string]().
		Title("TO-DO LIST APPLICATION").
		Options(
			huh.NewOption("Login", choiceLogin),
			huh.NewOption("Sign Up", choiceSignup),
			huh.NewOption("Exit", choiceExit),
		).
		Value(&choice).
		Run()
	if err != nil {
		return true, err
	}

	switch choice {
	case choiceLogin:
		return false, cmd.handleLogin(ctx, out)
	case choiceSignup:
		return false, cmd.handleSignup(ctx, out)
	default:
		return true, nil
	}
}

func (cmd *MenuCmd) mainMenu(ctx context.Context, out io.Writer, current string) (bool, error) {
	var choice string
	err := huh.NewSelect[string]().
		Title(fmt.Sprintf("MAIN MENU (%s)", current)).
		Options(
			huh.NewOption("Add Todo", choiceAdd),
			huh.NewOption("View Todos", choiceView),
			huh.NewOption("View Details", choiceDetails),
			huh.NewOption("Edit Todo", choiceEdit),
			huh.NewOption("Mark Completed", choiceComplete),
			huh.NewOption("Logout", choiceLogout),
			huh.NewOption("Exit", choiceExit),
		).
		Value(&choice).
		Run()
	if err != nil {
		return true, err
	}

	switch choice {
	case choiceAdd:
		return false, cmd.handleAdd(ctx, out, current)
	case choiceView:
		return false, cmd.handleView(ctx, out, current)
	case choiceDetails:
		return false, cmd.handleDetails(ctx, out, current)
	case choiceEdit:
		return false, cmd.handleEdit(ctx, out, current)
	case choiceComplete:
		return false, cmd.handleComplete(ctx, out, current)
	case choiceLogout:
		if err := cmd.app.Auth.Logout(ctx); err != nil {
			return false, err
		}
		fmt.Fprintln(out, "Logged out successfully.")
		return false, nil
	default:
		return true, nil
	}
}

func (cmd *MenuCmd) handleLogin(ctx context.Context, out io.Writer) error {
	var username, password string
	err := huh.NewForm(huh.NewGroup(
		huh.NewInput().Title("Username").Validate(validate.Username).Value(&username),
		huh.NewInput().Title("Password").EchoMode(huh.EchoModePassword).Value(&password),
	)).Run()
	if err != nil {
		return err
	}

	if err := cmd.app.Auth.Login(ctx, username, password); err != nil {
		if errors.Is(err, user.ErrInvalidCredentials) {
			fmt.Fprintln(out, styles.ErrorMsg.Render("Invalid username or password."))
			return nil
		}
		return err
	}

	fmt.Fprintf(out, "\nWelcome, %s!\n", username)
	return nil
}

func (cmd *MenuCmd) handleSignup(ctx context.Context, out io.Writer) error {
	var username, password string
	err := huh.NewForm(huh.NewGroup(
		huh.NewInput().Title("New username").Validate(validate.Username).Value(&username),
		huh.NewInput().Title("Password").EchoMode(huh.EchoModePassword).Validate(validate.Password).Value(&password),
	)).Run()
	if err != nil {
		return err
	}

	if err := cmd.app.Auth.Register(ctx, username, password); err != nil {
		if errors.Is(err, user.ErrExists) {
			fmt.Fprintln(out, styles.ErrorMsg.Render("Username already exists."))
			return nil
		}
		return err
	}

	fmt.Fprintf(out, "Account created successfully for %s!\n", username)
	return nil
}

func (cmd *MenuCmd) handleAdd(ctx context.Context, out io.Writer, owner string) error {
	var (
		title    string
		details  string
		priority = todo.PriorityMid
		due      string
	)

	err := huh.NewForm(huh.NewGroup(
		huh.NewInput().Title("Title").Validate(validate.Title).Value(&title),
		huh.NewText().Title("Details").Value(&details),
		huh.NewSelect[todo.Priority]().Title("Priority").Options(priorityOptions()...).Value(&priority),
		huh.NewInput().Title("Due date (empty for none)").Value(&due),
	)).Run()
	if err != nil {
		return err
	}

	if _, err := cmd.app.Todos.Add(ctx, owner, title, details, priority, due); err != nil {
		return err
	}

	fmt.Fprintln(out, styles.Success.Render("Todo added successfully!"))
	return nil
}

func (cmd *MenuCmd) handleView(ctx context.Context, out io.Writer, owner string) error {
	items, err := cmd.app.Todos.List(ctx, owner)
	if err != nil {
		return err
	}

	if len(items) == 0 {
		fmt.Fprintln(out, "You have no todos yet.")
		return nil
	}

	fmt.Fprintln(out, styles.Title.Render("YOUR TODOS"))
	renderList(out, items)
	return nil
}

// pickItem lets the user choose one of items by title. Returns false when
// there is nothing to pick from.
func pickItem(title string, items []todo.Item) (todo.Item, bool, error) {
	if len(items) == 0 {
		return todo.Item{}, false, nil
	}

	opts := make([]huh.Option[int], 0, len(items))
	for i, item := range items {
		label := fmt.Sprintf("%s [%s/%s]", item.Title, item.Status, item.Priority)
		opts = append(opts, huh.NewOption(label, i))
	}

	var idx int
	err := huh.NewSelect[int]().Title(title).Options(opts...).Value(&idx).Run()
	if err != nil {
		return todo.Item{}, false, err
	}

	return items[idx], true, nil
}

func (cmd *MenuCmd) handleDetails(ctx context.Context, out io.Writer, owner string) error {
	items, err := cmd.app.Todos.List(ctx, owner)
	if err != nil {
		return err
	}

	item, ok, err := pickItem("View which todo?", items)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(out, "You have no todos yet.")
		return nil
	}

	renderDetails(out, item)
	return nil
}

func (cmd *MenuCmd) handleEdit(ctx context.Context, out io.Writer, owner string) error {
	items, err := cmd.app.Todos.List(ctx, owner)
	if err != nil {
		return err
	}

	item, ok, err := pickItem("Edit which todo?", items)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(out, "You have no todos yet.")
		return nil
	}

	if err := editForm(&item); err != nil {
		return err
	}

	if _, err := cmd.app.Todos.Save(ctx, item); err != nil {
		return err
	}

	fmt.Fprintln(out, styles.Success.Render("Todo updated successfully!"))
	return nil
}

func (cmd *MenuCmd) handleComplete(ctx context.Context, out io.Writer, owner string) error {
	pending, err := cmd.app.Todos.Pending(ctx, owner)
	if err != nil {
		return err
	}

	item, ok, err := pickItem("Mark which todo as completed?", pending)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(out, "You have no pending todos.")
		return nil
	}

	if _, err := cmd.app.Todos.Complete(ctx, item.ID, owner); err != nil {
		return err
	}

	fmt.Fprintln(out, styles.Success.Render(fmt.Sprintf("Marked %q as completed!", item.Title)))
	return nil
}
