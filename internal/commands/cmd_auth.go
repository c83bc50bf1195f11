package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/todos/internal/core/user"
	"github.com/colonyops/todos/internal/core/validate"
	"github.com/colonyops/todos/internal/todos"
)

// AuthCmd implements the account commands: register, login, logout, whoami.
type AuthCmd struct {
	flags *Flags
	app   *todos.App

	username string
	password string
}

// NewAuthCmd creates a new auth command group.
func NewAuthCmd(flags *Flags, app *todos.App) *AuthCmd {
	return &AuthCmd{flags: flags, app: app}
}

// Register adds the account commands to the application.
func (cmd *AuthCmd) Register(root *cli.Command) *cli.Command {
	root.Commands = append(root.Commands,
		cmd.registerCmd(),
		cmd.loginCmd(),
		cmd.logoutCmd(),
		cmd.whoamiCmd(),
	)
	return root
}

func (cmd *AuthCmd) credentialFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "username",
			Aliases:     []string{"u"},
			Usage:       "account username (prompted when omitted)",
			Destination: &cmd.username,
		},
		&cli.StringFlag{
			Name:        "password",
			Aliases:     []string{"p"},
			Usage:       "account password (prompted when omitted)",
			Destination: &cmd.password,
		},
	}
}

func (cmd *AuthCmd) registerCmd() *cli.Command {
	return &cli.Command{
		Name:      "register",
		Usage:     "Create a new account",
		UsageText: "todos register [--username <name>] [--password <pw>]",
		Description: `Creates a new account. Missing credentials are prompted for
interactively.

Passwords are stored as plaintext in the users document. Do not reuse a
password you care about.`,
		Flags:  cmd.credentialFlags(),
		Action: cmd.runRegister,
	}
}

func (cmd *AuthCmd) loginCmd() *cli.Command {
	return &cli.Command{
		Name:      "login",
		Usage:     "Log in and start a session",
		UsageText: "todos login [--username <name>] [--password <pw>]",
		Flags:     cmd.credentialFlags(),
		Action:    cmd.runLogin,
	}
}

func (cmd *AuthCmd) logoutCmd() *cli.Command {
	return &cli.Command{
		Name:   "logout",
		Usage:  "End the current session",
		Action: cmd.runLogout,
	}
}

func (cmd *AuthCmd) whoamiCmd() *cli.Command {
	return &cli.Command{
		Name:   "whoami",
		Usage:  "Print the logged-in username",
		Action: cmd.runWhoami,
	}
}

// promptCredentials fills in whichever of username/password was not passed
// as a flag.
func (cmd *AuthCmd) promptCredentials() error {
	var fields []huh.Field

	if cmd.username == "" {
		fields = append(fields, huh.NewInput().
			Title("Username").
			Validate(validate.Username).
			Value(&cmd.username))
	}
	if cmd.password == "" {
		fields = append(fields, huh.NewInput().
			Title("Password").
			EchoMode(huh.EchoModePassword).
			Validate(validate.Password).
			Value(&cmd.password))
	}

	if len(fields) == 0 {
		return nil
	}

	return huh.NewForm(huh.NewGroup(fields...)).Run()
}

func (cmd *AuthCmd) runRegister(ctx context.Context, c *cli.Command) error {
	if err := cmd.promptCredentials(); err != nil {
		return err
	}

	err := cmd.app.Auth.Register(ctx, cmd.username, cmd.password)
	switch {
	case errors.Is(err, user.ErrExists):
		return fmt.Errorf("username %q already exists", cmd.username)
	case err != nil:
		return err
	}

	fmt.Fprintf(c.Root().Writer, "Account created successfully for %s!\n", cmd.username)
	return nil
}

func (cmd *AuthCmd) runLogin(ctx context.Context, c *cli.Command) error {
	if err := cmd.promptCredentials(); err != nil {
		return err
	}

	if err := cmd.app.Auth.Login(ctx, cmd.username, cmd.password); err != nil {
		return err
	}

	fmt.Fprintf(c.Root().Writer, "Welcome, %s!\n", cmd.username)
	return nil
}

func (cmd *AuthCmd) runLogout(ctx context.Context, c *cli.Command) error {
	if err := cmd.app.Auth.Logout(ctx); err != nil {
		return err
	}

	fmt.Fprintln(c.Root().Writer, "Logged out successfully.")
	return nil
}

func (cmd *AuthCmd) runWhoami(ctx context.Context, c *cli.Command) error {
	current, err := cmd.app.Auth.CurrentUser()
	if errors.Is(err, todos.ErrNotLoggedIn) {
		return fmt.Errorf("not logged in; run 'todos login' first")
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(c.Root().Writer, current)
	return nil
}
