package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/todos/internal/commands"
	"github.com/colonyops/todos/internal/core/config"
	"github.com/colonyops/todos/internal/core/styles"
	"github.com/colonyops/todos/internal/store/fs"
	"github.com/colonyops/todos/internal/store/jsonfile"
	"github.com/colonyops/todos/internal/todos"
	"github.com/colonyops/todos/pkg/logutils"
)

var (
	// Build information. Populated at build-time via -ldflags flag.
	// When installed via `go install module@version`, init() populates
	// these from runtime/debug.BuildInfo instead.
	version = "dev"
	commit  = "HEAD"
	date    = "now"
)

func build() string {
	v, c, d := version, commit, date

	// When installed via `go install module@version`, ldflags aren't set
	// so version remains "dev". Fall back to runtime/debug.BuildInfo which
	// Go populates automatically with the module version and VCS metadata.
	if v == "dev" {
		if info, ok := debug.ReadBuildInfo(); ok {
			if mv := info.Main.Version; mv != "" && mv != "(devel)" {
				v = mv
			}
			for _, s := range info.Settings {
				switch s.Key {
				case "vcs.revision":
					c = s.Value
				case "vcs.time":
					d = s.Value
				}
			}
		}
	}

	short := c
	if len(c) > 7 {
		short = c[:7]
	}

	return fmt.Sprintf("%s (%s) %s", v, short, d)
}

func main() {
	ctx := context.Background()

	var (
		logCloser func()
		todosApp  = &todos.App{}
	)

	flags := &commands.Flags{}

	app := &cli.Command{
		Name:      "todos",
		Usage:     "Track personal todo lists from the terminal",
		UsageText: "todos [global options] command [command options]",
		Description: `Todos is a small multi-user task tracker. Each account keeps its own
list of todos with a title, details, priority, and an optional due date.

Run 'todos' with no arguments to open the interactive menu.
Run 'todos add' or 'todos ls' for scriptable one-shot commands.`,
		Version: build(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error, fatal, panic)",
				Sources:     cli.EnvVars("TODOS_LOG_LEVEL"),
				Value:       "info",
				Destination: &flags.LogLevel,
			},
			&cli.StringFlag{
				Name:        "log-file",
				Usage:       "path to log file (defaults to <data-dir>/todos.log)",
				Sources:     cli.EnvVars("TODOS_LOG_FILE"),
				Destination: &flags.LogFile,
			},
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "path to config file",
				Sources:     cli.EnvVars("TODOS_CONFIG"),
				Value:       commands.DefaultConfigPath(),
				Destination: &flags.ConfigPath,
			},
			&cli.StringFlag{
				Name:        "data-dir",
				Usage:       "path to data directory",
				Sources:     cli.EnvVars("TODOS_DATA_DIR"),
				Value:       commands.DefaultDataDir(),
				Destination: &flags.DataDir,
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			// Always log to a file; use explicit path or default to <datadir>/todos.log
			logFile := flags.LogFile
			if logFile == "" {
				logFile = filepath.Join(flags.DataDir, "todos.log")
			}

			logger, closer, err := logutils.New(flags.LogLevel, logFile)
			if err != nil {
				return ctx, fmt.Errorf("setup logger: %w", err)
			}
			log.Logger = logger
			logCloser = closer

			cfg, err := config.Load(flags.ConfigPath, flags.DataDir)
			if err != nil {
				return ctx, fmt.Errorf("load config: %w", err)
			}

			// Apply configured theme (validation ensures name is valid)
			palette, _ := styles.GetPalette(cfg.Theme)
			styles.SetTheme(palette)

			users, err := jsonfile.NewUserStore(cfg.UsersFile)
			if err != nil {
				return ctx, fmt.Errorf("open user store: %w", err)
			}

			items, err := jsonfile.NewTodoStore(cfg.TodosFile)
			if err != nil {
				return ctx, fmt.Errorf("open todo store: %w", err)
			}

			session := fs.NewLoginState(cfg.DataDir)

			// Populate the pre-allocated App struct (commands already hold a pointer to it)
			*todosApp = *todos.NewApp(users, items, session, cfg, log.Logger)

			return ctx, nil
		},
		After: func(ctx context.Context, c *cli.Command) error {
			if logCloser != nil {
				logCloser()
			}
			return nil
		},
	}

	menuCmd := commands.NewMenuCmd(flags, todosApp)

	app = commands.NewAuthCmd(flags, todosApp).Register(app)
	app = commands.NewAddCmd(flags, todosApp).Register(app)
	app = commands.NewLsCmd(flags, todosApp).Register(app)
	app = commands.NewShowCmd(flags, todosApp).Register(app)
	app = commands.NewDoneCmd(flags, todosApp).Register(app)
	app = commands.NewEditCmd(flags, todosApp).Register(app)

	// Open the interactive menu when no subcommand is provided
	app.Action = func(ctx context.Context, c *cli.Command) error {
		if c.Args().Len() > 0 {
			return fmt.Errorf("unknown command %q. Run 'todos --help' for usage", c.Args().First())
		}
		return menuCmd.Run(ctx, c)
	}

	exitCode := 0
	runErr := app.Run(ctx, os.Args)
	if runErr != nil {
		fmt.Println()
		fmt.Println(runErr.Error())
		exitCode = 1
	}

	os.Exit(exitCode)
}
