package commands

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"todomvc/internal/remote"
)

// TodoCmd provides non-interactive access to a running persistence service,
// mainly for scripting and smoke checks.
type TodoCmd struct {
	flags *Flags

	// flags
	serverURL string
}

// NewTodoCmd creates a new todo command.
func NewTodoCmd(flags *Flags) *TodoCmd {
	return &TodoCmd{flags: flags}
}

// Register adds the todo command and its subcommands to the application.
func (cmd *TodoCmd) Register(app *cli.Command) *cli.Command {
	serverFlag := &cli.StringFlag{
		Name:        "server",
		Usage:       "persistence service base URL (defaults to server.url from config)",
		Sources:     cli.EnvVars("TODOMVC_SERVER"),
		Destination: &cmd.serverURL,
	}

	app.Commands = append(app.Commands, &cli.Command{
		Name:  "todo",
		Usage: "Manage todos on a running service",
		Commands: []*cli.Command{
			{
				Name:      "ls",
				Usage:     "List todos",
				UsageText: "todomvc todo ls",
				Flags:     []cli.Flag{serverFlag},
				Action:    cmd.runLs,
			},
			{
				Name:      "add",
				Usage:     "Add a todo",
				UsageText: "todomvc todo add <title>",
				Flags:     []cli.Flag{serverFlag},
				Action:    cmd.runAdd,
			},
		},
	})

	return app
}

func (cmd *TodoCmd) client() *remote.HTTPClient {
	url := cmd.serverURL
	if url == "" {
		url = cmd.flags.Config.Server.URL
	}
	return remote.New(url, log.With().Str("component", "remote").Logger())
}

func (cmd *TodoCmd) runLs(ctx context.Context, c *cli.Command) error {
	todos, err := cmd.client().ListTodos(ctx)
	if err != nil {
		return fmt.Errorf("list todos: %w", err)
	}

	if len(todos) == 0 {
		fmt.Println("no todos")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tDONE\tTITLE")
	for _, item := range todos {
		done := " "
		if item.Completed {
			done = "x"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", item.ID, done, item.Title)
	}
	return w.Flush()
}

func (cmd *TodoCmd) runAdd(ctx context.Context, c *cli.Command) error {
	title := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
	if title == "" {
		return fmt.Errorf("usage: todomvc todo add <title>")
	}

	item, err := cmd.client().CreateTodo(ctx, title)
	if err != nil {
		return fmt.Errorf("add todo: %w", err)
	}

	fmt.Printf("added %s (%s)\n", item.Title, item.ID)
	return nil
}
