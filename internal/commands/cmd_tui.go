package commands

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"todomvc/internal/remote"
	"todomvc/internal/tui"
	"todomvc/internal/viewmodel"
)

type TuiCmd struct {
	flags *Flags

	// flags
	remoteMode bool
	serverURL  string
}

// NewTuiCmd creates a new tui command.
func NewTuiCmd(flags *Flags) *TuiCmd {
	return &TuiCmd{flags: flags}
}

// Flags returns the TUI-specific flags for registration on the root command.
func (cmd *TuiCmd) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:        "remote",
			Usage:       "sync against a persistence service instead of keeping state locally",
			Sources:     cli.EnvVars("TODOMVC_REMOTE"),
			Destination: &cmd.remoteMode,
		},
		&cli.StringFlag{
			Name:        "server",
			Usage:       "persistence service base URL (defaults to server.url from config)",
			Sources:     cli.EnvVars("TODOMVC_SERVER"),
			Destination: &cmd.serverURL,
		},
	}
}

// Run executes the TUI. Exported for use as the default command.
func (cmd *TuiCmd) Run(ctx context.Context, c *cli.Command) error {
	scope, err := cmd.buildScope(ctx)
	if err != nil {
		return err
	}
	defer scope.Close()

	program := tea.NewProgram(tui.New(scope), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}

// buildScope selects the controller strategy. Local-authoritative keeps all
// state in process; remote-synced follows the persistence service.
func (cmd *TuiCmd) buildScope(ctx context.Context) (*viewmodel.Scope, error) {
	if !cmd.remoteMode {
		return viewmodel.NewScope(viewmodel.State{}), nil
	}

	url := cmd.serverURL
	if url == "" {
		url = cmd.flags.Config.Server.URL
	}

	logger := log.With().Str("component", "remote").Logger()
	client := remote.New(url, logger)

	scope, err := viewmodel.NewRemoteScope(ctx, viewmodel.State{}, client, logger)
	if err != nil {
		return nil, fmt.Errorf("connect to %s: %w", url, err)
	}
	return scope, nil
}
