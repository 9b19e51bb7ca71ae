package commands

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"todomvc/internal/core/config"
	"todomvc/internal/core/todo"
	"todomvc/internal/data/stores"
	"todomvc/internal/server"
)

type ServeCmd struct {
	flags *Flags

	// flags
	listen  string
	backend string
}

// NewServeCmd creates a new serve command.
func NewServeCmd(flags *Flags) *ServeCmd {
	return &ServeCmd{flags: flags}
}

// Register adds the serve command to the application.
func (cmd *ServeCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "serve",
		Usage:     "Run the todo persistence service",
		UsageText: "todomvc serve [--listen :8088] [--storage memory|file|redis]",
		Description: `Serves the todo REST API plus the /api/todos/stream subscription
endpoint that remote-synced clients follow.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "listen",
				Usage:       "listen address (defaults to server.listen from config)",
				Sources:     cli.EnvVars("TODOMVC_LISTEN"),
				Destination: &cmd.listen,
			},
			&cli.StringFlag{
				Name:        "storage",
				Usage:       "storage backend: memory, file, or redis (defaults to storage.backend from config)",
				Sources:     cli.EnvVars("TODOMVC_STORAGE"),
				Destination: &cmd.backend,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *ServeCmd) run(ctx context.Context, c *cli.Command) error {
	store, err := cmd.buildStore()
	if err != nil {
		return err
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
	}))

	svcLogger := log.With().Str("component", "server").Logger()
	server.New(store, svcLogger).Register(e)

	listen := cmd.listen
	if listen == "" {
		listen = cmd.flags.Config.Server.Listen
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := e.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("shutdown failed")
		}
	}()

	log.Info().Str("listen", listen).Str("storage", cmd.storageBackend()).Msg("serving todos")
	if err := e.Start(listen); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("start server: %w", err)
	}
	return nil
}

func (cmd *ServeCmd) storageBackend() string {
	if cmd.backend != "" {
		return cmd.backend
	}
	return cmd.flags.Config.Storage.Backend
}

func (cmd *ServeCmd) buildStore() (todo.Store, error) {
	cfg := cmd.flags.Config

	switch cmd.storageBackend() {
	case config.StorageMemory:
		return stores.NewMemStore(), nil

	case config.StorageFile:
		return stores.NewJSONStore(cfg.Storage.Path), nil

	case config.StorageRedis:
		rc := redis.NewClient(&redis.Options{Addr: cfg.Storage.Redis.Addr})
		return stores.NewRedisStore(rc, cfg.Storage.Redis.Key), nil

	default:
		return nil, fmt.Errorf("unknown storage backend %q", cmd.storageBackend())
	}
}
