package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-recipe-book/internal/logger"
	"github.com/MKhiriev/go-recipe-book/internal/tui"
)

type App struct {
	ui      UI
	storage io.Closer
	logger  *logger.Logger
}

// NewApp assembles the client runtime. storage is closed when Run returns.
func NewApp(ui UI, storage io.Closer, logger *logger.Logger) (*App, error) {
	if ui == nil {
		return nil, errors.New("client: ui is required")
	}
	return &App{ui: ui, storage: storage, logger: logger}, nil
}

// Run blocks until the user quits the UI or the process receives a
// termination signal. Quitting from the UI is not an error.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	return a.run(ctx)
}

func (a *App) run(ctx context.Context) error {
	defer a.closeStorage()

	a.logger.Info().Msg("starting client")
	err := a.ui.Run(ctx)
	switch {
	case err == nil, errors.Is(err, tui.ErrUserQuit):
		a.logger.Info().Msg("client stopped by user")
		return nil
	case ctx.Err() != nil:
		a.logger.Info().Msg("client stopped by signal")
		return nil
	default:
		return fmt.Errorf("ui run error: %w", err)
	}
}

func (a *App) closeStorage() {
	if a.storage == nil {
		return
	}
	if err := a.storage.Close(); err != nil {
		a.logger.Err(err).Msg("error closing local storage")
	}
}
