package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-recipe-book/internal/logger"
	"github.com/MKhiriev/go-recipe-book/internal/service"
	"github.com/MKhiriev/go-recipe-book/models"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUserQuit = errors.New("user quit the program")

type TUI struct {
	services  *service.ClientServices
	pageSize  int
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(services *service.ClientServices, pageSize int, buildInfo models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	if services == nil || services.AuthService == nil || services.RecipeService == nil {
		return nil, errors.New("tui: client services are not configured")
	}
	return &TUI{
		services:  services,
		pageSize:  pageSize,
		buildInfo: buildInfo,
		logger:    logger,
	}, nil
}

// NewModel builds the router with every page registered. The returned cancel
// func ends the session subscription.
func (t *TUI) NewModel(ctx context.Context) (RootModel, func()) {
	auth := t.services.AuthService
	recipes := t.services.RecipeService

	pages := map[Page]tea.Model{
		PageCatalog:   NewCatalogModel(ctx, recipes, t.pageSize),
		PageDetail:    NewDetailModel(ctx, recipes),
		PageLogin:     NewLoginModel(ctx, auth),
		PageDashboard: NewDashboardModel(ctx, recipes, t.pageSize),
	}

	sessionCh, cancel := auth.Subscribe()
	return NewRootModel(ctx, auth, pages, sessionCh, t.buildInfo), cancel
}

// Run blocks until the user quits. Quitting is reported as [ErrUserQuit].
func (t *TUI) Run(ctx context.Context) error {
	root, cancel := t.NewModel(ctx)
	defer cancel()

	finalModel, err := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		t.logger.Err(err).Msg("tui program failed")
		return err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.QuitByUser() {
		return ErrUserQuit
	}
	return nil
}
