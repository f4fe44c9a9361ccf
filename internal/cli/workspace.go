package cli

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/aalvaropc/tally/internal/domain"
	"github.com/aalvaropc/tally/internal/infra/config"
	"github.com/aalvaropc/tally/internal/infra/jsonstore"
	"github.com/aalvaropc/tally/internal/infra/logger"
	"github.com/aalvaropc/tally/internal/infra/workspacefinder"
	"github.com/aalvaropc/tally/internal/usecase"
)

type appCtx struct {
	root  string
	cfg   domain.Config
	repo  *jsonstore.JSONStore
	store *usecase.ExpenseStore
	log   *slog.Logger

	cleanup func() error
}

// openApp resolves the workspace, loads config, starts logging and loads the store.
func openApp(g globalFlags) (*appCtx, error) {
	root, err := resolveWorkspaceRoot(g.workspace)
	if err != nil {
		return nil, err
	}

	cfg, err := config.LoadConfig(root)
	if err != nil {
		return nil, err
	}
	if d := strings.TrimSpace(g.dataFile); d != "" {
		abs, err := filepath.Abs(d)
		if err != nil {
			return nil, fmt.Errorf("invalid data path: %w", err)
		}
		cfg.DataFile = abs
	}

	app := &appCtx{root: root, cfg: cfg}

	// Logging is best effort: on failure L() stays a discard logger.
	app.cleanup, _ = logger.Setup(logger.Config{
		Root:  root,
		Dir:   cfg.Paths.LogsDir,
		Debug: g.debug,
	})
	app.log = logger.L()

	app.repo = jsonstore.NewJSONStore(root, cfg)
	app.store = usecase.NewExpenseStore(app.repo, cfg.Categories, usecase.WithLogger(app.log))

	if err := app.store.Load(); err != nil {
		app.close()
		return nil, err
	}

	app.log.Info("app.open",
		"workspace", root,
		"data", app.repo.Path(),
		"categories", cfg.Categories.Len(),
		"debug", g.debug,
	)
	return app, nil
}

func (a *appCtx) close() {
	if a.cleanup != nil {
		_ = a.cleanup()
		a.cleanup = nil
	}
}

func resolveWorkspaceRoot(workspaceFlag string) (string, error) {
	w := strings.TrimSpace(workspaceFlag)
	if w != "" {
		abs, err := filepath.Abs(w)
		if err != nil {
			return "", fmt.Errorf("invalid workspace path: %w", err)
		}
		return abs, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}
	return workspacefinder.NewFinder().RootOrDir(wd), nil
}
