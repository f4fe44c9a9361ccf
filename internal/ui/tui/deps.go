package tui

import (
	"log/slog"

	"github.com/aalvaropc/tally/internal/ui/console"
)

type Deps struct {
	Store         console.Store
	Currency      string
	WorkspaceRoot string
	DataPath      string

	Logger *slog.Logger
	Debug  bool
}
