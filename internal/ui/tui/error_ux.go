package tui

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/aalvaropc/tally/internal/domain"
)

func userMessage(err error) string {
	if err == nil {
		return ""
	}

	if errors.Is(err, domain.ErrNoExpenses) {
		return "No expenses recorded yet."
	}

	var oe *domain.OpError
	if errors.As(err, &oe) {
		switch oe.Kind {
		case domain.KindInvalidInput:
			return "Error: " + domain.Reason(err)

		case domain.KindInvalidData:
			if strings.TrimSpace(oe.Path) != "" {
				return "Data file is corrupt: " + filepath.Base(oe.Path)
			}
			return "Data file is corrupt"

		case domain.KindInvalidConfig:
			if strings.TrimSpace(oe.Path) != "" {
				return "Invalid config at " + filepath.Base(oe.Path)
			}
			return "Invalid config"

		case domain.KindNotFound:
			return "Not found"

		default:
			return "Unexpected error (see logs)"
		}
	}

	return "Unexpected error (see logs)"
}
