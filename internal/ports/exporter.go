package ports

import (
	"io"

	"github.com/aalvaropc/tally/internal/domain"
)

// Exporter renders expenses into an external format (csv, xlsx, ...).
type Exporter interface {
	Format() string
	Export(w io.Writer, expenses []domain.Expense, currency string) error
}
