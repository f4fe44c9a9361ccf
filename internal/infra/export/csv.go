package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/aalvaropc/tally/internal/domain"
	"github.com/aalvaropc/tally/internal/ports"
)

// CSV writes one row per expense with a header line.
type CSV struct{}

func NewCSV() *CSV { return &CSV{} }

var _ ports.Exporter = (*CSV)(nil)

func (CSV) Format() string { return "csv" }

func (CSV) Export(w io.Writer, expenses []domain.Expense, _ string) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"date", "amount", "category", "description"}); err != nil {
		return err
	}
	for _, e := range expenses {
		row := []string{
			e.Date,
			fmt.Sprintf("%.2f", e.Amount),
			e.Category,
			e.Description,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
