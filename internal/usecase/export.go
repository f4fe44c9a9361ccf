package usecase

import (
	"io"
	"sort"
	"strings"

	"github.com/aalvaropc/tally/internal/domain"
	"github.com/aalvaropc/tally/internal/ports"
)

// Export writes every expense through the exporter registered for a format.
type Export struct {
	src       expenseLister
	currency  string
	exporters map[string]ports.Exporter
}

func NewExport(src expenseLister, currency string, exporters ...ports.Exporter) *Export {
	uc := &Export{
		src:       src,
		currency:  currency,
		exporters: make(map[string]ports.Exporter, len(exporters)),
	}
	for _, e := range exporters {
		uc.exporters[strings.ToLower(e.Format())] = e
	}
	return uc
}

// Formats lists registered formats, sorted.
func (uc *Export) Formats() []string {
	out := make([]string, 0, len(uc.exporters))
	for k := range uc.exporters {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func (uc *Export) Execute(w io.Writer, format string) error {
	key := strings.ToLower(strings.TrimSpace(format))
	exp, ok := uc.exporters[key]
	if !ok {
		return domain.InvalidInput("export.execute",
			"unsupported format %q (expected %s)", format, strings.Join(uc.Formats(), "|"))
	}

	expenses, err := uc.src.List()
	if err != nil {
		return err
	}

	if err := exp.Export(w, expenses, uc.currency); err != nil {
		return &domain.OpError{
			Op:   "export." + key,
			Kind: domain.KindExecution,
			Err:  err,
		}
	}
	return nil
}
