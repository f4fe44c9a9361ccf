package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/tally/internal/infra/export"
	"github.com/aalvaropc/tally/internal/usecase"
)

func exportCmd(g *globalFlags) *cobra.Command {
	var format string
	var output string

	c := &cobra.Command{
		Use:   "export",
		Short: "Export expenses as CSV or an Excel workbook",
		Example: `  tally export --format csv > expenses.csv
  tally export --format xlsx -o expenses.xlsx`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := openApp(*g)
			if err != nil {
				return err
			}
			defer app.close()

			uc := usecase.NewExport(app.store, app.cfg.Currency, export.NewCSV(), export.NewXLSX())

			dst := strings.TrimSpace(output)
			if dst == "" || dst == "-" {
				return uc.Execute(cmd.OutOrStdout(), format)
			}

			f, err := os.Create(dst)
			if err != nil {
				return fmt.Errorf("create %s: %w", dst, err)
			}
			if err := uc.Execute(f, format); err != nil {
				_ = f.Close()
				_ = os.Remove(dst)
				return err
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("close %s: %w", dst, err)
			}

			app.log.Info("export.ok", "format", format, "path", dst, "count", app.store.Len())
			fmt.Fprintf(cmd.ErrOrStderr(), "Exported %d expense(s) to %s\n", app.store.Len(), dst)
			return nil
		},
	}

	c.Flags().StringVar(&format, "format", "csv", "Export format: csv|xlsx")
	c.Flags().StringVarP(&output, "output", "o", "-", "Output file (- for stdout)")
	return c
}
