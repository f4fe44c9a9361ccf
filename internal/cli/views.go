package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/tally/internal/domain"
	"github.com/aalvaropc/tally/internal/ui/console"
	"github.com/aalvaropc/tally/internal/usecase"
)

func listCmd(g *globalFlags) *cobra.Command {
	var format string

	c := &cobra.Command{
		Use:   "list",
		Short: "List every recorded expense",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := openApp(*g)
			if err != nil {
				return err
			}
			defer app.close()

			return printList(cmd.OutOrStdout(), app.store, app.cfg.Currency, format)
		},
	}

	c.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")
	return c
}

func printList(w io.Writer, store *usecase.ExpenseStore, currency, format string) error {
	switch format {
	case "json":
		doc, err := usecase.NewQuery(store).Execute("$")
		if err != nil {
			return err
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	case "pretty", "":
		expenses, err := store.List()
		if errors.Is(err, domain.ErrNoExpenses) {
			console.PrintNoExpenses(w)
			return nil
		}
		if err != nil {
			return err
		}
		console.PrintExpenses(w, expenses, currency)
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
	}
}

func monthCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "month",
		Short: "Show the total for the current month",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := openApp(*g)
			if err != nil {
				return err
			}
			defer app.close()

			out := cmd.OutOrStdout()
			total, err := app.store.MonthlySummary()
			if errors.Is(err, domain.ErrNoExpenses) {
				console.PrintNoExpenses(out)
				return nil
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(out, console.FormatMonthly(total, app.cfg.Currency))
			return nil
		},
	}
}

func categoriesCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:     "categories",
		Aliases: []string{"cats"},
		Short:   "Show totals per category",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := openApp(*g)
			if err != nil {
				return err
			}
			defer app.close()

			out := cmd.OutOrStdout()
			totals, err := app.store.CategorySummary()
			if errors.Is(err, domain.ErrNoExpenses) {
				console.PrintNoExpenses(out)
				return nil
			}
			if err != nil {
				return err
			}
			console.PrintCategoryTotals(out, totals, app.cfg.Currency)
			return nil
		},
	}
}
