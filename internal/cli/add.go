package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/tally/internal/ui/console"
)

func addCmd(g *globalFlags) *cobra.Command {
	var amount string
	var description string
	var category string

	c := &cobra.Command{
		Use:   "add",
		Short: "Record an expense dated today",
		Example: `  tally add --amount 12.50 --description lunch --category Food
  tally add -a 3 -d bus -c 2`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := openApp(*g)
			if err != nil {
				return err
			}
			defer app.close()

			e, err := app.store.AddByCategory(amount, description, category)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Expense added successfully!")
			fmt.Fprintln(out, console.FormatExpense(e, app.cfg.Currency))
			return nil
		},
	}

	c.Flags().StringVarP(&amount, "amount", "a", "", "Amount spent, a positive number (required)")
	c.Flags().StringVarP(&description, "description", "d", "", "Short description")
	c.Flags().StringVarP(&category, "category", "c", "", "Category name or its 1-based number (required)")

	_ = c.MarkFlagRequired("amount")
	_ = c.MarkFlagRequired("category")
	return c
}
