package console

import (
	"fmt"
	"io"

	"github.com/aalvaropc/tally/internal/domain"
)

const noExpenses = "No expenses recorded yet."

func FormatExpense(e domain.Expense, currency string) string {
	return fmt.Sprintf("Date: %s, Amount: %s%.2f, Category: %s, Description: %s",
		e.Date, currency, e.Amount, e.Category, e.Description)
}

func FormatMonthly(m domain.MonthlyTotal, currency string) string {
	return fmt.Sprintf("Monthly total for %s: %s%.2f", m.Month, currency, m.Total)
}

func FormatCategoryTotal(c domain.CategoryTotal, currency string) string {
	return fmt.Sprintf("%s: %s%.2f", c.Category, currency, c.Total)
}

func PrintExpenses(w io.Writer, expenses []domain.Expense, currency string) {
	for _, e := range expenses {
		fmt.Fprintln(w, FormatExpense(e, currency))
	}
}

func PrintCategoryTotals(w io.Writer, totals []domain.CategoryTotal, currency string) {
	fmt.Fprintln(w, "Category-wise expenditure:")
	for _, c := range totals {
		fmt.Fprintln(w, FormatCategoryTotal(c, currency))
	}
}

func PrintNoExpenses(w io.Writer) {
	fmt.Fprintln(w, noExpenses)
}
