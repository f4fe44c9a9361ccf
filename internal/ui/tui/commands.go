package tui

import (
	"errors"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/aalvaropc/tally/internal/domain"
	"github.com/aalvaropc/tally/internal/ui/console"
)

func cmdAddExpense(store console.Store, amount, description string, categoryIndex int) tea.Cmd {
	return func() tea.Msg {
		e, err := store.Add(amount, description, categoryIndex)
		return expenseAddedMsg{expense: e, err: err}
	}
}

func cmdViewExpenses(store console.Store, currency string) tea.Cmd {
	return func() tea.Msg {
		const title = "Expenses"
		expenses, err := store.List()
		if err != nil {
			return viewLoadedMsg{title: title, err: err}
		}
		return viewLoadedMsg{title: title, body: renderExpenses(expenses, currency)}
	}
}

func cmdMonthlySummary(store console.Store, currency string) tea.Cmd {
	return func() tea.Msg {
		const title = "Monthly Summary"
		total, err := store.MonthlySummary()
		if err != nil {
			return viewLoadedMsg{title: title, err: err}
		}
		return viewLoadedMsg{title: title, body: console.FormatMonthly(total, currency)}
	}
}

func cmdCategorySummary(store console.Store, currency string) tea.Cmd {
	return func() tea.Msg {
		const title = "Category Summary"
		totals, err := store.CategorySummary()
		if err != nil {
			return viewLoadedMsg{title: title, err: err}
		}
		var b strings.Builder
		console.PrintCategoryTotals(&b, totals, currency)
		return viewLoadedMsg{title: title, body: strings.TrimRight(b.String(), "\n")}
	}
}

// isFatal reports errors that must end the program rather than be shown as a toast.
func isFatal(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, domain.ErrNoExpenses) {
		return false
	}
	return !domain.IsKind(err, domain.KindInvalidInput)
}
