package tui

import "github.com/aalvaropc/tally/internal/domain"

type expenseAddedMsg struct {
	expense domain.Expense
	err     error
}

type viewLoadedMsg struct {
	title string
	body  string
	err   error
}
