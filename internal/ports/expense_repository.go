package ports

import "github.com/aalvaropc/tally/internal/domain"

// ExpenseRepository persists the full expense sequence.
// Load on a missing backing file returns an empty slice and no error.
type ExpenseRepository interface {
	Load() ([]domain.Expense, error)
	Save(expenses []domain.Expense) error
}
