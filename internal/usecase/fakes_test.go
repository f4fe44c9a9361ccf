package usecase

import (
	"errors"

	"github.com/aalvaropc/tally/internal/domain"
)

type fakeRepo struct {
	loaded  []domain.Expense
	loadErr error
	saveErr error

	saved [][]domain.Expense
}

func (f *fakeRepo) Load() ([]domain.Expense, error) {
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	out := make([]domain.Expense, len(f.loaded))
	copy(out, f.loaded)
	return out, nil
}

func (f *fakeRepo) Save(expenses []domain.Expense) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	cp := make([]domain.Expense, len(expenses))
	copy(cp, expenses)
	f.saved = append(f.saved, cp)
	return nil
}

var errDiskFull = errors.New("disk full")
