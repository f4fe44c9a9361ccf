package usecase

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/aalvaropc/tally/internal/domain"
	"github.com/aalvaropc/tally/internal/ports"
)

// ExpenseStore holds the ordered, append-only expense sequence in memory and
// rewrites the backing repository after every append.
//
// It is not safe for concurrent use; neither is the file it persists to.
type ExpenseStore struct {
	repo       ports.ExpenseRepository
	categories domain.CategorySet
	now        func() time.Time
	log        *slog.Logger

	expenses []domain.Expense
}

type StoreOption func(*ExpenseStore)

// WithNow is useful for tests.
func WithNow(now func() time.Time) StoreOption {
	return func(s *ExpenseStore) {
		if now != nil {
			s.now = now
		}
	}
}

func WithLogger(l *slog.Logger) StoreOption {
	return func(s *ExpenseStore) {
		if l != nil {
			s.log = l
		}
	}
}

func NewExpenseStore(repo ports.ExpenseRepository, categories domain.CategorySet, opts ...StoreOption) *ExpenseStore {
	s := &ExpenseStore{
		repo:       repo,
		categories: categories,
		now:        time.Now,
		log:        slog.New(slog.NewJSONHandler(io.Discard, nil)),
		expenses:   []domain.Expense{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load replaces the in-memory sequence with the persisted one.
// A missing backing file yields an empty store.
func (s *ExpenseStore) Load() error {
	loaded, err := s.repo.Load()
	if err != nil {
		s.log.Error("store.load.failed", "err", err)
		return err
	}
	if loaded == nil {
		loaded = []domain.Expense{}
	}
	s.expenses = loaded
	s.log.Info("store.load.ok", "count", len(loaded))
	return nil
}

// Save writes the full in-memory sequence to the repository.
func (s *ExpenseStore) Save() error {
	if err := s.repo.Save(s.expenses); err != nil {
		s.log.Error("store.save.failed", "err", err)
		return err
	}
	return nil
}

// Add validates and records a new expense dated today, then persists the whole store.
// amountText is the raw user input. categoryIndex is zero-based.
// On any error the store is left unchanged.
func (s *ExpenseStore) Add(amountText, description string, categoryIndex int) (domain.Expense, error) {
	amount, err := domain.ParseAmount(amountText)
	if err != nil {
		return domain.Expense{}, domain.InvalidInput("store.add", "%v", err)
	}

	category, ok := s.categories.At(categoryIndex)
	if !ok {
		return domain.Expense{}, domain.InvalidInput("store.add", "invalid category selection")
	}

	e := domain.Expense{
		Amount:      amount,
		Description: description,
		Category:    category,
		Date:        domain.FormatDate(s.now()),
	}

	next := make([]domain.Expense, len(s.expenses), len(s.expenses)+1)
	copy(next, s.expenses)
	next = append(next, e)

	if err := s.repo.Save(next); err != nil {
		s.log.Error("store.add.save_failed", "err", err)
		return domain.Expense{}, err
	}
	s.expenses = next

	s.log.Info("store.add.ok",
		"amount", e.Amount,
		"category", e.Category,
		"date", e.Date,
		"count", len(s.expenses),
	)
	return e, nil
}

// AddByCategory is Add with the category given by name or 1-based number.
func (s *ExpenseStore) AddByCategory(amountText, description, category string) (domain.Expense, error) {
	name, ok := s.categories.Lookup(category)
	if !ok {
		return domain.Expense{}, domain.InvalidInput("store.add",
			"unknown category %q (expected one of %s)", strings.TrimSpace(category), strings.Join(s.categories.Names(), ", "))
	}
	return s.Add(amountText, description, s.categories.Index(name))
}

// List returns a copy of all records in insertion order, or ErrNoExpenses.
func (s *ExpenseStore) List() ([]domain.Expense, error) {
	if len(s.expenses) == 0 {
		return nil, domain.ErrNoExpenses
	}
	out := make([]domain.Expense, len(s.expenses))
	copy(out, s.expenses)
	return out, nil
}

// MonthlySummary totals the expenses dated in the current month.
//
// ErrNoExpenses is returned only when the store holds no records at all; a
// store whose records all fall in other months reports a zero total.
func (s *ExpenseStore) MonthlySummary() (domain.MonthlyTotal, error) {
	if len(s.expenses) == 0 {
		return domain.MonthlyTotal{}, domain.ErrNoExpenses
	}

	month := domain.FormatMonth(s.now())
	total := 0.0
	for _, e := range s.expenses {
		if strings.HasPrefix(e.Date, month) {
			total += e.Amount
		}
	}
	return domain.MonthlyTotal{Month: month, Total: total}, nil
}

// CategorySummary totals every category, in CategorySet order, including empty ones.
func (s *ExpenseStore) CategorySummary() ([]domain.CategoryTotal, error) {
	if len(s.expenses) == 0 {
		return nil, domain.ErrNoExpenses
	}

	out := make([]domain.CategoryTotal, s.categories.Len())
	for i, name := range s.categories.Names() {
		out[i] = domain.CategoryTotal{Category: name}
	}

	for i, e := range s.expenses {
		idx := s.categories.Index(e.Category)
		if idx < 0 {
			return nil, &domain.OpError{
				Op:   "store.category_summary",
				Kind: domain.KindInvalidData,
				Err:  fmt.Errorf("record[%d]: unknown category %q: %w", i, e.Category, domain.ErrInvalidData),
			}
		}
		out[idx].Total += e.Amount
	}
	return out, nil
}

func (s *ExpenseStore) Len() int { return len(s.expenses) }

func (s *ExpenseStore) Categories() domain.CategorySet { return s.categories }
