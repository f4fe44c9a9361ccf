package jsonstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/aalvaropc/tally/internal/domain"
	"github.com/aalvaropc/tally/internal/ports"
)

const defaultFileName = "expenses.json"

// JSONStore keeps every expense in a single JSON array file.
type JSONStore struct {
	path string
	perm fs.FileMode
}

type Option func(*JSONStore)

// WithPerm overrides the file mode used when the data file is created.
func WithPerm(perm fs.FileMode) Option {
	return func(s *JSONStore) { s.perm = perm }
}

// NewJSONStore resolves cfg.DataFile relative to root unless it is absolute.
func NewJSONStore(root string, cfg domain.Config, opts ...Option) *JSONStore {
	name := strings.TrimSpace(cfg.DataFile)
	if name == "" {
		name = defaultFileName
	}
	path := name
	if !filepath.IsAbs(path) {
		path = filepath.Join(root, path)
	}

	s := &JSONStore{
		path: filepath.Clean(path),
		perm: 0o644,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ ports.ExpenseRepository = (*JSONStore)(nil)

func (s *JSONStore) Path() string { return s.path }

// record is the persisted shape. Pointers let Load tell a missing field from a zero value.
type record struct {
	Amount      *float64 `json:"amount"`
	Description *string  `json:"description"`
	Category    *string  `json:"category"`
	Date        *string  `json:"date"`
}

func (s *JSONStore) Load() ([]domain.Expense, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []domain.Expense{}, nil
		}
		return nil, &domain.OpError{
			Op:   "jsonstore.read",
			Kind: domain.KindExecution,
			Path: s.path,
			Err:  err,
		}
	}

	var recs []record
	if err := json.Unmarshal(b, &recs); err != nil {
		return nil, &domain.OpError{
			Op:   "jsonstore.unmarshal",
			Kind: domain.KindInvalidData,
			Path: s.path,
			Err:  fmt.Errorf("%v: %w", err, domain.ErrInvalidData),
		}
	}

	out := make([]domain.Expense, 0, len(recs))
	for i, r := range recs {
		e, err := r.toDomain()
		if err != nil {
			return nil, &domain.OpError{
				Op:   "jsonstore.load",
				Kind: domain.KindInvalidData,
				Path: s.path,
				Err:  fmt.Errorf("record[%d]: %v: %w", i, err, domain.ErrInvalidData),
			}
		}
		out = append(out, e)
	}
	return out, nil
}

func (r record) toDomain() (domain.Expense, error) {
	switch {
	case r.Amount == nil:
		return domain.Expense{}, errors.New("field amount is required")
	case r.Description == nil:
		return domain.Expense{}, errors.New("field description is required")
	case r.Category == nil:
		return domain.Expense{}, errors.New("field category is required")
	case r.Date == nil:
		return domain.Expense{}, errors.New("field date is required")
	}
	return domain.Expense{
		Amount:      *r.Amount,
		Description: *r.Description,
		Category:    *r.Category,
		Date:        *r.Date,
	}, nil
}

func fromDomain(e domain.Expense) record {
	return record{
		Amount:      &e.Amount,
		Description: &e.Description,
		Category:    &e.Category,
		Date:        &e.Date,
	}
}

func (s *JSONStore) Save(expenses []domain.Expense) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return &domain.OpError{
			Op:   "jsonstore.mkdir",
			Kind: domain.KindExecution,
			Path: dir,
			Err:  err,
		}
	}

	recs := make([]record, 0, len(expenses))
	for _, e := range expenses {
		recs = append(recs, fromDomain(e))
	}

	b, err := json.MarshalIndent(recs, "", "  ")
	if err != nil {
		return &domain.OpError{
			Op:   "jsonstore.marshal",
			Kind: domain.KindExecution,
			Path: s.path,
			Err:  err,
		}
	}

	// Atomic-ish write: tmp then rename.
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, b, s.perm); err != nil {
		return &domain.OpError{
			Op:   "jsonstore.write",
			Kind: domain.KindExecution,
			Path: tmp,
			Err:  err,
		}
	}
	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return &domain.OpError{
			Op:   "jsonstore.rename",
			Kind: domain.KindExecution,
			Path: s.path,
			Err:  err,
		}
	}
	return nil
}
