package usecase

import (
	"errors"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/aalvaropc/tally/internal/domain"
)

// expenseLister is the read side of ExpenseStore.
type expenseLister interface {
	List() ([]domain.Expense, error)
}

// Query evaluates JSONPath expressions against the persisted shape of the
// expense list, e.g. `$[?(@.category == "Food")].amount`.
type Query struct {
	src expenseLister
}

func NewQuery(src expenseLister) *Query {
	return &Query{src: src}
}

func (uc *Query) Execute(expr string) (any, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return nil, domain.InvalidInput("query.execute", "empty jsonpath expression")
	}

	expenses, err := uc.src.List()
	if err != nil && !errors.Is(err, domain.ErrNoExpenses) {
		return nil, err
	}

	val, err := jsonpath.Get(expr, toDocument(expenses))
	if err != nil {
		return nil, domain.InvalidInput("query.execute", "jsonpath %s: %v", expr, err)
	}
	return val, nil
}

// toDocument mirrors the on-disk JSON so expressions written against
// expenses.json work unchanged.
func toDocument(expenses []domain.Expense) []any {
	doc := make([]any, 0, len(expenses))
	for _, e := range expenses {
		doc = append(doc, map[string]any{
			"amount":      e.Amount,
			"description": e.Description,
			"category":    e.Category,
			"date":        e.Date,
		})
	}
	return doc
}
