package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

const (
	// DateLayout is the on-disk format of Expense.Date.
	DateLayout = "2006-01-02"
	// MonthLayout is the prefix of DateLayout used for monthly totals.
	MonthLayout = "2006-01"
)

// Expense is one recorded spending event. Records are immutable once created.
type Expense struct {
	Amount      float64
	Description string
	Category    string
	Date        string // YYYY-MM-DD, local calendar date at creation
}

// CategoryTotal is one line of a category summary.
type CategoryTotal struct {
	Category string
	Total    float64
}

// MonthlyTotal is the sum of all expenses dated within Month (YYYY-MM).
type MonthlyTotal struct {
	Month string
	Total float64
}

// CategorySet is the ordered list of allowed categories.
type CategorySet struct {
	names []string
}

// DefaultCategories returns the stock category set.
func DefaultCategories() CategorySet {
	return NewCategorySet("Food", "Transportation", "Entertainment", "Other")
}

// NewCategorySet copies names, so later changes to the caller's slice are not observed.
func NewCategorySet(names ...string) CategorySet {
	cp := make([]string, len(names))
	copy(cp, names)
	return CategorySet{names: cp}
}

func (c CategorySet) Len() int { return len(c.names) }

// Names returns a copy of the category names in order.
func (c CategorySet) Names() []string {
	out := make([]string, len(c.names))
	copy(out, c.names)
	return out
}

// At returns the category at a zero-based index.
func (c CategorySet) At(i int) (string, bool) {
	if i < 0 || i >= len(c.names) {
		return "", false
	}
	return c.names[i], true
}

// Index returns the position of name, or -1.
func (c CategorySet) Index(name string) int {
	for i, n := range c.names {
		if n == name {
			return i
		}
	}
	return -1
}

// Lookup resolves a category given by name (case-insensitive) or by its
// 1-based menu number.
func (c CategorySet) Lookup(s string) (string, bool) {
	in := strings.TrimSpace(s)
	if in == "" {
		return "", false
	}
	if n, err := strconv.Atoi(in); err == nil {
		return c.At(n - 1)
	}
	for _, name := range c.names {
		if strings.EqualFold(name, in) {
			return name, true
		}
	}
	return "", false
}

// ParseAmount parses user supplied amount text. Only positive finite numbers are accepted.
func ParseAmount(s string) (float64, error) {
	in := strings.TrimSpace(s)
	v, err := strconv.ParseFloat(in, 64)
	if err != nil {
		return 0, fmt.Errorf("could not convert %q to a number", in)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return 0, fmt.Errorf("amount must be a positive number, got %q", in)
	}
	return v, nil
}

// FormatDate renders t as an Expense date.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// FormatMonth renders t as a MonthlyTotal month.
func FormatMonth(t time.Time) string {
	return t.Format(MonthLayout)
}
