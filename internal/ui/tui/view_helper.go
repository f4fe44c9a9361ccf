package tui

import (
	"strings"
	"unicode/utf8"

	"github.com/aalvaropc/tally/internal/domain"
	"github.com/aalvaropc/tally/internal/ui/console"
)

const maxDescription = 48

func clampString(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))

	n := 0
	for _, r := range s {
		if n >= maxLen {
			break
		}
		b.WriteRune(r)
		n++
	}
	return b.String() + "…"
}

func renderExpenses(expenses []domain.Expense, currency string) string {
	var b strings.Builder
	for i, e := range expenses {
		if i > 0 {
			b.WriteByte('\n')
		}
		e.Description = clampString(e.Description, maxDescription)
		b.WriteString(console.FormatExpense(e, currency))
	}
	return b.String()
}
