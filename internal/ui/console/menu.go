package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/aalvaropc/tally/internal/domain"
)

// Store is the subset of usecase.ExpenseStore the menu drives.
type Store interface {
	Add(amountText, description string, categoryIndex int) (domain.Expense, error)
	List() ([]domain.Expense, error)
	MonthlySummary() (domain.MonthlyTotal, error)
	CategorySummary() ([]domain.CategoryTotal, error)
	Categories() domain.CategorySet
}

// Menu is the numbered text menu. Run loops until the user picks Exit or input ends.
type Menu struct {
	store    Store
	in       *bufio.Reader
	out      io.Writer
	currency string
	log      *slog.Logger
}

type Option func(*Menu)

func WithCurrency(c string) Option {
	return func(m *Menu) {
		if strings.TrimSpace(c) != "" {
			m.currency = c
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(m *Menu) {
		if l != nil {
			m.log = l
		}
	}
}

func New(store Store, in io.Reader, out io.Writer, opts ...Option) *Menu {
	m := &Menu{
		store:    store,
		in:       bufio.NewReader(in),
		out:      out,
		currency: "$",
		log:      slog.New(slog.NewJSONHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

var errEndOfInput = errors.New("end of input")

// Run returns nil on Exit or end of input. Any non-nil error is an
// unrecoverable store failure (typically I/O).
func (m *Menu) Run() error {
	for {
		m.printMenu()

		choice, err := m.prompt("Enter your choice (1-5): ")
		if errors.Is(err, errEndOfInput) {
			m.log.Info("menu.eof")
			return nil
		}
		if err != nil {
			return err
		}

		m.log.Debug("menu.choice", "choice", choice)

		switch choice {
		case "1":
			err = m.addExpense()
		case "2":
			err = m.viewExpenses()
		case "3":
			err = m.monthlySummary()
		case "4":
			err = m.categorySummary()
		case "5":
			fmt.Fprintln(m.out, "Thank you for using the Expense Tracker. Goodbye!")
			return nil
		default:
			fmt.Fprintln(m.out, "Invalid choice. Please try again.")
			continue
		}

		if errors.Is(err, errEndOfInput) {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func (m *Menu) printMenu() {
	fmt.Fprintln(m.out)
	fmt.Fprintln(m.out, "Expense Tracker Menu:")
	fmt.Fprintln(m.out, "1. Add Expense")
	fmt.Fprintln(m.out, "2. View Expenses")
	fmt.Fprintln(m.out, "3. Monthly Summary")
	fmt.Fprintln(m.out, "4. Category Summary")
	fmt.Fprintln(m.out, "5. Exit")
}

// prompt writes label and reads one line, without its line ending. Answers are
// returned as typed; callers trim where whitespace is not significant.
// A final line without a newline is still returned.
func (m *Menu) prompt(label string) (string, error) {
	fmt.Fprint(m.out, label)

	line, err := m.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			if line == "" {
				fmt.Fprintln(m.out)
				return "", errEndOfInput
			}
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (m *Menu) addExpense() error {
	amountText, err := m.prompt("Enter the expense amount: ")
	if err != nil {
		return err
	}
	if _, perr := domain.ParseAmount(amountText); perr != nil {
		m.reportInvalid(domain.InvalidInput("menu.add", "%v", perr))
		return nil
	}

	description, err := m.prompt("Enter a brief description: ")
	if err != nil {
		return err
	}

	fmt.Fprintln(m.out, "Categories:")
	for i, name := range m.store.Categories().Names() {
		fmt.Fprintf(m.out, "%d. %s\n", i+1, name)
	}

	selection, err := m.prompt("Choose a category (enter the number): ")
	if err != nil {
		return err
	}
	n, convErr := strconv.Atoi(strings.TrimSpace(selection))
	if convErr != nil {
		m.reportInvalid(domain.InvalidInput("menu.add", "invalid category selection %q", selection))
		return nil
	}

	if _, err := m.store.Add(amountText, description, n-1); err != nil {
		if domain.IsKind(err, domain.KindInvalidInput) {
			m.reportInvalid(err)
			return nil
		}
		return err
	}

	fmt.Fprintln(m.out, "Expense added successfully!")
	return nil
}

func (m *Menu) reportInvalid(err error) {
	m.log.Info("menu.invalid_input", "err", err)
	fmt.Fprintf(m.out, "Error: %s. Please try again.\n", domain.Reason(err))
}

func (m *Menu) viewExpenses() error {
	expenses, err := m.store.List()
	if errors.Is(err, domain.ErrNoExpenses) {
		PrintNoExpenses(m.out)
		return nil
	}
	if err != nil {
		return err
	}
	PrintExpenses(m.out, expenses, m.currency)
	return nil
}

func (m *Menu) monthlySummary() error {
	total, err := m.store.MonthlySummary()
	if errors.Is(err, domain.ErrNoExpenses) {
		PrintNoExpenses(m.out)
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(m.out, FormatMonthly(total, m.currency))
	return nil
}

func (m *Menu) categorySummary() error {
	totals, err := m.store.CategorySummary()
	if errors.Is(err, domain.ErrNoExpenses) {
		PrintNoExpenses(m.out)
		return nil
	}
	if err != nil {
		return err
	}
	PrintCategoryTotals(m.out, totals, m.currency)
	return nil
}
