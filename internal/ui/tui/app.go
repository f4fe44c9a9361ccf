package tui

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aalvaropc/tally/internal/domain"
)

type screen int

const (
	screenHome screen = iota
	screenAdd
	screenView
)

const (
	stepAmount = iota
	stepDescription
	stepCategory
)

type menuItem struct {
	title string
	desc  string
}

func (m menuItem) Title() string       { return m.title }
func (m menuItem) Description() string { return m.desc }
func (m menuItem) FilterValue() string { return m.title }

const (
	itemAdd      = "Add Expense"
	itemView     = "View Expenses"
	itemMonthly  = "Monthly Summary"
	itemCategory = "Category Summary"
	itemExit     = "Exit"
)

type model struct {
	theme Theme
	deps  Deps

	scr  screen
	menu list.Model

	wizardStep  int
	amount      textinput.Model
	description textinput.Model
	categoryIdx int
	adding      bool

	viewTitle string
	viewBody  string

	toast    string
	fatalErr error
}

// Run blocks until the user quits. A non-nil error is an unrecoverable store failure.
func Run(deps Deps) error {
	if deps.Store == nil {
		return errors.New("tui: Store is nil")
	}

	m := newModel(deps)
	p := tea.NewProgram(wrapSafe(m, deps.Logger), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return err
	}
	if sm, ok := final.(safeModel); ok && sm.m.fatalErr != nil {
		return sm.m.fatalErr
	}
	return nil
}

func newModel(deps Deps) model {
	if strings.TrimSpace(deps.Currency) == "" {
		deps.Currency = "$"
	}
	if deps.Logger == nil {
		deps.Logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	items := []list.Item{
		menuItem{itemAdd, "Record a new expense dated today"},
		menuItem{itemView, "List every recorded expense"},
		menuItem{itemMonthly, "Total for the current month"},
		menuItem{itemCategory, "Totals per category"},
		menuItem{itemExit, "Quit tally"},
	}

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Expense Tracker"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)

	amount := textinput.New()
	amount.Placeholder = "12.50"
	amount.Prompt = "Amount: "
	amount.CharLimit = 32

	description := textinput.New()
	description.Placeholder = "lunch with Sam"
	description.Prompt = "Description: "

	return model{
		theme:       DefaultTheme(),
		deps:        deps,
		scr:         screenHome,
		menu:        l,
		amount:      amount,
		description: description,
	}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.menu.SetSize(msg.Width-4, msg.Height-10)
		return m, nil

	case expenseAddedMsg:
		return m.handleAdded(msg)

	case viewLoadedMsg:
		if isFatal(msg.err) {
			return m.fail(msg.err)
		}
		m.scr = screenView
		m.viewTitle = msg.title
		m.viewBody = msg.body
		if msg.err != nil {
			m.viewBody = userMessage(msg.err)
		}
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.scr {
		case screenHome:
			return m.updateHome(msg)
		case screenAdd:
			return m.updateAdd(msg)
		case screenView:
			switch msg.String() {
			case "esc", "b", "q", "enter":
				m.scr = screenHome
				return m, nil
			}
			return m, nil
		}
	}

	if m.scr == screenHome {
		var cmd tea.Cmd
		m.menu, cmd = m.menu.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m model) updateHome(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "enter":
		it, ok := m.menu.SelectedItem().(menuItem)
		if !ok {
			return m, nil
		}
		m.toast = ""
		return m.open(it.title)
	}

	var cmd tea.Cmd
	m.menu, cmd = m.menu.Update(msg)
	return m, cmd
}

func (m model) open(title string) (tea.Model, tea.Cmd) {
	store, cur := m.deps.Store, m.deps.Currency
	switch title {
	case itemAdd:
		m.scr = screenAdd
		m.wizardStep = stepAmount
		m.categoryIdx = 0
		m.amount.SetValue("")
		m.description.SetValue("")
		m.description.Blur()
		focus := m.amount.Focus()
		return m, focus
	case itemView:
		return m, cmdViewExpenses(store, cur)
	case itemMonthly:
		return m, cmdMonthlySummary(store, cur)
	case itemCategory:
		return m, cmdCategorySummary(store, cur)
	case itemExit:
		return m, tea.Quit
	}
	return m, nil
}

func (m model) updateAdd(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// One store write at a time; keys wait for expenseAddedMsg.
	if m.adding {
		return m, nil
	}
	if msg.String() == "esc" {
		m.scr = screenHome
		m.amount.Blur()
		m.description.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	switch m.wizardStep {
	case stepAmount:
		if msg.String() == "enter" {
			if _, err := domain.ParseAmount(m.amount.Value()); err != nil {
				m.toast = userMessage(domain.InvalidInput("tui.add", "%v", err))
				return m, nil
			}
			m.toast = ""
			m.wizardStep = stepDescription
			m.amount.Blur()
			focus := m.description.Focus()
			return m, focus
		}
		m.amount, cmd = m.amount.Update(msg)
		return m, cmd

	case stepDescription:
		if msg.String() == "enter" {
			m.wizardStep = stepCategory
			m.description.Blur()
			return m, nil
		}
		m.description, cmd = m.description.Update(msg)
		return m, cmd

	case stepCategory:
		n := m.deps.Store.Categories().Len()
		switch msg.String() {
		case "up", "k":
			if m.categoryIdx > 0 {
				m.categoryIdx--
			}
		case "down", "j":
			if m.categoryIdx < n-1 {
				m.categoryIdx++
			}
		case "enter":
			m.adding = true
			return m, cmdAddExpense(m.deps.Store, m.amount.Value(), m.description.Value(), m.categoryIdx)
		}
		return m, nil
	}
	return m, nil
}

func (m model) handleAdded(msg expenseAddedMsg) (tea.Model, tea.Cmd) {
	m.adding = false
	if isFatal(msg.err) {
		return m.fail(msg.err)
	}
	m.scr = screenHome
	if msg.err != nil {
		m.toast = userMessage(msg.err)
		return m, nil
	}
	m.deps.Logger.Debug("tui.add.ok", "category", msg.expense.Category)
	m.toast = fmt.Sprintf("Expense added successfully! (%s %s%.2f)",
		msg.expense.Category, m.deps.Currency, msg.expense.Amount)
	return m, nil
}

func (m model) fail(err error) (tea.Model, tea.Cmd) {
	m.fatalErr = err
	m.deps.Logger.Error("tui.fatal", "err", err)
	return m, tea.Quit
}

func (m model) View() string {
	wrap := lipgloss.NewStyle().Padding(1, 2)
	header := m.theme.Title.Render("tally") + "\n" +
		m.theme.Subtitle.Render("Personal expense tracker") + "\n"

	banner := m.theme.Help.Render(m.bannerText())

	var toast string
	if m.toast != "" {
		toast = "\n" + m.theme.Toast.Render(m.toast) + "\n"
	}

	switch m.scr {
	case screenHome:
		help := m.theme.Help.Render("↑/↓ navigate • enter open • q quit")
		return wrap.Render(header + "\n" + banner + "\n" + toast + "\n" + m.theme.Card.Render(m.menu.View()) + "\n" + help)

	case screenAdd:
		return wrap.Render(header + "\n" + banner + "\n" + toast + "\n" + m.theme.Card.Render(m.addView()))

	case screenView:
		card := m.theme.Card.Render(
			fmt.Sprintf("%s\n\n%s\n\n%s",
				m.theme.Title.Render(m.viewTitle),
				m.viewBody,
				m.theme.Help.Render("enter/esc back"),
			),
		)
		return wrap.Render(header + "\n" + banner + "\n\n" + card)

	default:
		return wrap.Render(header + "\n" + "unknown state")
	}
}

func (m model) bannerText() string {
	var parts []string
	if m.deps.WorkspaceRoot != "" {
		parts = append(parts, "Workspace: "+m.deps.WorkspaceRoot)
	}
	if m.deps.DataPath != "" {
		parts = append(parts, "Data: "+m.deps.DataPath)
	}
	if m.deps.Debug {
		parts = append(parts, "debug logging on")
	}
	return strings.Join(parts, " • ")
}

func (m model) addView() string {
	var b strings.Builder
	b.WriteString(m.theme.Title.Render(itemAdd))
	b.WriteString("\n\n")
	b.WriteString(m.amount.View())
	b.WriteString("\n")
	if m.wizardStep >= stepDescription {
		b.WriteString(m.description.View())
		b.WriteString("\n")
	}
	if m.wizardStep == stepCategory {
		b.WriteString("\nCategories:\n")
		for i, name := range m.deps.Store.Categories().Names() {
			line := fmt.Sprintf("%d. %s", i+1, name)
			if i == m.categoryIdx {
				line = m.theme.Selected.Render("> " + line)
			} else {
				line = "  " + line
			}
			b.WriteString(line)
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")
	b.WriteString(m.theme.Help.Render("enter next • esc cancel"))
	return b.String()
}
