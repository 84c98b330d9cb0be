// Package ui provides the terminal front end: an auth screen, the task
// list with filters, and a calendar month view. It owns only view state;
// all data flows through the auth and task usecases.
package ui

import (
	"context"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/undoapp/tracker/domain"
	"github.com/undoapp/tracker/internal/categories"
	"github.com/undoapp/tracker/repository"
	"github.com/undoapp/tracker/usecase/auth"
	"github.com/undoapp/tracker/usecase/task"
)

// Deps carries everything the TUI needs from the wiring layer.
type Deps struct {
	Auth       *auth.UseCase
	Tasks      repository.TaskRepository
	Categories categories.Set
	Logger     *zap.Logger
}

// Run starts the terminal UI and blocks until the user quits.
func Run(ctx context.Context, deps Deps) error {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	m := newModel(ctx, deps)
	program := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := program.Run()
	return err
}

type viewMode int

const (
	modeAuth viewMode = iota
	modeList
	modeAdd
	modeCalendar
)

type authField int

const (
	fieldUsername authField = iota
	fieldPassword
	fieldEmail
)

type model struct {
	ctx  context.Context
	deps Deps

	mode    viewMode
	manager *task.Manager
	status  string

	// auth view
	signupMode bool
	authFocus  authField
	username   []rune
	password   []rune
	email      []rune

	// list view
	filters      []domain.Filter
	filterIdx    int
	cursor       int
	selectedDate *time.Time

	// add view
	addFocus    int // 0 title, 1 due date
	title       []rune
	due         []rune
	categoryIdx int

	// calendar view
	month time.Time
	day   int
}

func newModel(ctx context.Context, deps Deps) *model {
	filters := []domain.Filter{domain.FilterAll, domain.FilterActive, domain.FilterCompleted}
	for _, c := range domain.Categories() {
		filters = append(filters, domain.CategoryFilter(c))
	}

	now := time.Now()
	m := &model{
		ctx:     ctx,
		deps:    deps,
		mode:    modeAuth,
		filters: filters,
		month:   time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()),
		day:     now.Day(),
	}
	if session := deps.Auth.Current(); session.IsAuthenticated() {
		m.bind(session)
	}
	return m
}

// bind builds a fresh manager for the session's account. Any prior binding
// is discarded wholesale, so tasks never leak across accounts.
func (m *model) bind(session *domain.Session) {
	manager, err := task.NewManager(m.ctx, session.AccountID(), m.deps.Tasks, m.deps.Logger)
	if err != nil {
		m.status = err.Error()
		return
	}
	m.manager = manager
	m.mode = modeList
	m.cursor = 0
	m.filterIdx = 0
	m.selectedDate = nil
}

func (m *model) Init() tea.Cmd {
	return nil
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if key.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.mode {
	case modeAuth:
		return m.updateAuth(key)
	case modeList:
		return m.updateList(key)
	case modeAdd:
		return m.updateAdd(key)
	case modeCalendar:
		return m.updateCalendar(key)
	}
	return m, nil
}

func (m *model) updateAuth(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "esc":
		return m, tea.Quit
	case "tab":
		m.authFocus++
		last := fieldPassword
		if m.signupMode {
			last = fieldEmail
		}
		if m.authFocus > last {
			m.authFocus = fieldUsername
		}
		return m, nil
	case "ctrl+s":
		m.signupMode = !m.signupMode
		m.authFocus = fieldUsername
		m.status = ""
		return m, nil
	case "enter":
		m.submitAuth()
		return m, nil
	case "backspace":
		field := m.authInput()
		if len(*field) > 0 {
			*field = (*field)[:len(*field)-1]
		}
		return m, nil
	}
	if key.Type == tea.KeyRunes || key.Type == tea.KeySpace {
		field := m.authInput()
		*field = append(*field, key.Runes...)
	}
	return m, nil
}

func (m *model) authInput() *[]rune {
	switch m.authFocus {
	case fieldPassword:
		return &m.password
	case fieldEmail:
		return &m.email
	default:
		return &m.username
	}
}

func (m *model) submitAuth() {
	username := strings.TrimSpace(string(m.username))
	password := string(m.password)

	var (
		session *domain.Session
		err     error
	)
	if m.signupMode {
		session, err = m.deps.Auth.Signup(m.ctx, username, password, strings.TrimSpace(string(m.email)))
	} else {
		session, err = m.deps.Auth.Login(m.ctx, username, password)
	}
	if err != nil {
		m.status = err.Error()
		m.password = nil
		return
	}

	m.status = ""
	m.username, m.password, m.email = nil, nil, nil
	m.bind(session)
}

func (m *model) updateList(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	visible := m.visible()
	switch key.String() {
	case "q":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(visible)-1 {
			m.cursor++
		}
	case "left", "h":
		m.filterIdx = (m.filterIdx + len(m.filters) - 1) % len(m.filters)
		m.cursor = 0
	case "right", "l", "f":
		m.filterIdx = (m.filterIdx + 1) % len(m.filters)
		m.cursor = 0
	case "enter", " ":
		if m.cursor < len(visible) {
			if err := m.manager.Toggle(m.ctx, visible[m.cursor].ID); err != nil {
				m.status = err.Error()
			}
		}
	case "d":
		if m.cursor < len(visible) {
			if err := m.manager.Delete(m.ctx, visible[m.cursor].ID); err != nil {
				m.status = err.Error()
			}
			if m.cursor > 0 {
				m.cursor--
			}
		}
	case "a":
		m.mode = modeAdd
		m.addFocus = 0
		m.title, m.due = nil, nil
		m.categoryIdx = 0
		m.status = ""
	case "c":
		m.mode = modeCalendar
	case "x":
		m.selectedDate = nil
		m.cursor = 0
	case "ctrl+l":
		m.deps.Auth.Logout(m.ctx)
		m.manager = nil
		m.mode = modeAuth
		m.signupMode = false
		m.authFocus = fieldUsername
		m.status = ""
	}
	return m, nil
}

func (m *model) updateAdd(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "esc":
		m.mode = modeList
		m.status = ""
		return m, nil
	case "tab":
		m.addFocus = 1 - m.addFocus
		return m, nil
	case "left":
		m.categoryIdx = (m.categoryIdx + len(domain.Categories()) - 1) % len(domain.Categories())
		return m, nil
	case "right":
		m.categoryIdx = (m.categoryIdx + 1) % len(domain.Categories())
		return m, nil
	case "enter":
		m.submitAdd()
		return m, nil
	case "backspace":
		field := &m.title
		if m.addFocus == 1 {
			field = &m.due
		}
		if len(*field) > 0 {
			*field = (*field)[:len(*field)-1]
		}
		return m, nil
	}
	if key.Type == tea.KeyRunes || key.Type == tea.KeySpace {
		if m.addFocus == 1 {
			m.due = append(m.due, key.Runes...)
		} else {
			m.title = append(m.title, key.Runes...)
		}
	}
	return m, nil
}

func (m *model) submitAdd() {
	var dueDate *time.Time
	if raw := strings.TrimSpace(string(m.due)); raw != "" {
		parsed, err := time.ParseInLocation("2006-01-02", raw, time.Local)
		if err != nil {
			m.status = "due date must be YYYY-MM-DD"
			return
		}
		dueDate = &parsed
	}

	category := domain.Categories()[m.categoryIdx]
	if _, err := m.manager.Add(m.ctx, string(m.title), category, dueDate); err != nil {
		m.status = err.Error()
		return
	}
	m.status = ""
	m.mode = modeList
}

func (m *model) updateCalendar(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "esc", "c", "q":
		m.mode = modeList
	case "left", "h":
		m.moveDay(-1)
	case "right", "l":
		m.moveDay(1)
	case "up", "k":
		m.moveDay(-7)
	case "down", "j":
		m.moveDay(7)
	case "p":
		m.month = m.month.AddDate(0, -1, 0)
		m.clampDay()
	case "n":
		m.month = m.month.AddDate(0, 1, 0)
		m.clampDay()
	case "enter", " ":
		selected := m.month.AddDate(0, 0, m.day-1)
		m.selectedDate = &selected
		m.cursor = 0
		m.mode = modeList
	}
	return m, nil
}

func (m *model) moveDay(delta int) {
	moved := m.month.AddDate(0, 0, m.day-1+delta)
	m.month = time.Date(moved.Year(), moved.Month(), 1, 0, 0, 0, 0, moved.Location())
	m.day = moved.Day()
}

func (m *model) clampDay() {
	if last := daysIn(m.month); m.day > last {
		m.day = last
	}
}

func (m *model) visible() []domain.Task {
	if m.manager == nil {
		return nil
	}
	return m.manager.Visible(m.filters[m.filterIdx], m.selectedDate)
}

func daysIn(month time.Time) int {
	return month.AddDate(0, 1, -1).Day()
}
