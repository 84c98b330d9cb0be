package task

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/undoapp/tracker/domain"
	"github.com/undoapp/tracker/repository"
)

// Manager owns the task collection of a single account. It is bound to one
// account id for its lifetime; when the active session changes the caller
// builds a new Manager, which loads only the new account's collection.
// Every mutation rewrites the full collection through the repository, so
// the in-memory list and the store never diverge.
type Manager struct {
	accountID string
	tasks     []domain.Task
	repo      repository.TaskRepository
	logger    *zap.Logger
}

// NewManager binds to the account and loads its collection.
func NewManager(ctx context.Context, accountID string, repo repository.TaskRepository, logger *zap.Logger) (*Manager, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	tasks, err := repo.Load(ctx, accountID)
	if err != nil {
		return nil, err
	}
	return &Manager{
		accountID: accountID,
		tasks:     tasks,
		repo:      repo,
		logger:    logger,
	}, nil
}

func (m *Manager) AccountID() string {
	return m.accountID
}

// Add appends a new task to the collection. Whitespace-only titles are
// rejected with domain.ErrEmptyTitle and leave the collection unchanged.
func (m *Manager) Add(ctx context.Context, title string, category domain.Category, dueDate *time.Time) (*domain.Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, domain.ErrEmptyTitle
	}
	if !category.Valid() {
		return nil, domain.ErrInvalidCategory
	}

	task := domain.Task{
		ID:        uuid.NewString(),
		Title:     title,
		Category:  category,
		CreatedAt: time.Now(),
	}
	if dueDate != nil {
		due := *dueDate
		task.DueDate = &due
	}

	m.tasks = append(m.tasks, task)
	if err := m.persist(ctx); err != nil {
		return nil, err
	}
	m.logger.Info("task added", zap.String("id", task.ID), zap.String("category", string(category)))
	return &task, nil
}

// Toggle flips completion for the matching task and keeps CompletedAt in
// step: set on false→true, cleared on true→false. Unknown ids are a no-op.
func (m *Manager) Toggle(ctx context.Context, id string) error {
	i := m.index(id)
	if i < 0 {
		return nil
	}
	t := &m.tasks[i]
	t.Completed = !t.Completed
	if t.Completed {
		now := time.Now()
		t.CompletedAt = &now
	} else {
		t.CompletedAt = nil
	}
	return m.persist(ctx)
}

// Patch carries the fields Update may overwrite; nil fields are left
// unchanged. Id and creation time are not patchable.
type Patch struct {
	Title        *string
	Category     *domain.Category
	Description  *string
	DueDate      *time.Time
	ClearDueDate bool
}

// Update merges the patch into the matching task and persists. Unknown ids
// are a no-op; whitespace-only titles and unknown categories are skipped
// field-wise rather than applied.
func (m *Manager) Update(ctx context.Context, id string, patch Patch) error {
	i := m.index(id)
	if i < 0 {
		return nil
	}
	t := &m.tasks[i]
	if patch.Title != nil {
		if title := strings.TrimSpace(*patch.Title); title != "" {
			t.Title = title
		}
	}
	if patch.Category != nil && patch.Category.Valid() {
		t.Category = *patch.Category
	}
	if patch.Description != nil {
		t.Description = *patch.Description
	}
	if patch.ClearDueDate {
		t.DueDate = nil
	} else if patch.DueDate != nil {
		due := *patch.DueDate
		t.DueDate = &due
	}
	return m.persist(ctx)
}

// Delete removes the matching task. Unknown ids are a no-op.
func (m *Manager) Delete(ctx context.Context, id string) error {
	i := m.index(id)
	if i < 0 {
		return nil
	}
	m.tasks = append(m.tasks[:i], m.tasks[i+1:]...)
	return m.persist(ctx)
}

// Get returns a copy of the matching task, nil when absent.
func (m *Manager) Get(id string) *domain.Task {
	i := m.index(id)
	if i < 0 {
		return nil
	}
	t := m.tasks[i]
	return &t
}

// All returns the full collection in insertion order.
func (m *Manager) All() []domain.Task {
	out := make([]domain.Task, len(m.tasks))
	copy(out, m.tasks)
	return out
}

// Visible applies the optional calendar-day predicate and the
// status/category filter, ANDed, preserving insertion order.
func (m *Manager) Visible(filter domain.Filter, selected *time.Time) []domain.Task {
	out := make([]domain.Task, 0, len(m.tasks))
	for i := range m.tasks {
		t := &m.tasks[i]
		if selected != nil && !t.DueOn(*selected) {
			continue
		}
		if !filter.Matches(t) {
			continue
		}
		out = append(out, *t)
	}
	return out
}

// Counts aggregates the unfiltered collection. Categories without tasks do
// not appear in ByCategory.
func (m *Manager) Counts() domain.TaskCounts {
	counts := domain.TaskCounts{
		All:        len(m.tasks),
		ByCategory: make(map[domain.Category]int),
	}
	for i := range m.tasks {
		t := &m.tasks[i]
		if t.Completed {
			counts.Completed++
		} else {
			counts.Active++
		}
		counts.ByCategory[t.Category]++
	}
	return counts
}

// DayStatus summarizes the tasks due on the given calendar day: none when
// there are none, completed when all are done, incomplete otherwise.
func (m *Manager) DayStatus(date time.Time) domain.DayStatus {
	total, done := 0, 0
	for i := range m.tasks {
		if m.tasks[i].DueOn(date) {
			total++
			if m.tasks[i].Completed {
				done++
			}
		}
	}
	switch {
	case total == 0:
		return domain.DayStatusNone
	case done == total:
		return domain.DayStatusCompleted
	default:
		return domain.DayStatusIncomplete
	}
}

// Progress reports completed-of-total for the unfiltered collection.
func (m *Manager) Progress() (completed, total int) {
	for i := range m.tasks {
		if m.tasks[i].Completed {
			completed++
		}
	}
	return completed, len(m.tasks)
}

func (m *Manager) index(id string) int {
	for i := range m.tasks {
		if m.tasks[i].ID == id {
			return i
		}
	}
	return -1
}

func (m *Manager) persist(ctx context.Context) error {
	if err := m.repo.Save(ctx, m.accountID, m.tasks); err != nil {
		m.logger.Error("failed to persist tasks", zap.String("account_id", m.accountID), zap.Error(err))
		return err
	}
	return nil
}
