package domain

import "time"

// Task represents a habit or behavior the user wants to eliminate. Every
// task belongs to exactly one account; CreatedAt is set once and never
// changes. CompletedAt is present exactly when Completed is true.
type Task struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Category    Category   `json:"category"`
	Completed   bool       `json:"completed"`
	Description string     `json:"description,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`
}

// DueOn reports whether the task has a due date falling on the same
// calendar day as the given date.
func (t *Task) DueOn(day time.Time) bool {
	return t != nil && t.DueDate != nil && SameDay(*t.DueDate, day)
}

// SameDay reports whether two instants fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
