package domain

// Filter selects tasks by completion status or category. The zero value
// behaves like FilterAll.
type Filter string

const (
	FilterAll       Filter = "all"
	FilterActive    Filter = "active"
	FilterCompleted Filter = "completed"
)

// CategoryFilter returns the filter passing only tasks of the category.
func CategoryFilter(c Category) Filter {
	return Filter(c)
}

// Matches reports whether the task passes the status/category predicate.
func (f Filter) Matches(t *Task) bool {
	if t == nil {
		return false
	}
	switch f {
	case FilterAll, "":
		return true
	case FilterActive:
		return !t.Completed
	case FilterCompleted:
		return t.Completed
	default:
		return t.Category == Category(f)
	}
}

// TaskCounts aggregates totals over the full collection. All, Active and
// Completed are always present; ByCategory omits categories with no tasks,
// absence meaning zero.
type TaskCounts struct {
	All        int              `json:"all"`
	Active     int              `json:"active"`
	Completed  int              `json:"completed"`
	ByCategory map[Category]int `json:"by_category,omitempty"`
}

// Count returns the count behind a filter value, treating missing
// categories as zero.
func (c TaskCounts) Count(f Filter) int {
	switch f {
	case FilterAll, "":
		return c.All
	case FilterActive:
		return c.Active
	case FilterCompleted:
		return c.Completed
	default:
		return c.ByCategory[Category(f)]
	}
}

// DayStatus summarizes the tasks due on a calendar day.
type DayStatus string

const (
	DayStatusNone       DayStatus = "none"
	DayStatusCompleted  DayStatus = "completed"
	DayStatusIncomplete DayStatus = "incomplete"
)
