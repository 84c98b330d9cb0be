package domain

import (
	"testing"
	"time"
)

func TestFilterMatches(t *testing.T) {
	active := &Task{ID: "a", Category: CategoryHabits}
	done := &Task{ID: "d", Category: CategoryWork, Completed: true}

	tests := []struct {
		name   string
		filter Filter
		task   *Task
		want   bool
	}{
		{name: "all passes active", filter: FilterAll, task: active, want: true},
		{name: "all passes completed", filter: FilterAll, task: done, want: true},
		{name: "zero value behaves like all", filter: "", task: done, want: true},
		{name: "active passes active", filter: FilterActive, task: active, want: true},
		{name: "active rejects completed", filter: FilterActive, task: done, want: false},
		{name: "completed passes completed", filter: FilterCompleted, task: done, want: true},
		{name: "completed rejects active", filter: FilterCompleted, task: active, want: false},
		{name: "category match", filter: CategoryFilter(CategoryHabits), task: active, want: true},
		{name: "category mismatch", filter: CategoryFilter(CategoryHabits), task: done, want: false},
		{name: "nil task", filter: FilterAll, task: nil, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.filter.Matches(tt.task); got != tt.want {
				t.Errorf("Matches() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTaskCountsCount(t *testing.T) {
	counts := TaskCounts{
		All:       3,
		Active:    2,
		Completed: 1,
		ByCategory: map[Category]int{
			CategoryHabits: 2,
			CategoryWork:   1,
		},
	}

	if got := counts.Count(FilterAll); got != 3 {
		t.Errorf("Count(all) = %d", got)
	}
	if got := counts.Count(FilterActive); got != 2 {
		t.Errorf("Count(active) = %d", got)
	}
	if got := counts.Count(FilterCompleted); got != 1 {
		t.Errorf("Count(completed) = %d", got)
	}
	if got := counts.Count(CategoryFilter(CategoryHabits)); got != 2 {
		t.Errorf("Count(habits) = %d", got)
	}
	if got := counts.Count(CategoryFilter(CategoryHealth)); got != 0 {
		t.Errorf("Count of absent category = %d, want 0", got)
	}
}

func TestSameDay(t *testing.T) {
	base := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		a, b time.Time
		want bool
	}{
		{name: "same instant", a: base, b: base, want: true},
		{name: "same day different hour", a: base, b: base.Add(13 * time.Hour), want: true},
		{name: "next day", a: base, b: base.AddDate(0, 0, 1), want: false},
		{name: "same day next month", a: base, b: base.AddDate(0, 1, 0), want: false},
		{name: "same day next year", a: base, b: base.AddDate(1, 0, 0), want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SameDay(tt.a, tt.b); got != tt.want {
				t.Errorf("SameDay() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTaskDueOn(t *testing.T) {
	day := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	due := day.Add(15 * time.Hour)

	dated := &Task{ID: "a", DueDate: &due}
	if !dated.DueOn(day) {
		t.Error("task due that day not matched")
	}
	if dated.DueOn(day.AddDate(0, 0, 1)) {
		t.Error("task matched the wrong day")
	}

	undated := &Task{ID: "b"}
	if undated.DueOn(day) {
		t.Error("task without a due date matched a day")
	}
}
