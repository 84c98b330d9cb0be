// Package categories holds the display configuration each task category
// maps to. The category set itself is closed; only labels, icons and
// colors are configurable.
package categories

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/undoapp/tracker/domain"
)

// Display is the presentation configuration for one category.
type Display struct {
	Label string `toml:"label"`
	Icon  string `toml:"icon"`
	Color string `toml:"color"`
}

// Set maps every category to its display configuration.
type Set map[domain.Category]Display

// Defaults returns the built-in display set covering every category.
func Defaults() Set {
	return Set{
		domain.CategoryLife:      {Label: "Life", Icon: "🌱", Color: "green"},
		domain.CategoryWork:      {Label: "Work", Icon: "💼", Color: "blue"},
		domain.CategoryRelations: {Label: "Relations", Icon: "💬", Color: "pink"},
		domain.CategoryHabits:    {Label: "Habits", Icon: "🔄", Color: "purple"},
		domain.CategoryHealth:    {Label: "Health", Icon: "❤️", Color: "red"},
		domain.CategoryLearning:  {Label: "Learning", Icon: "📚", Color: "yellow"},
		domain.CategoryUrgent:    {Label: "Urgent", Icon: "⚡", Color: "orange"},
		domain.CategoryPersonal:  {Label: "Personal", Icon: "🎯", Color: "cyan"},
		domain.CategoryOther:     {Label: "Other", Icon: "📌", Color: "gray"},
	}
}

// Load returns the defaults merged with the optional TOML override file.
// An empty path means defaults only. Keys outside the closed category set
// are rejected.
func Load(path string) (Set, error) {
	set := Defaults()
	if path == "" {
		return set, nil
	}

	var overrides map[string]Display
	if _, err := toml.DecodeFile(path, &overrides); err != nil {
		return nil, fmt.Errorf("load categories file: %w", err)
	}

	for key, override := range overrides {
		category := domain.Category(key)
		if !category.Valid() {
			return nil, fmt.Errorf("categories file: unknown category %q", key)
		}
		display := set[category]
		if override.Label != "" {
			display.Label = override.Label
		}
		if override.Icon != "" {
			display.Icon = override.Icon
		}
		if override.Color != "" {
			display.Color = override.Color
		}
		set[category] = display
	}
	return set, nil
}

// Get returns the display for a category, falling back to the "other"
// entry for anything unknown.
func (s Set) Get(c domain.Category) Display {
	if display, ok := s[c]; ok {
		return display
	}
	return s[domain.CategoryOther]
}
