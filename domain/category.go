package domain

// Category classifies a task for filtering and display. The set is closed.
type Category string

const (
	CategoryLife      Category = "life"
	CategoryWork      Category = "work"
	CategoryRelations Category = "relations"
	CategoryHabits    Category = "habits"
	CategoryHealth    Category = "health"
	CategoryLearning  Category = "learning"
	CategoryUrgent    Category = "urgent"
	CategoryPersonal  Category = "personal"
	CategoryOther     Category = "other"
)

// Categories lists every valid category in display order.
func Categories() []Category {
	return []Category{
		CategoryLife,
		CategoryWork,
		CategoryRelations,
		CategoryHabits,
		CategoryHealth,
		CategoryLearning,
		CategoryUrgent,
		CategoryPersonal,
		CategoryOther,
	}
}

func (c Category) Valid() bool {
	switch c {
	case CategoryLife, CategoryWork, CategoryRelations, CategoryHabits,
		CategoryHealth, CategoryLearning, CategoryUrgent, CategoryPersonal,
		CategoryOther:
		return true
	}
	return false
}
