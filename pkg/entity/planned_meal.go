package entity

type PlannedMealKind string

const (
	PlannedMealReference PlannedMealKind = "reference"
	PlannedMealCustom    PlannedMealKind = "custom"
)

// PlannedMeal is the persisted form of a meal in a day plan.
// Implemented only by MealReference and CustomMeal.
type PlannedMeal interface {
	Kind() PlannedMealKind
	// MealID is the id the plan's completion set refers to.
	MealID() string
	plannedMeal()
}

// MealReference points at a library recipe instead of copying it.
// InstanceID is set only when the plan's meal id differs from the recipe id,
// e.g. when the same recipe is planned twice on one day.
type MealReference struct {
	RecipeID   string
	InstanceID string
	Servings   float64
	Overrides  *MealOverrides
}

func (MealReference) Kind() PlannedMealKind { return PlannedMealReference }
func (MealReference) plannedMeal()          {}

func (r MealReference) MealID() string {
	if r.InstanceID != "" {
		return r.InstanceID
	}
	return r.RecipeID
}

// CustomMeal is a one-off meal with no library record behind it.
type CustomMeal struct {
	ID       string
	Name     string
	Calories float64
	Protein  float64
	Fat      float64
	Carbs    float64
	Tags     []string
	Servings float64
}

func (CustomMeal) Kind() PlannedMealKind { return PlannedMealCustom }
func (c CustomMeal) MealID() string      { return c.ID }
func (CustomMeal) plannedMeal()          {}
