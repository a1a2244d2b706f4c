package entity

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID
	Name         string
	PasswordHash string
}

type Recipe struct {
	ID           string    `json:"id"`
	UserID       uuid.UUID `json:"uid"`
	Name         string    `json:"name" validate:"required,max=200"`
	Description  string    `json:"description,omitempty"`
	Calories     float64   `json:"calories" validate:"gte=0"`
	Protein      float64   `json:"protein,omitempty" validate:"gte=0"`
	Fat          float64   `json:"fat,omitempty" validate:"gte=0"`
	Carbs        float64   `json:"carbs,omitempty" validate:"gte=0"`
	Ingredients  []string  `json:"ingredients"`
	Instructions []string  `json:"instructions"`
	Tags         []string  `json:"tags"`
	Servings     float64   `json:"servings" validate:"gt=0"`
	Image        string    `json:"image,omitempty" validate:"omitempty,url_reference"`
	IsFavorite   bool      `json:"is_favorite,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type MealSource string

const (
	MealSourceLibrary MealSource = "library"
	MealSourceCustom  MealSource = "custom"
)

// MealOverrides holds per-instance choices that take precedence over the library record.
type MealOverrides struct {
	Name     *string  `json:"name,omitempty"`
	Calories *float64 `json:"calories,omitempty"`
	Protein  *float64 `json:"protein,omitempty"`
	Fat      *float64 `json:"fat,omitempty"`
	Carbs    *float64 `json:"carbs,omitempty"`
}

// Meal is the fully resolved, recipe-shaped meal returned to clients.
type Meal struct {
	ID           string         `json:"id"`
	RecipeID     string         `json:"recipe_id,omitempty"`
	Source       MealSource     `json:"source"`
	Name         string         `json:"name"`
	Description  string         `json:"description,omitempty"`
	Calories     float64        `json:"calories"`
	Protein      float64        `json:"protein,omitempty"`
	Fat          float64        `json:"fat,omitempty"`
	Carbs        float64        `json:"carbs,omitempty"`
	Ingredients  []string       `json:"ingredients"`
	Instructions []string       `json:"instructions"`
	Tags         []string       `json:"tags"`
	Servings     float64        `json:"servings"`
	Image        string         `json:"image,omitempty"`
	Overrides    *MealOverrides `json:"overrides,omitempty"`
	Unresolved   bool           `json:"unresolved,omitempty"`
}

type DayType string

const (
	DayTypeFast    DayType = "fast"
	DayTypeNonFast DayType = "non-fast"
)

type DayPlan struct {
	Date             string   `json:"date"`
	Meals            []Meal   `json:"meals"`
	CompletedMealIDs []string `json:"completed_meal_ids"`
	Tips             string   `json:"tips,omitempty"`
	Type             DayType  `json:"type"`
}

// TotalCalories sums meal calories scaled by servings.
func (p *DayPlan) TotalCalories() float64 {
	var total float64
	for _, m := range p.Meals {
		servings := m.Servings
		if servings <= 0 {
			servings = 1
		}
		total += m.Calories * servings
	}
	return total
}

// StoredDayPlan is the compact persisted form of a DayPlan.
type StoredDayPlan struct {
	Date             string
	Meals            []PlannedMeal
	CompletedMealIDs []string
	Tips             string
	Type             DayType
}

type FoodLogItem struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Calories  float64   `json:"calories"`
	Timestamp time.Time `json:"timestamp"`
}

type WorkoutItem struct {
	ID             string    `json:"id"`
	Type           string    `json:"type"`
	CaloriesBurned float64   `json:"calories_burned"`
	Timestamp      time.Time `json:"timestamp"`
}

type DailyLog struct {
	Date            string        `json:"date"`
	Items           []FoodLogItem `json:"items"`
	Workouts        []WorkoutItem `json:"workouts"`
	WaterIntake     float64       `json:"water_intake"`
	MaxFastingHours *float64      `json:"max_fasting_hours,omitempty"`
}

// IsEmpty reports whether the log holds nothing worth archiving.
func (l *DailyLog) IsEmpty() bool {
	return len(l.Items) == 0 && len(l.Workouts) == 0 && l.WaterIntake == 0
}

type DailySummary struct {
	Date             string  `json:"date"`
	CaloriesConsumed float64 `json:"calories_consumed"`
	CaloriesBurned   float64 `json:"calories_burned"`
	NetCalories      float64 `json:"net_calories"`
	WorkoutCount     int     `json:"workout_count"`
	WaterIntake      float64 `json:"water_intake"`
	MaxFastingHours  float64 `json:"max_fasting_hours"`
}

type WeightEntry struct {
	Date   string  `json:"date"`
	Weight float64 `json:"weight"`
}

type StreakCategory struct {
	Current     int    `json:"current"`
	Best        int    `json:"best"`
	LastLogDate string `json:"last_log_date"`
}

type Streaks struct {
	CurrentStreak    int            `json:"current_streak"`
	BestStreak       int            `json:"best_streak"`
	LastLogDate      string         `json:"last_log_date"`
	PerfectDaysCount int            `json:"perfect_days_count"`
	Calories         StreakCategory `json:"calories"`
	Water            StreakCategory `json:"water"`
	Fasting          StreakCategory `json:"fasting"`
}

type DietMode string

const (
	DietModeDaily   DietMode = "daily"
	DietModeFiveTwo DietMode = "5:2"
)

type UserStats struct {
	StartWeight             float64       `json:"start_weight"`
	CurrentWeight           float64       `json:"current_weight"`
	GoalWeight              float64       `json:"goal_weight"`
	Name                    string        `json:"name,omitempty"`
	DailyCalorieGoal        float64       `json:"daily_calorie_goal"`
	DailyWaterGoal          float64       `json:"daily_water_goal"`
	WeightHistory           []WeightEntry `json:"weight_history"`
	DietMode                DietMode      `json:"diet_mode,omitempty"`
	NonFastDayCalories      float64       `json:"non_fast_day_calories,omitempty"`
	DailyWorkoutCalorieGoal float64       `json:"daily_workout_calorie_goal,omitempty"`
	DailyWorkoutCountGoal   int           `json:"daily_workout_count_goal,omitempty"`
	Streaks                 Streaks       `json:"streaks"`
}

// DefaultUserStats is what a user gets before saving anything.
func DefaultUserStats() UserStats {
	return UserStats{
		StartWeight:      90,
		CurrentWeight:    90,
		GoalWeight:       80,
		DailyCalorieGoal: 800,
		DailyWaterGoal:   2000,
		WeightHistory:    []WeightEntry{},
		DietMode:         DietModeDaily,
	}
}

// CalorieTargetFor picks the calorie ceiling for a day of the given type.
func (s *UserStats) CalorieTargetFor(dayType DayType) float64 {
	if s.DietMode == DietModeFiveTwo && dayType == DayTypeNonFast && s.NonFastDayCalories > 0 {
		return s.NonFastDayCalories
	}
	return s.DailyCalorieGoal
}

type FastingProtocol string

const (
	Protocol12x12  FastingProtocol = "12:12"
	Protocol14x10  FastingProtocol = "14:10"
	Protocol16x8   FastingProtocol = "16:8"
	Protocol18x6   FastingProtocol = "18:6"
	Protocol20x4   FastingProtocol = "20:4"
	ProtocolCustom FastingProtocol = "custom"
)

type FastingConfig struct {
	Protocol        FastingProtocol `json:"protocol"`
	TargetFastHours float64         `json:"target_fast_hours"`
}

type FastingState struct {
	LastAteTime *time.Time    `json:"last_ate_time"`
	Config      FastingConfig `json:"config"`
}

func DefaultFastingState() FastingState {
	return FastingState{
		Config: FastingConfig{
			Protocol:        Protocol16x8,
			TargetFastHours: 16,
		},
	}
}

type FastingEntry struct {
	ID            uuid.UUID `json:"id"`
	StartTime     time.Time `json:"start_time"`
	EndTime       time.Time `json:"end_time"`
	DurationHours float64   `json:"duration_hours"`
	IsSuccess     bool      `json:"is_success"`
}

type CalorieStatus string

const (
	CalorieStatusPerfect CalorieStatus = "perfect"
	CalorieStatusOver    CalorieStatus = "over"
)

type CalorieProgress struct {
	Current float64       `json:"current"`
	Target  float64       `json:"target"`
	Status  CalorieStatus `json:"status"`
}

type WaterProgress struct {
	Current float64 `json:"current"`
	Target  float64 `json:"target"`
	IsMet   bool    `json:"is_met"`
}

type FastingProgress struct {
	Hours  float64 `json:"hours"`
	Target float64 `json:"target"`
	IsMet  bool    `json:"is_met"`
}

type DailyProgress struct {
	Calories     CalorieProgress `json:"calories"`
	Water        WaterProgress   `json:"water"`
	Fasting      FastingProgress `json:"fasting"`
	IsPerfectDay bool            `json:"is_perfect_day"`
}

type ParsedIngredient struct {
	OriginalText string  `json:"original_text"`
	Name         string  `json:"name"`
	Quantity     float64 `json:"quantity"`
	Unit         string  `json:"unit"`
}

type RecipeUsage struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
}

type ShoppingItem struct {
	Name          string        `json:"name"`
	TotalQuantity float64       `json:"total_quantity"`
	Unit          string        `json:"unit"`
	Recipes       []RecipeUsage `json:"recipes"`
}

// RecipeDraft is a recipe skeleton extracted from free text or a photo.
type RecipeDraft struct {
	Name         string   `json:"name"`
	Calories     float64  `json:"calories"`
	Protein      float64  `json:"protein,omitempty"`
	Fat          float64  `json:"fat,omitempty"`
	Carbs        float64  `json:"carbs,omitempty"`
	Servings     float64  `json:"servings,omitempty"`
	Ingredients  []string `json:"ingredients"`
	Instructions []string `json:"instructions,omitempty"`
	Type         string   `json:"type,omitempty"`
}

// FoodEstimate is one food recognised in a free-text food log.
type FoodEstimate struct {
	Name     string  `json:"name"`
	Calories float64 `json:"calories"`
}
