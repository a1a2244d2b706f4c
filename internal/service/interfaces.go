package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/limbo/fast800/pkg/entity"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/service_mocks.go -package=mocks

type RegisterRequest struct {
	Name     string `validate:"required,alphanum_underscore,min=3,max=100"`
	Password string `validate:"required,min=8,max=72"`
}

type GoalsRequest struct {
	Name                    string          `validate:"max=100"`
	StartWeight             float64         `validate:"gt=0"`
	GoalWeight              float64         `validate:"gt=0"`
	DailyCalorieGoal        float64         `validate:"gt=0"`
	DailyWaterGoal          float64         `validate:"gte=0"`
	DietMode                entity.DietMode `validate:"omitempty,oneof=daily 5:2"`
	NonFastDayCalories      float64         `validate:"gte=0"`
	DailyWorkoutCalorieGoal float64         `validate:"gte=0"`
	DailyWorkoutCountGoal   int             `validate:"gte=0"`
}

type FastingConfigRequest struct {
	Protocol    entity.FastingProtocol `validate:"required,oneof=12:12 14:10 16:8 18:6 20:4 custom"`
	CustomHours float64                `validate:"required_if=Protocol custom,gte=0,lte=72"`
}

type FoodItemRequest struct {
	Name     string  `validate:"required,max=200"`
	Calories float64 `validate:"gte=0,lte=20000"`
}

type WorkoutRequest struct {
	Type           string  `validate:"required,max=100"`
	CaloriesBurned float64 `validate:"gte=0,lte=20000"`
}

// RecipeParser extracts structured data from free text and photos.
type RecipeParser interface {
	// Turns recipe text into a draft
	ParseRecipeText(ctx context.Context, text string) (*entity.RecipeDraft, error)
	// Turns photo of a dish or a recipe card into a draft
	ParseRecipeImage(ctx context.Context, data []byte, mimeType string) (*entity.RecipeDraft, error)
	// Estimates calories of every food mentioned in text
	AnalyzeFoodLog(ctx context.Context, text string) ([]entity.FoodEstimate, error)
	// Parses ingredient lines. Result is positionally aligned with lines
	ParseIngredients(ctx context.Context, lines []string) ([]entity.ParsedIngredient, error)
}

// ImageStore takes image bytes and gives back a url to reference them by.
type ImageStore interface {
	Upload(ctx context.Context, uid uuid.UUID, name string, data []byte, contentType string) (string, error)
}

// IngredientCache is an append-only memo of parsed ingredient lines.
type IngredientCache interface {
	Get(line string) (entity.ParsedIngredient, bool)
	Set(line string, parsed entity.ParsedIngredient)
	Has(line string) bool
}

type UserServiceI interface {
	// Validates user's credentials, creates new row in database. Returns user's data with ID
	Register(ctx context.Context, req *RegisterRequest) (*entity.User, error)
	// Compares given credentials. If ok, give back user's data with ID.
	Login(ctx context.Context, name, password string) (*entity.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	GetByName(ctx context.Context, name string) (*entity.User, error)
	DeleteAccount(ctx context.Context, id uuid.UUID, password string) error
}

type PlansServiceI interface {
	// Returns hydrated plan for the date, a fresh fast-day plan when nothing is stored
	GetDayPlan(ctx context.Context, uid uuid.UUID, date string) (*entity.DayPlan, error)
	// Dehydrates and stores plan
	SaveDayPlan(ctx context.Context, uid uuid.UUID, plan *entity.DayPlan) error
	// Returns a plan for every date in [start, end]
	GetDayPlansInRange(ctx context.Context, uid uuid.UUID, start, end string) (map[string]*entity.DayPlan, error)
	AddMeal(ctx context.Context, uid uuid.UUID, date string, meal entity.Meal) (*entity.DayPlan, error)
	RemoveMeal(ctx context.Context, uid uuid.UUID, date, mealID string) (*entity.DayPlan, error)
	SwapMeal(ctx context.Context, uid uuid.UUID, date, mealID string, replacement entity.Meal) (*entity.DayPlan, error)
	ToggleMealCompleted(ctx context.Context, uid uuid.UUID, date, mealID string) (*entity.DayPlan, error)
	SetDayType(ctx context.Context, uid uuid.UUID, date string, dayType entity.DayType) (*entity.DayPlan, error)
}

type LogsServiceI interface {
	// Returns itemized log, empty one when nothing is logged
	GetDailyLog(ctx context.Context, uid uuid.UUID, date string) (*entity.DailyLog, error)
	SaveDailyLog(ctx context.Context, uid uuid.UUID, dl *entity.DailyLog) error
	AddFoodItem(ctx context.Context, uid uuid.UUID, date string, req FoodItemRequest) (*entity.DailyLog, error)
	RemoveFoodItem(ctx context.Context, uid uuid.UUID, date, itemID string) (*entity.DailyLog, error)
	AddWorkout(ctx context.Context, uid uuid.UUID, date string, req WorkoutRequest) (*entity.DailyLog, error)
	RemoveWorkout(ctx context.Context, uid uuid.UUID, date, workoutID string) (*entity.DailyLog, error)
	AddWater(ctx context.Context, uid uuid.UUID, date string, ml float64) (*entity.DailyLog, error)
	// Estimates foods from free text and logs them for today
	AnalyzeFoodText(ctx context.Context, uid uuid.UUID, text string) (*entity.DailyLog, error)
}

type RecipesServiceI interface {
	GetRecipe(ctx context.Context, uid uuid.UUID, id string) (*entity.Recipe, error)
	GetRecipes(ctx context.Context, uid uuid.UUID) ([]*entity.Recipe, error)
	// Creates recipe when id is empty, otherwise updates it
	SaveRecipe(ctx context.Context, uid uuid.UUID, recipe *entity.Recipe) (*entity.Recipe, error)
	DeleteRecipe(ctx context.Context, uid uuid.UUID, id string) error
	UploadRecipeImage(ctx context.Context, uid uuid.UUID, id string, data []byte, contentType string) (*entity.Recipe, error)
	// Returns unsaved recipe drafted from text
	ParseRecipeText(ctx context.Context, uid uuid.UUID, text string) (*entity.Recipe, error)
	// Returns unsaved recipe drafted from a photo
	ParseRecipeImage(ctx context.Context, uid uuid.UUID, data []byte, mimeType string) (*entity.Recipe, error)
}

type StatsServiceI interface {
	GetUserStats(ctx context.Context, uid uuid.UUID) (*entity.UserStats, error)
	UpdateGoals(ctx context.Context, uid uuid.UUID, req GoalsRequest) (*entity.UserStats, error)
	AddWeightEntry(ctx context.Context, uid uuid.UUID, entry entity.WeightEntry) (*entity.UserStats, error)
}

type FastingServiceI interface {
	GetFastingState(ctx context.Context, uid uuid.UUID) (*entity.FastingState, error)
	UpdateFastingConfig(ctx context.Context, uid uuid.UUID, req FastingConfigRequest) (*entity.FastingState, error)
	GetFastingHistory(ctx context.Context, uid uuid.UUID) ([]entity.FastingEntry, error)
	// Closes the running fast at the given time
	RecordMeal(ctx context.Context, uid uuid.UUID, at time.Time) (*entity.FastingEntry, error)
}

type ArchiveServiceI interface {
	ArchiveYesterdaysLog(ctx context.Context, uid uuid.UUID) (ArchiveResult, error)
	MigrateAllLogsToSummaries(ctx context.Context, uid uuid.UUID) (BatchResult, error)
	GetDailySummaries(ctx context.Context, uid uuid.UUID, daysBack int) ([]entity.DailySummary, error)
	GetAllDailySummaries(ctx context.Context, uid uuid.UUID) ([]entity.DailySummary, error)
}

type AnalyticsServiceI interface {
	GetAnalyticsData(ctx context.Context, uid uuid.UUID) ([]AnalyticsPoint, error)
	// Returns nil when weight isn't trending down
	GetGoalProjection(ctx context.Context, uid uuid.UUID) (*GoalProjection, error)
	GetWeightTrend(ctx context.Context, uid uuid.UUID) (*WeightTrendReport, error)
	GetConsistency(ctx context.Context, uid uuid.UUID) (*Consistency, error)
	GetPeriodSummary(ctx context.Context, uid uuid.UUID, period Period) (*PeriodReport, error)
}

type AchievementServiceI interface {
	EvaluateToday(ctx context.Context, uid uuid.UUID) (*Achievements, error)
}

type ShoppingServiceI interface {
	BuildShoppingList(ctx context.Context, uid uuid.UUID, from, to string) ([]entity.ShoppingItem, error)
}

type MigrationServiceI interface {
	MigrateInlineImages(ctx context.Context, uid uuid.UUID) (BatchResult, error)
	MigrateDayPlansToNormalized(ctx context.Context, uid uuid.UUID) (BatchResult, error)
	CleanupLegacyData(ctx context.Context, uid uuid.UUID) error
	RunAll(ctx context.Context, uid uuid.UUID) (*MigrationReport, error)
}
