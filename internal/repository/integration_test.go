package repository_test

import (
	"context"
	"database/sql"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/lib/pq"
	"github.com/pressly/goose"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	errorvalues "github.com/limbo/fast800/internal/error_values"
	"github.com/limbo/fast800/internal/repository"
	"github.com/limbo/fast800/pkg/entity"
)

func TestRepositoriesIntegrational(t *testing.T) {
	if os.Getenv("FAST800_INTEGRATION") != "1" {
		t.Skip("set FAST800_INTEGRATION=1 to run against a postgres container")
	}
	pool := setupTestDB(t)
	ctx := context.Background()

	users := repository.NewUsersRepo(pool)
	uid, err := users.Create(ctx, &entity.User{Name: "tester", PasswordHash: "hash"})
	require.NoError(t, err)

	t.Run("recipes", func(t *testing.T) {
		repo := repository.NewRecipesRepo(pool)
		recipe := testRecipe()
		recipe.UserID = uid
		require.NoError(t, repo.Save(ctx, &recipe))
		recipe.Name = "Green shakshuka"
		require.NoError(t, repo.Save(ctx, &recipe))
		got, err := repo.GetByID(ctx, uid, recipe.ID)
		require.NoError(t, err)
		assert.Equal(t, "Green shakshuka", got.Name)
		assert.Equal(t, recipe.Ingredients, got.Ingredients)
		all, err := repo.GetAllByUser(ctx, uid)
		require.NoError(t, err)
		assert.Len(t, all, 1)
		require.NoError(t, repo.Delete(ctx, uid, recipe.ID))
		_, err = repo.GetByID(ctx, uid, recipe.ID)
		assert.ErrorIs(t, err, errorvalues.ErrRecipeNotFound)
	})

	t.Run("day plans", func(t *testing.T) {
		repo := repository.NewDayPlansRepo(pool)
		plan := entity.StoredDayPlan{
			Date: "2024-01-10",
			Meals: []entity.PlannedMeal{
				entity.MealReference{RecipeID: "r1", Servings: 2},
				entity.CustomMeal{ID: "c1", Name: "Pub lunch", Calories: 650, Servings: 1},
			},
			CompletedMealIDs: []string{"c1"},
			Type:             entity.DayTypeNonFast,
		}
		require.NoError(t, repo.Save(ctx, uid, &plan))
		got, err := repo.Get(ctx, uid, plan.Date)
		require.NoError(t, err)
		assert.Equal(t, plan, *got)
		plans, err := repo.GetRange(ctx, uid, "2024-01-01", "2024-01-31")
		require.NoError(t, err)
		assert.Len(t, plans, 1)
	})

	t.Run("logs and summaries", func(t *testing.T) {
		logs := repository.NewDailyLogsRepo(pool)
		summaries := repository.NewSummariesRepo(pool)
		dl := entity.DailyLog{
			Date:        "2024-01-09",
			Items:       []entity.FoodLogItem{{ID: "i1", Name: "Soup", Calories: 300, Timestamp: time.Date(2024, 1, 9, 12, 0, 0, 0, time.UTC)}},
			WaterIntake: 500,
		}
		require.NoError(t, logs.Save(ctx, uid, &dl))
		dates, err := logs.ListDates(ctx, uid)
		require.NoError(t, err)
		assert.Equal(t, []string{"2024-01-09"}, dates)

		s := entity.DailySummary{Date: dl.Date, CaloriesConsumed: 300, NetCalories: 300, WaterIntake: 500}
		require.NoError(t, summaries.Create(ctx, uid, &s))
		assert.ErrorIs(t, summaries.Create(ctx, uid, &s), errorvalues.ErrSummaryExists)
		ok, err := summaries.Exists(ctx, uid, dl.Date)
		require.NoError(t, err)
		assert.True(t, ok)
		require.NoError(t, logs.Delete(ctx, uid, dl.Date))
		got, err := logs.Get(ctx, uid, dl.Date)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("stats and fasting", func(t *testing.T) {
		stats := repository.NewStatsRepo(pool)
		fasting := repository.NewFastingRepo(pool)
		s := entity.DefaultUserStats()
		s.WeightHistory = append(s.WeightHistory, entity.WeightEntry{Date: "2024-01-01", Weight: 89})
		require.NoError(t, stats.Save(ctx, uid, &s))
		got, err := stats.Get(ctx, uid)
		require.NoError(t, err)
		assert.Equal(t, s.WeightHistory, got.WeightHistory)

		ate := time.Date(2024, 1, 9, 20, 0, 0, 0, time.UTC)
		state := entity.DefaultFastingState()
		state.LastAteTime = &ate
		require.NoError(t, fasting.SaveState(ctx, uid, &state))
		entry := entity.FastingEntry{ID: uuid.New(), StartTime: ate, EndTime: ate.Add(16 * time.Hour), DurationHours: 16, IsSuccess: true}
		require.NoError(t, fasting.AddEntry(ctx, uid, &entry))
		history, err := fasting.GetHistory(ctx, uid)
		require.NoError(t, err)
		assert.Len(t, history, 1)
	})
}

func setupTestDB(t *testing.T) *pgxpool.Pool {
	container, err := postgres.Run(context.Background(), "postgres:17",
		postgres.WithUsername("test_user"),
		postgres.WithDatabase("fast800"),
		postgres.WithPassword("test_password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		t.Fatal("error running test container: " + err.Error())
	}
	t.Cleanup(func() {
		container.Terminate(context.Background())
	})
	connStr, err := container.ConnectionString(context.Background(), "sslmode=disable")
	if err != nil {
		t.Fatal(err)
	}
	conn, err := sql.Open("postgres", connStr)
	if err != nil {
		t.Fatal(err)
	}
	err = goose.Up(conn, "../../migrations")
	if err != nil {
		t.Fatal(err)
	}
	conn.Close()
	pool, err := pgxpool.New(context.Background(), connStr)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(pool.Close)
	return pool
}
