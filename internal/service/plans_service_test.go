package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errorvalues "github.com/limbo/fast800/internal/error_values"
	"github.com/limbo/fast800/internal/repository/mocks"
	"github.com/limbo/fast800/internal/service"
	"github.com/limbo/fast800/pkg/entity"
)

func newPlansFixture(legacy map[string]entity.DayPlan) (*service.PlansService, *memPlans, *memRecipes) {
	recipes := newMemRecipes(libraryRecipes()...)
	plans := newMemPlans()
	ps := service.NewPlansService(plans, &memLegacy{data: legacy}, service.NewNormalizer(recipes))
	return ps, plans, recipes
}

func TestGetDayPlan(t *testing.T) {
	ctx := context.Background()
	legacy := map[string]entity.DayPlan{
		"2024-01-05": {
			Meals: []entity.Meal{{ID: "r2", Source: entity.MealSourceLibrary, Name: "Soup", Servings: 1}},
			Tips:  "drink water",
			Type:  entity.DayTypeNonFast,
		},
	}
	ps, plans, _ := newPlansFixture(legacy)
	plans.plans["2024-01-03"] = &entity.StoredDayPlan{
		Date:             "2024-01-03",
		Meals:            []entity.PlannedMeal{entity.MealReference{RecipeID: "r1", Servings: 1}},
		CompletedMealIDs: []string{"r1"},
		Type:             entity.DayTypeFast,
	}

	t.Run("stored plan is hydrated", func(t *testing.T) {
		plan, err := ps.GetDayPlan(ctx, userID, "2024-01-03")
		require.NoError(t, err)
		require.Len(t, plan.Meals, 1)
		assert.Equal(t, "Shakshuka", plan.Meals[0].Name)
		assert.Equal(t, []string{"r1"}, plan.CompletedMealIDs)
	})
	t.Run("legacy day is used when nothing is stored", func(t *testing.T) {
		plan, err := ps.GetDayPlan(ctx, userID, "2024-01-05")
		require.NoError(t, err)
		assert.Equal(t, "2024-01-05", plan.Date)
		assert.Equal(t, entity.DayTypeNonFast, plan.Type)
		assert.Equal(t, []string{"100 g red lentils", "1 onion"}, plan.Meals[0].Ingredients)
	})
	t.Run("missing plan is a fresh fast day", func(t *testing.T) {
		plan, err := ps.GetDayPlan(ctx, userID, "2024-02-01")
		require.NoError(t, err)
		assert.Equal(t, entity.DayTypeFast, plan.Type)
		assert.Empty(t, plan.Meals)
		assert.NotNil(t, plan.CompletedMealIDs)
	})
	t.Run("invalid date", func(t *testing.T) {
		_, err := ps.GetDayPlan(ctx, userID, "02/01/2024")
		assert.ErrorIs(t, err, errorvalues.ErrInvalidDate)
	})
}

func TestGetDayPlanRequiresUser(t *testing.T) {
	ps, _, _ := newPlansFixture(nil)
	_, err := ps.GetDayPlan(context.Background(), [16]byte{}, "2024-01-01")
	assert.ErrorIs(t, err, errorvalues.ErrNotAuthenticated)
}

func TestSaveDayPlan(t *testing.T) {
	ps, plans, _ := newPlansFixture(nil)
	plan := &entity.DayPlan{
		Date: "2024-01-04",
		Meals: []entity.Meal{
			{ID: "inst-1", RecipeID: "r1", Source: entity.MealSourceLibrary, Name: "Shakshuka", Servings: 1,
				Ingredients: []string{"2 eggs"}},
			{ID: "c1", Source: entity.MealSourceCustom, Name: "Pub lunch", Calories: 650, Servings: 1},
		},
		CompletedMealIDs: []string{"inst-1", "c1", "stale"},
	}
	require.NoError(t, ps.SaveDayPlan(context.Background(), userID, plan))
	stored := plans.plans["2024-01-04"]
	require.NotNil(t, stored)
	assert.Equal(t, []entity.PlannedMeal{
		entity.MealReference{RecipeID: "r1", InstanceID: "inst-1", Servings: 1},
		entity.CustomMeal{ID: "c1", Name: "Pub lunch", Calories: 650, Servings: 1},
	}, stored.Meals)
	assert.Equal(t, []string{"inst-1", "c1"}, stored.CompletedMealIDs)

	got, err := ps.GetDayPlan(context.Background(), userID, "2024-01-04")
	require.NoError(t, err)
	assert.Equal(t, "inst-1", got.Meals[0].ID)
	assert.Equal(t, "r1", got.Meals[0].RecipeID)
	assert.Equal(t, []string{"2 eggs", "200 g tomatoes"}, got.Meals[0].Ingredients)
	assert.Equal(t, entity.DayTypeFast, stored.Type)
}

func TestGetDayPlansInRange(t *testing.T) {
	ctx := context.Background()
	legacy := map[string]entity.DayPlan{
		"2024-01-01": {Meals: []entity.Meal{{ID: "c9", Source: entity.MealSourceCustom, Name: "Legacy only", Servings: 1}}},
		"2024-01-02": {Meals: []entity.Meal{{ID: "c8", Source: entity.MealSourceCustom, Name: "Overridden", Servings: 1}}},
	}
	ps, plans, recipes := newPlansFixture(legacy)
	plans.plans["2024-01-02"] = &entity.StoredDayPlan{
		Date:  "2024-01-02",
		Meals: []entity.PlannedMeal{entity.MealReference{RecipeID: "r1", Servings: 1}},
		Type:  entity.DayTypeFast,
	}
	plans.plans["2024-01-03"] = &entity.StoredDayPlan{
		Date:  "2024-01-03",
		Meals: []entity.PlannedMeal{entity.MealReference{RecipeID: "r2", Servings: 1}, entity.MealReference{RecipeID: "r1", Servings: 1}},
		Type:  entity.DayTypeNonFast,
	}

	got, err := ps.GetDayPlansInRange(ctx, userID, "2024-01-01", "2024-01-04")
	require.NoError(t, err)
	require.Len(t, got, 4)
	assert.Equal(t, "Legacy only", got["2024-01-01"].Meals[0].Name)
	assert.Equal(t, "Shakshuka", got["2024-01-02"].Meals[0].Name)
	assert.Equal(t, "Lentil soup", got["2024-01-03"].Meals[0].Name)
	assert.Empty(t, got["2024-01-04"].Meals)
	// one library snapshot instead of a fetch per reference
	assert.Equal(t, 0, recipes.totalGets())

	t.Run("end before start", func(t *testing.T) {
		_, err := ps.GetDayPlansInRange(ctx, userID, "2024-01-04", "2024-01-01")
		assert.ErrorIs(t, err, errorvalues.ErrInvalidRange)
	})
	t.Run("bad date", func(t *testing.T) {
		_, err := ps.GetDayPlansInRange(ctx, userID, "2024-13-01", "2024-01-01")
		assert.ErrorIs(t, err, errorvalues.ErrInvalidDate)
	})
	t.Run("longest allowed range", func(t *testing.T) {
		got, err := ps.GetDayPlansInRange(ctx, userID, "2024-01-01", "2024-12-31")
		require.NoError(t, err)
		assert.Len(t, got, service.MaxPlanRangeDays)
	})
	t.Run("range too long", func(t *testing.T) {
		_, err := ps.GetDayPlansInRange(ctx, userID, "2024-01-01", "2025-01-01")
		assert.ErrorIs(t, err, errorvalues.ErrInvalidRange)
		got, err := ps.GetDayPlansInRange(ctx, userID, "0001-01-01", "9999-12-31")
		assert.ErrorIs(t, err, errorvalues.ErrInvalidRange)
		assert.Nil(t, got)
	})
}

func TestPlannerMutations(t *testing.T) {
	ctx := context.Background()
	ps, plans, _ := newPlansFixture(nil)
	date := "2024-01-06"
	shakshuka := entity.Meal{ID: "r1", RecipeID: "r1", Source: entity.MealSourceLibrary, Name: "Shakshuka", Servings: 1}

	plan, err := ps.AddMeal(ctx, userID, date, shakshuka)
	require.NoError(t, err)
	assert.Len(t, plan.Meals, 1)

	plan, err = ps.AddMeal(ctx, userID, date, entity.Meal{ID: "c1", Source: entity.MealSourceCustom, Name: "Apple", Calories: 80})
	require.NoError(t, err)
	assert.Len(t, plan.Meals, 2)

	plan, err = ps.ToggleMealCompleted(ctx, userID, date, "r1")
	require.NoError(t, err)
	assert.Equal(t, []string{"r1"}, plan.CompletedMealIDs)

	plan, err = ps.SwapMeal(ctx, userID, date, "r1", entity.Meal{ID: "r2", RecipeID: "r2", Source: entity.MealSourceLibrary})
	require.NoError(t, err)
	assert.Equal(t, "Lentil soup", plan.Meals[0].Name)
	assert.Empty(t, plan.CompletedMealIDs)

	plan, err = ps.SetDayType(ctx, userID, date, entity.DayTypeNonFast)
	require.NoError(t, err)
	assert.Equal(t, entity.DayTypeNonFast, plan.Type)

	plan, err = ps.RemoveMeal(ctx, userID, date, "c1")
	require.NoError(t, err)
	assert.Len(t, plan.Meals, 1)

	plan, err = ps.RemoveMeal(ctx, userID, date, "r2")
	require.NoError(t, err)
	assert.Empty(t, plan.Meals)
	// emptied, not deleted
	assert.NotNil(t, plans.plans[date])

	_, err = ps.RemoveMeal(ctx, userID, date, "nope")
	assert.ErrorIs(t, err, errorvalues.ErrMealNotFound)
	_, err = ps.ToggleMealCompleted(ctx, userID, date, "nope")
	assert.ErrorIs(t, err, errorvalues.ErrMealNotFound)
	_, err = ps.SetDayType(ctx, userID, date, "feast")
	assert.ErrorIs(t, err, errorvalues.ErrValidation)
}

func TestPlannerSameRecipeTwice(t *testing.T) {
	ctx := context.Background()
	ps, plans, _ := newPlansFixture(nil)
	date := "2024-01-07"
	shakshuka := entity.Meal{ID: "r1", RecipeID: "r1", Source: entity.MealSourceLibrary, Servings: 1}

	_, err := ps.AddMeal(ctx, userID, date, shakshuka)
	require.NoError(t, err)
	plan, err := ps.AddMeal(ctx, userID, date, shakshuka)
	require.NoError(t, err)
	require.Len(t, plan.Meals, 2)
	first, second := plan.Meals[0].ID, plan.Meals[1].ID
	assert.Equal(t, "r1", first)
	assert.NotEqual(t, first, second)
	assert.Equal(t, "r1", plan.Meals[1].RecipeID)
	assert.Equal(t, "Shakshuka", plan.Meals[1].Name)

	plan, err = ps.ToggleMealCompleted(ctx, userID, date, second)
	require.NoError(t, err)
	assert.Equal(t, []string{second}, plan.CompletedMealIDs)

	plan, err = ps.RemoveMeal(ctx, userID, date, second)
	require.NoError(t, err)
	require.Len(t, plan.Meals, 1)
	assert.Equal(t, first, plan.Meals[0].ID)
	assert.Empty(t, plan.CompletedMealIDs)

	// swapping the remaining meal for a recipe already on the day keeps ids apart
	_, err = ps.AddMeal(ctx, userID, date, entity.Meal{ID: "r2", RecipeID: "r2", Source: entity.MealSourceLibrary})
	require.NoError(t, err)
	plan, err = ps.SwapMeal(ctx, userID, date, first, entity.Meal{ID: "r2", RecipeID: "r2", Source: entity.MealSourceLibrary})
	require.NoError(t, err)
	require.Len(t, plan.Meals, 2)
	assert.NotEqual(t, plan.Meals[0].ID, plan.Meals[1].ID)
	assert.Len(t, plans.plans[date].Meals, 2)
}

func TestPlansRepositoryErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	plansRepo := mocks.NewMockDayPlansRepositoryI(ctrl)
	legacyRepo := mocks.NewMockLegacyPlansRepositoryI(ctrl)
	recipesRepo := mocks.NewMockRecipesRepositoryI(ctrl)
	ps := service.NewPlansService(plansRepo, legacyRepo, service.NewNormalizer(recipesRepo))
	ctx := context.Background()

	testCases := []struct {
		Desc         string
		MockPrepFunc func()
	}{
		{
			Desc: "plan store fails",
			MockPrepFunc: func() {
				plansRepo.EXPECT().Get(gomock.Any(), userID, "2024-01-01").Return(nil, errors.New("db error"))
			},
		},
		{
			Desc: "legacy store fails",
			MockPrepFunc: func() {
				plansRepo.EXPECT().Get(gomock.Any(), userID, "2024-01-01").Return(nil, nil)
				legacyRepo.EXPECT().Get(gomock.Any(), userID).Return(nil, errors.New("db error"))
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			_, err := ps.GetDayPlan(ctx, userID, "2024-01-01")
			assert.Error(t, err)
		})
	}

	t.Run("save failure", func(t *testing.T) {
		plansRepo.EXPECT().Save(gomock.Any(), userID, gomock.Any()).Return(errors.New("db error"))
		err := ps.SaveDayPlan(ctx, userID, &entity.DayPlan{Date: "2024-01-01"})
		assert.Error(t, err)
	})
}
