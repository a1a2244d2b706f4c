package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/limbo/fast800/internal/service"
	"github.com/limbo/fast800/pkg/entity"
)

func logWith(calories, water float64, maxFast *float64) *entity.DailyLog {
	return &entity.DailyLog{
		Date:            "2024-01-02",
		Items:           []entity.FoodLogItem{{ID: "f", Name: "food", Calories: calories}},
		Workouts:        []entity.WorkoutItem{},
		WaterIntake:     water,
		MaxFastingHours: maxFast,
	}
}

func TestCalculateDailyProgress(t *testing.T) {
	goals := service.ProgressGoals{Calories: 800, Water: 2000, FastingHours: 16}
	ateAt := fixedNow.Add(-10 * time.Hour)
	running := &entity.FastingState{LastAteTime: &ateAt}

	testCases := []struct {
		Desc            string
		Log             *entity.DailyLog
		Fasting         *entity.FastingState
		ExpectedStatus  entity.CalorieStatus
		ExpectedWater   bool
		ExpectedFasting bool
		ExpectedPerfect bool
	}{
		{
			Desc:            "under the ceiling with everything met",
			Log:             logWith(750, 2000, ptr(17.0)),
			ExpectedStatus:  entity.CalorieStatusPerfect,
			ExpectedWater:   true,
			ExpectedFasting: true,
			ExpectedPerfect: true,
		},
		{
			Desc:            "over the ceiling",
			Log:             logWith(850, 2500, ptr(17.0)),
			ExpectedStatus:  entity.CalorieStatusOver,
			ExpectedWater:   true,
			ExpectedFasting: true,
		},
		{
			Desc:            "exactly at the ceiling",
			Log:             logWith(800, 2000, ptr(16.0)),
			ExpectedStatus:  entity.CalorieStatusPerfect,
			ExpectedWater:   true,
			ExpectedFasting: true,
			ExpectedPerfect: true,
		},
		{
			Desc:            "calories alone don't make a perfect day",
			Log:             logWith(750, 1000, nil),
			ExpectedStatus:  entity.CalorieStatusPerfect,
			ExpectedWater:   false,
			ExpectedFasting: false,
		},
		{
			Desc:            "running fast shorter than target",
			Log:             logWith(500, 2000, nil),
			Fasting:         running,
			ExpectedStatus:  entity.CalorieStatusPerfect,
			ExpectedWater:   true,
			ExpectedFasting: false,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			p := service.CalculateDailyProgress(tc.Log, tc.Fasting, goals, fixedNow)
			assert.Equal(t, tc.ExpectedStatus, p.Calories.Status)
			assert.Equal(t, tc.ExpectedWater, p.Water.IsMet)
			assert.Equal(t, tc.ExpectedFasting, p.Fasting.IsMet)
			assert.Equal(t, tc.ExpectedPerfect, p.IsPerfectDay)
		})
	}

	t.Run("longer of running and completed fast", func(t *testing.T) {
		p := service.CalculateDailyProgress(logWith(0, 0, ptr(8.0)), running, goals, fixedNow)
		assert.InDelta(t, 10, p.Fasting.Hours, 1e-9)
	})
	t.Run("zero goals use defaults", func(t *testing.T) {
		p := service.CalculateDailyProgress(logWith(0, 0, nil), nil, service.ProgressGoals{}, fixedNow)
		assert.Equal(t, 800.0, p.Calories.Target)
		assert.Equal(t, 2000.0, p.Water.Target)
		assert.Equal(t, 16.0, p.Fasting.Target)
	})
}

func perfectProgress() entity.DailyProgress {
	return entity.DailyProgress{
		Calories:     entity.CalorieProgress{Status: entity.CalorieStatusPerfect},
		Water:        entity.WaterProgress{IsMet: true},
		Fasting:      entity.FastingProgress{IsMet: true},
		IsPerfectDay: true,
	}
}

func TestUpdateStreak(t *testing.T) {
	today, yesterday := "2024-01-10", "2024-01-09"

	t.Run("continues from yesterday", func(t *testing.T) {
		s := entity.Streaks{CurrentStreak: 4, BestStreak: 4, LastLogDate: yesterday, PerfectDaysCount: 4}
		got := service.UpdateStreak(s, perfectProgress(), today, yesterday)
		assert.Equal(t, 5, got.CurrentStreak)
		assert.Equal(t, 5, got.BestStreak)
		assert.Equal(t, today, got.LastLogDate)
		assert.Equal(t, 5, got.PerfectDaysCount)
		assert.Equal(t, 1, got.Water.Current)
	})
	t.Run("gap restarts current and keeps best", func(t *testing.T) {
		s := entity.Streaks{CurrentStreak: 5, BestStreak: 9, LastLogDate: "2024-01-07", PerfectDaysCount: 20}
		got := service.UpdateStreak(s, perfectProgress(), today, yesterday)
		assert.Equal(t, 1, got.CurrentStreak)
		assert.Equal(t, 9, got.BestStreak)
		assert.Equal(t, 21, got.PerfectDaysCount)
	})
	t.Run("same day twice is idempotent", func(t *testing.T) {
		s := entity.Streaks{CurrentStreak: 2, BestStreak: 3, LastLogDate: yesterday, PerfectDaysCount: 2}
		once := service.UpdateStreak(s, perfectProgress(), today, yesterday)
		twice := service.UpdateStreak(once, perfectProgress(), today, yesterday)
		assert.Equal(t, once, twice)
		assert.Equal(t, 3, twice.CurrentStreak)
		assert.Equal(t, 3, twice.PerfectDaysCount)
	})
	t.Run("credited day that stops qualifying is taken back", func(t *testing.T) {
		s := entity.Streaks{CurrentStreak: 2, BestStreak: 3, LastLogDate: yesterday, PerfectDaysCount: 2}
		credited := service.UpdateStreak(s, perfectProgress(), today, yesterday)
		over := perfectProgress()
		over.Calories.Status = entity.CalorieStatusOver
		over.IsPerfectDay = false
		reverted := service.UpdateStreak(credited, over, today, yesterday)
		assert.Equal(t, 2, reverted.CurrentStreak)
		assert.Equal(t, yesterday, reverted.LastLogDate)
		assert.Equal(t, 3, reverted.BestStreak)
		assert.Equal(t, 2, reverted.PerfectDaysCount)
		assert.Equal(t, 0, reverted.Calories.Current)
		assert.Equal(t, "", reverted.Calories.LastLogDate)
		assert.Equal(t, 1, reverted.Water.Current)
		// reverting again changes nothing
		assert.Equal(t, reverted, service.UpdateStreak(reverted, over, today, yesterday))
	})
	t.Run("failure without credit leaves streak alone", func(t *testing.T) {
		s := entity.Streaks{CurrentStreak: 2, BestStreak: 3, LastLogDate: yesterday}
		got := service.UpdateStreak(s, entity.DailyProgress{Calories: entity.CalorieProgress{Status: entity.CalorieStatusOver}}, today, yesterday)
		assert.Equal(t, 2, got.CurrentStreak)
		assert.Equal(t, yesterday, got.LastLogDate)
	})
}

func newAchievementFixture(stats *entity.UserStats) (*service.AchievementService, *memLogs, *memStats, *memPlans) {
	logs := newMemLogs()
	statsRepo := &memStats{stats: stats}
	plans := newMemPlans()
	fasting := &memFasting{}
	return service.NewAchievementService(logs, fasting, statsRepo, plans, fixedClock()), logs, statsRepo, plans
}

func TestEvaluateToday(t *testing.T) {
	ctx := context.Background()
	stats := entity.DefaultUserStats()
	stats.Streaks = entity.Streaks{CurrentStreak: 1, BestStreak: 1, LastLogDate: "2024-01-01", PerfectDaysCount: 1}
	as, logs, statsRepo, _ := newAchievementFixture(&stats)
	logs.logs["2024-01-02"] = logWith(700, 2100, ptr(16.5))

	got, err := as.EvaluateToday(ctx, userID)
	require.NoError(t, err)
	assert.True(t, got.Progress.IsPerfectDay)
	assert.Equal(t, 2, got.Streaks.CurrentStreak)
	assert.Equal(t, 1, statsRepo.saveCalls)
	assert.Equal(t, 2, statsRepo.stats.Streaks.PerfectDaysCount)

	// unchanged streaks aren't written again
	_, err = as.EvaluateToday(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 1, statsRepo.saveCalls)
}

func TestEvaluateTodayFiveTwo(t *testing.T) {
	ctx := context.Background()
	stats := entity.DefaultUserStats()
	stats.DietMode = entity.DietModeFiveTwo
	stats.NonFastDayCalories = 2000
	as, logs, _, plans := newAchievementFixture(&stats)
	logs.logs["2024-01-02"] = logWith(1500, 0, nil)

	got, err := as.EvaluateToday(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, entity.CalorieStatusOver, got.Progress.Calories.Status)

	plans.plans["2024-01-02"] = &entity.StoredDayPlan{Date: "2024-01-02", Type: entity.DayTypeNonFast}
	got, err = as.EvaluateToday(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 2000.0, got.Progress.Calories.Target)
	assert.Equal(t, entity.CalorieStatusPerfect, got.Progress.Calories.Status)
}

func TestEvaluateTodayWithNothingStored(t *testing.T) {
	as, _, statsRepo, _ := newAchievementFixture(nil)
	got, err := as.EvaluateToday(context.Background(), userID)
	require.NoError(t, err)
	assert.False(t, got.Progress.IsPerfectDay)
	// a day with no food is under the ceiling
	assert.Equal(t, 1, got.Streaks.Calories.Current)
	assert.Equal(t, 1, statsRepo.saveCalls)
}
