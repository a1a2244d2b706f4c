package service_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errorvalues "github.com/limbo/fast800/internal/error_values"
	"github.com/limbo/fast800/internal/service"
	"github.com/limbo/fast800/pkg/entity"
)

func TestBuildAnalyticsSeries(t *testing.T) {
	weights := []entity.WeightEntry{
		{Date: "2024-01-01", Weight: 80},
		{Date: "2024-01-03", Weight: 79.5},
	}
	fasts := []entity.FastingEntry{
		// started on the 1st, ended on the 2nd
		{StartTime: time.Date(2024, 1, 1, 20, 0, 0, 0, time.UTC), EndTime: time.Date(2024, 1, 2, 12, 0, 0, 0, time.UTC), DurationHours: 16},
		{StartTime: time.Date(2024, 1, 2, 14, 0, 0, 0, time.UTC), EndTime: time.Date(2024, 1, 2, 16, 0, 0, 0, time.UTC), DurationHours: 2},
	}
	summaries := []entity.DailySummary{
		{Date: "2024-01-03", CaloriesConsumed: 700, CaloriesBurned: 150},
	}
	series := service.BuildAnalyticsSeries(weights, fasts, summaries, time.UTC)
	require.Len(t, series, 3)

	assert.Equal(t, "2024-01-01", series[0].Date)
	assert.Equal(t, 80.0, *series[0].Weight)
	assert.Nil(t, series[0].FastingHours)
	assert.Nil(t, series[0].Calories)

	assert.Equal(t, "2024-01-02", series[1].Date)
	assert.Nil(t, series[1].Weight)
	assert.Equal(t, 18.0, *series[1].FastingHours)

	assert.Equal(t, 79.5, *series[2].Weight)
	assert.Equal(t, 700.0, *series[2].Calories)
	assert.Equal(t, 150.0, *series[2].CaloriesBurned)
}

func TestCalculateConsistency(t *testing.T) {
	point := func(date string, consumed, burned float64) service.AnalyticsPoint {
		return service.AnalyticsPoint{Date: date, Calories: &consumed, CaloriesBurned: &burned}
	}
	series := []service.AnalyticsPoint{
		point("2024-01-01", 750, 0),
		point("2024-01-02", 900, 200),
		point("2024-01-03", 900, 0),
		point("2024-01-04", 0, 0),
		{Date: "2024-01-05", Weight: ptr(80.0)},
	}
	c := service.CalculateConsistency(series, 800)
	assert.Equal(t, service.Consistency{Score: 67, DaysTracked: 3, DaysOnTarget: 2}, c)

	assert.Equal(t, service.Consistency{}, service.CalculateConsistency(nil, 800))

	t.Run("only the last thirty entries count", func(t *testing.T) {
		long := make([]service.AnalyticsPoint, 0, 40)
		for i := 0; i < 10; i++ {
			long = append(long, point(fmt.Sprintf("2023-11-%02d", i+1), 2000, 0))
		}
		for i := 0; i < 30; i++ {
			long = append(long, point("2023-12-01", 500, 0))
		}
		assert.Equal(t, 100, service.CalculateConsistency(long, 800).Score)
	})
}

func TestBuildPeriodReport(t *testing.T) {
	summaries := []entity.DailySummary{
		{Date: "2023-12-20", CaloriesConsumed: 3000, NetCalories: 3000},
		// one day before a 7-day week ending 2024-01-02
		{Date: "2023-12-26", CaloriesConsumed: 5000, NetCalories: 5000},
		{Date: "2023-12-27", CaloriesConsumed: 700, CaloriesBurned: 100, NetCalories: 600, WorkoutCount: 1},
		{Date: "2024-01-01", CaloriesConsumed: 1000, NetCalories: 1000},
		{Date: "2024-01-02", CaloriesConsumed: 600, CaloriesBurned: 50, NetCalories: 550, WorkoutCount: 2},
	}
	weights := []entity.WeightEntry{
		{Date: "2023-12-01", Weight: 85},
		{Date: "2023-12-28", Weight: 82},
		{Date: "2024-01-02", Weight: 81},
	}
	r, err := service.BuildPeriodReport(summaries, weights, service.PeriodWeek, "2024-01-02", 800)
	require.NoError(t, err)
	assert.Equal(t, "2023-12-27", r.StartDate)
	assert.Equal(t, 3, r.DaysLogged)
	assert.InDelta(t, 766.67, r.AvgCalories, 0.01)
	assert.InDelta(t, 716.67, r.AvgNetCalories, 0.01)
	assert.Equal(t, 3, r.TotalWorkouts)
	assert.Equal(t, 150.0, r.CaloriesBurned)
	assert.InDelta(t, 66.67, r.ComplianceRate, 0.01)
	require.NotNil(t, r.WeightChange)
	assert.Equal(t, -1.0, *r.WeightChange)

	r, err = service.BuildPeriodReport(nil, weights[:1], service.PeriodMonth, "2024-01-02", 800)
	require.NoError(t, err)
	assert.Equal(t, "2023-12-04", r.StartDate)
	assert.Equal(t, 0, r.DaysLogged)
	assert.Nil(t, r.WeightChange)

	_, err = service.BuildPeriodReport(nil, nil, "year", "2024-01-02", 800)
	assert.ErrorIs(t, err, errorvalues.ErrValidation)
}

func TestAnalyticsService(t *testing.T) {
	ctx := context.Background()
	stats := entity.DefaultUserStats()
	stats.CurrentWeight = 76
	stats.GoalWeight = 70
	stats.WeightHistory = []entity.WeightEntry{
		{Date: "2023-12-13", Weight: 80},
		{Date: "2023-12-23", Weight: 78},
		{Date: "2024-01-02", Weight: 76},
	}
	statsRepo := &memStats{stats: &stats}
	fasting := &memFasting{history: []entity.FastingEntry{
		{EndTime: time.Date(2024, 1, 2, 8, 0, 0, 0, time.UTC), DurationHours: 16},
	}}
	logs := newMemLogs(entity.DailyLog{Date: "2024-01-02", Items: []entity.FoodLogItem{{ID: "f", Name: "Soup", Calories: 600}}})
	summaries := newMemSummaries(entity.DailySummary{Date: "2024-01-01", CaloriesConsumed: 900, NetCalories: 900})
	archive := service.NewArchiveService(logs, summaries, fixedClock())
	as := service.NewAnalyticsService(statsRepo, fasting, archive, fixedClock())

	t.Run("series", func(t *testing.T) {
		series, err := as.GetAnalyticsData(ctx, userID)
		require.NoError(t, err)
		require.Len(t, series, 4)
		assert.Equal(t, 16.0, *series[3].FastingHours)
		assert.Equal(t, 600.0, *series[3].Calories)
	})
	t.Run("projection", func(t *testing.T) {
		p, err := as.GetGoalProjection(ctx, userID)
		require.NoError(t, err)
		require.NotNil(t, p)
		assert.Equal(t, 30, p.DaysRemaining)
		assert.Equal(t, "2024-02-01", p.ProjectedDate)
	})
	t.Run("weight trend", func(t *testing.T) {
		report, err := as.GetWeightTrend(ctx, userID)
		require.NoError(t, err)
		assert.Len(t, report.Points, 4)
		assert.Equal(t, service.TrendLosing, report.Analysis.Trend)
		assert.NotNil(t, report.Projection)
	})
	t.Run("consistency", func(t *testing.T) {
		c, err := as.GetConsistency(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, 2, c.DaysTracked)
		assert.Equal(t, 1, c.DaysOnTarget)
		assert.Equal(t, 50, c.Score)
	})
	t.Run("period", func(t *testing.T) {
		r, err := as.GetPeriodSummary(ctx, userID, service.PeriodWeek)
		require.NoError(t, err)
		assert.Equal(t, 2, r.DaysLogged)
		// a single weigh-in inside the week
		assert.Nil(t, r.WeightChange)

		_, err = as.GetPeriodSummary(ctx, userID, "decade")
		assert.ErrorIs(t, err, errorvalues.ErrValidation)
	})
	t.Run("flat weight has no projection", func(t *testing.T) {
		flat := entity.DefaultUserStats()
		svc := service.NewAnalyticsService(&memStats{stats: &flat}, &memFasting{}, archive, fixedClock())
		p, err := svc.GetGoalProjection(ctx, userID)
		require.NoError(t, err)
		assert.Nil(t, p)
	})
}
