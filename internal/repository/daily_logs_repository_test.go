package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errorvalues "github.com/limbo/fast800/internal/error_values"
	"github.com/limbo/fast800/internal/repository"
	"github.com/limbo/fast800/pkg/entity"
)

var dailyLogFields = []string{"log_date", "items", "workouts", "water_intake", "max_fasting_hours"}

func TestGetDailyLog(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewDailyLogsRepo(mock)
	ctx := context.Background()
	query := regexp.QuoteMeta(`FROM daily_logs WHERE user_id = $1 AND log_date = $2;`)
	t.Run("found", func(t *testing.T) {
		hours := 15.5
		items := []byte(`[{"id":"i1","name":"Soup","calories":250,"timestamp":"2024-01-10T12:00:00Z"}]`)
		mock.ExpectQuery(query).WithArgs(userID, "2024-01-10").
			WillReturnRows(pgxmock.NewRows(dailyLogFields).AddRow("2024-01-10", items, []byte(`[]`), 1500.0, &hours))
		dl, err := repo.Get(ctx, userID, "2024-01-10")
		require.NoError(t, err)
		require.Len(t, dl.Items, 1)
		assert.Equal(t, 250.0, dl.Items[0].Calories)
		assert.Empty(t, dl.Workouts)
		assert.Equal(t, 1500.0, dl.WaterIntake)
		require.NotNil(t, dl.MaxFastingHours)
		assert.Equal(t, 15.5, *dl.MaxFastingHours)
	})
	t.Run("absent", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(userID, "2024-01-11").WillReturnError(pgx.ErrNoRows)
		dl, err := repo.Get(ctx, userID, "2024-01-11")
		assert.NoError(t, err)
		assert.Nil(t, dl)
	})
}

func TestSaveDailyLog(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewDailyLogsRepo(mock)
	ctx := context.Background()
	dl := entity.DailyLog{Date: "2024-01-10", WaterIntake: 250}
	query := regexp.QuoteMeta(`INSERT INTO daily_logs (user_id, log_date, items, workouts, water_intake, max_fasting_hours)`)
	t.Run("saved", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(userID, dl.Date, pgxmock.AnyArg(), pgxmock.AnyArg(), dl.WaterIntake, dl.MaxFastingHours).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		assert.NoError(t, repo.Save(ctx, userID, &dl))
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(userID, dl.Date, pgxmock.AnyArg(), pgxmock.AnyArg(), dl.WaterIntake, dl.MaxFastingHours).
			WillReturnError(errors.New("db error"))
		assert.Error(t, repo.Save(ctx, userID, &dl))
	})
}

func TestListLogDates(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewDailyLogsRepo(mock)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT log_date FROM daily_logs WHERE user_id = $1 ORDER BY log_date;`)).
		WithArgs(userID).
		WillReturnRows(pgxmock.NewRows([]string{"log_date"}).AddRow("2024-01-01").AddRow("2024-01-03"))
	dates, err := repo.ListDates(context.Background(), userID)
	assert.NoError(t, err)
	assert.Equal(t, []string{"2024-01-01", "2024-01-03"}, dates)
}

func TestCreateSummary(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewSummariesRepo(mock)
	ctx := context.Background()
	s := entity.DailySummary{Date: "2024-01-10", CaloriesConsumed: 800, CaloriesBurned: 200, NetCalories: 600, WorkoutCount: 1}
	query := regexp.QuoteMeta(`INSERT INTO daily_summaries (user_id, summary_date,`)
	args := []any{userID, s.Date, s.CaloriesConsumed, s.CaloriesBurned, s.NetCalories, s.WorkoutCount, s.WaterIntake, s.MaxFastingHours}
	testCases := []struct {
		Desc  string
		Err   error
		Error error
	}{
		{Desc: "created"},
		{Desc: "duplicate date", Err: &pgconn.PgError{Code: "23505"}, Error: errorvalues.ErrSummaryExists},
		{Desc: "unknown user", Err: &pgconn.PgError{Code: "23503"}, Error: errorvalues.ErrUserNotFound},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			exp := mock.ExpectExec(query).WithArgs(args...)
			if tc.Err != nil {
				exp.WillReturnError(tc.Err)
			} else {
				exp.WillReturnResult(pgxmock.NewResult("INSERT", 1))
			}
			err := repo.Create(ctx, userID, &s)
			if tc.Error != nil {
				assert.ErrorIs(t, err, tc.Error)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSummaryQueries(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewSummariesRepo(mock)
	ctx := context.Background()
	fields := []string{"summary_date", "calories_consumed", "calories_burned", "net_calories", "workout_count", "water_intake", "max_fasting_hours"}
	t.Run("exists", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT EXISTS`)).WithArgs(userID, "2024-01-10").
			WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))
		ok, err := repo.Exists(ctx, userID, "2024-01-10")
		assert.NoError(t, err)
		assert.True(t, ok)
	})
	t.Run("range", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`FROM daily_summaries`)).WithArgs(userID, "2024-01-01", "2024-01-31").
			WillReturnRows(pgxmock.NewRows(fields).
				AddRow("2024-01-02", 700.0, 0.0, 700.0, 0, 1000.0, 16.0).
				AddRow("2024-01-03", 900.0, 300.0, 600.0, 1, 2000.0, 0.0))
		got, err := repo.GetRange(ctx, userID, "2024-01-01", "2024-01-31")
		assert.NoError(t, err)
		assert.Len(t, got, 2)
		assert.Equal(t, 600.0, got[1].NetCalories)
	})
	t.Run("all with db error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`FROM daily_summaries`)).WithArgs(userID).WillReturnError(errors.New("db error"))
		_, err := repo.GetAll(ctx, userID)
		assert.Error(t, err)
	})
}
