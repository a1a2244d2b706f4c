package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/limbo/fast800/internal/repository"
	"github.com/limbo/fast800/pkg/entity"
)

func TestStatsRepository(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewStatsRepo(mock)
	ctx := context.Background()
	selectQuery := regexp.QuoteMeta(`SELECT data FROM user_stats WHERE user_id = $1;`)
	t.Run("missing fields take defaults", func(t *testing.T) {
		mock.ExpectQuery(selectQuery).WithArgs(userID).
			WillReturnRows(pgxmock.NewRows([]string{"data"}).AddRow([]byte(`{"current_weight":85.5}`)))
		stats, err := repo.Get(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, 85.5, stats.CurrentWeight)
		assert.Equal(t, 800.0, stats.DailyCalorieGoal)
		assert.NotNil(t, stats.WeightHistory)
	})
	t.Run("absent", func(t *testing.T) {
		mock.ExpectQuery(selectQuery).WithArgs(userID).WillReturnError(pgx.ErrNoRows)
		stats, err := repo.Get(ctx, userID)
		assert.NoError(t, err)
		assert.Nil(t, stats)
	})
	t.Run("save", func(t *testing.T) {
		stats := entity.DefaultUserStats()
		mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO user_stats (user_id, data) VALUES ($1, $2)`)).
			WithArgs(userID, pgxmock.AnyArg()).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		assert.NoError(t, repo.Save(ctx, userID, &stats))
	})
}

func TestFastingRepository(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewFastingRepo(mock)
	ctx := context.Background()
	ate := time.Date(2024, 1, 10, 20, 0, 0, 0, time.UTC)
	t.Run("state found", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`FROM fasting_states WHERE user_id = $1;`)).WithArgs(userID).
			WillReturnRows(pgxmock.NewRows([]string{"last_ate_time", "protocol", "target_fast_hours"}).AddRow(&ate, "18:6", 18.0))
		state, err := repo.GetState(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, entity.Protocol18x6, state.Config.Protocol)
		assert.Equal(t, ate, *state.LastAteTime)
	})
	t.Run("state absent", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`FROM fasting_states WHERE user_id = $1;`)).WithArgs(userID).WillReturnError(pgx.ErrNoRows)
		state, err := repo.GetState(ctx, userID)
		assert.NoError(t, err)
		assert.Nil(t, state)
	})
	t.Run("save state", func(t *testing.T) {
		state := entity.DefaultFastingState()
		state.LastAteTime = &ate
		mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO fasting_states`)).
			WithArgs(userID, state.LastAteTime, "16:8", 16.0).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		assert.NoError(t, repo.SaveState(ctx, userID, &state))
	})
	t.Run("add entry", func(t *testing.T) {
		entry := entity.FastingEntry{ID: uuid.New(), StartTime: ate, EndTime: ate.Add(17 * time.Hour), DurationHours: 17, IsSuccess: true}
		mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO fasting_entries`)).
			WithArgs(entry.ID, userID, entry.StartTime, entry.EndTime, entry.DurationHours, entry.IsSuccess).
			WillReturnError(errors.New("db error"))
		assert.Error(t, repo.AddEntry(ctx, userID, &entry))
	})
	t.Run("history", func(t *testing.T) {
		id := uuid.New()
		mock.ExpectQuery(regexp.QuoteMeta(`FROM fasting_entries WHERE user_id = $1 ORDER BY end_time;`)).WithArgs(userID).
			WillReturnRows(pgxmock.NewRows([]string{"id", "start_time", "end_time", "duration_hours", "is_success"}).
				AddRow(id, ate, ate.Add(12*time.Hour), 12.0, false))
		history, err := repo.GetHistory(ctx, userID)
		require.NoError(t, err)
		require.Len(t, history, 1)
		assert.Equal(t, id, history[0].ID)
		assert.False(t, history[0].IsSuccess)
	})
}
