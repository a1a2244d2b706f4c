package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	errorvalues "github.com/limbo/fast800/internal/error_values"
	"github.com/limbo/fast800/pkg/entity"
)

const summaryColumns = `summary_date, calories_consumed, calories_burned, net_calories, workout_count, water_intake, max_fasting_hours`

// SummariesRepository stores the compact per-day records logs are archived into. Rows are never updated.
type SummariesRepository struct {
	conn PgConnection
}

func NewSummariesRepo(conn PgConnection) *SummariesRepository {
	mustPing(conn, "summariesRepo")
	return &SummariesRepository{
		conn: conn,
	}
}

func (sr *SummariesRepository) Exists(ctx context.Context, uid uuid.UUID, date string) (bool, error) {
	var exists bool
	row := sr.conn.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM daily_summaries WHERE user_id = $1 AND summary_date = $2);`, uid, date)
	if err := row.Scan(&exists); err != nil {
		return false, errors.New("checking summary error: " + err.Error())
	}
	return exists, nil
}

func (sr *SummariesRepository) Create(ctx context.Context, uid uuid.UUID, s *entity.DailySummary) error {
	if s == nil {
		return errors.New("summary is nil")
	}
	_, err := sr.conn.Exec(ctx, `INSERT INTO daily_summaries (user_id, `+summaryColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8);`,
		uid, s.Date, s.CaloriesConsumed, s.CaloriesBurned, s.NetCalories, s.WorkoutCount, s.WaterIntake, s.MaxFastingHours)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// Unique violation
			case "23505":
				return errorvalues.ErrSummaryExists
			// Foreign key violation
			case "23503":
				return errorvalues.ErrUserNotFound
			}
		}
		return errors.New("creating summary error: " + err.Error())
	}
	return nil
}

func (sr *SummariesRepository) GetRange(ctx context.Context, uid uuid.UUID, from, to string) ([]entity.DailySummary, error) {
	rows, err := sr.conn.Query(ctx, `SELECT `+summaryColumns+` FROM daily_summaries
	WHERE user_id = $1 AND summary_date >= $2 AND summary_date <= $3 ORDER BY summary_date;`, uid, from, to)
	if err != nil {
		return nil, errors.New("listing summaries error: " + err.Error())
	}
	return collectSummaries(rows)
}

func (sr *SummariesRepository) GetAll(ctx context.Context, uid uuid.UUID) ([]entity.DailySummary, error) {
	rows, err := sr.conn.Query(ctx, `SELECT `+summaryColumns+` FROM daily_summaries WHERE user_id = $1 ORDER BY summary_date;`, uid)
	if err != nil {
		return nil, errors.New("listing summaries error: " + err.Error())
	}
	return collectSummaries(rows)
}

func collectSummaries(rows pgx.Rows) ([]entity.DailySummary, error) {
	defer rows.Close()
	summaries := make([]entity.DailySummary, 0)
	for rows.Next() {
		var s entity.DailySummary
		err := rows.Scan(&s.Date, &s.CaloriesConsumed, &s.CaloriesBurned, &s.NetCalories, &s.WorkoutCount, &s.WaterIntake, &s.MaxFastingHours)
		if err != nil {
			return nil, errors.New("scanning summary error: " + err.Error())
		}
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.New("listing summaries error: " + err.Error())
	}
	return summaries, nil
}
