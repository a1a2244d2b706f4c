package repository

import (
	"context"
	"errors"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/limbo/fast800/pkg/entity"
)

// StatsRepository keeps the whole stats document of a user as a single jsonb value.
type StatsRepository struct {
	conn PgConnection
}

func NewStatsRepo(conn PgConnection) *StatsRepository {
	mustPing(conn, "statsRepo")
	return &StatsRepository{
		conn: conn,
	}
}

func (sr *StatsRepository) Get(ctx context.Context, uid uuid.UUID) (*entity.UserStats, error) {
	var data []byte
	row := sr.conn.QueryRow(ctx, `SELECT data FROM user_stats WHERE user_id = $1;`, uid)
	if err := row.Scan(&data); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.New("getting stats error: " + err.Error())
	}
	stats := entity.DefaultUserStats()
	if err := sonic.Unmarshal(data, &stats); err != nil {
		return nil, errors.New("decoding stats error: " + err.Error())
	}
	if stats.WeightHistory == nil {
		stats.WeightHistory = []entity.WeightEntry{}
	}
	return &stats, nil
}

func (sr *StatsRepository) Save(ctx context.Context, uid uuid.UUID, stats *entity.UserStats) error {
	if stats == nil {
		return errors.New("stats is nil")
	}
	data, err := sonic.Marshal(stats)
	if err != nil {
		return errors.New("encoding stats error: " + err.Error())
	}
	_, err = sr.conn.Exec(ctx, `INSERT INTO user_stats (user_id, data) VALUES ($1, $2)
	ON CONFLICT (user_id) DO UPDATE SET data = EXCLUDED.data;`, uid, data)
	if err != nil {
		return errors.New("saving stats error: " + err.Error())
	}
	return nil
}
