package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/limbo/fast800/pkg/entity"
)

type FastingRepository struct {
	conn PgConnection
}

func NewFastingRepo(conn PgConnection) *FastingRepository {
	mustPing(conn, "fastingRepo")
	return &FastingRepository{
		conn: conn,
	}
}

func (fr *FastingRepository) GetState(ctx context.Context, uid uuid.UUID) (*entity.FastingState, error) {
	var (
		state    entity.FastingState
		protocol string
	)
	row := fr.conn.QueryRow(ctx, `SELECT last_ate_time, protocol, target_fast_hours FROM fasting_states WHERE user_id = $1;`, uid)
	if err := row.Scan(&state.LastAteTime, &protocol, &state.Config.TargetFastHours); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.New("getting fasting state error: " + err.Error())
	}
	state.Config.Protocol = entity.FastingProtocol(protocol)
	return &state, nil
}

func (fr *FastingRepository) SaveState(ctx context.Context, uid uuid.UUID, state *entity.FastingState) error {
	if state == nil {
		return errors.New("fasting state is nil")
	}
	_, err := fr.conn.Exec(ctx, `INSERT INTO fasting_states (user_id, last_ate_time, protocol, target_fast_hours) VALUES ($1, $2, $3, $4)
	ON CONFLICT (user_id) DO UPDATE SET last_ate_time = EXCLUDED.last_ate_time, protocol = EXCLUDED.protocol, target_fast_hours = EXCLUDED.target_fast_hours;`,
		uid, state.LastAteTime, string(state.Config.Protocol), state.Config.TargetFastHours)
	if err != nil {
		return errors.New("saving fasting state error: " + err.Error())
	}
	return nil
}

func (fr *FastingRepository) AddEntry(ctx context.Context, uid uuid.UUID, entry *entity.FastingEntry) error {
	if entry == nil {
		return errors.New("fasting entry is nil")
	}
	_, err := fr.conn.Exec(ctx, `INSERT INTO fasting_entries (id, user_id, start_time, end_time, duration_hours, is_success) VALUES ($1, $2, $3, $4, $5, $6);`,
		entry.ID, uid, entry.StartTime, entry.EndTime, entry.DurationHours, entry.IsSuccess)
	if err != nil {
		return errors.New("adding fasting entry error: " + err.Error())
	}
	return nil
}

func (fr *FastingRepository) GetHistory(ctx context.Context, uid uuid.UUID) ([]entity.FastingEntry, error) {
	rows, err := fr.conn.Query(ctx, `SELECT id, start_time, end_time, duration_hours, is_success FROM fasting_entries WHERE user_id = $1 ORDER BY end_time;`, uid)
	if err != nil {
		return nil, errors.New("listing fasting history error: " + err.Error())
	}
	defer rows.Close()
	entries := make([]entity.FastingEntry, 0)
	for rows.Next() {
		var e entity.FastingEntry
		if err := rows.Scan(&e.ID, &e.StartTime, &e.EndTime, &e.DurationHours, &e.IsSuccess); err != nil {
			return nil, errors.New("scanning fasting entry error: " + err.Error())
		}
		entries = append(entries, e)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("listing fasting history error: " + err.Error())
	}
	return entries, nil
}
