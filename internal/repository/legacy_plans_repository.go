package repository

import (
	"context"
	"errors"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	errorvalues "github.com/limbo/fast800/internal/error_values"
	"github.com/limbo/fast800/pkg/entity"
)

// LegacyPlansRepository reads the old single-record plan layout where one row held every day of a user.
type LegacyPlansRepository struct {
	conn PgConnection
}

func NewLegacyPlansRepo(conn PgConnection) *LegacyPlansRepository {
	mustPing(conn, "legacyPlansRepo")
	return &LegacyPlansRepository{
		conn: conn,
	}
}

func (lr *LegacyPlansRepository) Get(ctx context.Context, uid uuid.UUID) (map[string]entity.DayPlan, error) {
	var data []byte
	row := lr.conn.QueryRow(ctx, `SELECT data FROM legacy_plans WHERE user_id = $1;`, uid)
	if err := row.Scan(&data); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.New("getting legacy plans error: " + err.Error())
	}
	plans := make(map[string]entity.DayPlan)
	if len(data) == 0 {
		return plans, nil
	}
	if err := sonic.Unmarshal(data, &plans); err != nil {
		return nil, errors.New("decoding legacy plans error: " + err.Error())
	}
	return plans, nil
}

func (lr *LegacyPlansRepository) Delete(ctx context.Context, uid uuid.UUID) error {
	ct, err := lr.conn.Exec(ctx, `DELETE FROM legacy_plans WHERE user_id = $1;`, uid)
	if err != nil {
		return errors.New("deleting legacy plans error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrNoLegacyPlan
	}
	return nil
}
