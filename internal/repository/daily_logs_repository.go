package repository

import (
	"context"
	"errors"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/limbo/fast800/pkg/entity"
)

type DailyLogsRepository struct {
	conn PgConnection
}

func NewDailyLogsRepo(conn PgConnection) *DailyLogsRepository {
	mustPing(conn, "dailyLogsRepo")
	return &DailyLogsRepository{
		conn: conn,
	}
}

func (lr *DailyLogsRepository) Get(ctx context.Context, uid uuid.UUID, date string) (*entity.DailyLog, error) {
	row := lr.conn.QueryRow(ctx, `SELECT log_date, items, workouts, water_intake, max_fasting_hours FROM daily_logs WHERE user_id = $1 AND log_date = $2;`, uid, date)
	dl, err := scanDailyLog(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.New("getting daily log error: " + err.Error())
	}
	return dl, nil
}

func (lr *DailyLogsRepository) Save(ctx context.Context, uid uuid.UUID, dl *entity.DailyLog) error {
	if dl == nil {
		return errors.New("daily log is nil")
	}
	items := dl.Items
	if items == nil {
		items = []entity.FoodLogItem{}
	}
	workouts := dl.Workouts
	if workouts == nil {
		workouts = []entity.WorkoutItem{}
	}
	itemsJS, err := sonic.Marshal(items)
	if err != nil {
		return errors.New("encoding log items error: " + err.Error())
	}
	workoutsJS, err := sonic.Marshal(workouts)
	if err != nil {
		return errors.New("encoding workouts error: " + err.Error())
	}
	_, err = lr.conn.Exec(ctx, `INSERT INTO daily_logs (user_id, log_date, items, workouts, water_intake, max_fasting_hours)
	VALUES ($1, $2, $3, $4, $5, $6)
	ON CONFLICT (user_id, log_date) DO UPDATE SET items = EXCLUDED.items, workouts = EXCLUDED.workouts,
	water_intake = EXCLUDED.water_intake, max_fasting_hours = EXCLUDED.max_fasting_hours;`,
		uid, dl.Date, itemsJS, workoutsJS, dl.WaterIntake, dl.MaxFastingHours)
	if err != nil {
		return errors.New("saving daily log error: " + err.Error())
	}
	return nil
}

func (lr *DailyLogsRepository) Delete(ctx context.Context, uid uuid.UUID, date string) error {
	_, err := lr.conn.Exec(ctx, `DELETE FROM daily_logs WHERE user_id = $1 AND log_date = $2;`, uid, date)
	if err != nil {
		return errors.New("deleting daily log error: " + err.Error())
	}
	return nil
}

func (lr *DailyLogsRepository) GetRange(ctx context.Context, uid uuid.UUID, from, to string) ([]*entity.DailyLog, error) {
	rows, err := lr.conn.Query(ctx, `SELECT log_date, items, workouts, water_intake, max_fasting_hours FROM daily_logs
	WHERE user_id = $1 AND log_date >= $2 AND log_date <= $3 ORDER BY log_date;`, uid, from, to)
	if err != nil {
		return nil, errors.New("listing daily logs error: " + err.Error())
	}
	defer rows.Close()
	logs := make([]*entity.DailyLog, 0)
	for rows.Next() {
		dl, err := scanDailyLog(rows)
		if err != nil {
			return nil, errors.New("scanning daily log error: " + err.Error())
		}
		logs = append(logs, dl)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("listing daily logs error: " + err.Error())
	}
	return logs, nil
}

func (lr *DailyLogsRepository) ListDates(ctx context.Context, uid uuid.UUID) ([]string, error) {
	rows, err := lr.conn.Query(ctx, `SELECT log_date FROM daily_logs WHERE user_id = $1 ORDER BY log_date;`, uid)
	if err != nil {
		return nil, errors.New("listing log dates error: " + err.Error())
	}
	defer rows.Close()
	dates := make([]string, 0)
	for rows.Next() {
		var d string
		if err := rows.Scan(&d); err != nil {
			return nil, errors.New("scanning log date error: " + err.Error())
		}
		dates = append(dates, d)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("listing log dates error: " + err.Error())
	}
	return dates, nil
}

func scanDailyLog(row pgx.Row) (*entity.DailyLog, error) {
	var (
		dl                 entity.DailyLog
		items, workoutsJS []byte
	)
	if err := row.Scan(&dl.Date, &items, &workoutsJS, &dl.WaterIntake, &dl.MaxFastingHours); err != nil {
		return nil, err
	}
	dl.Items = []entity.FoodLogItem{}
	dl.Workouts = []entity.WorkoutItem{}
	if len(items) > 0 {
		if err := sonic.Unmarshal(items, &dl.Items); err != nil {
			return nil, err
		}
	}
	if len(workoutsJS) > 0 {
		if err := sonic.Unmarshal(workoutsJS, &dl.Workouts); err != nil {
			return nil, err
		}
	}
	return &dl, nil
}
