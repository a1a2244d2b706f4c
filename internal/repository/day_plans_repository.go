package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/limbo/fast800/pkg/entity"
)

type DayPlansRepository struct {
	conn PgConnection
}

func NewDayPlansRepo(conn PgConnection) *DayPlansRepository {
	mustPing(conn, "dayPlansRepo")
	return &DayPlansRepository{
		conn: conn,
	}
}

func (dr *DayPlansRepository) Get(ctx context.Context, uid uuid.UUID, date string) (*entity.StoredDayPlan, error) {
	row := dr.conn.QueryRow(ctx, `SELECT plan_date, meals, completed_meal_ids, tips, day_type FROM day_plans WHERE user_id = $1 AND plan_date = $2;`, uid, date)
	plan, err := scanDayPlan(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.New("getting day plan error: " + err.Error())
	}
	return plan, nil
}

func (dr *DayPlansRepository) Save(ctx context.Context, uid uuid.UUID, plan *entity.StoredDayPlan) error {
	if plan == nil {
		return errors.New("plan is nil")
	}
	meals, err := encodePlannedMeals(plan.Meals)
	if err != nil {
		return errors.New("encoding meals error: " + err.Error())
	}
	completed, err := encodeStrings(plan.CompletedMealIDs)
	if err != nil {
		return errors.New("encoding completed meals error: " + err.Error())
	}
	_, err = dr.conn.Exec(ctx, `INSERT INTO day_plans (user_id, plan_date, meals, completed_meal_ids, tips, day_type)
	VALUES ($1, $2, $3, $4, $5, $6)
	ON CONFLICT (user_id, plan_date) DO UPDATE SET meals = EXCLUDED.meals, completed_meal_ids = EXCLUDED.completed_meal_ids,
	tips = EXCLUDED.tips, day_type = EXCLUDED.day_type;`,
		uid, plan.Date, meals, completed, plan.Tips, string(plan.Type))
	if err != nil {
		return errors.New("saving day plan error: " + err.Error())
	}
	return nil
}

func (dr *DayPlansRepository) GetRange(ctx context.Context, uid uuid.UUID, from, to string) ([]*entity.StoredDayPlan, error) {
	rows, err := dr.conn.Query(ctx, `SELECT plan_date, meals, completed_meal_ids, tips, day_type FROM day_plans
	WHERE user_id = $1 AND plan_date >= $2 AND plan_date <= $3 ORDER BY plan_date;`, uid, from, to)
	if err != nil {
		return nil, errors.New("listing day plans error: " + err.Error())
	}
	defer rows.Close()
	plans := make([]*entity.StoredDayPlan, 0)
	for rows.Next() {
		plan, err := scanDayPlan(rows)
		if err != nil {
			return nil, errors.New("scanning day plan error: " + err.Error())
		}
		plans = append(plans, plan)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("listing day plans error: " + err.Error())
	}
	return plans, nil
}

func scanDayPlan(row pgx.Row) (*entity.StoredDayPlan, error) {
	var (
		plan            entity.StoredDayPlan
		meals, complete []byte
		dayType         string
	)
	if err := row.Scan(&plan.Date, &meals, &complete, &plan.Tips, &dayType); err != nil {
		return nil, err
	}
	var err error
	if plan.Meals, err = decodePlannedMeals(meals); err != nil {
		return nil, err
	}
	if plan.CompletedMealIDs, err = decodeStrings(complete); err != nil {
		return nil, err
	}
	plan.Type = entity.DayType(dayType)
	return &plan, nil
}
