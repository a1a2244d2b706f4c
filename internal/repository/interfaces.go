package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/limbo/fast800/pkg/entity"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/repository_mocks.go -package=mocks

type UsersRepositoryI interface {
	// Creates new user in database and returns its generated id
	Create(ctx context.Context, user *entity.User) (uuid.UUID, error)
	// Looks up user by name. Can be used for login
	FindByName(ctx context.Context, name string) (*entity.User, error)
	// Looks up user by uid. Can be used for authorization middleware
	FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error)
	// Deletes user together with everything the user owns
	Delete(ctx context.Context, uid uuid.UUID) error
}

type RecipesRepositoryI interface {
	// Inserts recipe or updates every mutable field of an existing one (id is immutable)
	Save(ctx context.Context, recipe *entity.Recipe) error
	// Searches recipe of user uid with given id
	GetByID(ctx context.Context, uid uuid.UUID, id string) (*entity.Recipe, error)
	// Lists the whole recipe library of user uid ordered by name
	GetAllByUser(ctx context.Context, uid uuid.UUID) ([]*entity.Recipe, error)
	// Deletes recipe with id
	Delete(ctx context.Context, uid uuid.UUID, id string) error
}

type DayPlansRepositoryI interface {
	// Returns stored plan for the date or nil when there is none
	Get(ctx context.Context, uid uuid.UUID, date string) (*entity.StoredDayPlan, error)
	// Inserts or replaces plan for plan.Date
	Save(ctx context.Context, uid uuid.UUID, plan *entity.StoredDayPlan) error
	// Lists stored plans with date in [from, to]
	GetRange(ctx context.Context, uid uuid.UUID, from, to string) ([]*entity.StoredDayPlan, error)
}

type LegacyPlansRepositoryI interface {
	// Returns the unmigrated whole-history plan record keyed by date, nil when absent
	Get(ctx context.Context, uid uuid.UUID) (map[string]entity.DayPlan, error)
	// Drops the legacy record
	Delete(ctx context.Context, uid uuid.UUID) error
}

type DailyLogsRepositoryI interface {
	// Returns itemized log for the date or nil when there is none
	Get(ctx context.Context, uid uuid.UUID, date string) (*entity.DailyLog, error)
	// Inserts or replaces log for log.Date
	Save(ctx context.Context, uid uuid.UUID, log *entity.DailyLog) error
	// Deletes itemized log for the date
	Delete(ctx context.Context, uid uuid.UUID, date string) error
	// Lists itemized logs with date in [from, to]
	GetRange(ctx context.Context, uid uuid.UUID, from, to string) ([]*entity.DailyLog, error)
	// Lists dates of every itemized log, ascending
	ListDates(ctx context.Context, uid uuid.UUID) ([]string, error)
}

type SummariesRepositoryI interface {
	// Inspects if summary for the date exists
	Exists(ctx context.Context, uid uuid.UUID, date string) (bool, error)
	// Creates summary. Fails with ErrSummaryExists on duplicate date
	Create(ctx context.Context, uid uuid.UUID, summary *entity.DailySummary) error
	// Lists summaries with date in [from, to], ascending
	GetRange(ctx context.Context, uid uuid.UUID, from, to string) ([]entity.DailySummary, error)
	// Lists every summary, ascending
	GetAll(ctx context.Context, uid uuid.UUID) ([]entity.DailySummary, error)
}

type StatsRepositoryI interface {
	// Returns stats document or nil when user never saved any
	Get(ctx context.Context, uid uuid.UUID) (*entity.UserStats, error)
	// Replaces the whole stats document
	Save(ctx context.Context, uid uuid.UUID, stats *entity.UserStats) error
}

type FastingRepositoryI interface {
	// Returns live fasting state or nil when never saved
	GetState(ctx context.Context, uid uuid.UUID) (*entity.FastingState, error)
	// Replaces live fasting state
	SaveState(ctx context.Context, uid uuid.UUID, state *entity.FastingState) error
	// Appends completed fast to history
	AddEntry(ctx context.Context, uid uuid.UUID, entry *entity.FastingEntry) error
	// Lists completed fasts ordered by end time
	GetHistory(ctx context.Context, uid uuid.UUID) ([]entity.FastingEntry, error)
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
}

func (pgcfg *PGCfg) ConnString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
}
