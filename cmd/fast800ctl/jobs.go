package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/limbo/fast800/internal/repository"
	"github.com/limbo/fast800/internal/service"
	"github.com/limbo/fast800/pkg/assets"
	"github.com/limbo/fast800/pkg/cleanup"
	"github.com/limbo/fast800/pkg/config"
	"github.com/limbo/fast800/pkg/entity"
)

type userLookup interface {
	FindByName(ctx context.Context, name string) (*entity.User, error)
}

// userJob runs for one user and returns a line describing what it did.
type userJob func(ctx context.Context, uid uuid.UUID) (string, error)

type outcome struct {
	User   string
	Detail string
	Err    error
}

type jobEnv struct {
	users     userLookup
	archive   *service.ArchiveService
	migration *service.MigrationService
}

func pgConfig(cfg *config.Config) *repository.PGCfg {
	return &repository.PGCfg{
		Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: cfg.GetString("POSTGRES_USER"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetString("POSTGRES_DB"),
	}
}

func newJobEnv(cfg *config.Config) (*jobEnv, error) {
	pool := repository.Connect(pgConfig(cfg))
	images, err := assets.NewFileStore(cfg.GetStringOr("ASSETS_DIR", "./data/assets"), cfg.GetStringOr("ASSETS_BASE_URL", "/assets"))
	if err != nil {
		return nil, err
	}
	clock := service.SystemClock(cfg.GetLocation("APP_TIMEZONE"))
	logsRepo := repository.NewDailyLogsRepo(pool)
	archive := service.NewArchiveService(logsRepo, repository.NewSummariesRepo(pool), clock)
	return &jobEnv{
		users:   repository.NewUsersRepo(pool),
		archive: archive,
		migration: service.NewMigrationService(repository.NewRecipesRepo(pool), repository.NewDayPlansRepo(pool),
			repository.NewLegacyPlansRepo(pool), images, archive, clock),
	}, nil
}

// runForUsers resolves every name and runs job with at most limit users in flight.
// A failing user never stops the others.
func runForUsers(ctx context.Context, users userLookup, names []string, limit int, job userJob) []outcome {
	outcomes := make([]outcome, len(names))
	var g errgroup.Group
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i, name := range names {
		g.Go(func() error {
			outcomes[i] = outcome{User: name}
			user, err := users.FindByName(ctx, name)
			if err != nil {
				outcomes[i].Err = fmt.Errorf("looking up user: %w", err)
				return nil
			}
			outcomes[i].Detail, outcomes[i].Err = job(ctx, user.ID)
			return nil
		})
	}
	g.Wait()
	return outcomes
}

var errJobsFailed = errors.New("some jobs failed")

func report(w io.Writer, outcomes []outcome) error {
	ok := color.New(color.FgGreen)
	fail := color.New(color.FgRed)
	failed := 0
	for _, o := range outcomes {
		if o.Err != nil {
			failed++
			fail.Fprintf(w, "✗ %s: %v\n", o.User, o.Err)
			continue
		}
		ok.Fprintf(w, "✓ %s", o.User)
		fmt.Fprintf(w, ": %s\n", o.Detail)
	}
	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", errJobsFailed, failed, len(outcomes))
	}
	return nil
}

var (
	onceEnv sync.Once
	env     *jobEnv
	envErr  error
)

func loadEnv() (*jobEnv, error) {
	onceEnv.Do(func() {
		env, envErr = newJobEnv(config.New())
	})
	return env, envErr
}

// execute is shared by every per-user command.
func execute(ctx context.Context, w io.Writer, names []string, limit int, job func(*jobEnv) userJob) error {
	if len(names) == 0 {
		return errors.New("at least one --user is required")
	}
	e, err := loadEnv()
	if err != nil {
		return err
	}
	defer cleanup.CleanUp()
	return report(w, runForUsers(ctx, e.users, names, limit, job(e)))
}
