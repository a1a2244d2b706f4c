package service

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"sort"

	"github.com/google/uuid"

	errorvalues "github.com/limbo/fast800/internal/error_values"
	"github.com/limbo/fast800/internal/repository"
	"github.com/limbo/fast800/pkg/datekey"
	"github.com/limbo/fast800/pkg/entity"
)

type ArchiveResult string

const (
	Archived         ArchiveResult = "archived"
	AlreadyArchived  ArchiveResult = "already_archived"
	NothingToArchive ArchiveResult = "nothing_to_archive"
)

// Bounds used when every stored record of a user is wanted.
const (
	firstDate = "0001-01-01"
	lastDate  = "9999-12-31"
)

type BatchItemError struct {
	Key string `json:"key"`
	Err string `json:"error"`
}

// BatchResult reports a resumable batch job. Failed items don't stop the batch.
type BatchResult struct {
	Migrated int              `json:"migrated"`
	Skipped  int              `json:"skipped"`
	Errors   []BatchItemError `json:"errors"`
}

func (br *BatchResult) fail(key string, err error) {
	slog.Warn("batch item failed", slog.String("key", key), slog.String("error", err.Error()))
	br.Errors = append(br.Errors, BatchItemError{Key: key, Err: err.Error()})
}

type ArchiveService struct {
	logs      repository.DailyLogsRepositoryI
	summaries repository.SummariesRepositoryI
	clock     Clock
}

func NewArchiveService(logsRepo repository.DailyLogsRepositoryI, summariesRepo repository.SummariesRepositoryI, clock Clock) *ArchiveService {
	if logsRepo == nil {
		log.Fatal("provided nil logsRepo")
	}
	if summariesRepo == nil {
		log.Fatal("provided nil summariesRepo")
	}
	return &ArchiveService{
		logs:      logsRepo,
		summaries: summariesRepo,
		clock:     clock,
	}
}

// Summarize collapses an itemized log into its daily totals.
func Summarize(dl *entity.DailyLog) entity.DailySummary {
	s := entity.DailySummary{
		Date:         dl.Date,
		WorkoutCount: len(dl.Workouts),
		WaterIntake:  dl.WaterIntake,
	}
	for _, item := range dl.Items {
		s.CaloriesConsumed += item.Calories
	}
	for _, w := range dl.Workouts {
		s.CaloriesBurned += w.CaloriesBurned
	}
	s.NetCalories = s.CaloriesConsumed - s.CaloriesBurned
	if dl.MaxFastingHours != nil {
		s.MaxFastingHours = *dl.MaxFastingHours
	}
	return s
}

// ArchiveYesterdaysLog replaces yesterday's itemized log with its summary.
// The log is deleted only after the summary is durably written. A log left behind by a failed delete
// is removed by the next run, which then reports AlreadyArchived.
func (as *ArchiveService) ArchiveYesterdaysLog(ctx context.Context, uid uuid.UUID) (ArchiveResult, error) {
	if uid == uuid.Nil {
		return "", errorvalues.ErrNotAuthenticated
	}
	return as.archiveDate(ctx, uid, as.clock.Yesterday())
}

func (as *ArchiveService) archiveDate(ctx context.Context, uid uuid.UUID, date string) (ArchiveResult, error) {
	exists, err := as.summaries.Exists(ctx, uid, date)
	if err != nil {
		return "", errors.New("repository error: " + err.Error())
	}
	if exists {
		return as.dropArchivedLog(ctx, uid, date)
	}
	dl, err := as.logs.Get(ctx, uid, date)
	if err != nil {
		return "", errors.New("repository error: " + err.Error())
	}
	if dl == nil || dl.IsEmpty() {
		return NothingToArchive, nil
	}
	summary := Summarize(dl)
	summary.Date = date
	if err = as.summaries.Create(ctx, uid, &summary); err != nil {
		if errors.Is(err, errorvalues.ErrSummaryExists) {
			if err = as.logs.Delete(ctx, uid, date); err != nil {
				return "", errors.New("deleting archived log failed: " + err.Error())
			}
			return AlreadyArchived, nil
		}
		return "", errors.New("repository error: " + err.Error())
	}
	if err = as.logs.Delete(ctx, uid, date); err != nil {
		return "", errors.New("summary saved but deleting log failed: " + err.Error())
	}
	return Archived, nil
}

// dropArchivedLog deletes the itemized log still stored next to an existing summary.
func (as *ArchiveService) dropArchivedLog(ctx context.Context, uid uuid.UUID, date string) (ArchiveResult, error) {
	dl, err := as.logs.Get(ctx, uid, date)
	if err != nil {
		return "", errors.New("repository error: " + err.Error())
	}
	if dl == nil {
		return AlreadyArchived, nil
	}
	if err = as.logs.Delete(ctx, uid, date); err != nil {
		return "", errors.New("deleting archived log failed: " + err.Error())
	}
	return AlreadyArchived, nil
}

// MigrateAllLogsToSummaries archives every itemized log before today. Safe to rerun after a partial failure.
func (as *ArchiveService) MigrateAllLogsToSummaries(ctx context.Context, uid uuid.UUID) (BatchResult, error) {
	result := BatchResult{Errors: []BatchItemError{}}
	if uid == uuid.Nil {
		return result, errorvalues.ErrNotAuthenticated
	}
	dates, err := as.logs.ListDates(ctx, uid)
	if err != nil {
		return result, errors.New("repository error: " + err.Error())
	}
	today := as.clock.Today()
	for _, date := range dates {
		if date >= today {
			continue
		}
		if err = ctx.Err(); err != nil {
			return result, err
		}
		res, err := as.archiveDate(ctx, uid, date)
		if err != nil {
			result.fail(date, err)
			continue
		}
		if res == Archived {
			result.Migrated++
		} else {
			result.Skipped++
		}
	}
	return result, nil
}

// GetDailySummaries returns the summaries of the last daysBack days, today being the last of them.
func (as *ArchiveService) GetDailySummaries(ctx context.Context, uid uuid.UUID, daysBack int) ([]entity.DailySummary, error) {
	if uid == uuid.Nil {
		return nil, errorvalues.ErrNotAuthenticated
	}
	if daysBack <= 0 {
		return nil, errors.Join(errorvalues.ErrValidation, errors.New("days back must be positive"))
	}
	today := as.clock.Today()
	return as.summariesBetween(ctx, uid, datekey.AddDays(today, -(daysBack-1)), today)
}

func (as *ArchiveService) GetAllDailySummaries(ctx context.Context, uid uuid.UUID) ([]entity.DailySummary, error) {
	if uid == uuid.Nil {
		return nil, errorvalues.ErrNotAuthenticated
	}
	return as.summariesBetween(ctx, uid, firstDate, lastDate)
}

// summariesBetween merges stored summaries with summaries computed from logs not yet archived. Stored ones win.
func (as *ArchiveService) summariesBetween(ctx context.Context, uid uuid.UUID, from, to string) ([]entity.DailySummary, error) {
	stored, err := as.summaries.GetRange(ctx, uid, from, to)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	logs, err := as.logs.GetRange(ctx, uid, from, to)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	return MergeSummaries(stored, logs), nil
}

// MergeSummaries joins stored summaries with on-the-fly ones, one per date, ascending.
func MergeSummaries(stored []entity.DailySummary, logs []*entity.DailyLog) []entity.DailySummary {
	byDate := make(map[string]entity.DailySummary, len(stored)+len(logs))
	for _, dl := range logs {
		if dl == nil || dl.IsEmpty() {
			continue
		}
		byDate[dl.Date] = Summarize(dl)
	}
	for _, s := range stored {
		byDate[s.Date] = s
	}
	out := make([]entity.DailySummary, 0, len(byDate))
	for _, s := range byDate {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Date < out[j].Date
	})
	return out
}
