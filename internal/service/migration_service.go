package service

import (
	"context"
	"errors"
	"log"
	"sort"

	"github.com/google/uuid"

	errorvalues "github.com/limbo/fast800/internal/error_values"
	"github.com/limbo/fast800/internal/repository"
	"github.com/limbo/fast800/pkg/assets"
)

type MigrationService struct {
	recipes repository.RecipesRepositoryI
	plans   repository.DayPlansRepositoryI
	legacy  repository.LegacyPlansRepositoryI
	images  ImageStore
	archive *ArchiveService
	clock   Clock
}

func NewMigrationService(recipesRepo repository.RecipesRepositoryI, plansRepo repository.DayPlansRepositoryI,
	legacyRepo repository.LegacyPlansRepositoryI, images ImageStore, archive *ArchiveService, clock Clock) *MigrationService {
	if recipesRepo == nil {
		log.Fatal("provided nil recipesRepo")
	}
	if plansRepo == nil {
		log.Fatal("provided nil plansRepo")
	}
	if legacyRepo == nil {
		log.Fatal("provided nil legacyRepo")
	}
	if archive == nil {
		log.Fatal("provided nil archive service")
	}
	return &MigrationService{
		recipes: recipesRepo,
		plans:   plansRepo,
		legacy:  legacyRepo,
		images:  images,
		archive: archive,
		clock:   clock,
	}
}

// MigrateInlineImages uploads every recipe image stored inline and keeps only the returned url.
func (ms *MigrationService) MigrateInlineImages(ctx context.Context, uid uuid.UUID) (BatchResult, error) {
	result := BatchResult{Errors: []BatchItemError{}}
	if uid == uuid.Nil {
		return result, errorvalues.ErrNotAuthenticated
	}
	recipes, err := ms.recipes.GetAllByUser(ctx, uid)
	if err != nil {
		return result, errors.New("repository error: " + err.Error())
	}
	for _, r := range recipes {
		if !assets.IsInline(r.Image) {
			result.Skipped++
			continue
		}
		if ms.images == nil {
			result.fail(r.ID, errors.New("image storage is not configured"))
			continue
		}
		data, contentType, err := assets.DecodeInline(r.Image)
		if err != nil {
			result.fail(r.ID, err)
			continue
		}
		url, err := ms.images.Upload(ctx, uid, r.ID, data, contentType)
		if err != nil {
			result.fail(r.ID, err)
			continue
		}
		r.Image = url
		r.UpdatedAt = ms.clock.now()
		if err = ms.recipes.Save(ctx, r); err != nil {
			result.fail(r.ID, err)
			continue
		}
		result.Migrated++
	}
	return result, nil
}

// MigrateDayPlansToNormalized copies every legacy day into the per-day store. Days already stored there are left alone.
func (ms *MigrationService) MigrateDayPlansToNormalized(ctx context.Context, uid uuid.UUID) (BatchResult, error) {
	result := BatchResult{Errors: []BatchItemError{}}
	if uid == uuid.Nil {
		return result, errorvalues.ErrNotAuthenticated
	}
	legacy, err := ms.legacy.Get(ctx, uid)
	if err != nil {
		return result, errors.New("repository error: " + err.Error())
	}
	if len(legacy) == 0 {
		return result, nil
	}
	lib, err := ms.library(ctx, uid)
	if err != nil {
		return result, err
	}
	dates := make([]string, 0, len(legacy))
	for date := range legacy {
		dates = append(dates, date)
	}
	sort.Strings(dates)
	for _, date := range dates {
		existing, err := ms.plans.Get(ctx, uid, date)
		if err != nil {
			result.fail(date, err)
			continue
		}
		if existing != nil {
			result.Skipped++
			continue
		}
		plan := legacy[date]
		plan.Date = date
		plan.Meals = TagUntagged(lib, plan.Meals)
		sp := DehydratePlan(&plan)
		sp.CompletedMealIDs = completedSubset(sp)
		if err = ms.plans.Save(ctx, uid, sp); err != nil {
			result.fail(date, err)
			continue
		}
		result.Migrated++
	}
	return result, nil
}

func (ms *MigrationService) library(ctx context.Context, uid uuid.UUID) (Library, error) {
	recipes, err := ms.recipes.GetAllByUser(ctx, uid)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	lib := make(Library, len(recipes))
	for _, r := range recipes {
		lib[r.ID] = r
	}
	return lib, nil
}

// CleanupLegacyData drops the legacy plan record, refusing while any of its days is missing from the per-day store.
func (ms *MigrationService) CleanupLegacyData(ctx context.Context, uid uuid.UUID) error {
	if uid == uuid.Nil {
		return errorvalues.ErrNotAuthenticated
	}
	legacy, err := ms.legacy.Get(ctx, uid)
	if err != nil {
		return errors.New("repository error: " + err.Error())
	}
	if legacy == nil {
		return nil
	}
	for date := range legacy {
		sp, err := ms.plans.Get(ctx, uid, date)
		if err != nil {
			return errors.New("repository error: " + err.Error())
		}
		if sp == nil {
			return errors.Join(errorvalues.ErrLegacyNotMoved, errors.New("missing "+date))
		}
	}
	if err = ms.legacy.Delete(ctx, uid); err != nil && !errors.Is(err, errorvalues.ErrNoLegacyPlan) {
		return errors.New("repository error: " + err.Error())
	}
	return nil
}

type MigrationReport struct {
	Images        BatchResult `json:"images"`
	Logs          BatchResult `json:"logs"`
	Plans         BatchResult `json:"plans"`
	LegacyRemoved bool        `json:"legacy_removed"`
}

// RunAll migrates images, then logs, then plans, and cleans up the legacy record once plans moved without errors.
func (ms *MigrationService) RunAll(ctx context.Context, uid uuid.UUID) (*MigrationReport, error) {
	var (
		report MigrationReport
		err    error
	)
	if report.Images, err = ms.MigrateInlineImages(ctx, uid); err != nil {
		return nil, err
	}
	if report.Logs, err = ms.archive.MigrateAllLogsToSummaries(ctx, uid); err != nil {
		return nil, err
	}
	if report.Plans, err = ms.MigrateDayPlansToNormalized(ctx, uid); err != nil {
		return nil, err
	}
	if len(report.Plans.Errors) > 0 {
		return &report, nil
	}
	if err = ms.CleanupLegacyData(ctx, uid); err != nil {
		return &report, err
	}
	report.LegacyRemoved = true
	return &report, nil
}
