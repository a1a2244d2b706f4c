package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"

	"github.com/google/uuid"

	errorvalues "github.com/limbo/fast800/internal/error_values"
	"github.com/limbo/fast800/internal/repository"
	"github.com/limbo/fast800/pkg/datekey"
	"github.com/limbo/fast800/pkg/entity"
)

type PlansService struct {
	plans      repository.DayPlansRepositoryI
	legacy     repository.LegacyPlansRepositoryI
	normalizer *Normalizer
}

func NewPlansService(plansRepo repository.DayPlansRepositoryI, legacyRepo repository.LegacyPlansRepositoryI, normalizer *Normalizer) *PlansService {
	if plansRepo == nil {
		log.Fatal("provided nil plansRepo")
	}
	if legacyRepo == nil {
		log.Fatal("provided nil legacyRepo")
	}
	if normalizer == nil {
		log.Fatal("provided nil normalizer")
	}
	return &PlansService{
		plans:      plansRepo,
		legacy:     legacyRepo,
		normalizer: normalizer,
	}
}

func defaultDayPlan(date string) *entity.DayPlan {
	return &entity.DayPlan{
		Date:             date,
		Meals:            []entity.Meal{},
		CompletedMealIDs: []string{},
		Type:             entity.DayTypeFast,
	}
}

func checkUserAndDate(uid uuid.UUID, date string) error {
	if uid == uuid.Nil {
		return errorvalues.ErrNotAuthenticated
	}
	if !datekey.Valid(date) {
		return errorvalues.ErrInvalidDate
	}
	return nil
}

func (ps *PlansService) GetDayPlan(ctx context.Context, uid uuid.UUID, date string) (*entity.DayPlan, error) {
	if err := checkUserAndDate(uid, date); err != nil {
		return nil, err
	}
	stored, err := ps.plans.Get(ctx, uid, date)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	if stored != nil {
		return ps.hydrateStored(ctx, uid, stored), nil
	}
	legacy, err := ps.legacy.Get(ctx, uid)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	if old, ok := legacy[date]; ok {
		plan := old
		plan.Date = date
		plan.Meals = ps.normalizer.HydrateCached(ctx, uid, old.Meals)
		normalizePlanFields(&plan)
		return &plan, nil
	}
	return defaultDayPlan(date), nil
}

func (ps *PlansService) SaveDayPlan(ctx context.Context, uid uuid.UUID, plan *entity.DayPlan) error {
	if plan == nil {
		return errors.New("plan is nil")
	}
	if err := checkUserAndDate(uid, plan.Date); err != nil {
		return err
	}
	return ps.saveStored(ctx, uid, DehydratePlan(plan))
}

// MaxPlanRangeDays bounds how many days one range read may cover.
const MaxPlanRangeDays = 366

// GetDayPlansInRange returns a plan for every date in [start, end]. Per-day plans win over the legacy record,
// and the library is loaded once for the whole range.
func (ps *PlansService) GetDayPlansInRange(ctx context.Context, uid uuid.UUID, start, end string) (map[string]*entity.DayPlan, error) {
	if uid == uuid.Nil {
		return nil, errorvalues.ErrNotAuthenticated
	}
	if !datekey.Valid(start) || !datekey.Valid(end) {
		return nil, errorvalues.ErrInvalidDate
	}
	if span := datekey.DaysBetween(start, end); span < 0 || span >= MaxPlanRangeDays {
		return nil, errors.Join(errorvalues.ErrInvalidRange, fmt.Errorf("range must cover 1 to %d days", MaxPlanRangeDays))
	}
	dates, err := datekey.Range(start, end)
	if err != nil {
		return nil, errorvalues.ErrInvalidDate
	}
	stored, err := ps.plans.GetRange(ctx, uid, start, end)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	byDate := make(map[string]*entity.StoredDayPlan, len(stored))
	for _, p := range stored {
		byDate[p.Date] = p
	}
	var legacy map[string]entity.DayPlan
	if len(byDate) < len(dates) {
		legacy, err = ps.legacy.Get(ctx, uid)
		if err != nil {
			return nil, errors.New("repository error: " + err.Error())
		}
	}
	lib := Library{}
	if rangeNeedsLibrary(dates, byDate, legacy) {
		lib, err = ps.normalizer.Library(ctx, uid)
		if err != nil {
			slog.Warn("loading recipe library for plan range failed", slog.String("error", err.Error()))
			lib = Library{}
		}
	}
	result := make(map[string]*entity.DayPlan, len(dates))
	for _, date := range dates {
		if sp, ok := byDate[date]; ok {
			result[date] = hydratedPlan(sp, HydrateWithLibrary(lib, sp.Meals))
			continue
		}
		if old, ok := legacy[date]; ok {
			plan := old
			plan.Date = date
			plan.Meals = HydrateCachedWithLibrary(lib, old.Meals)
			normalizePlanFields(&plan)
			result[date] = &plan
			continue
		}
		result[date] = defaultDayPlan(date)
	}
	return result, nil
}

func rangeNeedsLibrary(dates []string, stored map[string]*entity.StoredDayPlan, legacy map[string]entity.DayPlan) bool {
	for _, date := range dates {
		if sp, ok := stored[date]; ok {
			for _, m := range sp.Meals {
				if m.Kind() == entity.PlannedMealReference {
					return true
				}
			}
			continue
		}
		for _, m := range legacy[date].Meals {
			if needsResolving(m) {
				return true
			}
		}
	}
	return false
}

func (ps *PlansService) AddMeal(ctx context.Context, uid uuid.UUID, date string, meal entity.Meal) (*entity.DayPlan, error) {
	return ps.mutate(ctx, uid, date, func(sp *entity.StoredDayPlan) error {
		sp.Meals = append(sp.Meals, distinctMeal(sp.Meals, Dehydrate(meal), -1))
		return nil
	})
}

func (ps *PlansService) RemoveMeal(ctx context.Context, uid uuid.UUID, date, mealID string) (*entity.DayPlan, error) {
	return ps.mutate(ctx, uid, date, func(sp *entity.StoredDayPlan) error {
		idx := indexOfMeal(sp.Meals, mealID)
		if idx < 0 {
			return errorvalues.ErrMealNotFound
		}
		sp.Meals = append(sp.Meals[:idx], sp.Meals[idx+1:]...)
		if indexOfMeal(sp.Meals, mealID) < 0 {
			sp.CompletedMealIDs = without(sp.CompletedMealIDs, mealID)
		}
		return nil
	})
}

// SwapMeal replaces a meal in place. The replacement starts uncompleted.
func (ps *PlansService) SwapMeal(ctx context.Context, uid uuid.UUID, date, mealID string, replacement entity.Meal) (*entity.DayPlan, error) {
	return ps.mutate(ctx, uid, date, func(sp *entity.StoredDayPlan) error {
		idx := indexOfMeal(sp.Meals, mealID)
		if idx < 0 {
			return errorvalues.ErrMealNotFound
		}
		sp.Meals[idx] = distinctMeal(sp.Meals, Dehydrate(replacement), idx)
		if indexOfMeal(sp.Meals, mealID) < 0 {
			sp.CompletedMealIDs = without(sp.CompletedMealIDs, mealID)
		}
		sp.CompletedMealIDs = without(sp.CompletedMealIDs, sp.Meals[idx].MealID())
		return nil
	})
}

func (ps *PlansService) ToggleMealCompleted(ctx context.Context, uid uuid.UUID, date, mealID string) (*entity.DayPlan, error) {
	return ps.mutate(ctx, uid, date, func(sp *entity.StoredDayPlan) error {
		if indexOfMeal(sp.Meals, mealID) < 0 {
			return errorvalues.ErrMealNotFound
		}
		if contains(sp.CompletedMealIDs, mealID) {
			sp.CompletedMealIDs = without(sp.CompletedMealIDs, mealID)
		} else {
			sp.CompletedMealIDs = append(sp.CompletedMealIDs, mealID)
		}
		return nil
	})
}

func (ps *PlansService) SetDayType(ctx context.Context, uid uuid.UUID, date string, dayType entity.DayType) (*entity.DayPlan, error) {
	if dayType != entity.DayTypeFast && dayType != entity.DayTypeNonFast {
		return nil, errors.Join(errorvalues.ErrValidation, errors.New("unknown day type: "+string(dayType)))
	}
	return ps.mutate(ctx, uid, date, func(sp *entity.StoredDayPlan) error {
		sp.Type = dayType
		return nil
	})
}

func (ps *PlansService) mutate(ctx context.Context, uid uuid.UUID, date string, change func(sp *entity.StoredDayPlan) error) (*entity.DayPlan, error) {
	if err := checkUserAndDate(uid, date); err != nil {
		return nil, err
	}
	sp, err := ps.loadStored(ctx, uid, date)
	if err != nil {
		return nil, err
	}
	if err = change(sp); err != nil {
		return nil, err
	}
	if err = ps.saveStored(ctx, uid, sp); err != nil {
		return nil, err
	}
	return ps.hydrateStored(ctx, uid, sp), nil
}

// loadStored returns the per-day plan, the legacy day converted to the stored form, or an empty plan.
func (ps *PlansService) loadStored(ctx context.Context, uid uuid.UUID, date string) (*entity.StoredDayPlan, error) {
	sp, err := ps.plans.Get(ctx, uid, date)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	if sp != nil {
		return sp, nil
	}
	legacy, err := ps.legacy.Get(ctx, uid)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	if old, ok := legacy[date]; ok {
		old.Date = date
		return DehydratePlan(&old), nil
	}
	return &entity.StoredDayPlan{
		Date:             date,
		Meals:            []entity.PlannedMeal{},
		CompletedMealIDs: []string{},
		Type:             entity.DayTypeFast,
	}, nil
}

func (ps *PlansService) saveStored(ctx context.Context, uid uuid.UUID, sp *entity.StoredDayPlan) error {
	sp.CompletedMealIDs = completedSubset(sp)
	if sp.Type == "" {
		sp.Type = entity.DayTypeFast
	}
	if err := ps.plans.Save(ctx, uid, sp); err != nil {
		return errors.New("repository error: " + err.Error())
	}
	return nil
}

func (ps *PlansService) hydrateStored(ctx context.Context, uid uuid.UUID, sp *entity.StoredDayPlan) *entity.DayPlan {
	return hydratedPlan(sp, ps.normalizer.Hydrate(ctx, uid, sp.Meals))
}

// DehydratePlan converts a full plan to its stored form. Completion marks follow the meals they belong to.
func DehydratePlan(plan *entity.DayPlan) *entity.StoredDayPlan {
	sp := &entity.StoredDayPlan{
		Date:             plan.Date,
		Meals:            make([]entity.PlannedMeal, 0, len(plan.Meals)),
		CompletedMealIDs: []string{},
		Tips:             plan.Tips,
		Type:             plan.Type,
	}
	for _, m := range plan.Meals {
		pm := distinctMeal(sp.Meals, Dehydrate(m), -1)
		sp.Meals = append(sp.Meals, pm)
		if (contains(plan.CompletedMealIDs, m.ID) || contains(plan.CompletedMealIDs, pm.MealID())) &&
			!contains(sp.CompletedMealIDs, pm.MealID()) {
			sp.CompletedMealIDs = append(sp.CompletedMealIDs, pm.MealID())
		}
	}
	if sp.Type == "" {
		sp.Type = entity.DayTypeFast
	}
	return sp
}

func hydratedPlan(sp *entity.StoredDayPlan, meals []entity.Meal) *entity.DayPlan {
	plan := &entity.DayPlan{
		Date:             sp.Date,
		Meals:            meals,
		CompletedMealIDs: nonNil(sp.CompletedMealIDs),
		Tips:             sp.Tips,
		Type:             sp.Type,
	}
	normalizePlanFields(plan)
	return plan
}

func normalizePlanFields(plan *entity.DayPlan) {
	if plan.Meals == nil {
		plan.Meals = []entity.Meal{}
	}
	plan.CompletedMealIDs = nonNil(plan.CompletedMealIDs)
	if plan.Type == "" {
		plan.Type = entity.DayTypeFast
	}
}

func completedSubset(sp *entity.StoredDayPlan) []string {
	out := make([]string, 0, len(sp.CompletedMealIDs))
	for _, id := range sp.CompletedMealIDs {
		if indexOfMeal(sp.Meals, id) >= 0 && !contains(out, id) {
			out = append(out, id)
		}
	}
	return out
}

// distinctMeal gives pm a fresh id when another meal of the plan, other than the one at skip, already uses its id.
// Planning the same recipe twice therefore yields two meals with their own completion marks.
func distinctMeal(meals []entity.PlannedMeal, pm entity.PlannedMeal, skip int) entity.PlannedMeal {
	taken := false
	for i, m := range meals {
		if i != skip && m.MealID() == pm.MealID() {
			taken = true
			break
		}
	}
	if !taken {
		return pm
	}
	switch v := pm.(type) {
	case entity.MealReference:
		v.InstanceID = uuid.NewString()
		return v
	case entity.CustomMeal:
		v.ID = uuid.NewString()
		return v
	}
	return pm
}

func indexOfMeal(meals []entity.PlannedMeal, id string) int {
	for i, m := range meals {
		if m.MealID() == id {
			return i
		}
	}
	return -1
}

func contains(values []string, v string) bool {
	for _, x := range values {
		if x == v {
			return true
		}
	}
	return false
}

func without(values []string, v string) []string {
	out := make([]string, 0, len(values))
	for _, x := range values {
		if x != v {
			out = append(out, x)
		}
	}
	return out
}
