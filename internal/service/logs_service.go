package service

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	errorvalues "github.com/limbo/fast800/internal/error_values"
	"github.com/limbo/fast800/internal/repository"
	"github.com/limbo/fast800/pkg/entity"
)

// MealRecorder is told about every meal eaten today so the running fast can be closed.
type MealRecorder interface {
	RecordMeal(ctx context.Context, uid uuid.UUID, at time.Time) (*entity.FastingEntry, error)
}

type LogsService struct {
	logs   repository.DailyLogsRepositoryI
	meals  MealRecorder
	parser RecipeParser
	clock  Clock
}

func NewLogsService(logsRepo repository.DailyLogsRepositoryI, meals MealRecorder, parser RecipeParser, clock Clock) *LogsService {
	if logsRepo == nil {
		log.Fatal("provided nil logsRepo")
	}
	return &LogsService{
		logs:   logsRepo,
		meals:  meals,
		parser: parser,
		clock:  clock,
	}
}

func (ls *LogsService) GetDailyLog(ctx context.Context, uid uuid.UUID, date string) (*entity.DailyLog, error) {
	if err := checkUserAndDate(uid, date); err != nil {
		return nil, err
	}
	dl, err := ls.logs.Get(ctx, uid, date)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	if dl == nil {
		return emptyLog(date), nil
	}
	if dl.Items == nil {
		dl.Items = []entity.FoodLogItem{}
	}
	if dl.Workouts == nil {
		dl.Workouts = []entity.WorkoutItem{}
	}
	return dl, nil
}

func (ls *LogsService) SaveDailyLog(ctx context.Context, uid uuid.UUID, dl *entity.DailyLog) error {
	if dl == nil {
		return errors.New("log is nil")
	}
	if err := checkUserAndDate(uid, dl.Date); err != nil {
		return err
	}
	if dl.WaterIntake < 0 {
		dl.WaterIntake = 0
	}
	if err := ls.logs.Save(ctx, uid, dl); err != nil {
		return errors.New("repository error: " + err.Error())
	}
	return nil
}

func (ls *LogsService) AddFoodItem(ctx context.Context, uid uuid.UUID, date string, req FoodItemRequest) (*entity.DailyLog, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	return ls.addFood(ctx, uid, date, []FoodItemRequest{req})
}

// addFood closes today's fast before appending, so the log it reloads already carries the updated fasting hours.
func (ls *LogsService) addFood(ctx context.Context, uid uuid.UUID, date string, items []FoodItemRequest) (*entity.DailyLog, error) {
	if err := checkUserAndDate(uid, date); err != nil {
		return nil, err
	}
	now := ls.clock.now()
	if ls.meals != nil && date == ls.clock.Today() {
		if _, err := ls.meals.RecordMeal(ctx, uid, now); err != nil {
			return nil, errors.New("recording meal error: " + err.Error())
		}
	}
	return ls.update(ctx, uid, date, func(dl *entity.DailyLog) error {
		for _, req := range items {
			ts := now
			if n := len(dl.Items); n > 0 && dl.Items[n-1].Timestamp.After(ts) {
				ts = dl.Items[n-1].Timestamp
			}
			dl.Items = append(dl.Items, entity.FoodLogItem{
				ID:        uuid.NewString(),
				Name:      strings.TrimSpace(req.Name),
				Calories:  req.Calories,
				Timestamp: ts,
			})
		}
		return nil
	})
}

func (ls *LogsService) RemoveFoodItem(ctx context.Context, uid uuid.UUID, date, itemID string) (*entity.DailyLog, error) {
	return ls.update(ctx, uid, date, func(dl *entity.DailyLog) error {
		for i, item := range dl.Items {
			if item.ID == itemID {
				dl.Items = append(dl.Items[:i], dl.Items[i+1:]...)
				return nil
			}
		}
		return errorvalues.ErrLogItemMissing
	})
}

func (ls *LogsService) AddWorkout(ctx context.Context, uid uuid.UUID, date string, req WorkoutRequest) (*entity.DailyLog, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	now := ls.clock.now()
	return ls.update(ctx, uid, date, func(dl *entity.DailyLog) error {
		ts := now
		if n := len(dl.Workouts); n > 0 && dl.Workouts[n-1].Timestamp.After(ts) {
			ts = dl.Workouts[n-1].Timestamp
		}
		dl.Workouts = append(dl.Workouts, entity.WorkoutItem{
			ID:             uuid.NewString(),
			Type:           strings.TrimSpace(req.Type),
			CaloriesBurned: req.CaloriesBurned,
			Timestamp:      ts,
		})
		return nil
	})
}

func (ls *LogsService) RemoveWorkout(ctx context.Context, uid uuid.UUID, date, workoutID string) (*entity.DailyLog, error) {
	return ls.update(ctx, uid, date, func(dl *entity.DailyLog) error {
		for i, w := range dl.Workouts {
			if w.ID == workoutID {
				dl.Workouts = append(dl.Workouts[:i], dl.Workouts[i+1:]...)
				return nil
			}
		}
		return errorvalues.ErrLogItemMissing
	})
}

// AddWater adds ml to the day's intake. Negative amounts undo, never below zero.
func (ls *LogsService) AddWater(ctx context.Context, uid uuid.UUID, date string, ml float64) (*entity.DailyLog, error) {
	return ls.update(ctx, uid, date, func(dl *entity.DailyLog) error {
		dl.WaterIntake += ml
		if dl.WaterIntake < 0 {
			dl.WaterIntake = 0
		}
		return nil
	})
}

// AnalyzeFoodText estimates the foods described in text and logs them for today.
func (ls *LogsService) AnalyzeFoodText(ctx context.Context, uid uuid.UUID, text string) (*entity.DailyLog, error) {
	if uid == uuid.Nil {
		return nil, errorvalues.ErrNotAuthenticated
	}
	if strings.TrimSpace(text) == "" {
		return nil, errors.Join(errorvalues.ErrValidation, errors.New("empty food description"))
	}
	if ls.parser == nil {
		return nil, errors.Join(errorvalues.ErrUpstream, errors.New("food analysis is not configured"))
	}
	estimates, err := ls.parser.AnalyzeFoodLog(ctx, text)
	if err != nil {
		return nil, errors.Join(errorvalues.ErrUpstream, err)
	}
	items := make([]FoodItemRequest, 0, len(estimates))
	for _, e := range estimates {
		if strings.TrimSpace(e.Name) == "" || e.Calories < 0 {
			continue
		}
		items = append(items, FoodItemRequest{Name: e.Name, Calories: e.Calories})
	}
	if len(items) == 0 {
		return nil, errors.Join(errorvalues.ErrUpstream, errorvalues.ErrMalformedParseResult)
	}
	return ls.addFood(ctx, uid, ls.clock.Today(), items)
}

func (ls *LogsService) update(ctx context.Context, uid uuid.UUID, date string, change func(dl *entity.DailyLog) error) (*entity.DailyLog, error) {
	dl, err := ls.GetDailyLog(ctx, uid, date)
	if err != nil {
		return nil, err
	}
	if err = change(dl); err != nil {
		return nil, err
	}
	if err = ls.logs.Save(ctx, uid, dl); err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	return dl, nil
}
