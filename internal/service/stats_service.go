package service

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"

	errorvalues "github.com/limbo/fast800/internal/error_values"
	"github.com/limbo/fast800/internal/repository"
	"github.com/limbo/fast800/pkg/datekey"
	"github.com/limbo/fast800/pkg/entity"
)

type StatsService struct {
	repo repository.StatsRepositoryI
}

func NewStatsService(statsRepo repository.StatsRepositoryI) *StatsService {
	if statsRepo == nil {
		log.Fatal("provided nil statsRepo")
	}
	return &StatsService{
		repo: statsRepo,
	}
}

func (ss *StatsService) GetUserStats(ctx context.Context, uid uuid.UUID) (*entity.UserStats, error) {
	if uid == uuid.Nil {
		return nil, errorvalues.ErrNotAuthenticated
	}
	stats, err := ss.repo.Get(ctx, uid)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	if stats == nil {
		def := entity.DefaultUserStats()
		return &def, nil
	}
	return stats, nil
}

// UpdateGoals replaces the user-editable goal fields and keeps history and streaks.
func (ss *StatsService) UpdateGoals(ctx context.Context, uid uuid.UUID, req GoalsRequest) (*entity.UserStats, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	stats, err := ss.GetUserStats(ctx, uid)
	if err != nil {
		return nil, err
	}
	stats.Name = req.Name
	stats.StartWeight = req.StartWeight
	stats.GoalWeight = req.GoalWeight
	stats.DailyCalorieGoal = req.DailyCalorieGoal
	stats.DailyWaterGoal = req.DailyWaterGoal
	stats.NonFastDayCalories = req.NonFastDayCalories
	stats.DailyWorkoutCalorieGoal = req.DailyWorkoutCalorieGoal
	stats.DailyWorkoutCountGoal = req.DailyWorkoutCountGoal
	if req.DietMode != "" {
		stats.DietMode = req.DietMode
	}
	if len(stats.WeightHistory) == 0 {
		stats.CurrentWeight = req.StartWeight
	}
	if err = ss.repo.Save(ctx, uid, stats); err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	return stats, nil
}

// AddWeightEntry records a weigh-in. A second entry for the same date replaces the first.
func (ss *StatsService) AddWeightEntry(ctx context.Context, uid uuid.UUID, entry entity.WeightEntry) (*entity.UserStats, error) {
	if !datekey.Valid(entry.Date) {
		return nil, errorvalues.ErrInvalidDate
	}
	if entry.Weight <= 0 {
		return nil, errors.Join(errorvalues.ErrValidation, errors.New("weight must be positive"))
	}
	stats, err := ss.GetUserStats(ctx, uid)
	if err != nil {
		return nil, err
	}
	replaced := false
	for i := range stats.WeightHistory {
		if stats.WeightHistory[i].Date == entry.Date {
			stats.WeightHistory[i].Weight = entry.Weight
			replaced = true
		}
	}
	if !replaced {
		stats.WeightHistory = append(stats.WeightHistory, entry)
	}
	stats.WeightHistory = sortedHistory(stats.WeightHistory)
	first, last := stats.WeightHistory[0], stats.WeightHistory[len(stats.WeightHistory)-1]
	if len(stats.WeightHistory) == 1 {
		stats.StartWeight = first.Weight
	}
	stats.CurrentWeight = last.Weight
	if err = ss.repo.Save(ctx, uid, stats); err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	return stats, nil
}
