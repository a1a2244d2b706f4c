package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"

	errorvalues "github.com/limbo/fast800/internal/error_values"
	"github.com/limbo/fast800/internal/repository"
	"github.com/limbo/fast800/pkg/datekey"
	"github.com/limbo/fast800/pkg/entity"
)

const defaultFastingTarget = 16

// ProgressGoals are the targets a day is judged against. Zero values fall back to defaults.
type ProgressGoals struct {
	Calories     float64
	Water        float64
	FastingHours float64
}

func (g ProgressGoals) withDefaults() ProgressGoals {
	def := entity.DefaultUserStats()
	if g.Calories <= 0 {
		g.Calories = def.DailyCalorieGoal
	}
	if g.Water <= 0 {
		g.Water = def.DailyWaterGoal
	}
	if g.FastingHours <= 0 {
		g.FastingHours = defaultFastingTarget
	}
	return g
}

// CalculateDailyProgress judges the day so far. Calories are a ceiling, water is a floor and
// fasting counts the longer of the running fast and the longest fast completed today.
func CalculateDailyProgress(dl *entity.DailyLog, fasting *entity.FastingState, goals ProgressGoals, now time.Time) entity.DailyProgress {
	goals = goals.withDefaults()
	var consumed float64
	for _, item := range dl.Items {
		consumed += item.Calories
	}
	status := entity.CalorieStatusPerfect
	if consumed > goals.Calories {
		status = entity.CalorieStatusOver
	}
	waterMet := dl.WaterIntake >= goals.Water

	var hours float64
	if fasting != nil && fasting.LastAteTime != nil {
		if running := now.Sub(*fasting.LastAteTime).Hours(); running > hours {
			hours = running
		}
	}
	if dl.MaxFastingHours != nil && *dl.MaxFastingHours > hours {
		hours = *dl.MaxFastingHours
	}
	fastingMet := hours >= goals.FastingHours

	return entity.DailyProgress{
		Calories: entity.CalorieProgress{
			Current: consumed,
			Target:  goals.Calories,
			Status:  status,
		},
		Water: entity.WaterProgress{
			Current: dl.WaterIntake,
			Target:  goals.Water,
			IsMet:   waterMet,
		},
		Fasting: entity.FastingProgress{
			Hours:  hours,
			Target: goals.FastingHours,
			IsMet:  fastingMet,
		},
		IsPerfectDay: status != entity.CalorieStatusOver && waterMet && fastingMet,
	}
}

// UpdateStreak applies today's progress to every streak. Calling it again with the same progress changes nothing.
func UpdateStreak(s entity.Streaks, progress entity.DailyProgress, today, yesterday string) entity.Streaks {
	global := entity.StreakCategory{
		Current:     s.CurrentStreak,
		Best:        s.BestStreak,
		LastLogDate: s.LastLogDate,
	}
	var counted int
	global, counted = updateCategory(global, progress.IsPerfectDay, today, yesterday)
	s.CurrentStreak = global.Current
	s.BestStreak = global.Best
	s.LastLogDate = global.LastLogDate
	s.PerfectDaysCount += counted
	if s.PerfectDaysCount < 0 {
		s.PerfectDaysCount = 0
	}
	s.Calories, _ = updateCategory(s.Calories, progress.Calories.Status == entity.CalorieStatusPerfect, today, yesterday)
	s.Water, _ = updateCategory(s.Water, progress.Water.IsMet, today, yesterday)
	s.Fasting, _ = updateCategory(s.Fasting, progress.Fasting.IsMet, today, yesterday)
	return s
}

// updateCategory returns the new streak and +1/-1 when today was credited/uncredited.
func updateCategory(c entity.StreakCategory, success bool, today, yesterday string) (entity.StreakCategory, int) {
	if c.LastLogDate != "" && c.LastLogDate != today && c.LastLogDate != yesterday {
		c.Current = 0
	}
	if success {
		if c.LastLogDate == today {
			return c, 0
		}
		c.Current++
		c.LastLogDate = today
		if c.Current > c.Best {
			c.Best = c.Current
		}
		return c, 1
	}
	if c.LastLogDate != today {
		return c, 0
	}
	// today was credited earlier and no longer qualifies
	c.Current--
	if c.Current < 0 {
		c.Current = 0
	}
	if c.Current > 0 {
		c.LastLogDate = yesterday
	} else {
		c.LastLogDate = ""
	}
	return c, -1
}

type AchievementService struct {
	logs    repository.DailyLogsRepositoryI
	fasting repository.FastingRepositoryI
	stats   repository.StatsRepositoryI
	plans   repository.DayPlansRepositoryI
	clock   Clock
}

func NewAchievementService(logsRepo repository.DailyLogsRepositoryI, fastingRepo repository.FastingRepositoryI,
	statsRepo repository.StatsRepositoryI, plansRepo repository.DayPlansRepositoryI, clock Clock) *AchievementService {
	if logsRepo == nil {
		log.Fatal("provided nil logsRepo")
	}
	if fastingRepo == nil {
		log.Fatal("provided nil fastingRepo")
	}
	if statsRepo == nil {
		log.Fatal("provided nil statsRepo")
	}
	if plansRepo == nil {
		log.Fatal("provided nil plansRepo")
	}
	return &AchievementService{
		logs:    logsRepo,
		fasting: fastingRepo,
		stats:   statsRepo,
		plans:   plansRepo,
		clock:   clock,
	}
}

type Achievements struct {
	Progress entity.DailyProgress `json:"progress"`
	Streaks  entity.Streaks       `json:"streaks"`
}

// EvaluateToday recomputes today's progress and streaks. Stats are written back only when streaks changed.
func (as *AchievementService) EvaluateToday(ctx context.Context, uid uuid.UUID) (*Achievements, error) {
	if uid == uuid.Nil {
		return nil, errorvalues.ErrNotAuthenticated
	}
	today := as.clock.Today()
	dl, err := as.logs.Get(ctx, uid, today)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	if dl == nil {
		dl = emptyLog(today)
	}
	state, err := as.fasting.GetState(ctx, uid)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	if state == nil {
		def := entity.DefaultFastingState()
		state = &def
	}
	stats, err := as.stats.Get(ctx, uid)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	if stats == nil {
		def := entity.DefaultUserStats()
		stats = &def
	}
	dayType := entity.DayTypeFast
	if stats.DietMode == entity.DietModeFiveTwo {
		plan, err := as.plans.Get(ctx, uid, today)
		if err != nil {
			return nil, errors.New("repository error: " + err.Error())
		}
		if plan != nil && plan.Type != "" {
			dayType = plan.Type
		}
	}
	progress := CalculateDailyProgress(dl, state, ProgressGoals{
		Calories:     stats.CalorieTargetFor(dayType),
		Water:        stats.DailyWaterGoal,
		FastingHours: state.Config.TargetFastHours,
	}, as.clock.now())
	updated := UpdateStreak(stats.Streaks, progress, today, datekey.AddDays(today, -1))
	if updated != stats.Streaks {
		stats.Streaks = updated
		if err = as.stats.Save(ctx, uid, stats); err != nil {
			return nil, errors.New("repository error: " + err.Error())
		}
	}
	return &Achievements{
		Progress: progress,
		Streaks:  updated,
	}, nil
}
