package service

import (
	"context"
	"errors"
	"log"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"

	errorvalues "github.com/limbo/fast800/internal/error_values"
	"github.com/limbo/fast800/internal/repository"
	"github.com/limbo/fast800/pkg/datekey"
	"github.com/limbo/fast800/pkg/entity"
)

const consistencyWindow = 30

type AnalyticsPoint struct {
	Date           string   `json:"date"`
	Weight         *float64 `json:"weight"`
	FastingHours   *float64 `json:"fasting_hours"`
	Calories       *float64 `json:"calories"`
	CaloriesBurned *float64 `json:"calories_burned"`
}

type Consistency struct {
	Score        int `json:"score"`
	DaysTracked  int `json:"days_tracked"`
	DaysOnTarget int `json:"days_on_target"`
}

type Period string

const (
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
)

var periodDays = map[Period]int{
	PeriodWeek:  7,
	PeriodMonth: 30,
}

type PeriodReport struct {
	Period         Period   `json:"period"`
	StartDate      string   `json:"start_date"`
	EndDate        string   `json:"end_date"`
	DaysLogged     int      `json:"days_logged"`
	AvgCalories    float64  `json:"avg_calories"`
	AvgNetCalories float64  `json:"avg_net_calories"`
	TotalWorkouts  int      `json:"total_workouts"`
	CaloriesBurned float64  `json:"calories_burned"`
	ComplianceRate float64  `json:"compliance_rate"`
	WeightChange   *float64 `json:"weight_change"`
}

// BuildAnalyticsSeries outer-joins weights, fasts and summaries by date. A fast counts for the day it ended on.
func BuildAnalyticsSeries(weights []entity.WeightEntry, fasts []entity.FastingEntry, summaries []entity.DailySummary, loc *time.Location) []AnalyticsPoint {
	byDate := make(map[string]*AnalyticsPoint)
	point := func(date string) *AnalyticsPoint {
		p, ok := byDate[date]
		if !ok {
			p = &AnalyticsPoint{Date: date}
			byDate[date] = p
		}
		return p
	}
	for _, w := range weights {
		v := w.Weight
		point(w.Date).Weight = &v
	}
	for _, f := range fasts {
		p := point(datekey.Today(f.EndTime, loc))
		sum := f.DurationHours
		if p.FastingHours != nil {
			sum += *p.FastingHours
		}
		p.FastingHours = &sum
	}
	for _, s := range summaries {
		p := point(s.Date)
		consumed, burned := s.CaloriesConsumed, s.CaloriesBurned
		p.Calories = &consumed
		p.CaloriesBurned = &burned
	}
	series := make([]AnalyticsPoint, 0, len(byDate))
	for _, p := range byDate {
		series = append(series, *p)
	}
	sort.Slice(series, func(i, j int) bool {
		return series[i].Date < series[j].Date
	})
	return series
}

// CalculateConsistency scores the last 30 series entries that carry calories. A day is on target when net calories stay within goal.
func CalculateConsistency(series []AnalyticsPoint, goal float64) Consistency {
	recent := series
	if len(recent) > consistencyWindow {
		recent = recent[len(recent)-consistencyWindow:]
	}
	var c Consistency
	for _, p := range recent {
		if p.Calories == nil || *p.Calories <= 0 {
			continue
		}
		c.DaysTracked++
		net := *p.Calories
		if p.CaloriesBurned != nil {
			net -= *p.CaloriesBurned
		}
		if net <= goal {
			c.DaysOnTarget++
		}
	}
	if c.DaysTracked > 0 {
		c.Score = int(math.Round(100 * float64(c.DaysOnTarget) / float64(c.DaysTracked)))
	}
	return c
}

// BuildPeriodReport rolls up the summaries and weigh-ins of the last 7 or 30 days, today included.
func BuildPeriodReport(summaries []entity.DailySummary, weights []entity.WeightEntry, period Period, today string, goal float64) (PeriodReport, error) {
	days, ok := periodDays[period]
	if !ok {
		return PeriodReport{}, errors.Join(errorvalues.ErrValidation, errors.New("unknown period: "+string(period)))
	}
	r := PeriodReport{
		Period:    period,
		StartDate: datekey.AddDays(today, -(days - 1)),
		EndDate:   today,
	}
	var consumed, net float64
	var compliant int
	for _, s := range summaries {
		if s.Date < r.StartDate || s.Date > r.EndDate {
			continue
		}
		r.DaysLogged++
		consumed += s.CaloriesConsumed
		net += s.NetCalories
		r.TotalWorkouts += s.WorkoutCount
		r.CaloriesBurned += s.CaloriesBurned
		if s.NetCalories <= goal {
			compliant++
		}
	}
	if r.DaysLogged > 0 {
		r.AvgCalories = consumed / float64(r.DaysLogged)
		r.AvgNetCalories = net / float64(r.DaysLogged)
		r.ComplianceRate = float64(compliant) / float64(r.DaysLogged) * 100
	}
	inPeriod := make([]entity.WeightEntry, 0)
	for _, w := range sortedHistory(weights) {
		if w.Date >= r.StartDate && w.Date <= r.EndDate {
			inPeriod = append(inPeriod, w)
		}
	}
	if len(inPeriod) >= 2 {
		change := inPeriod[len(inPeriod)-1].Weight - inPeriod[0].Weight
		r.WeightChange = &change
	}
	return r, nil
}

type AnalyticsService struct {
	stats   repository.StatsRepositoryI
	fasting repository.FastingRepositoryI
	archive *ArchiveService
	clock   Clock
}

func NewAnalyticsService(statsRepo repository.StatsRepositoryI, fastingRepo repository.FastingRepositoryI, archive *ArchiveService, clock Clock) *AnalyticsService {
	if statsRepo == nil {
		log.Fatal("provided nil statsRepo")
	}
	if fastingRepo == nil {
		log.Fatal("provided nil fastingRepo")
	}
	if archive == nil {
		log.Fatal("provided nil archive service")
	}
	return &AnalyticsService{
		stats:   statsRepo,
		fasting: fastingRepo,
		archive: archive,
		clock:   clock,
	}
}

func (as *AnalyticsService) userStats(ctx context.Context, uid uuid.UUID) (*entity.UserStats, error) {
	if uid == uuid.Nil {
		return nil, errorvalues.ErrNotAuthenticated
	}
	stats, err := as.stats.Get(ctx, uid)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	if stats == nil {
		def := entity.DefaultUserStats()
		stats = &def
	}
	return stats, nil
}

func (as *AnalyticsService) GetAnalyticsData(ctx context.Context, uid uuid.UUID) ([]AnalyticsPoint, error) {
	stats, err := as.userStats(ctx, uid)
	if err != nil {
		return nil, err
	}
	fasts, err := as.fasting.GetHistory(ctx, uid)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	summaries, err := as.archive.GetAllDailySummaries(ctx, uid)
	if err != nil {
		return nil, err
	}
	return BuildAnalyticsSeries(stats.WeightHistory, fasts, summaries, as.clock.location()), nil
}

// GetGoalProjection returns nil when the weight trend gives no projection.
func (as *AnalyticsService) GetGoalProjection(ctx context.Context, uid uuid.UUID) (*GoalProjection, error) {
	stats, err := as.userStats(ctx, uid)
	if err != nil {
		return nil, err
	}
	projection, ok := ProjectGoal(stats.WeightHistory, stats.CurrentWeight, stats.GoalWeight, as.clock.Today())
	if !ok {
		return nil, nil
	}
	return &projection, nil
}

type WeightTrendReport struct {
	Points     []WeightTrendPoint `json:"points"`
	Analysis   WeightAnalysis     `json:"analysis"`
	Projection *GoalProjection    `json:"projection"`
}

func (as *AnalyticsService) GetWeightTrend(ctx context.Context, uid uuid.UUID) (*WeightTrendReport, error) {
	stats, err := as.userStats(ctx, uid)
	if err != nil {
		return nil, err
	}
	report := &WeightTrendReport{
		Points:   BuildWeightTrendSeries(stats.WeightHistory, stats.GoalWeight),
		Analysis: AnalyzeWeight(stats),
	}
	if projection, ok := ProjectGoal(stats.WeightHistory, stats.CurrentWeight, stats.GoalWeight, as.clock.Today()); ok {
		report.Projection = &projection
	}
	return report, nil
}

func (as *AnalyticsService) GetConsistency(ctx context.Context, uid uuid.UUID) (*Consistency, error) {
	stats, err := as.userStats(ctx, uid)
	if err != nil {
		return nil, err
	}
	series, err := as.GetAnalyticsData(ctx, uid)
	if err != nil {
		return nil, err
	}
	c := CalculateConsistency(series, ProgressGoals{Calories: stats.DailyCalorieGoal}.withDefaults().Calories)
	return &c, nil
}

func (as *AnalyticsService) GetPeriodSummary(ctx context.Context, uid uuid.UUID, period Period) (*PeriodReport, error) {
	stats, err := as.userStats(ctx, uid)
	if err != nil {
		return nil, err
	}
	days, ok := periodDays[period]
	if !ok {
		return nil, errors.Join(errorvalues.ErrValidation, errors.New("unknown period: "+string(period)))
	}
	summaries, err := as.archive.GetDailySummaries(ctx, uid, days)
	if err != nil {
		return nil, err
	}
	goal := ProgressGoals{Calories: stats.DailyCalorieGoal}.withDefaults().Calories
	report, err := BuildPeriodReport(summaries, stats.WeightHistory, period, as.clock.Today(), goal)
	if err != nil {
		return nil, err
	}
	return &report, nil
}
