package service

import (
	"math"
	"sort"

	"github.com/limbo/fast800/pkg/datekey"
	"github.com/limbo/fast800/pkg/entity"
)

const (
	trendWindowDays      = 30
	minTrendSamples      = 3
	maxProjectionDays    = 90
	minWeeklyTrendDays   = 7
	weeklyTrendTolerance = 0.1
)

type WeightTrend string

const (
	TrendLosing           WeightTrend = "losing"
	TrendMaintaining      WeightTrend = "maintaining"
	TrendGaining          WeightTrend = "gaining"
	TrendInsufficientData WeightTrend = "insufficient-data"
)

// RegressionLine is weight as a function of days since Origin.
type RegressionLine struct {
	Origin    string  `json:"origin"`
	Slope     float64 `json:"slope"`
	Intercept float64 `json:"intercept"`
}

func (l RegressionLine) At(date string) float64 {
	return l.Intercept + l.Slope*float64(datekey.DaysBetween(l.Origin, date))
}

type GoalProjection struct {
	DaysRemaining int     `json:"days_remaining"`
	ProjectedDate string  `json:"projected_date"`
	WeeklyRate    float64 `json:"weekly_rate"`
	Slope         float64 `json:"slope"`
}

type WeightTrendPoint struct {
	Date      string   `json:"date"`
	Weight    *float64 `json:"weight"`
	Trend     *float64 `json:"trend"`
	Projected *float64 `json:"projected"`
}

type WeightAnalysis struct {
	StartWeight   float64     `json:"start_weight"`
	CurrentWeight float64     `json:"current_weight"`
	GoalWeight    float64     `json:"goal_weight"`
	TotalLoss     float64     `json:"total_loss"`
	Remaining     float64     `json:"remaining"`
	PercentToGoal float64     `json:"percent_to_goal"`
	AvgWeeklyLoss *float64    `json:"avg_weekly_loss"`
	Trend         WeightTrend `json:"trend"`
}

// CalculateRegressionLine fits weight against elapsed days with ordinary least squares.
// Returns false when there are fewer than two samples or all samples share a date.
func CalculateRegressionLine(history []entity.WeightEntry) (RegressionLine, bool) {
	samples := sortedHistory(history)
	n := len(samples)
	if n < 2 {
		return RegressionLine{}, false
	}
	origin := samples[0].Date
	var sumX, sumY, sumXY, sumX2 float64
	for _, s := range samples {
		x := float64(datekey.DaysBetween(origin, s.Date))
		sumX += x
		sumY += s.Weight
		sumXY += x * s.Weight
		sumX2 += x * x
	}
	denom := float64(n)*sumX2 - sumX*sumX
	if denom == 0 {
		return RegressionLine{}, false
	}
	slope := (float64(n)*sumXY - sumX*sumY) / denom
	return RegressionLine{
		Origin:    origin,
		Slope:     slope,
		Intercept: (sumY - slope*sumX) / float64(n),
	}, true
}

// trendSamples returns samples from the trailing window, or the whole history when the window is too thin.
func trendSamples(history []entity.WeightEntry) []entity.WeightEntry {
	samples := sortedHistory(history)
	if len(samples) == 0 {
		return samples
	}
	cutoff := datekey.AddDays(samples[len(samples)-1].Date, -trendWindowDays)
	window := make([]entity.WeightEntry, 0, len(samples))
	for _, s := range samples {
		if s.Date >= cutoff {
			window = append(window, s)
		}
	}
	if len(window) < minTrendSamples {
		return samples
	}
	return window
}

// ProjectGoal estimates when the weight trend reaches goalWeight.
// No projection is made from fewer than three samples or from a flat or rising trend.
func ProjectGoal(history []entity.WeightEntry, currentWeight, goalWeight float64, today string) (GoalProjection, bool) {
	samples := trendSamples(history)
	if len(samples) < minTrendSamples {
		return GoalProjection{}, false
	}
	line, ok := CalculateRegressionLine(samples)
	if !ok || line.Slope >= 0 {
		return GoalProjection{}, false
	}
	rate := math.Abs(line.Slope)
	remaining := currentWeight - goalWeight
	if remaining <= 0 {
		return GoalProjection{
			ProjectedDate: today,
			WeeklyRate:    rate * 7,
			Slope:         line.Slope,
		}, true
	}
	days := int(math.Ceil(remaining/rate - 1e-9))
	return GoalProjection{
		DaysRemaining: days,
		ProjectedDate: datekey.AddDays(today, days),
		WeeklyRate:    rate * 7,
		Slope:         line.Slope,
	}, true
}

// BuildWeightTrendSeries pairs every weighed date with its fitted value. On a loss trend above goal
// one extra point marks where the line meets the goal, never more than 90 days past the last sample.
func BuildWeightTrendSeries(history []entity.WeightEntry, goalWeight float64) []WeightTrendPoint {
	samples := sortedHistory(history)
	points := make([]WeightTrendPoint, 0, len(samples)+1)
	for _, s := range samples {
		w := s.Weight
		points = append(points, WeightTrendPoint{Date: s.Date, Weight: &w})
	}
	fit := trendSamples(samples)
	if len(fit) < minTrendSamples {
		return points
	}
	line, ok := CalculateRegressionLine(fit)
	if !ok {
		return points
	}
	for i := range points {
		v := line.At(points[i].Date)
		points[i].Trend = &v
	}
	last := samples[len(samples)-1]
	if line.Slope >= 0 || last.Weight <= goalWeight {
		return points
	}
	rate := math.Abs(line.Slope)
	days := int(math.Ceil((last.Weight-goalWeight)/rate - 1e-9))
	if days > maxProjectionDays {
		days = maxProjectionDays
	}
	anchor := last.Weight
	points[len(points)-1].Projected = &anchor
	projected := last.Weight - rate*float64(days)
	date := datekey.AddDays(last.Date, days)
	trend := line.At(date)
	points = append(points, WeightTrendPoint{Date: date, Trend: &trend, Projected: &projected})
	return points
}

// AnalyzeWeight summarises progress from start to goal and classifies the weekly trend.
func AnalyzeWeight(stats *entity.UserStats) WeightAnalysis {
	a := WeightAnalysis{
		StartWeight:   stats.StartWeight,
		CurrentWeight: stats.CurrentWeight,
		GoalWeight:    stats.GoalWeight,
		TotalLoss:     stats.StartWeight - stats.CurrentWeight,
		Remaining:     stats.CurrentWeight - stats.GoalWeight,
		Trend:         TrendInsufficientData,
	}
	if span := stats.StartWeight - stats.GoalWeight; span > 0 {
		a.PercentToGoal = math.Min(100, math.Max(0, a.TotalLoss/span*100))
	}
	samples := sortedHistory(stats.WeightHistory)
	if len(samples) < 2 {
		return a
	}
	first, last := samples[0], samples[len(samples)-1]
	days := datekey.DaysBetween(first.Date, last.Date)
	if days < minWeeklyTrendDays {
		return a
	}
	weekly := (first.Weight - last.Weight) / float64(days) * 7
	a.AvgWeeklyLoss = &weekly
	switch {
	case weekly > weeklyTrendTolerance:
		a.Trend = TrendLosing
	case weekly < -weeklyTrendTolerance:
		a.Trend = TrendGaining
	default:
		a.Trend = TrendMaintaining
	}
	return a
}

func sortedHistory(history []entity.WeightEntry) []entity.WeightEntry {
	out := make([]entity.WeightEntry, 0, len(history))
	for _, h := range history {
		if datekey.Valid(h.Date) {
			out = append(out, h)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date < out[j].Date
	})
	return out
}
