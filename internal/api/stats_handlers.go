package api

import (
	"context"
	"net/http"
	"time"

	"github.com/limbo/fast800/internal/service"
	"github.com/limbo/fast800/pkg/entity"
	"github.com/limbo/fast800/pkg/httputil"
)

type GoalsRequest struct {
	Name                    string          `json:"name"`
	StartWeight             float64         `json:"start_weight"`
	GoalWeight              float64         `json:"goal_weight"`
	DailyCalorieGoal        float64         `json:"daily_calorie_goal"`
	DailyWaterGoal          float64         `json:"daily_water_goal"`
	DietMode                entity.DietMode `json:"diet_mode"`
	NonFastDayCalories      float64         `json:"non_fast_day_calories"`
	DailyWorkoutCalorieGoal float64         `json:"daily_workout_calorie_goal"`
	DailyWorkoutCountGoal   int             `json:"daily_workout_count_goal"`
}

type FastingConfigRequest struct {
	Protocol    entity.FastingProtocol `json:"protocol"`
	CustomHours float64                `json:"custom_hours"`
}

type RecordMealRequest struct {
	// Defaults to the time the request is served
	At *time.Time `json:"at"`
}

func (s *Server) GetUserStats(w http.ResponseWriter, r *http.Request) {
	logger, uid, ok := authorized(w, r, "get stats")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), defaultTimeout)
	defer cancel()
	stats, err := s.statsService.GetUserStats(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "get stats", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, stats)
}

func (s *Server) UpdateGoals(w http.ResponseWriter, r *http.Request) {
	logger, uid, ok := authorized(w, r, "update goals")
	if !ok {
		return
	}
	var req GoalsRequest
	if err := decodeBody(r, &req); err != nil {
		badBody(w, logger, "update goals")
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), defaultTimeout)
	defer cancel()
	stats, err := s.statsService.UpdateGoals(ctx, uid, service.GoalsRequest{
		Name:                    req.Name,
		StartWeight:             req.StartWeight,
		GoalWeight:              req.GoalWeight,
		DailyCalorieGoal:        req.DailyCalorieGoal,
		DailyWaterGoal:          req.DailyWaterGoal,
		DietMode:                req.DietMode,
		NonFastDayCalories:      req.NonFastDayCalories,
		DailyWorkoutCalorieGoal: req.DailyWorkoutCalorieGoal,
		DailyWorkoutCountGoal:   req.DailyWorkoutCountGoal,
	})
	if err != nil {
		writeServiceError(w, logger, "update goals", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, stats)
	logger.Info("goals updated")
}

func (s *Server) AddWeightEntry(w http.ResponseWriter, r *http.Request) {
	logger, uid, ok := authorized(w, r, "add weight")
	if !ok {
		return
	}
	var entry entity.WeightEntry
	if err := decodeBody(r, &entry); err != nil {
		badBody(w, logger, "add weight")
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), defaultTimeout)
	defer cancel()
	stats, err := s.statsService.AddWeightEntry(ctx, uid, entry)
	if err != nil {
		writeServiceError(w, logger, "add weight", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, stats)
}

func (s *Server) GetFastingState(w http.ResponseWriter, r *http.Request) {
	logger, uid, ok := authorized(w, r, "get fasting state")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), defaultTimeout)
	defer cancel()
	state, err := s.fastingService.GetFastingState(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "get fasting state", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, state)
}

func (s *Server) UpdateFastingConfig(w http.ResponseWriter, r *http.Request) {
	logger, uid, ok := authorized(w, r, "update fasting config")
	if !ok {
		return
	}
	var req FastingConfigRequest
	if err := decodeBody(r, &req); err != nil {
		badBody(w, logger, "update fasting config")
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), defaultTimeout)
	defer cancel()
	state, err := s.fastingService.UpdateFastingConfig(ctx, uid, service.FastingConfigRequest{
		Protocol:    req.Protocol,
		CustomHours: req.CustomHours,
	})
	if err != nil {
		writeServiceError(w, logger, "update fasting config", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, state)
}

func (s *Server) GetFastingHistory(w http.ResponseWriter, r *http.Request) {
	logger, uid, ok := authorized(w, r, "get fasting history")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), defaultTimeout)
	defer cancel()
	history, err := s.fastingService.GetFastingHistory(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "get fasting history", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, history)
}

// RecordMeal answers 204 when the gap since the last meal was too short to count as a fast.
func (s *Server) RecordMeal(w http.ResponseWriter, r *http.Request) {
	logger, uid, ok := authorized(w, r, "record meal")
	if !ok {
		return
	}
	var req RecordMealRequest
	if r.ContentLength != 0 {
		if err := decodeBody(r, &req); err != nil {
			badBody(w, logger, "record meal")
			return
		}
	}
	at := time.Now()
	if req.At != nil {
		at = *req.At
	}
	ctx, cancel := context.WithTimeout(r.Context(), defaultTimeout)
	defer cancel()
	entry, err := s.fastingService.RecordMeal(ctx, uid, at)
	if err != nil {
		writeServiceError(w, logger, "record meal", err)
		return
	}
	if entry == nil {
		httputil.WriteNoContent(w)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, entry)
}
