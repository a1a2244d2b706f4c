package api

import (
	"context"
	"net/http"

	"github.com/limbo/fast800/internal/service"
	"github.com/limbo/fast800/pkg/entity"
	"github.com/limbo/fast800/pkg/httputil"
)

type FoodItemRequest struct {
	Name     string  `json:"name"`
	Calories float64 `json:"calories"`
}

type WorkoutRequest struct {
	Type           string  `json:"type"`
	CaloriesBurned float64 `json:"calories_burned"`
}

type WaterRequest struct {
	Amount float64 `json:"amount"`
}

type AnalyzeFoodRequest struct {
	Text string `json:"text"`
}

func (s *Server) GetDailyLog(w http.ResponseWriter, r *http.Request) {
	logger, uid, ok := authorized(w, r, "get daily log")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), defaultTimeout)
	defer cancel()
	dl, err := s.logsService.GetDailyLog(ctx, uid, r.PathValue("date"))
	if err != nil {
		writeServiceError(w, logger, "get daily log", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, dl)
}

func (s *Server) SaveDailyLog(w http.ResponseWriter, r *http.Request) {
	logger, uid, ok := authorized(w, r, "save daily log")
	if !ok {
		return
	}
	var dl entity.DailyLog
	if err := decodeBody(r, &dl); err != nil {
		badBody(w, logger, "save daily log")
		return
	}
	dl.Date = r.PathValue("date")
	ctx, cancel := context.WithTimeout(r.Context(), defaultTimeout)
	defer cancel()
	if err := s.logsService.SaveDailyLog(ctx, uid, &dl); err != nil {
		writeServiceError(w, logger, "save daily log", err)
		return
	}
	httputil.WriteNoContent(w)
}

func (s *Server) AddFoodItem(w http.ResponseWriter, r *http.Request) {
	logger, uid, ok := authorized(w, r, "add food item")
	if !ok {
		return
	}
	var req FoodItemRequest
	if err := decodeBody(r, &req); err != nil {
		badBody(w, logger, "add food item")
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), defaultTimeout)
	defer cancel()
	dl, err := s.logsService.AddFoodItem(ctx, uid, r.PathValue("date"), service.FoodItemRequest{
		Name:     req.Name,
		Calories: req.Calories,
	})
	if err != nil {
		writeServiceError(w, logger, "add food item", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, dl)
}

func (s *Server) RemoveFoodItem(w http.ResponseWriter, r *http.Request) {
	logger, uid, ok := authorized(w, r, "remove food item")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), defaultTimeout)
	defer cancel()
	dl, err := s.logsService.RemoveFoodItem(ctx, uid, r.PathValue("date"), r.PathValue("itemID"))
	if err != nil {
		writeServiceError(w, logger, "remove food item", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, dl)
}

func (s *Server) AddWorkout(w http.ResponseWriter, r *http.Request) {
	logger, uid, ok := authorized(w, r, "add workout")
	if !ok {
		return
	}
	var req WorkoutRequest
	if err := decodeBody(r, &req); err != nil {
		badBody(w, logger, "add workout")
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), defaultTimeout)
	defer cancel()
	dl, err := s.logsService.AddWorkout(ctx, uid, r.PathValue("date"), service.WorkoutRequest{
		Type:           req.Type,
		CaloriesBurned: req.CaloriesBurned,
	})
	if err != nil {
		writeServiceError(w, logger, "add workout", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, dl)
}

func (s *Server) RemoveWorkout(w http.ResponseWriter, r *http.Request) {
	logger, uid, ok := authorized(w, r, "remove workout")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), defaultTimeout)
	defer cancel()
	dl, err := s.logsService.RemoveWorkout(ctx, uid, r.PathValue("date"), r.PathValue("workoutID"))
	if err != nil {
		writeServiceError(w, logger, "remove workout", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, dl)
}

// AddWater accepts negative amounts to correct mistakes.
func (s *Server) AddWater(w http.ResponseWriter, r *http.Request) {
	logger, uid, ok := authorized(w, r, "add water")
	if !ok {
		return
	}
	var req WaterRequest
	if err := decodeBody(r, &req); err != nil {
		badBody(w, logger, "add water")
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), defaultTimeout)
	defer cancel()
	dl, err := s.logsService.AddWater(ctx, uid, r.PathValue("date"), req.Amount)
	if err != nil {
		writeServiceError(w, logger, "add water", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, dl)
}

func (s *Server) AnalyzeFoodText(w http.ResponseWriter, r *http.Request) {
	logger, uid, ok := authorized(w, r, "analyze food")
	if !ok {
		return
	}
	var req AnalyzeFoodRequest
	if err := decodeBody(r, &req); err != nil {
		badBody(w, logger, "analyze food")
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), parserTimeout)
	defer cancel()
	dl, err := s.logsService.AnalyzeFoodText(ctx, uid, req.Text)
	if err != nil {
		writeServiceError(w, logger, "analyze food", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, dl)
}
