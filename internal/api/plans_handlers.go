package api

import (
	"context"
	"net/http"

	"github.com/limbo/fast800/pkg/entity"
	"github.com/limbo/fast800/pkg/httputil"
)

type SetDayTypeRequest struct {
	Type entity.DayType `json:"type"`
}

func (s *Server) GetDayPlan(w http.ResponseWriter, r *http.Request) {
	logger, uid, ok := authorized(w, r, "get day plan")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), defaultTimeout)
	defer cancel()
	plan, err := s.plansService.GetDayPlan(ctx, uid, r.PathValue("date"))
	if err != nil {
		writeServiceError(w, logger, "get day plan", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, plan)
}

func (s *Server) SaveDayPlan(w http.ResponseWriter, r *http.Request) {
	logger, uid, ok := authorized(w, r, "save day plan")
	if !ok {
		return
	}
	var plan entity.DayPlan
	if err := decodeBody(r, &plan); err != nil {
		badBody(w, logger, "save day plan")
		return
	}
	// path wins over body
	plan.Date = r.PathValue("date")
	ctx, cancel := context.WithTimeout(r.Context(), defaultTimeout)
	defer cancel()
	if err := s.plansService.SaveDayPlan(ctx, uid, &plan); err != nil {
		writeServiceError(w, logger, "save day plan", err)
		return
	}
	httputil.WriteNoContent(w)
	logger.Info("day plan saved", "date", plan.Date)
}

func (s *Server) GetDayPlansInRange(w http.ResponseWriter, r *http.Request) {
	logger, uid, ok := authorized(w, r, "get day plans")
	if !ok {
		return
	}
	q := r.URL.Query()
	ctx, cancel := context.WithTimeout(r.Context(), defaultTimeout*3)
	defer cancel()
	plans, err := s.plansService.GetDayPlansInRange(ctx, uid, q.Get("from"), q.Get("to"))
	if err != nil {
		writeServiceError(w, logger, "get day plans", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, plans)
}

func (s *Server) AddMeal(w http.ResponseWriter, r *http.Request) {
	logger, uid, ok := authorized(w, r, "add meal")
	if !ok {
		return
	}
	var meal entity.Meal
	if err := decodeBody(r, &meal); err != nil {
		badBody(w, logger, "add meal")
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), defaultTimeout)
	defer cancel()
	plan, err := s.plansService.AddMeal(ctx, uid, r.PathValue("date"), meal)
	if err != nil {
		writeServiceError(w, logger, "add meal", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, plan)
}

func (s *Server) SwapMeal(w http.ResponseWriter, r *http.Request) {
	logger, uid, ok := authorized(w, r, "swap meal")
	if !ok {
		return
	}
	var meal entity.Meal
	if err := decodeBody(r, &meal); err != nil {
		badBody(w, logger, "swap meal")
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), defaultTimeout)
	defer cancel()
	plan, err := s.plansService.SwapMeal(ctx, uid, r.PathValue("date"), r.PathValue("mealID"), meal)
	if err != nil {
		writeServiceError(w, logger, "swap meal", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, plan)
}

func (s *Server) RemoveMeal(w http.ResponseWriter, r *http.Request) {
	logger, uid, ok := authorized(w, r, "remove meal")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), defaultTimeout)
	defer cancel()
	plan, err := s.plansService.RemoveMeal(ctx, uid, r.PathValue("date"), r.PathValue("mealID"))
	if err != nil {
		writeServiceError(w, logger, "remove meal", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, plan)
}

func (s *Server) ToggleMealCompleted(w http.ResponseWriter, r *http.Request) {
	logger, uid, ok := authorized(w, r, "toggle meal")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), defaultTimeout)
	defer cancel()
	plan, err := s.plansService.ToggleMealCompleted(ctx, uid, r.PathValue("date"), r.PathValue("mealID"))
	if err != nil {
		writeServiceError(w, logger, "toggle meal", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, plan)
}

func (s *Server) SetDayType(w http.ResponseWriter, r *http.Request) {
	logger, uid, ok := authorized(w, r, "set day type")
	if !ok {
		return
	}
	var req SetDayTypeRequest
	if err := decodeBody(r, &req); err != nil {
		badBody(w, logger, "set day type")
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), defaultTimeout)
	defer cancel()
	plan, err := s.plansService.SetDayType(ctx, uid, r.PathValue("date"), req.Type)
	if err != nil {
		writeServiceError(w, logger, "set day type", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, plan)
}
