package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/limbo/fast800/internal/service"
	"github.com/limbo/fast800/pkg/entity"
	"github.com/limbo/fast800/pkg/httputil"
)

func (s *Server) ArchiveYesterdaysLog(w http.ResponseWriter, r *http.Request) {
	logger, uid, ok := authorized(w, r, "archive")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), defaultTimeout)
	defer cancel()
	res, err := s.archiveService.ArchiveYesterdaysLog(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "archive", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"result": res})
	logger.Info("archival finished", "result", string(res))
}

// GetDailySummaries returns the last ?days days, or every summary when days is absent.
func (s *Server) GetDailySummaries(w http.ResponseWriter, r *http.Request) {
	logger, uid, ok := authorized(w, r, "get summaries")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), defaultTimeout)
	defer cancel()
	var (
		summaries []entity.DailySummary
		err       error
	)
	if raw := r.URL.Query().Get("days"); raw != "" {
		days, convErr := strconv.Atoi(raw)
		if convErr != nil || days < 1 || days > 3650 {
			logger.Error("get summaries error: invalid days")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "days must be between 1 and 3650", nil)
			return
		}
		summaries, err = s.archiveService.GetDailySummaries(ctx, uid, days)
	} else {
		summaries, err = s.archiveService.GetAllDailySummaries(ctx, uid)
	}
	if err != nil {
		writeServiceError(w, logger, "get summaries", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, summaries)
}

func (s *Server) GetAnalyticsData(w http.ResponseWriter, r *http.Request) {
	logger, uid, ok := authorized(w, r, "get analytics")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), defaultTimeout)
	defer cancel()
	points, err := s.analyticsService.GetAnalyticsData(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "get analytics", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, points)
}

// GetGoalProjection answers 204 when there is nothing to project.
func (s *Server) GetGoalProjection(w http.ResponseWriter, r *http.Request) {
	logger, uid, ok := authorized(w, r, "get projection")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), defaultTimeout)
	defer cancel()
	projection, err := s.analyticsService.GetGoalProjection(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "get projection", err)
		return
	}
	if projection == nil {
		httputil.WriteNoContent(w)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, projection)
}

func (s *Server) GetWeightTrend(w http.ResponseWriter, r *http.Request) {
	logger, uid, ok := authorized(w, r, "get weight trend")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), defaultTimeout)
	defer cancel()
	trend, err := s.analyticsService.GetWeightTrend(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "get weight trend", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, trend)
}

func (s *Server) GetConsistency(w http.ResponseWriter, r *http.Request) {
	logger, uid, ok := authorized(w, r, "get consistency")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), defaultTimeout)
	defer cancel()
	c, err := s.analyticsService.GetConsistency(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "get consistency", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, c)
}

func (s *Server) GetPeriodSummary(w http.ResponseWriter, r *http.Request) {
	logger, uid, ok := authorized(w, r, "get period summary")
	if !ok {
		return
	}
	period := service.Period(r.PathValue("period"))
	if period != service.PeriodWeek && period != service.PeriodMonth {
		logger.Error("get period summary error: unknown period")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "period must be week or month", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), defaultTimeout)
	defer cancel()
	report, err := s.analyticsService.GetPeriodSummary(ctx, uid, period)
	if err != nil {
		writeServiceError(w, logger, "get period summary", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, report)
}

func (s *Server) EvaluateToday(w http.ResponseWriter, r *http.Request) {
	logger, uid, ok := authorized(w, r, "evaluate today")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), defaultTimeout)
	defer cancel()
	a, err := s.achievementService.EvaluateToday(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "evaluate today", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, a)
}

func (s *Server) BuildShoppingList(w http.ResponseWriter, r *http.Request) {
	logger, uid, ok := authorized(w, r, "shopping list")
	if !ok {
		return
	}
	q := r.URL.Query()
	ctx, cancel := context.WithTimeout(r.Context(), parserTimeout)
	defer cancel()
	items, err := s.shoppingService.BuildShoppingList(ctx, uid, q.Get("from"), q.Get("to"))
	if err != nil {
		writeServiceError(w, logger, "shopping list", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, items)
}
