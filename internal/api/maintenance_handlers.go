package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/limbo/fast800/pkg/httputil"
)

// Batch jobs walk a user's whole history.
const maintenanceTimeout = time.Minute * 5

func (s *Server) RunMigrations(w http.ResponseWriter, r *http.Request) {
	logger, uid, ok := authorized(w, r, "run migrations")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), maintenanceTimeout)
	defer cancel()
	report, err := s.migrationService.RunAll(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "run migrations", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, report)
	logger.Info("migrations finished",
		slog.Int("images", report.Images.Migrated),
		slog.Int("logs", report.Logs.Migrated),
		slog.Int("plans", report.Plans.Migrated),
		slog.Bool("legacy_removed", report.LegacyRemoved),
	)
}

func (s *Server) MigrateInlineImages(w http.ResponseWriter, r *http.Request) {
	logger, uid, ok := authorized(w, r, "migrate images")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), maintenanceTimeout)
	defer cancel()
	res, err := s.migrationService.MigrateInlineImages(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "migrate images", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, res)
}

func (s *Server) MigrateAllLogs(w http.ResponseWriter, r *http.Request) {
	logger, uid, ok := authorized(w, r, "migrate logs")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), maintenanceTimeout)
	defer cancel()
	res, err := s.archiveService.MigrateAllLogsToSummaries(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "migrate logs", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, res)
}

func (s *Server) MigrateDayPlans(w http.ResponseWriter, r *http.Request) {
	logger, uid, ok := authorized(w, r, "migrate plans")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), maintenanceTimeout)
	defer cancel()
	res, err := s.migrationService.MigrateDayPlansToNormalized(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "migrate plans", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, res)
}

func (s *Server) CleanupLegacyData(w http.ResponseWriter, r *http.Request) {
	logger, uid, ok := authorized(w, r, "legacy cleanup")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), defaultTimeout)
	defer cancel()
	if err := s.migrationService.CleanupLegacyData(ctx, uid); err != nil {
		writeServiceError(w, logger, "legacy cleanup", err)
		return
	}
	httputil.WriteNoContent(w)
}
