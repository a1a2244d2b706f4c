package api

import (
	"errors"
	"log/slog"
	"net/http"

	errorvalues "github.com/limbo/fast800/internal/error_values"
	"github.com/limbo/fast800/pkg/httputil"
)

type errorMapping struct {
	target  error
	status  int
	message string
}

// Checked in order, first match wins.
var serviceErrors = []errorMapping{
	{errorvalues.ErrNotAuthenticated, http.StatusUnauthorized, "no authorization"},
	{errorvalues.ErrWrongCredentials, http.StatusForbidden, "invalid username or password"},
	{errorvalues.ErrUpstream, http.StatusBadGateway, "parsing service is unavailable"},
	{errorvalues.ErrMalformedParseResult, http.StatusBadGateway, "parsing service returned an unusable result"},
	{errorvalues.ErrInlineImage, http.StatusBadRequest, "inline images aren't accepted, upload the image instead"},
	{errorvalues.ErrInvalidDate, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD"},
	{errorvalues.ErrInvalidRange, http.StatusBadRequest, "range end precedes its start"},
	{errorvalues.ErrValidation, http.StatusBadRequest, "invalid request"},
	{errorvalues.ErrUserNotFound, http.StatusNotFound, "user doesn't exist"},
	{errorvalues.ErrRecipeNotFound, http.StatusNotFound, "recipe doesn't exist"},
	{errorvalues.ErrMealNotFound, http.StatusNotFound, "meal isn't in the plan"},
	{errorvalues.ErrLogItemMissing, http.StatusNotFound, "log item doesn't exist"},
	{errorvalues.ErrNoLegacyPlan, http.StatusNotFound, "no legacy plan"},
	{errorvalues.ErrUserExists, http.StatusConflict, "user with such name already exists"},
	{errorvalues.ErrRecipeExists, http.StatusConflict, "recipe already exists"},
	{errorvalues.ErrSummaryExists, http.StatusConflict, "summary already exists"},
	{errorvalues.ErrLegacyNotMoved, http.StatusConflict, "legacy plan holds days that aren't migrated yet"},
}

// writeServiceError logs err under op and answers with the status its sentinel maps to.
// Validation details are echoed to the client, anything unmapped is a 500 without details.
func writeServiceError(w http.ResponseWriter, logger *slog.Logger, op string, err error) {
	for _, m := range serviceErrors {
		if !errors.Is(err, m.target) {
			continue
		}
		logger.Error(op+" error", slog.String("error", err.Error()))
		var details error
		if m.status == http.StatusBadRequest {
			details = err
		}
		httputil.WriteErrorResponse(w, m.status, m.message, details)
		return
	}
	logger.Error(op+" error: service error", slog.String("error", err.Error()))
	httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error during "+op, nil)
}
