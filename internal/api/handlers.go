package api

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"

	"github.com/limbo/fast800/internal/service"
	"github.com/limbo/fast800/pkg/httputil"
)

const (
	defaultTimeout = time.Second * 10
	// AI collaborator calls retry with backoff
	parserTimeout = time.Second * 90
)

type RegisterRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

type DeleteAccountRequest struct {
	Password string `json:"password"`
}

// decodeBody reads a json body into v. An empty body is an error.
func decodeBody(r *http.Request, v any) error {
	if r.Body == nil {
		return io.EOF
	}
	defer r.Body.Close()
	return sonic.ConfigDefault.NewDecoder(r.Body).Decode(v)
}

// authorized returns request's logger and uid, answering 401 itself when there is no uid.
func authorized(w http.ResponseWriter, r *http.Request, op string) (*slog.Logger, uuid.UUID, bool) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error(op + " error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return logger, uuid.Nil, false
	}
	return logger, uid, true
}

func (s *Server) Register(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req RegisterRequest
	if err := decodeBody(r, &req); err != nil {
		logger.Error("registering error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), defaultTimeout)
	defer cancel()
	user, err := s.userService.Register(ctx, &service.RegisterRequest{
		Name:     req.Name,
		Password: req.Password,
	})
	if err != nil {
		writeServiceError(w, logger, "registering", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, map[string]any{
		"uid": user.ID.String(),
	})
	logger.Info("successful registration")
}

func (s *Server) Login(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req LoginRequest
	if err := decodeBody(r, &req); err != nil {
		logger.Error("login error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), defaultTimeout)
	defer cancel()
	user, err := s.userService.Login(ctx, req.Name, req.Password)
	if err != nil {
		writeServiceError(w, logger, "login", err)
		return
	}
	token, err := s.jwtService.GenerateToken(user)
	if err != nil {
		logger.Error("login error: generating token error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error creating token", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"uid":   user.ID.String(),
		"token": token,
	})
	logger.Info("successful login")
}

func (s *Server) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	logger, uid, ok := authorized(w, r, "account deletion")
	if !ok {
		return
	}
	var req DeleteAccountRequest
	if err := decodeBody(r, &req); err != nil || req.Password == "" {
		logger.Error("account deletion error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "password confirmation required", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), defaultTimeout)
	defer cancel()
	err := s.userService.DeleteAccount(ctx, uid, req.Password)
	if err != nil {
		writeServiceError(w, logger, "account deletion", err)
		return
	}
	httputil.WriteNoContent(w)
	logger.Info("account deleted")
}

func badBody(w http.ResponseWriter, logger *slog.Logger, op string) {
	logger.Error(op + " error: invalid request body")
	httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
}
