package api

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"github.com/limbo/fast800/pkg/entity"
	"github.com/limbo/fast800/pkg/httputil"
)

const maxImageSize = 10 << 20

var errNotImage = errors.New("uploaded file isn't an image")

type ParseTextRequest struct {
	Text string `json:"text"`
}

// readImage takes the "image" field of a multipart form and sniffs its real type.
func readImage(w http.ResponseWriter, r *http.Request) ([]byte, string, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxImageSize+1024)
	if err := r.ParseMultipartForm(maxImageSize); err != nil {
		return nil, "", err
	}
	file, _, err := r.FormFile("image")
	if err != nil {
		return nil, "", err
	}
	defer file.Close()
	data, err := io.ReadAll(io.LimitReader(file, maxImageSize+1))
	if err != nil {
		return nil, "", err
	}
	if len(data) == 0 || len(data) > maxImageSize {
		return nil, "", errors.New("image is empty or too large")
	}
	mt := mimetype.Detect(data).String()
	if !strings.HasPrefix(mt, "image/") {
		return nil, "", errNotImage
	}
	return data, mt, nil
}

func (s *Server) GetRecipes(w http.ResponseWriter, r *http.Request) {
	logger, uid, ok := authorized(w, r, "get recipes")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), defaultTimeout)
	defer cancel()
	recipes, err := s.recipesService.GetRecipes(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "get recipes", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, recipes)
}

func (s *Server) GetRecipe(w http.ResponseWriter, r *http.Request) {
	logger, uid, ok := authorized(w, r, "get recipe")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), defaultTimeout)
	defer cancel()
	recipe, err := s.recipesService.GetRecipe(ctx, uid, r.PathValue("id"))
	if err != nil {
		writeServiceError(w, logger, "get recipe", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, recipe)
}

// SaveRecipe serves both POST /recipes and PUT /recipes/{id}.
func (s *Server) SaveRecipe(w http.ResponseWriter, r *http.Request) {
	logger, uid, ok := authorized(w, r, "save recipe")
	if !ok {
		return
	}
	var recipe entity.Recipe
	if err := decodeBody(r, &recipe); err != nil {
		badBody(w, logger, "save recipe")
		return
	}
	status := http.StatusCreated
	if id := r.PathValue("id"); id != "" {
		recipe.ID = id
		status = http.StatusOK
	}
	ctx, cancel := context.WithTimeout(r.Context(), defaultTimeout)
	defer cancel()
	saved, err := s.recipesService.SaveRecipe(ctx, uid, &recipe)
	if err != nil {
		writeServiceError(w, logger, "save recipe", err)
		return
	}
	httputil.WriteJSONResponse(w, status, saved)
	logger.Info("recipe saved", "recipe_id", saved.ID)
}

func (s *Server) DeleteRecipe(w http.ResponseWriter, r *http.Request) {
	logger, uid, ok := authorized(w, r, "delete recipe")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), defaultTimeout)
	defer cancel()
	if err := s.recipesService.DeleteRecipe(ctx, uid, r.PathValue("id")); err != nil {
		writeServiceError(w, logger, "delete recipe", err)
		return
	}
	httputil.WriteNoContent(w)
}

func (s *Server) UploadRecipeImage(w http.ResponseWriter, r *http.Request) {
	logger, uid, ok := authorized(w, r, "upload recipe image")
	if !ok {
		return
	}
	data, contentType, err := readImage(w, r)
	if err != nil {
		logger.Error("upload recipe image error: bad upload", "error", err.Error())
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "multipart field \"image\" with an image is required", err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), defaultTimeout*3)
	defer cancel()
	recipe, err := s.recipesService.UploadRecipeImage(ctx, uid, r.PathValue("id"), data, contentType)
	if err != nil {
		writeServiceError(w, logger, "upload recipe image", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, recipe)
}

func (s *Server) ParseRecipeText(w http.ResponseWriter, r *http.Request) {
	logger, uid, ok := authorized(w, r, "parse recipe text")
	if !ok {
		return
	}
	var req ParseTextRequest
	if err := decodeBody(r, &req); err != nil {
		badBody(w, logger, "parse recipe text")
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), parserTimeout)
	defer cancel()
	draft, err := s.recipesService.ParseRecipeText(ctx, uid, req.Text)
	if err != nil {
		writeServiceError(w, logger, "parse recipe text", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, draft)
}

func (s *Server) ParseRecipeImage(w http.ResponseWriter, r *http.Request) {
	logger, uid, ok := authorized(w, r, "parse recipe image")
	if !ok {
		return
	}
	data, contentType, err := readImage(w, r)
	if err != nil {
		logger.Error("parse recipe image error: bad upload", "error", err.Error())
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "multipart field \"image\" with an image is required", err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), parserTimeout)
	defer cancel()
	draft, err := s.recipesService.ParseRecipeImage(ctx, uid, data, contentType)
	if err != nil {
		writeServiceError(w, logger, "parse recipe image", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, draft)
}
