package service

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/google/uuid"

	errorvalues "github.com/limbo/fast800/internal/error_values"
	"github.com/limbo/fast800/internal/repository"
	"github.com/limbo/fast800/pkg/assets"
	"github.com/limbo/fast800/pkg/entity"
)

type RecipesService struct {
	repo   repository.RecipesRepositoryI
	images ImageStore
	parser RecipeParser
	clock  Clock
}

func NewRecipesService(recipesRepo repository.RecipesRepositoryI, images ImageStore, parser RecipeParser, clock Clock) *RecipesService {
	if recipesRepo == nil {
		log.Fatal("provided nil recipesRepo")
	}
	return &RecipesService{
		repo:   recipesRepo,
		images: images,
		parser: parser,
		clock:  clock,
	}
}

func (rs *RecipesService) GetRecipe(ctx context.Context, uid uuid.UUID, id string) (*entity.Recipe, error) {
	if uid == uuid.Nil {
		return nil, errorvalues.ErrNotAuthenticated
	}
	recipe, err := rs.repo.GetByID(ctx, uid, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrRecipeNotFound) {
			return nil, err
		}
		return nil, errors.New("repository error: " + err.Error())
	}
	return recipe, nil
}

func (rs *RecipesService) GetRecipes(ctx context.Context, uid uuid.UUID) ([]*entity.Recipe, error) {
	if uid == uuid.Nil {
		return nil, errorvalues.ErrNotAuthenticated
	}
	recipes, err := rs.repo.GetAllByUser(ctx, uid)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	if recipes == nil {
		recipes = []*entity.Recipe{}
	}
	return recipes, nil
}

// SaveRecipe creates the recipe when it has no id and updates it otherwise. CreatedAt survives updates.
func (rs *RecipesService) SaveRecipe(ctx context.Context, uid uuid.UUID, recipe *entity.Recipe) (*entity.Recipe, error) {
	if uid == uuid.Nil {
		return nil, errorvalues.ErrNotAuthenticated
	}
	if recipe == nil {
		return nil, errors.New("recipe is nil")
	}
	if assets.IsInline(recipe.Image) {
		return nil, errorvalues.ErrInlineImage
	}
	r := *recipe
	r.UserID = uid
	r.Name = strings.TrimSpace(r.Name)
	if r.Servings <= 0 {
		r.Servings = 1
	}
	r.Ingredients = nonNil(r.Ingredients)
	r.Instructions = nonNil(r.Instructions)
	r.Tags = nonNil(r.Tags)
	if err := validateStruct(r); err != nil {
		return nil, err
	}
	now := rs.clock.now()
	if r.ID == "" {
		r.ID = uuid.NewString()
		r.CreatedAt = now
	} else {
		existing, err := rs.repo.GetByID(ctx, uid, r.ID)
		switch {
		case err == nil:
			r.CreatedAt = existing.CreatedAt
		case errors.Is(err, errorvalues.ErrRecipeNotFound):
			r.CreatedAt = now
		default:
			return nil, errors.New("repository error: " + err.Error())
		}
	}
	r.UpdatedAt = now
	if err := rs.repo.Save(ctx, &r); err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("repository error: " + err.Error())
	}
	return &r, nil
}

func (rs *RecipesService) DeleteRecipe(ctx context.Context, uid uuid.UUID, id string) error {
	if uid == uuid.Nil {
		return errorvalues.ErrNotAuthenticated
	}
	if err := rs.repo.Delete(ctx, uid, id); err != nil {
		if errors.Is(err, errorvalues.ErrRecipeNotFound) {
			return err
		}
		return errors.New("repository error: " + err.Error())
	}
	return nil
}

// UploadRecipeImage stores the image and points the recipe at its url.
func (rs *RecipesService) UploadRecipeImage(ctx context.Context, uid uuid.UUID, id string, data []byte, contentType string) (*entity.Recipe, error) {
	recipe, err := rs.GetRecipe(ctx, uid, id)
	if err != nil {
		return nil, err
	}
	if rs.images == nil {
		return nil, errors.Join(errorvalues.ErrUpstream, errors.New("image storage is not configured"))
	}
	url, err := rs.images.Upload(ctx, uid, recipe.ID, data, contentType)
	if err != nil {
		return nil, errors.Join(errorvalues.ErrUpstream, err)
	}
	recipe.Image = url
	recipe.UpdatedAt = rs.clock.now()
	if err = rs.repo.Save(ctx, recipe); err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	return recipe, nil
}

func (rs *RecipesService) ParseRecipeText(ctx context.Context, uid uuid.UUID, text string) (*entity.Recipe, error) {
	if uid == uuid.Nil {
		return nil, errorvalues.ErrNotAuthenticated
	}
	if strings.TrimSpace(text) == "" {
		return nil, errors.Join(errorvalues.ErrValidation, errors.New("empty recipe text"))
	}
	if rs.parser == nil {
		return nil, errors.Join(errorvalues.ErrUpstream, errors.New("recipe parsing is not configured"))
	}
	draft, err := rs.parser.ParseRecipeText(ctx, text)
	if err != nil {
		return nil, errors.Join(errorvalues.ErrUpstream, err)
	}
	return recipeFromDraft(draft)
}

func (rs *RecipesService) ParseRecipeImage(ctx context.Context, uid uuid.UUID, data []byte, mimeType string) (*entity.Recipe, error) {
	if uid == uuid.Nil {
		return nil, errorvalues.ErrNotAuthenticated
	}
	if len(data) == 0 {
		return nil, errors.Join(errorvalues.ErrValidation, errors.New("empty image"))
	}
	if rs.parser == nil {
		return nil, errors.Join(errorvalues.ErrUpstream, errors.New("recipe parsing is not configured"))
	}
	draft, err := rs.parser.ParseRecipeImage(ctx, data, mimeType)
	if err != nil {
		return nil, errors.Join(errorvalues.ErrUpstream, err)
	}
	return recipeFromDraft(draft)
}

// recipeFromDraft builds an unsaved recipe. The caller reviews it and saves it through SaveRecipe.
func recipeFromDraft(d *entity.RecipeDraft) (*entity.Recipe, error) {
	if d == nil || strings.TrimSpace(d.Name) == "" {
		return nil, errors.Join(errorvalues.ErrUpstream, errorvalues.ErrMalformedParseResult)
	}
	servings := d.Servings
	if servings <= 0 {
		servings = 1
	}
	tags := []string{}
	if t := strings.TrimSpace(d.Type); t != "" {
		tags = append(tags, strings.ToLower(t))
	}
	return &entity.Recipe{
		Name:         strings.TrimSpace(d.Name),
		Calories:     d.Calories,
		Protein:      d.Protein,
		Fat:          d.Fat,
		Carbs:        d.Carbs,
		Ingredients:  nonNil(d.Ingredients),
		Instructions: nonNil(d.Instructions),
		Tags:         tags,
		Servings:     servings,
	}, nil
}
