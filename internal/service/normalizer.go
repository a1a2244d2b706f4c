package service

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	errorvalues "github.com/limbo/fast800/internal/error_values"
	"github.com/limbo/fast800/internal/repository"
	"github.com/limbo/fast800/pkg/entity"
)

const (
	defaultFetchLimit  = 8
	unresolvedMealName = "Recipe unavailable"
)

// Library is a snapshot of recipes keyed by id.
type Library map[string]*entity.Recipe

// Normalizer converts between the recipe-shaped meals clients work with and the compact planned meals that are stored.
type Normalizer struct {
	recipes    repository.RecipesRepositoryI
	fetchLimit int
}

func NewNormalizer(recipesRepo repository.RecipesRepositoryI) *Normalizer {
	if recipesRepo == nil {
		log.Fatal("provided nil recipesRepo")
	}
	return &Normalizer{
		recipes:    recipesRepo,
		fetchLimit: defaultFetchLimit,
	}
}

// Dehydrate keeps a library meal as a reference and snapshots everything else as a custom meal.
func Dehydrate(meal entity.Meal) entity.PlannedMeal {
	servings := meal.Servings
	if servings <= 0 {
		servings = 1
	}
	if id := libraryID(meal); id != "" {
		ref := entity.MealReference{
			RecipeID:  id,
			Servings:  servings,
			Overrides: meal.Overrides,
		}
		if meal.ID != "" && meal.ID != id {
			ref.InstanceID = meal.ID
		}
		return ref
	}
	id := meal.ID
	if id == "" {
		id = uuid.NewString()
	}
	return entity.CustomMeal{
		ID:       id,
		Name:     meal.Name,
		Calories: meal.Calories,
		Protein:  meal.Protein,
		Fat:      meal.Fat,
		Carbs:    meal.Carbs,
		Tags:     meal.Tags,
		Servings: servings,
	}
}

// libraryID returns the recipe a meal was taken from, or "" for custom meals.
// Any meal not flagged as custom that carries a recipe id, or failing that its own id, is a library meal.
func libraryID(meal entity.Meal) string {
	if meal.Source == entity.MealSourceCustom {
		return ""
	}
	if meal.RecipeID != "" {
		return meal.RecipeID
	}
	return meal.ID
}

// TagUntagged flags meals without a source. Those whose identity is in lib become library meals,
// the rest become custom so that their own fields are kept as a snapshot.
func TagUntagged(lib Library, meals []entity.Meal) []entity.Meal {
	out := make([]entity.Meal, len(meals))
	for i, m := range meals {
		if m.Source == "" {
			if _, ok := lib[libraryID(m)]; ok {
				m.Source = entity.MealSourceLibrary
			} else {
				m.Source = entity.MealSourceCustom
			}
		}
		out[i] = m
	}
	return out
}

// Hydrate resolves every reference against the library. Each distinct recipe is fetched once, and
// a reference that can't be resolved degrades to its own fields instead of failing the batch.
func (n *Normalizer) Hydrate(ctx context.Context, uid uuid.UUID, planned []entity.PlannedMeal) []entity.Meal {
	ids := make([]string, 0)
	for _, p := range planned {
		if ref, ok := p.(entity.MealReference); ok {
			ids = append(ids, ref.RecipeID)
		}
	}
	return HydrateWithLibrary(n.fetch(ctx, uid, ids), planned)
}

// HydrateCached fills partially stored recipe-shaped meals. Complete meals and custom meals are returned as is.
func (n *Normalizer) HydrateCached(ctx context.Context, uid uuid.UUID, meals []entity.Meal) []entity.Meal {
	ids := make([]string, 0)
	for _, m := range meals {
		if needsResolving(m) {
			ids = append(ids, libraryID(m))
		}
	}
	return HydrateCachedWithLibrary(n.fetch(ctx, uid, ids), meals)
}

// Library loads the whole recipe library of a user in one call.
func (n *Normalizer) Library(ctx context.Context, uid uuid.UUID) (Library, error) {
	recipes, err := n.recipes.GetAllByUser(ctx, uid)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	lib := make(Library, len(recipes))
	for _, r := range recipes {
		lib[r.ID] = r
	}
	return lib, nil
}

func (n *Normalizer) fetch(ctx context.Context, uid uuid.UUID, ids []string) Library {
	lib := make(Library)
	seen := make(map[string]struct{}, len(ids))
	var (
		mu sync.Mutex
		g  errgroup.Group
	)
	g.SetLimit(n.fetchLimit)
	for _, id := range ids {
		if _, ok := seen[id]; ok || id == "" {
			continue
		}
		seen[id] = struct{}{}
		g.Go(func() error {
			recipe, err := n.recipes.GetByID(ctx, uid, id)
			if err != nil {
				if !errors.Is(err, errorvalues.ErrRecipeNotFound) {
					slog.Warn("fetching recipe for plan failed", slog.String("recipe_id", id), slog.String("error", err.Error()))
				}
				return nil
			}
			mu.Lock()
			lib[id] = recipe
			mu.Unlock()
			return nil
		})
	}
	g.Wait()
	return lib
}

// HydrateWithLibrary resolves planned meals against an already loaded library.
func HydrateWithLibrary(lib Library, planned []entity.PlannedMeal) []entity.Meal {
	meals := make([]entity.Meal, 0, len(planned))
	for _, p := range planned {
		switch v := p.(type) {
		case entity.MealReference:
			recipe, ok := lib[v.RecipeID]
			if !ok {
				slog.Warn("plan references a missing recipe", slog.String("recipe_id", v.RecipeID))
				meals = append(meals, unresolvedMeal(v))
				continue
			}
			meal := mealFromRecipe(recipe, v.Servings, v.Overrides)
			meal.ID = v.MealID()
			meals = append(meals, meal)
		case entity.CustomMeal:
			meals = append(meals, entity.Meal{
				ID:           v.ID,
				Source:       entity.MealSourceCustom,
				Name:         v.Name,
				Calories:     v.Calories,
				Protein:      v.Protein,
				Fat:          v.Fat,
				Carbs:        v.Carbs,
				Ingredients:  []string{},
				Instructions: []string{},
				Tags:         nonNil(v.Tags),
				Servings:     v.Servings,
			})
		}
	}
	return meals
}

// HydrateCachedWithLibrary merges partial meals with library records. Stored instance fields win.
func HydrateCachedWithLibrary(lib Library, meals []entity.Meal) []entity.Meal {
	out := make([]entity.Meal, 0, len(meals))
	for _, m := range meals {
		if !needsResolving(m) {
			out = append(out, m)
			continue
		}
		id := libraryID(m)
		recipe, ok := lib[id]
		if !ok && m.Source == "" {
			// untagged and unknown to the library: a custom entry
			m.Source = entity.MealSourceCustom
			m.Ingredients = nonNil(m.Ingredients)
			m.Instructions = nonNil(m.Instructions)
			m.Tags = nonNil(m.Tags)
			out = append(out, m)
			continue
		}
		if !ok {
			slog.Warn("cached meal references a missing recipe", slog.String("recipe_id", id))
			m.RecipeID = id
			m.Source = entity.MealSourceLibrary
			m.Unresolved = true
			m.Ingredients = nonNil(m.Ingredients)
			m.Instructions = nonNil(m.Instructions)
			m.Tags = nonNil(m.Tags)
			out = append(out, m)
			continue
		}
		merged := mealFromRecipe(recipe, m.Servings, m.Overrides)
		if m.ID != "" {
			merged.ID = m.ID
		}
		if m.Name != "" {
			merged.Name = m.Name
		}
		if m.Description != "" {
			merged.Description = m.Description
		}
		if m.Calories != 0 {
			merged.Calories = m.Calories
		}
		if m.Protein != 0 {
			merged.Protein = m.Protein
		}
		if m.Fat != 0 {
			merged.Fat = m.Fat
		}
		if m.Carbs != 0 {
			merged.Carbs = m.Carbs
		}
		if len(m.Tags) > 0 {
			merged.Tags = m.Tags
		}
		if m.Image != "" {
			merged.Image = m.Image
		}
		if len(m.Ingredients) > 0 {
			merged.Ingredients = m.Ingredients
		}
		if len(m.Instructions) > 0 {
			merged.Instructions = m.Instructions
		}
		out = append(out, merged)
	}
	return out
}

func needsResolving(m entity.Meal) bool {
	if len(m.Ingredients) > 0 && len(m.Instructions) > 0 {
		return false
	}
	return libraryID(m) != ""
}

func mealFromRecipe(r *entity.Recipe, servings float64, overrides *entity.MealOverrides) entity.Meal {
	if servings <= 0 {
		servings = 1
	}
	meal := entity.Meal{
		ID:           r.ID,
		RecipeID:     r.ID,
		Source:       entity.MealSourceLibrary,
		Name:         r.Name,
		Description:  r.Description,
		Calories:     r.Calories,
		Protein:      r.Protein,
		Fat:          r.Fat,
		Carbs:        r.Carbs,
		Ingredients:  nonNil(r.Ingredients),
		Instructions: nonNil(r.Instructions),
		Tags:         nonNil(r.Tags),
		Servings:     servings,
		Image:        r.Image,
		Overrides:    overrides,
	}
	applyOverrides(&meal, overrides)
	return meal
}

func unresolvedMeal(ref entity.MealReference) entity.Meal {
	meal := entity.Meal{
		ID:           ref.MealID(),
		RecipeID:     ref.RecipeID,
		Source:       entity.MealSourceLibrary,
		Name:         unresolvedMealName,
		Ingredients:  []string{},
		Instructions: []string{},
		Tags:         []string{},
		Servings:     ref.Servings,
		Overrides:    ref.Overrides,
		Unresolved:   true,
	}
	applyOverrides(&meal, ref.Overrides)
	return meal
}

func applyOverrides(meal *entity.Meal, o *entity.MealOverrides) {
	if o == nil {
		return
	}
	if o.Name != nil {
		meal.Name = *o.Name
	}
	if o.Calories != nil {
		meal.Calories = *o.Calories
	}
	if o.Protein != nil {
		meal.Protein = *o.Protein
	}
	if o.Fat != nil {
		meal.Fat = *o.Fat
	}
	if o.Carbs != nil {
		meal.Carbs = *o.Carbs
	}
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
