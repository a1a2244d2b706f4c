package service

import (
	"context"
	"log"
	"log/slog"
	"sort"
	"strings"

	"github.com/google/uuid"

	errorvalues "github.com/limbo/fast800/internal/error_values"
	"github.com/limbo/fast800/pkg/entity"
)

type ShoppingService struct {
	plans  *PlansService
	parser RecipeParser
	cache  IngredientCache
}

func NewShoppingService(plans *PlansService, parser RecipeParser, cache IngredientCache) *ShoppingService {
	if plans == nil {
		log.Fatal("provided nil plans service")
	}
	if cache == nil {
		log.Fatal("provided nil ingredient cache")
	}
	return &ShoppingService{
		plans:  plans,
		parser: parser,
		cache:  cache,
	}
}

type ingredientUse struct {
	line       string
	recipeID   string
	recipeName string
}

// BuildShoppingList aggregates the ingredients of every planned meal between from and to.
func (ss *ShoppingService) BuildShoppingList(ctx context.Context, uid uuid.UUID, from, to string) ([]entity.ShoppingItem, error) {
	plans, err := ss.plans.GetDayPlansInRange(ctx, uid, from, to)
	if err != nil {
		return nil, err
	}
	dates := make([]string, 0, len(plans))
	for date := range plans {
		dates = append(dates, date)
	}
	sort.Strings(dates)
	uses := make([]ingredientUse, 0)
	for _, date := range dates {
		for _, meal := range plans[date].Meals {
			id := meal.RecipeID
			if id == "" {
				id = meal.ID
			}
			for _, line := range meal.Ingredients {
				line = strings.TrimSpace(line)
				if line == "" {
					continue
				}
				uses = append(uses, ingredientUse{line: line, recipeID: id, recipeName: meal.Name})
			}
		}
	}
	parsed := ss.parseLines(ctx, uses)
	return aggregateIngredients(uses, parsed), nil
}

// parseLines resolves every distinct line, asking the parser only for lines the cache hasn't seen.
// A batch whose result doesn't line up with its input is dropped and its lines fall back to raw items.
func (ss *ShoppingService) parseLines(ctx context.Context, uses []ingredientUse) map[string]entity.ParsedIngredient {
	out := make(map[string]entity.ParsedIngredient, len(uses))
	missing := make([]string, 0)
	for _, u := range uses {
		if _, ok := out[u.line]; ok {
			continue
		}
		if p, ok := ss.cache.Get(u.line); ok {
			out[u.line] = p
			continue
		}
		out[u.line] = rawIngredient(u.line)
		missing = append(missing, u.line)
	}
	if len(missing) == 0 || ss.parser == nil {
		return out
	}
	result, err := ss.parser.ParseIngredients(ctx, missing)
	if err != nil {
		slog.Warn("parsing ingredients failed, using raw lines", slog.String("error", err.Error()))
		return out
	}
	if len(result) != len(missing) {
		slog.Warn("discarding ingredient parse result",
			slog.String("error", errorvalues.ErrMalformedParseResult.Error()),
			slog.Int("expected", len(missing)), slog.Int("got", len(result)))
		return out
	}
	for i, line := range missing {
		p := result[i]
		p.OriginalText = line
		if strings.TrimSpace(p.Name) == "" {
			continue
		}
		ss.cache.Set(line, p)
		out[line] = p
	}
	return out
}

func rawIngredient(line string) entity.ParsedIngredient {
	return entity.ParsedIngredient{
		OriginalText: line,
		Name:         line,
		Quantity:     1,
	}
}

// aggregateIngredients sums quantities of the same ingredient in the same unit. Lists are sorted by name.
func aggregateIngredients(uses []ingredientUse, parsed map[string]entity.ParsedIngredient) []entity.ShoppingItem {
	byKey := make(map[string]*entity.ShoppingItem)
	keys := make([]string, 0)
	for _, u := range uses {
		p, ok := parsed[u.line]
		if !ok {
			p = rawIngredient(u.line)
		}
		name := strings.ToLower(strings.TrimSpace(p.Name))
		unit := strings.ToLower(strings.TrimSpace(p.Unit))
		key := name + "|" + unit
		item, ok := byKey[key]
		if !ok {
			item = &entity.ShoppingItem{Name: name, Unit: unit, Recipes: []entity.RecipeUsage{}}
			byKey[key] = item
			keys = append(keys, key)
		}
		item.TotalQuantity += p.Quantity
		found := false
		for i := range item.Recipes {
			if item.Recipes[i].ID == u.recipeID {
				item.Recipes[i].Quantity += p.Quantity
				found = true
				break
			}
		}
		if !found {
			item.Recipes = append(item.Recipes, entity.RecipeUsage{ID: u.recipeID, Name: u.recipeName, Quantity: p.Quantity})
		}
	}
	out := make([]entity.ShoppingItem, 0, len(keys))
	for _, k := range keys {
		out = append(out, *byKey[k])
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Name == out[j].Name {
			return out[i].Unit < out[j].Unit
		}
		return out[i].Name < out[j].Name
	})
	return out
}
