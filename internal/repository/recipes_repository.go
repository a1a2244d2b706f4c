package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	errorvalues "github.com/limbo/fast800/internal/error_values"
	"github.com/limbo/fast800/pkg/entity"
)

const recipeColumns = `id, user_id, name, description, calories, protein, fat, carbs, ingredients, instructions, tags, servings, image, is_favorite, created_at, updated_at`

type RecipesRepository struct {
	conn PgConnection
}

func NewRecipesRepo(conn PgConnection) *RecipesRepository {
	mustPing(conn, "recipesRepo")
	return &RecipesRepository{
		conn: conn,
	}
}

func (rr *RecipesRepository) Save(ctx context.Context, recipe *entity.Recipe) error {
	if recipe == nil {
		return errors.New("recipe is nil")
	}
	ingredients, err := encodeStrings(recipe.Ingredients)
	if err != nil {
		return errors.New("encoding ingredients error: " + err.Error())
	}
	instructions, err := encodeStrings(recipe.Instructions)
	if err != nil {
		return errors.New("encoding instructions error: " + err.Error())
	}
	tags, err := encodeStrings(recipe.Tags)
	if err != nil {
		return errors.New("encoding tags error: " + err.Error())
	}
	_, err = rr.conn.Exec(ctx, `INSERT INTO recipes (`+recipeColumns+`)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
	ON CONFLICT (user_id, id) DO UPDATE SET name = EXCLUDED.name, description = EXCLUDED.description,
	calories = EXCLUDED.calories, protein = EXCLUDED.protein, fat = EXCLUDED.fat, carbs = EXCLUDED.carbs,
	ingredients = EXCLUDED.ingredients, instructions = EXCLUDED.instructions, tags = EXCLUDED.tags,
	servings = EXCLUDED.servings, image = EXCLUDED.image, is_favorite = EXCLUDED.is_favorite, updated_at = EXCLUDED.updated_at;`,
		recipe.ID, recipe.UserID, recipe.Name, recipe.Description,
		recipe.Calories, recipe.Protein, recipe.Fat, recipe.Carbs,
		ingredients, instructions, tags,
		recipe.Servings, recipe.Image, recipe.IsFavorite, recipe.CreatedAt, recipe.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return errorvalues.ErrUserNotFound
		}
		return errors.New("saving recipe db error: " + err.Error())
	}
	return nil
}

func (rr *RecipesRepository) GetByID(ctx context.Context, uid uuid.UUID, id string) (*entity.Recipe, error) {
	row := rr.conn.QueryRow(ctx, `SELECT `+recipeColumns+` FROM recipes WHERE user_id = $1 AND id = $2;`, uid, id)
	recipe, err := scanRecipe(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrRecipeNotFound
		}
		return nil, errors.New("getting recipe error: " + err.Error())
	}
	return recipe, nil
}

func (rr *RecipesRepository) GetAllByUser(ctx context.Context, uid uuid.UUID) ([]*entity.Recipe, error) {
	rows, err := rr.conn.Query(ctx, `SELECT `+recipeColumns+` FROM recipes WHERE user_id = $1 ORDER BY name;`, uid)
	if err != nil {
		return nil, errors.New("listing recipes error: " + err.Error())
	}
	defer rows.Close()
	recipes := make([]*entity.Recipe, 0)
	for rows.Next() {
		recipe, err := scanRecipe(rows)
		if err != nil {
			return nil, errors.New("scanning recipe error: " + err.Error())
		}
		recipes = append(recipes, recipe)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("listing recipes error: " + err.Error())
	}
	return recipes, nil
}

func (rr *RecipesRepository) Delete(ctx context.Context, uid uuid.UUID, id string) error {
	ct, err := rr.conn.Exec(ctx, `DELETE FROM recipes WHERE user_id = $1 AND id = $2;`, uid, id)
	if err != nil {
		return errors.New("deleting recipe error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrRecipeNotFound
	}
	return nil
}

func scanRecipe(row pgx.Row) (*entity.Recipe, error) {
	var (
		r                                 entity.Recipe
		ingredients, instructions, tagsJS []byte
		err                               error
	)
	err = row.Scan(&r.ID, &r.UserID, &r.Name, &r.Description,
		&r.Calories, &r.Protein, &r.Fat, &r.Carbs,
		&ingredients, &instructions, &tagsJS,
		&r.Servings, &r.Image, &r.IsFavorite, &r.CreatedAt, &r.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if r.Ingredients, err = decodeStrings(ingredients); err != nil {
		return nil, err
	}
	if r.Instructions, err = decodeStrings(instructions); err != nil {
		return nil, err
	}
	if r.Tags, err = decodeStrings(tagsJS); err != nil {
		return nil, err
	}
	return &r, nil
}
