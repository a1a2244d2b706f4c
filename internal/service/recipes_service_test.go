package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errorvalues "github.com/limbo/fast800/internal/error_values"
	"github.com/limbo/fast800/internal/service"
	"github.com/limbo/fast800/internal/service/mocks"
	"github.com/limbo/fast800/pkg/entity"
)

// 1x1 transparent png
const pngBase64 = "iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAQAAAC1HAwCAAAAC0lEQVR42mNkYAAAAAYAAjCB0C8AAAAASUVORK5CYII="

func TestSaveRecipe(t *testing.T) {
	ctx := context.Background()
	repo := newMemRecipes()
	rs := service.NewRecipesService(repo, nil, nil, fixedClock())

	created, err := rs.SaveRecipe(ctx, userID, &entity.Recipe{Name: " Chilli ", Calories: 450})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Chilli", created.Name)
	assert.Equal(t, 1.0, created.Servings)
	assert.Equal(t, userID, created.UserID)
	assert.NotNil(t, created.Ingredients)
	assert.True(t, created.CreatedAt.Equal(fixedNow))

	later := fixedClock()
	later.Now = func() time.Time { return fixedNow.Add(time.Hour) }
	rs = service.NewRecipesService(repo, nil, nil, later)
	update := *created
	update.Calories = 500
	update.CreatedAt = time.Time{}
	updated, err := rs.SaveRecipe(ctx, userID, &update)
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.True(t, updated.CreatedAt.Equal(fixedNow))
	assert.True(t, updated.UpdatedAt.Equal(fixedNow.Add(time.Hour)))
	assert.Equal(t, 500.0, repo.recipes[created.ID].Calories)
}

func TestSaveRecipeRejects(t *testing.T) {
	ctx := context.Background()
	testCases := []struct {
		Desc        string
		Recipe      entity.Recipe
		ExpectedErr error
	}{
		{
			Desc:        "data url image",
			Recipe:      entity.Recipe{Name: "Soup", Image: "data:image/png;base64," + pngBase64},
			ExpectedErr: errorvalues.ErrInlineImage,
		},
		{
			Desc:        "raw base64 image",
			Recipe:      entity.Recipe{Name: "Soup", Image: pngBase64},
			ExpectedErr: errorvalues.ErrInlineImage,
		},
		{
			Desc:        "missing name",
			Recipe:      entity.Recipe{Name: "  ", Calories: 100},
			ExpectedErr: errorvalues.ErrValidation,
		},
		{
			Desc:        "negative calories",
			Recipe:      entity.Recipe{Name: "Soup", Calories: -1},
			ExpectedErr: errorvalues.ErrValidation,
		},
		{
			Desc:        "image that isn't a url",
			Recipe:      entity.Recipe{Name: "Soup", Image: "ftp:pic"},
			ExpectedErr: errorvalues.ErrValidation,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			repo := newMemRecipes()
			rs := service.NewRecipesService(repo, nil, nil, fixedClock())
			_, err := rs.SaveRecipe(ctx, userID, &tc.Recipe)
			assert.ErrorIs(t, err, tc.ExpectedErr)
			assert.Empty(t, repo.recipes)
		})
	}
}

func TestRecipeLookupAndDelete(t *testing.T) {
	ctx := context.Background()
	repo := newMemRecipes(libraryRecipes()...)
	rs := service.NewRecipesService(repo, nil, nil, fixedClock())

	all, err := rs.GetRecipes(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	r, err := rs.GetRecipe(ctx, userID, "r1")
	require.NoError(t, err)
	assert.Equal(t, "Shakshuka", r.Name)

	require.NoError(t, rs.DeleteRecipe(ctx, userID, "r1"))
	_, err = rs.GetRecipe(ctx, userID, "r1")
	assert.ErrorIs(t, err, errorvalues.ErrRecipeNotFound)
	assert.ErrorIs(t, rs.DeleteRecipe(ctx, userID, "r1"), errorvalues.ErrRecipeNotFound)
}

func TestUploadRecipeImage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	images := mocks.NewMockImageStore(ctrl)
	repo := newMemRecipes(libraryRecipes()...)
	rs := service.NewRecipesService(repo, images, nil, fixedClock())
	ctx := context.Background()
	data := []byte("png bytes")

	images.EXPECT().Upload(gomock.Any(), userID, "r2", data, "image/png").Return("/assets/u/r2.png", nil)
	r, err := rs.UploadRecipeImage(ctx, userID, "r2", data, "image/png")
	require.NoError(t, err)
	assert.Equal(t, "/assets/u/r2.png", r.Image)
	assert.Equal(t, "/assets/u/r2.png", repo.recipes["r2"].Image)

	images.EXPECT().Upload(gomock.Any(), userID, "r1", data, "image/png").Return("", errors.New("disk full"))
	_, err = rs.UploadRecipeImage(ctx, userID, "r1", data, "image/png")
	assert.ErrorIs(t, err, errorvalues.ErrUpstream)
	assert.Equal(t, "https://cdn.example.com/r1.jpg", repo.recipes["r1"].Image)
}

func TestParseRecipe(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	parser := mocks.NewMockRecipeParser(ctrl)
	repo := newMemRecipes()
	rs := service.NewRecipesService(repo, nil, parser, fixedClock())
	ctx := context.Background()

	testCases := []struct {
		Desc         string
		MockPrepFunc func()
		Call         func() (*entity.Recipe, error)
		ExpectedErr  error
		ExpectedName string
	}{
		{
			Desc: "text draft",
			MockPrepFunc: func() {
				parser.EXPECT().ParseRecipeText(gomock.Any(), "soup recipe").Return(&entity.RecipeDraft{
					Name: "Tomato soup", Calories: 220, Ingredients: []string{"4 tomatoes"}, Type: "Lunch",
				}, nil)
			},
			Call:         func() (*entity.Recipe, error) { return rs.ParseRecipeText(ctx, userID, "soup recipe") },
			ExpectedName: "Tomato soup",
		},
		{
			Desc: "image draft",
			MockPrepFunc: func() {
				parser.EXPECT().ParseRecipeImage(gomock.Any(), []byte{1, 2}, "image/jpeg").Return(&entity.RecipeDraft{Name: "Salad"}, nil)
			},
			Call:         func() (*entity.Recipe, error) { return rs.ParseRecipeImage(ctx, userID, []byte{1, 2}, "image/jpeg") },
			ExpectedName: "Salad",
		},
		{
			Desc: "draft without name",
			MockPrepFunc: func() {
				parser.EXPECT().ParseRecipeText(gomock.Any(), "???").Return(&entity.RecipeDraft{Calories: 10}, nil)
			},
			Call:        func() (*entity.Recipe, error) { return rs.ParseRecipeText(ctx, userID, "???") },
			ExpectedErr: errorvalues.ErrMalformedParseResult,
		},
		{
			Desc: "parser down",
			MockPrepFunc: func() {
				parser.EXPECT().ParseRecipeText(gomock.Any(), "stew").Return(nil, errors.New("503"))
			},
			Call:        func() (*entity.Recipe, error) { return rs.ParseRecipeText(ctx, userID, "stew") },
			ExpectedErr: errorvalues.ErrUpstream,
		},
		{
			Desc:         "empty text",
			MockPrepFunc: func() {},
			Call:         func() (*entity.Recipe, error) { return rs.ParseRecipeText(ctx, userID, "") },
			ExpectedErr:  errorvalues.ErrValidation,
		},
		{
			Desc:         "empty image",
			MockPrepFunc: func() {},
			Call:         func() (*entity.Recipe, error) { return rs.ParseRecipeImage(ctx, userID, nil, "image/png") },
			ExpectedErr:  errorvalues.ErrValidation,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			r, err := tc.Call()
			if tc.ExpectedErr != nil {
				assert.ErrorIs(t, err, tc.ExpectedErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.ExpectedName, r.Name)
			assert.Empty(t, r.ID)
			assert.Equal(t, 1.0, r.Servings)
		})
	}
	// drafts are never persisted
	assert.Empty(t, repo.recipes)
}
