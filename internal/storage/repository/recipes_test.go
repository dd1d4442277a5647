package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/foodgram/internal/models"
)

func TestStorage_RecipeAssociations(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	ctx := context.Background()
	factory := NewTestDataFactory(storage)
	author := factory.CreateUser(t)
	recipeID := factory.CreateRecipe(t, author.ID, "borsch")
	beet := factory.CreateIngredient(t, "Свёкла")
	potato := factory.CreateIngredient(t, "Картофель")
	breakfast := factory.CreateTag(t, "breakfast", "#E26C2D")
	lunch := factory.CreateTag(t, "lunch", "#49B64E")

	require.NoError(t, storage.AddRecipeIngredient(ctx, recipeID, beet, 200))
	require.NoError(t, storage.AddRecipeIngredient(ctx, recipeID, potato, 12.5))
	require.NoError(t, storage.AddRecipeTag(ctx, recipeID, breakfast))
	require.NoError(t, storage.AddRecipeTag(ctx, recipeID, lunch))

	t.Run("links are listed", func(t *testing.T) {
		ings, err := storage.ListRecipeIngredients(ctx, recipeID)
		require.NoError(t, err)
		require.Len(t, ings, 2)
		assert.Equal(t, "Свёкла", ings[0].Name)
		assert.Equal(t, "г", ings[0].MeasurementUnit)

		tags, err := storage.ListRecipeTags(ctx, recipeID)
		require.NoError(t, err)
		assert.Len(t, tags, 2)
	})

	t.Run("amount", func(t *testing.T) {
		amount, err := storage.GetIngredientAmount(ctx, recipeID, potato)
		require.NoError(t, err)
		assert.InDelta(t, 12.5, amount, 0.001)

		_, err = storage.GetIngredientAmount(ctx, recipeID, 999999)
		require.ErrorIs(t, err, models.ErrNotFound)
	})

	t.Run("repeated link keeps single row", func(t *testing.T) {
		require.NoError(t, storage.AddRecipeTag(ctx, recipeID, lunch))
		tags, err := storage.ListRecipeTags(ctx, recipeID)
		require.NoError(t, err)
		assert.Len(t, tags, 2)
	})

	t.Run("amount outside column", func(t *testing.T) {
		salt := factory.CreateIngredient(t, "Соль")
		for _, amount := range []float64{0.004, 999.996} {
			err := storage.AddRecipeIngredient(ctx, recipeID, salt, amount)
			require.ErrorIs(t, err, models.ErrInvalidAmount, "amount %v", amount)
		}
	})

	t.Run("unknown ingredient", func(t *testing.T) {
		err := storage.AddRecipeIngredient(ctx, recipeID, 999999, 1)
		require.ErrorIs(t, err, models.ErrNotFound)
	})

	t.Run("remove links", func(t *testing.T) {
		n, err := storage.RemoveRecipeIngredients(ctx, recipeID)
		require.NoError(t, err)
		assert.Equal(t, 2, n)
		n, err = storage.RemoveRecipeTags(ctx, recipeID)
		require.NoError(t, err)
		assert.Equal(t, 2, n)

		ings, err := storage.ListRecipeIngredients(ctx, recipeID)
		require.NoError(t, err)
		assert.Empty(t, ings)
	})
}

func TestStorage_ListRecipes(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	ctx := context.Background()
	factory := NewTestDataFactory(storage)
	alice := factory.CreateUser(t)
	bob := factory.CreateUser(t)
	breakfast := factory.CreateTag(t, "breakfast", "#E26C2D")
	dinner := factory.CreateTag(t, "dinner", "#8775D2")

	first := factory.CreateRecipe(t, alice.ID, "omelette")
	second := factory.CreateRecipe(t, alice.ID, "steak")
	third := factory.CreateRecipe(t, bob.ID, "porridge")
	require.NoError(t, storage.AddRecipeTag(ctx, first, breakfast))
	require.NoError(t, storage.AddRecipeTag(ctx, second, dinner))
	require.NoError(t, storage.AddRecipeTag(ctx, third, breakfast))

	tests := []struct {
		name    string
		filter  models.RecipeFilter
		limit   int
		wantIDs []int64
	}{
		{name: "all newest first", limit: 10, wantIDs: []int64{third, second, first}},
		{name: "by author", filter: models.RecipeFilter{AuthorID: &alice.ID}, limit: 10, wantIDs: []int64{second, first}},
		{name: "by tag", filter: models.RecipeFilter{TagSlugs: []string{"breakfast"}}, limit: 10, wantIDs: []int64{third, first}},
		{
			name:    "author and tag",
			filter:  models.RecipeFilter{AuthorID: &alice.ID, TagSlugs: []string{"breakfast", "dinner"}},
			limit:   10,
			wantIDs: []int64{second, first},
		},
		{name: "unknown tag", filter: models.RecipeFilter{TagSlugs: []string{"brunch"}}, limit: 10},
		{name: "limited", limit: 1, wantIDs: []int64{third}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := storage.ListRecipes(ctx, tt.filter, tt.limit, 0)
			require.NoError(t, err)
			ids := make([]int64, 0, len(got))
			for _, r := range got {
				ids = append(ids, r.ID)
			}
			if tt.wantIDs == nil {
				assert.Empty(t, ids)
				return
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestStorage_UpdateAndRemoveRecipe(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	ctx := context.Background()
	factory := NewTestDataFactory(storage)
	author := factory.CreateUser(t)
	id := factory.CreateRecipe(t, author.ID, "salad")
	tag := factory.CreateTag(t, "lunch", "#49B64E")
	require.NoError(t, storage.AddRecipeTag(ctx, id, tag))

	r, err := storage.GetRecipe(ctx, id)
	require.NoError(t, err)
	r.Name = "greek salad"
	r.CookingTime = 10
	n, err := storage.UpdateRecipe(ctx, *r)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	got, err := storage.GetRecipe(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "greek salad", got.Name)
	assert.Equal(t, 10, got.CookingTime)

	n, err = storage.RemoveRecipe(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	_, err = storage.GetRecipe(ctx, id)
	require.ErrorIs(t, err, models.ErrNotFound)
	tags, err := storage.ListRecipeTags(ctx, id)
	require.NoError(t, err)
	assert.Empty(t, tags)
}

func TestStorage_InTxRollback(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	ctx := context.Background()
	factory := NewTestDataFactory(storage)
	author := factory.CreateUser(t)
	ing := factory.CreateIngredient(t, "Мука")

	errBoom := errors.New("boom")
	err := storage.InTx(ctx, func(ctx context.Context) error {
		id, err := storage.CreateRecipe(ctx, models.Recipe{
			AuthorID: author.ID, Name: "bread", Image: "x.png", Text: "t", CookingTime: 60,
		})
		if err != nil {
			return err
		}
		if err := storage.AddRecipeIngredient(ctx, id, ing, 500); err != nil {
			return err
		}
		return errBoom
	})
	require.ErrorIs(t, err, errBoom)

	recipes, err := storage.ListRecipes(ctx, models.RecipeFilter{}, 10, 0)
	require.NoError(t, err)
	assert.Empty(t, recipes)

	var links int
	require.NoError(t, storage.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM recipe_ingredients`).Scan(&links))
	assert.Zero(t, links)
}
