package repository

import (
	"context"
	"fmt"

	"github.com/magabrotheeeer/foodgram/internal/models"
)

const recipeColumns = `r.id, r.author_id, r.name, r.image, r.text, r.cooking_time, r.created_at`

func scanRecipe(row rowScanner) (*models.Recipe, error) {
	var r models.Recipe
	if err := row.Scan(&r.ID, &r.AuthorID, &r.Name, &r.Image, &r.Text,
		&r.CookingTime, &r.CreatedAt); err != nil {
		return nil, err
	}
	return &r, nil
}

// CreateRecipe вставляет новый рецепт и возвращает его ID.
func (s *Storage) CreateRecipe(ctx context.Context, recipe models.Recipe) (int64, error) {
	const op = "storage.CreateRecipe"
	if err := checkCtx(ctx, op); err != nil {
		return 0, err
	}

	query := `INSERT INTO recipes (author_id, name, image, text, cooking_time)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING id`
	var newID int64
	if err := s.conn(ctx).QueryRowContext(ctx, query,
		recipe.AuthorID, recipe.Name, recipe.Image, recipe.Text, recipe.CookingTime).Scan(&newID); err != nil {
		return 0, fmt.Errorf("%s: %w", op, mapError(err))
	}
	return newID, nil
}

// GetRecipe возвращает рецепт по ID.
func (s *Storage) GetRecipe(ctx context.Context, id int64) (*models.Recipe, error) {
	const op = "storage.GetRecipe"
	if err := checkCtx(ctx, op); err != nil {
		return nil, err
	}

	query := `SELECT ` + recipeColumns + ` FROM recipes r WHERE r.id = $1`
	r, err := scanRecipe(s.conn(ctx).QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, mapError(err))
	}
	return r, nil
}

// ListRecipes возвращает рецепты, начиная с самых новых, с фильтрами по автору и тегам.
func (s *Storage) ListRecipes(ctx context.Context, filter models.RecipeFilter, limit, offset int) ([]*models.Recipe, error) {
	const op = "storage.ListRecipes"
	if err := checkCtx(ctx, op); err != nil {
		return nil, err
	}

	slugs := filter.TagSlugs
	if slugs == nil {
		slugs = []string{}
	}

	query := `SELECT ` + recipeColumns + `
			  FROM recipes r
			  WHERE ($1::bigint IS NULL OR r.author_id = $1)
			    AND (COALESCE(cardinality($2::text[]), 0) = 0 OR EXISTS (
			        SELECT 1 FROM recipe_tags rt
			        JOIN tags t ON t.id = rt.tag_id
			        WHERE rt.recipe_id = r.id AND t.slug = ANY($2)
			    ))
			  ORDER BY r.created_at DESC, r.id DESC
			  LIMIT $3 OFFSET $4`
	rows, err := s.conn(ctx).QueryContext(ctx, query, filter.AuthorID, slugs, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Recipe
	for rows.Next() {
		r, err := scanRecipe(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, r)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// UpdateRecipe обновляет поля рецепта и возвращает количество изменённых строк.
func (s *Storage) UpdateRecipe(ctx context.Context, recipe models.Recipe) (int, error) {
	const op = "storage.UpdateRecipe"
	if err := checkCtx(ctx, op); err != nil {
		return 0, err
	}

	query := `UPDATE recipes
			  SET name = $1, image = $2, text = $3, cooking_time = $4
			  WHERE id = $5`
	result, err := s.conn(ctx).ExecContext(ctx, query,
		recipe.Name, recipe.Image, recipe.Text, recipe.CookingTime, recipe.ID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, mapError(err))
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}

// RemoveRecipe удаляет рецепт вместе со связями и возвращает количество удалённых строк.
func (s *Storage) RemoveRecipe(ctx context.Context, id int64) (int, error) {
	const op = "storage.RemoveRecipe"
	if err := checkCtx(ctx, op); err != nil {
		return 0, err
	}

	result, err := s.conn(ctx).ExecContext(ctx, `DELETE FROM recipes WHERE id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}

// ListRecipeIngredients возвращает ингредиенты рецепта с количеством.
func (s *Storage) ListRecipeIngredients(ctx context.Context, recipeID int64) ([]models.RecipeIngredient, error) {
	const op = "storage.ListRecipeIngredients"
	if err := checkCtx(ctx, op); err != nil {
		return nil, err
	}

	query := `SELECT i.id, i.name, mu.name, ri.amount::float8
			  FROM recipe_ingredients ri
			  JOIN ingredients i ON i.id = ri.ingredient_id
			  JOIN measurement_units mu ON mu.id = i.measurement_unit_id
			  WHERE ri.recipe_id = $1
			  ORDER BY ri.id`
	rows, err := s.conn(ctx).QueryContext(ctx, query, recipeID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	result := make([]models.RecipeIngredient, 0)
	for rows.Next() {
		var ri models.RecipeIngredient
		if err := rows.Scan(&ri.ID, &ri.Name, &ri.MeasurementUnit, &ri.Amount); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, ri)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// GetIngredientAmount возвращает количество ингредиента в рецепте.
func (s *Storage) GetIngredientAmount(ctx context.Context, recipeID, ingredientID int64) (float64, error) {
	const op = "storage.GetIngredientAmount"
	if err := checkCtx(ctx, op); err != nil {
		return 0, err
	}

	query := `SELECT amount::float8 FROM recipe_ingredients
			  WHERE recipe_id = $1 AND ingredient_id = $2`
	var amount float64
	if err := s.conn(ctx).QueryRowContext(ctx, query, recipeID, ingredientID).Scan(&amount); err != nil {
		return 0, fmt.Errorf("%s: %w", op, mapError(err))
	}
	return amount, nil
}

// RemoveRecipeIngredients удаляет все связи рецепта с ингредиентами.
func (s *Storage) RemoveRecipeIngredients(ctx context.Context, recipeID int64) (int, error) {
	const op = "storage.RemoveRecipeIngredients"
	if err := checkCtx(ctx, op); err != nil {
		return 0, err
	}

	result, err := s.conn(ctx).ExecContext(ctx, `DELETE FROM recipe_ingredients WHERE recipe_id = $1`, recipeID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}

// AddRecipeIngredient связывает рецепт с ингредиентом. Если связь уже есть,
// она остаётся без изменений.
func (s *Storage) AddRecipeIngredient(ctx context.Context, recipeID, ingredientID int64, amount float64) error {
	const op = "storage.AddRecipeIngredient"
	if err := checkCtx(ctx, op); err != nil {
		return err
	}

	query := `INSERT INTO recipe_ingredients (recipe_id, ingredient_id, amount)
			  VALUES ($1, $2, $3)
			  ON CONFLICT (recipe_id, ingredient_id) DO NOTHING`
	if _, err := s.conn(ctx).ExecContext(ctx, query, recipeID, ingredientID, amount); err != nil {
		return fmt.Errorf("%s: %w", op, mapError(err))
	}
	return nil
}

// RemoveRecipeTags удаляет все связи рецепта с тегами.
func (s *Storage) RemoveRecipeTags(ctx context.Context, recipeID int64) (int, error) {
	const op = "storage.RemoveRecipeTags"
	if err := checkCtx(ctx, op); err != nil {
		return 0, err
	}

	result, err := s.conn(ctx).ExecContext(ctx, `DELETE FROM recipe_tags WHERE recipe_id = $1`, recipeID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}

// AddRecipeTag связывает рецепт с тегом. Если связь уже есть, она остаётся без изменений.
func (s *Storage) AddRecipeTag(ctx context.Context, recipeID, tagID int64) error {
	const op = "storage.AddRecipeTag"
	if err := checkCtx(ctx, op); err != nil {
		return err
	}

	query := `INSERT INTO recipe_tags (recipe_id, tag_id)
			  VALUES ($1, $2)
			  ON CONFLICT (recipe_id, tag_id) DO NOTHING`
	if _, err := s.conn(ctx).ExecContext(ctx, query, recipeID, tagID); err != nil {
		return fmt.Errorf("%s: %w", op, mapError(err))
	}
	return nil
}

// ListRecipeTags возвращает теги рецепта.
func (s *Storage) ListRecipeTags(ctx context.Context, recipeID int64) ([]*models.Tag, error) {
	const op = "storage.ListRecipeTags"
	if err := checkCtx(ctx, op); err != nil {
		return nil, err
	}

	tags, err := s.queryTags(ctx, `SELECT t.id, t.name, t.color, t.slug
			  FROM tags t
			  JOIN recipe_tags rt ON rt.tag_id = t.id
			  WHERE rt.recipe_id = $1
			  ORDER BY t.id`, recipeID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return tags, nil
}
