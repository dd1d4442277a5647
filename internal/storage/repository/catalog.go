package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/magabrotheeeer/foodgram/internal/models"
)

// CreateMeasurementUnit возвращает ID единицы измерения с таким названием,
// создавая её при отсутствии.
func (s *Storage) CreateMeasurementUnit(ctx context.Context, name string) (int64, error) {
	const op = "storage.CreateMeasurementUnit"
	if err := checkCtx(ctx, op); err != nil {
		return 0, err
	}

	query := `WITH inserted AS (
			      INSERT INTO measurement_units (name) VALUES ($1)
			      ON CONFLICT (name) DO NOTHING
			      RETURNING id
			  )
			  SELECT id FROM inserted
			  UNION ALL
			  SELECT id FROM measurement_units WHERE name = $1
			  LIMIT 1`
	var id int64
	if err := s.conn(ctx).QueryRowContext(ctx, query, name).Scan(&id); err != nil {
		return 0, fmt.Errorf("%s: %w", op, mapError(err))
	}
	return id, nil
}

// CreateIngredient создаёт ингредиент и возвращает его ID.
func (s *Storage) CreateIngredient(ctx context.Context, name string, unitID int64) (int64, error) {
	const op = "storage.CreateIngredient"
	if err := checkCtx(ctx, op); err != nil {
		return 0, err
	}

	query := `INSERT INTO ingredients (name, measurement_unit_id)
			  VALUES ($1, $2)
			  RETURNING id`
	var id int64
	if err := s.conn(ctx).QueryRowContext(ctx, query, name, unitID).Scan(&id); err != nil {
		return 0, fmt.Errorf("%s: %w", op, mapError(err))
	}
	return id, nil
}

// GetIngredient возвращает ингредиент по ID.
func (s *Storage) GetIngredient(ctx context.Context, id int64) (*models.Ingredient, error) {
	const op = "storage.GetIngredient"
	if err := checkCtx(ctx, op); err != nil {
		return nil, err
	}

	query := `SELECT i.id, i.name, mu.name
			  FROM ingredients i
			  JOIN measurement_units mu ON mu.id = i.measurement_unit_id
			  WHERE i.id = $1`
	var ing models.Ingredient
	if err := s.conn(ctx).QueryRowContext(ctx, query, id).
		Scan(&ing.ID, &ing.Name, &ing.MeasurementUnit); err != nil {
		return nil, fmt.Errorf("%s: %w", op, mapError(err))
	}
	return &ing, nil
}

// ListIngredients возвращает все ингредиенты; при непустом namePrefix
// только те, чьё название начинается с него (без учёта регистра).
func (s *Storage) ListIngredients(ctx context.Context, namePrefix string) ([]*models.Ingredient, error) {
	const op = "storage.ListIngredients"
	if err := checkCtx(ctx, op); err != nil {
		return nil, err
	}

	query := `SELECT i.id, i.name, mu.name
			  FROM ingredients i
			  JOIN measurement_units mu ON mu.id = i.measurement_unit_id
			  WHERE $1 = '' OR i.name ILIKE $2
			  ORDER BY i.name`
	rows, err := s.conn(ctx).QueryContext(ctx, query, namePrefix, likePrefix(namePrefix))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	result := make([]*models.Ingredient, 0)
	for rows.Next() {
		var ing models.Ingredient
		if err := rows.Scan(&ing.ID, &ing.Name, &ing.MeasurementUnit); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &ing)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// ListIngredientIDs возвращает ID всех ингредиентов.
func (s *Storage) ListIngredientIDs(ctx context.Context) ([]int64, error) {
	const op = "storage.ListIngredientIDs"
	if err := checkCtx(ctx, op); err != nil {
		return nil, err
	}
	ids, err := s.listIDs(ctx, `SELECT id FROM ingredients ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return ids, nil
}

// CreateTag создаёт тег и возвращает его ID.
func (s *Storage) CreateTag(ctx context.Context, tag models.Tag) (int64, error) {
	const op = "storage.CreateTag"
	if err := checkCtx(ctx, op); err != nil {
		return 0, err
	}

	query := `INSERT INTO tags (name, color, slug)
			  VALUES ($1, $2, $3)
			  RETURNING id`
	var id int64
	if err := s.conn(ctx).QueryRowContext(ctx, query, tag.Name, tag.Color, tag.Slug).Scan(&id); err != nil {
		return 0, fmt.Errorf("%s: %w", op, mapError(err))
	}
	return id, nil
}

// GetTag возвращает тег по ID.
func (s *Storage) GetTag(ctx context.Context, id int64) (*models.Tag, error) {
	const op = "storage.GetTag"
	if err := checkCtx(ctx, op); err != nil {
		return nil, err
	}

	query := `SELECT id, name, color, slug FROM tags WHERE id = $1`
	var t models.Tag
	if err := s.conn(ctx).QueryRowContext(ctx, query, id).
		Scan(&t.ID, &t.Name, &t.Color, &t.Slug); err != nil {
		return nil, fmt.Errorf("%s: %w", op, mapError(err))
	}
	return &t, nil
}

// ListTags возвращает все теги.
func (s *Storage) ListTags(ctx context.Context) ([]*models.Tag, error) {
	const op = "storage.ListTags"
	if err := checkCtx(ctx, op); err != nil {
		return nil, err
	}

	tags, err := s.queryTags(ctx, `SELECT id, name, color, slug FROM tags ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return tags, nil
}

// ListTagIDs возвращает ID всех тегов.
func (s *Storage) ListTagIDs(ctx context.Context) ([]int64, error) {
	const op = "storage.ListTagIDs"
	if err := checkCtx(ctx, op); err != nil {
		return nil, err
	}
	ids, err := s.listIDs(ctx, `SELECT id FROM tags ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return ids, nil
}

func (s *Storage) queryTags(ctx context.Context, query string, args ...any) ([]*models.Tag, error) {
	rows, err := s.conn(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Tag
	for rows.Next() {
		var t models.Tag
		if err := rows.Scan(&t.ID, &t.Name, &t.Color, &t.Slug); err != nil {
			return nil, err
		}
		result = append(result, &t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// likePrefix строит шаблон LIKE "начинается с prefix"; % и _ в prefix
// сравниваются буквально.
func likePrefix(prefix string) string {
	return likeEscaper.Replace(prefix) + "%"
}
