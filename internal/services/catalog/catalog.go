// Package catalog содержит справочники рецептов: теги и ингредиенты
// с единицами измерения.
package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/magabrotheeeer/foodgram/internal/models"
)

// Repository определяет методы хранилища для справочников.
type Repository interface {
	InTx(ctx context.Context, fn func(ctx context.Context) error) error

	CreateTag(ctx context.Context, tag models.Tag) (int64, error)
	GetTag(ctx context.Context, id int64) (*models.Tag, error)
	ListTags(ctx context.Context) ([]*models.Tag, error)
	ListTagIDs(ctx context.Context) ([]int64, error)

	CreateMeasurementUnit(ctx context.Context, name string) (int64, error)
	CreateIngredient(ctx context.Context, name string, unitID int64) (int64, error)
	GetIngredient(ctx context.Context, id int64) (*models.Ingredient, error)
	ListIngredients(ctx context.Context, namePrefix string) ([]*models.Ingredient, error)
	ListIngredientIDs(ctx context.Context) ([]int64, error)
}

// Service реализует чтение и пополнение справочников.
type Service struct {
	repo Repository
	log  *slog.Logger
}

// New создаёт новый экземпляр Service.
func New(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log,
	}
}

// ListTags возвращает все теги.
func (s *Service) ListTags(ctx context.Context) ([]*models.Tag, error) {
	const op = "services.catalog.ListTags"
	tags, err := s.repo.ListTags(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return tags, nil
}

// GetTag возвращает тег по ID.
func (s *Service) GetTag(ctx context.Context, id int64) (*models.Tag, error) {
	const op = "services.catalog.GetTag"
	tag, err := s.repo.GetTag(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return tag, nil
}

// CreateTag создаёт тег. Цвет приводится к верхнему регистру, чтобы
// уникальность не зависела от записи (#fff и #FFF считаются одним цветом).
func (s *Service) CreateTag(ctx context.Context, req models.TagRequest) (*models.Tag, error) {
	const op = "services.catalog.CreateTag"

	tag := req.Tag()
	tag.Color = strings.ToUpper(tag.Color)
	id, err := s.repo.CreateTag(ctx, tag)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	tag.ID = id

	s.log.Info("tag created", slog.Int64("id", id), slog.String("slug", tag.Slug))
	return &tag, nil
}

// AvailableTagIDs возвращает ID всех тегов.
func (s *Service) AvailableTagIDs(ctx context.Context) ([]int64, error) {
	const op = "services.catalog.AvailableTagIDs"
	ids, err := s.repo.ListTagIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return ids, nil
}

// ListIngredients возвращает ингредиенты, название которых начинается с namePrefix.
// Пустой namePrefix возвращает весь справочник.
func (s *Service) ListIngredients(ctx context.Context, namePrefix string) ([]*models.Ingredient, error) {
	const op = "services.catalog.ListIngredients"
	ings, err := s.repo.ListIngredients(ctx, strings.TrimSpace(namePrefix))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return ings, nil
}

// GetIngredient возвращает ингредиент по ID.
func (s *Service) GetIngredient(ctx context.Context, id int64) (*models.Ingredient, error) {
	const op = "services.catalog.GetIngredient"
	ing, err := s.repo.GetIngredient(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return ing, nil
}

// CreateIngredient создаёт ингредиент. Единица измерения создаётся,
// если её ещё нет.
func (s *Service) CreateIngredient(ctx context.Context, req models.IngredientRequest) (*models.Ingredient, error) {
	const op = "services.catalog.CreateIngredient"

	ing := models.Ingredient{
		Name:            strings.TrimSpace(req.Name),
		MeasurementUnit: strings.TrimSpace(req.MeasurementUnit),
	}
	err := s.repo.InTx(ctx, func(ctx context.Context) error {
		unitID, err := s.repo.CreateMeasurementUnit(ctx, ing.MeasurementUnit)
		if err != nil {
			return err
		}
		ing.ID, err = s.repo.CreateIngredient(ctx, ing.Name, unitID)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("ingredient created", slog.Int64("id", ing.ID))
	return &ing, nil
}

// AvailableIngredientIDs возвращает ID всех ингредиентов.
func (s *Service) AvailableIngredientIDs(ctx context.Context) ([]int64, error) {
	const op = "services.catalog.AvailableIngredientIDs"
	ids, err := s.repo.ListIngredientIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return ids, nil
}
