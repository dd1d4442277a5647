// Package recipe содержит бизнес-логику рецептов: создание и редактирование
// с привязкой ингредиентов и тегов, выборки и удаление.
//
// Связи рецепта с ингредиентами и тегами при редактировании не сравниваются
// с прежними: старые удаляются целиком и создаются заново из запроса.
// Создание и редактирование выполняются в одной транзакции.
package recipe

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/magabrotheeeer/foodgram/internal/lib/sl"
	"github.com/magabrotheeeer/foodgram/internal/media"
	"github.com/magabrotheeeer/foodgram/internal/models"
)

// Repository определяет методы хранилища, нужные сервису рецептов.
type Repository interface {
	// InTx выполняет fn в транзакции, доступной через переданный в fn контекст.
	InTx(ctx context.Context, fn func(ctx context.Context) error) error

	GetUser(ctx context.Context, id int64) (*models.User, error)
	ListSubscriptionIDs(ctx context.Context, userID int64) ([]int64, error)
	GetIngredient(ctx context.Context, id int64) (*models.Ingredient, error)
	GetTag(ctx context.Context, id int64) (*models.Tag, error)

	CreateRecipe(ctx context.Context, recipe models.Recipe) (int64, error)
	GetRecipe(ctx context.Context, id int64) (*models.Recipe, error)
	ListRecipes(ctx context.Context, filter models.RecipeFilter, limit, offset int) ([]*models.Recipe, error)
	UpdateRecipe(ctx context.Context, recipe models.Recipe) (int, error)
	RemoveRecipe(ctx context.Context, id int64) (int, error)

	ListRecipeIngredients(ctx context.Context, recipeID int64) ([]models.RecipeIngredient, error)
	GetIngredientAmount(ctx context.Context, recipeID, ingredientID int64) (float64, error)
	RemoveRecipeIngredients(ctx context.Context, recipeID int64) (int, error)
	AddRecipeIngredient(ctx context.Context, recipeID, ingredientID int64, amount float64) error

	ListRecipeTags(ctx context.Context, recipeID int64) ([]*models.Tag, error)
	RemoveRecipeTags(ctx context.Context, recipeID int64) (int, error)
	AddRecipeTag(ctx context.Context, recipeID, tagID int64) error
}

// Service реализует операции над рецептами.
type Service struct {
	repo   Repository
	images media.Store
	log    *slog.Logger
}

// New создаёт новый экземпляр Service.
func New(repo Repository, images media.Store, log *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		images: images,
		log:    log,
	}
}

// AddIngredientsToRecipe привязывает ингредиенты к рецепту. При edit=true
// прежние ингредиенты рецепта удаляются, и список собирается заново.
// Каждый ингредиент должен существовать, повторы в items запрещены.
func (s *Service) AddIngredientsToRecipe(ctx context.Context, edit bool, recipeID int64, items []models.IngredientAmount) error {
	const op = "services.recipe.AddIngredientsToRecipe"

	seen := make(map[int64]struct{}, len(items))
	for _, item := range items {
		if _, ok := seen[item.ID]; ok {
			return fmt.Errorf("%s: %w: %d", op, models.ErrDuplicateIngredient, item.ID)
		}
		seen[item.ID] = struct{}{}
		if !models.ValidAmount(item.Amount) {
			return fmt.Errorf("%s: %w: %v", op, models.ErrInvalidAmount, item.Amount)
		}
	}

	return s.repo.InTx(ctx, func(ctx context.Context) error {
		if edit {
			if _, err := s.repo.RemoveRecipeIngredients(ctx, recipeID); err != nil {
				return fmt.Errorf("%s: %w", op, err)
			}
		}
		for _, item := range items {
			ing, err := s.repo.GetIngredient(ctx, item.ID)
			if err != nil {
				return fmt.Errorf("%s: ingredient %d: %w", op, item.ID, err)
			}
			if err := s.repo.AddRecipeIngredient(ctx, recipeID, ing.ID, item.Amount); err != nil {
				return fmt.Errorf("%s: %w", op, err)
			}
		}
		return nil
	})
}

// AddTagsToRecipe привязывает теги к рецепту. При edit=true прежние теги
// рецепта удаляются, и список собирается заново.
func (s *Service) AddTagsToRecipe(ctx context.Context, edit bool, recipeID int64, tagIDs []int64) error {
	const op = "services.recipe.AddTagsToRecipe"

	return s.repo.InTx(ctx, func(ctx context.Context) error {
		if edit {
			if _, err := s.repo.RemoveRecipeTags(ctx, recipeID); err != nil {
				return fmt.Errorf("%s: %w", op, err)
			}
		}
		for _, id := range tagIDs {
			tag, err := s.repo.GetTag(ctx, id)
			if err != nil {
				return fmt.Errorf("%s: tag %d: %w", op, id, err)
			}
			if err := s.repo.AddRecipeTag(ctx, recipeID, tag.ID); err != nil {
				return fmt.Errorf("%s: %w", op, err)
			}
		}
		return nil
	})
}

// CreateRecipe создаёт рецепт автора authorID вместе с ингредиентами и тегами.
func (s *Service) CreateRecipe(ctx context.Context, authorID int64, input models.RecipeInput) (*models.RecipeDetail, error) {
	const op = "services.recipe.CreateRecipe"

	image, err := media.SaveImage(ctx, s.images, input.Image)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var id int64
	err = s.repo.InTx(ctx, func(ctx context.Context) error {
		var err error
		id, err = s.repo.CreateRecipe(ctx, models.Recipe{
			AuthorID:    authorID,
			Name:        input.Name,
			Image:       image,
			Text:        input.Text,
			CookingTime: input.CookingTime,
		})
		if err != nil {
			return err
		}
		if err := s.AddIngredientsToRecipe(ctx, false, id, input.Ingredients); err != nil {
			return err
		}
		return s.AddTagsToRecipe(ctx, false, id, input.Tags)
	})
	if err != nil {
		if media.IsDataURI(input.Image) {
			s.discardImage(ctx, image)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("recipe created", slog.Int64("id", id), slog.Int64("author_id", authorID))
	return s.GetRecipe(ctx, authorID, id)
}

// UpdateRecipe редактирует рецепт. Менять рецепт может только его автор.
// Пустое поле Image оставляет прежнее изображение.
func (s *Service) UpdateRecipe(ctx context.Context, editorID, recipeID int64, input models.RecipeInput) (*models.RecipeDetail, error) {
	const op = "services.recipe.UpdateRecipe"

	recipe, err := s.authorRecipe(ctx, editorID, recipeID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var stored string
	if input.Image != "" {
		image, err := media.SaveImage(ctx, s.images, input.Image)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		if media.IsDataURI(input.Image) {
			stored = image
		}
		recipe.Image = image
	}
	recipe.Name = input.Name
	recipe.Text = input.Text
	recipe.CookingTime = input.CookingTime

	err = s.repo.InTx(ctx, func(ctx context.Context) error {
		count, err := s.repo.UpdateRecipe(ctx, *recipe)
		if err != nil {
			return err
		}
		if count == 0 {
			return models.ErrNotFound
		}
		if err := s.AddIngredientsToRecipe(ctx, true, recipeID, input.Ingredients); err != nil {
			return err
		}
		return s.AddTagsToRecipe(ctx, true, recipeID, input.Tags)
	})
	if err != nil {
		if stored != "" {
			s.discardImage(ctx, stored)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("recipe updated", slog.Int64("id", recipeID))
	return s.GetRecipe(ctx, editorID, recipeID)
}

// RemoveRecipe удаляет рецепт. Удалять рецепт может только его автор.
func (s *Service) RemoveRecipe(ctx context.Context, editorID, recipeID int64) error {
	const op = "services.recipe.RemoveRecipe"

	if _, err := s.authorRecipe(ctx, editorID, recipeID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	count, err := s.repo.RemoveRecipe(ctx, recipeID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if count == 0 {
		return fmt.Errorf("%s: %w", op, models.ErrNotFound)
	}

	s.log.Info("recipe removed", slog.Int64("id", recipeID))
	return nil
}

// GetRecipe возвращает рецепт с автором, тегами и ингредиентами.
// viewerID нужен для признака подписки на автора, 0 означает анонимный просмотр.
func (s *Service) GetRecipe(ctx context.Context, viewerID, recipeID int64) (*models.RecipeDetail, error) {
	const op = "services.recipe.GetRecipe"

	recipe, err := s.repo.GetRecipe(ctx, recipeID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	subs, err := s.viewerSubs(ctx, viewerID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	detail, err := s.detail(ctx, recipe, viewerID, subs)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return detail, nil
}

// ListRecipes возвращает страницу рецептов с учётом фильтра.
func (s *Service) ListRecipes(ctx context.Context, viewerID int64, filter models.RecipeFilter, page models.Page) ([]*models.RecipeDetail, error) {
	const op = "services.recipe.ListRecipes"

	recipes, err := s.repo.ListRecipes(ctx, filter, page.Limit, page.Offset)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	subs, err := s.viewerSubs(ctx, viewerID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	res := make([]*models.RecipeDetail, 0, len(recipes))
	for _, r := range recipes {
		d, err := s.detail(ctx, r, viewerID, subs)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		res = append(res, d)
	}
	return res, nil
}

// RecipeIngredients возвращает ингредиенты рецепта.
func (s *Service) RecipeIngredients(ctx context.Context, recipeID int64) ([]models.RecipeIngredient, error) {
	const op = "services.recipe.RecipeIngredients"

	if _, err := s.repo.GetRecipe(ctx, recipeID); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	ings, err := s.repo.ListRecipeIngredients(ctx, recipeID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return ings, nil
}

// IngredientAmount возвращает количество ингредиента в рецепте. Дробная часть
// отбрасывается. Если ингредиента в рецепте нет, возвращается models.ErrNotFound.
func (s *Service) IngredientAmount(ctx context.Context, recipeID, ingredientID int64) (int, error) {
	const op = "services.recipe.IngredientAmount"

	amount, err := s.repo.GetIngredientAmount(ctx, recipeID, ingredientID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(amount), nil
}

// discardImage удаляет изображение, сохранённое для неудавшейся транзакции.
func (s *Service) discardImage(ctx context.Context, ref string) {
	if err := s.images.Remove(ctx, ref); err != nil {
		s.log.Warn("failed to remove orphaned image", slog.String("ref", ref), sl.Err(err))
	}
}

func (s *Service) authorRecipe(ctx context.Context, editorID, recipeID int64) (*models.Recipe, error) {
	recipe, err := s.repo.GetRecipe(ctx, recipeID)
	if err != nil {
		return nil, err
	}
	if recipe.AuthorID != editorID {
		return nil, models.ErrForbidden
	}
	return recipe, nil
}

func (s *Service) viewerSubs(ctx context.Context, viewerID int64) ([]int64, error) {
	if viewerID == 0 {
		return nil, nil
	}
	return s.repo.ListSubscriptionIDs(ctx, viewerID)
}

func (s *Service) detail(ctx context.Context, recipe *models.Recipe, viewerID int64, subs []int64) (*models.RecipeDetail, error) {
	author, err := s.repo.GetUser(ctx, recipe.AuthorID)
	if err != nil {
		return nil, err
	}
	tags, err := s.repo.ListRecipeTags(ctx, recipe.ID)
	if err != nil {
		return nil, err
	}
	ings, err := s.repo.ListRecipeIngredients(ctx, recipe.ID)
	if err != nil {
		return nil, err
	}
	subscribed := viewerID != author.ID && slices.Contains(subs, author.ID)
	return &models.RecipeDetail{
		Recipe:      *recipe,
		Author:      models.NewProfile(author, subscribed),
		Tags:        models.NewTagResponses(tags),
		Ingredients: ings,
	}, nil
}
