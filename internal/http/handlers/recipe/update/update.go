// Package update реализует HTTP-обработчик редактирования рецепта.
//
// Ингредиенты и теги рецепта полностью заменяются переданными в запросе.
// Если изображение не передано, остаётся прежнее. Редактировать рецепт может только автор.
package update

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/foodgram/internal/http/middlewarectx"
	"github.com/magabrotheeeer/foodgram/internal/http/request"
	"github.com/magabrotheeeer/foodgram/internal/http/response"
	"github.com/magabrotheeeer/foodgram/internal/lib/sl"
	"github.com/magabrotheeeer/foodgram/internal/lib/validation"
	"github.com/magabrotheeeer/foodgram/internal/models"
)

// Handler обрабатывает запросы на редактирование рецептов.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает редактирование рецепта.
type Service interface {
	UpdateRecipe(ctx context.Context, editorID, recipeID int64, input models.RecipeInput) (*models.RecipeDetail, error)
}

// New создаёт Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validation.New(),
	}
}

// ServeHTTP godoc
// @Summary Обновить рецепт
// @Tags Recipes
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param id path int true "ID рецепта"
// @Param request body models.RecipeUpdate true "Новые данные рецепта"
// @Success 200 {object} response.Response{data=models.RecipeDetail}
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.ErrorResponse
// @Failure 403 {object} response.ErrorResponse "Рецепт принадлежит другому пользователю"
// @Failure 404 {object} response.ErrorResponse
// @Failure 422 {object} response.ErrorResponse
// @Router /recipes/{id} [patch]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.recipe.update"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	userID, ok := middlewarectx.UserIDFromContext(r.Context())
	if !ok {
		log.Error("user id not found in context")
		response.JSON(w, r, http.StatusUnauthorized, response.Error("unauthorized"))
		return
	}

	id, err := request.ID(r, "id")
	if err != nil {
		log.Error("failed to decode id from url", sl.Err(err))
		response.JSON(w, r, http.StatusBadRequest, response.Error("failed to decode id from url"))
		return
	}

	var req models.RecipeUpdate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		response.JSON(w, r, http.StatusBadRequest, response.Error("invalid request body"))
		return
	}
	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		response.JSON(w, r, http.StatusUnprocessableEntity, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	recipe, err := h.service.UpdateRecipe(r.Context(), userID, id, req.Input())
	if err != nil {
		log.Error("failed to update recipe", sl.Err(err))
		response.Fail(w, r, err)
		return
	}

	log.Info("recipe updated", slog.Int64("id", id))
	response.JSON(w, r, http.StatusOK, response.StatusOKWithData(recipe))
}
