// Package read реализует HTTP-обработчик получения рецепта по ID.
//
// Запрос может быть анонимным. Для аутентифицированного пользователя в ответе
// заполняется признак подписки на автора.
package read

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"

	"github.com/magabrotheeeer/foodgram/internal/http/middlewarectx"
	"github.com/magabrotheeeer/foodgram/internal/http/request"
	"github.com/magabrotheeeer/foodgram/internal/http/response"
	"github.com/magabrotheeeer/foodgram/internal/lib/sl"
	"github.com/magabrotheeeer/foodgram/internal/models"
)

// Handler обрабатывает запросы рецепта по ID.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает получение рецепта.
type Service interface {
	GetRecipe(ctx context.Context, viewerID, recipeID int64) (*models.RecipeDetail, error)
}

// New создаёт Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Рецепт по ID
// @Tags Recipes
// @Produce  json
// @Param id path int true "ID рецепта"
// @Success 200 {object} response.Response{data=models.RecipeDetail}
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /recipes/{id} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.recipe.read"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id, err := request.ID(r, "id")
	if err != nil {
		log.Error("failed to decode id from url", sl.Err(err))
		response.JSON(w, r, http.StatusBadRequest, response.Error("failed to decode id from url"))
		return
	}

	viewerID, _ := middlewarectx.UserIDFromContext(r.Context())
	recipe, err := h.service.GetRecipe(r.Context(), viewerID, id)
	if err != nil {
		log.Error("failed to read recipe", sl.Err(err))
		response.Fail(w, r, err)
		return
	}
	response.JSON(w, r, http.StatusOK, response.StatusOKWithData(recipe))
}
