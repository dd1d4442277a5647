// Package ingredients реализует HTTP-обработчик списка ингредиентов рецепта с количеством.
package ingredients

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"

	"github.com/magabrotheeeer/foodgram/internal/http/request"
	"github.com/magabrotheeeer/foodgram/internal/http/response"
	"github.com/magabrotheeeer/foodgram/internal/lib/sl"
	"github.com/magabrotheeeer/foodgram/internal/models"
)

// Handler обрабатывает запросы ингредиентов рецепта.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает получение ингредиентов рецепта.
type Service interface {
	RecipeIngredients(ctx context.Context, recipeID int64) ([]models.RecipeIngredient, error)
}

// New создаёт Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Ингредиенты рецепта
// @Tags Recipes
// @Produce  json
// @Param id path int true "ID рецепта"
// @Success 200 {object} response.Response{data=[]models.RecipeIngredient}
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /recipes/{id}/ingredients [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.recipe.ingredients"
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

	items, err := h.service.RecipeIngredients(r.Context(), id)
	if err != nil {
		log.Error("failed to list recipe ingredients", sl.Err(err))
		response.Fail(w, r, err)
		return
	}
	response.JSON(w, r, http.StatusOK, response.StatusOKWithData(items))
}
