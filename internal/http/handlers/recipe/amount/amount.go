// Package amount реализует HTTP-обработчик количества ингредиента в рецепте.
//
// Количество возвращается целым числом, дробная часть отбрасывается.
package amount

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"

	"github.com/magabrotheeeer/foodgram/internal/http/request"
	"github.com/magabrotheeeer/foodgram/internal/http/response"
	"github.com/magabrotheeeer/foodgram/internal/lib/sl"
)

// Handler обрабатывает запросы количества ингредиента.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает получение количества ингредиента.
type Service interface {
	IngredientAmount(ctx context.Context, recipeID, ingredientID int64) (int, error)
}

// New создаёт Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Количество ингредиента в рецепте
// @Tags Recipes
// @Produce  json
// @Param id path int true "ID рецепта"
// @Param ingredient_id path int true "ID ингредиента"
// @Success 200 {object} map[string]any
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse "Ингредиента нет в рецепте"
// @Router /recipes/{id}/ingredients/{ingredient_id} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.recipe.amount"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	recipeID, err := request.ID(r, "id")
	if err != nil {
		log.Error("failed to decode id from url", sl.Err(err))
		response.JSON(w, r, http.StatusBadRequest, response.Error("failed to decode id from url"))
		return
	}
	ingredientID, err := request.ID(r, "ingredient_id")
	if err != nil {
		log.Error("failed to decode ingredient id from url", sl.Err(err))
		response.JSON(w, r, http.StatusBadRequest, response.Error("failed to decode id from url"))
		return
	}

	amount, err := h.service.IngredientAmount(r.Context(), recipeID, ingredientID)
	if err != nil {
		log.Error("failed to get ingredient amount", sl.Err(err))
		response.Fail(w, r, err)
		return
	}
	response.JSON(w, r, http.StatusOK, response.StatusOKWithData(map[string]any{
		"recipe_id":     recipeID,
		"ingredient_id": ingredientID,
		"amount":        amount,
	}))
}
