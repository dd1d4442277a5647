// Package ingredientread реализует HTTP-обработчик получения ингредиента по ID.
package ingredientread

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

// Handler обрабатывает запросы ингредиента по ID.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает получение ингредиента.
type Service interface {
	GetIngredient(ctx context.Context, id int64) (*models.Ingredient, error)
}

// New создаёт Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Ингредиент по ID
// @Tags Ingredients
// @Produce  json
// @Param id path int true "ID ингредиента"
// @Success 200 {object} response.Response{data=models.Ingredient}
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /ingredients/{id} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.ingredient.read"
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

	ing, err := h.service.GetIngredient(r.Context(), id)
	if err != nil {
		log.Error("failed to read ingredient", sl.Err(err))
		response.Fail(w, r, err)
		return
	}
	response.JSON(w, r, http.StatusOK, response.StatusOKWithData(ing))
}
