// Package ingredientlist реализует HTTP-обработчик поиска ингредиентов.
//
// Параметр name задаёт начало названия ингредиента, без него возвращаются все ингредиенты.
package ingredientlist

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"

	"github.com/magabrotheeeer/foodgram/internal/http/response"
	"github.com/magabrotheeeer/foodgram/internal/lib/sl"
	"github.com/magabrotheeeer/foodgram/internal/models"
)

// Handler обрабатывает запросы списка ингредиентов.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает поиск ингредиентов.
type Service interface {
	ListIngredients(ctx context.Context, namePrefix string) ([]*models.Ingredient, error)
}

// New создаёт Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Список ингредиентов
// @Description Поиск по началу названия.
// @Tags Ingredients
// @Produce  json
// @Param name query string false "Начало названия"
// @Success 200 {object} response.Response{data=[]models.Ingredient}
// @Failure 500 {object} response.ErrorResponse
// @Router /ingredients [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.ingredient.list"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	ingredients, err := h.service.ListIngredients(r.Context(), r.URL.Query().Get("name"))
	if err != nil {
		log.Error("failed to list ingredients", sl.Err(err))
		response.Fail(w, r, err)
		return
	}
	if ingredients == nil {
		ingredients = []*models.Ingredient{}
	}
	response.JSON(w, r, http.StatusOK, response.StatusOKWithData(ingredients))
}
