// Package ingredientcreate реализует HTTP-обработчик создания ингредиента администратором.
package ingredientcreate

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/foodgram/internal/http/response"
	"github.com/magabrotheeeer/foodgram/internal/lib/sl"
	"github.com/magabrotheeeer/foodgram/internal/lib/validation"
	"github.com/magabrotheeeer/foodgram/internal/models"
)

// Handler обрабатывает запросы на создание ингредиента.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает создание ингредиента.
type Service interface {
	CreateIngredient(ctx context.Context, req models.IngredientRequest) (*models.Ingredient, error)
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
// @Summary Создать ингредиент
// @Description Единица измерения создаётся, если её ещё нет. Доступно только администраторам.
// @Tags Ingredients
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param request body models.IngredientRequest true "Данные ингредиента"
// @Success 201 {object} response.Response{data=models.Ingredient}
// @Failure 400 {object} response.ErrorResponse
// @Failure 403 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse
// @Failure 422 {object} response.ErrorResponse
// @Router /ingredients [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.ingredient.create"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.IngredientRequest
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

	ing, err := h.service.CreateIngredient(r.Context(), req)
	if err != nil {
		log.Error("failed to create ingredient", sl.Err(err))
		response.Fail(w, r, err)
		return
	}

	log.Info("ingredient created", slog.Int64("id", ing.ID))
	response.JSON(w, r, http.StatusCreated, response.StatusOKWithData(ing))
}
