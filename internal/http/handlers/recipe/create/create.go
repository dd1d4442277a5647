// Package create реализует HTTP-обработчик создания рецепта.
//
// Handler принимает JSON с названием, описанием, временем приготовления, изображением,
// списком ингредиентов с количеством и списком ID тегов. Автором рецепта становится
// текущий пользователь из контекста запроса.
package create

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/foodgram/internal/http/middlewarectx"
	"github.com/magabrotheeeer/foodgram/internal/http/response"
	"github.com/magabrotheeeer/foodgram/internal/lib/sl"
	"github.com/magabrotheeeer/foodgram/internal/lib/validation"
	"github.com/magabrotheeeer/foodgram/internal/models"
)

// Handler управляет HTTP-запросами на создание рецептов.
type Handler struct {
	log      *slog.Logger        // Логгер для записи информации и ошибок
	service  Service             // Сервис бизнес-логики рецептов
	validate *validator.Validate // Валидатор структуры входящих данных
}

// Service описывает интерфейс бизнес-логики создания рецепта.
type Service interface {
	CreateRecipe(ctx context.Context, authorID int64, input models.RecipeInput) (*models.RecipeDetail, error)
}

// New создаёт новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validation.New(),
	}
}

// ServeHTTP godoc
// @Summary Создать рецепт
// @Description Создаёт рецепт текущего пользователя вместе с ингредиентами и тегами.
// @Tags Recipes
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param request body models.RecipeInput true "Данные рецепта"
// @Success 201 {object} response.Response{data=models.RecipeDetail}
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON или повтор ингредиента"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 404 {object} response.ErrorResponse "Ингредиент или тег не найден"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse
// @Router /recipes [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.recipe.create"
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

	var req models.RecipeInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		response.JSON(w, r, http.StatusBadRequest, response.Error("invalid request body"))
		return
	}
	log.Info("request body decoded", slog.String("name", req.Name))

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		response.JSON(w, r, http.StatusUnprocessableEntity, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	recipe, err := h.service.CreateRecipe(r.Context(), userID, req)
	if err != nil {
		log.Error("failed to create recipe", sl.Err(err))
		response.Fail(w, r, err)
		return
	}

	log.Info("recipe created", slog.Int64("id", recipe.ID))
	response.JSON(w, r, http.StatusCreated, response.StatusOKWithData(recipe))
}
