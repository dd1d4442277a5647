// Package list реализует HTTP-обработчик списка рецептов с фильтрами и пагинацией.
//
// Поддерживаемые query-параметры: author (ID автора), tags (слаг тега, можно
// указывать несколько раз), limit и offset.
package list

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/middleware"

	"github.com/magabrotheeeer/foodgram/internal/http/middlewarectx"
	"github.com/magabrotheeeer/foodgram/internal/http/request"
	"github.com/magabrotheeeer/foodgram/internal/http/response"
	"github.com/magabrotheeeer/foodgram/internal/lib/sl"
	"github.com/magabrotheeeer/foodgram/internal/models"
)

// Handler обрабатывает запросы списка рецептов.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает получение списка рецептов.
type Service interface {
	ListRecipes(ctx context.Context, viewerID int64, filter models.RecipeFilter, page models.Page) ([]*models.RecipeDetail, error)
}

// New создаёт Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Список рецептов
// @Description Новые рецепты идут первыми.
// @Tags Recipes
// @Produce  json
// @Param author query int false "ID автора"
// @Param tags query []string false "Слаги тегов" collectionFormat(multi)
// @Param limit query int false "Размер страницы"
// @Param offset query int false "Смещение"
// @Success 200 {object} response.Response{data=[]models.RecipeDetail}
// @Failure 400 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /recipes [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.recipe.list"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	q := r.URL.Query()
	filter := models.RecipeFilter{TagSlugs: q["tags"]}
	if raw := q.Get("author"); raw != "" {
		authorID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || authorID <= 0 {
			log.Error("invalid author filter", slog.String("author", raw))
			response.JSON(w, r, http.StatusBadRequest, response.Error("invalid author"))
			return
		}
		filter.AuthorID = &authorID
	}

	viewerID, _ := middlewarectx.UserIDFromContext(r.Context())
	recipes, err := h.service.ListRecipes(r.Context(), viewerID, filter, request.Page(r))
	if err != nil {
		log.Error("failed to list recipes", sl.Err(err))
		response.Fail(w, r, err)
		return
	}
	if recipes == nil {
		recipes = []*models.RecipeDetail{}
	}
	log.Info("recipes listed", slog.Int("count", len(recipes)))
	response.JSON(w, r, http.StatusOK, response.StatusOKWithData(recipes))
}
