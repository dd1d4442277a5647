// Package remove реализует HTTP-обработчик удаления рецепта его автором.
package remove

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"

	"github.com/magabrotheeeer/foodgram/internal/http/middlewarectx"
	"github.com/magabrotheeeer/foodgram/internal/http/request"
	"github.com/magabrotheeeer/foodgram/internal/http/response"
	"github.com/magabrotheeeer/foodgram/internal/lib/sl"
)

// Handler обрабатывает запросы на удаление рецепта.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает удаление рецепта.
type Service interface {
	RemoveRecipe(ctx context.Context, editorID, recipeID int64) error
}

// New создаёт Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Удалить рецепт
// @Tags Recipes
// @Security BearerAuth
// @Param id path int true "ID рецепта"
// @Success 204 "Рецепт удалён"
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.ErrorResponse
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /recipes/{id} [delete]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.recipe.remove"
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

	if err := h.service.RemoveRecipe(r.Context(), userID, id); err != nil {
		log.Error("failed to remove recipe", sl.Err(err))
		response.Fail(w, r, err)
		return
	}

	log.Info("recipe removed", slog.Int64("id", id))
	w.WriteHeader(http.StatusNoContent)
}
