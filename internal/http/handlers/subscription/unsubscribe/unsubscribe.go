// Package unsubscribe реализует HTTP-обработчик отписки от автора.
package unsubscribe

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

// Handler обрабатывает запросы на отписку.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает удаление подписки.
type Service interface {
	Unsubscribe(ctx context.Context, userID, subID int64) error
}

// New создаёт Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Отписаться от автора
// @Tags Subscriptions
// @Security BearerAuth
// @Param id path int true "ID автора"
// @Success 204 "Подписка удалена"
// @Failure 400 {object} response.ErrorResponse "Подписки не было"
// @Failure 401 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /users/{id}/subscribe [delete]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.subscription.unsubscribe"
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

	subID, err := request.ID(r, "id")
	if err != nil {
		log.Error("failed to decode id from url", sl.Err(err))
		response.JSON(w, r, http.StatusBadRequest, response.Error("failed to decode id from url"))
		return
	}

	if err := h.service.Unsubscribe(r.Context(), userID, subID); err != nil {
		log.Error("failed to unsubscribe", sl.Err(err))
		response.Fail(w, r, err)
		return
	}

	log.Info("unsubscribed", slog.Int64("user_id", userID), slog.Int64("sub_id", subID))
	w.WriteHeader(http.StatusNoContent)
}
