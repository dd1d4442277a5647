// Package subscribe реализует HTTP-обработчик подписки текущего пользователя на автора.
package subscribe

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

// Handler обрабатывает запросы на подписку.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает создание подписки.
type Service interface {
	Subscribe(ctx context.Context, userID, subID int64) (models.Profile, error)
}

// New создаёт Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Подписаться на автора
// @Tags Subscriptions
// @Produce  json
// @Security BearerAuth
// @Param id path int true "ID автора"
// @Success 201 {object} response.Response{data=models.Profile}
// @Failure 400 {object} response.ErrorResponse "Подписка на себя или повторная подписка"
// @Failure 401 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse "Автор не найден"
// @Router /users/{id}/subscribe [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.subscription.subscribe"
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

	profile, err := h.service.Subscribe(r.Context(), userID, subID)
	if err != nil {
		log.Error("failed to subscribe", sl.Err(err))
		response.Fail(w, r, err)
		return
	}

	log.Info("subscribed", slog.Int64("user_id", userID), slog.Int64("sub_id", subID))
	response.JSON(w, r, http.StatusCreated, response.StatusOKWithData(profile))
}
