// Package list реализует HTTP-обработчик списка авторов, на которых подписан пользователь.
package list

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

// Handler обрабатывает запросы списка подписок.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает получение подписок.
type Service interface {
	Subscriptions(ctx context.Context, userID int64, limit, offset int) ([]models.Profile, error)
}

// New создаёт Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Мои подписки
// @Tags Subscriptions
// @Produce  json
// @Security BearerAuth
// @Param limit query int false "Размер страницы"
// @Param offset query int false "Смещение"
// @Success 200 {object} response.Response{data=[]models.Profile}
// @Failure 401 {object} response.ErrorResponse
// @Router /users/subscriptions [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.subscription.list"
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

	page := request.Page(r)
	subs, err := h.service.Subscriptions(r.Context(), userID, page.Limit, page.Offset)
	if err != nil {
		log.Error("failed to list subscriptions", sl.Err(err))
		response.Fail(w, r, err)
		return
	}
	if subs == nil {
		subs = []models.Profile{}
	}
	response.JSON(w, r, http.StatusOK, response.StatusOKWithData(subs))
}
