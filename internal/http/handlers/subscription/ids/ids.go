// Package ids реализует HTTP-обработчик списка ID авторов, на которых подписан пользователь.
package ids

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"

	"github.com/magabrotheeeer/foodgram/internal/http/middlewarectx"
	"github.com/magabrotheeeer/foodgram/internal/http/response"
	"github.com/magabrotheeeer/foodgram/internal/lib/sl"
)

// Handler обрабатывает запросы ID подписок.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает получение ID подписок.
type Service interface {
	SubsIDs(ctx context.Context, userID int64) ([]int64, error)
}

// New создаёт Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary ID авторов в подписках
// @Tags Subscriptions
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} response.Response{data=[]int64}
// @Failure 401 {object} response.ErrorResponse
// @Router /users/subscriptions/ids [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.subscription.ids"
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

	ids, err := h.service.SubsIDs(r.Context(), userID)
	if err != nil {
		log.Error("failed to list subscription ids", sl.Err(err))
		response.Fail(w, r, err)
		return
	}
	if ids == nil {
		ids = []int64{}
	}
	response.JSON(w, r, http.StatusOK, response.StatusOKWithData(ids))
}
