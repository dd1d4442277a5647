package userread

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

// Handler отдаёт пользователя администратору.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает получение пользователя.
type Service interface {
	GetUser(ctx context.Context, id int64) (*models.User, error)
}

// New создаёт Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Пользователь по ID
// @Tags Admin
// @Produce  json
// @Security BearerAuth
// @Param id path int true "ID пользователя"
// @Success 200 {object} response.Response{data=models.User}
// @Failure 404 {object} response.ErrorResponse
// @Router /admin/users/{id} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.admin.userread"
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

	user, err := h.service.GetUser(r.Context(), id)
	if err != nil {
		log.Error("failed to read user", sl.Err(err))
		response.Fail(w, r, err)
		return
	}
	response.JSON(w, r, http.StatusOK, response.StatusOKWithData(user))
}
