// Package userupdate реализует изменение пользователя администратором.
//
// Передаются только изменяемые поля. Незаданные поля остаются прежними.
package userupdate

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/foodgram/internal/http/request"
	"github.com/magabrotheeeer/foodgram/internal/http/response"
	"github.com/magabrotheeeer/foodgram/internal/lib/sl"
	"github.com/magabrotheeeer/foodgram/internal/lib/validation"
	"github.com/magabrotheeeer/foodgram/internal/models"
)

// Handler обрабатывает запросы на изменение пользователя.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает изменение пользователя.
type Service interface {
	UpdateUser(ctx context.Context, id int64, upd models.UserAdminUpdate) (*models.User, error)
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
// @Summary Изменить пользователя
// @Tags Admin
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param id path int true "ID пользователя"
// @Param request body models.UserAdminUpdate true "Изменяемые поля"
// @Success 200 {object} response.Response{data=models.User}
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse
// @Failure 422 {object} response.ErrorResponse
// @Router /admin/users/{id} [patch]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.admin.userupdate"
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

	var req models.UserAdminUpdate
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

	user, err := h.service.UpdateUser(r.Context(), id, req)
	if err != nil {
		log.Error("failed to update user", sl.Err(err))
		response.Fail(w, r, err)
		return
	}

	log.Info("user updated", slog.Int64("id", id))
	response.JSON(w, r, http.StatusOK, response.StatusOKWithData(user))
}
