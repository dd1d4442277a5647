// Package userlist реализует административный список пользователей.
//
// Список можно отфильтровать по точному совпадению email и username.
package userlist

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

// Handler обрабатывает запросы списка пользователей.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает получение пользователей для администратора.
type Service interface {
	ListUsers(ctx context.Context, filter models.UserFilter, page models.Page) ([]*models.User, error)
}

// New создаёт Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Пользователи
// @Description Поля: username, email, first_name, last_name, is_staff, is_active.
// @Tags Admin
// @Produce  json
// @Security BearerAuth
// @Param email query string false "Фильтр по email"
// @Param username query string false "Фильтр по username"
// @Param limit query int false "Размер страницы"
// @Param offset query int false "Смещение"
// @Success 200 {object} response.Response{data=[]models.User}
// @Failure 401 {object} response.ErrorResponse
// @Failure 403 {object} response.ErrorResponse
// @Router /admin/users [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.admin.userlist"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	q := r.URL.Query()
	filter := models.UserFilter{
		Email:    q.Get("email"),
		Username: q.Get("username"),
	}

	users, err := h.service.ListUsers(r.Context(), filter, request.Page(r))
	if err != nil {
		log.Error("failed to list users", sl.Err(err))
		response.Fail(w, r, err)
		return
	}
	if users == nil {
		users = []*models.User{}
	}
	response.JSON(w, r, http.StatusOK, response.StatusOKWithData(users))
}
