// Package profile реализует HTTP-обработчик профиля пользователя.
//
// Маршрут /users/me возвращает профиль текущего пользователя, /users/{id} любого
// пользователя с признаком подписки на него со стороны просматривающего.
package profile

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"

	"github.com/magabrotheeeer/foodgram/internal/http/middlewarectx"
	"github.com/magabrotheeeer/foodgram/internal/http/request"
	"github.com/magabrotheeeer/foodgram/internal/http/response"
	"github.com/magabrotheeeer/foodgram/internal/lib/sl"
	"github.com/magabrotheeeer/foodgram/internal/models"
)

// Handler обрабатывает запросы профиля.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает получение профиля.
type Service interface {
	Profile(ctx context.Context, viewerID, userID int64) (models.Profile, error)
}

// New создаёт Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Профиль пользователя
// @Tags Users
// @Produce  json
// @Param id path string true "ID пользователя или me"
// @Success 200 {object} response.Response{data=models.Profile}
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.ErrorResponse "Для /users/me нужен токен"
// @Failure 404 {object} response.ErrorResponse
// @Router /users/{id} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.user.profile"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	viewerID, authenticated := middlewarectx.UserIDFromContext(r.Context())

	var userID int64
	if chi.URLParam(r, "id") == "me" {
		if !authenticated {
			log.Error("user id not found in context")
			response.JSON(w, r, http.StatusUnauthorized, response.Error("unauthorized"))
			return
		}
		userID = viewerID
	} else {
		id, err := request.ID(r, "id")
		if err != nil {
			log.Error("failed to decode id from url", sl.Err(err))
			response.JSON(w, r, http.StatusBadRequest, response.Error("failed to decode id from url"))
			return
		}
		userID = id
	}

	profile, err := h.service.Profile(r.Context(), viewerID, userID)
	if err != nil {
		log.Error("failed to read profile", sl.Err(err))
		response.Fail(w, r, err)
		return
	}
	response.JSON(w, r, http.StatusOK, response.StatusOKWithData(profile))
}
