// Package idlist реализует HTTP-обработчик, отдающий список ID записей
// одного типа: тегов, ингредиентов или пользователей.
package idlist

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"

	"github.com/magabrotheeeer/foodgram/internal/http/response"
	"github.com/magabrotheeeer/foodgram/internal/lib/sl"
)

// ListFunc возвращает ID всех записей.
type ListFunc func(ctx context.Context) ([]int64, error)

// Handler обрабатывает запросы списка ID.
type Handler struct {
	log  *slog.Logger
	name string
	list ListFunc
}

// New создаёт Handler. name попадает в логи как тип записей.
func New(log *slog.Logger, name string, list ListFunc) *Handler {
	return &Handler{log: log, name: name, list: list}
}

// ServeHTTP godoc
// @Summary ID всех записей
// @Tags Catalog
// @Produce  json
// @Success 200 {object} response.Response{data=[]int64}
// @Failure 500 {object} response.ErrorResponse
// @Router /tags/ids [get]
// @Router /ingredients/ids [get]
// @Router /admin/users/ids [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.idlist"
	log := h.log.With(
		slog.String("op", op),
		slog.String("entity", h.name),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	ids, err := h.list(r.Context())
	if err != nil {
		log.Error("failed to list ids", sl.Err(err))
		response.Fail(w, r, err)
		return
	}
	if ids == nil {
		ids = []int64{}
	}
	response.JSON(w, r, http.StatusOK, response.StatusOKWithData(ids))
}
