// Package taglist реализует HTTP-обработчик получения списка всех тегов.
package taglist

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"

	"github.com/magabrotheeeer/foodgram/internal/http/response"
	"github.com/magabrotheeeer/foodgram/internal/lib/sl"
	"github.com/magabrotheeeer/foodgram/internal/models"
)

// Handler обрабатывает запросы списка тегов.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает получение тегов.
type Service interface {
	ListTags(ctx context.Context) ([]*models.Tag, error)
}

// New создаёт Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Список тегов
// @Tags Tags
// @Produce  json
// @Success 200 {object} response.Response{data=[]models.TagResponse}
// @Failure 500 {object} response.ErrorResponse
// @Router /tags [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.tag.list"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	tags, err := h.service.ListTags(r.Context())
	if err != nil {
		log.Error("failed to list tags", sl.Err(err))
		response.Fail(w, r, err)
		return
	}
	response.JSON(w, r, http.StatusOK, response.StatusOKWithData(models.NewTagResponses(tags)))
}
