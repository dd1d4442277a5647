// Package tagcreate реализует HTTP-обработчик создания тега администратором.
//
// Поле id в запросе не принимается: он назначается хранилищем.
package tagcreate

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/foodgram/internal/http/response"
	"github.com/magabrotheeeer/foodgram/internal/lib/sl"
	"github.com/magabrotheeeer/foodgram/internal/lib/validation"
	"github.com/magabrotheeeer/foodgram/internal/models"
)

// Handler обрабатывает запросы на создание тега.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает создание тега.
type Service interface {
	CreateTag(ctx context.Context, req models.TagRequest) (*models.Tag, error)
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
// @Summary Создать тег
// @Description Доступно только администраторам.
// @Tags Tags
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param request body models.TagRequest true "Данные тега"
// @Success 201 {object} response.Response{data=models.TagResponse}
// @Failure 400 {object} response.ErrorResponse
// @Failure 403 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse
// @Failure 422 {object} response.ErrorResponse
// @Router /tags [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.tag.create"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.TagRequest
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

	tag, err := h.service.CreateTag(r.Context(), req)
	if err != nil {
		log.Error("failed to create tag", sl.Err(err))
		response.Fail(w, r, err)
		return
	}

	log.Info("tag created", slog.Int64("id", tag.ID))
	response.JSON(w, r, http.StatusCreated, response.StatusOKWithData(models.NewTagResponse(tag)))
}
