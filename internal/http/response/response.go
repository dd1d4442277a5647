// Package response содержит вспомогательные типы и функции для формирования
// унифицированных JSON-ответов HTTP-обработчиков: успешных ответов, ошибок
// и сообщений валидации, а также соответствие ошибок предметной области
// HTTP-статусам.
package response

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/foodgram/internal/media"
	"github.com/magabrotheeeer/foodgram/internal/models"
)

// Response описывает стандартную структуру JSON-ответа сервера.
// Поле Status: статус запроса ("OK" или "Error").
// Поле Error: текст ошибки (при неуспехе).
// Поле Data: данные ответа (при успехе).
type Response struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
	Data   any    `json:"data,omitempty"`
}

// ErrorResponse описывает структуру ошибки для Swagger-документации.
// Используется в аннотациях @Failure как возвращаемый тип ошибки.
type ErrorResponse struct {
	Status string `json:"status" example:"Error"`
	Error  string `json:"error" example:"invalid request body"`
}

const (
	// StatusOK: значение статуса для успешного ответа.
	StatusOK = "OK"
	// StatusError: значение статуса для ответа с ошибкой.
	StatusError = "Error"
)

// StatusOKWithData возвращает успешный Response с переданными данными.
func StatusOKWithData(data any) Response {
	return Response{
		Status: StatusOK,
		Data:   data,
	}
}

// Error возвращает ответ с ошибкой и переданным сообщением.
func Error(msg string) ErrorResponse {
	return ErrorResponse{
		Status: StatusError,
		Error:  msg,
	}
}

// ValidationError формирует Response со статусом Error на основе ошибок валидации.
// Каждое нарушение формируется в человекочитаемый текст, объединённый через запятую.
func ValidationError(errs validator.ValidationErrors) Response {
	var errsMsgs []string

	for _, err := range errs {
		switch err.ActualTag() {
		case "required":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s is a required field", err.Field()))
		case "alphanum":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s can contain only numbers and letters", err.Field()))
		case "email":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s must be a valid email", err.Field()))
		case "hexcolor":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s must be a hex color like #E26C2D", err.Field()))
		case "slug":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s can contain only latin letters, numbers, - and _", err.Field()))
		case "min", "gte", "gt":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s must be at least %s", err.Field(), err.Param()))
		case "max", "lte", "lt":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s must be at most %s", err.Field(), err.Param()))
		default:
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s is not a valid", err.Field()))
		}
	}
	return Response{
		Status: StatusError,
		Error:  strings.Join(errsMsgs, ", "),
	}
}

// StatusFromError возвращает HTTP-статус для ошибки сервисного слоя.
func StatusFromError(err error) int {
	switch {
	case errors.Is(err, models.ErrSelfSubscription),
		errors.Is(err, models.ErrAlreadySubscribed),
		errors.Is(err, models.ErrNotSubscribed),
		errors.Is(err, models.ErrDuplicateIngredient),
		errors.Is(err, media.ErrInvalidImage):
		return http.StatusBadRequest
	case errors.Is(err, models.ErrInvalidAmount):
		return http.StatusUnprocessableEntity
	case errors.Is(err, models.ErrInvalidCredentials),
		errors.Is(err, models.ErrInactiveUser):
		return http.StatusUnauthorized
	case errors.Is(err, models.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, models.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, models.ErrAlreadyExists):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// messageFromError возвращает текст ошибки для клиента. Внутренние
// ошибки не раскрываются.
func messageFromError(err error, status int) string {
	for _, known := range []error{
		models.ErrSelfSubscription,
		models.ErrAlreadySubscribed,
		models.ErrNotSubscribed,
		models.ErrDuplicateIngredient,
		models.ErrInvalidAmount,
		media.ErrInvalidImage,
		models.ErrInvalidCredentials,
		models.ErrInactiveUser,
		models.ErrForbidden,
		models.ErrNotFound,
		models.ErrAlreadyExists,
	} {
		if errors.Is(err, known) {
			return known.Error()
		}
	}
	return strings.ToLower(http.StatusText(status))
}

// Fail пишет JSON-ответ с ошибкой и статусом, соответствующим err.
func Fail(w http.ResponseWriter, r *http.Request, err error) {
	status := StatusFromError(err)
	render.Status(r, status)
	render.JSON(w, r, Error(messageFromError(err, status)))
}

// JSON пишет ответ v со статусом status.
func JSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	render.Status(r, status)
	render.JSON(w, r, v)
}
