// Package request содержит разбор параметров HTTP-запроса, общий для обработчиков:
// идентификаторов из URL и параметров пагинации.
package request

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"

	"github.com/magabrotheeeer/foodgram/internal/models"
)

// ErrInvalidID возвращается, если параметр URL не является положительным целым.
var ErrInvalidID = errors.New("invalid id")

// ID читает положительный int64 из параметра маршрута name.
func ID(r *http.Request, name string) (int64, error) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %s=%q", ErrInvalidID, name, raw)
	}
	return id, nil
}

// Page читает limit и offset из query-параметров. Некорректные значения
// заменяются значениями по умолчанию.
func Page(r *http.Request) models.Page {
	q := r.URL.Query()
	limit, _ := strconv.Atoi(q.Get("limit"))
	offset, _ := strconv.Atoi(q.Get("offset"))
	return models.NewPage(limit, offset)
}
