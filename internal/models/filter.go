package models

// RecipeFilter задаёт параметры фильтрации списка рецептов.
type RecipeFilter struct {
	AuthorID *int64   // Автор рецепта (nil, если фильтра по автору нет)
	TagSlugs []string // Слаги тегов, рецепт должен иметь хотя бы один из них
}

// Page описывает параметры пагинации.
type Page struct {
	Limit  int
	Offset int
}

const (
	// DefaultLimit размер страницы по умолчанию.
	DefaultLimit = 10
	// MaxLimit максимальный размер страницы.
	MaxLimit = 100
)

// NewPage нормализует limit и offset из запроса.
func NewPage(limit, offset int) Page {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	if offset < 0 {
		offset = 0
	}
	return Page{Limit: limit, Offset: offset}
}
