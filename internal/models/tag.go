package models

// Tag: тег рецепта. Название, цвет и слаг уникальны.
type Tag struct {
	ID    int64
	Name  string
	Color string
	Slug  string
}

// TagResponse: представление тега в ответах API: id, name, color, slug.
type TagResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
	Slug  string `json:"slug"`
}

// TagRequest: тело запроса на создание тега. Поля id нет: он
// назначается хранилищем и доступен только для чтения.
type TagRequest struct {
	Name  string `json:"name" validate:"required,max=128"`
	Color string `json:"color" validate:"required,hexcolor,max=15"`
	Slug  string `json:"slug" validate:"required,max=128,slug"`
}

// NewTagResponse переводит тег в представление для ответа.
func NewTagResponse(t *Tag) TagResponse {
	return TagResponse{
		ID:    t.ID,
		Name:  t.Name,
		Color: t.Color,
		Slug:  t.Slug,
	}
}

// NewTagResponses переводит список тегов в представление для ответа.
func NewTagResponses(tags []*Tag) []TagResponse {
	res := make([]TagResponse, 0, len(tags))
	for _, t := range tags {
		res = append(res, NewTagResponse(t))
	}
	return res
}

// Tag возвращает доменную модель тега по запросу.
func (r TagRequest) Tag() Tag {
	return Tag{
		Name:  r.Name,
		Color: r.Color,
		Slug:  r.Slug,
	}
}
