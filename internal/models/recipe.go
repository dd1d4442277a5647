package models

import (
	"math"
	"time"
)

// Recipe: основная модель рецепта, используемая в бизнес-логике и хранилище.
// Image хранит ссылку на сохранённое изображение, а не сами данные.
type Recipe struct {
	ID          int64     `json:"id"`
	AuthorID    int64     `json:"author_id"`
	Name        string    `json:"name"`
	Image       string    `json:"image"`
	Text        string    `json:"text"`
	CookingTime int       `json:"cooking_time"`
	CreatedAt   time.Time `json:"created_at"`
}

// RecipeDetail: рецепт вместе с автором, тегами и ингредиентами.
type RecipeDetail struct {
	Recipe
	Author      Profile            `json:"author"`
	Tags        []TagResponse      `json:"tags"`
	Ingredients []RecipeIngredient `json:"ingredients"`
}

// Границы количества ингредиента, столбец amount имеет тип NUMERIC(5, 2).
const (
	MinAmount = 0.01
	MaxAmount = 999.99
)

// IngredientAmount: пара "ингредиент и его количество" из запроса.
// Количество задаётся не точнее чем до сотых.
type IngredientAmount struct {
	ID     int64   `json:"id" validate:"required,gt=0"`
	Amount float64 `json:"amount" validate:"required,gte=0.01,lte=999.99,amount"`
}

// ValidAmount сообщает, можно ли сохранить amount без округления и переполнения.
func ValidAmount(amount float64) bool {
	if amount < MinAmount || amount > MaxAmount {
		return false
	}
	cents := amount * 100
	return math.Abs(cents-math.Round(cents)) < 1e-6
}

// RecipeInput используется для приёма данных рецепта из JSON-запроса.
// Image приходит либо в виде data URI (data:image/png;base64,...), либо
// ссылкой на уже сохранённое изображение.
type RecipeInput struct {
	Name        string             `json:"name" validate:"required,max=128"`
	Image       string             `json:"image" validate:"required"`
	Text        string             `json:"text" validate:"required"`
	CookingTime int                `json:"cooking_time" validate:"required,gte=1"`
	Ingredients []IngredientAmount `json:"ingredients" validate:"required,min=1,dive"`
	Tags        []int64            `json:"tags" validate:"required,min=1,dive,gt=0"`
}

// RecipeUpdate: тело запроса на редактирование рецепта.
// Отличается от RecipeInput тем, что изображение можно не передавать.
type RecipeUpdate struct {
	Name        string             `json:"name" validate:"required,max=128"`
	Image       string             `json:"image" validate:"omitempty"`
	Text        string             `json:"text" validate:"required"`
	CookingTime int                `json:"cooking_time" validate:"required,gte=1"`
	Ingredients []IngredientAmount `json:"ingredients" validate:"required,min=1,dive"`
	Tags        []int64            `json:"tags" validate:"required,min=1,dive,gt=0"`
}

// Input приводит RecipeUpdate к RecipeInput. Пустое Image означает,
// что изображение не меняется.
func (u RecipeUpdate) Input() RecipeInput {
	return RecipeInput(u)
}
