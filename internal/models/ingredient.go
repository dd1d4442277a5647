package models

// MeasurementUnit: единица измерения ингредиента (например, "г").
type MeasurementUnit struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Ingredient: ингредиент с названием единицы измерения.
type Ingredient struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	MeasurementUnit string `json:"measurement_unit"`
}

// RecipeIngredient: ингредиент рецепта вместе с его количеством.
type RecipeIngredient struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	MeasurementUnit string  `json:"measurement_unit"`
	Amount          float64 `json:"amount"`
}

// IngredientRequest используется для создания ингредиента администратором.
type IngredientRequest struct {
	Name            string `json:"name" validate:"required,max=128"`
	MeasurementUnit string `json:"measurement_unit" validate:"required,max=16"`
}
