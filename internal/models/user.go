// Package models содержит доменные структуры сервиса рецептов: пользователей,
// подписки, рецепты, ингредиенты и теги, а также DTO для приёма данных из
// JSON-запросов и ошибки предметной области.
package models

import "time"

// User представляет зарегистрированного пользователя системы.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	PasswordHash string    `json:"-"`
	IsStaff      bool      `json:"is_staff"`
	IsActive     bool      `json:"is_active"`
	DateJoined   time.Time `json:"date_joined"`
}

// RegisterRequest используется для приёма данных регистрации из JSON-запроса.
type RegisterRequest struct {
	Email     string `json:"email" validate:"required,email,max=254"`
	Username  string `json:"username" validate:"required,min=3,max=150,alphanum"`
	FirstName string `json:"first_name" validate:"required,max=150"`
	LastName  string `json:"last_name" validate:"required,max=150"`
	Password  string `json:"password" validate:"required,min=6,max=128"`
}

// UserFilter задаёт фильтры списка пользователей в административном разделе.
// Пустое поле означает отсутствие фильтра.
type UserFilter struct {
	Email    string
	Username string
}

// UserAdminUpdate содержит поля пользователя, доступные для редактирования
// администратором. Nil означает, что поле не меняется.
type UserAdminUpdate struct {
	Username  *string `json:"username,omitempty" validate:"omitempty,min=3,max=150,alphanum"`
	Email     *string `json:"email,omitempty" validate:"omitempty,email,max=254"`
	FirstName *string `json:"first_name,omitempty" validate:"omitempty,max=150"`
	LastName  *string `json:"last_name,omitempty" validate:"omitempty,max=150"`
	IsStaff   *bool   `json:"is_staff,omitempty"`
	IsActive  *bool   `json:"is_active,omitempty"`
}

// Empty сообщает, что в запросе нет ни одного изменяемого поля.
func (u UserAdminUpdate) Empty() bool {
	return u.Username == nil && u.Email == nil && u.FirstName == nil &&
		u.LastName == nil && u.IsStaff == nil && u.IsActive == nil
}

// Apply переносит заданные поля в пользователя.
func (u UserAdminUpdate) Apply(user *User) {
	if u.Username != nil {
		user.Username = *u.Username
	}
	if u.Email != nil {
		user.Email = *u.Email
	}
	if u.FirstName != nil {
		user.FirstName = *u.FirstName
	}
	if u.LastName != nil {
		user.LastName = *u.LastName
	}
	if u.IsStaff != nil {
		user.IsStaff = *u.IsStaff
	}
	if u.IsActive != nil {
		user.IsActive = *u.IsActive
	}
}
