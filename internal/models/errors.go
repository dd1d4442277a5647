package models

import "errors"

var (
	// ErrNotFound: запрошенная запись отсутствует.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists: нарушено ограничение уникальности.
	ErrAlreadyExists = errors.New("already exists")

	// ErrSelfSubscription: попытка подписаться на самого себя.
	ErrSelfSubscription = errors.New("cannot subscribe to yourself")
	// ErrAlreadySubscribed: подписка уже существует.
	ErrAlreadySubscribed = errors.New("already subscribed")
	// ErrNotSubscribed: подписки, которую пытаются удалить, нет.
	ErrNotSubscribed = errors.New("not subscribed")

	// ErrForbidden: действие разрешено только автору или администратору.
	ErrForbidden = errors.New("forbidden")
	// ErrDuplicateIngredient: ингредиент указан в рецепте больше одного раза.
	ErrDuplicateIngredient = errors.New("duplicate ingredient in recipe")
	// ErrInvalidAmount: количество не помещается в столбец amount.
	ErrInvalidAmount = errors.New("invalid ingredient amount")

	// ErrInvalidCredentials: неверное имя пользователя или пароль.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInactiveUser: учётная запись отключена.
	ErrInactiveUser = errors.New("user is inactive")
)
