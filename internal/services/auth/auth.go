// Package auth содержит регистрацию пользователей, вход по паролю и проверку JWT.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/magabrotheeeer/foodgram/internal/lib/jwt"
	"github.com/magabrotheeeer/foodgram/internal/lib/password"
	"github.com/magabrotheeeer/foodgram/internal/models"
)

// UserRepository описывает контракт для работы с пользователями в базе данных.
type UserRepository interface {
	// CreateUser сохраняет нового пользователя и возвращает его ID.
	CreateUser(ctx context.Context, user models.User) (int64, error)
	// GetUser возвращает пользователя по ID.
	GetUser(ctx context.Context, id int64) (*models.User, error)
	// GetUserByUsername возвращает пользователя по имени или models.ErrNotFound.
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
}

// Service отвечает за регистрацию, авторизацию и валидацию JWT.
type Service struct {
	users    UserRepository
	jwtMaker jwt.Maker
	log      *slog.Logger
}

// New создаёт новый экземпляр Service.
func New(users UserRepository, jwtMaker jwt.Maker, log *slog.Logger) *Service {
	return &Service{
		users:    users,
		jwtMaker: jwtMaker,
		log:      log,
	}
}

// Register создаёт активного пользователя без прав администратора.
func (s *Service) Register(ctx context.Context, req models.RegisterRequest) (*models.User, error) {
	const op = "services.auth.Register"

	hashed, err := password.GetHash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	user := models.User{
		Username:     req.Username,
		Email:        strings.ToLower(req.Email),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		PasswordHash: hashed,
		IsActive:     true,
	}
	user.ID, err = s.users.CreateUser(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("user registered", slog.Int64("id", user.ID), slog.String("username", user.Username))
	return &user, nil
}

// Login проверяет пароль пользователя и выпускает JWT.
// Неизвестный пользователь и неверный пароль неразличимы для вызывающего.
func (s *Service) Login(ctx context.Context, username, rawPassword string) (string, error) {
	const op = "services.auth.Login"

	user, err := s.users.GetUserByUsername(ctx, username)
	if errors.Is(err, models.ErrNotFound) {
		return "", models.ErrInvalidCredentials
	}
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	if err := password.CompareHash(user.PasswordHash, rawPassword); err != nil {
		return "", models.ErrInvalidCredentials
	}
	if !user.IsActive {
		return "", models.ErrInactiveUser
	}

	token, err := s.jwtMaker.GenerateToken(user.ID, user.Username, user.IsStaff)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return token, nil
}

// ValidateToken проверяет JWT и возвращает claims. Пользователь должен
// существовать и быть активным; флаг администратора берётся из базы.
func (s *Service) ValidateToken(ctx context.Context, token string) (*jwt.CustomClaims, error) {
	const op = "services.auth.ValidateToken"

	claims, err := s.jwtMaker.ParseToken(token)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	user, err := s.users.GetUser(ctx, claims.UserID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if !user.IsActive {
		return nil, models.ErrInactiveUser
	}
	claims.Username = user.Username
	claims.IsStaff = user.IsStaff
	return claims, nil
}
