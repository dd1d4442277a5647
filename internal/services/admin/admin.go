// Package admin реализует административный раздел пользователей:
// список с фильтрами по email и username и редактирование полей
// username, email, first_name, last_name, is_staff, is_active.
package admin

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/magabrotheeeer/foodgram/internal/models"
)

// UserRepository определяет методы хранилища пользователей.
type UserRepository interface {
	GetUser(ctx context.Context, id int64) (*models.User, error)
	ListUsers(ctx context.Context, filter models.UserFilter, limit, offset int) ([]*models.User, error)
	UpdateUser(ctx context.Context, user models.User) (int, error)
	ListUserIDs(ctx context.Context) ([]int64, error)
}

// Service выполняет административные операции над пользователями.
type Service struct {
	users UserRepository
	log   *slog.Logger
}

// New создаёт новый экземпляр Service.
func New(users UserRepository, log *slog.Logger) *Service {
	return &Service{
		users: users,
		log:   log,
	}
}

// ListUsers возвращает пользователей, подходящих под фильтр.
func (s *Service) ListUsers(ctx context.Context, filter models.UserFilter, page models.Page) ([]*models.User, error) {
	const op = "services.admin.ListUsers"
	users, err := s.users.ListUsers(ctx, filter, page.Limit, page.Offset)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return users, nil
}

// UserIDs возвращает ID всех пользователей.
func (s *Service) UserIDs(ctx context.Context) ([]int64, error) {
	const op = "services.admin.UserIDs"
	ids, err := s.users.ListUserIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return ids, nil
}

// GetUser возвращает пользователя по ID.
func (s *Service) GetUser(ctx context.Context, id int64) (*models.User, error) {
	const op = "services.admin.GetUser"
	u, err := s.users.GetUser(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return u, nil
}

// UpdateUser применяет изменения администратора к пользователю и возвращает
// обновлённую запись. Пустой запрос ничего не меняет.
func (s *Service) UpdateUser(ctx context.Context, id int64, upd models.UserAdminUpdate) (*models.User, error) {
	const op = "services.admin.UpdateUser"

	u, err := s.users.GetUser(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if upd.Empty() {
		return u, nil
	}
	upd.Apply(u)

	count, err := s.users.UpdateUser(ctx, *u)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if count == 0 {
		return nil, fmt.Errorf("%s: %w", op, models.ErrNotFound)
	}

	s.log.Info("user updated by admin", slog.Int64("id", id))
	return u, nil
}
