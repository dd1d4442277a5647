// Package subscription содержит бизнес-логику подписок пользователей друг на друга.
package subscription

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/magabrotheeeer/foodgram/internal/models"
)

// Repository определяет методы хранилища, нужные сервису подписок.
type Repository interface {
	// GetUser возвращает пользователя по ID или models.ErrNotFound.
	GetUser(ctx context.Context, id int64) (*models.User, error)
	// SubscriptionExists проверяет наличие подписки userID на subID.
	SubscriptionExists(ctx context.Context, userID, subID int64) (bool, error)
	// CreateSubscription добавляет подписку и возвращает её ID.
	CreateSubscription(ctx context.Context, userID, subID int64) (int64, error)
	// RemoveSubscription удаляет подписку и возвращает количество удалённых записей.
	RemoveSubscription(ctx context.Context, userID, subID int64) (int, error)
	// ListSubscriptionIDs возвращает ID пользователей, на которых подписан userID.
	ListSubscriptionIDs(ctx context.Context, userID int64) ([]int64, error)
	// ListSubscriptions возвращает пользователей, на которых подписан userID.
	ListSubscriptions(ctx context.Context, userID int64, limit, offset int) ([]*models.User, error)
}

// Service реализует подписку и отписку, а также выборки подписок.
type Service struct {
	repo Repository
	log  *slog.Logger
}

// New создаёт новый экземпляр Service.
func New(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log,
	}
}

// Subscribe подписывает userID на subID и возвращает профиль автора, на которого подписались.
func (s *Service) Subscribe(ctx context.Context, userID, subID int64) (models.Profile, error) {
	const op = "services.subscription.Subscribe"

	if userID == subID {
		return models.Profile{}, models.ErrSelfSubscription
	}
	target, err := s.repo.GetUser(ctx, subID)
	if err != nil {
		return models.Profile{}, fmt.Errorf("%s: %w", op, err)
	}
	exists, err := s.repo.SubscriptionExists(ctx, userID, subID)
	if err != nil {
		return models.Profile{}, fmt.Errorf("%s: %w", op, err)
	}
	if exists {
		return models.Profile{}, models.ErrAlreadySubscribed
	}

	if _, err = s.repo.CreateSubscription(ctx, userID, subID); err != nil {
		if errors.Is(err, models.ErrAlreadyExists) {
			return models.Profile{}, models.ErrAlreadySubscribed
		}
		return models.Profile{}, fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("user subscribed", slog.Int64("user_id", userID), slog.Int64("sub_id", subID))
	return models.NewProfile(target, true), nil
}

// Unsubscribe удаляет подписку userID на subID.
func (s *Service) Unsubscribe(ctx context.Context, userID, subID int64) error {
	const op = "services.subscription.Unsubscribe"

	if _, err := s.repo.GetUser(ctx, userID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if _, err := s.repo.GetUser(ctx, subID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	exists, err := s.repo.SubscriptionExists(ctx, userID, subID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if !exists {
		return models.ErrNotSubscribed
	}

	count, err := s.repo.RemoveSubscription(ctx, userID, subID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if count == 0 {
		return models.ErrNotSubscribed
	}

	s.log.Info("user unsubscribed", slog.Int64("user_id", userID), slog.Int64("sub_id", subID))
	return nil
}

// SubsIDs возвращает ID пользователей, на которых подписан userID.
func (s *Service) SubsIDs(ctx context.Context, userID int64) ([]int64, error) {
	const op = "services.subscription.SubsIDs"

	ids, err := s.repo.ListSubscriptionIDs(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return ids, nil
}

// Subscriptions возвращает профили пользователей, на которых подписан userID.
func (s *Service) Subscriptions(ctx context.Context, userID int64, limit, offset int) ([]models.Profile, error) {
	const op = "services.subscription.Subscriptions"

	users, err := s.repo.ListSubscriptions(ctx, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	res := make([]models.Profile, 0, len(users))
	for _, u := range users {
		res = append(res, models.NewProfile(u, true))
	}
	return res, nil
}

// Profile возвращает пользователя userID глазами viewerID: с признаком,
// подписан ли viewerID на него. Нулевой viewerID означает анонимный просмотр.
func (s *Service) Profile(ctx context.Context, viewerID, userID int64) (models.Profile, error) {
	const op = "services.subscription.Profile"

	u, err := s.repo.GetUser(ctx, userID)
	if err != nil {
		return models.Profile{}, fmt.Errorf("%s: %w", op, err)
	}
	if viewerID == 0 || viewerID == userID {
		return models.NewProfile(u, false), nil
	}
	ids, err := s.SubsIDs(ctx, viewerID)
	if err != nil {
		return models.Profile{}, fmt.Errorf("%s: %w", op, err)
	}
	return models.NewProfile(u, slices.Contains(ids, userID)), nil
}
