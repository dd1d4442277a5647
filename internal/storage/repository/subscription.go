package repository

import (
	"context"
	"fmt"

	"github.com/magabrotheeeer/foodgram/internal/models"
)

// SubscriptionExists проверяет, подписан ли userID на subID.
func (s *Storage) SubscriptionExists(ctx context.Context, userID, subID int64) (bool, error) {
	const op = "storage.SubscriptionExists"
	if err := checkCtx(ctx, op); err != nil {
		return false, err
	}

	query := `SELECT EXISTS (SELECT 1 FROM user_subs WHERE user_id = $1 AND sub_id = $2)`
	var exists bool
	if err := s.conn(ctx).QueryRowContext(ctx, query, userID, subID).Scan(&exists); err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	return exists, nil
}

// CreateSubscription создаёт подписку userID на subID и возвращает её ID.
// Повторная подписка возвращает models.ErrAlreadyExists.
func (s *Storage) CreateSubscription(ctx context.Context, userID, subID int64) (int64, error) {
	const op = "storage.CreateSubscription"
	if err := checkCtx(ctx, op); err != nil {
		return 0, err
	}

	query := `INSERT INTO user_subs (user_id, sub_id)
			  VALUES ($1, $2)
			  RETURNING id`
	var newID int64
	if err := s.conn(ctx).QueryRowContext(ctx, query, userID, subID).Scan(&newID); err != nil {
		return 0, fmt.Errorf("%s: %w", op, mapError(err))
	}
	return newID, nil
}

// RemoveSubscription удаляет подписку и возвращает количество удалённых строк.
func (s *Storage) RemoveSubscription(ctx context.Context, userID, subID int64) (int, error) {
	const op = "storage.RemoveSubscription"
	if err := checkCtx(ctx, op); err != nil {
		return 0, err
	}

	query := `DELETE FROM user_subs WHERE user_id = $1 AND sub_id = $2`
	result, err := s.conn(ctx).ExecContext(ctx, query, userID, subID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}

// ListSubscriptionIDs возвращает ID пользователей, на которых подписан userID.
func (s *Storage) ListSubscriptionIDs(ctx context.Context, userID int64) ([]int64, error) {
	const op = "storage.ListSubscriptionIDs"
	if err := checkCtx(ctx, op); err != nil {
		return nil, err
	}

	ids, err := s.listIDs(ctx, `SELECT sub_id FROM user_subs WHERE user_id = $1 ORDER BY id`, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return ids, nil
}

// ListSubscriptions возвращает пользователей, на которых подписан userID, с пагинацией.
func (s *Storage) ListSubscriptions(ctx context.Context, userID int64, limit, offset int) ([]*models.User, error) {
	const op = "storage.ListSubscriptions"
	if err := checkCtx(ctx, op); err != nil {
		return nil, err
	}

	query := `SELECT ` + userColumns + `
			  FROM users
			  WHERE id IN (SELECT sub_id FROM user_subs WHERE user_id = $1)
			  ORDER BY id
			  LIMIT $2 OFFSET $3`
	rows, err := s.conn(ctx).QueryContext(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, u)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}
