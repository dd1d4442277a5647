package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/magabrotheeeer/foodgram/internal/models"
)

const userColumns = `id, username, email, first_name, last_name, password_hash,
			      is_staff, is_active, date_joined`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (*models.User, error) {
	var u models.User
	if err := row.Scan(&u.ID, &u.Username, &u.Email, &u.FirstName, &u.LastName,
		&u.PasswordHash, &u.IsStaff, &u.IsActive, &u.DateJoined); err != nil {
		return nil, err
	}
	return &u, nil
}

// CreateUser сохраняет нового пользователя и возвращает его ID.
func (s *Storage) CreateUser(ctx context.Context, user models.User) (int64, error) {
	const op = "storage.CreateUser"
	if err := checkCtx(ctx, op); err != nil {
		return 0, err
	}

	query := `INSERT INTO users (username, email, first_name, last_name, password_hash,
			      is_staff, is_active)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)
			  RETURNING id`
	var newID int64
	if err := s.conn(ctx).QueryRowContext(ctx, query,
		user.Username, user.Email, user.FirstName, user.LastName, user.PasswordHash,
		user.IsStaff, user.IsActive).Scan(&newID); err != nil {
		return 0, fmt.Errorf("%s: %w", op, mapError(err))
	}
	return newID, nil
}

// GetUser возвращает пользователя по ID.
func (s *Storage) GetUser(ctx context.Context, id int64) (*models.User, error) {
	const op = "storage.GetUser"
	if err := checkCtx(ctx, op); err != nil {
		return nil, err
	}

	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	u, err := scanUser(s.conn(ctx).QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, mapError(err))
	}
	return u, nil
}

// GetUserByUsername возвращает пользователя по его username.
func (s *Storage) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	const op = "storage.GetUserByUsername"
	if err := checkCtx(ctx, op); err != nil {
		return nil, err
	}

	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1`
	u, err := scanUser(s.conn(ctx).QueryRowContext(ctx, query, username))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, mapError(err))
	}
	return u, nil
}

// ListUsers возвращает пользователей с фильтрами по email и username и пагинацией.
func (s *Storage) ListUsers(ctx context.Context, filter models.UserFilter, limit, offset int) ([]*models.User, error) {
	const op = "storage.ListUsers"
	if err := checkCtx(ctx, op); err != nil {
		return nil, err
	}

	var (
		conds []string
		args  []any
	)
	if filter.Email != "" {
		args = append(args, filter.Email)
		conds = append(conds, fmt.Sprintf("email = $%d", len(args)))
	}
	if filter.Username != "" {
		args = append(args, filter.Username)
		conds = append(conds, fmt.Sprintf("username = $%d", len(args)))
	}
	query := `SELECT ` + userColumns + ` FROM users`
	if len(conds) > 0 {
		query += ` WHERE ` + strings.Join(conds, " AND ")
	}
	args = append(args, limit, offset)
	query += fmt.Sprintf(` ORDER BY id LIMIT $%d OFFSET $%d`, len(args)-1, len(args))

	rows, err := s.conn(ctx).QueryContext(ctx, query, args...)
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

// UpdateUser сохраняет редактируемые администратором поля пользователя
// и возвращает количество изменённых строк.
func (s *Storage) UpdateUser(ctx context.Context, user models.User) (int, error) {
	const op = "storage.UpdateUser"
	if err := checkCtx(ctx, op); err != nil {
		return 0, err
	}

	query := `UPDATE users
			  SET username = $1, email = $2, first_name = $3, last_name = $4,
			      is_staff = $5, is_active = $6
			  WHERE id = $7`
	result, err := s.conn(ctx).ExecContext(ctx, query,
		user.Username, user.Email, user.FirstName, user.LastName,
		user.IsStaff, user.IsActive, user.ID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, mapError(err))
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}

// ListUserIDs возвращает ID всех пользователей.
func (s *Storage) ListUserIDs(ctx context.Context) ([]int64, error) {
	const op = "storage.ListUserIDs"
	if err := checkCtx(ctx, op); err != nil {
		return nil, err
	}
	ids, err := s.listIDs(ctx, `SELECT id FROM users ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return ids, nil
}

func (s *Storage) listIDs(ctx context.Context, query string, args ...any) ([]int64, error) {
	rows, err := s.conn(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = rows.Close()
	}()

	ids := make([]int64, 0)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return ids, nil
}
