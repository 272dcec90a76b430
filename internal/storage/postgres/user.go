package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"feedreader/internal/domain"
)

type UserStore struct {
	db *sqlx.DB
}

func NewUserStore(db *sqlx.DB) *UserStore {
	return &UserStore{db: db}
}

func (s *UserStore) Create(ctx context.Context, user *domain.User) error {
	err := GetExecutor(ctx, s.db).QueryRowxContext(ctx,
		`INSERT INTO users (email, words_per_minute) VALUES ($1, $2)
		 RETURNING id, created_at, updated_at`,
		user.Email, user.WordsPerMinute,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

func (s *UserStore) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	var user domain.User
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &user,
		`SELECT id, email, words_per_minute, created_at, updated_at FROM users WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &user, nil
}

func (s *UserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &user,
		`SELECT id, email, words_per_minute, created_at, updated_at FROM users WHERE email = $1`, email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	return &user, nil
}

func (s *UserStore) List(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &users,
		`SELECT id, email, words_per_minute, created_at, updated_at FROM users ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}
