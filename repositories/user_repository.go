package repositories

import (
	"context"
	"errors"
	"time"

	"cyber-shop/config"
	"cyber-shop/models"

	"github.com/jackc/pgx/v5"
)

var ErrUserNotFound = errors.New("user not found")

type UserRepository struct{}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

func (r *UserRepository) Create(user *models.User) error {
	query := `
		INSERT INTO users (username, password, email, avatar, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`
	now := time.Now()
	return config.DB.QueryRow(context.Background(), query,
		user.Username, user.Password, user.Email, user.Avatar, now, now,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
}

func (r *UserRepository) FindByUsername(username string) (*models.User, error) {
	query := `SELECT id, username, password, COALESCE(email, ''), COALESCE(avatar, ''), created_at, updated_at
	          FROM users WHERE username = $1`

	user := &models.User{}
	err := config.DB.QueryRow(context.Background(), query, username).Scan(
		&user.ID, &user.Username, &user.Password, &user.Email, &user.Avatar,
		&user.CreatedAt, &user.UpdatedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (r *UserRepository) FindByID(id int) (*models.User, error) {
	query := `SELECT id, username, password, COALESCE(email, ''), COALESCE(avatar, ''), created_at, updated_at
	          FROM users WHERE id = $1`

	user := &models.User{}
	err := config.DB.QueryRow(context.Background(), query, id).Scan(
		&user.ID, &user.Username, &user.Password, &user.Email, &user.Avatar,
		&user.CreatedAt, &user.UpdatedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (r *UserRepository) Update(user *models.User) error {
	query := `UPDATE users SET username = $1, email = $2, avatar = $3, password = $4, updated_at = $5
	          WHERE id = $6`
	tag, err := config.DB.Exec(context.Background(), query,
		user.Username, user.Email, user.Avatar, user.Password, time.Now(), user.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}
