package profile

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	// IsAdmin asks the remote is_admin procedure whether the user holds the
	// admin role.
	IsAdmin(ctx context.Context, userID string) (bool, error)
	GetCreatedAt(ctx context.Context, userID string) (time.Time, error)
	Update(ctx context.Context, userID string, update Update) error
}

type PostgresRepo struct {
	db *pgxpool.Pool
}

func NewPostgresRepo(db *pgxpool.Pool) *PostgresRepo {
	return &PostgresRepo{db: db}
}

func (r *PostgresRepo) IsAdmin(ctx context.Context, userID string) (bool, error) {
	var isAdmin bool
	err := r.db.QueryRow(ctx, "SELECT is_admin($1)", userID).Scan(&isAdmin)
	if err != nil {
		return false, err
	}
	return isAdmin, nil
}

func (r *PostgresRepo) GetCreatedAt(ctx context.Context, userID string) (time.Time, error) {
	var createdAt time.Time
	err := r.db.QueryRow(ctx, "SELECT created_at FROM profiles WHERE id = $1", userID).Scan(&createdAt)
	return createdAt, err
}

func (r *PostgresRepo) Update(ctx context.Context, userID string, update Update) error {
	sets := []string{}
	args := []any{userID}
	argn := 2

	if update.Username != nil {
		sets = append(sets, fmt.Sprintf("username = $%d", argn))
		args = append(args, *update.Username)
		argn++
	}
	if update.AvatarURL != nil {
		sets = append(sets, fmt.Sprintf("avatar_url = $%d", argn))
		args = append(args, *update.AvatarURL)
		argn++
	}
	if len(sets) == 0 {
		return nil
	}

	query := fmt.Sprintf("UPDATE profiles SET %s WHERE id = $1", strings.Join(sets, ", "))
	_, err := r.db.Exec(ctx, query, args...)
	return err
}
