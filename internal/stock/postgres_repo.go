package stock

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepo struct {
	db *pgxpool.Pool
}

func NewPostgresRepo(db *pgxpool.Pool) *PostgresRepo {
	return &PostgresRepo{db: db}
}

func (r *PostgresRepo) ListStocks(ctx context.Context, ids []string) (map[string]int, error) {
	rows, err := r.db.Query(ctx, "SELECT id, stock FROM mangas WHERE id = ANY($1)", ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int, len(ids))
	for rows.Next() {
		var id string
		var count int
		if err := rows.Scan(&id, &count); err != nil {
			return nil, err
		}
		counts[id] = count
	}
	return counts, rows.Err()
}

func (r *PostgresRepo) GetStock(ctx context.Context, id string) (Info, error) {
	var info Info
	err := r.db.QueryRow(ctx, "SELECT id, title, stock FROM mangas WHERE id = $1", id).
		Scan(&info.ID, &info.Title, &info.Stock)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Info{}, ErrNotFound
		}
		return Info{}, err
	}
	return info, nil
}

func (r *PostgresRepo) UpdateStock(ctx context.Context, id string, count int) error {
	_, err := r.db.Exec(ctx, "UPDATE mangas SET stock = $2 WHERE id = $1", id, count)
	return err
}
