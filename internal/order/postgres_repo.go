package order

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepo struct {
	db *pgxpool.Pool
}

func NewPostgresRepo(db *pgxpool.Pool) *PostgresRepo {
	return &PostgresRepo{db: db}
}

const orderColumns = "o.id, o.user_id, o.status, o.total, o.created_at, o.payment_intent_id, o.shipping_address"

func (r *PostgresRepo) ListByUser(ctx context.Context, userID string) ([]Order, error) {
	query := fmt.Sprintf("SELECT %s FROM orders o WHERE o.user_id = $1 ORDER BY o.created_at DESC", orderColumns)
	return r.list(ctx, query, userID)
}

func (r *PostgresRepo) ListAll(ctx context.Context) ([]Order, error) {
	query := fmt.Sprintf("SELECT %s FROM orders o ORDER BY o.created_at DESC", orderColumns)
	return r.list(ctx, query)
}

func (r *PostgresRepo) list(ctx context.Context, query string, args ...any) ([]Order, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range out {
		items, err := r.listItems(ctx, out[i].ID)
		if err != nil {
			return nil, err
		}
		out[i].Items = items
	}
	return out, nil
}

func (r *PostgresRepo) GetByID(ctx context.Context, orderID string) (Order, error) {
	query := fmt.Sprintf("SELECT %s FROM orders o WHERE o.id = $1", orderColumns)
	o, err := scanOrder(r.db.QueryRow(ctx, query, orderID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Order{}, ErrNotFound
		}
		return Order{}, err
	}

	items, err := r.listItems(ctx, o.ID)
	if err != nil {
		return Order{}, err
	}
	o.Items = items
	return o, nil
}

func (r *PostgresRepo) UpdateStatus(ctx context.Context, orderID string, status Status) (Order, error) {
	tag, err := r.db.Exec(ctx, "UPDATE orders SET status = $2 WHERE id = $1", orderID, status)
	if err != nil {
		return Order{}, err
	}
	if tag.RowsAffected() == 0 {
		return Order{}, ErrNotFound
	}
	return r.GetByID(ctx, orderID)
}

// Create inserts the order and its items in one transaction, assigning ids
// and the creation time.
func (r *PostgresRepo) Create(ctx context.Context, o *Order) error {
	if o.ID == "" {
		o.ID = uuid.New().String()
	}
	o.CreatedAt = time.Now()

	var shipping []byte
	if o.ShippingAddress != nil {
		var err error
		shipping, err = json.Marshal(o.ShippingAddress)
		if err != nil {
			return err
		}
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	const orderSQL = `
		INSERT INTO orders (id, user_id, status, total, created_at, payment_intent_id, shipping_address)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err = tx.Exec(ctx, orderSQL,
		o.ID, o.UserID, o.Status, o.Total, o.CreatedAt, nullable(o.PaymentIntentID), shipping)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}

	const itemSQL = `
		INSERT INTO order_items (id, order_id, manga_id, quantity, price)
		VALUES ($1, $2, $3, $4, $5)`
	for i := range o.Items {
		if o.Items[i].ID == "" {
			o.Items[i].ID = uuid.New().String()
		}
		_, err = tx.Exec(ctx, itemSQL,
			o.Items[i].ID, o.ID, o.Items[i].Manga.ID, o.Items[i].Quantity, o.Items[i].Price)
		if err != nil {
			return fmt.Errorf("insert order item: %w", err)
		}
	}

	return tx.Commit(ctx)
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func scanOrder(row pgx.Row) (Order, error) {
	var o Order
	var paymentIntentID *string
	var shipping []byte

	err := row.Scan(&o.ID, &o.UserID, &o.Status, &o.Total, &o.CreatedAt, &paymentIntentID, &shipping)
	if err != nil {
		return Order{}, err
	}
	if paymentIntentID != nil {
		o.PaymentIntentID = *paymentIntentID
	}
	if len(shipping) > 0 {
		var addr ShippingAddress
		if err := json.Unmarshal(shipping, &addr); err != nil {
			return Order{}, fmt.Errorf("decode shipping address: %w", err)
		}
		o.ShippingAddress = &addr
	}
	return o, nil
}

func (r *PostgresRepo) listItems(ctx context.Context, orderID string) ([]Item, error) {
	const query = `
		SELECT i.id, i.quantity, i.price, m.id, m.title, m.cover_url
		FROM order_items i
		JOIN mangas m ON m.id = i.manga_id
		WHERE i.order_id = $1`

	rows, err := r.db.Query(ctx, query, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Item
	for rows.Next() {
		var item Item
		if err := rows.Scan(&item.ID, &item.Quantity, &item.Price,
			&item.Manga.ID, &item.Manga.Title, &item.Manga.CoverURL); err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, rows.Err()
}
