package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dwikikusuma/storefront/internal/catalog/app"
	"github.com/dwikikusuma/storefront/internal/catalog/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ProductRepo struct {
	pool *pgxpool.Pool
}

func NewProductRepo(pool *pgxpool.Pool) *ProductRepo {
	return &ProductRepo{pool: pool}
}

func (r *ProductRepo) Create(ctx context.Context, p domain.Product) (domain.Product, error) {
	id := uuid.New()

	row := r.pool.QueryRow(ctx, `
		INSERT INTO products (id, name, description, price_amount, currency, stock)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at`,
		id, p.Name, p.Description, p.Price.Amount, p.Price.Currency, p.Stock)

	created := p
	created.ID = id.String()
	if err := row.Scan(&created.CreatedAt, &created.UpdatedAt); err != nil {
		return domain.Product{}, fmt.Errorf("insert product: %w", err)
	}

	return created, nil
}

func (r *ProductRepo) Get(ctx context.Context, id string) (domain.Product, error) {
	prodID, err := uuid.Parse(id)
	if err != nil {
		return domain.Product{}, app.ErrNotFound
	}

	var p domain.Product
	row := r.pool.QueryRow(ctx, `
		SELECT id, name, description, price_amount, currency, stock, created_at, updated_at
		FROM products WHERE id = $1`, prodID)

	err = row.Scan(&p.ID, &p.Name, &p.Description, &p.Price.Amount, &p.Price.Currency,
		&p.Stock, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Product{}, app.ErrNotFound
	}
	if err != nil {
		return domain.Product{}, fmt.Errorf("get product: %w", err)
	}

	return p, nil
}

func (r *ProductRepo) List(ctx context.Context, limit int, cursor string) ([]domain.Product, string, error) {
	query := `
		SELECT id, name, description, price_amount, currency, stock, created_at, updated_at
		FROM products
		ORDER BY id LIMIT $1`
	args := []any{limit}

	if strings.TrimSpace(cursor) != "" {
		cur, err := uuid.Parse(strings.TrimSpace(cursor))
		if err != nil {
			return nil, "", app.ErrInvalidInput
		}
		query = `
		SELECT id, name, description, price_amount, currency, stock, created_at, updated_at
		FROM products
		WHERE id > $1
		ORDER BY id LIMIT $2`
		args = []any{cur, limit}
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, "", fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Product, 0, limit)
	var nextCursor string
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price.Amount, &p.Price.Currency,
			&p.Stock, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, "", fmt.Errorf("scan product: %w", err)
		}
		out = append(out, p)
		nextCursor = p.ID
	}
	if err := rows.Err(); err != nil {
		return nil, "", err
	}

	if len(out) < limit {
		nextCursor = ""
	}

	return out, nextCursor, nil
}

// Reserve relies on a single guarded UPDATE so the check and the decrement
// happen in one statement; concurrent reservations against the same row
// serialize on the row lock and can never jointly oversell.
func (r *ProductRepo) Reserve(ctx context.Context, productID string, qty int64) (domain.Money, error) {
	prodID, err := uuid.Parse(productID)
	if err != nil {
		return domain.Money{}, app.ErrNotFound
	}

	var price domain.Money
	row := r.pool.QueryRow(ctx, `
		UPDATE products
		SET stock = stock - $2, updated_at = now()
		WHERE id = $1 AND stock >= $2
		RETURNING price_amount, currency`,
		prodID, qty)

	err = row.Scan(&price.Amount, &price.Currency)
	if errors.Is(err, pgx.ErrNoRows) {
		// Either the product is missing or the stock was short. One more
		// read to tell the two rejection reasons apart.
		var exists bool
		if err2 := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM products WHERE id = $1)`, prodID).Scan(&exists); err2 != nil {
			return domain.Money{}, fmt.Errorf("reserve lookup: %w", err2)
		}
		if !exists {
			return domain.Money{}, app.ErrNotFound
		}
		return domain.Money{}, app.ErrInsufficientStock
	}
	if err != nil {
		return domain.Money{}, fmt.Errorf("reserve stock: %w", err)
	}

	return price, nil
}
