package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/dwikikusuma/storefront/internal/receipt/app"
	"github.com/dwikikusuma/storefront/internal/receipt/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ReceiptRepo struct {
	pool *pgxpool.Pool
}

func NewReceiptRepo(pool *pgxpool.Pool) *ReceiptRepo {
	return &ReceiptRepo{pool: pool}
}

func (r *ReceiptRepo) Insert(ctx context.Context, rec domain.Receipt) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin insert receipt: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `
		INSERT INTO receipts (code, purchaser, amount, currency, created_at)
		VALUES ($1, $2, $3, $4, $5)`,
		rec.Code, rec.Purchaser, rec.Amount.Amount, rec.Amount.Currency, rec.CreatedAt)
	if err != nil {
		if isCodeConflict(err) {
			return app.ErrCodeExists
		}
		return fmt.Errorf("insert receipt: %w", err)
	}

	for i, ln := range rec.Lines {
		_, err = tx.Exec(ctx, `
			INSERT INTO receipt_lines (receipt_code, product_id, quantity, unit_amount, currency)
			VALUES ($1, $2, $3, $4, $5)`,
			rec.Code, ln.ProductID, ln.Quantity, ln.UnitPrice.Amount, ln.UnitPrice.Currency)
		if err != nil {
			return fmt.Errorf("insert receipt line %d: %w", i, err)
		}
	}

	return tx.Commit(ctx)
}

func (r *ReceiptRepo) GetByCode(ctx context.Context, code string) (domain.Receipt, error) {
	var rec domain.Receipt
	row := r.pool.QueryRow(ctx, `
		SELECT code, purchaser, amount, currency, created_at
		FROM receipts WHERE code = $1`, code)

	err := row.Scan(&rec.Code, &rec.Purchaser, &rec.Amount.Amount, &rec.Amount.Currency, &rec.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Receipt{}, app.ErrNotFound
	}
	if err != nil {
		return domain.Receipt{}, fmt.Errorf("get receipt: %w", err)
	}

	rec.Lines, err = r.linesFor(ctx, rec.Code)
	if err != nil {
		return domain.Receipt{}, err
	}
	return rec, nil
}

func (r *ReceiptRepo) ListByPurchaser(ctx context.Context, purchaser string) ([]domain.Receipt, error) {
	return r.list(ctx, `
		SELECT code, purchaser, amount, currency, created_at
		FROM receipts WHERE purchaser = $1
		ORDER BY created_at DESC`, purchaser)
}

func (r *ReceiptRepo) ListRecent(ctx context.Context, limit int) ([]domain.Receipt, error) {
	return r.list(ctx, `
		SELECT code, purchaser, amount, currency, created_at
		FROM receipts
		ORDER BY created_at DESC LIMIT $1`, limit)
}

func (r *ReceiptRepo) list(ctx context.Context, query string, args ...any) ([]domain.Receipt, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list receipts: %w", err)
	}
	defer rows.Close()

	var out []domain.Receipt
	for rows.Next() {
		var rec domain.Receipt
		if err := rows.Scan(&rec.Code, &rec.Purchaser, &rec.Amount.Amount, &rec.Amount.Currency, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan receipt: %w", err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range out {
		if out[i].Lines, err = r.linesFor(ctx, out[i].Code); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (r *ReceiptRepo) linesFor(ctx context.Context, code string) ([]domain.Line, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT product_id, quantity, unit_amount, currency
		FROM receipt_lines WHERE receipt_code = $1`, code)
	if err != nil {
		return nil, fmt.Errorf("list receipt lines: %w", err)
	}
	defer rows.Close()

	var lines []domain.Line
	for rows.Next() {
		var ln domain.Line
		if err := rows.Scan(&ln.ProductID, &ln.Quantity, &ln.UnitPrice.Amount, &ln.UnitPrice.Currency); err != nil {
			return nil, fmt.Errorf("scan receipt line: %w", err)
		}
		lines = append(lines, ln)
	}
	return lines, rows.Err()
}

// isCodeConflict matches only the unique violation on the receipt code;
// every other persistence error must surface to the caller.
func isCodeConflict(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505" && pgErr.ConstraintName == "receipts_pkey"
}
