package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"product-catalog/internal/products"
)

const healthCheckTimeout = 2 * time.Second

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, p products.Product) (products.Product, error) {
	query := `
		INSERT INTO products (name, description, price, quantity)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, description, price, quantity, created_at, updated_at
	`

	var created products.Product
	err := r.db.QueryRowContext(ctx, query, p.Name, p.Description, p.Price, p.Quantity).Scan(
		&created.ID,
		&created.Name,
		&created.Description,
		&created.Price,
		&created.Quantity,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		return products.Product{}, fmt.Errorf("insert product: %w", err)
	}
	return created, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (products.Product, error) {
	query := `
		SELECT id, name, description, price, quantity, created_at, updated_at
		FROM products
		WHERE id = $1
	`

	var p products.Product
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&p.ID,
		&p.Name,
		&p.Description,
		&p.Price,
		&p.Quantity,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return products.Product{}, products.ErrNotFound
	}
	if err != nil {
		return products.Product{}, fmt.Errorf("select product %d: %w", id, err)
	}
	return p, nil
}

// Update persists the incoming fields and refreshes updated_at; created_at
// is never touched by this statement.
func (r *PostgresRepository) Update(ctx context.Context, p products.Product) (products.Product, error) {
	query := `
		UPDATE products
		SET name = $2, description = $3, price = $4, quantity = $5, updated_at = now()
		WHERE id = $1
		RETURNING id, name, description, price, quantity, created_at, updated_at
	`

	var updated products.Product
	err := r.db.QueryRowContext(ctx, query, p.ID, p.Name, p.Description, p.Price, p.Quantity).Scan(
		&updated.ID,
		&updated.Name,
		&updated.Description,
		&updated.Price,
		&updated.Quantity,
		&updated.CreatedAt,
		&updated.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return products.Product{}, products.ErrNotFound
	}
	if err != nil {
		return products.Product{}, fmt.Errorf("update product %d: %w", p.ID, err)
	}
	return updated, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM products WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete product %d: %w", id, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return products.ErrNotFound
	}

	return nil
}

// List returns one zero-based page of products in stable id order.
func (r *PostgresRepository) List(ctx context.Context, limit, offset int) ([]products.Product, error) {
	query := `
		SELECT id, name, description, price, quantity, created_at, updated_at
		FROM products
		ORDER BY id
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}
	defer rows.Close()

	list := make([]products.Product, 0)
	for rows.Next() {
		var p products.Product
		if err := rows.Scan(
			&p.ID,
			&p.Name,
			&p.Description,
			&p.Price,
			&p.Quantity,
			&p.CreatedAt,
			&p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate products: %w", err)
	}

	return list, nil
}

func (r *PostgresRepository) Health() error {
	ctx, cancel := context.WithTimeout(context.Background(), healthCheckTimeout)
	defer cancel()
	return r.db.PingContext(ctx)
}
