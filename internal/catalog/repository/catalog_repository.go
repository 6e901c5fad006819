package repository

import (
	"context"
	"database/sql"
	"fmt"

	"quotebot/internal/domain"
	"quotebot/internal/errors"
)

type MySQLCatalogRepository struct {
	db *sql.DB
}

func NewMySQLCatalogRepository(db *sql.DB) *MySQLCatalogRepository {
	return &MySQLCatalogRepository{db: db}
}

// FindByNameLike returns the first product related to the given text by
// substring containment in either direction: the stored name contains the
// text, or the text contains the stored name (spoken orders often wrap
// the catalog name in extra words, e.g. "جهاز ايفون 15" for "ايفون 15").
// Case-insensitivity comes from the column collation; ORDER BY id pins
// the "first match" to insertion order so repeated lookups within one
// store are deterministic.
func (r *MySQLCatalogRepository) FindByNameLike(ctx context.Context, name string) (*domain.Product, error) {
	query := `
		SELECT id, name, price, description, createdAt, updatedAt
		FROM Product
		WHERE name LIKE ? OR ? LIKE CONCAT('%', name, '%')
		ORDER BY id
		LIMIT 1
	`

	var p domain.Product
	err := r.db.QueryRowContext(ctx, query, "%"+name+"%", name).Scan(
		&p.ID, &p.Name, &p.Price, &p.Description, &p.CreatedAt, &p.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError(fmt.Sprintf("no product matching %q", name))
	}
	if err != nil {
		return nil, fmt.Errorf("querying product by name: %w", err)
	}

	return &p, nil
}

func (r *MySQLCatalogRepository) ListAll(ctx context.Context) ([]domain.Product, error) {
	query := `
		SELECT id, name, price, description, createdAt, updatedAt
		FROM Product
		ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying products: %w", err)
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		var p domain.Product
		err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.Description, &p.CreatedAt, &p.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("scanning product row: %w", err)
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating product rows: %w", err)
	}

	return products, nil
}

func (r *MySQLCatalogRepository) Insert(ctx context.Context, product domain.Product) (int, error) {
	query := `INSERT INTO Product (name, price, description) VALUES (?, ?, ?)`

	result, err := r.db.ExecContext(ctx, query, product.Name, product.Price, product.Description)
	if err != nil {
		return 0, fmt.Errorf("inserting product: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("getting inserted product id: %w", err)
	}

	return int(id), nil
}

func (r *MySQLCatalogRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM Product`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting products: %w", err)
	}
	return count, nil
}
