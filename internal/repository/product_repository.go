package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"catalog-api/internal/domain"
)

var (
	ErrProductNotFound = errors.New("product not found")
)

// ProductRepository defines the interface for product data access
type ProductRepository interface {
	GetAll(ctx context.Context) ([]*domain.Product, error)
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
	GetByCategory(ctx context.Context, categoryID int64) ([]*domain.Product, error)
	Create(ctx context.Context, product *domain.Product) error
}

// selectProducts loads products together with their category so callers can
// render the nested category without a second round trip.
const selectProducts = `
	SELECT p.id, p.name, p.description, p.price, p.category_id, p.image_url, p.created_at,
	       c.id, c.name, c.description, c.created_at
	FROM products p
	JOIN categories c ON c.id = p.category_id
`

type productRepository struct {
	db DBTX
}

// NewProductRepository creates a new instance of ProductRepository
func NewProductRepository(db DBTX) ProductRepository {
	return &productRepository{db: db}
}

// GetAll retrieves every product ordered by ID
func (r *productRepository) GetAll(ctx context.Context) ([]*domain.Product, error) {
	rows, err := r.db.QueryContext(ctx, selectProducts+` ORDER BY p.id ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	return collectProducts(rows)
}

// GetByID retrieves a product by ID
func (r *productRepository) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	row := r.db.QueryRowContext(ctx, selectProducts+` WHERE p.id = $1`, id)

	product, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to find product by ID: %w", err)
	}

	return product, nil
}

// GetByCategory retrieves all products belonging to a category
func (r *productRepository) GetByCategory(ctx context.Context, categoryID int64) ([]*domain.Product, error) {
	rows, err := r.db.QueryContext(ctx, selectProducts+` WHERE p.category_id = $1 ORDER BY p.id ASC`, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to list products by category: %w", err)
	}
	defer rows.Close()

	return collectProducts(rows)
}

// Create inserts a new product and fills in the ID and CreatedAt assigned by the
// database. Price is read back so the caller holds the stored value.
func (r *productRepository) Create(ctx context.Context, product *domain.Product) error {
	query := `
		INSERT INTO products (name, description, price, category_id, image_url)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, price, created_at
	`

	err := r.db.QueryRowContext(
		ctx,
		query,
		product.Name,
		product.Description,
		product.Price,
		product.CategoryID,
		product.ImageURL,
	).Scan(&product.ID, &product.Price, &product.CreatedAt)

	if err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}

	return nil
}

func collectProducts(rows *sql.Rows) ([]*domain.Product, error) {
	products := []*domain.Product{}
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, product)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating products: %w", err)
	}

	return products, nil
}

func scanProduct(row scanner) (*domain.Product, error) {
	product := &domain.Product{Category: &domain.Category{}}
	err := row.Scan(
		&product.ID,
		&product.Name,
		&product.Description,
		&product.Price,
		&product.CategoryID,
		&product.ImageURL,
		&product.CreatedAt,
		&product.Category.ID,
		&product.Category.Name,
		&product.Category.Description,
		&product.Category.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return product, nil
}
