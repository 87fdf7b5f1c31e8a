package service

import (
	"context"
	"errors"
	"fmt"

	"catalog-api/internal/repository"
	"catalog-api/internal/schema"
)

// ProductService defines the interface for product business logic
type ProductService interface {
	ListProducts(ctx context.Context) (*schema.ProductListResponse, error)
	GetProduct(ctx context.Context, id int64) (*schema.ProductResponse, error)
	ListProductsByCategory(ctx context.Context, categoryID int64) (*schema.ProductListResponse, error)
	CreateProduct(ctx context.Context, data schema.ProductCreate) (*schema.ProductResponse, error)
}

type productService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
}

// NewProductService creates a new instance of ProductService. Both
// repositories are expected to share the same handle (see repository.NewStore).
func NewProductService(
	productRepo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
) ProductService {
	return &productService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
	}
}

// ListProducts returns every product in the catalog
func (s *productService) ListProducts(ctx context.Context) (*schema.ProductListResponse, error) {
	products, err := s.productRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	return schema.NewProductListResponse(products), nil
}

// GetProduct retrieves a single product
func (s *productService) GetProduct(ctx context.Context, id int64) (*schema.ProductResponse, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, &NotFoundError{Resource: "product", ID: id}
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	resp := schema.NewProductResponse(product)
	return &resp, nil
}

// ListProductsByCategory returns the products of an existing category.
// The category is looked up before any product query runs.
func (s *productService) ListProductsByCategory(ctx context.Context, categoryID int64) (*schema.ProductListResponse, error) {
	if _, err := s.categoryRepo.GetByID(ctx, categoryID); err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, &NotFoundError{Resource: "category", ID: categoryID}
		}
		return nil, fmt.Errorf("failed to get category: %w", err)
	}

	products, err := s.productRepo.GetByCategory(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to list products by category: %w", err)
	}

	return schema.NewProductListResponse(products), nil
}

// CreateProduct persists a validated product after confirming its category exists
func (s *productService) CreateProduct(ctx context.Context, data schema.ProductCreate) (*schema.ProductResponse, error) {
	category, err := s.categoryRepo.GetByID(ctx, data.CategoryID)
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, &InvalidReferenceError{Field: "category_id", Resource: "category", ID: data.CategoryID}
		}
		return nil, fmt.Errorf("failed to verify category: %w", err)
	}

	product := data.ToDomain()
	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	product.Category = category

	resp := schema.NewProductResponse(product)
	return &resp, nil
}
