package schema

import (
	"time"

	"catalog-api/internal/domain"
)

// ProductCreateRequest is the raw payload for creating a product. Pointer
// fields let validation tell an absent value apart from a zero one.
type ProductCreateRequest struct {
	Name        *string  `json:"name" validate:"required,min=5,max=200"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price" validate:"required,gt=0"`
	CategoryID  *int64   `json:"category_id" validate:"required"`
	ImageURL    *string  `json:"image_url"`
}

// ProductCreate is a product payload that passed validation.
// Obtain one through NewProductCreate.
type ProductCreate struct {
	Name        string
	Description *string
	Price       float64
	CategoryID  int64
	ImageURL    *string
}

// NewProductCreate validates req and returns the typed payload.
// The returned error is a *ValidationError listing every failing field.
func NewProductCreate(req ProductCreateRequest) (ProductCreate, error) {
	if err := validateStruct(req); err != nil {
		return ProductCreate{}, err
	}

	return ProductCreate{
		Name:        *req.Name,
		Description: req.Description,
		Price:       *req.Price,
		CategoryID:  *req.CategoryID,
		ImageURL:    req.ImageURL,
	}, nil
}

// ToDomain maps the payload onto a new, not yet persisted product
func (p ProductCreate) ToDomain() *domain.Product {
	return &domain.Product{
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		CategoryID:  p.CategoryID,
		ImageURL:    p.ImageURL,
	}
}

// ProductResponse is the output shape of a product
type ProductResponse struct {
	ID          int64             `json:"id"`
	Name        string            `json:"name"`
	Description *string           `json:"description"`
	Price       float64           `json:"price"`
	CategoryID  int64             `json:"category_id"`
	ImageURL    *string           `json:"image_url"`
	CreatedAt   time.Time         `json:"created_at"`
	Category    *CategoryResponse `json:"category"`
}

// NewProductResponse converts a stored product. Output is not re-validated
// against the create constraints.
func NewProductResponse(p *domain.Product) ProductResponse {
	resp := ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		CategoryID:  p.CategoryID,
		ImageURL:    p.ImageURL,
		CreatedAt:   p.CreatedAt,
	}

	if p.Category != nil {
		category := NewCategoryResponse(p.Category)
		resp.Category = &category
	}

	return resp
}

// ProductListResponse wraps a list of products with its size
type ProductListResponse struct {
	Products []ProductResponse `json:"products"`
	Total    int               `json:"total"`
}

// NewProductListResponse builds the envelope; Total always equals len(Products)
func NewProductListResponse(products []*domain.Product) *ProductListResponse {
	items := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		items = append(items, NewProductResponse(p))
	}
	return &ProductListResponse{Products: items, Total: len(items)}
}
