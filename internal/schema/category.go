package schema

import (
	"time"

	"catalog-api/internal/domain"
)

// CategoryResponse is the output shape of a category
type CategoryResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewCategoryResponse converts a stored category into its output shape
func NewCategoryResponse(c *domain.Category) CategoryResponse {
	return CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		CreatedAt:   c.CreatedAt,
	}
}

// CategoryListResponse wraps a list of categories with its size
type CategoryListResponse struct {
	Categories []CategoryResponse `json:"categories"`
	Total      int                `json:"total"`
}

// NewCategoryListResponse builds the envelope for a list of stored categories
func NewCategoryListResponse(categories []*domain.Category) *CategoryListResponse {
	items := make([]CategoryResponse, 0, len(categories))
	for _, c := range categories {
		items = append(items, NewCategoryResponse(c))
	}
	return &CategoryListResponse{Categories: items, Total: len(items)}
}

// CategoryCreateRequest is the raw payload for creating a category
type CategoryCreateRequest struct {
	Name        string  `json:"name" validate:"required,min=2,max=100"`
	Description *string `json:"description"`
}

// CategoryCreate is a category payload that passed validation
type CategoryCreate struct {
	Name        string
	Description *string
}

// NewCategoryCreate validates req
func NewCategoryCreate(req CategoryCreateRequest) (CategoryCreate, error) {
	if err := validateStruct(req); err != nil {
		return CategoryCreate{}, err
	}
	return CategoryCreate{Name: req.Name, Description: req.Description}, nil
}
