package domain

import "time"

// Product represents a product in the catalog
type Product struct {
	ID          int64     `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Description *string   `json:"description" db:"description"`
	Price       float64   `json:"price" db:"price"`
	CategoryID  int64     `json:"category_id" db:"category_id"`
	ImageURL    *string   `json:"image_url" db:"image_url"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`

	// Category is loaded alongside the product and is never written back.
	Category *Category `json:"category,omitempty" db:"-"`
}
