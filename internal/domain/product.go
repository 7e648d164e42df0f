package domain

import "errors"

// Common product validation errors
var (
	ErrEmptyProductID   = errors.New("product ID must be positive")
	ErrEmptyProductName = errors.New("product name cannot be empty")
	ErrNegativePrice    = errors.New("product price cannot be negative")
	ErrEmptyCategory    = errors.New("product category cannot be empty")
)

// Product represents a record in the products resource.
type Product struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Category string  `json:"category"`
	InStock  bool    `json:"inStock"`
}

// Validate checks if the Product has valid data.
// Returns an error if any field fails validation.
func (p *Product) Validate() error {
	if p.ID <= 0 {
		return ErrEmptyProductID
	}

	if p.Name == "" {
		return ErrEmptyProductName
	}

	if p.Price < 0 {
		return ErrNegativePrice
	}

	if p.Category == "" {
		return ErrEmptyCategory
	}

	return nil
}
