package store

import (
	"context"

	"github.com/ChenReuven/next-api/internal/domain"
)

// ProductFilter narrows and orders a product listing.
// Zero values mean "no constraint"; pointer fields distinguish an absent
// filter from a filter on the zero value.
type ProductFilter struct {
	Category string
	MinPrice *float64
	MaxPrice *float64
	InStock  *bool

	// SortBy is one of id, name, price, category. Order is asc or desc.
	SortBy string
	Order  string

	// Page is 1-based; Limit is the page size.
	Page  int
	Limit int
}

// ProductPage is one page of a filtered product listing together with the
// pagination metadata computed over the whole filtered set.
type ProductPage struct {
	Products      []domain.Product
	CurrentPage   int
	TotalPages    int
	TotalProducts int
	Limit         int
}

// ProductStore defines the interface for the products resource.
type ProductStore interface {
	// List returns the page of products selected by the filter.
	// Filtering and sorting are applied before pagination.
	List(ctx context.Context, filter ProductFilter) (*ProductPage, error)

	// GetByID retrieves a product by its unique ID.
	// Returns ErrProductNotFound if the product does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Product, error)

	// Create saves a new product and assigns it the next free ID.
	// The assigned ID is written back into the passed product.
	Create(ctx context.Context, product *domain.Product) error

	// Update modifies an existing product's details, preserving the ID.
	// Returns ErrProductNotFound if the product does not exist.
	Update(ctx context.Context, product *domain.Product) error

	// Delete removes a product from the store by its ID and returns the
	// removed record. Returns ErrProductNotFound if the product does not exist.
	Delete(ctx context.Context, id int64) (*domain.Product, error)
}
