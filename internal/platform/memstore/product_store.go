package memstore

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/ChenReuven/next-api/internal/domain"
	"github.com/ChenReuven/next-api/internal/store"
)

// Listing defaults applied when the filter leaves them unset.
const (
	defaultPage   = 1
	defaultLimit  = 10
	defaultSortBy = "id"
	defaultOrder  = "asc"
)

// ProductStore implements the store.ProductStore interface over a
// mutex-guarded slice.
type ProductStore struct {
	mu       sync.RWMutex
	products []domain.Product
}

// NewProductStore creates an in-memory product store seeded with the given
// products. Seed records must pass domain validation; request payloads are
// checked by the handlers instead.
func NewProductStore(products []domain.Product) (*ProductStore, error) {
	seeded := make([]domain.Product, len(products))
	copy(seeded, products)
	for i := range seeded {
		if err := seeded[i].Validate(); err != nil {
			return nil, fmt.Errorf("invalid seed product %d: %w", seeded[i].ID, err)
		}
	}
	return &ProductStore{products: seeded}, nil
}

// Ensure ProductStore implements store.ProductStore interface
var _ store.ProductStore = (*ProductStore)(nil)

// List implements store.ProductStore.List
func (s *ProductStore) List(ctx context.Context, filter store.ProductFilter) (*store.ProductPage, error) {
	s.mu.RLock()
	filtered := make([]domain.Product, 0, len(s.products))
	for _, p := range s.products {
		if matches(p, filter) {
			filtered = append(filtered, p)
		}
	}
	s.mu.RUnlock()

	sortProducts(filtered, filter)

	page := filter.Page
	if page < 1 {
		page = defaultPage
	}
	limit := filter.Limit
	if limit < 1 {
		limit = defaultLimit
	}

	total := len(filtered)
	totalPages := (total + limit - 1) / limit

	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	return &store.ProductPage{
		Products:      filtered[start:end],
		CurrentPage:   page,
		TotalPages:    totalPages,
		TotalProducts: total,
		Limit:         limit,
	}, nil
}

func matches(p domain.Product, filter store.ProductFilter) bool {
	if filter.Category != "" && p.Category != filter.Category {
		return false
	}
	if filter.MinPrice != nil && p.Price < *filter.MinPrice {
		return false
	}
	if filter.MaxPrice != nil && p.Price > *filter.MaxPrice {
		return false
	}
	if filter.InStock != nil && p.InStock != *filter.InStock {
		return false
	}
	return true
}

func sortProducts(products []domain.Product, filter store.ProductFilter) {
	sortBy := filter.SortBy
	if sortBy == "" {
		sortBy = defaultSortBy
	}
	order := filter.Order
	if order == "" {
		order = defaultOrder
	}

	less := func(a, b domain.Product) bool {
		switch sortBy {
		case "name":
			return a.Name < b.Name
		case "price":
			return a.Price < b.Price
		case "category":
			return a.Category < b.Category
		default:
			return a.ID < b.ID
		}
	}

	sort.SliceStable(products, func(i, j int) bool {
		if order == "desc" {
			return less(products[j], products[i])
		}
		return less(products[i], products[j])
	})
}

// GetByID implements store.ProductStore.GetByID
func (s *ProductStore) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.products {
		if s.products[i].ID == id {
			product := s.products[i]
			return &product, nil
		}
	}
	return nil, store.ErrProductNotFound
}

// Create implements store.ProductStore.Create
func (s *ProductStore) Create(ctx context.Context, product *domain.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	product.ID = s.nextIDLocked()
	s.products = append(s.products, *product)
	return nil
}

// Update implements store.ProductStore.Update
func (s *ProductStore) Update(ctx context.Context, product *domain.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID == product.ID {
			s.products[i] = *product
			return nil
		}
	}
	return store.ErrProductNotFound
}

// Delete implements store.ProductStore.Delete
func (s *ProductStore) Delete(ctx context.Context, id int64) (*domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID == id {
			removed := s.products[i]
			s.products = append(s.products[:i], s.products[i+1:]...)
			return &removed, nil
		}
	}
	return nil, store.ErrProductNotFound
}

// nextIDLocked returns max(ID)+1, or 1 for an empty store.
// Callers must hold the write lock.
func (s *ProductStore) nextIDLocked() int64 {
	var max int64
	for i := range s.products {
		if s.products[i].ID > max {
			max = s.products[i].ID
		}
	}
	return max + 1
}
