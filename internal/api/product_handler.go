package api

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/ChenReuven/next-api/internal/api/shared"
	"github.com/ChenReuven/next-api/internal/domain"
	"github.com/ChenReuven/next-api/internal/redact"
	"github.com/ChenReuven/next-api/internal/store"
)

// ProductHandler handles the products resource endpoints.
type ProductHandler struct {
	products store.ProductStore
}

// NewProductHandler creates a new ProductHandler with the given dependencies.
func NewProductHandler(products store.ProductStore) *ProductHandler {
	return &ProductHandler{
		products: products,
	}
}

// List handles GET /api/products. With an ?id= query it returns that single
// product; otherwise it filters, sorts, and paginates the collection and
// wraps the page in pagination metadata.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	if raw := query.Get("id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			shared.RespondWithError(w, r, http.StatusNotFound, "Product not found")
			return
		}
		product, err := h.products.GetByID(r.Context(), id)
		if err != nil {
			h.respondProductError(w, r, err)
			return
		}
		shared.RespondWithJSON(w, r, http.StatusOK, product)
		return
	}

	filter := store.ProductFilter{
		Category: query.Get("category"),
		SortBy:   query.Get("sortBy"),
		Order:    query.Get("order"),
	}

	if raw := query.Get("minPrice"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			filter.MinPrice = &v
		}
	}
	if raw := query.Get("maxPrice"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			filter.MaxPrice = &v
		}
	}
	if raw := query.Get("inStock"); raw != "" {
		v := raw == "true"
		filter.InStock = &v
	}
	if raw := query.Get("page"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			filter.Page = v
		}
	}
	if raw := query.Get("limit"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			filter.Limit = v
		}
	}

	page, err := h.products.List(r.Context(), filter)
	if err != nil {
		slog.Error("failed to list products", "error", redact.Error(err))
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Server error")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, ProductListResponse{
		Data: page.Products,
		Meta: ProductListMeta{
			CurrentPage:   page.CurrentPage,
			TotalPages:    page.TotalPages,
			TotalProducts: page.TotalProducts,
			Limit:         page.Limit,
		},
	})
}

// Create handles POST /api/products. The new record receives the next free
// ID; inStock defaults to true when absent.
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateProductRequest

	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	if req.Name == "" || req.Price == nil || req.Category == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Name, price, and category are required")
		return
	}

	inStock := true
	if req.InStock != nil {
		inStock = *req.InStock
	}

	product := domain.Product{
		Name:     req.Name,
		Price:    *req.Price,
		Category: req.Category,
		InStock:  inStock,
	}
	if err := h.products.Create(r.Context(), &product); err != nil {
		slog.Error("failed to create product", "error", redact.Error(err))
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Server error")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, product)
}

// Update handles PUT /api/products?id=. Fields absent from the payload keep
// their current values; the ID never changes.
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := requestID(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Product ID is required")
		return
	}

	var req UpdateProductRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	current, err := h.products.GetByID(r.Context(), id)
	if err != nil {
		h.respondProductError(w, r, err)
		return
	}

	updated := *current
	if req.Name != "" {
		updated.Name = req.Name
	}
	if req.Price != nil {
		updated.Price = *req.Price
	}
	if req.Category != "" {
		updated.Category = req.Category
	}
	if req.InStock != nil {
		updated.InStock = *req.InStock
	}

	if err := h.products.Update(r.Context(), &updated); err != nil {
		h.respondProductError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, updated)
}

// Delete handles DELETE /api/products?id=.
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := requestID(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Product ID is required")
		return
	}

	removed, err := h.products.Delete(r.Context(), id)
	if err != nil {
		h.respondProductError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, DeleteProductResponse{
		Message: "Product deleted successfully",
		Product: removed,
	})
}

func (h *ProductHandler) respondProductError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, store.ErrProductNotFound) {
		shared.RespondWithError(w, r, http.StatusNotFound, "Product not found")
		return
	}
	slog.Error("product store operation failed", "error", redact.Error(err))
	shared.RespondWithError(w, r, http.StatusInternalServerError, "Server error")
}
