package ports

import (
	"context"

	"github.com/sweetshop/sweetshop-api/internal/core/domain"
)

// SearchSweetsFilter carries all query parameters for searching the catalog.
// Name matches as a case-insensitive substring; Category matches exactly.
// Price bounds are inclusive and each is optional.
type SearchSweetsFilter struct {
	Name     string
	Category string
	MinPrice *float64
	MaxPrice *float64
	Page     int // 1-based
	Limit    int
}

// SweetUpdate describes a partial update. Nil fields are left untouched.
type SweetUpdate struct {
	Name        *string
	Category    *string
	Price       *float64
	Quantity    *int64
	Description *string
	ImageURL    *string
}

// SweetRepository defines persistence operations for the sweet catalog.
type SweetRepository interface {
	Create(ctx context.Context, sweet *domain.Sweet) (*domain.Sweet, error)
	FindByID(ctx context.Context, id string) (*domain.Sweet, error)
	FindByName(ctx context.Context, name string) (*domain.Sweet, error)
	// List returns a page of sweets ordered by creation time descending,
	// plus the total number of documents.
	List(ctx context.Context, page, limit int) ([]*domain.Sweet, int64, error)
	Search(ctx context.Context, filter SearchSweetsFilter) ([]*domain.Sweet, int64, error)
	Update(ctx context.Context, id string, update SweetUpdate) (*domain.Sweet, error)
	Delete(ctx context.Context, id string) error

	// DecrementStock atomically subtracts qty from the sweet's quantity,
	// failing with InsufficientStockError when fewer than qty units remain.
	// The decrement and the stock check are a single conditional update, so
	// concurrent purchases can never drive the quantity below zero.
	DecrementStock(ctx context.Context, id string, qty int64) (*domain.Sweet, error)
	// IncrementStock atomically adds qty to the sweet's quantity.
	IncrementStock(ctx context.Context, id string, qty int64) (*domain.Sweet, error)
}
