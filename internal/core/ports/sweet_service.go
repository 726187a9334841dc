package ports

import (
	"context"

	"github.com/sweetshop/sweetshop-api/internal/core/domain"
)

// CreateSweetInput carries all data needed to add a sweet to the catalog.
type CreateSweetInput struct {
	Name        string
	Category    string
	Price       float64
	Quantity    int64
	Description string
	ImageURL    string
}

// UpdateSweetInput is a partial update; nil fields are left unchanged.
type UpdateSweetInput struct {
	Name        *string
	Category    *string
	Price       *float64
	Quantity    *int64
	Description *string
	ImageURL    *string
}

// ListSweetsInput carries pagination for the list endpoint.
type ListSweetsInput struct {
	Page  int
	Limit int
}

// SearchSweetsInput carries filters and pagination for the search endpoint.
type SearchSweetsInput struct {
	Name     string
	Category string
	MinPrice *float64
	MaxPrice *float64
	Page     int
	Limit    int
}

// SweetPage is a single page of catalog results.
type SweetPage struct {
	Items      []*domain.Sweet
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// PurchaseResult is returned after a successful stock decrement.
type PurchaseResult struct {
	Sweet     *domain.Sweet
	Purchased int64
}

// RestockResult is returned after a successful stock increment.
type RestockResult struct {
	Sweet *domain.Sweet
	Added int64
}

// SweetService defines use-case operations for the catalog and inventory.
type SweetService interface {
	Create(ctx context.Context, input CreateSweetInput) (*domain.Sweet, error)
	Get(ctx context.Context, id string) (*domain.Sweet, error)
	List(ctx context.Context, input ListSweetsInput) (*SweetPage, error)
	Search(ctx context.Context, input SearchSweetsInput) (*SweetPage, error)
	Update(ctx context.Context, id string, input UpdateSweetInput) (*domain.Sweet, error)
	Delete(ctx context.Context, id string) error
	Purchase(ctx context.Context, id string, qty int64) (*PurchaseResult, error)
	Restock(ctx context.Context, id string, qty int64) (*RestockResult, error)
}
