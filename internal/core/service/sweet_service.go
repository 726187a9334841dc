package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/sweetshop/sweetshop-api/internal/api/metrics"
	"github.com/sweetshop/sweetshop-api/internal/core/domain"
	"github.com/sweetshop/sweetshop-api/internal/core/ports"
)

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100

	minNameLength = 2
	maxDescLength = 500
)

// SweetService implements catalog CRUD and the inventory operations.
type SweetService struct {
	repo   ports.SweetRepository
	logger zerolog.Logger
}

func NewSweetService(repo ports.SweetRepository, logger zerolog.Logger) *SweetService {
	return &SweetService{repo: repo, logger: logger}
}

// Create adds a sweet to the catalog. The name must be unique; quantity
// defaults to zero when unspecified.
func (s *SweetService) Create(ctx context.Context, input ports.CreateSweetInput) (*domain.Sweet, error) {
	name := strings.TrimSpace(input.Name)
	if len(name) < minNameLength {
		return nil, fmt.Errorf("%w: name must be at least %d characters", domain.ErrValidation, minNameLength)
	}
	if !domain.ValidCategory(input.Category) {
		return nil, fmt.Errorf("%w: category must be one of: %s", domain.ErrValidation, strings.Join(domain.Categories, ", "))
	}
	if input.Price < 0 {
		return nil, fmt.Errorf("%w: price cannot be negative", domain.ErrValidation)
	}
	if input.Quantity < 0 {
		return nil, fmt.Errorf("%w: quantity cannot be negative", domain.ErrValidation)
	}
	if len(input.Description) > maxDescLength {
		return nil, fmt.Errorf("%w: description cannot exceed %d characters", domain.ErrValidation, maxDescLength)
	}

	if _, err := s.repo.FindByName(ctx, name); err == nil {
		return nil, domain.ErrSweetExists
	} else if !errors.Is(err, domain.ErrSweetNotFound) {
		return nil, err
	}

	sweet := &domain.Sweet{
		Name:        name,
		Category:    input.Category,
		Price:       input.Price,
		Quantity:    input.Quantity,
		Description: strings.TrimSpace(input.Description),
		ImageURL:    strings.TrimSpace(input.ImageURL),
	}

	created, err := s.repo.Create(ctx, sweet)
	if err != nil {
		return nil, err
	}

	metrics.SweetsCreatedTotal.WithLabelValues(created.Category).Inc()
	s.logger.Info().Str("sweet_id", created.ID).Str("name", created.Name).Msg("sweet created")
	return created, nil
}

// Get returns a single sweet by id.
func (s *SweetService) Get(ctx context.Context, id string) (*domain.Sweet, error) {
	return s.repo.FindByID(ctx, id)
}

// List returns a page of the catalog ordered by creation time descending.
func (s *SweetService) List(ctx context.Context, input ports.ListSweetsInput) (*ports.SweetPage, error) {
	page, limit := normalizePage(input.Page, input.Limit)

	items, total, err := s.repo.List(ctx, page, limit)
	if err != nil {
		return nil, err
	}
	return newSweetPage(items, total, page, limit), nil
}

// Search filters the catalog by name substring, category, and price bounds.
func (s *SweetService) Search(ctx context.Context, input ports.SearchSweetsInput) (*ports.SweetPage, error) {
	if input.Category != "" && !domain.ValidCategory(input.Category) {
		return nil, fmt.Errorf("%w: category must be one of: %s", domain.ErrValidation, strings.Join(domain.Categories, ", "))
	}
	if input.MinPrice != nil && input.MaxPrice != nil && *input.MinPrice > *input.MaxPrice {
		return nil, fmt.Errorf("%w: minPrice cannot exceed maxPrice", domain.ErrValidation)
	}

	page, limit := normalizePage(input.Page, input.Limit)

	items, total, err := s.repo.Search(ctx, ports.SearchSweetsFilter{
		Name:     strings.TrimSpace(input.Name),
		Category: input.Category,
		MinPrice: input.MinPrice,
		MaxPrice: input.MaxPrice,
		Page:     page,
		Limit:    limit,
	})
	if err != nil {
		return nil, err
	}
	return newSweetPage(items, total, page, limit), nil
}

// Update applies a partial update. A changed name is re-checked for
// uniqueness; updating a sweet to its own current name never conflicts.
func (s *SweetService) Update(ctx context.Context, id string, input ports.UpdateSweetInput) (*domain.Sweet, error) {
	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	update := ports.SweetUpdate{
		Category:    input.Category,
		Price:       input.Price,
		Quantity:    input.Quantity,
		Description: input.Description,
		ImageURL:    input.ImageURL,
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if len(name) < minNameLength {
			return nil, fmt.Errorf("%w: name must be at least %d characters", domain.ErrValidation, minNameLength)
		}
		if name != current.Name {
			if _, err := s.repo.FindByName(ctx, name); err == nil {
				return nil, domain.ErrSweetExists
			} else if !errors.Is(err, domain.ErrSweetNotFound) {
				return nil, err
			}
		}
		update.Name = &name
	}
	if input.Category != nil && !domain.ValidCategory(*input.Category) {
		return nil, fmt.Errorf("%w: category must be one of: %s", domain.ErrValidation, strings.Join(domain.Categories, ", "))
	}
	if input.Price != nil && *input.Price < 0 {
		return nil, fmt.Errorf("%w: price cannot be negative", domain.ErrValidation)
	}
	if input.Quantity != nil && *input.Quantity < 0 {
		return nil, fmt.Errorf("%w: quantity cannot be negative", domain.ErrValidation)
	}
	if input.Description != nil && len(*input.Description) > maxDescLength {
		return nil, fmt.Errorf("%w: description cannot exceed %d characters", domain.ErrValidation, maxDescLength)
	}

	updated, err := s.repo.Update(ctx, id, update)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("sweet_id", id).Msg("sweet updated")
	return updated, nil
}

// Delete removes a sweet permanently.
func (s *SweetService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("sweet_id", id).Msg("sweet deleted")
	return nil
}

// Purchase decrements stock by qty. The repository performs the check and the
// decrement as one conditional update, so the quantity can never go negative
// even under concurrent purchases.
func (s *SweetService) Purchase(ctx context.Context, id string, qty int64) (*ports.PurchaseResult, error) {
	if qty < 1 {
		return nil, fmt.Errorf("%w: quantity must be at least 1", domain.ErrValidation)
	}

	sweet, err := s.repo.DecrementStock(ctx, id, qty)
	if err != nil {
		var ins *domain.InsufficientStockError
		if errors.As(err, &ins) {
			metrics.InsufficientStockTotal.Inc()
			s.logger.Info().
				Str("sweet_id", id).
				Int64("requested", qty).
				Int64("available", ins.Available).
				Msg("purchase rejected: insufficient stock")
		}
		return nil, err
	}

	metrics.PurchasesTotal.Inc()
	metrics.UnitsSoldTotal.Add(float64(qty))
	s.logger.Info().Str("sweet_id", id).Int64("purchased", qty).Int64("remaining", sweet.Quantity).Msg("purchase completed")
	return &ports.PurchaseResult{Sweet: sweet, Purchased: qty}, nil
}

// Restock increments stock by qty.
func (s *SweetService) Restock(ctx context.Context, id string, qty int64) (*ports.RestockResult, error) {
	if qty < 1 {
		return nil, fmt.Errorf("%w: quantity must be at least 1", domain.ErrValidation)
	}

	sweet, err := s.repo.IncrementStock(ctx, id, qty)
	if err != nil {
		return nil, err
	}

	metrics.RestocksTotal.Inc()
	s.logger.Info().Str("sweet_id", id).Int64("added", qty).Int64("quantity", sweet.Quantity).Msg("restock completed")
	return &ports.RestockResult{Sweet: sweet, Added: qty}, nil
}

func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = defaultPage
	}
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return page, limit
}

func newSweetPage(items []*domain.Sweet, total int64, page, limit int) *ports.SweetPage {
	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return &ports.SweetPage{
		Items:      items,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}
}
