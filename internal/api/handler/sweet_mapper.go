package handler

import (
	"github.com/sweetshop/sweetshop-api/internal/core/domain"
	"github.com/sweetshop/sweetshop-api/internal/core/ports"
)

// --- Request → Service input ---

func toCreateInput(req createSweetRequest) ports.CreateSweetInput {
	return ports.CreateSweetInput{
		Name:        req.Name,
		Category:    req.Category,
		Price:       req.Price,
		Quantity:    req.Quantity,
		Description: req.Description,
		ImageURL:    req.ImageURL,
	}
}

func toUpdateInput(req updateSweetRequest) ports.UpdateSweetInput {
	return ports.UpdateSweetInput{
		Name:        req.Name,
		Category:    req.Category,
		Price:       req.Price,
		Quantity:    req.Quantity,
		Description: req.Description,
		ImageURL:    req.ImageURL,
	}
}

// --- Domain → HTTP response ---

func toSweetResponse(s *domain.Sweet) sweetResponse {
	return sweetResponse{
		ID:          s.ID,
		Name:        s.Name,
		Category:    s.Category,
		Price:       s.Price,
		Quantity:    s.Quantity,
		Description: s.Description,
		ImageURL:    s.ImageURL,
		CreatedAt:   s.CreatedAt.UTC(),
		UpdatedAt:   s.UpdatedAt.UTC(),
	}
}

func toListResponse(page *ports.SweetPage) listSweetsResponse {
	items := make([]sweetResponse, len(page.Items))
	for i, s := range page.Items {
		items[i] = toSweetResponse(s)
	}
	return listSweetsResponse{
		Sweets: items,
		Pagination: paginationResponse{
			Page:  page.Page,
			Limit: page.Limit,
			Total: page.Total,
			Pages: page.TotalPages,
		},
	}
}
