package domain

import (
	"errors"
	"fmt"
	"time"
)

// Categories is the fixed set of sweet categories accepted by the catalog.
var Categories = []string{
	"Chocolate",
	"Candy",
	"Cake",
	"Cookie",
	"Pastry",
	"Ice Cream",
	"Other",
}

var ErrSweetNotFound = errors.New("sweet not found")
var ErrSweetExists = errors.New("a sweet with this name already exists")
var ErrValidation = errors.New("validation failed")

// InsufficientStockError signals a purchase that asked for more units than are
// in stock. Available carries the quantity at the time of the check so the
// caller can adjust the request.
type InsufficientStockError struct {
	Available int64
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock: %d available", e.Available)
}

// Sweet is a catalog item with a stock quantity.
type Sweet struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Price       float64   `json:"price"`
	Quantity    int64     `json:"quantity"`
	Description string    `json:"description,omitempty"`
	ImageURL    string    `json:"image_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ValidCategory reports whether category is a member of Categories.
func ValidCategory(category string) bool {
	for _, c := range Categories {
		if c == category {
			return true
		}
	}
	return false
}
