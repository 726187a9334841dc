package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error     string `json:"error"`
	Available *int64 `json:"available,omitempty"`
}

// --- Request types ---

type createSweetRequest struct {
	Name        string  `json:"name"        validate:"required,min=2"`
	Category    string  `json:"category"    validate:"required,oneof=Chocolate Candy Cake Cookie Pastry 'Ice Cream' Other"`
	Price       float64 `json:"price"       validate:"gte=0"`
	Quantity    int64   `json:"quantity"    validate:"gte=0"`
	Description string  `json:"description" validate:"max=500"`
	ImageURL    string  `json:"image_url"   validate:"omitempty,url"`
}

type updateSweetRequest struct {
	Name        *string  `json:"name"        validate:"omitempty,min=2"`
	Category    *string  `json:"category"    validate:"omitempty,oneof=Chocolate Candy Cake Cookie Pastry 'Ice Cream' Other"`
	Price       *float64 `json:"price"       validate:"omitempty,gte=0"`
	Quantity    *int64   `json:"quantity"    validate:"omitempty,gte=0"`
	Description *string  `json:"description" validate:"omitempty,max=500"`
	ImageURL    *string  `json:"image_url"   validate:"omitempty,url"`
}

// purchaseRequest defaults to one unit when the body omits quantity.
type purchaseRequest struct {
	Quantity *int64 `json:"quantity" validate:"omitempty,gte=1"`
}

type restockRequest struct {
	Quantity int64 `json:"quantity" validate:"required,gte=1"`
}

// --- Response types ---
// These are owned by the transport layer so the JSON contract is not coupled
// to internal service changes.

type sweetResponse struct {
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

type sweetEnvelope struct {
	Message string        `json:"message,omitempty"`
	Sweet   sweetResponse `json:"sweet"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type purchaseResponse struct {
	Message   string        `json:"message"`
	Sweet     sweetResponse `json:"sweet"`
	Purchased int64         `json:"purchased"`
}

type restockResponse struct {
	Message string        `json:"message"`
	Sweet   sweetResponse `json:"sweet"`
	Added   int64         `json:"added"`
}

type paginationResponse struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}

type listSweetsResponse struct {
	Sweets     []sweetResponse    `json:"sweets"`
	Pagination paginationResponse `json:"pagination"`
}
