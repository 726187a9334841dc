package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/sweetshop/sweetshop-api/internal/core/domain"
)

func handleError(t *testing.T, err error, debug bool) (*httptest.ResponseRecorder, errorResponse) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop(), debug)(err, c)

	var body errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode error envelope: %v", err)
	}
	return rec, body
}

func TestErrorHandler_DomainErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{"validation", fmt.Errorf("%w: name must be at least 2 characters", domain.ErrValidation), http.StatusBadRequest, "validation failed: name must be at least 2 characters"},
		{"invalid role", domain.ErrInvalidRole, http.StatusBadRequest, "invalid role"},
		{"invalid credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized, "invalid email or password"},
		{"user not found", domain.ErrUserNotFound, http.StatusNotFound, "user not found"},
		{"email taken", domain.ErrEmailTaken, http.StatusConflict, "user with this email already exists"},
		{"sweet not found", domain.ErrSweetNotFound, http.StatusNotFound, "sweet not found"},
		{"sweet exists", domain.ErrSweetExists, http.StatusConflict, "a sweet with this name already exists"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, body := handleError(t, tt.err, false)
			if rec.Code != tt.wantCode {
				t.Fatalf("expected %d, got %d", tt.wantCode, rec.Code)
			}
			if body.Error != tt.wantMsg {
				t.Fatalf("expected %q, got %q", tt.wantMsg, body.Error)
			}
			if body.Available != nil {
				t.Fatalf("available must be omitted: %v", *body.Available)
			}
		})
	}
}

func TestErrorHandler_InsufficientStock(t *testing.T) {
	rec, body := handleError(t, &domain.InsufficientStockError{Available: 3}, false)
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
	if body.Error != "insufficient stock" {
		t.Fatalf("unexpected message: %q", body.Error)
	}
	if body.Available == nil || *body.Available != 3 {
		t.Fatalf("expected available=3, got %v", body.Available)
	}
}

func TestErrorHandler_EchoHTTPError(t *testing.T) {
	rec, body := handleError(t, echo.NewHTTPError(http.StatusUnauthorized, "authentication required"), false)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if body.Error != "authentication required" {
		t.Fatalf("unexpected message: %q", body.Error)
	}
}

func TestErrorHandler_UnexpectedErrorHidesDetail(t *testing.T) {
	rec, body := handleError(t, errors.New("mongo: connection reset"), false)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if body.Error != "internal server error" {
		t.Fatalf("internal detail leaked: %q", body.Error)
	}
}

func TestErrorHandler_DebugExposesDetail(t *testing.T) {
	_, body := handleError(t, errors.New("mongo: connection reset"), true)
	if body.Error != "mongo: connection reset" {
		t.Fatalf("expected raw error in debug mode, got %q", body.Error)
	}
}
