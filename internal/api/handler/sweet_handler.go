package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/sweetshop/sweetshop-api/internal/core/ports"
)

// SweetHandler handles HTTP requests for catalog and inventory operations.
type SweetHandler struct {
	service ports.SweetService
}

func NewSweetHandler(service ports.SweetService) *SweetHandler {
	return &SweetHandler{service: service}
}

// Create handles POST /sweets.
//
// @Summary      Add a sweet to the catalog
// @Tags         sweets
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createSweetRequest  true  "Sweet details"
// @Success      201   {object}  sweetEnvelope
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /sweets [post]
func (h *SweetHandler) Create(c echo.Context) error {
	var req createSweetRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	sweet, err := h.service.Create(c.Request().Context(), toCreateInput(req))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, sweetEnvelope{
		Message: "Sweet created successfully",
		Sweet:   toSweetResponse(sweet),
	})
}

// Get handles GET /sweets/:id.
//
// @Summary      Get a sweet by id
// @Tags         sweets
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Sweet id"
// @Success      200  {object}  sweetEnvelope
// @Failure      404  {object}  errorResponse
// @Router       /sweets/{id} [get]
func (h *SweetHandler) Get(c echo.Context) error {
	sweet, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sweetEnvelope{Sweet: toSweetResponse(sweet)})
}

// List handles GET /sweets.
//
// @Summary      List the catalog
// @Tags         sweets
// @Produce      json
// @Security     BearerAuth
// @Param        page   query     int  false  "Page number (default 1)"
// @Param        limit  query     int  false  "Page size (default 10)"
// @Success      200    {object}  listSweetsResponse
// @Router       /sweets [get]
func (h *SweetHandler) List(c echo.Context) error {
	page, err := h.service.List(c.Request().Context(), ports.ListSweetsInput{
		Page:  queryInt(c, "page"),
		Limit: queryInt(c, "limit"),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toListResponse(page))
}

// Search handles GET /sweets/search.
//
// @Summary      Search the catalog
// @Tags         sweets
// @Produce      json
// @Security     BearerAuth
// @Param        name      query     string  false  "Name substring (case-insensitive)"
// @Param        category  query     string  false  "Exact category"
// @Param        minPrice  query     number  false  "Inclusive lower price bound"
// @Param        maxPrice  query     number  false  "Inclusive upper price bound"
// @Param        page      query     int     false  "Page number (default 1)"
// @Param        limit     query     int     false  "Page size (default 10)"
// @Success      200       {object}  listSweetsResponse
// @Failure      400       {object}  errorResponse
// @Router       /sweets/search [get]
func (h *SweetHandler) Search(c echo.Context) error {
	minPrice, err := queryFloat(c, "minPrice")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "minPrice must be a number")
	}
	maxPrice, err := queryFloat(c, "maxPrice")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "maxPrice must be a number")
	}

	page, err := h.service.Search(c.Request().Context(), ports.SearchSweetsInput{
		Name:     c.QueryParam("name"),
		Category: c.QueryParam("category"),
		MinPrice: minPrice,
		MaxPrice: maxPrice,
		Page:     queryInt(c, "page"),
		Limit:    queryInt(c, "limit"),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toListResponse(page))
}

// Update handles PUT /sweets/:id with a partial body.
//
// @Summary      Update a sweet
// @Tags         sweets
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string              true  "Sweet id"
// @Param        body  body      updateSweetRequest  true  "Fields to update"
// @Success      200   {object}  sweetEnvelope
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /sweets/{id} [put]
func (h *SweetHandler) Update(c echo.Context) error {
	var req updateSweetRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	sweet, err := h.service.Update(c.Request().Context(), c.Param("id"), toUpdateInput(req))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, sweetEnvelope{
		Message: "Sweet updated successfully",
		Sweet:   toSweetResponse(sweet),
	})
}

// Delete handles DELETE /sweets/:id. Admin only.
//
// @Summary      Delete a sweet
// @Tags         sweets
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Sweet id"
// @Success      200  {object}  messageResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /sweets/{id} [delete]
func (h *SweetHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Sweet deleted successfully"})
}

// Purchase handles POST /sweets/:id/purchase.
//
// @Summary      Purchase units of a sweet
// @Tags         sweets
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string           true   "Sweet id"
// @Param        body  body      purchaseRequest  false  "Quantity (default 1)"
// @Success      200   {object}  purchaseResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /sweets/{id}/purchase [post]
func (h *SweetHandler) Purchase(c echo.Context) error {
	var req purchaseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	qty := int64(1)
	if req.Quantity != nil {
		qty = *req.Quantity
	}

	result, err := h.service.Purchase(c.Request().Context(), c.Param("id"), qty)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, purchaseResponse{
		Message:   "Purchase successful",
		Sweet:     toSweetResponse(result.Sweet),
		Purchased: result.Purchased,
	})
}

// Restock handles POST /sweets/:id/restock. Admin only.
//
// @Summary      Restock a sweet
// @Tags         sweets
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string          true  "Sweet id"
// @Param        body  body      restockRequest  true  "Quantity to add"
// @Success      200   {object}  restockResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /sweets/{id}/restock [post]
func (h *SweetHandler) Restock(c echo.Context) error {
	var req restockRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.service.Restock(c.Request().Context(), c.Param("id"), req.Quantity)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, restockResponse{
		Message: "Restock successful",
		Sweet:   toSweetResponse(result.Sweet),
		Added:   result.Added,
	})
}

func queryInt(c echo.Context, name string) int {
	n, err := strconv.Atoi(c.QueryParam(name))
	if err != nil {
		return 0
	}
	return n
}

func queryFloat(c echo.Context, name string) (*float64, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, err
	}
	return &f, nil
}
