package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"product-catalog/internal/products"

	"github.com/gin-gonic/gin"
)

const (
	defaultPage = 0
	defaultSize = 10
)

type ProductService interface {
	CreateProduct(ctx context.Context, p products.Product) (products.Product, error)
	GetProduct(ctx context.Context, id int64) (products.Product, error)
	UpdateProduct(ctx context.Context, id int64, p products.Product) (products.Product, error)
	DeleteProduct(ctx context.Context, id int64) error
	ListProducts(ctx context.Context, page, size int) ([]products.Product, error)
}

type Handler struct {
	service ProductService
}

func NewHandler(svc ProductService) *Handler {
	return &Handler{service: svc}
}

type errorResponse struct {
	Error string `json:"error" example:"product not found"`
}

// CreateProduct godoc
// @Summary      Create a new product
// @Tags         products
// @Accept       json
// @Produce      plain
// @Param        body  body      products.Product  true  "Product data (id and timestamps ignored)"
// @Success      200   {string}  string  "Product created with id 1"
// @Failure      400   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/products [post]
func (h *Handler) CreateProduct(c *gin.Context) {
	var req products.Product
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	created, err := h.service.CreateProduct(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse{Error: "failed to create product"})
		return
	}

	c.String(http.StatusOK, fmt.Sprintf("Product created with id %d", created.ID))
}

// GetProduct godoc
// @Summary      Get a product by ID
// @Tags         products
// @Produce      json
// @Param        id   path      int  true  "Product ID"
// @Success      200  {object}  products.Product
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /api/products/{id} [get]
func (h *Handler) GetProduct(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid product id"})
		return
	}

	product, err := h.service.GetProduct(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, products.ErrNotFound) {
			c.JSON(http.StatusNotFound, errorResponse{Error: products.ErrNotFound.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, errorResponse{Error: "failed to get product"})
		return
	}

	c.JSON(http.StatusOK, product)
}

// ListProducts godoc
// @Summary      List products with pagination
// @Tags         products
// @Produce      json
// @Param        page  query     int  false  "Zero-based page number"  default(0)
// @Param        size  query     int  false  "Page size"               default(10)
// @Success      200   {array}   products.Product
// @Failure      500   {object}  errorResponse
// @Router       /api/products [get]
func (h *Handler) ListProducts(c *gin.Context) {
	page := parseQueryInt(c.Query("page"), defaultPage)
	size := parseQueryInt(c.Query("size"), defaultSize)

	items, err := h.service.ListProducts(c.Request.Context(), page, size)
	if err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse{Error: "failed to get products"})
		return
	}

	c.JSON(http.StatusOK, items)
}

// UpdateProduct godoc
// @Summary      Update a product by ID
// @Tags         products
// @Accept       json
// @Produce      plain
// @Param        id    path      int               true  "Product ID"
// @Param        body  body      products.Product  true  "Product data"
// @Success      200   {string}  string  "Product updated with id 1"
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/products/{id} [put]
func (h *Handler) UpdateProduct(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid product id"})
		return
	}

	var req products.Product
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	if _, err := h.service.UpdateProduct(c.Request.Context(), id, req); err != nil {
		if errors.Is(err, products.ErrNotFound) {
			c.JSON(http.StatusNotFound, errorResponse{Error: products.ErrNotFound.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, errorResponse{Error: "failed to update product"})
		return
	}

	c.String(http.StatusOK, fmt.Sprintf("Product updated with id %d", id))
}

// DeleteProduct godoc
// @Summary      Delete a product by ID
// @Tags         products
// @Produce      plain
// @Param        id   path      int  true  "Product ID"
// @Success      200  {string}  string  "Product deleted with id: 1"
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /api/products/{id} [delete]
func (h *Handler) DeleteProduct(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid product id"})
		return
	}

	if err := h.service.DeleteProduct(c.Request.Context(), id); err != nil {
		if errors.Is(err, products.ErrNotFound) {
			c.JSON(http.StatusNotFound, errorResponse{Error: products.ErrNotFound.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, errorResponse{Error: "failed to delete product"})
		return
	}

	c.String(http.StatusOK, fmt.Sprintf("Product deleted with id: %d", id))
}

func parseQueryInt(raw string, fallback int) int {
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		return fallback
	}
	return value
}
