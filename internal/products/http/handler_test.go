package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"product-catalog/internal/products"

	"github.com/gin-gonic/gin"
)

type stubService struct {
	createFn func(ctx context.Context, p products.Product) (products.Product, error)
	getFn    func(ctx context.Context, id int64) (products.Product, error)
	updateFn func(ctx context.Context, id int64, p products.Product) (products.Product, error)
	deleteFn func(ctx context.Context, id int64) error
	listFn   func(ctx context.Context, page, size int) ([]products.Product, error)
}

func (s *stubService) CreateProduct(ctx context.Context, p products.Product) (products.Product, error) {
	return s.createFn(ctx, p)
}
func (s *stubService) GetProduct(ctx context.Context, id int64) (products.Product, error) {
	return s.getFn(ctx, id)
}
func (s *stubService) UpdateProduct(ctx context.Context, id int64, p products.Product) (products.Product, error) {
	return s.updateFn(ctx, id, p)
}
func (s *stubService) DeleteProduct(ctx context.Context, id int64) error {
	return s.deleteFn(ctx, id)
}
func (s *stubService) ListProducts(ctx context.Context, page, size int) ([]products.Product, error) {
	return s.listFn(ctx, page, size)
}

func setupRouter(svc ProductService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewHandler(svc)
	r.POST("/api/products", h.CreateProduct)
	r.GET("/api/products", h.ListProducts)
	r.GET("/api/products/:id", h.GetProduct)
	r.PUT("/api/products/:id", h.UpdateProduct)
	r.DELETE("/api/products/:id", h.DeleteProduct)
	return r
}

func TestHandler_CreateProduct(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		svcErr     error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "success returns confirmation text",
			body:       `{"name":"Widget","price":"9.99","quantity":5}`,
			wantStatus: http.StatusOK,
			wantBody:   "Product created with id 1",
		},
		{
			name:       "invalid json",
			body:       `not json`,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &stubService{
				createFn: func(_ context.Context, p products.Product) (products.Product, error) {
					if tt.svcErr != nil {
						return products.Product{}, tt.svcErr
					}
					p.ID = 1
					return p, nil
				},
			}

			r := setupRouter(svc)
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/products", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			r.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Fatalf("want status %d, got %d, body: %s", tt.wantStatus, w.Code, w.Body.String())
			}
			if tt.wantBody != "" && w.Body.String() != tt.wantBody {
				t.Fatalf("want body %q, got %q", tt.wantBody, w.Body.String())
			}
		})
	}
}

func TestHandler_GetProduct(t *testing.T) {
	tests := []struct {
		name       string
		url        string
		svcErr     error
		wantStatus int
	}{
		{
			name:       "success",
			url:        "/api/products/1",
			wantStatus: http.StatusOK,
		},
		{
			name:       "not found maps to 404",
			url:        "/api/products/999",
			svcErr:     products.ErrNotFound,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "invalid id",
			url:        "/api/products/abc",
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &stubService{
				getFn: func(_ context.Context, id int64) (products.Product, error) {
					if tt.svcErr != nil {
						return products.Product{}, tt.svcErr
					}
					return products.Product{ID: id, Name: "Widget"}, nil
				},
			}

			r := setupRouter(svc)
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			r.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Fatalf("want status %d, got %d, body: %s", tt.wantStatus, w.Code, w.Body.String())
			}

			if tt.wantStatus == http.StatusOK {
				var p products.Product
				if err := json.NewDecoder(w.Body).Decode(&p); err != nil {
					t.Fatalf("decode response: %v", err)
				}
				if p.Name != "Widget" {
					t.Fatalf("want product Widget, got %+v", p)
				}
			}
		})
	}
}

func TestHandler_UpdateProduct(t *testing.T) {
	tests := []struct {
		name       string
		url        string
		body       string
		svcErr     error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "success returns confirmation text",
			url:        "/api/products/7",
			body:       `{"name":"Widget2","price":"12.00"}`,
			wantStatus: http.StatusOK,
			wantBody:   "Product updated with id 7",
		},
		{
			name:       "not found",
			url:        "/api/products/999",
			body:       `{"name":"Widget2","price":"12.00"}`,
			svcErr:     products.ErrNotFound,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "invalid id",
			url:        "/api/products/abc",
			body:       `{}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "invalid json",
			url:        "/api/products/7",
			body:       `not json`,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &stubService{
				updateFn: func(_ context.Context, id int64, p products.Product) (products.Product, error) {
					if tt.svcErr != nil {
						return products.Product{}, tt.svcErr
					}
					p.ID = id
					return p, nil
				},
			}

			r := setupRouter(svc)
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPut, tt.url, bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			r.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Fatalf("want status %d, got %d, body: %s", tt.wantStatus, w.Code, w.Body.String())
			}
			if tt.wantBody != "" && w.Body.String() != tt.wantBody {
				t.Fatalf("want body %q, got %q", tt.wantBody, w.Body.String())
			}
		})
	}
}

func TestHandler_DeleteProduct(t *testing.T) {
	tests := []struct {
		name       string
		url        string
		svcErr     error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "success returns confirmation text",
			url:        "/api/products/7",
			wantStatus: http.StatusOK,
			wantBody:   "Product deleted with id: 7",
		},
		{
			name:       "not found",
			url:        "/api/products/999",
			svcErr:     products.ErrNotFound,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "invalid id",
			url:        "/api/products/abc",
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &stubService{
				deleteFn: func(_ context.Context, _ int64) error {
					return tt.svcErr
				},
			}

			r := setupRouter(svc)
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodDelete, tt.url, nil)
			r.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Fatalf("want status %d, got %d, body: %s", tt.wantStatus, w.Code, w.Body.String())
			}
			if tt.wantBody != "" && w.Body.String() != tt.wantBody {
				t.Fatalf("want body %q, got %q", tt.wantBody, w.Body.String())
			}
		})
	}
}

func TestHandler_ListProducts(t *testing.T) {
	tests := []struct {
		name       string
		url        string
		items      []products.Product
		wantStatus int
		wantLen    int
		wantPage   int
		wantSize   int
	}{
		{
			name: "returns bare array",
			url:  "/api/products?page=1&size=2",
			items: []products.Product{
				{ID: 3, Name: "C"},
				{ID: 4, Name: "D"},
			},
			wantStatus: http.StatusOK,
			wantLen:    2,
			wantPage:   1,
			wantSize:   2,
		},
		{
			name:       "defaults to page 0 size 10",
			url:        "/api/products",
			items:      []products.Product{},
			wantStatus: http.StatusOK,
			wantLen:    0,
			wantPage:   0,
			wantSize:   10,
		},
		{
			name:       "negative query values fall back to defaults",
			url:        "/api/products?page=-1&size=-5",
			items:      []products.Product{},
			wantStatus: http.StatusOK,
			wantLen:    0,
			wantPage:   0,
			wantSize:   10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &stubService{
				listFn: func(_ context.Context, page, size int) ([]products.Product, error) {
					if page != tt.wantPage {
						t.Fatalf("want page %d, got %d", tt.wantPage, page)
					}
					if size != tt.wantSize {
						t.Fatalf("want size %d, got %d", tt.wantSize, size)
					}
					return tt.items, nil
				},
			}

			r := setupRouter(svc)
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			r.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Fatalf("want status %d, got %d", tt.wantStatus, w.Code)
			}

			var items []products.Product
			if err := json.NewDecoder(w.Body).Decode(&items); err != nil {
				t.Fatalf("decode response: %v", err)
			}
			if len(items) != tt.wantLen {
				t.Fatalf("want %d items, got %d", tt.wantLen, len(items))
			}
		})
	}
}
