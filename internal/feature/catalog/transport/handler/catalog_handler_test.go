package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shop_backend/internal/feature/catalog/adapters"
	"shop_backend/internal/feature/catalog/usecase"
	"shop_backend/internal/platform/db/dbtest"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// newCatalogRouter wires the real usecases and repositories on SQLite.
func newCatalogRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gdb := dbtest.New(t)

	countries := adapters.NewCountryRepository(gdb)
	categories := adapters.NewCategoryRepository(gdb)
	brands := adapters.NewBrandRepository(gdb)
	products := adapters.NewProductRepository(gdb)
	links := adapters.NewCategoryBrandRepository(gdb)

	ch := NewCountryHandler(usecase.NewCountryUsecase(countries))
	cat := NewCategoryHandler(usecase.NewCategoryUsecase(categories))
	bh := NewBrandHandler(usecase.NewBrandUsecase(brands, countries))
	ph := NewProductHandler(usecase.NewProductUsecase(products, categories, brands))
	cbh := NewCategoryBrandHandler(usecase.NewCategoryBrandUsecase(links, categories, brands))

	r := gin.New()
	register := func(path string, list, page, get, create, update, del gin.HandlerFunc) {
		g := r.Group(path)
		g.GET("", list)
		g.GET("/paginado", page)
		g.GET("/:id", get)
		g.POST("", create)
		g.PUT("/:id", update)
		g.DELETE("/:id", del)
	}
	register("/paises", ch.List, ch.ListPage, ch.Get, ch.Create, ch.Update, ch.Delete)
	register("/categorias", cat.List, cat.ListPage, cat.Get, cat.Create, cat.Update, cat.Delete)
	register("/marcas", bh.List, bh.ListPage, bh.Get, bh.Create, bh.Update, bh.Delete)
	register("/productos", ph.List, ph.ListPage, ph.Get, ph.Create, ph.Update, ph.Delete)

	cb := r.Group("/categoriaMarca")
	cb.GET("", cbh.List)
	cb.GET("/:id", cbh.Get)
	cb.POST("", cbh.Create)
	cb.DELETE("/:id", cbh.Delete)
	cb.GET("/categoria/:id", cbh.BrandsByCategory)
	cb.GET("/marca/:id", cbh.CategoriesByBrand)
	return r
}

func call(t *testing.T, r *gin.Engine, method, path string, body any) (int, map[string]any) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	var out map[string]any
	if w.Body.Len() > 0 && w.Body.Bytes()[0] == '{' {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	}
	return w.Code, out
}

func callList(t *testing.T, r *gin.Engine, path string) []map[string]any {
	t.Helper()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var out []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func id(t *testing.T, body map[string]any) uint {
	t.Helper()
	v, ok := body["id"].(float64)
	require.True(t, ok, "missing id in %v", body)
	return uint(v)
}

func TestCatalogHandlers_ProductLifecycle(t *testing.T) {
	t.Parallel()
	r := newCatalogRouter(t)

	status, country := call(t, r, http.MethodPost, "/paises", gin.H{"name": "Colombia"})
	require.Equal(t, http.StatusCreated, status)
	status, category := call(t, r, http.MethodPost, "/categorias", gin.H{"name": "Sports"})
	require.Equal(t, http.StatusCreated, status)
	status, brand := call(t, r, http.MethodPost, "/marcas", gin.H{"name": "Acme", "country_id": id(t, country)})
	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, "Colombia", brand["country"])

	input := gin.H{
		"name":        "Ball",
		"price":       "12.50",
		"description": "Size 5",
		"category_id": id(t, category),
		"brand_id":    id(t, brand),
		"stock":       3,
		"image_url":   "https://cdn.example.com/ball.png",
	}
	status, product := call(t, r, http.MethodPost, "/productos", input)
	require.Equal(t, http.StatusCreated, status)

	// Fetching returns what was created.
	status, got := call(t, r, http.MethodGet, fmt.Sprintf("/productos/%d", id(t, product)), nil)
	require.Equal(t, http.StatusOK, status)
	for _, key := range []string{"name", "description", "image_url"} {
		assert.Equal(t, input[key], got[key], key)
	}
	assert.Equal(t, "12.50", got["price"])
	assert.EqualValues(t, 3, got["stock"])
	assert.Equal(t, "Sports", got["category"])
	assert.Equal(t, "Acme", got["brand"])

	input["price"] = 20
	status, got = call(t, r, http.MethodPut, fmt.Sprintf("/productos/%d", id(t, product)), input)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "20.00", got["price"])

	status, page := call(t, r, http.MethodGet, "/productos/paginado?filter=BAL&size=5", nil)
	require.Equal(t, http.StatusOK, status)
	assert.EqualValues(t, 1, page["total"])
	assert.EqualValues(t, 5, page["page_size"])

	// The country is in use; the brand delete cascades to the product.
	status, body := call(t, r, http.MethodDelete, fmt.Sprintf("/paises/%d", id(t, country)), nil)
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, usecase.ErrCountryInUse.Message, body["error"])

	status, _ = call(t, r, http.MethodDelete, fmt.Sprintf("/marcas/%d", id(t, brand)), nil)
	require.Equal(t, http.StatusNoContent, status)
	status, _ = call(t, r, http.MethodGet, fmt.Sprintf("/productos/%d", id(t, product)), nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Empty(t, callList(t, r, "/productos"))

	status, _ = call(t, r, http.MethodDelete, fmt.Sprintf("/paises/%d", id(t, country)), nil)
	assert.Equal(t, http.StatusNoContent, status)
}

func TestCatalogHandlers_Errors(t *testing.T) {
	t.Parallel()
	r := newCatalogRouter(t)

	_, country := call(t, r, http.MethodPost, "/paises", gin.H{"name": "Chile"})
	status, _ := call(t, r, http.MethodPost, "/marcas", gin.H{"name": "Acme", "country_id": id(t, country)})
	require.Equal(t, http.StatusCreated, status)

	tests := []struct {
		name       string
		method     string
		path       string
		body       any
		wantStatus int
	}{
		{name: "duplicate brand name ignoring case", method: http.MethodPost, path: "/marcas", body: gin.H{"name": "ACME", "country_id": id(t, country)}, wantStatus: http.StatusConflict},
		{name: "brand with unknown country", method: http.MethodPost, path: "/marcas", body: gin.H{"name": "Globex", "country_id": 99}, wantStatus: http.StatusNotFound},
		{name: "invalid country name", method: http.MethodPost, path: "/paises", body: gin.H{"name": "X"}, wantStatus: http.StatusBadRequest},
		{name: "malformed json", method: http.MethodPost, path: "/paises", body: "not-an-object", wantStatus: http.StatusBadRequest},
		{name: "unknown product", method: http.MethodGet, path: "/productos/42", wantStatus: http.StatusNotFound},
		{name: "non numeric id", method: http.MethodGet, path: "/productos/abc", wantStatus: http.StatusBadRequest},
		{name: "update unknown category", method: http.MethodPut, path: "/categorias/42", body: gin.H{"name": "Outdoor"}, wantStatus: http.StatusNotFound},
		{name: "delete unknown brand", method: http.MethodDelete, path: "/marcas/42", wantStatus: http.StatusNotFound},
		{name: "bad page size", method: http.MethodGet, path: "/marcas/paginado?size=0", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := call(t, r, tt.method, tt.path, tt.body)
			assert.Equal(t, tt.wantStatus, status)
			assert.EqualValues(t, tt.wantStatus, body["status"])
		})
	}
}

func TestCatalogHandlers_CategoryBrand(t *testing.T) {
	t.Parallel()
	r := newCatalogRouter(t)

	_, country := call(t, r, http.MethodPost, "/paises", gin.H{"name": "Chile"})
	_, brand := call(t, r, http.MethodPost, "/marcas", gin.H{"name": "Acme", "country_id": id(t, country)})
	_, category := call(t, r, http.MethodPost, "/categorias", gin.H{"name": "Sports"})

	pair := gin.H{"category_id": id(t, category), "brand_id": id(t, brand)}
	status, link := call(t, r, http.MethodPost, "/categoriaMarca", pair)
	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, "Sports", link["category"])
	assert.Equal(t, "Acme", link["brand"])

	status, _ = call(t, r, http.MethodPost, "/categoriaMarca", pair)
	assert.Equal(t, http.StatusConflict, status)

	brands := callList(t, r, fmt.Sprintf("/categoriaMarca/categoria/%d", id(t, category)))
	require.Len(t, brands, 1)
	assert.Equal(t, "Chile", brands[0]["country"])

	categories := callList(t, r, fmt.Sprintf("/categoriaMarca/marca/%d", id(t, brand)))
	require.Len(t, categories, 1)

	status, _ = call(t, r, http.MethodGet, "/categoriaMarca/categoria/99", nil)
	assert.Equal(t, http.StatusNotFound, status)

	status, _ = call(t, r, http.MethodDelete, fmt.Sprintf("/categoriaMarca/%d", id(t, link)), nil)
	assert.Equal(t, http.StatusNoContent, status)
	assert.Empty(t, callList(t, r, "/categoriaMarca"))
}
