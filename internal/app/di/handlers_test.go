package di

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shop_backend/internal/app/router"
	"shop_backend/internal/feature/payment/domain/entity"
	"shop_backend/internal/platform/config"
	"shop_backend/internal/platform/db/dbtest"
	platformhandler "shop_backend/internal/platform/http/handler"
	jwtmw "shop_backend/internal/platform/jwt"
	"shop_backend/internal/shared/role"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

type stubGateway struct{}

func (stubGateway) CreateIntent(_ context.Context, amountMinor int64, currency string) (*entity.Intent, error) {
	return &entity.Intent{ID: "pi_stub", Status: "requires_payment_method", Amount: decimal.New(amountMinor, -2), Currency: currency}, nil
}

func (stubGateway) GetIntent(_ context.Context, id string) (*entity.Intent, error) {
	return &entity.Intent{ID: id, Status: "succeeded"}, nil
}

type app struct {
	router *gin.Engine
	tokens *jwtmw.Generator
}

func newApp(t *testing.T) app {
	t.Helper()
	gdb := dbtest.New(t)
	sqlDB, err := gdb.DB()
	require.NoError(t, err)

	tokens := jwtmw.NewGenerator(jwtmw.Options{Secret: "test-secret", Issuer: "shop_backend", Audience: "shop_storefront", TTL: 15 * time.Minute})
	publisher, closePublisher := NewEventPublisher(config.KafkaConfig{})
	t.Cleanup(func() { _ = closePublisher() })

	h := NewHandlers(Deps{
		DB:         gdb,
		Tokens:     tokens,
		Limiter:    NewLoginLimiter(nil, config.RedisConfig{}),
		Publisher:  publisher,
		Gateway:    stubGateway{},
		RefreshTTL: time.Hour,
	})
	r := router.NewRouter(h, router.Options{
		Verifier:       tokens,
		CORSOrigins:    []string{"http://localhost:5173"},
		RequestTimeout: 5 * time.Second,
		Ready:          map[string]platformhandler.Pinger{"database": platformhandler.PingFunc(sqlDB.PingContext)},
	})
	return app{router: r, tokens: tokens}
}

func (a app) token(t *testing.T, id uint, r role.Role) string {
	t.Helper()
	tok, _, err := a.tokens.GenerateToken(jwtmw.Identity{UserID: id, Email: "x@example.com", Role: r})
	require.NoError(t, err)
	return tok
}

func (a app) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func idOf(t *testing.T, w *httptest.ResponseRecorder) uint {
	t.Helper()
	var v struct {
		ID uint `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	require.NotZero(t, v.ID)
	return v.ID
}

func TestRouter_Probes(t *testing.T) {
	t.Parallel()
	a := newApp(t)

	assert.Equal(t, http.StatusOK, a.do(t, http.MethodGet, "/healthz", "", nil).Code)
	w := a.do(t, http.MethodGet, "/readyz", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestRouter_AccessControl(t *testing.T) {
	t.Parallel()
	a := newApp(t)
	user := a.token(t, 10, role.User)
	admin := a.token(t, 1, role.Admin)

	tests := []struct {
		name   string
		method string
		path   string
		token  string
		body   any
		want   int
	}{
		{name: "public catalog read", method: http.MethodGet, path: "/productos", want: http.StatusOK},
		{name: "public paginated read", method: http.MethodGet, path: "/marcas/paginado?page=1&size=5", want: http.StatusOK},
		{name: "mutation without token", method: http.MethodPost, path: "/paises", body: map[string]string{"name": "Chile"}, want: http.StatusUnauthorized},
		{name: "mutation as user", method: http.MethodPost, path: "/paises", token: user, body: map[string]string{"name": "Chile"}, want: http.StatusForbidden},
		{name: "mutation as admin", method: http.MethodPost, path: "/paises", token: admin, body: map[string]string{"name": "Chile"}, want: http.StatusCreated},
		{name: "user listing as user", method: http.MethodGet, path: "/usuarios", token: user, want: http.StatusForbidden},
		{name: "cart without token", method: http.MethodGet, path: "/carritos/10", want: http.StatusUnauthorized},
		{name: "someone else's cart", method: http.MethodGet, path: "/carritos/11", token: user, want: http.StatusForbidden},
		{name: "global orders as user", method: http.MethodGet, path: "/pedidos", token: user, want: http.StatusForbidden},
		{name: "global orders as admin", method: http.MethodGet, path: "/pedidos", token: admin, want: http.StatusOK},
		{name: "payments without token", method: http.MethodPost, path: "/pagos/intents", want: http.StatusUnauthorized},
		{name: "forged token", method: http.MethodGet, path: "/pedidos", token: "not-a-jwt", want: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := a.do(t, tt.method, tt.path, tt.token, tt.body)
			assert.Equal(t, tt.want, w.Code, w.Body.String())
		})
	}
}

func TestRouter_ShoppingFlow(t *testing.T) {
	t.Parallel()
	a := newApp(t)
	admin := a.token(t, 1, role.Admin)

	// Registration and login.
	creds := map[string]string{"name": "Ana", "email": "a@b.com", "password": "abc12345"}
	w := a.do(t, http.MethodPost, "/auth/register", "", creds)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	userID := idOf(t, w)
	assert.Equal(t, http.StatusConflict, a.do(t, http.MethodPost, "/auth/register", "", creds).Code)

	w = a.do(t, http.MethodPost, "/auth/login", "", map[string]string{"email": "a@b.com", "password": "wrong-pass"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.NotContains(t, w.Body.String(), "access_token")

	w = a.do(t, http.MethodPost, "/auth/login", "", map[string]string{"email": "a@b.com", "password": "abc12345"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var login struct {
		AccessToken string `json:"access_token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &login))
	user := login.AccessToken

	w = a.do(t, http.MethodGet, "/auth/me", user, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, userID, idOf(t, w))

	// Catalog set up by an administrator.
	w = a.do(t, http.MethodPost, "/paises", admin, map[string]string{"name": "Chile"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	countryID := idOf(t, w)
	w = a.do(t, http.MethodPost, "/categorias", admin, map[string]string{"name": "Sports"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	categoryID := idOf(t, w)
	w = a.do(t, http.MethodPost, "/marcas", admin, map[string]any{"name": "Acme", "country_id": countryID})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	brandID := idOf(t, w)
	w = a.do(t, http.MethodPost, "/productos", admin, map[string]any{
		"name": "Ball", "price": "10.00", "category_id": categoryID, "brand_id": brandID, "stock": 4,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	productID := idOf(t, w)

	// Cart merges repeated adds into one line.
	cartPath := fmt.Sprintf("/carritos/%d/productos/%d", userID, productID)
	require.Equal(t, http.StatusOK, a.do(t, http.MethodPost, cartPath+"?cantidad=2", user, nil).Code)
	w = a.do(t, http.MethodPost, cartPath+"?cantidad=3", user, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var cart struct {
		Lines []struct {
			Quantity int `json:"quantity"`
		} `json:"lines"`
		Total string `json:"total"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cart))
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, 5, cart.Lines[0].Quantity)
	assert.Equal(t, "50.00", cart.Total)

	// Order keeps the price it was placed with.
	w = a.do(t, http.MethodPost, "/pedidos", user, map[string]any{
		"shipping_address": "Calle 1",
		"lines":            []map[string]any{{"product_id": productID, "quantity": 2, "price": "10.00"}},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	orderID := idOf(t, w)

	w = a.do(t, http.MethodPut, fmt.Sprintf("/productos/%d", productID), admin, map[string]any{
		"name": "Ball", "price": "20.00", "category_id": categoryID, "brand_id": brandID, "stock": 4,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = a.do(t, http.MethodGet, fmt.Sprintf("/pedidos/%d", orderID), user, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var order struct {
		Total string `json:"total"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &order))
	assert.Equal(t, "20.00", order.Total)

	w = a.do(t, http.MethodPatch, fmt.Sprintf("/pedidos/%d/estado", orderID), user, map[string]string{"status": "Shipped"})
	assert.Equal(t, http.StatusForbidden, w.Code)
	w = a.do(t, http.MethodPatch, fmt.Sprintf("/pedidos/%d/estado", orderID), admin, map[string]string{"status": "Shipped"})
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// Payment intent through the configured gateway.
	w = a.do(t, http.MethodPost, "/pagos/intents", user, map[string]any{"amount": "20.00", "currency": "usd"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"amount":"20.00"`)
}
