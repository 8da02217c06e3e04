// Package router assembles the HTTP surface.
package router

import (
	"time"

	"github.com/gin-gonic/gin"

	authhandler "shop_backend/internal/feature/auth/transport/handler"
	carthandler "shop_backend/internal/feature/cart/transport/handler"
	cataloghandler "shop_backend/internal/feature/catalog/transport/handler"
	orderhandler "shop_backend/internal/feature/order/transport/handler"
	paymenthandler "shop_backend/internal/feature/payment/transport/handler"
	platformhandler "shop_backend/internal/platform/http/handler"
	"shop_backend/internal/platform/http/middleware"
	"shop_backend/internal/platform/http/respond"
	jwtmw "shop_backend/internal/platform/jwt"
)

// Handlers groups every feature handler.
type Handlers struct {
	Auth          *authhandler.AuthHandler
	User          *authhandler.UserHandler
	Country       *cataloghandler.CountryHandler
	Category      *cataloghandler.CategoryHandler
	Brand         *cataloghandler.BrandHandler
	Product       *cataloghandler.ProductHandler
	CategoryBrand *cataloghandler.CategoryBrandHandler
	Cart          *carthandler.CartHandler
	Order         *orderhandler.OrderHandler
	Payment       *paymenthandler.PaymentHandler
}

// Options configures the cross-cutting middleware.
type Options struct {
	Verifier       jwtmw.TokenVerifier
	CORSOrigins    []string
	RequestTimeout time.Duration
	// Ready lists the dependencies probed by /readyz.
	Ready map[string]platformhandler.Pinger
}

// crud is the route set shared by the catalog resources.
type crud interface {
	List(c *gin.Context)
	ListPage(c *gin.Context)
	Get(c *gin.Context)
	Create(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
}

// NewRouter builds the engine with middleware, probes and every feature route.
func NewRouter(h Handlers, opts Options) *gin.Engine {
	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.AccessLog(),
		respond.Recovery(),
		middleware.CORS(opts.CORSOrigins),
		middleware.Timeout(opts.RequestTimeout),
	)

	r.GET("/healthz", platformhandler.Health)
	r.HEAD("/healthz", platformhandler.Health)
	r.GET("/readyz", platformhandler.Ready(opts.Ready))

	authRequired := jwtmw.AuthRequired(opts.Verifier)
	adminOnly := jwtmw.RequireAdmin()

	a := r.Group("/auth")
	a.POST("/register", h.Auth.Register)
	a.POST("/login", h.Auth.Login)
	a.POST("/refresh", h.Auth.Refresh)
	a.POST("/logout", authRequired, h.Auth.Logout)
	a.PUT("/password", authRequired, h.Auth.UpdatePassword)
	a.GET("/me", authRequired, h.User.Me)

	users := r.Group("/usuarios", authRequired, adminOnly)
	users.GET("", h.User.List)
	users.GET("/paginado", h.User.ListPage)
	users.GET("/:id", h.User.Get)
	users.DELETE("/:id", h.User.Delete)

	// Catalog reads are public, writes need an administrator.
	mountCatalog(r, "/paises", h.Country, authRequired, adminOnly)
	mountCatalog(r, "/categorias", h.Category, authRequired, adminOnly)
	mountCatalog(r, "/marcas", h.Brand, authRequired, adminOnly)
	mountCatalog(r, "/productos", h.Product, authRequired, adminOnly)

	cb := r.Group("/categoriaMarca")
	cb.GET("", h.CategoryBrand.List)
	cb.GET("/:id", h.CategoryBrand.Get)
	cb.GET("/categoria/:id", h.CategoryBrand.BrandsByCategory)
	cb.GET("/marca/:id", h.CategoryBrand.CategoriesByBrand)
	cb.POST("", authRequired, adminOnly, h.CategoryBrand.Create)
	cb.DELETE("/:id", authRequired, adminOnly, h.CategoryBrand.Delete)

	carts := r.Group("/carritos/:usuarioId", authRequired)
	carts.GET("", h.Cart.Get)
	carts.DELETE("", h.Cart.Clear)
	carts.POST("/productos/:productoId", h.Cart.AddProduct)
	carts.PUT("/productos/:productoId", h.Cart.SetQuantity)
	carts.DELETE("/productos/:productoId", h.Cart.RemoveProduct)

	orders := r.Group("/pedidos", authRequired)
	orders.POST("", h.Order.Create)
	orders.GET("/:id", h.Order.Get)
	orders.PUT("/:id", h.Order.Update)
	orders.POST("/:id/productos", h.Order.AddProduct)
	orders.GET("/usuario/:usuarioId", h.Order.ByUser)
	orders.GET("", adminOnly, h.Order.List)
	orders.GET("/paginado", adminOnly, h.Order.ListPage)
	orders.PATCH("/:id/estado", adminOnly, h.Order.ChangeStatus)
	orders.DELETE("/:id", adminOnly, h.Order.Delete)

	payments := r.Group("/pagos", authRequired)
	payments.POST("/intents", h.Payment.CreateIntent)
	payments.GET("/intents/:id", h.Payment.GetIntent)

	return r
}

func mountCatalog(r *gin.Engine, path string, h crud, write ...gin.HandlerFunc) {
	g := r.Group(path)
	g.GET("", h.List)
	g.GET("/paginado", h.ListPage)
	g.GET("/:id", h.Get)

	w := g.Group("", write...)
	w.POST("", h.Create)
	w.PUT("/:id", h.Update)
	w.DELETE("/:id", h.Delete)
}
