package di

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"shop_backend/internal/app/router"
	authadapters "shop_backend/internal/feature/auth/adapters"
	authhandler "shop_backend/internal/feature/auth/transport/handler"
	authusecase "shop_backend/internal/feature/auth/usecase"
	cartadapters "shop_backend/internal/feature/cart/adapters"
	carthandler "shop_backend/internal/feature/cart/transport/handler"
	cartusecase "shop_backend/internal/feature/cart/usecase"
	catalogadapters "shop_backend/internal/feature/catalog/adapters"
	cataloghandler "shop_backend/internal/feature/catalog/transport/handler"
	catalogusecase "shop_backend/internal/feature/catalog/usecase"
	orderadapters "shop_backend/internal/feature/order/adapters"
	orderhandler "shop_backend/internal/feature/order/transport/handler"
	orderusecase "shop_backend/internal/feature/order/usecase"
	paymenthandler "shop_backend/internal/feature/payment/transport/handler"
	paymentusecase "shop_backend/internal/feature/payment/usecase"
	"shop_backend/internal/platform/cache"
)

// Deps are the infrastructure pieces the handlers are built from.
// Redis, Limiter and Publisher may be nil.
type Deps struct {
	DB              *gorm.DB
	Redis           *redis.Client
	Tokens          authusecase.TokenIssuer
	Limiter         authusecase.LoginLimiter
	Publisher       orderusecase.EventPublisher
	Gateway         paymentusecase.Gateway
	RefreshTTL      time.Duration
	CatalogCacheTTL time.Duration
}

// NewHandlers builds repositories, usecases and handlers for every feature.
func NewHandlers(d Deps) router.Handlers {
	// Repository
	userRepo := authadapters.NewUserRepository(d.DB)
	countryRepo := catalogadapters.NewCountryRepository(d.DB)
	categoryRepo := catalogadapters.NewCategoryRepository(d.DB)
	brandRepo := catalogadapters.NewBrandRepository(d.DB)
	productRepo := catalogadapters.NewProductRepository(d.DB)
	// Carts and orders read products uncached so they never see a deleted one.
	cachedProductRepo := cache.NewCachingProductRepository(d.Redis, d.CatalogCacheTTL, productRepo, "products")
	linkRepo := catalogadapters.NewCategoryBrandRepository(d.DB)
	cartRepo := cartadapters.NewCartRepository(d.DB)
	orderRepo := orderadapters.NewOrderRepository(d.DB)

	// Usecase
	authUC := authusecase.NewAuthUsecase(userRepo, d.Tokens, d.Limiter, d.RefreshTTL)
	userUC := authusecase.NewUserUsecase(userRepo)
	countryUC := catalogusecase.NewCountryUsecase(countryRepo)
	categoryUC := catalogusecase.NewCategoryUsecase(categoryRepo)
	brandUC := catalogusecase.NewBrandUsecase(brandRepo, countryRepo)
	productUC := catalogusecase.NewProductUsecase(cachedProductRepo, categoryRepo, brandRepo)
	linkUC := catalogusecase.NewCategoryBrandUsecase(linkRepo, categoryRepo, brandRepo)
	cartUC := cartusecase.NewCartUsecase(cartRepo, productRepo)
	orderUC := orderusecase.NewOrderUsecase(orderRepo, productRepo, d.Publisher)
	paymentUC := paymentusecase.NewPaymentUsecase(d.Gateway)

	// Handler
	return router.Handlers{
		Auth:          authhandler.NewAuthHandler(authUC),
		User:          authhandler.NewUserHandler(userUC),
		Country:       cataloghandler.NewCountryHandler(countryUC),
		Category:      cataloghandler.NewCategoryHandler(categoryUC),
		Brand:         cataloghandler.NewBrandHandler(brandUC),
		Product:       cataloghandler.NewProductHandler(productUC),
		CategoryBrand: cataloghandler.NewCategoryBrandHandler(linkUC),
		Cart:          carthandler.NewCartHandler(cartUC),
		Order:         orderhandler.NewOrderHandler(orderUC),
		Payment:       paymenthandler.NewPaymentHandler(paymentUC),
	}
}
