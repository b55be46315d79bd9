package httpserver

import (
	"context"
	"log"
	"time"

	"shopcart/internal/domain"
	catalogsvc "shopcart/internal/service/catalog"
	customersvc "shopcart/internal/service/customer"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Deps carries the services the router depends on.
type Deps struct {
	CartSvc     cartService
	CatalogSvc  catalogService
	CustomerSvc customerService
}

type cartService interface {
	Get(ctx context.Context, ownerID string) (*domain.Cart, error)
	AddItem(ctx context.Context, ownerID, itemID string, quantity int) (*domain.Cart, error)
	SetQuantity(ctx context.Context, ownerID, itemID string, quantity int) (*domain.Cart, error)
	RemoveItem(ctx context.Context, ownerID, itemID string) (*domain.Cart, error)
}

type catalogService interface {
	Create(ctx context.Context, in catalogsvc.CreateInput) (*domain.Product, error)
	List(ctx context.Context) ([]domain.Product, error)
	Get(ctx context.Context, id string) (*domain.Product, error)
}

type customerService interface {
	Signup(ctx context.Context, in customersvc.SignupInput) (*domain.Customer, error)
	Login(ctx context.Context, email, password string) (*domain.Customer, string, string, error)
	LookupByToken(ctx context.Context, token string) (*domain.Customer, error)
	AccessTTLSeconds() int
}

// buildRouter wires routes for the API.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, deps Deps, corsOrigins []string) (*gin.Engine, error) {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())
	router.Use(corsMiddleware(corsOrigins))

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	router.POST("/customers", signupHandler(logger, deps.CustomerSvc))
	router.POST("/customers/login", loginHandler(logger, deps.CustomerSvc))

	router.GET("/products", listProductsHandler(logger, deps.CatalogSvc))
	router.POST("/products", createProductHandler(logger, deps.CatalogSvc))
	router.GET("/products/:id", getProductHandler(logger, deps.CatalogSvc))

	authed := router.Group("/", authMiddleware(deps.CustomerSvc))
	authed.GET("/cart", getCartHandler(logger, deps.CartSvc))
	authed.POST("/cart", addItemHandler(logger, deps.CartSvc))
	authed.PUT("/cart/:itemId", setQuantityHandler(logger, deps.CartSvc))
	authed.DELETE("/cart/:itemId", removeItemHandler(logger, deps.CartSvc))
	// Legacy removal route kept for existing clients.
	authed.DELETE("/checkout/:itemId", removeItemHandler(logger, deps.CartSvc))

	return router, nil
}

func corsMiddleware(origins []string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(origins) == 1 && origins[0] == "*" {
		cfg.AllowAllOrigins = true
		cfg.AllowCredentials = false
	} else {
		cfg.AllowOrigins = origins
	}
	return cors.New(cfg)
}
