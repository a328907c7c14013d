package httpserver

import (
	"context"
	"log"

	"storefront-api/internal/domain"
	authsvc "storefront-api/internal/service/auth"
	categorysvc "storefront-api/internal/service/category"
	productsvc "storefront-api/internal/service/product"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AuthService interface {
	Register(ctx context.Context, in authsvc.RegisterInput) (*domain.User, error)
	IssueToken(u *domain.User) (string, error)
	Login(ctx context.Context, email, password string) (*domain.User, string, error)
	VerifyToken(token string) (*authsvc.Identity, error)
	GetUser(ctx context.Context, id string) (*domain.User, error)
	UpdatePassword(ctx context.Context, id, current, next string) error
	Deactivate(ctx context.Context, id string) error
}

type ProductService interface {
	List(ctx context.Context, categoryID string) ([]domain.Product, error)
	Get(ctx context.Context, id string) (*domain.Product, error)
	Create(ctx context.Context, in productsvc.Input) (*domain.Product, error)
	Update(ctx context.Context, id string, in productsvc.Input) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
}

type CategoryService interface {
	List(ctx context.Context) ([]domain.Category, error)
	Get(ctx context.Context, id string) (*domain.Category, error)
	Create(ctx context.Context, in categorysvc.Input) (*domain.Category, error)
	Update(ctx context.Context, id string, in categorysvc.Input) (*domain.Category, error)
	Delete(ctx context.Context, id string) error
}

type CartService interface {
	AddItem(ctx context.Context, userID, productID string, quantity int) (*domain.CartItem, error)
	Get(ctx context.Context, userID string) ([]domain.CartItem, error)
	UpdateQuantity(ctx context.Context, userID, itemID string, quantity int) (*domain.CartItem, error)
	RemoveItem(ctx context.Context, userID, itemID string) error
	Clear(ctx context.Context, userID string) error
}

type OrderService interface {
	Create(ctx context.Context, userID string) (*domain.Order, error)
	ListForUser(ctx context.Context, userID string) ([]domain.Order, error)
	GetForUser(ctx context.Context, orderID, userID string) (*domain.Order, error)
	UpdateStatus(ctx context.Context, orderID string, status domain.OrderStatus) (*domain.Order, error)
	Cancel(ctx context.Context, orderID, userID string) (*domain.Order, error)
	ListAll(ctx context.Context) ([]domain.Order, error)
}

// Deps carries the services the router wires into handlers.
type Deps struct {
	AuthSvc     AuthService
	ProductSvc  ProductService
	CategorySvc CategoryService
	CartSvc     CartService
	OrderSvc    OrderService
	Dev         bool
}

// buildRouter wires routes for the API.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, deps Deps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())
	router.Use(cors.Default())

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	h := &handlers{deps: deps}
	authed := authRequired(deps.AuthSvc)

	auth := router.Group("/auth")
	{
		auth.POST("/register", h.register)
		auth.POST("/login", h.login)
		auth.GET("/me", authed, h.me)
		auth.PUT("/me/password", authed, h.updatePassword)
		auth.POST("/me/deactivate", authed, h.deactivateMe)
	}

	products := router.Group("/products")
	{
		products.GET("", h.listProducts)
		products.GET("/:id", h.getProduct)
		products.POST("", authed, requirePermission(domain.PermManageProducts), h.createProduct)
		products.PUT("/:id", authed, requirePermission(domain.PermManageProducts), h.updateProduct)
		products.DELETE("/:id", authed, requirePermission(domain.PermManageProducts), h.deleteProduct)
	}

	categories := router.Group("/categories")
	{
		categories.GET("", h.listCategories)
		categories.GET("/:id", h.getCategory)
		categories.POST("", authed, requirePermission(domain.PermManageCategories), h.createCategory)
		categories.PUT("/:id", authed, requirePermission(domain.PermManageCategories), h.updateCategory)
		categories.DELETE("/:id", authed, requirePermission(domain.PermManageCategories), h.deleteCategory)
	}

	cart := router.Group("/cart", authed, requirePermission(domain.PermManageCart))
	{
		cart.GET("", h.getCart)
		cart.DELETE("", h.clearCart)
		cart.POST("/items", h.addCartItem)
		cart.PUT("/items/:id", h.updateCartItem)
		cart.DELETE("/items/:id", h.removeCartItem)
	}

	orders := router.Group("/orders", authed)
	{
		orders.POST("", requirePermission(domain.PermPlaceOrders), h.createOrder)
		orders.GET("/my-orders", requirePermission(domain.PermViewOwnOrders), h.myOrders)
		orders.GET("/:id", requirePermission(domain.PermViewOwnOrders), h.getOrder)
		orders.POST("/:id/cancel", requirePermission(domain.PermPlaceOrders), h.cancelOrder)
		orders.PUT("/:id/status", requirePermission(domain.PermViewAllOrders), h.updateOrderStatus)
		orders.GET("", requirePermission(domain.PermViewAllOrders), h.listAllOrders)
	}

	return router
}

type handlers struct {
	deps Deps
}
