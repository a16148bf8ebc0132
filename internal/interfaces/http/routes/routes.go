// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/freshmo/storefront-backend/internal/config"
	"github.com/freshmo/storefront-backend/internal/domain/cart"
	"github.com/freshmo/storefront-backend/internal/domain/checkout"
	"github.com/freshmo/storefront-backend/internal/domain/contact"
	"github.com/freshmo/storefront-backend/internal/domain/delivery"
	"github.com/freshmo/storefront-backend/internal/domain/order"
	"github.com/freshmo/storefront-backend/internal/domain/review"
	"github.com/freshmo/storefront-backend/internal/interfaces/http/handlers"
	"github.com/freshmo/storefront-backend/internal/interfaces/http/middleware"
	"github.com/freshmo/storefront-backend/internal/pkg/logger"
	"github.com/freshmo/storefront-backend/internal/pkg/notify"
)

// SetupRoutes wires all storefront services and registers every route group
func SetupRoutes(rg *gin.RouterGroup, db *gorm.DB, redisClient *redis.Client, cfg *config.Config) {
	log := logger.New(cfg)

	// Shared collaborators
	notifier := notify.NewTelegram(cfg, log)
	orderRepo := order.NewRepository(db)
	cartService := cart.NewService(redisClient, cfg)
	checkoutService := checkout.NewService(
		cartService,
		orderRepo,
		order.NewStoreSequencer(orderRepo, log),
		delivery.NewEstimator(cfg, log),
		notifier,
		checkout.NewCustomerSessions(redisClient, cfg),
		cfg,
		log,
	)

	// Handlers
	catalogHandler := handlers.NewCatalogHandler(db, cfg)
	cartHandler := handlers.NewCartHandler(db, redisClient, cfg)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutService)
	orderHandler := handlers.NewOrderHandler(db, notifier, cfg, log)
	reviewHandler := handlers.NewReviewHandler(review.NewService(db, notifier, log))
	contactHandler := handlers.NewContactHandler(contact.NewService(db, notifier, log))
	authHandler := handlers.NewAuthHandler(cfg)

	// Product browsing
	products := rg.Group("/products")
	{
		products.GET("", catalogHandler.ListProducts)
		products.GET("/categories", catalogHandler.ListCategories)
		products.GET("/category/:name", catalogHandler.ListByCategory)
	}

	// Session cart
	cartGroup := rg.Group("/cart")
	{
		cartGroup.GET("", cartHandler.GetCart)
		cartGroup.POST("/items", cartHandler.AddToCart)
		cartGroup.PUT("/items/:sku", cartHandler.UpdateCartItem)
		cartGroup.DELETE("/items/:sku", cartHandler.RemoveFromCart)
		cartGroup.DELETE("", cartHandler.ClearCart)
	}

	// Checkout
	checkoutGroup := rg.Group("/checkout")
	{
		checkoutGroup.GET("", checkoutHandler.GetCheckout)
		checkoutGroup.POST("", checkoutHandler.PlaceOrder)
	}

	// Reviews, contact and order tracking
	rg.POST("/reviews", reviewHandler.SubmitReview)
	rg.POST("/contact", contactHandler.SubmitMessage)
	rg.POST("/orders/track", orderHandler.TrackOrder)
	rg.GET("/orders/:number/invoice", orderHandler.DownloadInvoice)

	// Operator login
	rg.POST("/auth/login", authHandler.Login)

	// Operator endpoints
	admin := rg.Group("/admin")
	admin.Use(middleware.AdminAuth(cfg))
	{
		admin.GET("/orders", orderHandler.ListOrders)
		admin.GET("/reviews", reviewHandler.ListReviews)
		admin.GET("/contact-messages", contactHandler.ListMessages)
	}
}
