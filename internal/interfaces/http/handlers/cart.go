// internal/interfaces/http/handlers/cart.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/freshmo/storefront-backend/internal/config"
	"github.com/freshmo/storefront-backend/internal/domain/cart"
	"github.com/freshmo/storefront-backend/internal/domain/catalog"
	"github.com/freshmo/storefront-backend/internal/interfaces/http/middleware"
)

// CartHandler handles session cart endpoints
type CartHandler struct {
	cartService    *cart.Service
	catalogService *catalog.Service
	config         *config.Config
}

// NewCartHandler creates a new cart handler
func NewCartHandler(db *gorm.DB, redisClient *redis.Client, cfg *config.Config) *CartHandler {
	return &CartHandler{
		cartService:    cart.NewService(redisClient, cfg),
		catalogService: catalog.NewService(db, cfg),
		config:         cfg,
	}
}

// AddToCartRequest represents an add-to-cart submission. Prices always come
// from the catalog, never from the client.
type AddToCartRequest struct {
	SKU      string `json:"sku" binding:"required"`
	Variant  string `json:"variant"`
	Quantity int    `json:"quantity" binding:"required,min=1"`
}

// UpdateCartItemRequest represents a quantity change for a cart line
type UpdateCartItemRequest struct {
	Variant  string `json:"variant"`
	Quantity int    `json:"quantity"`
}

// GetCart handles GET /cart
func (h *CartHandler) GetCart(c *gin.Context) {
	sessionID := middleware.GetSessionID(c)

	sessionCart, err := h.cartService.Get(c.Request.Context(), sessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve cart",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart retrieved successfully",
		"data":    sessionCart,
		"totals":  sessionCart.Totals(),
	})
}

// AddToCart handles POST /cart/items
func (h *CartHandler) AddToCart(c *gin.Context) {
	sessionID := middleware.GetSessionID(c)

	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	product, err := h.catalogService.BySKU(c.Request.Context(), req.SKU)
	if err != nil {
		if errors.Is(err, catalog.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Product not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to load product",
		})
		return
	}

	if !product.HasVariant(req.Variant) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid variant for this product",
		})
		return
	}

	sessionCart, err := h.cartService.Add(
		c.Request.Context(), sessionID,
		product.SKU, product.Name, req.Variant,
		product.PriceExclVAT, req.Quantity,
	)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Item added to cart successfully",
		"data":    sessionCart,
		"totals":  sessionCart.Totals(),
	})
}

// UpdateCartItem handles PUT /cart/items/:sku
func (h *CartHandler) UpdateCartItem(c *gin.Context) {
	sessionID := middleware.GetSessionID(c)
	sku := c.Param("sku")

	var req UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	sessionCart, err := h.cartService.UpdateQuantity(c.Request.Context(), sessionID, sku, req.Variant, req.Quantity)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to update cart",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart item updated successfully",
		"data":    sessionCart,
		"totals":  sessionCart.Totals(),
	})
}

// RemoveFromCart handles DELETE /cart/items/:sku
func (h *CartHandler) RemoveFromCart(c *gin.Context) {
	sessionID := middleware.GetSessionID(c)
	sku := c.Param("sku")
	variant := c.Query("variant")

	sessionCart, err := h.cartService.Remove(c.Request.Context(), sessionID, sku, variant)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to remove item from cart",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Item removed from cart successfully",
		"data":    sessionCart,
		"totals":  sessionCart.Totals(),
	})
}

// ClearCart handles DELETE /cart
func (h *CartHandler) ClearCart(c *gin.Context) {
	sessionID := middleware.GetSessionID(c)

	if err := h.cartService.Clear(c.Request.Context(), sessionID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to clear cart",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart cleared successfully",
	})
}
