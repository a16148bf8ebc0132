// internal/interfaces/http/handlers/order.go
package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/freshmo/storefront-backend/internal/config"
	"github.com/freshmo/storefront-backend/internal/domain/order"
	"github.com/freshmo/storefront-backend/internal/pkg/notify"
	"github.com/freshmo/storefront-backend/internal/pkg/pdf"
)

// OrderHandler handles order tracking and operator order endpoints
type OrderHandler struct {
	orderRepo  *order.Repository
	pdfService *pdf.Service
	notifier   *notify.Telegram
	config     *config.Config
	logger     *logrus.Logger
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(db *gorm.DB, notifier *notify.Telegram, cfg *config.Config, log *logrus.Logger) *OrderHandler {
	return &OrderHandler{
		orderRepo:  order.NewRepository(db),
		pdfService: pdf.NewService(cfg),
		notifier:   notifier,
		config:     cfg,
		logger:     log,
	}
}

// TrackOrderRequest represents a self-service tracking lookup
type TrackOrderRequest struct {
	OrderNumber string `json:"order_number" binding:"required"`
	Phone       string `json:"phone"`
}

// TrackOrder handles POST /orders/track. The tracking alert fires whether or
// not the lookup succeeds, so the operator sees every tracking attempt.
func (h *OrderHandler) TrackOrder(c *gin.Context) {
	var req TrackOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	if err := h.notifier.TrackingRequested(c.Request.Context(), req.OrderNumber, req.Phone); err != nil {
		h.logger.WithError(err).Warn("Tracking notification failed")
	}

	var (
		o   *order.Order
		err error
	)
	if req.Phone != "" {
		o, err = h.orderRepo.ByNumberAndPhone(c.Request.Context(), req.OrderNumber, req.Phone)
	} else {
		o, err = h.orderRepo.ByNumber(c.Request.Context(), req.OrderNumber)
	}
	if err != nil {
		if errors.Is(err, order.ErrOrderNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Order not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to look up order",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Order retrieved successfully",
		"data": gin.H{
			"order_number": o.OrderNumber,
			"status":       o.Status,
			"placed_at":    o.CreatedAt,
			"grand_total":  o.GrandTotalInclVAT,
			"items":        o.Items,
		},
	})
}

// DownloadInvoice handles GET /orders/:number/invoice
func (h *OrderHandler) DownloadInvoice(c *gin.Context) {
	number := c.Param("number")

	o, err := h.orderRepo.ByNumber(c.Request.Context(), number)
	if err != nil {
		if errors.Is(err, order.ErrOrderNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Order not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to look up order",
		})
		return
	}

	invoice, err := h.pdfService.GenerateInvoice(o)
	if err != nil {
		h.logger.WithError(err).WithField("order_number", number).Error("Invoice generation failed")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to generate invoice",
		})
		return
	}

	filename := fmt.Sprintf("invoice-%s.pdf", o.OrderNumber)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", invoice.Bytes())
}

// ListOrders handles GET /admin/orders
func (h *OrderHandler) ListOrders(c *gin.Context) {
	orders, err := h.orderRepo.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve orders",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Orders retrieved successfully",
		"data":    orders,
	})
}
