// internal/interfaces/http/handlers/contact.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/freshmo/storefront-backend/internal/domain/contact"
)

// ContactHandler handles contact form endpoints
type ContactHandler struct {
	contactService *contact.Service
}

// NewContactHandler creates a new contact handler
func NewContactHandler(contactService *contact.Service) *ContactHandler {
	return &ContactHandler{
		contactService: contactService,
	}
}

// SubmitMessage handles POST /contact
func (h *ContactHandler) SubmitMessage(c *gin.Context) {
	var req contact.SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	m, err := h.contactService.Submit(c.Request.Context(), &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to save message",
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Message submitted successfully",
		"data":    m,
	})
}

// ListMessages handles GET /admin/contact-messages
func (h *ContactHandler) ListMessages(c *gin.Context) {
	messages, err := h.contactService.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve messages",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Messages retrieved successfully",
		"data":    messages,
	})
}
