// internal/pkg/notify/format.go
package notify

import (
	"fmt"
	"strings"
	"time"

	"github.com/freshmo/storefront-backend/internal/domain/contact"
	"github.com/freshmo/storefront-backend/internal/domain/order"
	"github.com/freshmo/storefront-backend/internal/domain/review"
)

const divider = "----------------------------------------"

func formatOrder(o *order.Order, currency string) string {
	var lines strings.Builder
	for _, item := range o.Items {
		fmt.Fprintf(&lines, "- %s (x%d)\n", item.DisplayName(), item.Quantity)
		fmt.Fprintf(&lines, "  Price (Excl. VAT): %s%s\n", currency, item.UnitPriceExclVAT.StringFixed(2))
		fmt.Fprintf(&lines, "  VAT: %s%s\n", currency, item.UnitVATAmount.StringFixed(2))
		fmt.Fprintf(&lines, "  Line Total (Incl. VAT): %s%s\n", currency, item.TotalInclVAT.StringFixed(2))
	}

	note := o.Note
	if note == "" {
		note = "None"
	}
	address := o.Customer.Address
	if address == "" {
		address = "N/A"
	}

	return fmt.Sprintf(
		"📦 *New Order Received!*\n%s\n"+
			"🛒 *Order #:* `%s`\n"+
			"👤 *Customer:* %s\n"+
			"📱 *Phone:* %s\n"+
			"📍 *Delivery/Collection:* %s\n"+
			"🗺️ *Address:* %s\n%s\n"+
			"📝 *Order Details:*\n%s\n"+
			"💰 *Subtotal (Excl. VAT):* %s%s\n"+
			"📈 *Total VAT:* %s%s\n"+
			"🚚 *Delivery Charge:* %s%s\n"+
			"💳 *Grand Total (Incl. VAT):* %s%s\n"+
			"🏧 *Payment Method:* %s\n%s\n"+
			"✨ *Special Note:* %s\n"+
			"⏰ *Time:* %s",
		divider,
		o.OrderNumber,
		o.Customer.Name,
		o.Customer.Phone,
		o.Customer.DeliveryType,
		address,
		divider,
		lines.String(),
		currency, o.SubtotalExclVAT.StringFixed(2),
		currency, o.TotalVATAmount.StringFixed(2),
		currency, o.DeliveryCharge.StringFixed(2),
		currency, o.GrandTotalInclVAT.StringFixed(2),
		o.PaymentMethod,
		divider,
		note,
		time.Now().Format("2006-01-02 15:04:05"),
	)
}

func formatReview(r *review.Review) string {
	product := r.Product
	if product == "" {
		product = "N/A"
	}
	return fmt.Sprintf(
		"⭐ *New Review Received!*\n%s\n"+
			"📝 *Product:* %s\n"+
			"🌟 *Rating:* %d stars\n"+
			"💬 *Review:* %s\n"+
			"👤 *Reviewer:* %s\n"+
			"⏰ *Time:* %s",
		divider,
		product,
		r.Rating,
		r.Review,
		r.ReviewerName(),
		time.Now().Format("2006-01-02 15:04:05"),
	)
}

func formatContact(m *contact.Message) string {
	subject := m.Subject
	if subject == "" {
		subject = "N/A"
	}
	phone := m.Phone
	if phone == "" {
		phone = "N/A"
	}
	return fmt.Sprintf(
		"📞 *New Contact Request!*\n%s\n"+
			"👤 *Name:* %s\n"+
			"📧 *Email:* %s\n"+
			"📱 *Phone:* %s\n"+
			"📝 *Subject:* %s\n"+
			"💬 *Message:*\n%s\n"+
			"⏰ *Time:* %s",
		divider,
		m.Name,
		m.Email,
		phone,
		subject,
		m.Body,
		time.Now().Format("2006-01-02 15:04:05"),
	)
}

func formatTracking(orderNumber, phone string) string {
	if orderNumber == "" {
		orderNumber = "N/A"
	}
	if phone == "" {
		phone = "N/A"
	}
	return fmt.Sprintf(
		"📬 *New Order Tracking Request*\n%s\n"+
			"🛒 *Order Number:* %s\n"+
			"📱 *Phone:* %s\n"+
			"⏰ *Time:* %s\n\n"+
			"Please follow up! 🚨",
		divider,
		orderNumber,
		phone,
		time.Now().Format("2006-01-02 15:04:05"),
	)
}
