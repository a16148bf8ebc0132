// internal/pkg/pdf/service.go
package pdf

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"github.com/SebastiaanKlippert/go-wkhtmltopdf"

	"github.com/freshmo/storefront-backend/internal/config"
	"github.com/freshmo/storefront-backend/internal/domain/order"
)

// Service handles PDF generation
type Service struct {
	config *config.Config
}

// NewService creates a new PDF service
func NewService(cfg *config.Config) *Service {
	return &Service{
		config: cfg,
	}
}

// GenerateInvoice generates a PDF invoice for an order
func (s *Service) GenerateInvoice(o *order.Order) (*bytes.Buffer, error) {
	data := s.invoiceData(o)

	htmlContent, err := s.generateHTML(data)
	if err != nil {
		return nil, fmt.Errorf("failed to generate HTML: %w", err)
	}

	pdfg, err := wkhtmltopdf.NewPDFGenerator()
	if err != nil {
		return nil, fmt.Errorf("failed to create PDF generator: %w", err)
	}

	pdfg.Dpi.Set(300)
	pdfg.Orientation.Set(wkhtmltopdf.OrientationPortrait)
	pdfg.Grayscale.Set(false)

	page := wkhtmltopdf.NewPageReader(bytes.NewReader([]byte(htmlContent)))
	page.FooterRight.Set("[page]")
	page.FooterFontSize.Set(9)
	page.Zoom.Set(0.95)

	pdfg.AddPage(page)

	err = pdfg.Create()
	if err != nil {
		return nil, fmt.Errorf("failed to create PDF: %w", err)
	}

	return bytes.NewBuffer(pdfg.Bytes()), nil
}

// invoiceData flattens the order into display-ready strings. wkhtmltopdf
// renders the template as-is, so all money formatting happens here.
func (s *Service) invoiceData(o *order.Order) InvoiceData {
	cur := s.config.Company.CurrencySymbol

	items := make([]InvoiceItem, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, InvoiceItem{
			Name:          item.DisplayName(),
			SKU:           item.SKU,
			Quantity:      item.Quantity,
			UnitPriceIncl: cur + item.UnitPriceInclVAT.StringFixed(2),
			TotalIncl:     cur + item.TotalInclVAT.StringFixed(2),
		})
	}

	return InvoiceData{
		InvoiceNumber:  fmt.Sprintf("INV-%s", o.OrderNumber),
		InvoiceDate:    time.Now().Format("January 2, 2006"),
		Order:          o,
		Items:          items,
		Subtotal:       cur + o.SubtotalExclVAT.StringFixed(2),
		VAT:            cur + o.TotalVATAmount.StringFixed(2),
		DeliveryCharge: cur + o.DeliveryCharge.StringFixed(2),
		GrandTotal:     cur + o.GrandTotalInclVAT.StringFixed(2),
		Company: CompanyInfo{
			Name:    s.config.Company.Name,
			Address: s.config.Company.Address,
			Phone:   s.config.Company.Phone,
			Email:   s.config.Company.Email,
			Website: s.config.Company.Website,
		},
	}
}

// generateHTML generates HTML content from template
func (s *Service) generateHTML(data InvoiceData) (string, error) {
	tmpl := template.Must(template.New("invoice").Parse(invoiceTemplate))

	var buf bytes.Buffer
	err := tmpl.Execute(&buf, data)
	if err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}

	return buf.String(), nil
}

// InvoiceData represents the data passed to the invoice template
type InvoiceData struct {
	InvoiceNumber  string        `json:"invoice_number"`
	InvoiceDate    string        `json:"invoice_date"`
	Order          *order.Order  `json:"order"`
	Items          []InvoiceItem `json:"items"`
	Subtotal       string        `json:"subtotal"`
	VAT            string        `json:"vat"`
	DeliveryCharge string        `json:"delivery_charge"`
	GrandTotal     string        `json:"grand_total"`
	Company        CompanyInfo   `json:"company"`
}

// InvoiceItem is a pre-formatted order line
type InvoiceItem struct {
	Name          string `json:"name"`
	SKU           string `json:"sku"`
	Quantity      int    `json:"quantity"`
	UnitPriceIncl string `json:"unit_price_incl"`
	TotalIncl     string `json:"total_incl"`
}

// CompanyInfo represents company information
type CompanyInfo struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Website string `json:"website"`
}
