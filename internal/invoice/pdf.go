// Package invoice renders finalized checkouts as printable PDF documents.
package invoice

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-pdf/fpdf"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"sutrapos/internal/models"
)

// Column widths of the item table, in mm on an A4 page.
const (
	colSKU   = 35
	colTitle = 75
	colMRP   = 25
	colQty   = 15
	colTotal = 30
)

// PDFRenderer writes one PDF per invoice into Dir.
type PDFRenderer struct {
	Dir      string
	ShopName string

	amounts *message.Printer
}

// NewPDFRenderer creates the output directory if needed.
func NewPDFRenderer(dir, shopName string) (*PDFRenderer, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create invoice dir: %w", err)
	}
	return &PDFRenderer{
		Dir:      dir,
		ShopName: shopName,
		amounts:  message.NewPrinter(language.MustParse("en-IN")),
	}, nil
}

// Render writes the invoice document and returns its path. Any write
// failure is fatal for the checkout that requested it.
func (r *PDFRenderer) Render(tx models.Transaction, lines []models.CartLine) (string, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 8, r.ShopName, "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, fmt.Sprintf("Invoice: %s   Date: %s", tx.InvoiceID, tx.DateTime), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Customer: %s   Phone: %s", orDash(tx.CustomerName), orDash(tx.CustomerPhone)), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(colSKU, 6, "SKU", "B", 0, "L", false, 0, "")
	pdf.CellFormat(colTitle, 6, "Title", "B", 0, "L", false, 0, "")
	pdf.CellFormat(colMRP, 6, "MRP", "B", 0, "R", false, 0, "")
	pdf.CellFormat(colQty, 6, "Qty", "B", 0, "R", false, 0, "")
	pdf.CellFormat(colTotal, 6, "Line Total", "B", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	for _, ln := range lines {
		pdf.CellFormat(colSKU, 6, clip(ln.SKU, 14), "", 0, "L", false, 0, "")
		pdf.CellFormat(colTitle, 6, clip(ln.Title, 40), "", 0, "L", false, 0, "")
		pdf.CellFormat(colMRP, 6, r.amount(ln.MRP), "", 0, "R", false, 0, "")
		pdf.CellFormat(colQty, 6, fmt.Sprintf("%d", ln.Qty), "", 0, "R", false, 0, "")
		pdf.CellFormat(colTotal, 6, r.amount(ln.MRP*float64(ln.Qty)), "", 1, "R", false, 0, "")
	}

	pdf.Ln(2)
	r.totalRow(pdf, "Subtotal:", tx.Subtotal, false)
	r.totalRow(pdf, "GST:", tx.Tax, false)
	r.totalRow(pdf, "Total:", tx.Total, true)

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(0, 5, "Payment: "+tx.PaymentMode, "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "I", 9)
	pdf.CellFormat(0, 5, "Thank you for celebrating Indian handloom!", "", 1, "L", false, 0, "")

	path := filepath.Join(r.Dir, tx.InvoiceID+".pdf")
	if err := pdf.OutputFileAndClose(path); err != nil {
		return "", fmt.Errorf("write invoice %s: %w", tx.InvoiceID, err)
	}
	return path, nil
}

func (r *PDFRenderer) totalRow(pdf *fpdf.Fpdf, label string, v float64, bold bool) {
	if bold {
		pdf.SetFont("Helvetica", "B", 11)
	} else {
		pdf.SetFont("Helvetica", "", 10)
	}
	pdf.CellFormat(colSKU+colTitle+colMRP, 6, label, "", 0, "R", false, 0, "")
	pdf.CellFormat(colQty+colTotal, 6, r.amount(v), "", 1, "R", false, 0, "")
}

// amount formats a rupee value with Indian digit grouping. The core PDF
// fonts have no rupee glyph, so amounts carry an Rs prefix instead.
func (r *PDFRenderer) amount(v float64) string {
	return r.amounts.Sprintf("Rs %.2f", v)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func clip(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max])
}
