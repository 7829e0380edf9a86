package models

import "time"

// DateTimeLayout is the second-precision ISO-8601 layout used in the
// transactions table.
const DateTimeLayout = "2006-01-02T15:04:05"

// Payment modes accepted at checkout.
const (
	PaymentUPI  = "UPI"
	PaymentCash = "Cash"
	PaymentCard = "Card"
)

// ValidPaymentMode reports whether mode is one of the accepted modes.
func ValidPaymentMode(mode string) bool {
	switch mode {
	case PaymentUPI, PaymentCash, PaymentCard:
		return true
	}
	return false
}

// CatalogItem - one saree in the inventory table
type CatalogItem struct {
	SKU         string  `csv:"SKU" json:"sku"`
	Title       string  `csv:"Title" json:"title"`
	Fabric      string  `csv:"Fabric" json:"fabric"`
	ZariType    string  `csv:"ZariType" json:"zari_type"`
	Motif       string  `csv:"Motif" json:"motif"`
	BorderStyle string  `csv:"BorderStyle" json:"border_style"`
	Color       string  `csv:"Color" json:"color"`
	Occasion    string  `csv:"Occasion" json:"occasion"`
	MRP         float64 `csv:"MRP" json:"mrp"`
	GSTSlab     float64 `csv:"GST_Slab" json:"gst_slab"`
	Qty         int     `csv:"Qty" json:"qty"`
	Artisan     string  `csv:"Artisan" json:"artisan"`
	Story       string  `csv:"Story" json:"story"`
	ImagePath   string  `csv:"ImagePath" json:"image_path"`
}

// CartLine - one cart entry. MRP and GST are snapshots taken when the
// item was added; later catalog edits do not change an open cart.
// The json tags match the ItemsJSON column schema.
type CartLine struct {
	SKU   string  `json:"SKU"`
	Title string  `json:"Title"`
	Qty   int     `json:"Qty"`
	MRP   float64 `json:"MRP"`
	GST   float64 `json:"GST"`
}

// Transaction - one finalized checkout. Append-only: once written to the
// transactions table it is never mutated or deleted.
type Transaction struct {
	InvoiceID     string  `csv:"InvoiceID" json:"invoice_id"`
	DateTime      string  `csv:"DateTime" json:"date_time"`
	CustomerName  string  `csv:"CustomerName" json:"customer_name"`
	CustomerPhone string  `csv:"CustomerPhone" json:"customer_phone"`
	ItemsJSON     string  `csv:"ItemsJSON" json:"items_json"`
	Subtotal      float64 `csv:"Subtotal" json:"subtotal"`
	Tax           float64 `csv:"Tax" json:"tax"`
	Total         float64 `csv:"Total" json:"total"`
	PaymentMode   string  `csv:"PaymentMode" json:"payment_mode"`
}

// Time parses the transaction's DateTime column.
func (t Transaction) Time() (time.Time, error) {
	return time.Parse(DateTimeLayout, t.DateTime)
}
