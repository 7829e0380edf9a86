package reports

import (
	"fmt"
	"testing"

	"sutrapos/internal/models"
)

func tx(invoice, mode string, total float64, itemsJSON string) models.Transaction {
	return models.Transaction{
		InvoiceID:   invoice,
		DateTime:    "2025-01-02T03:04:05",
		ItemsJSON:   itemsJSON,
		Total:       total,
		PaymentMode: mode,
	}
}

func TestEmptyLogYieldsZeroSummary(t *testing.T) {
	got := Summarize(nil)

	if got.TotalSales != 0 {
		t.Errorf("total sales = %v, want 0", got.TotalSales)
	}
	if got.UPIShare != 0 {
		t.Errorf("UPI share = %v, want 0", got.UPIShare)
	}
	if got.OrderCount != 0 || got.AvgOrderValue != 0 {
		t.Errorf("summary = %+v, want zeros", got)
	}
	if len(got.TopSellers) != 0 || len(got.Recent) != 0 {
		t.Errorf("expected no rankings on empty log: %+v", got)
	}
}

func TestTotalsAndUPIShare(t *testing.T) {
	txs := []models.Transaction{
		tx("INV1", models.PaymentUPI, 1000, "[]"),
		tx("INV2", models.PaymentCash, 2000, "[]"),
		tx("INV3", models.PaymentUPI, 3000, "[]"),
		tx("INV4", models.PaymentCard, 4000, "[]"),
	}

	got := Summarize(txs)

	if got.TotalSales != 10000 {
		t.Errorf("total sales = %v, want 10000", got.TotalSales)
	}
	if got.OrderCount != 4 {
		t.Errorf("order count = %d, want 4", got.OrderCount)
	}
	if got.AvgOrderValue != 2500 {
		t.Errorf("avg order value = %v, want 2500", got.AvgOrderValue)
	}
	if got.UPIShare != 0.5 {
		t.Errorf("UPI share = %v, want 0.5", got.UPIShare)
	}
}

func TestTopSellersSkipMalformedRows(t *testing.T) {
	txs := []models.Transaction{
		tx("INV1", models.PaymentUPI, 100, `[{"SKU":"MH001","Title":"Ahilya Red","Qty":1,"MRP":4500,"GST":5}]`),
		tx("INV2", models.PaymentCash, 100, `not json at all`),
		tx("INV3", models.PaymentCash, 100, `[{"SKU":"MH002","Title":"Temple Green","Qty":3,"MRP":4200,"GST":5},{"SKU":"MH001","Title":"Renamed Later","Qty":1,"MRP":4500,"GST":5}]`),
	}

	got := Summarize(txs)

	if got.OrderCount != 3 {
		t.Errorf("order count = %d, want 3 (malformed rows still count as orders)", got.OrderCount)
	}
	if len(got.TopSellers) != 2 {
		t.Fatalf("top sellers = %+v, want 2 entries", got.TopSellers)
	}
	if got.TopSellers[0].SKU != "MH002" || got.TopSellers[0].Qty != 3 {
		t.Errorf("top seller = %+v, want MH002 with qty 3", got.TopSellers[0])
	}
	if got.TopSellers[1].SKU != "MH001" || got.TopSellers[1].Qty != 2 {
		t.Errorf("second seller = %+v, want MH001 with qty 2", got.TopSellers[1])
	}
	if got.TopSellers[1].Title != "Ahilya Red" {
		t.Errorf("title = %q, want the first-seen title", got.TopSellers[1].Title)
	}
}

func TestTopSellersCappedAtFive(t *testing.T) {
	var txs []models.Transaction
	for i := 0; i < 8; i++ {
		items := fmt.Sprintf(`[{"SKU":"MH%03d","Title":"Saree %d","Qty":%d,"MRP":1000,"GST":5}]`, i, i, i+1)
		txs = append(txs, tx(fmt.Sprintf("INV%d", i), models.PaymentCash, 1000, items))
	}

	got := Summarize(txs)

	if len(got.TopSellers) != 5 {
		t.Fatalf("got %d top sellers, want 5", len(got.TopSellers))
	}
	for i := 1; i < len(got.TopSellers); i++ {
		if got.TopSellers[i-1].Qty < got.TopSellers[i].Qty {
			t.Errorf("ranking not descending at %d: %+v", i, got.TopSellers)
		}
	}
	if got.TopSellers[0].SKU != "MH007" {
		t.Errorf("top seller = %s, want MH007", got.TopSellers[0].SKU)
	}
}

func TestRecentIsNewestFirstAndCapped(t *testing.T) {
	var txs []models.Transaction
	for i := 0; i < 12; i++ {
		txs = append(txs, tx(fmt.Sprintf("INV%02d", i), models.PaymentCash, 100, "[]"))
	}

	got := Summarize(txs)

	if len(got.Recent) != 10 {
		t.Fatalf("got %d recent transactions, want 10", len(got.Recent))
	}
	if got.Recent[0].InvoiceID != "INV11" {
		t.Errorf("newest = %s, want INV11", got.Recent[0].InvoiceID)
	}
	if got.Recent[9].InvoiceID != "INV02" {
		t.Errorf("oldest shown = %s, want INV02", got.Recent[9].InvoiceID)
	}
}
