// Package reports aggregates the transaction log into shop metrics.
package reports

import (
	"sort"

	"github.com/montanaflynn/stats"

	"sutrapos/internal/billing"
	"sutrapos/internal/models"
	"sutrapos/internal/pricing"
)

// TopSeller is one row of the best-seller ranking.
type TopSeller struct {
	SKU   string `json:"sku"`
	Title string `json:"title"`
	Qty   int    `json:"qty"`
}

// Summary is the full report payload.
type Summary struct {
	TotalSales    float64              `json:"total_sales"`
	OrderCount    int                  `json:"order_count"`
	AvgOrderValue float64              `json:"avg_order_value"`
	UPIShare      float64              `json:"upi_share"`
	TopSellers    []TopSeller          `json:"top_sellers"`
	Recent        []models.Transaction `json:"recent"`
}

const (
	topSellerLimit = 5
	recentLimit    = 10
)

// Summarize aggregates all recorded transactions. An empty log yields a
// zero summary, not an error. Transactions whose stored line items no
// longer parse still count toward sales totals; they are only skipped
// in the best-seller ranking.
func Summarize(txs []models.Transaction) Summary {
	s := Summary{OrderCount: len(txs)}
	if len(txs) == 0 {
		return s
	}

	totals := make([]float64, len(txs))
	upiCount := 0
	for i, tx := range txs {
		totals[i] = tx.Total
		if tx.PaymentMode == models.PaymentUPI {
			upiCount++
		}
	}
	sum, _ := stats.Sum(totals)
	mean, _ := stats.Mean(totals)
	s.TotalSales = pricing.Round2(sum)
	s.AvgOrderValue = pricing.Round2(mean)
	s.UPIShare = float64(upiCount) / float64(len(txs))

	s.TopSellers = topSellers(txs)
	s.Recent = recent(txs)
	return s
}

// topSellers flattens every transaction's line items, groups by SKU and
// ranks by total quantity sold. The title shown is the first one seen
// for the SKU.
func topSellers(txs []models.Transaction) []TopSeller {
	bySKU := make(map[string]*TopSeller)
	var order []string

	for _, tx := range txs {
		lines, err := billing.DecodeLines(tx.ItemsJSON)
		if err != nil {
			continue // malformed historical rows don't break reporting
		}
		for _, ln := range lines {
			ts, ok := bySKU[ln.SKU]
			if !ok {
				ts = &TopSeller{SKU: ln.SKU, Title: ln.Title}
				bySKU[ln.SKU] = ts
				order = append(order, ln.SKU)
			}
			ts.Qty += ln.Qty
		}
	}

	ranked := make([]TopSeller, 0, len(order))
	for _, sku := range order {
		ranked = append(ranked, *bySKU[sku])
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Qty > ranked[j].Qty
	})
	if len(ranked) > topSellerLimit {
		ranked = ranked[:topSellerLimit]
	}
	return ranked
}

// recent returns the newest transactions first, up to recentLimit.
func recent(txs []models.Transaction) []models.Transaction {
	n := len(txs)
	if n > recentLimit {
		n = recentLimit
	}
	out := make([]models.Transaction, 0, n)
	for i := len(txs) - 1; i >= len(txs)-n; i-- {
		out = append(out, txs[i])
	}
	return out
}
