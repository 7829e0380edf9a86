// Package pricing computes bill totals for a cart.
package pricing

import (
	"math"

	"sutrapos/internal/models"
)

// Totals is a bill summary. Values from Compute are unrounded; rounding
// to two decimals happens once, at the persistence/response edge, so
// per-line rounding error never compounds.
type Totals struct {
	Subtotal float64 `json:"subtotal"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}

// Compute sums line totals and line taxes over the cart. An empty cart
// yields all zeros.
func Compute(lines []models.CartLine) Totals {
	var t Totals
	for _, ln := range lines {
		lineTotal := ln.MRP * float64(ln.Qty)
		t.Subtotal += lineTotal
		t.Tax += lineTotal * ln.GST / 100
	}
	t.Total = t.Subtotal + t.Tax
	return t
}

// Rounded returns the totals rounded to two decimal places.
func (t Totals) Rounded() Totals {
	return Totals{
		Subtotal: Round2(t.Subtotal),
		Tax:      Round2(t.Tax),
		Total:    Round2(t.Total),
	}
}

// Round2 rounds to two decimal places, half away from zero.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
