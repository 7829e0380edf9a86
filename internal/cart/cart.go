// Package cart holds the line items for one interactive billing session.
package cart

import (
	"fmt"

	"sutrapos/internal/models"
)

// Cart is an ordered list of line items. Adding the same SKU twice keeps
// two lines; the clerk sees the cart exactly as it was built.
type Cart struct {
	lines []models.CartLine
}

func New() *Cart {
	return &Cart{}
}

// Add snapshots an item's price and tax slab into a new cart line.
func (c *Cart) Add(item models.CatalogItem, qty int) error {
	if qty < 1 {
		return fmt.Errorf("quantity must be at least 1")
	}
	c.lines = append(c.lines, models.CartLine{
		SKU:   item.SKU,
		Title: item.Title,
		Qty:   qty,
		MRP:   item.MRP,
		GST:   item.GSTSlab,
	})
	return nil
}

// Lines returns a copy of the cart lines in insertion order.
func (c *Cart) Lines() []models.CartLine {
	out := make([]models.CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *Cart) Empty() bool { return len(c.lines) == 0 }

func (c *Cart) Clear() { c.lines = nil }
