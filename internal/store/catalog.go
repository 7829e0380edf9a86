package store

import (
	"fmt"

	"sutrapos/internal/models"
)

// Catalog is the repository for the inventory table. It keeps the table
// in memory and rewrites the backing CSV on every mutation; callers pass
// it around explicitly rather than reaching for a package global.
type Catalog struct {
	path  string
	items []models.CatalogItem
}

// LoadCatalog reads the inventory table at path. A missing file yields
// an empty catalog, matching a fresh install.
func LoadCatalog(path string) (*Catalog, error) {
	c := &Catalog{path: path}
	if err := readTable(path, &c.items); err != nil {
		return nil, err
	}
	for i, it := range c.items {
		if it.SKU == "" {
			return nil, fmt.Errorf("inventory row %d: empty SKU", i+2)
		}
		if it.MRP < 0 {
			return nil, fmt.Errorf("inventory row %d (%s): negative MRP", i+2, it.SKU)
		}
		if it.Qty < 0 {
			// Never persisted by this program; repair rather than refuse.
			c.items[i].Qty = 0
		}
	}
	return c, nil
}

// Items returns a copy of the catalog rows in table order.
func (c *Catalog) Items() []models.CatalogItem {
	out := make([]models.CatalogItem, len(c.items))
	copy(out, c.items)
	return out
}

// Get returns the item with the given SKU.
func (c *Catalog) Get(sku string) (models.CatalogItem, bool) {
	for _, it := range c.items {
		if it.SKU == sku {
			return it, true
		}
	}
	return models.CatalogItem{}, false
}

// Add appends a new item and persists the table. SKUs must be unique.
func (c *Catalog) Add(item models.CatalogItem) error {
	if item.SKU == "" {
		return fmt.Errorf("item needs a SKU")
	}
	if _, ok := c.Get(item.SKU); ok {
		return fmt.Errorf("SKU %s already exists", item.SKU)
	}
	if item.MRP < 0 {
		return fmt.Errorf("MRP must not be negative")
	}
	if item.GSTSlab < 0 || item.GSTSlab > 28 {
		return fmt.Errorf("GST slab must be between 0 and 28")
	}
	if item.Qty < 0 {
		return fmt.Errorf("quantity must not be negative")
	}
	c.items = append(c.items, item)
	return c.Save()
}

// DecrementQty reduces the stock count for sku by qty, floored at zero.
// An unknown SKU is a no-op. The change is in-memory; call Save to
// persist a batch of decrements in one write.
func (c *Catalog) DecrementQty(sku string, qty int) {
	for i := range c.items {
		if c.items[i].SKU != sku {
			continue
		}
		c.items[i].Qty -= qty
		if c.items[i].Qty < 0 {
			c.items[i].Qty = 0
		}
		return
	}
}

// Save rewrites the inventory table atomically.
func (c *Catalog) Save() error {
	return writeTable(c.path, &c.items)
}

// Occasions returns the distinct Occasion values in first-appearance order.
func (c *Catalog) Occasions() []string {
	return c.distinct(func(it models.CatalogItem) string { return it.Occasion })
}

// Colors returns the distinct Color values in first-appearance order.
func (c *Catalog) Colors() []string {
	return c.distinct(func(it models.CatalogItem) string { return it.Color })
}

// Fabrics returns the distinct Fabric values in first-appearance order.
func (c *Catalog) Fabrics() []string {
	return c.distinct(func(it models.CatalogItem) string { return it.Fabric })
}

func (c *Catalog) distinct(field func(models.CatalogItem) string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, it := range c.items {
		v := field(it)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}
