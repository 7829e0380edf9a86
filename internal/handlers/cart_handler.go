package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"sutrapos/internal/cart"
	"sutrapos/internal/pricing"
	"sutrapos/internal/store"
)

// CartHandler manages the single interactive session's cart.
type CartHandler struct {
	Catalog *store.Catalog
	Cart    *cart.Cart
}

// Show returns the cart lines with a running bill summary.
func (h *CartHandler) Show(c *gin.Context) {
	lines := h.Cart.Lines()
	c.JSON(http.StatusOK, gin.H{
		"lines":  lines,
		"totals": pricing.Compute(lines).Rounded(),
	})
}

type addLineRequest struct {
	SKU string `json:"sku" binding:"required"`
	Qty int    `json:"qty"`
}

// AddItem puts qty units of a catalog item into the cart, snapshotting
// its price and tax slab. Qty defaults to 1.
func (h *CartHandler) AddItem(c *gin.Context) {
	var req addLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	if req.Qty == 0 {
		req.Qty = 1
	}

	item, ok := h.Catalog.Get(req.SKU)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("SKU %s not found", req.SKU)})
		return
	}
	if err := h.Cart.Add(item, req.Qty); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	lines := h.Cart.Lines()
	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Added %d x %s", req.Qty, item.Title),
		"lines":   lines,
		"totals":  pricing.Compute(lines).Rounded(),
	})
}

// Clear empties the cart.
func (h *CartHandler) Clear(c *gin.Context) {
	h.Cart.Clear()
	c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
}
