package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cast"

	"sutrapos/internal/models"
	"sutrapos/internal/store"
)

// CatalogHandler serves catalog browsing and the inventory-add form.
type CatalogHandler struct {
	Catalog *store.Catalog
}

// List returns catalog items, narrowed by the optional occasion, color,
// fabric and max_price query params, plus the facet values the UI can
// offer as filters.
func (h *CatalogHandler) List(c *gin.Context) {
	occasion := c.Query("occasion")
	color := c.Query("color")
	fabric := c.Query("fabric")

	maxPrice := 0.0
	hasMaxPrice := false
	if raw := c.Query("max_price"); raw != "" {
		v, err := cast.ToFloat64E(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "max_price must be a number"})
			return
		}
		maxPrice = v
		hasMaxPrice = true
	}

	items := []models.CatalogItem{}
	for _, it := range h.Catalog.Items() {
		if occasion != "" && it.Occasion != occasion {
			continue
		}
		if color != "" && it.Color != color {
			continue
		}
		if fabric != "" && it.Fabric != fabric {
			continue
		}
		if hasMaxPrice && it.MRP > maxPrice {
			continue
		}
		items = append(items, it)
	}

	c.JSON(http.StatusOK, gin.H{
		"items":     items,
		"occasions": h.Catalog.Occasions(),
		"colors":    h.Catalog.Colors(),
		"fabrics":   h.Catalog.Fabrics(),
	})
}

// AddItemRequest mirrors the inventory-add form. GST defaults to the 5%
// slab when omitted, matching the form's preset.
type AddItemRequest struct {
	SKU         string   `json:"sku" binding:"required"`
	Title       string   `json:"title"`
	Fabric      string   `json:"fabric"`
	ZariType    string   `json:"zari_type"`
	Motif       string   `json:"motif"`
	BorderStyle string   `json:"border_style"`
	Color       string   `json:"color"`
	Occasion    string   `json:"occasion"`
	MRP         float64  `json:"mrp"`
	GSTSlab     *float64 `json:"gst_slab"`
	Qty         int      `json:"qty"`
	Artisan     string   `json:"artisan"`
	Story       string   `json:"story"`
	ImagePath   string   `json:"image_path"`
}

// AddItem appends a new item to the inventory table.
func (h *CatalogHandler) AddItem(c *gin.Context) {
	var req AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	gst := 5.0
	if req.GSTSlab != nil {
		gst = *req.GSTSlab
	}
	item := models.CatalogItem{
		SKU:         req.SKU,
		Title:       req.Title,
		Fabric:      req.Fabric,
		ZariType:    req.ZariType,
		Motif:       req.Motif,
		BorderStyle: req.BorderStyle,
		Color:       req.Color,
		Occasion:    req.Occasion,
		MRP:         req.MRP,
		GSTSlab:     gst,
		Qty:         req.Qty,
		Artisan:     req.Artisan,
		Story:       req.Story,
		ImagePath:   req.ImagePath,
	}
	if err := h.Catalog.Add(item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, item)
}
