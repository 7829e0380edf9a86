package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sutrapos/internal/recommend"
	"sutrapos/internal/store"
)

// RecommendHandler answers free-text shopping queries.
type RecommendHandler struct {
	Catalog *store.Catalog
}

// Suggest runs the rule-based filter over the catalog. An empty match
// list is a normal answer, reported with a hint rather than an error.
func (h *RecommendHandler) Suggest(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "q query parameter is required"})
		return
	}

	picks := recommend.Filter(q, h.Catalog.Items())
	if len(picks) == 0 {
		c.JSON(http.StatusOK, gin.H{
			"items":   picks,
			"message": "No items match. Try changing color/price/occasion or add more inventory.",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": picks})
}
