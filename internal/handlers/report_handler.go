package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sutrapos/internal/reports"
	"sutrapos/internal/store"
)

// ReportHandler serves aggregated sales metrics.
type ReportHandler struct {
	Log *store.TransactionLog
}

// GetSalesReport aggregates the whole transaction log: total sales, UPI
// share, order count, average order value, top sellers and the most
// recent transactions.
func (h *ReportHandler) GetSalesReport(c *gin.Context) {
	c.JSON(http.StatusOK, reports.Summarize(h.Log.All()))
}
