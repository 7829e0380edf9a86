package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"sutrapos/internal/billing"
	"sutrapos/internal/cart"
)

// CheckoutHandler finalizes the session cart into a transaction.
type CheckoutHandler struct {
	Workflow *billing.Checkout
	Cart     *cart.Cart
}

type checkoutRequest struct {
	CustomerName  string `json:"customer_name"`
	CustomerPhone string `json:"customer_phone"`
	PaymentMode   string `json:"payment_mode" binding:"required"`
}

// Checkout runs the billing workflow. On partial failure the response
// says which stage failed instead of pretending nothing happened: a
// sale can be recorded while the stock write or the invoice render
// still failed.
func (h *CheckoutHandler) Checkout(c *gin.Context) {
	var req checkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	res, err := h.Workflow.Process(h.Cart, req.CustomerName, req.CustomerPhone, req.PaymentMode)
	if err != nil {
		var stageErr *billing.StageError
		if errors.As(err, &stageErr) {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":                err.Error(),
				"stage":                stageErr.Stage,
				"transaction_recorded": stageErr.Stage != billing.StageRecord,
			})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":      "Invoice " + res.Transaction.InvoiceID + " generated",
		"transaction":  res.Transaction,
		"invoice_path": res.InvoicePath,
	})
}
