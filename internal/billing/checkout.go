// Package billing runs the checkout workflow: price the cart, record the
// transaction, reconcile inventory, render the invoice.
package billing

import (
	"fmt"
	"time"

	jsoniter "github.com/json-iterator/go"

	"sutrapos/internal/cart"
	"sutrapos/internal/models"
	"sutrapos/internal/pricing"
	"sutrapos/internal/store"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// OversellPolicy decides what happens when a cart asks for more units
// than are in stock.
type OversellPolicy string

const (
	// PolicyClamp completes the sale and floors stock at zero.
	PolicyClamp OversellPolicy = "clamp"
	// PolicyReject refuses the checkout before anything is written.
	PolicyReject OversellPolicy = "reject"
)

// ParsePolicy maps a config string to a policy, defaulting to clamp.
func ParsePolicy(s string) OversellPolicy {
	if s == string(PolicyReject) {
		return PolicyReject
	}
	return PolicyClamp
}

// Renderer turns a finalized transaction into a printable invoice
// document and returns the path of the written artifact.
type Renderer interface {
	Render(tx models.Transaction, lines []models.CartLine) (string, error)
}

// Checkout stages, in effect order. A StageError names the first stage
// that failed; everything before it already happened.
const (
	StageRecord    = "record"
	StageInventory = "inventory"
	StageInvoice   = "invoice"
)

// StageError reports a checkout failure together with the stage that
// failed, so callers can tell "nothing happened" from "the sale was
// recorded but stock or the invoice is pending".
type StageError struct {
	Stage string
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("checkout %s stage: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error { return e.Err }

// Checkout orchestrates one sale end to end.
type Checkout struct {
	Catalog  *store.Catalog
	Log      *store.TransactionLog
	Renderer Renderer
	Policy   OversellPolicy

	// Now is the clock used for invoice numbering; tests override it.
	Now func() time.Time

	lastStamp string
	lastSeq   int
}

// Result is a completed checkout.
type Result struct {
	Transaction models.Transaction
	Lines       []models.CartLine
	InvoicePath string
}

// Process finalizes the cart. Effect order is fixed: the transaction is
// appended to the log, then inventory is decremented and saved, then the
// invoice is rendered, then the cart is cleared. There is no rollback;
// on failure the returned StageError says how far the sale got.
func (w *Checkout) Process(crt *cart.Cart, customerName, customerPhone, paymentMode string) (*Result, error) {
	if crt.Empty() {
		return nil, fmt.Errorf("cart is empty")
	}
	if !models.ValidPaymentMode(paymentMode) {
		return nil, fmt.Errorf("unknown payment mode %q", paymentMode)
	}

	lines := crt.Lines()

	if w.Policy == PolicyReject {
		if err := w.checkStock(lines); err != nil {
			return nil, err
		}
	}

	totals := pricing.Compute(lines).Rounded()
	itemsJSON, err := json.MarshalToString(lines)
	if err != nil {
		return nil, fmt.Errorf("encode cart lines: %w", err)
	}

	now := w.now()
	tx := models.Transaction{
		InvoiceID:     w.nextInvoiceID(now),
		DateTime:      now.Format(models.DateTimeLayout),
		CustomerName:  customerName,
		CustomerPhone: customerPhone,
		ItemsJSON:     itemsJSON,
		Subtotal:      totals.Subtotal,
		Tax:           totals.Tax,
		Total:         totals.Total,
		PaymentMode:   paymentMode,
	}

	if err := w.Log.Append(tx); err != nil {
		return nil, &StageError{Stage: StageRecord, Err: err}
	}

	for _, ln := range lines {
		w.Catalog.DecrementQty(ln.SKU, ln.Qty)
	}
	if err := w.Catalog.Save(); err != nil {
		return nil, &StageError{Stage: StageInventory, Err: err}
	}

	path, err := w.Renderer.Render(tx, lines)
	if err != nil {
		return nil, &StageError{Stage: StageInvoice, Err: err}
	}

	crt.Clear()
	return &Result{Transaction: tx, Lines: lines, InvoicePath: path}, nil
}

// checkStock sums requested quantities per SKU and compares against the
// catalog. Unknown SKUs are treated as zero stock under the reject
// policy.
func (w *Checkout) checkStock(lines []models.CartLine) error {
	wanted := make(map[string]int)
	for _, ln := range lines {
		wanted[ln.SKU] += ln.Qty
	}
	for _, ln := range lines {
		qty, ok := wanted[ln.SKU]
		if !ok {
			continue // already checked via an earlier line
		}
		delete(wanted, ln.SKU)
		item, found := w.Catalog.Get(ln.SKU)
		if !found || item.Qty < qty {
			return fmt.Errorf("insufficient stock for %s: want %d, have %d", ln.SKU, qty, item.Qty)
		}
	}
	return nil
}

// nextInvoiceID derives an id from the clock second, INV20060102150405.
// Two checkouts inside the same second would collide, so a -NN sequence
// suffix is appended for repeats within this process.
func (w *Checkout) nextInvoiceID(now time.Time) string {
	stamp := now.Format("20060102150405")
	if stamp == w.lastStamp {
		w.lastSeq++
		return fmt.Sprintf("INV%s-%02d", stamp, w.lastSeq)
	}
	w.lastStamp = stamp
	w.lastSeq = 0
	return "INV" + stamp
}

func (w *Checkout) now() time.Time {
	if w.Now != nil {
		return w.Now()
	}
	return time.Now()
}

// DecodeLines parses an ItemsJSON column back into cart lines.
func DecodeLines(itemsJSON string) ([]models.CartLine, error) {
	var lines []models.CartLine
	if err := json.UnmarshalFromString(itemsJSON, &lines); err != nil {
		return nil, fmt.Errorf("decode cart lines: %w", err)
	}
	return lines, nil
}
