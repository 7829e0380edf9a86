package store

import (
	"fmt"

	"sutrapos/internal/models"
)

// TransactionLog is the repository for the sales record table. The table
// is append-only: records are added at checkout and never touched again.
type TransactionLog struct {
	path string
	txs  []models.Transaction
}

// LoadTransactions reads the transactions table at path. A missing file
// yields an empty log.
func LoadTransactions(path string) (*TransactionLog, error) {
	l := &TransactionLog{path: path}
	if err := readTable(path, &l.txs); err != nil {
		return nil, err
	}
	return l, nil
}

// All returns a copy of the recorded transactions, oldest first.
func (l *TransactionLog) All() []models.Transaction {
	out := make([]models.Transaction, len(l.txs))
	copy(out, l.txs)
	return out
}

// Len returns the number of recorded transactions.
func (l *TransactionLog) Len() int { return len(l.txs) }

// Append records one transaction and persists the table. On a write
// failure the in-memory log is rolled back so a retry does not record
// the sale twice.
func (l *TransactionLog) Append(tx models.Transaction) error {
	if tx.InvoiceID == "" {
		return fmt.Errorf("transaction needs an invoice id")
	}
	l.txs = append(l.txs, tx)
	if err := writeTable(l.path, &l.txs); err != nil {
		l.txs = l.txs[:len(l.txs)-1]
		return err
	}
	return nil
}
