// Package inmemory provides an in-memory TransactionStore. Data is lost on
// restart; use the BigQuery-backed store for persistence.
package inmemory

import (
	"context"
	"fmt"
	"sync"

	"github.com/cheizdavi-dotcom/Entregavel-Planilha-sub000/internal/model"
	"github.com/cheizdavi-dotcom/Entregavel-Planilha-sub000/internal/store"
)

// Store is an in-memory transaction store. It is safe for concurrent use.
type Store struct {
	mu  sync.RWMutex
	txs []model.Transaction
}

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{}
}

// Append adds the transactions to the store. Every transaction must carry an
// ID and a user; the pipeline assigns both at merge time.
func (s *Store) Append(ctx context.Context, txs []model.Transaction) error {
	for _, tx := range txs {
		if tx.ID == "" {
			return fmt.Errorf("Append: transaction without ID")
		}
		if tx.UserID == "" {
			return fmt.Errorf("Append: transaction %s without user", tx.ID)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.txs = append(s.txs, txs...)
	return nil
}

// ListByUser returns copies of the user's transactions in append order.
func (s *Store) ListByUser(ctx context.Context, userID string) ([]model.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []model.Transaction
	for _, tx := range s.txs {
		if tx.UserID == userID {
			result = append(result, tx)
		}
	}
	return result, nil
}

// Ensure Store implements TransactionStore.
var _ store.TransactionStore = (*Store)(nil)
