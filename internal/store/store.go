// Package store defines the transaction persistence boundary. The import
// pipeline only ever appends; reads exist for the CLI and for reporting.
package store

import (
	"context"

	"github.com/cheizdavi-dotcom/Entregavel-Planilha-sub000/internal/model"
)

// TransactionStore persists confirmed transactions. Append is a single
// logical operation per confirmation; the store is single-writer per user
// session, so no cross-writer coordination is required here.
type TransactionStore interface {
	Append(ctx context.Context, txs []model.Transaction) error
	ListByUser(ctx context.Context, userID string) ([]model.Transaction, error)
}
