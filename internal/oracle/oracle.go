// Package oracle defines the classification oracle boundary: an external
// service that maps a batch of transactions to categories from a supplied
// vocabulary. The oracle is untrusted and fallible; callers validate every
// response before use and must keep working when it is degraded.
package oracle

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/cheizdavi-dotcom/Entregavel-Planilha-sub000/internal/model"
)

// ErrContract indicates the oracle response violated the batch contract:
// empty, malformed, or not the same length and order as the request.
var ErrContract = errors.New("oracle response violates batch contract")

// Item is one transaction submitted for classification.
type Item struct {
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Type        model.Direction `json:"type"`
}

// Result mirrors an Item with the assigned category.
type Result struct {
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Type        model.Direction `json:"type"`
	Category    string          `json:"category"`
}

// Request is an ordered batch of transactions to classify.
type Request struct {
	Transactions []Item `json:"transactions"`
}

// Response carries one Result per request Item, in request order. Any length
// or order mismatch is a contract violation, not a partial answer.
type Response struct {
	CategorizedTransactions []Result `json:"categorizedTransactions"`
}

// Classifier is the injected oracle capability. A single attempt per batch;
// retries are the caller's business, and in practice the caller falls back to
// deterministic inference instead.
type Classifier interface {
	Classify(ctx context.Context, req Request) (Response, error)
}
