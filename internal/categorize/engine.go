// Package categorize assigns categories to parsed transactions, either
// deterministically through ordered keyword matching or through the
// classification oracle with deterministic fallback. Both paths share the
// same vocabulary validation.
package categorize

import (
	"context"

	"github.com/cheizdavi-dotcom/Entregavel-Planilha-sub000/internal/logger"
	"github.com/cheizdavi-dotcom/Entregavel-Planilha-sub000/internal/model"
	"github.com/cheizdavi-dotcom/Entregavel-Planilha-sub000/internal/oracle"
	"github.com/cheizdavi-dotcom/Entregavel-Planilha-sub000/internal/vocabulary"
)

// Engine is the deterministic category inference engine. It is stateless
// beyond the read-only vocabulary and safe to use from multiple goroutines.
type Engine struct {
	vocab *vocabulary.Vocabulary
}

// New creates an Engine over an immutable vocabulary.
func New(vocab *vocabulary.Vocabulary) *Engine {
	return &Engine{vocab: vocab}
}

// Categorize assigns the first keyword-matched category for the transaction's
// direction, or the direction default when no keyword matches. Repeated calls
// with the same vocabulary and description always return the same category.
func (e *Engine) Categorize(tx model.ParsedTransaction) model.CategorizedTransaction {
	return model.CategorizedTransaction{
		ParsedTransaction: tx,
		Category:          e.vocab.Infer(tx.Description, tx.Direction),
	}
}

// CategorizeAll categorizes a batch in order.
func (e *Engine) CategorizeAll(txs []model.ParsedTransaction) []model.CategorizedTransaction {
	out := make([]model.CategorizedTransaction, len(txs))
	for i, tx := range txs {
		out[i] = e.Categorize(tx)
	}
	return out
}

// ApplyOracle categorizes the batch through the classifier instead of the
// keyword tables. Failure handling follows the oracle contract:
//
//   - Transport error, empty result or length mismatch: the oracle response
//     is discarded entirely and every item falls back to deterministic
//     inference. No partial trust.
//   - A category outside the vocabulary, or from the wrong direction table:
//     replaced by the direction default for that item only.
//
// The returned bool reports whether the oracle result was used. No item is
// ever left uncategorized.
func (e *Engine) ApplyOracle(ctx context.Context, txs []model.ParsedTransaction, clf oracle.Classifier) ([]model.CategorizedTransaction, bool) {
	if len(txs) == 0 {
		return nil, false
	}

	req := oracle.Request{Transactions: make([]oracle.Item, len(txs))}
	for i, tx := range txs {
		req.Transactions[i] = oracle.Item{
			Description: tx.Description,
			Amount:      tx.Amount,
			Type:        tx.Direction,
		}
	}

	log := logger.FromContext(ctx)

	resp, err := clf.Classify(ctx, req)
	if err != nil {
		log.Warn().Err(err).Int("batch_size", len(txs)).Msg("Oracle classification failed, falling back to keyword inference")
		return e.CategorizeAll(txs), false
	}
	if len(resp.CategorizedTransactions) != len(txs) {
		log.Warn().
			Int("got", len(resp.CategorizedTransactions)).
			Int("want", len(txs)).
			Msg("Oracle response length mismatch, falling back to keyword inference")
		return e.CategorizeAll(txs), false
	}

	out := make([]model.CategorizedTransaction, len(txs))
	for i, tx := range txs {
		category := resp.CategorizedTransactions[i].Category
		if !e.vocab.Contains(category, tx.Direction) {
			log.Debug().Str("category", category).Str("direction", string(tx.Direction)).
				Msg("Oracle returned category outside vocabulary, using direction default")
			category = e.vocab.Default(tx.Direction)
		}
		out[i] = model.CategorizedTransaction{ParsedTransaction: tx, Category: category}
	}
	return out, true
}
