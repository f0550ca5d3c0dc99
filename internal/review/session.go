// Package review holds import candidates between pipeline output and the
// user's confirm-or-cancel decision.
package review

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/cheizdavi-dotcom/Entregavel-Planilha-sub000/internal/model"
	"github.com/cheizdavi-dotcom/Entregavel-Planilha-sub000/internal/store"
	"github.com/cheizdavi-dotcom/Entregavel-Planilha-sub000/internal/vocabulary"
)

// ErrSessionClosed reports an operation on a confirmed or cancelled session.
var ErrSessionClosed = errors.New("review session is closed")

// Session is an ordered list of candidates pending confirmation. A session
// belongs to one user interaction and is not safe for concurrent use; at most
// one analyze attempt is outstanding per session.
type Session struct {
	vocab      *vocabulary.Vocabulary
	candidates []model.CategorizedTransaction
	analyzeSeq int
	closed     bool
}

// NewSession creates a session over the pipeline's candidates.
func NewSession(vocab *vocabulary.Vocabulary, candidates []model.CategorizedTransaction) *Session {
	copied := make([]model.CategorizedTransaction, len(candidates))
	copy(copied, candidates)
	return &Session{vocab: vocab, candidates: copied}
}

// Candidates returns a copy of the current candidate list.
func (s *Session) Candidates() []model.CategorizedTransaction {
	out := make([]model.CategorizedTransaction, len(s.candidates))
	copy(out, s.candidates)
	return out
}

// Override replaces the category of candidate i. Only categories from the
// candidate's own direction subset are accepted; a wrong-direction or unknown
// label is rejected rather than validated away later.
func (s *Session) Override(i int, category string) error {
	if s.closed {
		return ErrSessionClosed
	}
	if i < 0 || i >= len(s.candidates) {
		return fmt.Errorf("Override: index %d out of range", i)
	}
	direction := s.candidates[i].Direction
	if !s.vocab.Contains(category, direction) {
		return fmt.Errorf("Override: %q is not a valid %s category", category, direction)
	}
	s.candidates[i].Category = category
	return nil
}

// BeginAnalyze marks the start of a new oracle categorization attempt and
// returns its token. Starting another attempt supersedes the token, so a
// response that arrives after the user moved on is dropped by ApplyAnalysis.
func (s *Session) BeginAnalyze() int {
	s.analyzeSeq++
	return s.analyzeSeq
}

// ApplyAnalysis installs a categorization result. The result is dropped when
// the session is closed, the token was superseded, or the result does not
// match the candidate list one to one.
func (s *Session) ApplyAnalysis(token int, categorized []model.CategorizedTransaction) bool {
	if s.closed || token != s.analyzeSeq || len(categorized) != len(s.candidates) {
		return false
	}
	copy(s.candidates, categorized)
	return true
}

// Confirm assigns a fresh ID and the user's identity to every candidate and
// appends them all to the store. The merge is all-or-nothing from the
// session's perspective: on store failure the session stays open and nothing
// is recorded as merged. A confirmed session accepts no further mutation.
func (s *Session) Confirm(ctx context.Context, st store.TransactionStore, userID, paymentMethod string) ([]model.Transaction, error) {
	if s.closed {
		return nil, ErrSessionClosed
	}

	txs := make([]model.Transaction, len(s.candidates))
	for i, c := range s.candidates {
		txs[i] = model.Transaction{
			ID:            uuid.NewString(),
			UserID:        userID,
			Type:          c.Direction,
			Amount:        c.Amount,
			Description:   c.Description,
			Category:      c.Category,
			PaymentMethod: paymentMethod,
			Date:          c.Date,
		}
	}

	if err := st.Append(ctx, txs); err != nil {
		return nil, fmt.Errorf("Confirm: appending transactions: %w", err)
	}

	s.closed = true
	return txs, nil
}

// Cancel discards all candidates. No partial merge happens.
func (s *Session) Cancel() {
	s.closed = true
	s.candidates = nil
}
