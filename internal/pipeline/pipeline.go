// Package pipeline composes the statement import stages: tokenize, extract
// and normalize, then categorize. The whole pipeline is synchronous and pure;
// the oracle-backed categorize step is the only stage that does I/O.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cheizdavi-dotcom/Entregavel-Planilha-sub000/internal/categorize"
	"github.com/cheizdavi-dotcom/Entregavel-Planilha-sub000/internal/logger"
	"github.com/cheizdavi-dotcom/Entregavel-Planilha-sub000/internal/model"
	"github.com/cheizdavi-dotcom/Entregavel-Planilha-sub000/internal/oracle"
	"github.com/cheizdavi-dotcom/Entregavel-Planilha-sub000/internal/parse"
	"github.com/cheizdavi-dotcom/Entregavel-Planilha-sub000/internal/vocabulary"
)

// ErrNoTransactions reports that no statement line matched the structural
// pattern. Callers surface this as "no transactions found", not as a crash.
var ErrNoTransactions = errors.New("no transactions found in statement text")

// State holds the shared data across import steps.
type State struct {
	RawText     string
	Lines       []string
	Parsed      []model.ParsedTransaction
	Categorized []model.CategorizedTransaction

	// OracleUsed reports whether the categories came from the oracle or
	// from keyword fallback.
	OracleUsed bool
}

// Step is a single stage of the import pipeline.
type Step interface {
	Execute(ctx context.Context, state *State) error
}

// TokenizeStep splits the raw text into candidate lines.
type TokenizeStep struct{}

func (s *TokenizeStep) Execute(ctx context.Context, state *State) error {
	state.Lines = parse.Tokenize(state.RawText)
	return nil
}

// ParseStep extracts and normalizes candidate lines. Lines that do not match
// the structural pattern or fail normalization are skipped; a batch with zero
// survivors aborts with ErrNoTransactions before categorization.
type ParseStep struct {
	Clock func() time.Time
}

func (s *ParseStep) Execute(ctx context.Context, state *State) error {
	now := time.Now
	if s.Clock != nil {
		now = s.Clock
	}
	state.Parsed = parse.ParseLines(state.Lines, now())
	if len(state.Parsed) == 0 {
		return ErrNoTransactions
	}
	log := logger.FromContext(ctx)
	log.Debug().
		Int("lines", len(state.Lines)).
		Int("parsed", len(state.Parsed)).
		Msg("Parsed statement lines")
	return nil
}

// CategorizeStep assigns categories through deterministic keyword inference.
type CategorizeStep struct {
	Engine *categorize.Engine
}

func (s *CategorizeStep) Execute(ctx context.Context, state *State) error {
	state.Categorized = s.Engine.CategorizeAll(state.Parsed)
	return nil
}

// OracleCategorizeStep assigns categories through the classification oracle,
// falling back to deterministic inference when the oracle is degraded. It
// never fails the pipeline; a degraded oracle is informational, not an error.
type OracleCategorizeStep struct {
	Engine     *categorize.Engine
	Classifier oracle.Classifier
}

func (s *OracleCategorizeStep) Execute(ctx context.Context, state *State) error {
	state.Categorized, state.OracleUsed = s.Engine.ApplyOracle(ctx, state.Parsed, s.Classifier)
	return nil
}

// Pipeline executes a sequence of steps in order.
type Pipeline struct {
	steps []Step
}

// NewPipeline creates a pipeline from the given steps.
func NewPipeline(steps ...Step) *Pipeline {
	return &Pipeline{steps: steps}
}

// Execute runs all steps sequentially, stopping at the first failure.
func (p *Pipeline) Execute(ctx context.Context, state *State) error {
	for i, step := range p.steps {
		if err := step.Execute(ctx, state); err != nil {
			return fmt.Errorf("pipeline step %d: %w", i+1, err)
		}
	}
	return nil
}

// Options configures a pipeline run.
type Options struct {
	// Vocabulary is the closed category set. Defaults to the built-in
	// vocabulary when nil.
	Vocabulary *vocabulary.Vocabulary

	// Classifier enables oracle-backed categorization when non-nil. The
	// deterministic engine remains the fallback for every failure mode.
	Classifier oracle.Classifier

	// Clock supplies "now" for year-less dates. Defaults to time.Now.
	Clock func() time.Time
}

// Run imports raw pasted statement text into categorized candidates. Running
// twice on identical text yields identical results; IDs are assigned only at
// merge time.
func Run(ctx context.Context, text string, opts Options) ([]model.CategorizedTransaction, error) {
	vocab := opts.Vocabulary
	if vocab == nil {
		vocab = vocabulary.Default()
	}
	engine := categorize.New(vocab)

	steps := []Step{
		&TokenizeStep{},
		&ParseStep{Clock: opts.Clock},
	}
	if opts.Classifier != nil {
		steps = append(steps, &OracleCategorizeStep{Engine: engine, Classifier: opts.Classifier})
	} else {
		steps = append(steps, &CategorizeStep{Engine: engine})
	}

	state := &State{RawText: text}
	if err := NewPipeline(steps...).Execute(ctx, state); err != nil {
		return nil, err
	}
	return state.Categorized, nil
}
