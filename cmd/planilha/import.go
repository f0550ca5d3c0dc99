package main

import (
	"context"
	"errors"
	"fmt"
	"text/tabwriter"

	"cloud.google.com/go/bigquery"
	"github.com/spf13/cobra"

	"github.com/cheizdavi-dotcom/Entregavel-Planilha-sub000/internal/config"
	"github.com/cheizdavi-dotcom/Entregavel-Planilha-sub000/internal/logger"
	"github.com/cheizdavi-dotcom/Entregavel-Planilha-sub000/internal/model"
	"github.com/cheizdavi-dotcom/Entregavel-Planilha-sub000/internal/oracle"
	"github.com/cheizdavi-dotcom/Entregavel-Planilha-sub000/internal/pipeline"
	"github.com/cheizdavi-dotcom/Entregavel-Planilha-sub000/internal/review"
	"github.com/cheizdavi-dotcom/Entregavel-Planilha-sub000/internal/statementsource"
	"github.com/cheizdavi-dotcom/Entregavel-Planilha-sub000/internal/store"
	"github.com/cheizdavi-dotcom/Entregavel-Planilha-sub000/internal/store/bigquerystore"
	"github.com/cheizdavi-dotcom/Entregavel-Planilha-sub000/internal/store/inmemory"
	"github.com/cheizdavi-dotcom/Entregavel-Planilha-sub000/internal/vocabulary"
)

var (
	importFrom    string
	importAI      bool
	importYes     bool
	importUser    string
	importPayment string
	importConfig  string
)

func init() {
	importCmd.Flags().StringVar(&importFrom, "from", "-", "statement text source: '-' for stdin, a file path, or a gs:// URI")
	importCmd.Flags().BoolVar(&importAI, "ai", false, "categorize through Gemini instead of keyword rules")
	importCmd.Flags().BoolVar(&importYes, "yes", false, "confirm the merge into the transaction store")
	importCmd.Flags().StringVar(&importUser, "user", "", "user the merged transactions belong to (default from config)")
	importCmd.Flags().StringVar(&importPayment, "payment-method", "", "payment method stamped on merged transactions (default from config)")
	importCmd.Flags().StringVar(&importConfig, "config", "", "path to a config file")
	rootCmd.AddCommand(importCmd)
}

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Parse pasted statement text into categorized transactions",
	RunE:  runImport,
}

func runImport(cmd *cobra.Command, args []string) error {
	log := logger.New()
	ctx := logger.WithContext(cmd.Context(), log)

	cfg, err := config.Load(importConfig)
	if err != nil {
		return err
	}
	if importUser == "" {
		importUser = cfg.User
	}
	if importPayment == "" {
		importPayment = cfg.PaymentMethod
	}

	vocab := vocabulary.Default()
	if cfg.VocabularyFile != "" {
		vocab, err = vocabulary.Load(cfg.VocabularyFile)
		if err != nil {
			return err
		}
	}

	text, err := statementsource.Load(ctx, importFrom, cmd.InOrStdin())
	if err != nil {
		return err
	}

	opts := pipeline.Options{Vocabulary: vocab}
	if importAI {
		opts.Classifier = oracle.NewGeminiClassifier(vocab, cfg.Gemini.Model)
	}

	candidates, err := pipeline.Run(ctx, text, opts)
	if errors.Is(err, pipeline.ErrNoTransactions) {
		fmt.Fprintln(cmd.OutOrStdout(), "No transactions found in the pasted text.")
		return nil
	}
	if err != nil {
		return err
	}

	printCandidates(cmd, candidates)

	if !importYes {
		fmt.Fprintf(cmd.OutOrStdout(), "\n%d candidate(s); re-run with --yes to merge.\n", len(candidates))
		return nil
	}

	st, cleanup, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	session := review.NewSession(vocab, candidates)
	merged, err := session.Confirm(ctx, st, importUser, importPayment)
	if err != nil {
		return err
	}

	log.Info().Int("count", len(merged)).Str("user", importUser).Msg("Merged transactions")
	fmt.Fprintf(cmd.OutOrStdout(), "\nMerged %d transaction(s) for %s.\n", len(merged), importUser)
	return nil
}

func printCandidates(cmd *cobra.Command, candidates []model.CategorizedTransaction) {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "DATE\tTYPE\tAMOUNT\tCATEGORY\tDESCRIPTION")
	for _, c := range candidates {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			c.Date.Format("2006-01-02"), c.Direction, c.Amount.String(), c.Category, c.Description)
	}
	w.Flush()
}

func openStore(ctx context.Context, cfg *config.Config) (store.TransactionStore, func(), error) {
	switch cfg.Store.Backend {
	case "", "memory":
		return inmemory.NewStore(), func() {}, nil
	case "bigquery":
		client, err := bigquery.NewClient(ctx, cfg.Store.Project)
		if err != nil {
			return nil, nil, fmt.Errorf("openStore: bigquery client: %w", err)
		}
		return bigquerystore.New(client, cfg.Store.Dataset, cfg.Store.Table), func() { client.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("openStore: unknown store backend %q", cfg.Store.Backend)
	}
}
