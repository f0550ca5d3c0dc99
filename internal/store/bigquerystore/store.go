// Package bigquerystore persists confirmed transactions in a BigQuery table.
package bigquerystore

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"cloud.google.com/go/bigquery"
	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
	"google.golang.org/api/iterator"

	"github.com/cheizdavi-dotcom/Entregavel-Planilha-sub000/internal/model"
	"github.com/cheizdavi-dotcom/Entregavel-Planilha-sub000/internal/store"
)

// amountScale is the decimal scale restored when reading NUMERIC amounts.
const amountScale = 2

// Row is the BigQuery representation of one confirmed transaction.
type Row struct {
	TransactionID   string     `bigquery:"transaction_id"` // REQUIRED
	UserID          string     `bigquery:"user_id"`        // REQUIRED
	Type            string     `bigquery:"type"`           // "income" or "expense"
	Amount          *big.Rat   `bigquery:"amount"`         // REQUIRED NUMERIC, non-negative
	Description     string     `bigquery:"description"`
	Category        string     `bigquery:"category"`
	PaymentMethod   string     `bigquery:"payment_method"`
	TransactionDate civil.Date `bigquery:"transaction_date"`
	CreatedTS       time.Time  `bigquery:"created_ts"`
}

// Store is a BigQuery-backed TransactionStore.
type Store struct {
	client  *bigquery.Client
	dataset string
	table   string
}

// New creates a store over an existing BigQuery client.
func New(client *bigquery.Client, dataset, table string) *Store {
	return &Store{client: client, dataset: dataset, table: table}
}

// Append streams the transactions into the table with the inserter.
func (s *Store) Append(ctx context.Context, txs []model.Transaction) error {
	if len(txs) == 0 {
		return nil
	}

	rows := make([]*Row, len(txs))
	for i, tx := range txs {
		rows[i] = rowFromTransaction(tx)
	}

	inserter := s.client.Dataset(s.dataset).Table(s.table).Inserter()
	if err := inserter.Put(ctx, rows); err != nil {
		return fmt.Errorf("Append: inserting rows: %w", err)
	}
	return nil
}

// ListByUser queries the user's transactions ordered by date.
func (s *Store) ListByUser(ctx context.Context, userID string) ([]model.Transaction, error) {
	q := s.client.Query(fmt.Sprintf(`
		SELECT
			transaction_id,
			user_id,
			type,
			amount,
			description,
			category,
			payment_method,
			transaction_date,
			created_ts
		FROM %s.%s
		WHERE user_id = @user_id
		ORDER BY transaction_date, created_ts
	`, s.dataset, s.table))
	q.Parameters = []bigquery.QueryParameter{
		{Name: "user_id", Value: userID},
	}

	it, err := q.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("ListByUser: running query: %w", err)
	}

	var result []model.Transaction
	for {
		var row Row
		err := it.Next(&row)
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("ListByUser: reading row: %w", err)
		}
		result = append(result, transactionFromRow(&row))
	}
	return result, nil
}

func rowFromTransaction(tx model.Transaction) *Row {
	return &Row{
		TransactionID:   tx.ID,
		UserID:          tx.UserID,
		Type:            string(tx.Type),
		Amount:          tx.Amount.Rat(),
		Description:     tx.Description,
		Category:        tx.Category,
		PaymentMethod:   tx.PaymentMethod,
		TransactionDate: civil.DateOf(tx.Date),
		CreatedTS:       time.Now(),
	}
}

func transactionFromRow(row *Row) model.Transaction {
	amount := decimal.Zero
	if row.Amount != nil {
		amount = decimal.NewFromBigRat(row.Amount, amountScale)
	}
	return model.Transaction{
		ID:            row.TransactionID,
		UserID:        row.UserID,
		Type:          model.Direction(row.Type),
		Amount:        amount,
		Description:   row.Description,
		Category:      row.Category,
		PaymentMethod: row.PaymentMethod,
		Date:          row.TransactionDate.In(time.UTC),
	}
}

// Ensure Store implements TransactionStore.
var _ store.TransactionStore = (*Store)(nil)
