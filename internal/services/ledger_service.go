package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"dompet/internal/core"
	applog "dompet/internal/log"
	"dompet/internal/storage"
)

// LedgerService orchestrates ledger operations: it validates input,
// assigns identity and timestamps, and delegates persistence to the store.
type LedgerService struct {
	store *storage.LedgerStore
}

func NewLedgerService(store *storage.LedgerStore) *LedgerService {
	return &LedgerService{store: store}
}

// Record creates a transaction from user input and persists it.
// It returns the full updated ledger, newest first.
func (s *LedgerService) Record(ctx context.Context, amount int64, typ core.TransactionType, category, note string) ([]core.Transaction, error) {
	tx := core.Transaction{
		ID:       uuid.NewString(),
		Amount:   amount,
		Type:     typ,
		Category: category,
		Note:     note,
		Date:     time.Now().UnixMilli(),
	}
	if err := tx.Validate(); err != nil {
		return nil, fmt.Errorf("validate transaction: %w", err)
	}

	updated, err := s.store.Add(ctx, tx)
	if err != nil {
		return nil, fmt.Errorf("record transaction: %w", err)
	}

	slog.InfoContext(ctx, "Transaction recorded",
		applog.FieldTxID, tx.ID,
		applog.FieldTxType, string(tx.Type),
		applog.FieldTxCategory, tx.Category,
		applog.FieldTxAmount, tx.Amount,
		applog.FieldComponent, applog.ComponentLedger,
		applog.FieldOperation, applog.OpCreate)

	return updated, nil
}

// Delete removes the transaction with the given id. Unknown ids are a
// no-op; the returned list is the persisted state either way.
func (s *LedgerService) Delete(ctx context.Context, id string) ([]core.Transaction, error) {
	updated, err := s.store.Delete(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("delete transaction: %w", err)
	}
	return updated, nil
}

// ListAll returns the ledger, newest first.
func (s *LedgerService) ListAll(ctx context.Context) ([]core.Transaction, error) {
	return s.store.ListAll(ctx)
}

// Balance returns the current net balance of the whole ledger.
func (s *LedgerService) Balance(ctx context.Context) (int64, error) {
	txs, err := s.store.ListAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("load ledger for balance: %w", err)
	}
	return core.CalculateBalance(txs), nil
}

func (s *LedgerService) Close() error {
	if s.store != nil {
		if err := s.store.Close(); err != nil {
			return fmt.Errorf("close ledger service: %w", err)
		}
	}
	return nil
}
