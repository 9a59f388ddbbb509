package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"dompet/internal/core"
	applog "dompet/internal/log"
)

// LedgerKey is the single key the whole ledger is stored under.
const LedgerKey = "dompet_siswa_data_v1"

// LedgerStore owns the durable transaction list. Every mutation is a full
// read-modify-write of the blob under LedgerKey; the slice a call returns
// is exactly what was persisted. Multi-process use of the same database
// file is last-writer-wins; the store only serializes its own callers.
type LedgerStore struct {
	mu  sync.Mutex
	kv  KV
	key string
}

func NewLedgerStore(kv KV) *LedgerStore {
	return &LedgerStore{kv: kv, key: LedgerKey}
}

// ListAll returns every transaction, newest first. A missing blob reads as
// an empty ledger, and so does a corrupt one: availability is preferred
// over surfacing a parse failure the user can do nothing about.
func (s *LedgerStore) ListAll(ctx context.Context) ([]core.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(ctx)
}

// Add prepends tx, persists the full resulting list, and returns it.
// On persist failure nothing is considered written and the error is
// surfaced to the caller.
func (s *LedgerStore) Add(ctx context.Context, tx core.Transaction) ([]core.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	updated := make([]core.Transaction, 0, len(current)+1)
	updated = append(updated, tx)
	updated = append(updated, current...)

	if err := s.persist(ctx, updated); err != nil {
		return nil, fmt.Errorf("add transaction: %w", err)
	}

	slog.InfoContext(ctx, "Transaction saved",
		applog.FieldTxID, tx.ID,
		applog.FieldTxType, string(tx.Type),
		applog.FieldTxCategory, tx.Category,
		applog.FieldTxAmount, tx.Amount,
		applog.FieldLedgerCount, len(updated),
		applog.FieldComponent, applog.ComponentStorage)

	return updated, nil
}

// Delete removes the transaction matching id, if any, and returns the
// persisted result. Deleting an unknown id is a no-op, not an error.
func (s *LedgerStore) Delete(ctx context.Context, id string) ([]core.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	updated := make([]core.Transaction, 0, len(current))
	removed := false
	for _, tx := range current {
		if !removed && tx.ID == id {
			removed = true
			continue
		}
		updated = append(updated, tx)
	}

	if !removed {
		return updated, nil
	}

	if err := s.persist(ctx, updated); err != nil {
		return nil, fmt.Errorf("delete transaction: %w", err)
	}

	slog.InfoContext(ctx, "Transaction deleted",
		applog.FieldTxID, id,
		applog.FieldLedgerCount, len(updated),
		applog.FieldComponent, applog.ComponentStorage)

	return updated, nil
}

func (s *LedgerStore) Close() error {
	return s.kv.Close()
}

func (s *LedgerStore) load(ctx context.Context) ([]core.Transaction, error) {
	blob, err := s.kv.Get(ctx, s.key)
	if errors.Is(err, ErrKeyNotFound) {
		return []core.Transaction{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read ledger: %w", err)
	}

	var txs []core.Transaction
	if err := json.Unmarshal(blob, &txs); err != nil {
		slog.WarnContext(ctx, "Ledger blob is corrupt, treating as empty",
			"key", s.key,
			applog.FieldError, err,
			"bytes", len(blob),
			applog.FieldComponent, applog.ComponentStorage)
		return []core.Transaction{}, nil
	}
	if txs == nil {
		txs = []core.Transaction{}
	}
	return txs, nil
}

func (s *LedgerStore) persist(ctx context.Context, txs []core.Transaction) error {
	blob, err := json.Marshal(txs)
	if err != nil {
		return fmt.Errorf("encode ledger: %w", err)
	}
	if err := s.kv.Put(ctx, s.key, blob); err != nil {
		return fmt.Errorf("write ledger: %w", err)
	}
	return nil
}
