package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"dompet/internal/core"
)

// fakeLedger is an in-memory Ledger for handler tests.
type fakeLedger struct {
	txs       []core.Transaction
	recordErr error
	listErr   error
}

func (f *fakeLedger) Record(_ context.Context, amount int64, typ core.TransactionType, category, note string) ([]core.Transaction, error) {
	if f.recordErr != nil {
		return nil, f.recordErr
	}
	tx := core.Transaction{
		ID:       "fake-" + strconv.Itoa(len(f.txs)+1),
		Amount:   amount,
		Type:     typ,
		Category: category,
		Note:     note,
		Date:     time.Now().UnixMilli(),
	}
	if err := tx.Validate(); err != nil {
		return nil, err
	}
	f.txs = append([]core.Transaction{tx}, f.txs...)
	return f.txs, nil
}

func (f *fakeLedger) Delete(_ context.Context, id string) ([]core.Transaction, error) {
	out := f.txs[:0:0]
	for _, tx := range f.txs {
		if tx.ID != id {
			out = append(out, tx)
		}
	}
	f.txs = out
	return f.txs, nil
}

func (f *fakeLedger) ListAll(_ context.Context) ([]core.Transaction, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.txs, nil
}

func postForm(srv *Server, path, body string) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	srv.Handler.ServeHTTP(rr, req)
	return rr
}

func get(srv *Server, path string) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	srv.Handler.ServeHTTP(rr, req)
	return rr
}

func TestIndexAndHealth(t *testing.T) {
	srv := NewServer(":0", &fakeLedger{})

	rr := get(srv, "/")
	if rr.Code != 200 {
		t.Fatalf("index status=%d", rr.Code)
	}
	body := rr.Body.String()
	if !strings.Contains(body, "Dompet Siswa") || !strings.Contains(body, "Total Saldo") {
		t.Fatalf("index body missing expected content")
	}

	for _, path := range []string{"/healthz", "/readyz"} {
		if rr := get(srv, path); rr.Code != 200 {
			t.Fatalf("%s status=%d", path, rr.Code)
		}
	}
}

func TestCreateTransactionValidationAndSuccess(t *testing.T) {
	srv := NewServer(":0", &fakeLedger{})

	// Wrong method
	if rr := get(srv, "/transactions"); rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", rr.Code)
	}

	// Invalid amount
	if rr := postForm(srv, "/transactions", "amount=abc&type=INCOME&category=Makan"); rr.Code != 422 {
		t.Fatalf("expected 422 for bad amount, got %d", rr.Code)
	}

	// Invalid type
	if rr := postForm(srv, "/transactions", "amount=5000&type=TRANSFER&category=Makan"); rr.Code != 422 {
		t.Fatalf("expected 422 for bad type, got %d", rr.Code)
	}

	// Success
	rr := postForm(srv, "/transactions", "amount=50000&type=INCOME&category=Tabungan&note=")
	if rr.Code != 200 {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
	if !strings.Contains(rr.Body.String(), "success") {
		t.Fatalf("expected success fragment, got %s", rr.Body.String())
	}
	if !strings.Contains(rr.Header().Get("HX-Trigger"), "ledger:changed") {
		t.Fatalf("expected ledger:changed trigger")
	}
}

func TestLedgerPartialReflectsMutations(t *testing.T) {
	srv := NewServer(":0", &fakeLedger{})

	rr := get(srv, "/ui/ledger")
	if rr.Code != 200 || !strings.Contains(rr.Body.String(), "Belum ada transaksi") {
		t.Fatalf("empty partial wrong: %d %s", rr.Code, rr.Body.String())
	}

	if rr := postForm(srv, "/transactions", "amount=15000&type=EXPENSE&category=Jajan&note=es+krim"); rr.Code != 200 {
		t.Fatalf("create failed: %d", rr.Code)
	}

	// The snapshot cache must have been dropped by the mutation.
	rr = get(srv, "/ui/ledger")
	if !strings.Contains(rr.Body.String(), "Jajan") || !strings.Contains(rr.Body.String(), "es krim") {
		t.Fatalf("partial missing new transaction: %s", rr.Body.String())
	}
	if !strings.Contains(rr.Body.String(), "Rp -15.000") {
		t.Fatalf("partial missing negative balance: %s", rr.Body.String())
	}
}

func TestDeleteTransaction(t *testing.T) {
	fake := &fakeLedger{}
	srv := NewServer(":0", fake)

	if rr := postForm(srv, "/transactions", "amount=1000&type=INCOME&category=Makan"); rr.Code != 200 {
		t.Fatalf("create failed: %d", rr.Code)
	}
	id := fake.txs[0].ID

	// Missing id
	if rr := postForm(srv, "/transactions/delete", ""); rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing id, got %d", rr.Code)
	}

	// Existing id
	if rr := postForm(srv, "/transactions/delete", "id="+id); rr.Code != 200 {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if len(fake.txs) != 0 {
		t.Fatalf("transaction not deleted")
	}

	// Unknown id is still a success (no-op delete).
	if rr := postForm(srv, "/transactions/delete", "id=nope"); rr.Code != 200 {
		t.Fatalf("expected 200 for unknown id, got %d", rr.Code)
	}
}

func TestExportReport(t *testing.T) {
	fake := &fakeLedger{}
	srv := NewServer(":0", fake)

	// Empty ledger still produces a valid document.
	rr := get(srv, "/laporan")
	if rr.Code != 200 {
		t.Fatalf("laporan status=%d", rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Fatalf("content type = %q", ct)
	}
	if !strings.Contains(rr.Header().Get("Content-Disposition"), "Laporan_Keuangan_") {
		t.Fatalf("disposition = %q", rr.Header().Get("Content-Disposition"))
	}
	if !strings.HasPrefix(rr.Body.String(), "%PDF") {
		t.Fatalf("body does not look like a PDF")
	}

	// Export must not mutate the ledger.
	if rr := postForm(srv, "/transactions", "amount=1000&type=INCOME&category=Makan"); rr.Code != 200 {
		t.Fatalf("create failed: %d", rr.Code)
	}
	before := len(fake.txs)
	if rr := get(srv, "/laporan"); rr.Code != 200 {
		t.Fatalf("laporan status=%d", rr.Code)
	}
	if len(fake.txs) != before {
		t.Fatalf("export mutated the ledger")
	}
}

func TestCreateTransactionStoreFailure(t *testing.T) {
	srv := NewServer(":0", &fakeLedger{recordErr: errors.New("disk full")})

	rr := postForm(srv, "/transactions", "amount=5000&type=INCOME&category=Makan")
	if rr.Code != 422 {
		t.Fatalf("expected 422 when the store fails, got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "Gagal menyimpan") {
		t.Fatalf("expected persistence error fragment, got %s", rr.Body.String())
	}
	if rr.Header().Get("HX-Trigger") != "" {
		t.Fatalf("failed create must not announce a ledger change")
	}
}

func TestWriteRateLimitEnforced(t *testing.T) {
	srv := NewServer(":0", &fakeLedger{})
	defer srv.rateLimiter.stop()

	var limited bool
	for i := 0; i < 70; i++ {
		rr := postForm(srv, "/transactions", "amount=1000&type=INCOME&category=Makan")
		if rr.Code == http.StatusTooManyRequests {
			limited = true
			break
		}
	}
	if !limited {
		t.Fatalf("expected a 429 once the write budget is spent")
	}
	if srv.rateLimiter.deniedCount() == 0 {
		t.Fatalf("denied counter not incremented")
	}

	// Reads keep flowing for the same client.
	if rr := get(srv, "/ui/ledger"); rr.Code != 200 {
		t.Fatalf("read was limited: %d", rr.Code)
	}
}

func TestLedgerLoadErrorReported(t *testing.T) {
	srv := NewServer(":0", &fakeLedger{listErr: errors.New("disk on fire")})

	rr := get(srv, "/ui/ledger")
	if rr.Code != 200 || !strings.Contains(rr.Body.String(), "Gagal memuat") {
		t.Fatalf("expected error placeholder, got %d %s", rr.Code, rr.Body.String())
	}

	if rr := get(srv, "/laporan"); rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 for report with broken store, got %d", rr.Code)
	}
}
