package http

import (
	"html/template"
	"log/slog"
	"net/http"
	"strings"

	"dompet/internal/core"
	applog "dompet/internal/log"
)

func (s *Server) handleCreateTransaction(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		slog.ErrorContext(r.Context(), "Parse form error",
			applog.FieldError, err,
			applog.FieldMethod, r.Method,
			applog.FieldPath, r.URL.Path)
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`<div class="error">Format permintaan tidak valid</div>`))
		return
	}

	amountStr := strings.TrimSpace(r.Form.Get("amount"))
	typ := core.TransactionType(strings.TrimSpace(r.Form.Get("type")))
	category := sanitizeInput(r.Form.Get("category"))
	note := sanitizeInput(r.Form.Get("note"))

	amount, err := core.ParseAmount(amountStr)
	if err != nil {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`<div class="error">Jumlah tidak valid</div>`))
		return
	}
	if err := typ.Validate(); err != nil {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`<div class="error">Tipe transaksi tidak valid</div>`))
		return
	}

	updated, err := s.ledger.Record(r.Context(), amount, typ, category, note)
	if err != nil {
		slog.ErrorContext(r.Context(), "Failed to record transaction",
			applog.FieldError, err,
			applog.FieldTxType, string(typ),
			applog.FieldTxCategory, category,
			applog.FieldTxAmount, amount,
			applog.FieldComponent, applog.ComponentHTTP,
			applog.FieldOperation, applog.OpCreate)
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`<div class="error">Gagal menyimpan: ` + template.HTMLEscapeString(err.Error()) + `</div>`))
		return
	}

	s.invalidateLedger()

	slog.InfoContext(r.Context(), "Transaction created",
		applog.FieldTxType, string(typ),
		applog.FieldTxCategory, category,
		applog.FieldTxAmount, amount,
		applog.FieldLedgerCount, len(updated),
		applog.FieldComponent, applog.ComponentHTTP,
		applog.FieldOperation, applog.OpCreate)

	w.Header().Set("HX-Trigger", `{"ledger:changed": {}, "form:reset": {}}`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`<div class="success">Transaksi tersimpan: ` +
		template.HTMLEscapeString(category) +
		` — ` + template.HTMLEscapeString(core.FormatRupiah(amount)) + `</div>`))
}

func (s *Server) handleDeleteTransaction(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete && r.Method != http.MethodPost {
		w.Header().Set("Allow", "DELETE, POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`<div class="error">Format permintaan tidak valid</div>`))
		return
	}

	id := strings.TrimSpace(r.Form.Get("id"))
	if id == "" {
		id = strings.TrimSpace(r.URL.Query().Get("id"))
	}
	if id == "" {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`<div class="error">ID transaksi tidak ada</div>`))
		return
	}

	// Deleting an unknown id is a no-op; the handler reports success either way.
	if _, err := s.ledger.Delete(r.Context(), id); err != nil {
		slog.ErrorContext(r.Context(), "Failed to delete transaction",
			applog.FieldError, err,
			applog.FieldTxID, id,
			applog.FieldComponent, applog.ComponentHTTP,
			applog.FieldOperation, applog.OpDelete)
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`<div class="error">Gagal menghapus transaksi</div>`))
		return
	}

	s.invalidateLedger()

	slog.InfoContext(r.Context(), "Transaction deleted",
		applog.FieldTxID, id,
		applog.FieldComponent, applog.ComponentHTTP,
		applog.FieldOperation, applog.OpDelete)

	w.Header().Set("HX-Trigger", `{"ledger:changed": {}}`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`<div class="success">Transaksi dihapus</div>`))
}
