package http

import (
	"bytes"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"dompet/internal/core"
	applog "dompet/internal/log"
	"dompet/internal/report"
)

// handleExportReport streams the PDF summary of the whole ledger. The
// operation is read-only: a failed export leaves stored data untouched.
func (s *Server) handleExportReport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	txs, err := s.getLedger(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Report ledger load error",
			applog.FieldError, err,
			applog.FieldComponent, applog.ComponentReport,
			applog.FieldOperation, applog.OpExport)
		http.Error(w, "Gagal memuat transaksi", http.StatusInternalServerError)
		return
	}

	balance := core.CalculateBalance(txs)

	// Render into memory first so a generation failure never results in a
	// half-written download.
	var buf bytes.Buffer
	if err := report.Generate(&buf, txs, balance); err != nil {
		slog.ErrorContext(r.Context(), "Report generation failed",
			applog.FieldError, err,
			applog.FieldLedgerCount, len(txs),
			applog.FieldComponent, applog.ComponentReport,
			applog.FieldOperation, applog.OpExport)
		http.Error(w, "Gagal membuat laporan", http.StatusInternalServerError)
		return
	}

	slog.InfoContext(r.Context(), "Report generated",
		applog.FieldLedgerCount, len(txs),
		"balance", balance,
		"bytes", buf.Len(),
		applog.FieldComponent, applog.ComponentReport,
		applog.FieldOperation, applog.OpExport)

	filename := report.Filename(time.Now())
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	_, _ = w.Write(buf.Bytes())
}
