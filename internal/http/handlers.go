package http

import (
	"context"
	"log/slog"
	"net/http"

	"dompet/internal/core"
	applog "dompet/internal/log"
)

// View models handed to the HTML templates.
type (
	txRow struct {
		ID       string
		Icon     string
		Color    string
		Category string
		Note     string
		Amount   string
		Income   bool
	}

	dayView struct {
		Label string
		Items []txRow
	}

	ledgerView struct {
		Balance  string
		Negative bool
		Empty    bool
		Days     []dayView
	}
)

// buildLedgerView turns the raw snapshot into the grouped display model.
func buildLedgerView(txs []core.Transaction) ledgerView {
	balance := core.CalculateBalance(txs)
	view := ledgerView{
		Balance:  core.FormatRupiah(balance),
		Negative: balance < 0,
		Empty:    len(txs) == 0,
	}

	for _, group := range core.GroupByDay(txs) {
		day := dayView{Label: group.Label}
		for _, tx := range group.Transactions {
			cat := core.ResolveCategory(tx.Category)
			note := tx.Note
			if note == "" {
				note = tx.Type.Label()
			}
			day.Items = append(day.Items, txRow{
				ID:       tx.ID,
				Icon:     cat.Icon,
				Color:    cat.Color,
				Category: tx.Category,
				Note:     note,
				Amount:   core.FormatRupiah(tx.Amount),
				Income:   tx.Type == core.Income,
			})
		}
		view.Days = append(view.Days, day)
	}
	return view
}

func (s *Server) ledgerViewFromStore(ctx context.Context) (ledgerView, error) {
	txs, err := s.getLedger(ctx)
	if err != nil {
		return ledgerView{}, err
	}
	return buildLedgerView(txs), nil
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if s.templates == nil {
		slog.ErrorContext(r.Context(), "Templates not loaded", applog.FieldPath, r.URL.Path)
		http.Error(w, "templates not loaded", http.StatusInternalServerError)
		return
	}

	view, err := s.ledgerViewFromStore(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Ledger load error", applog.FieldError, err)
		// Render the page anyway; the ledger partial reports its own errors.
		view = ledgerView{Balance: core.FormatRupiah(0), Empty: true}
	}

	data := struct {
		AppName    string
		Categories []core.Category
		Ledger     ledgerView
	}{
		AppName:    "Dompet Siswa",
		Categories: core.Categories,
		Ledger:     view,
	}

	if err := s.templates.ExecuteTemplate(w, "index.html", data); err != nil {
		slog.ErrorContext(r.Context(), "Index template execution failed", applog.FieldError, err, "template", "index.html")
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// handleLedgerPartial renders the grouped transaction list partial.
func (s *Server) handleLedgerPartial(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	view, err := s.ledgerViewFromStore(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Ledger partial error", applog.FieldError, err)
		_, _ = w.Write([]byte(`<section id="ledger"><div class="placeholder">Gagal memuat transaksi</div></section>`))
		return
	}

	if s.templates == nil {
		_, _ = w.Write([]byte(`<section id="ledger"><div class="placeholder">Saldo: ` + view.Balance + `</div></section>`))
		return
	}

	if err := s.templates.ExecuteTemplate(w, "ledger.html", view); err != nil {
		slog.ErrorContext(r.Context(), "Template execution error", applog.FieldError, err, "template", "ledger.html")
		_, _ = w.Write([]byte(`<section id="ledger"><div class="placeholder">Gagal menampilkan transaksi</div></section>`))
	}
}
