// Package report renders the downloadable PDF summary of the ledger.
// Generation is read-only with respect to stored data: callers hand in a
// snapshot of the transaction list and a precomputed balance.
package report

import (
	"fmt"
	"io"
	"time"

	"github.com/go-pdf/fpdf"

	"dompet/internal/core"
)

const (
	marginLeft = 14.0
	rowHeight  = 8.0
	tableTop   = 50.0
)

// Column layout for the transaction table (A4 portrait, mm).
var columns = []struct {
	title string
	width float64
	align string
}{
	{"Tanggal", 28, "L"},
	{"Kategori", 32, "L"},
	{"Catatan", 62, "L"},
	{"Tipe", 30, "L"},
	{"Jumlah", 30, "R"},
}

// Filename returns the download name for a report generated at t,
// e.g. "Laporan_Keuangan_2025-08-29.pdf".
func Filename(t time.Time) string {
	return "Laporan_Keuangan_" + t.Format("2006-01-02") + ".pdf"
}

// Generate writes the PDF report to w: a title, the generation date, the
// balance line, and one table row per transaction in the order supplied.
// An empty ledger produces the header and an empty table body.
func Generate(w io.Writer, txs []core.Transaction, balance int64) error {
	return generateAt(w, txs, balance, time.Now())
}

func generateAt(w io.Writer, txs []core.Transaction, balance int64, now time.Time) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 20)
	pdf.SetXY(marginLeft, 14)
	pdf.Cell(0, 10, "Laporan Keuangan Siswa")

	pdf.SetFont("Helvetica", "", 11)
	pdf.SetTextColor(100, 100, 100)
	pdf.SetXY(marginLeft, 26)
	pdf.Cell(0, 6, tr("Dibuat pada: "+core.FormatLongDate(now)))

	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(marginLeft, 35)
	pdf.Cell(0, 8, tr("Sisa Saldo: "+core.FormatRupiah(balance)))

	pdf.SetXY(marginLeft, tableTop)
	writeHeader(pdf)

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(0, 0, 0)
	_, pageHeight := pdf.GetPageSize()
	_, _, _, bottomMargin := pdf.GetMargins()

	for _, tx := range txs {
		if pdf.GetY()+rowHeight > pageHeight-bottomMargin-10 {
			pdf.AddPage()
			pdf.SetX(marginLeft)
			writeHeader(pdf)
			pdf.SetFont("Helvetica", "", 10)
			pdf.SetTextColor(0, 0, 0)
		}

		note := tx.Note
		if note == "" {
			note = "-"
		}
		cells := []string{
			core.FormatShortDate(tx.Time()),
			tx.Category,
			note,
			tx.Type.Label(),
			core.FormatRupiah(tx.Amount),
		}
		pdf.SetX(marginLeft)
		for i, col := range columns {
			pdf.CellFormat(col.width, rowHeight, tr(cells[i]), "1", 0, col.align, false, 0, "")
		}
		pdf.Ln(rowHeight)
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("render report: %w", err)
	}
	return nil
}

func writeHeader(pdf *fpdf.Fpdf) {
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(0, 122, 255)
	pdf.SetTextColor(255, 255, 255)
	for _, col := range columns {
		pdf.CellFormat(col.width, rowHeight, col.title, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(rowHeight)
}
