// Command laporan exports the PDF financial report straight from the
// local database, without going through the web UI.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"dompet/internal/config"
	"dompet/internal/core"
	applog "dompet/internal/log"
	"dompet/internal/report"
	"dompet/internal/storage"
)

func main() {
	_ = godotenv.Load()

	logger := applog.New(applog.Config{
		Level:     slog.LevelInfo,
		Component: applog.ComponentReport,
	})
	applog.SetDefault(logger)

	cfg := config.Load()
	dbPath := flag.String("db", cfg.SQLiteDBPath, "path to the SQLite database")
	outPath := flag.String("out", report.Filename(time.Now()), "output PDF path")
	flag.Parse()

	kv, err := storage.NewSQLiteKV(*dbPath)
	if err != nil {
		logger.Error("Failed to open database", "error", err, "path", *dbPath)
		os.Exit(1)
	}
	store := storage.NewLedgerStore(kv)
	defer store.Close()

	ctx := context.Background()
	txs, err := store.ListAll(ctx)
	if err != nil {
		logger.Error("Failed to load ledger", "error", err)
		os.Exit(1)
	}
	balance := core.CalculateBalance(txs)

	out, err := os.Create(*outPath)
	if err != nil {
		logger.Error("Failed to create output file", "error", err, "path", *outPath)
		os.Exit(1)
	}
	defer out.Close()

	if err := report.Generate(out, txs, balance); err != nil {
		logger.Error("Failed to generate report", "error", err)
		os.Exit(1)
	}

	logger.Info("Report written",
		"path", *outPath,
		"transactions", len(txs),
		"balance", balance)
}
