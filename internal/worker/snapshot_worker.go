// Package worker archives KPI history. It consumes ledger lifecycle events
// and, for every ledger replacement, recomputes KPIs from the stored
// document and appends a snapshot row to SQLite.
package worker

import (
	"context"
	"fmt"
	"log/slog"

	"pal/internal/amqp"
	"pal/internal/core"
	"pal/internal/memstore"
	"pal/internal/storage"
)

type SnapshotWorker struct {
	store   *memstore.Store
	history *storage.SQLiteRepository
}

func NewSnapshotWorker(store *memstore.Store, history *storage.SQLiteRepository) *SnapshotWorker {
	return &SnapshotWorker{
		store:   store,
		history: history,
	}
}

// HandleEvent processes one event from the ledger events queue. Events
// other than ledger.updated are acknowledged and skipped.
func (w *SnapshotWorker) HandleEvent(ctx context.Context, msg *amqp.Envelope) error {
	switch msg.Type {
	case amqp.TypeLedgerUpdated:
		return w.archiveSnapshot(ctx, msg)
	case amqp.TypeProjectCreated:
		slog.DebugContext(ctx, "Skipping project event",
			"component", "worker", "event_id", msg.ID)
		return nil
	default:
		slog.WarnContext(ctx, "Unknown event type",
			"component", "worker", "event_id", msg.ID, "event_type", msg.Type)
		return nil
	}
}

func (w *SnapshotWorker) archiveSnapshot(ctx context.Context, msg *amqp.Envelope) error {
	// Recompute from the stored document rather than trusting the event
	// payload: the document is the source of truth and the event may be
	// stale by the time it is consumed.
	var (
		txs     []core.Transaction
		address string
	)
	w.store.View(func(doc *core.Document) {
		txs = doc.Transactions
		address = doc.WalletAddress
	})

	kpis := core.ComputeKPIs(core.CategorizeAndAggregate(txs, address))
	if err := w.history.AppendSnapshot(ctx, kpis, len(txs), address); err != nil {
		return fmt.Errorf("archive kpi snapshot: %w", err)
	}

	slog.InfoContext(ctx, "Ledger event archived",
		"component", "worker",
		"operation", "snapshot",
		"event_id", msg.ID,
		"tx_count", len(txs))
	return nil
}
