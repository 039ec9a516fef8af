// Package services orchestrates each request's unit of work: load the
// memory document, run the pure analytics or dispatch logic, persist
// mutations, and announce them on the event bus.
package services

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"pal/internal/advisor"
	"pal/internal/amqp"
	"pal/internal/core"
	"pal/internal/memstore"
)

// AdvisorService wires the memory store, the analytics core, and the
// optional AMQP event publisher. Event publishing never fails a request.
type AdvisorService struct {
	store  *memstore.Store
	events *amqp.Client
}

func NewAdvisorService(store *memstore.Store, events *amqp.Client) *AdvisorService {
	return &AdvisorService{
		store:  store,
		events: events,
	}
}

// Chat answers a free-text message. An empty message yields the
// time-of-day greeting and touches last_seen; anything else runs the
// intent dispatcher against the stored document.
func (s *AdvisorService) Chat(ctx context.Context, message string) string {
	message = strings.TrimSpace(message)
	if message == "" {
		s.store.Update(func(doc *core.Document) {
			doc.LastSeen = time.Now().UTC().Format(time.RFC3339)
		})
		return advisor.Greeting(time.Now())
	}

	var reply string
	s.store.View(func(doc *core.Document) {
		reply = advisor.Respond(message, doc)
	})

	slog.DebugContext(ctx, "Chat message dispatched",
		"component", "advisor", "operation", "chat")
	return reply
}

// AddProject appends a project to the stored list. Status defaults to
// "active" and the creation timestamp is stamped here.
func (s *AdvisorService) AddProject(ctx context.Context, p core.Project) core.Project {
	if p.Status == "" {
		p.Status = "active"
	}
	p.Created = time.Now().UTC().Format(time.RFC3339)

	s.store.Update(func(doc *core.Document) {
		doc.Projects = append(doc.Projects, p)
	})

	slog.InfoContext(ctx, "Project saved",
		"component", "memory", "operation", "append", "project_name", p.Name)
	s.publishProjectCreated(ctx, p.Name)
	return p
}

// Projects returns the stored projects in storage order.
func (s *AdvisorService) Projects(ctx context.Context) []core.Project {
	var projects []core.Project
	s.store.View(func(doc *core.Document) {
		projects = append([]core.Project{}, doc.Projects...)
	})
	return projects
}

// ReplaceLedger replaces the stored transaction ledger and reference
// address wholesale, then returns KPIs computed over the new ledger.
func (s *AdvisorService) ReplaceLedger(ctx context.Context, txs []core.Transaction, address string) (int, core.KPISnapshot) {
	if txs == nil {
		txs = []core.Transaction{}
	}
	if address == "" {
		address = core.DefaultAddress
	}

	s.store.Update(func(doc *core.Document) {
		doc.Transactions = txs
		doc.WalletAddress = address
	})

	kpis := core.ComputeKPIs(core.CategorizeAndAggregate(txs, address))

	slog.InfoContext(ctx, "Ledger replaced",
		"component", "ledger", "operation", "replace",
		"tx_count", len(txs), "address", address)
	s.publishLedgerUpdated(ctx, len(txs), address)

	return len(txs), kpis
}

// Ledger returns the stored transactions together with KPIs computed
// against the stored reference address.
func (s *AdvisorService) Ledger(ctx context.Context) ([]core.Transaction, core.KPISnapshot) {
	var (
		txs     []core.Transaction
		address string
	)
	s.store.View(func(doc *core.Document) {
		txs = append([]core.Transaction{}, doc.Transactions...)
		address = doc.WalletAddress
	})
	kpis := core.ComputeKPIs(core.CategorizeAndAggregate(txs, address))
	return txs, kpis
}

func (s *AdvisorService) publishLedgerUpdated(ctx context.Context, count int, address string) {
	if s.events == nil {
		return
	}
	if err := s.events.PublishLedgerUpdated(ctx, count, address); err != nil {
		// The ledger is already saved; the event is advisory.
		slog.ErrorContext(ctx, "Failed to publish ledger event",
			"component", "amqp", "error", err, "tx_count", count)
	}
}

func (s *AdvisorService) publishProjectCreated(ctx context.Context, name string) {
	if s.events == nil {
		return
	}
	if err := s.events.PublishProjectCreated(ctx, name); err != nil {
		slog.ErrorContext(ctx, "Failed to publish project event",
			"component", "amqp", "error", err, "project_name", name)
	}
}

// MemoryPath reports where the memory document is persisted.
func (s *AdvisorService) MemoryPath() string {
	return s.store.Path()
}

// Close releases the event publisher connection, if any.
func (s *AdvisorService) Close() error {
	if s.events != nil {
		return s.events.Close()
	}
	return nil
}
