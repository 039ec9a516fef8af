package memstore

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"pal/internal/core"
)

func TestViewMissingFileYieldsEmptyShape(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "memory.json"))
	s.View(func(doc *core.Document) {
		if doc.Projects == nil || doc.Transactions == nil || doc.Notes == nil {
			t.Fatalf("empty document has nil collections: %+v", doc)
		}
		if len(doc.Projects) != 0 || len(doc.Transactions) != 0 {
			t.Fatalf("missing file should load empty, got %+v", doc)
		}
	})
}

func TestViewCorruptFileYieldsEmptyShape(t *testing.T) {
	path := filepath.Join(t.TempDir(), "memory.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	New(path).View(func(doc *core.Document) {
		if len(doc.Projects) != 0 || len(doc.Transactions) != 0 {
			t.Fatalf("corrupt file should load empty, got %+v", doc)
		}
	})
}

func TestUpdatePersistsAcrossLoads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "memory.json")
	s := New(path)

	s.Update(func(doc *core.Document) {
		doc.Projects = append(doc.Projects, core.Project{Name: "Acme Site", Status: "active"})
		doc.WalletAddress = "0xABC"
	})

	// A separate store instance sees the persisted state.
	New(path).View(func(doc *core.Document) {
		if len(doc.Projects) != 1 || doc.Projects[0].Name != "Acme Site" {
			t.Fatalf("projects did not round-trip: %+v", doc.Projects)
		}
		if doc.WalletAddress != "0xABC" {
			t.Fatalf("wallet address = %q", doc.WalletAddress)
		}
	})
}

func TestSavedDocumentKeepsFullShape(t *testing.T) {
	path := filepath.Join(t.TempDir(), "memory.json")
	New(path).Update(func(doc *core.Document) {})

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{"projects", "transactions", "notes"} {
		v, ok := raw[key]
		if !ok {
			t.Fatalf("persisted document missing %q key", key)
		}
		if string(v) != "[]" {
			t.Fatalf("persisted %q = %s, want []", key, v)
		}
	}
}

func TestTransactionLedgerRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "memory.json")
	s := New(path)

	txs := []core.Transaction{
		{
			TimeStamp: &core.UnixTime{Secs: 1700000000, Valid: true},
			Value:     json.RawMessage(`"2000000000000000000"`),
			To:        "0xme",
			From:      "0xother",
		},
	}
	s.Update(func(doc *core.Document) { doc.Transactions = txs })

	New(path).View(func(doc *core.Document) {
		if len(doc.Transactions) != 1 {
			t.Fatalf("ledger length = %d", len(doc.Transactions))
		}
		got := doc.Transactions[0]
		if got.TimeStamp == nil || got.TimeStamp.Secs != 1700000000 {
			t.Fatalf("timestamp did not round-trip: %+v", got.TimeStamp)
		}
		if core.MajorUnits(got.Value) != 2 {
			t.Fatalf("value did not round-trip: %s", got.Value)
		}
	})
}
