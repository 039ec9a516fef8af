package advisor

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"testing"
	"time"

	"pal/internal/core"
)

func ledgerDoc(txs ...core.Transaction) *core.Document {
	doc := core.NewDocument()
	doc.Transactions = txs
	return doc
}

func sentinelTx(day time.Time, major int64, income bool) core.Transaction {
	to, from := "0xother", core.DefaultAddress
	if income {
		to, from = core.DefaultAddress, "0xother"
	}
	ts := day.Unix()
	return core.Transaction{
		TimeStamp: &core.UnixTime{Secs: ts, Valid: true},
		Value:     json.RawMessage(fmt.Sprintf("%q", fmt.Sprintf("%d000000000000000000", major))),
		To:        to,
		From:      from,
	}
}

func TestRelevanceGate(t *testing.T) {
	doc := ledgerDoc(sentinelTx(time.Date(2024, 3, 4, 0, 0, 0, 0, time.Local), 100, true))
	got := Respond("what's the weather", doc)
	if !strings.Contains(got, "focused on your business") {
		t.Fatalf("off-topic message got %q", got)
	}
}

func TestSalesSummaryOverflowedLedger(t *testing.T) {
	// Two values that are finite alone but sum past float64's range in one
	// weekly bucket. The reply must still render.
	huge := json.RawMessage(`"9` + strings.Repeat("0", 325) + `"`)
	day := time.Date(2024, 3, 4, 0, 0, 0, 0, time.Local)
	mk := func() core.Transaction {
		return core.Transaction{
			TimeStamp: &core.UnixTime{Secs: day.Unix(), Valid: true},
			Value:     huge,
			To:        core.DefaultAddress,
			From:      "0xother",
		}
	}
	got := Respond("how are my sales?", ledgerDoc(mk(), mk()))
	if !strings.Contains(got, "Weekly income $0.00") {
		t.Fatalf("overflowed ledger reply = %q", got)
	}
}

func TestRevenueOutranksExpense(t *testing.T) {
	got := Respond("show me revenue and expense numbers", core.NewDocument())
	if !strings.Contains(got, "Here’s your latest summary") {
		t.Fatalf("revenue+expense message should hit the revenue rule, got %q", got)
	}
}

func TestSalesSummaryFormatting(t *testing.T) {
	day := time.Date(2024, 3, 4, 0, 0, 0, 0, time.Local) // Monday
	doc := ledgerDoc(
		sentinelTx(day, 1250, true),
		sentinelTx(day, 300, false),
	)
	got := Respond("how are my sales?", doc)
	for _, want := range []string{"Weekly income $1,250.00", "weekly spending $300.00", "monthly net $950.00", "Say ‘what-if’"} {
		if !strings.Contains(got, want) {
			t.Errorf("summary %q missing %q", got, want)
		}
	}
}

func TestExpenseReply(t *testing.T) {
	day := time.Date(2024, 3, 4, 0, 0, 0, 0, time.Local)
	got := Respond("where do my expenses go?", ledgerDoc(sentinelTx(day, 42, false)))
	if !strings.Contains(got, "Current weekly spending is $42.00") {
		t.Fatalf("expense reply = %q", got)
	}
}

func TestProfitReply(t *testing.T) {
	day := time.Date(2024, 3, 4, 0, 0, 0, 0, time.Local)
	got := Respond("what's my profit margin", ledgerDoc(sentinelTx(day, 10, true)))
	if !strings.Contains(got, "Monthly net sits at $10.00") {
		t.Fatalf("profit reply = %q", got)
	}
}

func TestProjectsReply(t *testing.T) {
	t.Run("no projects", func(t *testing.T) {
		got := Respond("any project updates?", core.NewDocument())
		if !strings.Contains(got, "don’t have saved projects yet") {
			t.Fatalf("empty projects reply = %q", got)
		}
	})

	t.Run("lists names in storage order", func(t *testing.T) {
		doc := core.NewDocument()
		doc.Projects = []core.Project{{Name: "Acme Site"}, {Name: "Mobile App"}}
		got := Respond("any project updates?", doc)
		if !strings.Contains(got, "Active projects: Acme Site, Mobile App") {
			t.Fatalf("projects reply = %q", got)
		}
		if !strings.Contains(got, "‘plan Acme Site’") {
			t.Fatalf("projects reply missing plan suggestion: %q", got)
		}
	})
}

func TestWhatIfReply(t *testing.T) {
	day := time.Date(2024, 3, 4, 0, 0, 0, 0, time.Local)
	doc := ledgerDoc(sentinelTx(day, 1000, true), sentinelTx(day, 500, false))
	got := Respond("run a what-if on my business", doc)

	if !strings.HasPrefix(got, "Scenario options:\n") {
		t.Fatalf("what-if reply = %q", got)
	}
	lines := strings.Split(got, "\n")[1:]
	if len(lines) != 3 {
		t.Fatalf("expected 3 scenario lines, got %d", len(lines))
	}
	if lines[0] != "- Increase pricing by 5%: impact ≈ $200.00. Raises revenue assuming demand holds; review price elasticity. Next: Pilot price increase on top SKUs for 2 weeks." {
		t.Fatalf("first scenario line = %q", lines[0])
	}
}

func TestStrategyAndFallback(t *testing.T) {
	if got := Respond("any business tips?", core.NewDocument()); !strings.Contains(got, "Top priorities") {
		t.Errorf("tips reply = %q", got)
	}
	if got := Respond("my business is nice", core.NewDocument()); !strings.Contains(got, "Tell me about your sales") {
		t.Errorf("fallback reply = %q", got)
	}
}

func TestGreeting(t *testing.T) {
	cases := []struct {
		hour int
		want string
	}{
		{0, "Good morning"},
		{11, "Good morning"},
		{12, "Good afternoon"},
		{16, "Good afternoon"},
		{17, "Good evening"},
		{23, "Good evening"},
	}
	for _, tc := range cases {
		now := time.Date(2024, 6, 1, tc.hour, 30, 0, 0, time.Local)
		if got := Greeting(now); !strings.HasPrefix(got, tc.want) {
			t.Errorf("Greeting at %02d:30 = %q, want prefix %q", tc.hour, got, tc.want)
		}
	}
}

func TestFormatAmount(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "0.00"},
		{5, "5.00"},
		{999.999, "1,000.00"},
		{1234.5, "1,234.50"},
		{1234567.891, "1,234,567.89"},
		{-9876.5, "-9,876.50"},
		{math.Inf(1), "0.00"},
		{math.Inf(-1), "0.00"},
		{math.NaN(), "0.00"},
	}
	for _, tc := range cases {
		if got := formatAmount(tc.in); got != tc.want {
			t.Errorf("formatAmount(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
