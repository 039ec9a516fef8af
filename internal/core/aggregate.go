package core

import (
	"strings"
	"time"
)

type (
	// PeriodTotals accumulates income and spending for one time bucket,
	// in major units.
	PeriodTotals struct {
		Income   float64 `json:"income"`
		Spending float64 `json:"spending"`
	}

	// Aggregate maps bucket keys to running totals. Weekly keys are the
	// ISO date of the Monday starting the week; monthly keys are
	// "YYYY-MM". Both sort lexicographically in chronological order.
	Aggregate struct {
		Weekly  map[string]*PeriodTotals `json:"weekly"`
		Monthly map[string]*PeriodTotals `json:"monthly"`
	}
)

// WeekKey returns the ISO calendar date of the Monday that starts t's week.
func WeekKey(t time.Time) string {
	back := (int(t.Weekday()) + 6) % 7
	return t.AddDate(0, 0, -back).Format("2006-01-02")
}

// MonthKey returns t's month as "YYYY-MM".
func MonthKey(t time.Time) string {
	return t.Format("2006-01")
}

// CategorizeAndAggregate classifies every transaction as income or spending
// relative to the reference address and buckets normalized amounts into
// weekly and monthly totals. A transaction matching neither side of the
// address, or both, is excluded. Transactions without a usable timestamp
// land in the current period.
func CategorizeAndAggregate(txs []Transaction, address string) Aggregate {
	if address == "" {
		address = DefaultAddress
	}
	me := strings.ToLower(address)

	agg := Aggregate{
		Weekly:  make(map[string]*PeriodTotals),
		Monthly: make(map[string]*PeriodTotals),
	}
	now := time.Now()
	for _, tx := range txs {
		income := strings.ToLower(tx.To) == me
		spending := strings.ToLower(tx.From) == me
		if income == spending {
			continue
		}

		ts := tx.Time(now)
		amount := MajorUnits(tx.Value)
		week := bucket(agg.Weekly, WeekKey(ts))
		month := bucket(agg.Monthly, MonthKey(ts))
		if income {
			week.Income += amount
			month.Income += amount
		} else {
			week.Spending += amount
			month.Spending += amount
		}
	}
	return agg
}

func bucket(m map[string]*PeriodTotals, key string) *PeriodTotals {
	b, ok := m[key]
	if !ok {
		b = &PeriodTotals{}
		m[key] = b
	}
	return b
}
