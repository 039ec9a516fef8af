package core

import "math"

// KPISnapshot carries the three headline numbers read from the most recent
// weekly and monthly buckets present in the data.
type KPISnapshot struct {
	WeeklyIncome   float64 `json:"weeklyIncome"`
	WeeklySpending float64 `json:"weeklySpending"`
	MonthlyNet     float64 `json:"monthlyNet"`
}

// ComputeKPIs reduces an aggregate to its snapshot. The most recent period
// is the lexicographically-last bucket key, which by key construction is
// also the chronologically-last one. An empty aggregate yields all zeros.
// Snapshot values are always finite: bucket sums that overflowed float64
// degrade to zero, so the snapshot stays JSON-encodable and renderable.
func ComputeKPIs(agg Aggregate) KPISnapshot {
	var snap KPISnapshot
	if b := lastBucket(agg.Weekly); b != nil {
		snap.WeeklyIncome = finite(b.Income)
		snap.WeeklySpending = finite(b.Spending)
	}
	if b := lastBucket(agg.Monthly); b != nil {
		snap.MonthlyNet = finite(b.Income - b.Spending)
	}
	return snap
}

func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

func lastBucket(m map[string]*PeriodTotals) *PeriodTotals {
	var last string
	for k := range m {
		if k > last {
			last = k
		}
	}
	if last == "" {
		return nil
	}
	return m[last]
}
