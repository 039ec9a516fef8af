package core

import "math"

// Scenario is a static, formula-driven business-lever projection. Impact is
// a signed major-unit amount rounded to two decimals; summary and action
// are fixed text.
type Scenario struct {
	Title   string  `json:"title"`
	Impact  float64 `json:"impact"`
	Summary string  `json:"summary"`
	Action  string  `json:"action"`
}

// WhatIfScenarios derives the fixed three-entry scenario catalog from an
// aggregate. Weekly figures are extrapolated to monthly with a flat x4
// multiplier regardless of how many weeks the latest month actually holds.
func WhatIfScenarios(agg Aggregate) []Scenario {
	k := ComputeKPIs(agg)
	income := k.WeeklyIncome * 4
	spend := k.WeeklySpending * 4

	return []Scenario{
		{
			Title:   "Increase pricing by 5%",
			Impact:  round2(income * 0.05),
			Summary: "Raises revenue assuming demand holds; review price elasticity.",
			Action:  "Pilot price increase on top SKUs for 2 weeks.",
		},
		{
			Title:   "Cut low-ROI marketing 10%",
			Impact:  round2(spend * 0.10),
			Summary: "Reduces spend; reallocate to high-ROI channels.",
			Action:  "Pause poor campaigns, double down on top performers.",
		},
		{
			Title:   "Accelerate collections",
			Impact:  round2(k.MonthlyNet * 0.08),
			Summary: "Improves cash flow; lowers working capital needs.",
			Action:  "Send reminders; offer 2%/10 Net 30 early payment terms.",
		},
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
