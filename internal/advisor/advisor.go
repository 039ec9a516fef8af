// Package advisor routes free-text business questions to the right response
// generator: KPI summaries, scenario projections, project listings, or fixed
// strategy replies. Matching is plain lowercase substring search; rules are
// evaluated in priority order and the first hit wins.
package advisor

import (
	"fmt"
	"strings"

	"pal/internal/core"
)

const (
	replyOffTopic   = "I’m focused on your business. Ask about sales, expenses, transactions, projects, or strategy."
	replyNoProjects = "I don’t have saved projects yet. Share details and I’ll track deliverables, owners, and dates."
	replyStrategy   = "Top priorities: stabilize cash flow, grow high-margin revenue, and reduce waste. I can draft a 30/60/90-day plan on request."
	replyFallback   = "Tell me about your sales, expenses, transactions, or a project you want me to manage."
)

// relevanceKeywords gates whether a message is business-related at all.
var relevanceKeywords = []string{
	"business", "project", "sales", "revenue", "expense", "profit", "wallet",
	"transaction", "customer", "marketing", "inventory", "cash flow", "accounting",
}

// Topic rule keywords, in evaluation order. Revenue outranks expenses, so a
// message mentioning both gets the revenue summary.
var (
	salesKeywords   = []string{"sale", "revenue", "income", "transaction", "wallet"}
	expenseKeywords = []string{"expense", "spending", "cost"}
	profitKeywords  = []string{"profit", "margin", "net"}
	projectKeywords = []string{"project", "client", "deliverable", "deadline"}
	adviceKeywords  = []string{"tip", "advice", "help", "strategy", "plan"}
)

// Respond produces a reply for a free-text message against the current
// memory document. It never fails; every input yields a well-formed reply.
func Respond(message string, doc *core.Document) string {
	if !isBusinessRelated(message) {
		return replyOffTopic
	}

	m := strings.ToLower(message)
	txs := doc.Transactions

	switch {
	case containsAny(m, salesKeywords):
		k := core.ComputeKPIs(core.CategorizeAndAggregate(txs, core.DefaultAddress))
		return fmt.Sprintf(
			"Here’s your latest summary: Weekly income $%s, weekly spending $%s, monthly net $%s. "+
				"I can also simulate scenarios. Say ‘what-if’ to explore options.",
			formatAmount(k.WeeklyIncome), formatAmount(k.WeeklySpending), formatAmount(k.MonthlyNet))

	case containsAny(m, expenseKeywords):
		k := core.ComputeKPIs(core.CategorizeAndAggregate(txs, core.DefaultAddress))
		return fmt.Sprintf(
			"Current weekly spending is $%s. Consider cutting 10%% low-ROI costs or negotiating vendor discounts. "+
				"Want a list of actionable savings ideas?",
			formatAmount(k.WeeklySpending))

	case containsAny(m, profitKeywords):
		k := core.ComputeKPIs(core.CategorizeAndAggregate(txs, core.DefaultAddress))
		return fmt.Sprintf(
			"Monthly net sits at $%s. We can grow margins via pricing, mix shift, and efficiency.",
			formatAmount(k.MonthlyNet))

	case containsAny(m, projectKeywords):
		return projectsReply(doc.Projects)

	case strings.Contains(m, "what-if") || strings.Contains(m, "scenario"):
		return scenariosReply(core.WhatIfScenarios(core.CategorizeAndAggregate(txs, core.DefaultAddress)))

	case containsAny(m, adviceKeywords):
		return replyStrategy

	default:
		return replyFallback
	}
}

func projectsReply(projects []core.Project) string {
	if len(projects) == 0 {
		return replyNoProjects
	}
	names := make([]string, len(projects))
	for i, p := range projects {
		names[i] = p.Name
		if names[i] == "" {
			names[i] = "Unnamed"
		}
	}
	first := projects[0].Name
	if first == "" {
		first = "the project"
	}
	return fmt.Sprintf("Active projects: %s. Ask ‘plan %s’ to get milestones and risks.",
		strings.Join(names, ", "), first)
}

func scenariosReply(sims []core.Scenario) string {
	lines := make([]string, len(sims))
	for i, s := range sims {
		lines[i] = fmt.Sprintf("- %s: impact ≈ $%s. %s Next: %s",
			s.Title, formatAmount(s.Impact), s.Summary, s.Action)
	}
	return "Scenario options:\n" + strings.Join(lines, "\n")
}

func isBusinessRelated(message string) bool {
	return containsAny(strings.ToLower(message), relevanceKeywords)
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}
