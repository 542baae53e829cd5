package reporting

import (
	"fmt"
	"math"
	"strings"
	"time"

	"litigation-strategy-lab/internal/domain"
	"litigation-strategy-lab/internal/tree"
)

// RenderMarkdown renders the report as a Markdown string.
func RenderMarkdown(r *Report) string {
	var sb strings.Builder

	// Header
	sb.WriteString("# Case Strategy Report\n\n")
	sb.WriteString(fmt.Sprintf("Generated: %s\n\n", r.GeneratedAt.Format(time.RFC3339)))
	sb.WriteString(fmt.Sprintf("Analysis ID: `%s`\n\n", r.AnalysisID))

	// Inputs
	sb.WriteString("## Inputs\n\n")
	sb.WriteString("| Input | Value |\n")
	sb.WriteString("|-------|-------|\n")
	sb.WriteString(fmt.Sprintf("| Damages (conservative) | %s |\n", money(r.Damages.Conservative)))
	sb.WriteString(fmt.Sprintf("| Damages (recommended) | %s |\n", money(r.Damages.Recommended)))
	sb.WriteString(fmt.Sprintf("| Damages (aggressive) | %s |\n", money(r.Damages.Aggressive)))
	sb.WriteString(fmt.Sprintf("| Case strength | %d / 10 |\n", r.CaseStrength))
	sb.WriteString(fmt.Sprintf("| Opponent settlement rate | %.2f |\n", r.SettlementRate))
	sb.WriteString(fmt.Sprintf("| Trials | %d |\n", r.Trials))
	sb.WriteString(fmt.Sprintf("| Seed | %d |\n", r.Seed))
	sb.WriteString("\n")

	// Recommendation
	rec := r.Recommendation
	sb.WriteString("## Recommendation\n\n")
	sb.WriteString(fmt.Sprintf("Primary strategy: **%s** (opponent profile: %s)\n\n", rec.PrimaryStrategy, rec.OpponentProfile))
	sb.WriteString("| Metric | Value |\n")
	sb.WriteString("|--------|-------|\n")
	sb.WriteString(fmt.Sprintf("| Optimal scenario | %s |\n", rec.OptimalScenario))
	sb.WriteString(fmt.Sprintf("| Expected value | %s |\n", money(rec.ExpectedValue)))
	sb.WriteString(fmt.Sprintf("| Win probability | %.1f%% |\n", rec.WinProbability*100))
	sb.WriteString(fmt.Sprintf("| Demand anchor (P75) | %s |\n", money(rec.DemandAnchor)))
	sb.WriteString(fmt.Sprintf("| Target (median) | %s |\n", money(rec.Target)))
	sb.WriteString(fmt.Sprintf("| Acceptance floor (P25) | %s |\n", money(rec.AcceptanceFloor)))
	sb.WriteString(fmt.Sprintf("| Expected duration | %.0f days |\n", rec.ExpectedDurationDays))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Timing: %s\n\n", rec.Timing))
	sb.WriteString("Tactics:\n\n")
	for _, tactic := range rec.Tactics {
		sb.WriteString(fmt.Sprintf("- %s\n", tactic))
	}
	sb.WriteString("\n")

	// Scenario ranking
	sb.WriteString("## Scenario Ranking\n\n")
	sb.WriteString("| Scenario | Probability | Value | Cost | Days | Net | Expected | ROI | Value/Day |\n")
	sb.WriteString("|----------|-------------|-------|------|------|-----|----------|-----|-----------|\n")
	for _, row := range r.Ranking {
		sb.WriteString(fmt.Sprintf("| %s | %.4f | %s | %s | %d | %s | %s | %s | %s |\n",
			row.Scenario, row.Probability,
			money(row.Value), money(row.Cost), row.DurationDays,
			money(row.NetValue), money(row.ExpectedValue),
			ratio(row.ROI), ratio(row.ValuePerDay)))
	}
	sb.WriteString("\n")

	// Payoff matrix
	sb.WriteString("## Payoff Matrix\n\n")
	sb.WriteString("| Claimant \\ Opponent | settle_quick | negotiate | fight_to_trial |\n")
	sb.WriteString("|---------------------|--------------|-----------|----------------|\n")
	for _, c := range domain.ClaimantStrategies {
		sb.WriteString(fmt.Sprintf("| %s |", c))
		for _, o := range domain.OpponentStrategies {
			sb.WriteString(fmt.Sprintf(" %s |", money(r.Matrix.At(c, o))))
		}
		sb.WriteString("\n")
	}
	sb.WriteString("\n")

	// Distributions
	sb.WriteString("## Simulated Distributions\n\n")
	sb.WriteString("| Dimension | Mean | Median | StdDev | Min | P25 | P75 | P90 | Max |\n")
	sb.WriteString("|-----------|------|--------|--------|-----|-----|-----|-----|-----|\n")
	sb.WriteString(distRow("Value (USD)", r.Values.Mean, r.Values.Median, r.Values.StdDev, r.Values.Min, r.Values.P25, r.Values.P75, r.Values.P90, r.Values.Max))
	sb.WriteString(distRow("Duration (days)", r.Times.Mean, r.Times.Median, r.Times.StdDev, r.Times.Min, r.Times.P25, r.Times.P75, r.Times.P90, r.Times.Max))
	sb.WriteString(distRow("Cost (USD)", r.Costs.Mean, r.Costs.Median, r.Costs.StdDev, r.Costs.Min, r.Costs.P25, r.Costs.P75, r.Costs.P90, r.Costs.Max))
	sb.WriteString("\n")

	// Decision tree outline. Explanation only: these branch rates are
	// narrative conditionals, not the catalog probabilities above.
	sb.WriteString("## Decision Tree (illustrative)\n\n")
	renderTree(&sb, r.Tree, 0)
	sb.WriteString("\n")

	return sb.String()
}

func renderTree(sb *strings.Builder, n *tree.Node, depth int) {
	if n == nil {
		return
	}
	indent := strings.Repeat("  ", depth)
	line := fmt.Sprintf("%s- %s (p=%.2f, cost=%s, +%dd", indent, n.Action, n.Probability, money(n.Cost), n.TimeDays)
	if n.IsTerminal() {
		line += fmt.Sprintf(", value=%s", money(*n.Value))
	}
	line += ")\n"
	sb.WriteString(line)
	for _, c := range n.Children {
		renderTree(sb, c, depth+1)
	}
}

func money(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}

func ratio(v float64) string {
	if math.IsInf(v, 1) {
		return "inf"
	}
	return fmt.Sprintf("%.2f", v)
}

func distRow(name string, mean, median, stdDev, min, p25, p75, p90, max float64) string {
	return fmt.Sprintf("| %s | %.2f | %.2f | %.2f | %.2f | %.2f | %.2f | %.2f | %.2f |\n",
		name, mean, median, stdDev, min, p25, p75, p90, max)
}
