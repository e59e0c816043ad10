// Package report renders batch results as plain text for the CLI.
package report

import (
	"fmt"
	"strings"
	"time"

	"MortgageLab/internal/formula"
	"MortgageLab/internal/model"
)

// FormatComparison formats the scenario comparison into a readable report.
func FormatComparison(title string, results []*model.ScenarioResult) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s | %s\n", title, time.Now().Format("2006-01-02")))
	b.WriteString(strings.Repeat("=", len(title)+13) + "\n")

	for _, res := range results {
		b.WriteString(fmt.Sprintf("\n%s (%s", res.Name, res.Kind))
		if res.Kind != model.ScenarioFixed {
			b.WriteString(fmt.Sprintf(", %d simulations", res.Simulations))
		}
		b.WriteString(")\n")

		b.WriteString(fmt.Sprintf("  initial payment: %s\n", formatDist(res.InitialPayment, res.Kind)))
		b.WriteString(fmt.Sprintf("  total interest:  %s\n", formatDist(res.TotalInterest, res.Kind)))
		b.WriteString(fmt.Sprintf("  total paid:      %s\n", formatDist(res.TotalPaid, res.Kind)))
		b.WriteString(fmt.Sprintf("  duration:        %.1f years\n", res.DurationMonths.Mean/12))
		if res.InterestSaved != 0 {
			b.WriteString(fmt.Sprintf("  interest saved by injections: %.2f\n", res.InterestSaved))
		}
	}

	return b.String()
}

func formatDist(d model.Distribution, kind model.ScenarioKind) string {
	if kind == model.ScenarioFixed {
		return fmt.Sprintf("%.2f", d.Mean)
	}
	return fmt.Sprintf("%.2f ± %.2f (P5 %.2f, P95 %.2f)", d.Mean, d.Std, d.P5, d.P95)
}

// FormatEnsemble renders the per-month statistics of one scenario at
// annual sampling (months 1, 13, 25, ...) plus the final month.
func FormatEnsemble(res *model.ScenarioResult) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s: per-month ensemble statistics\n", res.Name))
	b.WriteString("month  runs  payment(mean)  payment(P5)  payment(P95)  rate(mean)\n")

	for i, ms := range res.Stats {
		last := i == len(res.Stats)-1
		if ms.Month%12 != 1 && !last {
			continue
		}
		b.WriteString(fmt.Sprintf("%5d %5d %14.2f %12.2f %13.2f %11.2f\n",
			ms.Month, ms.Samples, ms.Payment.Mean, ms.Payment.P5, ms.Payment.P95, ms.Rate.Mean))
	}

	return b.String()
}

// FormatAffordability formats the maximum-price estimate.
func FormatAffordability(price, netMonthlySalary, paymentToSalary float64) string {
	var b strings.Builder
	b.WriteString("Affordability\n")
	b.WriteString(fmt.Sprintf("  net monthly salary: %.2f\n", netMonthlySalary))
	b.WriteString(fmt.Sprintf("  payment budget:     %.2f\n", netMonthlySalary*paymentToSalary))
	b.WriteString(fmt.Sprintf("  max purchase price: %.2f\n", price))
	return b.String()
}

// FormatCosts formats the purchase cost breakdown, skipping zero items.
func FormatCosts(c formula.CostBreakdown) string {
	var b strings.Builder
	b.WriteString("Estimated purchase costs\n")

	items := []struct {
		label string
		value float64
	}{
		{"notary", c.Notary},
		{"registry", c.Registry},
		{"agency", c.Agency},
		{"VAT", c.VAT},
		{"stamp duty", c.StampDuty},
		{"transfer tax", c.TransferTax},
		{"appraisal", c.Appraisal},
		{"arrangement fee", c.ArrangementFee},
	}
	for _, it := range items {
		if it.value == 0 {
			continue
		}
		b.WriteString(fmt.Sprintf("  %-16s %10.2f\n", it.label, it.value))
	}
	b.WriteString(fmt.Sprintf("  %-16s %10.2f\n", "total", c.Total()))
	return b.String()
}
