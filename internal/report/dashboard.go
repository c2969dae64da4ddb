package report

import (
	"math"
	"sort"

	"github.com/brandpulse/influence-api/internal/currency"
	"github.com/brandpulse/influence-api/internal/models"
	"github.com/brandpulse/influence-api/internal/store"
)

// Dashboard aggregates target/budget rows into the KPI summary and the
// month-ordered detail list. When the market filter is the Nordics group,
// budgets and spend are normalized to EUR per row before grouping by month;
// otherwise rows stay in local currency (the fetch already narrowed them to
// a single market).
func Dashboard(rows []store.Row, marketFilter string) models.DashboardResult {
	if len(rows) == 0 {
		return models.DashboardResult{
			KPISummary:    map[string]float64{},
			MonthlyDetail: []models.TargetRecord{},
		}
	}

	records := TargetRecords(rows)
	if marketFilter == "Nordics" {
		records = groupNordicsByMonth(records)
	}

	var budget, spend, targetConv, actualConv float64
	for _, r := range records {
		budget += r.TargetBudget
		spend += r.ActualSpend
		targetConv += r.TargetConversions
		actualConv += r.ActualConversions
	}
	// KPI sums are truncated to whole units before the CAC ratio.
	kpi := map[string]float64{
		"target_budget":      math.Trunc(budget),
		"actual_spend":       math.Trunc(spend),
		"target_conversions": math.Trunc(targetConv),
		"actual_conversions": math.Trunc(actualConv),
	}
	kpi["actual_cac"] = 0
	if kpi["actual_conversions"] > 0 {
		kpi["actual_cac"] = kpi["actual_spend"] / kpi["actual_conversions"]
	}

	detail := make([]models.TargetRecord, len(records))
	copy(detail, records)
	for i := range detail {
		detail[i] = scrubTarget(detail[i])
	}
	sort.SliceStable(detail, func(i, j int) bool {
		return monthRank(detail[i].Month) < monthRank(detail[j].Month)
	})

	return models.DashboardResult{
		Source:        "dashboard",
		KPISummary:    kpi,
		MonthlyDetail: detail,
	}
}

func groupNordicsByMonth(records []models.TargetRecord) []models.TargetRecord {
	byMonth := make(map[string]*models.TargetRecord)
	var order []string
	for _, r := range records {
		agg, ok := byMonth[r.Month]
		if !ok {
			agg = &models.TargetRecord{Month: r.Month, Region: "Nordics", Currency: "EUR"}
			byMonth[r.Month] = agg
			order = append(order, r.Month)
		}
		agg.TargetBudget += currency.ToEUR(r.TargetBudget, r.Currency)
		agg.ActualSpend += currency.ToEUR(r.ActualSpend, r.Currency)
		agg.TargetConversions += r.TargetConversions
		agg.ActualConversions += r.ActualConversions
	}
	out := make([]models.TargetRecord, 0, len(order))
	for _, m := range order {
		out = append(out, *byMonth[m])
	}
	return out
}

// scrubTarget enforces the no-NaN/Inf output invariant on a detail row.
func scrubTarget(r models.TargetRecord) models.TargetRecord {
	r.TargetBudget = zeroIfBad(r.TargetBudget)
	r.ActualSpend = zeroIfBad(r.ActualSpend)
	r.TargetConversions = zeroIfBad(r.TargetConversions)
	r.ActualConversions = zeroIfBad(r.ActualConversions)
	return r
}

func zeroIfBad(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}
