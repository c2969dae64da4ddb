// Package report turns flat view rows into the grouped summaries, tier
// rankings and time-bucketed breakdowns served by the query endpoint.
package report

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/brandpulse/influence-api/internal/models"
	"github.com/brandpulse/influence-api/internal/store"
)

var targetNumericFields = []string{
	"year", "target_budget_clean", "actual_spend_clean",
	"target_conversions_clean", "actual_conversions_clean",
}

var campaignNumericFields = []string{
	"total_budget_clean", "actual_conversions_clean",
	"views_clean", "views", "clicks_clean", "clicks",
	"ctr_clean", "cvr_clean",
}

// CleanNumeric coerces the named fields of every row to a number, defaulting
// to 0 on absence or parse failure. Idempotent: re-running on already-clean
// rows changes nothing.
func CleanNumeric(rows []store.Row, fields ...string) []store.Row {
	for _, r := range rows {
		for _, f := range fields {
			r[f] = toNumber(r[f])
		}
	}
	return rows
}

// TargetRecords sanitizes dashboard-view rows into typed records.
func TargetRecords(rows []store.Row) []models.TargetRecord {
	CleanNumeric(rows, targetNumericFields...)
	out := make([]models.TargetRecord, 0, len(rows))
	for _, r := range rows {
		out = append(out, models.TargetRecord{
			Year:              int(toNumber(r["year"])),
			Region:            toString(r["region"]),
			Currency:          toString(r["currency"]),
			Month:             toString(r["month"]),
			TargetBudget:      toNumber(r["target_budget_clean"]),
			ActualSpend:       toNumber(r["actual_spend_clean"]),
			TargetConversions: toNumber(r["target_conversions_clean"]),
			ActualConversions: toNumber(r["actual_conversions_clean"]),
		})
	}
	return out
}

// CampaignRecords sanitizes analytics-view rows into typed records. Views
// and clicks resolve to the _clean counterpart when strictly positive,
// otherwise the raw value.
func CampaignRecords(rows []store.Row) []models.CampaignRecord {
	CleanNumeric(rows, campaignNumericFields...)
	out := make([]models.CampaignRecord, 0, len(rows))
	for _, r := range rows {
		views := toNumber(r["views"])
		if vc := toNumber(r["views_clean"]); vc > 0 {
			views = vc
		}
		clicks := toNumber(r["clicks"])
		if cc := toNumber(r["clicks_clean"]); cc > 0 {
			clicks = cc
		}
		out = append(out, models.CampaignRecord{
			InfluencerName:    toString(r["influencer_name"]),
			Market:            toString(r["market"]),
			Currency:          toString(r["currency"]),
			Month:             toString(r["month"]),
			Year:              int(toNumber(r["year"])),
			TotalBudget:       toNumber(r["total_budget_clean"]),
			ActualConversions: toNumber(r["actual_conversions_clean"]),
			TargetConversions: toNumber(r["target_conversions_clean"]),
			Views:             views,
			ViewsClean:        toNumber(r["views_clean"]),
			Clicks:            clicks,
			ClicksClean:       toNumber(r["clicks_clean"]),
			CTRClean:          toNumber(r["ctr_clean"]),
			CVRClean:          toNumber(r["cvr_clean"]),
			Asset:             toString(r["asset"]),
			LiveDate:          toString(r["live_date_clean"]),
			Week:              toNumber(r["wk_clean"]),
		})
	}
	return out
}

func toNumber(v any) float64 {
	var f float64
	switch t := v.(type) {
	case nil:
		return 0
	case float64:
		f = t
	case float32:
		f = float64(t)
	case int:
		f = float64(t)
	case int32:
		f = float64(t)
	case int64:
		f = float64(t)
	case bool:
		if t {
			return 1
		}
		return 0
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return 0
		}
		f = parsed
	default:
		return 0
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

func toString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	default:
		return fmt.Sprint(t)
	}
}

func hasColumn(rows []store.Row, col string) bool {
	for _, r := range rows {
		if _, ok := r[col]; ok {
			return true
		}
	}
	return false
}
