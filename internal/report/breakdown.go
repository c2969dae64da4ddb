package report

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/brandpulse/influence-api/internal/currency"
	"github.com/brandpulse/influence-api/internal/models"
)

const dateLayout = "2006-01-02"

// bucketSummary aggregates one time slice: EUR-normalized spend, total
// conversions, zero-guarded average CAC and distinct influencer count.
func bucketSummary(records []models.CampaignRecord) map[string]float64 {
	var spend, conversions float64
	names := make(map[string]struct{})
	for _, r := range records {
		spend += currency.ToEUR(r.TotalBudget, r.Currency)
		conversions += r.ActualConversions
		names[r.InfluencerName] = struct{}{}
	}
	cac := 0.0
	if conversions > 0 {
		cac = spend / conversions
	}
	return map[string]float64{
		"total_spend_eur":   spend,
		"total_conversions": conversions,
		"avg_cac_eur":       cac,
		"influencer_count":  float64(len(names)),
	}
}

func detailRow(r models.CampaignRecord, withDate, withWeek bool) models.BreakdownDetail {
	d := models.BreakdownDetail{
		InfluencerName: r.InfluencerName,
		Market:         r.Market,
		Currency:       r.Currency,
		BudgetLocal:    r.TotalBudget,
		Conversions:    r.ActualConversions,
	}
	if r.ActualConversions != 0 {
		d.CACLocal = r.TotalBudget / r.ActualConversions
	}
	if withDate {
		if t, ok := parseRowDate(r.LiveDate); ok {
			d.LiveDate = t.Format(dateLayout)
		}
	}
	if withWeek {
		d.WeekNumber = r.Week
	}
	return d
}

func detailRows(records []models.CampaignRecord, withDate, withWeek bool) []models.BreakdownDetail {
	out := make([]models.BreakdownDetail, 0, len(records))
	for _, r := range records {
		out = append(out, detailRow(r, withDate, withWeek))
	}
	return out
}

// MonthlyBreakdown buckets campaigns per month label, dropping rows with no
// month, and orders the buckets Jan through Dec.
func MonthlyBreakdown(records []models.CampaignRecord) models.MonthlyBreakdownResult {
	if len(records) == 0 {
		return models.MonthlyBreakdownResult{MonthlyData: []models.MonthBucket{}}
	}

	byMonth := make(map[string][]models.CampaignRecord)
	var order []string
	for _, r := range records {
		if r.Month == "" {
			continue
		}
		if _, ok := byMonth[r.Month]; !ok {
			order = append(order, r.Month)
		}
		byMonth[r.Month] = append(byMonth[r.Month], r)
	}

	buckets := make([]models.MonthBucket, 0, len(order))
	for _, m := range order {
		buckets = append(buckets, models.MonthBucket{
			Month:   m,
			Summary: bucketSummary(byMonth[m]),
			Details: detailRows(byMonth[m], false, false),
		})
	}
	sort.SliceStable(buckets, func(i, j int) bool {
		return monthRank(buckets[i].Month) < monthRank(buckets[j].Month)
	})

	return models.MonthlyBreakdownResult{Source: "monthly_breakdown", MonthlyData: buckets}
}

// CustomRangeBreakdown filters campaigns to live dates inside the inclusive
// [dateFrom, dateTo] window and returns a single bucket. Rows whose dates do
// not parse are dropped; missing bounds or an absent date column are errors.
func CustomRangeBreakdown(records []models.CampaignRecord, hasDateColumn bool, dateFrom, dateTo string) (models.RangeBreakdownResult, error) {
	if dateFrom == "" || dateTo == "" {
		return models.RangeBreakdownResult{}, errors.New("'date_from' and 'date_to' filters are required.")
	}
	if !hasDateColumn {
		return models.RangeBreakdownResult{}, errors.New("'live_date_clean' column is not available.")
	}
	from, err := time.Parse(dateLayout, dateFrom)
	if err != nil {
		return models.RangeBreakdownResult{}, fmt.Errorf("Custom range breakdown failed: %v", err)
	}
	to, err := time.Parse(dateLayout, dateTo)
	if err != nil {
		return models.RangeBreakdownResult{}, fmt.Errorf("Custom range breakdown failed: %v", err)
	}

	var kept []models.CampaignRecord
	for _, r := range records {
		t, ok := parseRowDate(r.LiveDate)
		if !ok {
			continue
		}
		if t.Before(from) || t.After(to) {
			continue
		}
		kept = append(kept, r)
	}
	if len(kept) == 0 {
		return models.RangeBreakdownResult{
			Summary: map[string]float64{},
			Details: []models.BreakdownDetail{},
		}, nil
	}

	return models.RangeBreakdownResult{
		Source:    "custom_range_breakdown",
		DateRange: &models.DateRange{From: dateFrom, To: dateTo},
		Summary:   bucketSummary(kept),
		Details:   detailRows(kept, true, false),
	}, nil
}

// WeeklyBreakdown summarizes an already-filtered-by-week-number set as a
// single bucket. Week filtering happens upstream, at the view query.
func WeeklyBreakdown(records []models.CampaignRecord, weekNumber string) models.WeeklyBreakdownResult {
	if len(records) == 0 {
		return models.WeeklyBreakdownResult{
			Summary: map[string]float64{},
			Details: []models.BreakdownDetail{},
		}
	}
	return models.WeeklyBreakdownResult{
		Source:     "weekly_breakdown_by_number",
		WeekNumber: weekNumber,
		Summary:    bucketSummary(records),
		Details:    detailRows(records, true, true),
	}
}

// parseRowDate accepts the two date forms the views emit: plain dates and
// full timestamps.
func parseRowDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse(dateLayout, s); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	return time.Time{}, false
}
