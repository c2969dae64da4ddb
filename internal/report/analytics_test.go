package report

import (
	"strings"
	"testing"

	"github.com/brandpulse/influence-api/internal/models"
	"github.com/brandpulse/influence-api/internal/store"
)

func campaignRow(name string, budget, conv float64) store.Row {
	return store.Row{
		"influencer_name": name, "market": "Sweden", "currency": "EUR", "month": "Jan", "year": 2025,
		"total_budget_clean": budget, "actual_conversions_clean": conv,
		"views": 100, "views_clean": 0, "clicks": 10, "clicks_clean": 0,
		"ctr_clean": 0.1, "cvr_clean": 0.05, "live_date_clean": "2025-01-10",
	}
}

func TestRouteAnalyticsDefaultsToSummary(t *testing.T) {
	res, err := RouteAnalytics([]store.Row{campaignRow("A", 100, 10)}, models.QueryRequest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := res.(models.SummaryResult); !ok {
		t.Fatalf("empty view should default to summary, got %T", res)
	}
}

func TestRouteAnalyticsInfluencerNameOverridesView(t *testing.T) {
	req := models.QueryRequest{
		View:    "discovery_tiers",
		Filters: models.Filters{InfluencerName: "A"},
	}
	res, err := RouteAnalytics([]store.Row{campaignRow("A", 100, 10)}, req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := res.(models.ProfileResult); !ok {
		t.Fatalf("influencer_name filter must force the profile view, got %T", res)
	}
}

func TestRouteAnalyticsViewDispatch(t *testing.T) {
	rows := func() []store.Row { return []store.Row{campaignRow("A", 100, 10)} }
	cases := []struct {
		view string
		req  models.QueryRequest
		want string
	}{
		{"summary", models.QueryRequest{View: "summary"}, "models.SummaryResult"},
		{"discovery_tiers", models.QueryRequest{View: "discovery_tiers"}, "models.TiersResult"},
		{"monthly_breakdown", models.QueryRequest{View: "monthly_breakdown"}, "models.MonthlyBreakdownResult"},
		{"weekly_breakdown_by_number", models.QueryRequest{View: "weekly_breakdown_by_number"}, "models.WeeklyBreakdownResult"},
	}
	for _, c := range cases {
		res, err := RouteAnalytics(rows(), c.req)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", c.view, err)
		}
		if got := typeName(res); got != c.want {
			t.Errorf("%s: got %s, want %s", c.view, got, c.want)
		}
	}
}

func TestRouteAnalyticsCustomRange(t *testing.T) {
	req := models.QueryRequest{
		View:    "custom_range_breakdown",
		Filters: models.Filters{DateFrom: "2025-01-01", DateTo: "2025-01-31"},
	}
	res, err := RouteAnalytics([]store.Row{campaignRow("A", 100, 10)}, req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rb, ok := res.(models.RangeBreakdownResult)
	if !ok {
		t.Fatalf("got %T", res)
	}
	if len(rb.Details) != 1 {
		t.Fatalf("expected 1 detail row, got %d", len(rb.Details))
	}
}

func TestRouteAnalyticsInvalidView(t *testing.T) {
	_, err := RouteAnalytics([]store.Row{campaignRow("A", 100, 10)}, models.QueryRequest{View: "quarterly"})
	if err == nil || !strings.Contains(err.Error(), "Invalid view") {
		t.Fatalf("unknown view must return an error result, got %v", err)
	}
}

func typeName(v any) string {
	switch v.(type) {
	case models.SummaryResult:
		return "models.SummaryResult"
	case models.TiersResult:
		return "models.TiersResult"
	case models.MonthlyBreakdownResult:
		return "models.MonthlyBreakdownResult"
	case models.WeeklyBreakdownResult:
		return "models.WeeklyBreakdownResult"
	case models.RangeBreakdownResult:
		return "models.RangeBreakdownResult"
	case models.ProfileResult:
		return "models.ProfileResult"
	default:
		return "unknown"
	}
}
