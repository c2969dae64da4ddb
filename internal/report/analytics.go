package report

import (
	"fmt"
	"strings"

	"github.com/brandpulse/influence-api/internal/models"
	"github.com/brandpulse/influence-api/internal/store"
)

// RouteAnalytics sanitizes the fetched rows and dispatches them to one view.
// A non-empty influencer_name filter always routes to the profile view,
// whatever the view parameter says.
func RouteAnalytics(rows []store.Row, req models.QueryRequest) (any, error) {
	records := CampaignRecords(rows)

	if name := strings.TrimSpace(req.Filters.InfluencerName); name != "" {
		return Profile(records), nil
	}

	view := req.View
	if view == "" {
		view = "summary"
	}
	switch view {
	case "summary":
		return Summary(records, req.Sort), nil
	case "discovery_tiers":
		return DiscoveryTiers(records, req.Filters.Tier), nil
	case "monthly_breakdown":
		return MonthlyBreakdown(records), nil
	case "custom_range_breakdown":
		return CustomRangeBreakdown(records, hasColumn(rows, "live_date_clean"), req.Filters.DateFrom, req.Filters.DateTo)
	case "weekly_breakdown_by_number":
		return WeeklyBreakdown(records, req.Filters.WeekNumber.String()), nil
	default:
		return nil, fmt.Errorf("Invalid view '%s'.", view)
	}
}
