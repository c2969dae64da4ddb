package report

import (
	"sort"

	"github.com/brandpulse/influence-api/internal/models"
)

// Profile returns the full per-campaign list for one influencer (rows are
// narrowed to the influencer upstream by the name match), with per-row CAC
// and CTR, ordered by year then calendar month.
func Profile(records []models.CampaignRecord) models.ProfileResult {
	campaigns := make([]models.ProfileCampaign, 0, len(records))
	for _, r := range records {
		c := models.ProfileCampaign{CampaignRecord: r}
		if r.ActualConversions != 0 {
			c.CACLocal = r.TotalBudget / r.ActualConversions
		}
		if r.Views != 0 {
			c.CTR = r.Clicks / r.Views
		}
		campaigns = append(campaigns, c)
	}
	sort.SliceStable(campaigns, func(i, j int) bool {
		if campaigns[i].Year != campaigns[j].Year {
			return campaigns[i].Year < campaigns[j].Year
		}
		return monthRank(campaigns[i].Month) < monthRank(campaigns[j].Month)
	})
	return models.ProfileResult{Source: "influencer_detail", Campaigns: campaigns}
}
