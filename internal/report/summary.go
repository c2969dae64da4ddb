package report

import (
	"sort"

	"github.com/brandpulse/influence-api/internal/currency"
	"github.com/brandpulse/influence-api/internal/models"
)

type summaryAcc struct {
	count       int
	conversions float64
	views       float64
	clicks      float64
	spendEUR    float64
	markets     []string
	marketSeen  map[string]struct{}
	assets      []string
	assetSeen   map[string]struct{}
	ctrSum      float64
	ctrN        int
	cvrSum      float64
	cvrN        int
}

// Summary groups campaigns by influencer. avg_ctr and avg_cvr average only
// the strictly-positive values; campaigns with no tracked CTR/CVR are
// excluded from the mean rather than pulled in as zeros.
func Summary(records []models.CampaignRecord, sortSpec *models.SortSpec) models.SummaryResult {
	accs := make(map[string]*summaryAcc)
	var names []string
	for _, r := range records {
		a, ok := accs[r.InfluencerName]
		if !ok {
			a = &summaryAcc{
				marketSeen: make(map[string]struct{}),
				assetSeen:  make(map[string]struct{}),
			}
			accs[r.InfluencerName] = a
			names = append(names, r.InfluencerName)
		}
		a.count++
		a.conversions += r.ActualConversions
		a.views += r.Views
		a.clicks += r.Clicks
		a.spendEUR += currency.ToEUR(r.TotalBudget, r.Currency)
		if _, seen := a.marketSeen[r.Market]; !seen {
			a.marketSeen[r.Market] = struct{}{}
			a.markets = append(a.markets, r.Market)
		}
		if r.Asset != "" {
			if _, seen := a.assetSeen[r.Asset]; !seen {
				a.assetSeen[r.Asset] = struct{}{}
				a.assets = append(a.assets, r.Asset)
			}
		}
		if r.CTRClean > 0 {
			a.ctrSum += r.CTRClean
			a.ctrN++
		}
		if r.CVRClean > 0 {
			a.cvrSum += r.CVRClean
			a.cvrN++
		}
	}

	sort.Strings(names)
	items := make([]models.InfluencerSummary, 0, len(names))
	for _, name := range names {
		a := accs[name]
		it := models.InfluencerSummary{
			InfluencerName:   name,
			CampaignCount:    a.count,
			TotalConversions: a.conversions,
			TotalViews:       a.views,
			TotalClicks:      a.clicks,
			Markets:          a.markets,
			Assets:           a.assets,
			TotalSpendEUR:    a.spendEUR,
		}
		if it.Assets == nil {
			it.Assets = []string{}
		}
		if a.ctrN > 0 {
			it.AvgCTR = a.ctrSum / float64(a.ctrN)
		}
		if a.cvrN > 0 {
			it.AvgCVR = a.cvrSum / float64(a.cvrN)
		}
		if a.conversions != 0 {
			it.EffectiveCACEUR = a.spendEUR / a.conversions
		}
		items = append(items, it)
	}

	if sortSpec != nil {
		sortItems(items, sortSpec)
	}

	return models.SummaryResult{Source: "influencer_summary", Count: len(items), Items: items}
}

func sortItems(items []models.InfluencerSummary, spec *models.SortSpec) {
	by := spec.By
	if by == "" {
		by = "total_spend_eur"
	}
	asc := spec.Order == "asc"
	sort.SliceStable(items, func(i, j int) bool {
		if by == "influencer_name" {
			if asc {
				return items[i].InfluencerName < items[j].InfluencerName
			}
			return items[i].InfluencerName > items[j].InfluencerName
		}
		a, b := sortValue(items[i], by), sortValue(items[j], by)
		if asc {
			return a < b
		}
		return a > b
	})
}

func sortValue(it models.InfluencerSummary, by string) float64 {
	switch by {
	case "campaign_count":
		return float64(it.CampaignCount)
	case "total_conversions":
		return it.TotalConversions
	case "total_views":
		return it.TotalViews
	case "total_clicks":
		return it.TotalClicks
	case "avg_ctr":
		return it.AvgCTR
	case "avg_cvr":
		return it.AvgCVR
	case "effective_cac_eur":
		return it.EffectiveCACEUR
	default:
		return it.TotalSpendEUR
	}
}
