package report

import (
	"math"
	"sort"
	"strings"

	"github.com/brandpulse/influence-api/internal/models"
)

// DiscoveryTiers ranks influencers by effective CAC (lower is better) and
// partitions them into gold/silver/bronze thirds. Boundaries are ceil(n/3)
// and ceil(2n/3) over the ranked list, so splits can be uneven for n not
// divisible by 3. Influencers with no attributable conversions (CAC <= 0)
// always land at the end of bronze. A recognized tier filter narrows the
// result to that tier.
func DiscoveryTiers(records []models.CampaignRecord, tierFilter string) any {
	items := Summary(records, nil).Items
	if len(items) == 0 {
		return models.TiersResult{
			Gold:   []models.InfluencerSummary{},
			Silver: []models.InfluencerSummary{},
			Bronze: []models.InfluencerSummary{},
		}
	}

	var ranked, zeroCAC []models.InfluencerSummary
	for _, it := range items {
		if it.EffectiveCACEUR > 0 {
			ranked = append(ranked, it)
		} else {
			zeroCAC = append(zeroCAC, it)
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].EffectiveCACEUR < ranked[j].EffectiveCACEUR
	})

	n := len(ranked)
	top := int(math.Ceil(float64(n) / 3))
	mid := int(math.Ceil(float64(n) * 2 / 3))

	gold := orEmpty(ranked[:top])
	silver := orEmpty(ranked[top:mid])
	bronze := append(append([]models.InfluencerSummary{}, ranked[mid:]...), zeroCAC...)

	tiers := map[string][]models.InfluencerSummary{
		"gold": gold, "silver": silver, "bronze": bronze,
	}
	if t := strings.ToLower(strings.TrimSpace(tierFilter)); t != "" {
		if tierItems, ok := tiers[t]; ok {
			return models.TierResult{Source: "discovery_tier_specific", Tier: tierFilter, Items: tierItems}
		}
	}

	return models.TiersResult{Source: "discovery_tiers", Gold: gold, Silver: silver, Bronze: bronze}
}

func orEmpty(s []models.InfluencerSummary) []models.InfluencerSummary {
	if s == nil {
		return []models.InfluencerSummary{}
	}
	return s
}
