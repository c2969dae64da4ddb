package report

import (
	"fmt"
	"testing"

	"github.com/brandpulse/influence-api/internal/models"
)

// rankedCampaigns builds n influencers with strictly increasing CAC.
func rankedCampaigns(n int) []models.CampaignRecord {
	recs := make([]models.CampaignRecord, 0, n)
	for i := 1; i <= n; i++ {
		recs = append(recs, campaign(fmt.Sprintf("inf-%02d", i), "Sweden", "EUR", float64(i*10), 1))
	}
	return recs
}

func TestDiscoveryTiersEvenSplit(t *testing.T) {
	res, ok := DiscoveryTiers(rankedCampaigns(9), "").(models.TiersResult)
	if !ok {
		t.Fatalf("expected TiersResult")
	}
	if len(res.Gold) != 3 || len(res.Silver) != 3 || len(res.Bronze) != 3 {
		t.Fatalf("n=9 split = %d/%d/%d, want 3/3/3", len(res.Gold), len(res.Silver), len(res.Bronze))
	}
	if res.Gold[0].InfluencerName != "inf-01" {
		t.Errorf("lowest CAC should lead gold, got %q", res.Gold[0].InfluencerName)
	}
	if res.Bronze[2].InfluencerName != "inf-09" {
		t.Errorf("highest CAC should end bronze, got %q", res.Bronze[2].InfluencerName)
	}
}

func TestDiscoveryTiersUnevenSplit(t *testing.T) {
	// ceil(4/3)=2, ceil(8/3)=3: the split is deliberately uneven.
	res := DiscoveryTiers(rankedCampaigns(4), "").(models.TiersResult)
	if len(res.Gold) != 2 || len(res.Silver) != 1 || len(res.Bronze) != 1 {
		t.Fatalf("n=4 split = %d/%d/%d, want 2/1/1", len(res.Gold), len(res.Silver), len(res.Bronze))
	}
}

func TestDiscoveryTiersZeroCACAppendsToBronze(t *testing.T) {
	recs := append(rankedCampaigns(9), campaign("no-conv", "Sweden", "EUR", 500, 0))
	res := DiscoveryTiers(recs, "").(models.TiersResult)
	if len(res.Bronze) != 4 {
		t.Fatalf("zero-CAC influencer should join bronze, got %d", len(res.Bronze))
	}
	if res.Bronze[len(res.Bronze)-1].InfluencerName != "no-conv" {
		t.Fatalf("zero-CAC influencer should come after the ranked bronze slice")
	}
}

func TestDiscoveryTiersSpecificTier(t *testing.T) {
	res, ok := DiscoveryTiers(rankedCampaigns(9), "Gold").(models.TierResult)
	if !ok {
		t.Fatalf("expected TierResult for a recognized tier filter")
	}
	if res.Tier != "Gold" || res.Source != "discovery_tier_specific" {
		t.Errorf("tier tagging: %+v", res)
	}
	if len(res.Items) != 3 {
		t.Errorf("gold items = %d, want 3", len(res.Items))
	}
}

func TestDiscoveryTiersUnknownTierReturnsAll(t *testing.T) {
	if _, ok := DiscoveryTiers(rankedCampaigns(9), "platinum").(models.TiersResult); !ok {
		t.Fatalf("unrecognized tier filter should return all tiers")
	}
}

func TestDiscoveryTiersEmptyInput(t *testing.T) {
	res := DiscoveryTiers(nil, "").(models.TiersResult)
	if res.Gold == nil || res.Silver == nil || res.Bronze == nil {
		t.Fatalf("empty input must yield empty, non-nil tiers")
	}
	if len(res.Gold)+len(res.Silver)+len(res.Bronze) != 0 {
		t.Fatalf("expected all tiers empty, got %+v", res)
	}
}
