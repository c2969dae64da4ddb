package models

import "encoding/json"

// TargetRecord is one row of the all_market_targets view. Numeric fields are
// coerced at the sanitation boundary, so downstream code never re-parses.
type TargetRecord struct {
	Year              int     `json:"year,omitempty"`
	Region            string  `json:"region"`
	Currency          string  `json:"currency"`
	Month             string  `json:"month"`
	TargetBudget      float64 `json:"target_budget_clean"`
	ActualSpend       float64 `json:"actual_spend_clean"`
	TargetConversions float64 `json:"target_conversions_clean"`
	ActualConversions float64 `json:"actual_conversions_clean"`
}

// CampaignRecord is one row of the all_influencer_campaigns view.
// Views and Clicks hold the resolved values: the _clean counterpart when it
// is strictly positive, the raw value otherwise.
type CampaignRecord struct {
	InfluencerName    string  `json:"influencer_name"`
	Market            string  `json:"market"`
	Currency          string  `json:"currency"`
	Month             string  `json:"month"`
	Year              int     `json:"year"`
	TotalBudget       float64 `json:"total_budget_clean"`
	ActualConversions float64 `json:"actual_conversions_clean"`
	TargetConversions float64 `json:"target_conversions_clean"`
	Views             float64 `json:"views"`
	ViewsClean        float64 `json:"views_clean"`
	Clicks            float64 `json:"clicks"`
	ClicksClean       float64 `json:"clicks_clean"`
	CTRClean          float64 `json:"ctr_clean"`
	CVRClean          float64 `json:"cvr_clean"`
	Asset             string  `json:"asset,omitempty"`
	LiveDate          string  `json:"live_date_clean,omitempty"`
	Week              float64 `json:"wk_clean,omitempty"`
}

// QueryRequest is the body of POST /api/influencer/query.
type QueryRequest struct {
	Source  string    `json:"source"`
	Filters Filters   `json:"filters"`
	View    string    `json:"view"`
	Sort    *SortSpec `json:"sort"`
}

type Filters struct {
	Market         string     `json:"market"`
	Year           FlexString `json:"year"`
	InfluencerName string     `json:"influencer_name"`
	Month          string     `json:"month"`
	WeekNumber     FlexString `json:"week_number"`
	DateFrom       string     `json:"date_from"`
	DateTo         string     `json:"date_to"`
	Tier           string     `json:"tier"`
}

type SortSpec struct {
	By    string `json:"by"`
	Order string `json:"order"`
}

// FlexString accepts a JSON string or number. Clients send year and
// week_number in both forms.
type FlexString string

func (f *FlexString) UnmarshalJSON(b []byte) error {
	if len(b) == 0 || string(b) == "null" {
		*f = ""
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*f = FlexString(n.String())
	return nil
}

func (f FlexString) String() string { return string(f) }

// InfluencerSummary is the per-influencer aggregate of the summary view.
type InfluencerSummary struct {
	InfluencerName   string   `json:"influencer_name"`
	CampaignCount    int      `json:"campaign_count"`
	TotalConversions float64  `json:"total_conversions"`
	TotalViews       float64  `json:"total_views"`
	TotalClicks      float64  `json:"total_clicks"`
	Markets          []string `json:"markets"`
	Assets           []string `json:"assets"`
	TotalSpendEUR    float64  `json:"total_spend_eur"`
	AvgCTR           float64  `json:"avg_ctr"`
	AvgCVR           float64  `json:"avg_cvr"`
	EffectiveCACEUR  float64  `json:"effective_cac_eur"`
}

// KPI and bucket summary blocks are plain maps so the documented empty
// result shapes marshal as {} rather than a zeroed struct.
type DashboardResult struct {
	Source        string             `json:"source,omitempty"`
	KPISummary    map[string]float64 `json:"kpi_summary"`
	MonthlyDetail []TargetRecord     `json:"monthly_detail"`
}

type SummaryResult struct {
	Source string              `json:"source"`
	Count  int                 `json:"count"`
	Items  []InfluencerSummary `json:"items"`
}

type TiersResult struct {
	Source string              `json:"source,omitempty"`
	Gold   []InfluencerSummary `json:"gold"`
	Silver []InfluencerSummary `json:"silver"`
	Bronze []InfluencerSummary `json:"bronze"`
}

// TierResult is returned when a single tier is requested via filters.
type TierResult struct {
	Source string              `json:"source"`
	Tier   string              `json:"tier"`
	Items  []InfluencerSummary `json:"items"`
}

type BreakdownDetail struct {
	InfluencerName string  `json:"influencer_name"`
	Market         string  `json:"market"`
	Currency       string  `json:"currency"`
	BudgetLocal    float64 `json:"budget_local"`
	Conversions    float64 `json:"conversions"`
	CACLocal       float64 `json:"cac_local"`
	LiveDate       string  `json:"live_date,omitempty"`
	WeekNumber     float64 `json:"week_number,omitempty"`
}

type MonthBucket struct {
	Month   string             `json:"month"`
	Summary map[string]float64 `json:"summary"`
	Details []BreakdownDetail  `json:"details"`
}

type MonthlyBreakdownResult struct {
	Source      string        `json:"source,omitempty"`
	MonthlyData []MonthBucket `json:"monthly_data"`
}

type DateRange struct {
	From string `json:"from"`
	To   string `json:"to"`
}

type RangeBreakdownResult struct {
	Source    string             `json:"source,omitempty"`
	DateRange *DateRange         `json:"date_range,omitempty"`
	Summary   map[string]float64 `json:"summary"`
	Details   []BreakdownDetail  `json:"details"`
}

type WeeklyBreakdownResult struct {
	Source     string             `json:"source,omitempty"`
	WeekNumber string             `json:"week_number,omitempty"`
	Summary    map[string]float64 `json:"summary"`
	Details    []BreakdownDetail  `json:"details"`
}

// ProfileCampaign is a CampaignRecord plus the per-row derived ratios of the
// profile view.
type ProfileCampaign struct {
	CampaignRecord
	CACLocal float64 `json:"cac_local"`
	CTR      float64 `json:"ctr"`
}

type ProfileResult struct {
	Source    string            `json:"source"`
	Campaigns []ProfileCampaign `json:"campaigns"`
}

// EmptyFetchResult is returned by the analytics path when the view query
// matches nothing, before any processing runs.
type EmptyFetchResult struct {
	Items []any `json:"items"`
	Count int   `json:"count"`
}
