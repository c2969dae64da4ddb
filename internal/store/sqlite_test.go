package store

import (
	"context"
	"path/filepath"
	"testing"
)

func newSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	path := filepath.Join(t.TempDir(), "views.db")
	if err := RunMigrations(path); err != nil {
		t.Fatalf("migrations failed: %v", err)
	}
	st, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	return st
}

func seedSQLite(t *testing.T, st *SQLiteStore) {
	t.Helper()
	_, err := st.db.Exec(`
		INSERT INTO influencer_campaigns
			(influencer_name, market, currency, month, year, total_budget, actual_conversions, views, clicks, ctr, cvr, asset, live_date, wk)
		VALUES
			('Anna Larsson', 'Sweden', 'SEK', 'Jan', 2025, 1130, 10, 1000, 50, 0.05, 0.01, 'Video', '2025-01-10', 2),
			('Ola Berg', 'Norway', 'NOK', 'Feb', 2025, NULL, NULL, NULL, NULL, NULL, NULL, NULL, NULL, 7);
		INSERT INTO market_targets
			(year, region, currency, month, target_budget, actual_spend, target_conversions, actual_conversions)
		VALUES (2025, 'Sweden', 'SEK', 'Jan', 1130, 1000, 12, 10);`)
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
}

func TestSQLiteViewFilters(t *testing.T) {
	st := newSQLiteStore(t)
	seedSQLite(t, st)
	ctx := context.Background()

	rows, err := st.Select(ctx, CampaignView, Eq("year", 2025))
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("eq year: got %d rows, want 2", len(rows))
	}

	rows, err = st.Select(ctx, CampaignView, ILike("influencer_name", "anna"))
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	if len(rows) != 1 || rows[0]["market"] != "Sweden" {
		t.Fatalf("ilike: %v", rows)
	}

	rows, err = st.Select(ctx, CampaignView, In("market", "Sweden", "Norway", "Denmark"), Eq("wk_clean", 7))
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	if len(rows) != 1 || rows[0]["influencer_name"] != "Ola Berg" {
		t.Fatalf("combined filters: %v", rows)
	}
}

func TestSQLiteViewCoalescesNulls(t *testing.T) {
	st := newSQLiteStore(t)
	seedSQLite(t, st)

	rows, err := st.Select(context.Background(), CampaignView, ILike("influencer_name", "ola"))
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected Ola's row, got %d", len(rows))
	}
	r := rows[0]
	for _, col := range []string{"total_budget_clean", "actual_conversions_clean", "views", "clicks", "ctr_clean", "cvr_clean"} {
		switch v := r[col].(type) {
		case int64:
			if v != 0 {
				t.Errorf("%s = %v, want 0", col, v)
			}
		case float64:
			if v != 0 {
				t.Errorf("%s = %v, want 0", col, v)
			}
		default:
			t.Errorf("%s should coalesce to a number, got %T", col, v)
		}
	}
	if r["asset"] != nil {
		t.Errorf("asset should stay NULL, got %v", r["asset"])
	}
}

func TestSQLiteTargetView(t *testing.T) {
	st := newSQLiteStore(t)
	seedSQLite(t, st)

	rows, err := st.Select(context.Background(), TargetView, Eq("region", "Sweden"))
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("target view: got %d rows, want 1", len(rows))
	}
	if rows[0]["target_budget_clean"] == nil {
		t.Fatalf("target_budget_clean missing: %v", rows[0])
	}
}
