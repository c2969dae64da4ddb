// Package service owns the two data paths: build view filters from the
// request, fetch rows, hand them to the report engine.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/brandpulse/influence-api/internal/models"
	"github.com/brandpulse/influence-api/internal/report"
	"github.com/brandpulse/influence-api/internal/store"
)

// NordicCountries is the aggregate "Nordics" market group.
var NordicCountries = []string{"Sweden", "Norway", "Denmark"}

type Service struct {
	st  store.ViewStore
	log *slog.Logger
}

// New wires the store explicitly; there is no shared client handle.
func New(st store.ViewStore, log *slog.Logger) *Service {
	return &Service{st: st, log: log}
}

// Dashboard serves the dashboard source: target/budget rows narrowed by
// year and market, aggregated into the KPI summary and monthly detail.
func (s *Service) Dashboard(ctx context.Context, req models.QueryRequest) (any, error) {
	f := req.Filters
	var filters []store.Filter
	if y := f.Year.String(); y != "" && y != "All" {
		n, err := strconv.Atoi(y)
		if err != nil {
			return nil, fmt.Errorf("Dashboard query failed: invalid year %q", y)
		}
		filters = append(filters, store.Eq("year", n))
	}
	switch m := f.Market; {
	case m == "" || m == "All":
	case m == "Nordics":
		filters = append(filters, store.In("region", NordicCountries...))
	default:
		filters = append(filters, store.Eq("region", m))
	}

	rows, err := s.st.Select(ctx, store.TargetView, filters...)
	if err != nil {
		s.log.Error("dashboard view query failed", slog.String("err", err.Error()))
		return nil, fmt.Errorf("Dashboard query failed: %v", err)
	}
	return report.Dashboard(rows, f.Market), nil
}

// Analytics serves the influencer_analytics source: campaign rows narrowed
// by the filter set, then routed to the requested view.
func (s *Service) Analytics(ctx context.Context, req models.QueryRequest) (any, error) {
	f := req.Filters
	var filters []store.Filter
	if name := strings.TrimSpace(f.InfluencerName); name != "" {
		filters = append(filters, store.ILike("influencer_name", name))
	}
	if y := f.Year.String(); y != "" && y != "All" {
		n, err := strconv.Atoi(y)
		if err != nil {
			return nil, fmt.Errorf("Influencer Analytics query failed: invalid year %q", y)
		}
		filters = append(filters, store.Eq("year", n))
	}
	if m := f.Market; m != "" && m != "All" {
		if m == "Nordics" {
			filters = append(filters, store.In("market", NordicCountries...))
		} else {
			filters = append(filters, store.In("market", m))
		}
	}
	if mo := f.Month; mo != "" && mo != "All" {
		filters = append(filters, store.Eq("month", mo))
	}
	if wk := f.WeekNumber.String(); wk != "" && wk != "All" {
		if n, err := strconv.Atoi(wk); err == nil {
			filters = append(filters, store.Eq("wk_clean", n))
		} else {
			// Non-integer week numbers are ignored, not fatal.
			s.log.Warn("invalid week_number filter value", slog.String("week_number", wk))
		}
	}

	rows, err := s.st.Select(ctx, store.CampaignView, filters...)
	if err != nil {
		s.log.Error("analytics view query failed", slog.String("err", err.Error()))
		return nil, fmt.Errorf("Influencer Analytics query failed: %v", err)
	}
	if len(rows) == 0 {
		s.log.Warn("no rows matched analytics filters")
		return models.EmptyFetchResult{Items: []any{}, Count: 0}, nil
	}
	s.log.Info("fetched filtered records", slog.Int("count", len(rows)))

	return report.RouteAnalytics(rows, req)
}
