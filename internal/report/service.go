package report

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"kas/internal/core"
	"kas/internal/sheets"
)

// ErrYearNotConfigured is returned by Transactions when no sheet tab is
// configured for the requested year.
var ErrYearNotConfigured = errors.New("no sheet tab configured for year")

// Service is the read boundary of the ingestion pipeline. Every call
// re-fetches and re-derives from scratch; there is no state shared between
// calls, callers layer their own caching on top.
type Service struct {
	source       sheets.Source
	dashboardGID string
	monthlyGID   string
	yearGIDs     map[int]string
	fallback     core.DashboardData

	now func() time.Time
}

func NewService(source sheets.Source, dashboardGID, monthlyGID string, yearGIDs map[int]string, fallback core.DashboardData) *Service {
	return &Service{
		source:       source,
		dashboardGID: dashboardGID,
		monthlyGID:   monthlyGID,
		yearGIDs:     yearGIDs,
		fallback:     fallback,
		now:          time.Now,
	}
}

// DashboardData fetches the summary tab and the mixed year/month tab in
// parallel, then aggregates and reconciles. It never fails: fetch errors
// degrade to empty row sets and empty sections fall back to the static
// dataset, so the frontend always receives a structurally valid snapshot.
func (s *Service) DashboardData(ctx context.Context) core.DashboardData {
	var summaryRows, mixedRows [][]string

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		summaryRows = s.fetchRows(gctx, s.dashboardGID)
		return nil
	})
	g.Go(func() error {
		mixedRows = s.fetchRows(gctx, s.monthlyGID)
		return nil
	})
	_ = g.Wait()

	return BuildDashboard(summaryRows, mixedRows, s.now().Year(), s.fallback)
}

// Transactions lists the detail rows of the requested year's sheet. The only
// error is an unconfigured year; a failed fetch yields an empty list, like
// everywhere else in the pipeline.
func (s *Service) Transactions(ctx context.Context, year int, kind core.TransactionKind) ([]core.Transaction, error) {
	gid, ok := s.yearGIDs[year]
	if !ok {
		return nil, fmt.Errorf("%w %d", ErrYearNotConfigured, year)
	}
	return ExtractTransactions(s.fetchRows(ctx, gid), kind), nil
}

// fetchRows is where source failures stop: they are logged and converted to
// an empty row set, never propagated upward.
func (s *Service) fetchRows(ctx context.Context, gid string) [][]string {
	rows, err := s.source.Fetch(ctx, gid)
	if err != nil {
		slog.WarnContext(ctx, "Sheet fetch failed, continuing with empty rows", "gid", gid, "error", err)
		return nil
	}
	return rows
}
