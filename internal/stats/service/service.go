// Package service combines the statistics reports.
package service

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"property_catalog_backend/internal/stats/domain"
	"property_catalog_backend/internal/stats/repository"
	"property_catalog_backend/internal/stats/transport"
	"property_catalog_backend/platform/apperr"
	"property_catalog_backend/platform/config"
	"property_catalog_backend/platform/logger"
)

const msgStatsFailed = "failed to compute statistics"

// Settings are the report defaults, fixed at construction.
type Settings struct {
	WindowDays    int
	MaxWindowDays int
	TopCities     int
}

// SettingsFromConfig reads Settings from configuration.
func SettingsFromConfig(cfg config.StatsConfig) Settings {
	return Settings{
		WindowDays:    cfg.GetStatsWindowDays(),
		MaxWindowDays: cfg.GetStatsMaxWindowDays(),
		TopCities:     cfg.GetStatsTopCities(),
	}
}

// DefaultSettings returns the built-in report defaults.
func DefaultSettings() Settings {
	return Settings{WindowDays: 30, MaxWindowDays: 3650, TopCities: 10}
}

// Service computes catalog statistics.
type Service struct {
	source   repository.Source
	settings Settings
	log      *logger.Logger
	now      func() time.Time
}

// New creates a new statistics service.
func New(source repository.Source, settings Settings, log *logger.Logger) *Service {
	return &Service{source: source, settings: settings, log: log, now: time.Now}
}

// Stats runs every report concurrently. Either all of them succeed or the
// whole call fails with no partial report.
func (s *Service) Stats(ctx context.Context, q transport.StatsQuery) (transport.StatsResponse, error) {
	report, err := s.Report(ctx, domain.NormalizeDays(q.Days, s.settings.WindowDays, s.settings.MaxWindowDays), domain.ParseScope(q.Scope))
	if err != nil {
		return transport.StatsResponse{}, err
	}
	return transport.ToStatsResponse(report), nil
}

// Report computes the report for an already normalised window and scope.
func (s *Service) Report(ctx context.Context, days int, scope domain.Scope) (domain.Report, error) {
	now := s.now()
	report := domain.Report{
		Days:        days,
		Scope:       scope,
		Since:       domain.WindowStart(now, days),
		GeneratedAt: now,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		report.Overview, err = s.source.Overview(gctx, report.Since)
		return err
	})
	g.Go(func() (err error) {
		report.Prices, err = s.source.PriceRollup(gctx, scope)
		return err
	})
	g.Go(func() (err error) {
		report.ByType, err = s.source.GroupByType(gctx, scope)
		return err
	})
	g.Go(func() (err error) {
		report.ByCity, err = s.source.TopCities(gctx, scope, s.settings.TopCities)
		return err
	})
	g.Go(func() (err error) {
		report.Series, err = s.source.MonthlySeries(gctx, report.Since, scope)
		return err
	})

	if err := g.Wait(); err != nil {
		s.log.Error("stats report failed", "error", err, "days", days, "scope", scope)
		return domain.Report{}, apperr.Opaque(err, "stats.Report", msgStatsFailed)
	}
	return report, nil
}
