// Package relay orchestrates upstream calls and quota accounting: each
// operation forwards to its provider and, for quota-counted resources,
// increments the ledger only after an HTTP 200 relay.
package relay

import (
	"context"

	"go.uber.org/zap"

	"github.com/courtside-cloud/hooprelay/internal/domain"
	"github.com/courtside-cloud/hooprelay/internal/metrics"
)

const defaultSeason = "2026"

// Service relays proxy operations to the upstream providers.
type Service struct {
	odds     OddsProvider
	stats    StatsProvider
	recorder UsageRecorder
	logger   *zap.Logger
	season   string
}

// New creates a relay Service with the default season fallback.
func New(odds OddsProvider, stats StatsProvider, recorder UsageRecorder, logger *zap.Logger) *Service {
	return &Service{
		odds:     odds,
		stats:    stats,
		recorder: recorder,
		logger:   logger,
		season:   defaultSeason,
	}
}

// WithDefaultSeason overrides the season applied when the caller omits one.
func (s *Service) WithDefaultSeason(season string) *Service {
	if season != "" {
		s.season = season
	}
	return s
}

// Odds relays the betting-lines lookup. Odds calls are quota-exempt: the
// ledger is untouched regardless of outcome.
func (s *Service) Odds(ctx context.Context) (domain.Result, error) {
	return s.odds.Odds(ctx)
}

// Ratings relays the adjusted-ratings lookup and counts a successful relay.
func (s *Service) Ratings(ctx context.Context, season string) (domain.Result, error) {
	res, err := s.stats.Ratings(ctx, s.seasonOrDefault(season))
	if err != nil {
		return domain.Result{}, err
	}
	s.countIfOK("ratings", res)
	return res, nil
}

// Games relays the games lookup and counts a successful relay.
func (s *Service) Games(ctx context.Context, season string) (domain.Result, error) {
	res, err := s.stats.Games(ctx, s.seasonOrDefault(season))
	if err != nil {
		return domain.Result{}, err
	}
	s.countIfOK("games", res)
	return res, nil
}

// Teams relays the teams lookup and counts a successful relay.
func (s *Service) Teams(ctx context.Context) (domain.Result, error) {
	res, err := s.stats.Teams(ctx)
	if err != nil {
		return domain.Result{}, err
	}
	s.countIfOK("teams", res)
	return res, nil
}

func (s *Service) seasonOrDefault(season string) string {
	if season == "" {
		return s.season
	}
	return season
}

// countIfOK increments the ledger only on an HTTP 200 relay. Upstream
// failures are forwarded to the caller without consuming quota.
func (s *Service) countIfOK(resource string, res domain.Result) {
	if !res.OK() {
		return
	}
	snap := s.recorder.Increment()
	metrics.QuotaConsumedTotal.WithLabelValues(resource).Inc()
	s.logger.Info("upstream call counted",
		zap.String("resource", resource),
		zap.Int("today", snap.Today),
		zap.Int("daily_limit", snap.DailyLimit),
	)
}
