package relay

import (
	"context"

	"github.com/courtside-cloud/hooprelay/internal/domain"
	domusage "github.com/courtside-cloud/hooprelay/internal/domain/usage"
)

// OddsProvider fetches betting lines from the odds upstream.
type OddsProvider interface {
	Odds(ctx context.Context) (domain.Result, error)
}

// StatsProvider fetches team and game data from the statistics upstream.
type StatsProvider interface {
	Ratings(ctx context.Context, season string) (domain.Result, error)
	Games(ctx context.Context, season string) (domain.Result, error)
	Teams(ctx context.Context) (domain.Result, error)
}

// UsageRecorder records one quota-counted call and returns the updated view.
type UsageRecorder interface {
	Increment() domusage.Snapshot
}
