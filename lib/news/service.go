package news

import (
	"time"

	"github.com/VictoriaMetrics/metrics"
	"github.com/edicola-dev/edicola/lib/store"
	"github.com/lni/dragonboat/v4/logger"
)

var log = logger.GetLogger("news")

// hot-path counters, exported on the daemon's /metrics endpoint
var (
	metricSubmissionsCreated = metrics.NewCounter(`edicola_submissions_total{op="create"}`)
	metricSubmissionsEdited  = metrics.NewCounter(`edicola_submissions_total{op="update"}`)
	metricSubmissionsDeleted = metrics.NewCounter(`edicola_submissions_total{op="destroy"}`)
	metricVotesAccepted      = metrics.NewCounter(`edicola_votes_total{result="accepted"}`)
	metricVotesRejected      = metrics.NewCounter(`edicola_votes_total{result="rejected"}`)
	metricListingReads       = metrics.NewCounter(`edicola_listing_reads_total`)
	metricRankRefreshes      = metrics.NewCounter(`edicola_rank_refreshes_total`)
)

// Service is the ranking and voting engine's orchestrator and the only type
// callers interact with. It composes the vote ledgers, the karma ledger, the
// score/rank calculators, the index maintainer and the repost guard over a
// single store handle.
//
// Thread-safety: a Service holds no mutable state of its own, all methods
// can be called concurrently.
type Service struct {
	store store.IStore
	cfg   Config
	now   func() time.Time
}

// NewService creates a Service on top of the given store. The time source
// is injectable so that rank decay and the repost window can be tested
// without waiting on the wall clock; pass nil for time.Now.
func NewService(st store.IStore, cfg Config, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{
		store: st,
		cfg:   cfg,
		now:   now,
	}
}

// Config returns the engine's configuration
func (s *Service) Config() Config {
	return s.cfg
}
