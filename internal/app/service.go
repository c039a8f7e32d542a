// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	jobqueue "github.com/benchboss/tradewinds/internal/adapters/mq/queue"
	workerpool "github.com/benchboss/tradewinds/internal/adapters/mq/worker"
	repository "github.com/benchboss/tradewinds/internal/adapters/repository"
	"github.com/benchboss/tradewinds/internal/config"
	"github.com/benchboss/tradewinds/internal/domain/category"
	"github.com/benchboss/tradewinds/internal/domain/keeper"
	"github.com/benchboss/tradewinds/internal/domain/model"
	"github.com/benchboss/tradewinds/internal/domain/profile"
	"github.com/benchboss/tradewinds/internal/domain/trade"
	"github.com/benchboss/tradewinds/internal/domain/valuation"
	"github.com/benchboss/tradewinds/internal/narrative"
	"github.com/benchboss/tradewinds/pkg/logger"
	"github.com/benchboss/tradewinds/pkg/metrics"
)

// analyzeTimeout bounds the fan-out collection for one analysis run.
const analyzeTimeout = 30 * time.Second

// Service implements the API dependencies for the trade-recommendation
// engine. It owns the long-lived pieces (store, queue, worker pool, rule
// engines); everything snapshot-scoped is rebuilt inside Analyze.
type Service struct {
	mu sync.RWMutex

	cfg *config.Config

	store       repository.Store
	jobQueue    jobqueue.Queue
	workerPool  *workerpool.Pool
	tradeEngine *trade.Engine
	keeperRules *keeper.Rules
	profiles    *profile.Builder

	workerCount int
	queueSize   int

	started bool
	logger  logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithWorkerCount sets the number of partner-search workers.
func WithWorkerCount(count int) Option {
	return func(s *Service) {
		if count > 0 {
			s.workerCount = count
		}
	}
}

// WithQueueSize sets the capacity of the partner-search job queue.
func WithQueueSize(size int) Option {
	return func(s *Service) {
		if size > 0 {
			s.queueSize = size
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithStore sets a custom analysis store.
func WithStore(store repository.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.store = store
		}
	}
}

// New constructs a Service around the given configuration.
func New(cfg *config.Config, opts ...Option) *Service {
	if cfg == nil {
		cfg = config.New()
	}
	s := &Service{
		cfg:         cfg,
		workerCount: cfg.WorkerCount,
		queueSize:   cfg.JobQueueSize,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start initializes and starts the service components.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	if s.logger == nil {
		s.logger = logger.Get().Named("service")
	}
	s.logger.Info(ctx, "starting trade engine service...")

	if s.store == nil {
		s.store = repository.NewMemStore()
	}
	s.keeperRules = keeper.NewRules(s.cfg.Keeper)
	s.profiles = profile.NewBuilder(s.cfg.Profile)
	s.tradeEngine = trade.NewEngine(s.cfg.Trade, s.cfg.Confidence, s.cfg.RosterMinimums, s.cfg.Keeper.MaxRound)

	s.jobQueue = jobqueue.NewInMemoryQueue(
		jobqueue.WithCapacity(s.queueSize),
	)
	s.workerPool = workerpool.NewPool(s.workerCount, s.jobQueue, s.tradeEngine)
	s.workerPool.Start(ctx)

	s.started = true
	s.logger.Info(ctx, "trade engine service started",
		logger.Int("workers", s.workerCount),
		logger.Int("queueSize", s.queueSize),
	)
	return nil
}

// Stop gracefully shuts down the service.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}

	ctx := context.Background()
	s.logger.Info(ctx, "stopping trade engine service...")

	if s.jobQueue != nil {
		_ = s.jobQueue.Close()
	}
	if s.workerPool != nil {
		s.workerPool.Stop()
	}

	s.started = false
	s.logger.Info(ctx, "trade engine service stopped")
}

// Analyze runs the full pipeline over one league snapshot for a target
// team: normalize labels, value players and picks, resolve keeper
// contracts, build profiles, fan partner searches out to the worker pool,
// and reduce the results into a ranked suggestion list. The result is
// stored and returned; an empty suggestion list carries a reason code.
func (s *Service) Analyze(ctx context.Context, snapshot *model.LeagueSnapshot, target string) (*model.AnalysisResult, error) {
	s.mu.RLock()
	started := s.started
	s.mu.RUnlock()
	if !started {
		return nil, fmt.Errorf("analyze: service not started")
	}
	if snapshot == nil || len(snapshot.Teams) == 0 {
		return s.emptyResult(ctx, target, model.ReasonUnknownTeam)
	}

	startedAt := time.Now()

	s.normalizeSnapshot(ctx, snapshot)

	valued := time.Now()
	engine := valuation.NewEngine(s.cfg.Valuation, allPlayers(snapshot))
	count := engine.ValueAll(snapshot)
	metrics.RecordPlayersValued(count, float64(time.Since(valued).Milliseconds()))

	pickValues := engine.PickValues(snapshot, s.cfg.Keeper.MaxRound)
	s.resolveKeepers(snapshot, pickValues)

	targetTeam := snapshot.Team(target)
	if targetTeam == nil {
		return s.emptyResult(ctx, target, model.ReasonUnknownTeam)
	}
	if len(snapshot.Teams) < 2 {
		return s.emptyResult(ctx, target, model.ReasonNoPartners)
	}

	contexts, err := s.buildProfiles(ctx, snapshot)
	if err != nil {
		return nil, err
	}
	targetCtx, ok := contexts[target]
	if !ok {
		return s.emptyResult(ctx, target, model.ReasonProfileIncomplete)
	}

	candidates := s.searchPartners(ctx, targetCtx, contexts)

	ranked := s.tradeEngine.Rank(candidates)
	result := &model.AnalysisResult{
		Target:      target,
		GeneratedAt: time.Now().UTC(),
		Suggestions: ranked,
	}
	if len(ranked) == 0 {
		result.Reason = model.ReasonNoFairCandidates
		metrics.RecordEmptyResult(result.Reason)
	}

	if err := s.store.PutAnalysis(ctx, result); err != nil {
		return nil, fmt.Errorf("analyze %s: %w", target, err)
	}

	metrics.RecordAnalysis(float64(time.Since(startedAt).Milliseconds()))
	metrics.RecordSuggestions(len(ranked))
	s.logger.Info(ctx, "analysis complete",
		logger.String("target", target),
		logger.Int("players", count),
		logger.Int("suggestions", len(ranked)),
	)
	return result, nil
}

// normalizeSnapshot resolves provider stat labels to catalog ids for every
// player. Unknown labels are logged once and dropped.
func (s *Service) normalizeSnapshot(ctx context.Context, snapshot *model.LeagueSnapshot) {
	cache := category.NewCache()
	for _, team := range snapshot.Teams {
		for _, p := range team.Roster {
			if len(p.RawStats) > 0 {
				p.Stats = s.normalizeStats(ctx, p.RawStats, cache)
			} else if p.Stats == nil {
				p.Stats = map[category.ID]float64{}
			}
			if len(p.RawPriorStats) > 0 {
				p.PriorStats = s.normalizeStats(ctx, p.RawPriorStats, cache)
			}
		}
	}
}

func (s *Service) normalizeStats(ctx context.Context, raw map[string]float64, cache category.Cache) map[category.ID]float64 {
	// Aliased labels sum in sorted label order so the floating-point
	// result never depends on map iteration.
	labels := make([]string, 0, len(raw))
	for label := range raw {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	out := make(map[category.ID]float64, len(raw))
	for _, label := range labels {
		id, ok := category.Normalize(label, cache)
		if !ok {
			s.logger.Debug(ctx, "dropping unknown stat label",
				logger.String("label", label),
			)
			continue
		}
		out[id] += raw[label]
	}
	return out
}

// resolveKeepers recomputes every keeper contract against the freshly
// valued snapshot: round occupancy, remaining control, contract bonus, and
// the expiration penalty on the player's effective value.
func (s *Service) resolveKeepers(snapshot *model.LeagueSnapshot, pickValues map[int]float64) {
	for _, team := range snapshot.Teams {
		for _, p := range team.Roster {
			k := p.Keeper
			if k == nil || !k.IsKeeper {
				continue
			}
			k.YearsRemaining = s.keeperRules.YearsRemaining(k.YearIndex)

			round, ok := s.keeperRules.ResolveRound(k.OriginalRound, team.OwnedRounds)
			if !ok {
				k.RoundCost = 0
				k.Bonus = 0
				continue
			}
			k.RoundCost = round
			k.Bonus = s.keeperRules.Bonus(true, p.Value, pickValues[k.OriginalRound], k.YearsRemaining)
			p.Value = s.keeperRules.ApplyExpirationPenalty(p.Value, k.YearsRemaining)
		}
	}
}

// buildProfiles produces a TeamContext per team and stores each profile.
// Teams whose profile cannot be built are skipped; if the target is among
// them the caller reports the profile_incomplete reason.
func (s *Service) buildProfiles(ctx context.Context, snapshot *model.LeagueSnapshot) (map[string]*trade.TeamContext, error) {
	teamStats := make([][]map[category.ID]float64, 0, len(snapshot.Teams))
	for _, team := range snapshot.Teams {
		roster := make([]map[category.ID]float64, 0, len(team.Roster))
		for _, p := range team.Roster {
			roster = append(roster, p.Stats)
		}
		teamStats = append(teamStats, roster)
	}
	teamDists := category.ComputeTeamDistributions(teamStats)

	contexts := make(map[string]*trade.TeamContext, len(snapshot.Teams))
	for _, team := range snapshot.Teams {
		prof, err := s.profiles.Build(team, snapshot, teamDists, s.keeperRules.EliteValue())
		if err != nil {
			s.logger.Warn(ctx, "skipping team with incomplete profile",
				logger.String("team", team.Name),
				logger.Error(err),
			)
			continue
		}
		if err := s.store.PutProfile(ctx, prof); err != nil {
			return nil, fmt.Errorf("store profile for %s: %w", team.Name, err)
		}
		contexts[team.Name] = &trade.TeamContext{Team: team, Profile: prof}
	}
	return contexts, nil
}

// searchPartners fans one job per partner out to the worker pool and
// collects every partner-local result. Jobs that cannot be enqueued run
// inline so the reduction always sees all partners. Collection order does
// not matter; the rank step is order-independent.
func (s *Service) searchPartners(ctx context.Context, target *trade.TeamContext, contexts map[string]*trade.TeamContext) []model.TradeCandidate {
	partners := make([]*trade.TeamContext, 0, len(contexts)-1)
	for name, tc := range contexts {
		if name != target.Team.Name {
			partners = append(partners, tc)
		}
	}
	if len(partners) == 0 {
		return nil
	}

	results := make(chan trade.PartnerResult, len(partners))
	for _, partner := range partners {
		job := trade.PartnerJob{Target: target, Partner: partner, Results: results}
		if !s.jobQueue.Enqueue(ctx, job) {
			// Queue full or closed; search inline rather than dropping
			// the partner.
			candidates, err := s.tradeEngine.SearchPartner(target, partner)
			results <- trade.PartnerResult{Partner: partner.Team.Name, Candidates: candidates, Err: err}
		}
	}

	deadline, cancel := context.WithTimeout(ctx, analyzeTimeout)
	defer cancel()

	var all []model.TradeCandidate
	for collected := 0; collected < len(partners); collected++ {
		select {
		case r := <-results:
			if r.Err != nil {
				s.logger.Warn(ctx, "partner search failed",
					logger.String("partner", r.Partner),
					logger.Error(r.Err),
				)
				continue
			}
			all = append(all, r.Candidates...)
		case <-deadline.Done():
			s.logger.Error(ctx, "partner search collection timed out",
				logger.Int("collected", collected),
				logger.Int("expected", len(partners)),
			)
			return all
		}
	}
	return all
}

func (s *Service) emptyResult(ctx context.Context, target, reason string) (*model.AnalysisResult, error) {
	metrics.RecordEmptyResult(reason)
	result := &model.AnalysisResult{
		Target:      target,
		GeneratedAt: time.Now().UTC(),
		Suggestions: []model.TradeCandidate{},
		Reason:      reason,
	}
	if target != "" {
		if err := s.store.PutAnalysis(ctx, result); err != nil {
			return nil, fmt.Errorf("analyze %s: %w", target, err)
		}
	}
	return result, nil
}

// Suggestions returns the stored analysis for a team.
func (s *Service) Suggestions(ctx context.Context, team string) (*model.AnalysisResult, error) {
	return s.store.Analysis(ctx, team)
}

// Profile returns the stored profile for a team.
func (s *Service) Profile(ctx context.Context, team string) (*model.TeamProfile, error) {
	return s.store.Profile(ctx, team)
}

// CheckNarrative verifies the numeric position claims in a write-up
// against the team's stored profile.
func (s *Service) CheckNarrative(ctx context.Context, team, text string) ([]narrative.Claim, error) {
	prof, err := s.store.Profile(ctx, team)
	if err != nil {
		return nil, err
	}
	return narrative.Check(text, prof), nil
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ctx := context.Background()
	stats := map[string]interface{}{
		"started":     s.started,
		"workerCount": s.workerCount,
		"queueSize":   s.queueSize,
	}
	if s.started {
		queueLen := s.jobQueue.Len(ctx)
		stats["queueLength"] = queueLen
		stats["profiledTeams"] = s.store.Count(ctx)

		metrics.UpdateQueueSize(queueLen)
		metrics.UpdateWorkerCount(s.workerCount)
	}
	return stats
}

func allPlayers(snapshot *model.LeagueSnapshot) []*model.Player {
	var players []*model.Player
	for _, team := range snapshot.Teams {
		for _, p := range team.Roster {
			players = append(players, p)
		}
	}
	return players
}
