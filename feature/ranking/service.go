package ranking

import (
	"context"
	"errors"
	"time"

	"roundest/core/cache"
	"roundest/core/metrics"

	"go.uber.org/zap"
)

// Service exposes the three ranking operations: pair sampling, vote
// recording and the leaderboard.
type Service struct {
	repo    *Repository
	logger  *zap.Logger
	metrics *metrics.Manager

	items  *cache.Snapshot[[]Pokemon]
	ranked *cache.Snapshot[[]Pokemon]
}

// NewService creates a ranking service. m may be nil.
func NewService(repo *Repository, logger *zap.Logger, m *metrics.Manager, cfg Config) *Service {
	s := &Service{
		repo:    repo,
		logger:  logger,
		metrics: m,
	}
	s.items = cache.NewSnapshot(cfg.CacheTTL(), s.loadItems)
	s.ranked = cache.NewSnapshot(cfg.CacheTTL(), s.loadRanked)
	return s
}

func (s *Service) loadItems(ctx context.Context) ([]Pokemon, error) {
	items, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	s.metrics.RecordSnapshot(len(items))
	return items, nil
}

func (s *Service) loadRanked(ctx context.Context) ([]Pokemon, error) {
	return s.repo.ListRanked(ctx)
}

// GetPair returns two distinct items chosen by a seeded shuffle of the full
// item set. The same seed over the same items always yields the same pair.
func (s *Service) GetPair(ctx context.Context, seed float64) (Pokemon, Pokemon, error) {
	items, err := s.items.Get(ctx)
	if err != nil {
		s.metrics.RecordPairFailure("storage")
		return Pokemon{}, Pokemon{}, err
	}

	a, b, err := PickPair(items, seed)
	if err != nil {
		s.metrics.RecordPairFailure(reason(err))
		return Pokemon{}, Pokemon{}, err
	}

	s.metrics.RecordPair()
	return a, b, nil
}

// RecordVote applies one comparison outcome. It either commits both rating
// updates and the vote record, or nothing.
func (s *Service) RecordVote(ctx context.Context, winnerID, loserID uint) error {
	start := time.Now()

	out, err := s.repo.ApplyVote(ctx, winnerID, loserID)
	if err != nil {
		s.metrics.RecordVoteFailure(reason(err))
		return err
	}

	s.items.Invalidate()
	s.ranked.Invalidate()
	s.metrics.RecordVote(time.Since(start))

	s.logger.Debug("Vote recorded",
		zap.Uint("vote_id", out.VoteID),
		zap.Uint("winner_id", out.WinnerID),
		zap.Uint("loser_id", out.LoserID),
		zap.Float64("winner_before", out.WinnerBefore),
		zap.Float64("loser_before", out.LoserBefore),
		zap.Float64("delta", out.WinnerDelta),
	)
	return nil
}

// ListRanked returns all items ordered by rating, highest first.
func (s *Service) ListRanked(ctx context.Context) ([]Pokemon, error) {
	items, err := s.ranked.Get(ctx)
	if err != nil {
		return nil, err
	}
	s.metrics.RecordLeaderboardRead()
	return items, nil
}

// Get looks up a single item by id, bypassing the snapshot.
func (s *Service) Get(ctx context.Context, id uint) (*Pokemon, error) {
	return s.repo.Get(ctx, id)
}

// GetBySlug looks up a single item.
func (s *Service) GetBySlug(ctx context.Context, slug string) (*Pokemon, error) {
	return s.repo.GetBySlug(ctx, slug)
}

// AddItems inserts catalog entries at the initial rating and invalidates the
// snapshots when anything was inserted.
func (s *Service) AddItems(ctx context.Context, items []NewItem) (int, error) {
	n, err := s.repo.AddItems(ctx, items)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		s.items.Invalidate()
		s.ranked.Invalidate()
	}
	s.metrics.RecordSeeded(n)
	return n, nil
}

func reason(err error) string {
	switch {
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrSameItem):
		return "same_item"
	case errors.Is(err, ErrInsufficientData):
		return "insufficient_data"
	case errors.Is(err, ErrInvalidSeed):
		return "invalid_seed"
	default:
		return "storage"
	}
}
