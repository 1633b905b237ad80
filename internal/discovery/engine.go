// Package discovery turns heterogeneous source listings into a
// deduplicated, ranked match stream for one user: fan out across
// sources, score, filter by the seen-set and threshold, commit the
// seen-set delta, return tiered matches.
package discovery

import (
	"context"
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"jobscout-bot/internal/models"
	"jobscout-bot/internal/profile"
	"jobscout-bot/internal/score"
	"jobscout-bot/internal/sources"
)

// ProfileStore loads one user's profile. A missing profile is
// (nil, nil), not an error.
type ProfileStore interface {
	GetProfile(ctx context.Context, userID int64) (*profile.Profile, error)
}

// SeenStore persists per-user delivered-posting hashes. CommitSeen must
// apply the whole delta atomically.
type SeenStore interface {
	LoadSeen(ctx context.Context, userID int64) (map[string]struct{}, error)
	CommitSeen(ctx context.Context, userID int64, delta []models.SeenRecord) error
}

type Engine struct {
	profiles      ProfileStore
	seen          SeenStore
	sources       []sources.Source
	scorer        score.Scorer
	sourceTimeout time.Duration
	maxDelivered  int
	logger        *zap.Logger
}

func NewEngine(
	profiles ProfileStore,
	seen SeenStore,
	srcs []sources.Source,
	weights score.Weights,
	sourceTimeout time.Duration,
	maxDelivered int,
	logger *zap.Logger,
) *Engine {
	return &Engine{
		profiles:      profiles,
		seen:          seen,
		sources:       srcs,
		scorer:        score.Scorer{Weights: weights},
		sourceTimeout: sourceTimeout,
		maxDelivered:  maxDelivered,
		logger:        logger,
	}
}

// Discover runs one discovery cycle for a user. Source failures are
// absorbed; only persistence failures abort the run. A user without a
// profile yields an empty result.
func (e *Engine) Discover(ctx context.Context, userID int64) (models.TieredMatches, error) {
	var empty models.TieredMatches

	prof, err := e.profiles.GetProfile(ctx, userID)
	if err != nil {
		return empty, fmt.Errorf("load profile: %w", err)
	}
	if prof == nil {
		e.logger.Debug("no profile, skipping discovery", zap.Int64("user_id", userID))
		return empty, nil
	}

	seenSet, err := e.seen.LoadSeen(ctx, userID)
	if err != nil {
		return empty, fmt.Errorf("load seen set: %w", err)
	}

	batches := e.fetchAll(ctx, userID)

	type candidate struct {
		match  models.Match
		srcIdx int
	}

	var cands []candidate
	var delta []models.SeenRecord
	inDelta := make(map[string]struct{})
	now := time.Now()

	for i, batch := range batches {
		for _, p := range batch {
			h := SeenHash(p)
			if _, ok := seenSet[h]; ok {
				continue // already delivered, never rescored
			}
			if _, ok := inDelta[h]; ok {
				continue // same posting reachable via two sources
			}

			sc := e.scorer.Score(p, prof)
			if sc < e.scorer.Weights.NotifyMinScore {
				// below threshold: not marked seen, re-evaluated next cycle
				continue
			}

			inDelta[h] = struct{}{}
			delta = append(delta, models.SeenRecord{
				UserID:       userID,
				PostingHash:  h,
				Score:        sc,
				DiscoveredAt: now,
			})
			cands = append(cands, candidate{
				match:  models.Match{Posting: p, Score: sc},
				srcIdx: i,
			})
		}
	}

	// Descending score; ties broken by source order then title so the
	// ranking is identical run to run.
	sort.SliceStable(cands, func(a, b int) bool {
		ca, cb := cands[a], cands[b]
		if ca.match.Score != cb.match.Score {
			return ca.match.Score > cb.match.Score
		}
		if ca.srcIdx != cb.srcIdx {
			return ca.srcIdx < cb.srcIdx
		}
		return ca.match.Posting.Title < cb.match.Posting.Title
	})

	if len(delta) > 0 {
		if err := e.seen.CommitSeen(ctx, userID, delta); err != nil {
			// abort without delivering; nothing was committed
			return empty, fmt.Errorf("commit seen set: %w", err)
		}
	}

	if len(cands) > e.maxDelivered {
		cands = cands[:e.maxDelivered]
	}

	matches := make([]models.Match, len(cands))
	for i, c := range cands {
		matches[i] = c.match
	}

	e.logger.Info("discovery run finished",
		zap.Int64("user_id", userID),
		zap.Int("new_seen", len(delta)),
		zap.Int("delivered", len(matches)),
	)

	return models.PartitionMatches(matches, e.scorer.Weights.StrongMinScore), nil
}

// fetchAll queries every source concurrently, each under its own
// timeout. A failed source contributes an empty batch.
func (e *Engine) fetchAll(ctx context.Context, userID int64) [][]models.Posting {
	batches := make([][]models.Posting, len(e.sources))

	var g errgroup.Group
	for i, src := range e.sources {
		i, src := i, src
		g.Go(func() error {
			sctx, cancel := context.WithTimeout(ctx, e.sourceTimeout)
			defer cancel()

			postings, err := src.List(sctx)
			if err != nil {
				e.logger.Warn("source unavailable",
					zap.String("source", src.Name()),
					zap.Int64("user_id", userID),
					zap.Error(err),
				)
				return nil
			}
			batches[i] = postings
			return nil
		})
	}
	_ = g.Wait()

	total := 0
	for _, b := range batches {
		total += len(b)
	}
	if total == 0 && len(e.sources) > 0 {
		e.logger.Warn("degraded run: no source returned postings",
			zap.Int64("user_id", userID),
		)
	}

	return batches
}
