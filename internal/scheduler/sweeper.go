// Package scheduler drives discovery on a timer: every interval it
// sweeps all active users, and onboarding completion triggers one
// immediate run. Runs for the same user never overlap; runs for
// different users may.
package scheduler

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"jobscout-bot/internal/discovery"
	"jobscout-bot/internal/notify"
)

// maxConcurrentUsers bounds how many user runs one sweep executes at a
// time.
const maxConcurrentUsers = 4

// runTimeout bounds one user's discovery plus delivery.
const runTimeout = 2 * time.Minute

// ActiveLister yields the users eligible for the timer sweep.
type ActiveLister interface {
	ActiveUsers(ctx context.Context) ([]int64, error)
}

type Sweeper struct {
	cron     *cron.Cron
	store    ActiveLister
	engine   *discovery.Engine
	notifier notify.Notifier
	group    singleflight.Group
	interval time.Duration
	logger   *zap.Logger
}

func New(store ActiveLister, engine *discovery.Engine, notifier notify.Notifier, interval time.Duration, logger *zap.Logger) *Sweeper {
	return &Sweeper{
		cron:     cron.New(),
		store:    store,
		engine:   engine,
		notifier: notifier,
		interval: interval,
		logger:   logger,
	}
}

// Start registers the periodic sweep and runs one immediately so new
// deployments do not wait a full interval.
func (s *Sweeper) Start(ctx context.Context) error {
	spec := fmt.Sprintf("@every %s", s.interval)

	_, err := s.cron.AddFunc(spec, func() {
		s.sweep(ctx)
	})
	if err != nil {
		return fmt.Errorf("register sweep: %w", err)
	}

	s.cron.Start()
	s.logger.Info("sweeper started", zap.Duration("interval", s.interval))

	go s.sweep(ctx)

	return nil
}

func (s *Sweeper) Stop() {
	s.cron.Stop()
	s.logger.Info("sweeper stopped")
}

func (s *Sweeper) sweep(ctx context.Context) {
	dbCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	users, err := s.store.ActiveUsers(dbCtx)
	cancel()
	if err != nil {
		s.logger.Error("failed to list active users", zap.Error(err))
		return
	}

	if len(users) == 0 {
		s.logger.Debug("no active users to sweep")
		return
	}

	s.logger.Info("sweep started", zap.Int("users", len(users)))

	var g errgroup.Group
	g.SetLimit(maxConcurrentUsers)

	for _, userID := range users {
		userID := userID
		g.Go(func() error {
			s.RunUser(ctx, userID)
			return nil
		})
	}
	_ = g.Wait()

	s.logger.Info("sweep finished", zap.Int("users", len(users)))
}

// RunNow triggers one immediate discovery run for a user, used when
// onboarding completes. Non-blocking.
func (s *Sweeper) RunNow(userID int64) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
		defer cancel()
		s.RunUser(ctx, userID)
	}()
}

// RunUser executes one discovery run and delivers its matches. The
// singleflight group serializes runs per user: a trigger arriving while
// a run is in flight joins that run instead of starting another.
func (s *Sweeper) RunUser(ctx context.Context, userID int64) {
	key := strconv.FormatInt(userID, 10)

	_, err, shared := s.group.Do(key, func() (interface{}, error) {
		runCtx, cancel := context.WithTimeout(ctx, runTimeout)
		defer cancel()

		matches, err := s.engine.Discover(runCtx, userID)
		if err != nil {
			return nil, err
		}

		if matches.Total() == 0 {
			// nothing relevant this cycle; stay silent
			return nil, nil
		}

		return nil, s.notifier.Deliver(runCtx, userID, matches)
	})

	if shared {
		s.logger.Debug("joined in-flight run", zap.Int64("user_id", userID))
	}
	if err != nil {
		s.logger.Error("discovery run failed",
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
	}
}
