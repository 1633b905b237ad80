package handlers

import (
	"jobscout-bot/internal/config"
	"jobscout-bot/internal/scheduler"
	"jobscout-bot/internal/storage/postgres"
	"jobscout-bot/internal/storage/redis"

	"go.uber.org/zap"
)

// Context contains deps for all handlers
type Context struct {
	Store   *postgres.Store
	Cache   *redis.Cache
	Sweeper *scheduler.Sweeper
	Config  *config.Config
	Logger  *zap.Logger
}
