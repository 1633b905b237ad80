package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"jobscout-bot/internal/bot"
	"jobscout-bot/internal/config"
	"jobscout-bot/internal/discovery"
	"jobscout-bot/internal/logger"
	"jobscout-bot/internal/notify"
	"jobscout-bot/internal/scheduler"
	"jobscout-bot/internal/score"
	"jobscout-bot/internal/sources"
	"jobscout-bot/internal/storage/postgres"
	"jobscout-bot/internal/storage/redis"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	log.Info("starting JobScout bot",
		zap.String("log_level", cfg.LogLevel),
		zap.Duration("sweep_interval", cfg.SweepInterval),
	)

	log.Info("connecting to PostgreSQL...")
	store, err := postgres.New(cfg.PostgresDSN, log)
	if err != nil {
		log.Fatal("failed to connect to PostgreSQL", zap.Error(err))
	}
	defer store.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := store.EnsureSchema(ctx); err != nil {
		log.Fatal("failed to ensure schema", zap.Error(err))
	}

	log.Info("PostgreSQL connected successfully")

	log.Info("connecting to Redis...")
	cache, err := redis.New(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, log)
	if err != nil {
		log.Fatal("failed to connect to Redis", zap.Error(err))
	}
	defer cache.Close()

	log.Info("Redis connected successfully")

	weights, err := score.Load(cfg.ScoringRulesPath)
	if err != nil {
		log.Fatal("failed to load scoring rules", zap.Error(err))
	}

	limiter := sources.NewHostLimiter(1.0, 2)

	var srcs []sources.Source
	if len(cfg.GreenhouseBoards) > 0 {
		srcs = append(srcs, sources.NewGreenhouse(cfg.GreenhouseBoards, cfg.LocationsAllow, cfg.SourceTimeout, limiter, log))
	}
	if len(cfg.LeverOrgs) > 0 {
		srcs = append(srcs, sources.NewLever(cfg.LeverOrgs, cfg.LocationsAllow, cfg.SourceTimeout, limiter, log))
	}
	if cfg.AdzunaAppID != "" {
		srcs = append(srcs, sources.NewAdzuna(cfg.AdzunaAppID, cfg.AdzunaAppKey, cfg.AdzunaCountry, cfg.AdzunaWhat, cfg.LocationsAllow, cfg.SourceTimeout, limiter, log))
	}
	log.Info("job sources configured", zap.Int("count", len(srcs)))

	engine := discovery.NewEngine(store, store, srcs, weights, cfg.SourceTimeout, cfg.MaxMatchesPerRun, log)

	log.Info("initializing Telegram bot...")
	tgBot, err := bot.New(cfg, store, cache, log)
	if err != nil {
		log.Fatal("failed to create bot", zap.Error(err))
	}

	notifier := notify.NewTelegram(tgBot.GetBot(), log)

	sweeper := scheduler.New(store, engine, notifier, cfg.SweepInterval, log)
	tgBot.AttachSweeper(sweeper)

	log.Info("Telegram bot initialized successfully")

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		sig := <-sigChan
		log.Info("received shutdown signal", zap.String("signal", sig.String()))
		cancel()
	}()

	log.Info("starting discovery sweeper...")
	if err := sweeper.Start(ctx); err != nil {
		log.Fatal("failed to start sweeper", zap.Error(err))
	}
	defer sweeper.Stop()

	log.Info("bot is running...")
	log.Info("press Ctrl+C to stop")

	if err := tgBot.Start(ctx); err != nil {
		log.Error("bot stopped with error", zap.Error(err))
	}

	log.Info("shutting down gracefully...")

	log.Info("bot stopped")
}
