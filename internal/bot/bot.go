package bot

import (
	"context"
	"fmt"
	"time"

	"jobscout-bot/internal/bot/handlers"
	"jobscout-bot/internal/bot/middleware"
	"jobscout-bot/internal/config"
	"jobscout-bot/internal/scheduler"
	"jobscout-bot/internal/storage/postgres"
	"jobscout-bot/internal/storage/redis"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Bot represents Telegram bot
type Bot struct {
	bot     *tele.Bot
	store   *postgres.Store
	cache   *redis.Cache
	sweeper *scheduler.Sweeper
	config  *config.Config
	logger  *zap.Logger
}

func New(
	cfg *config.Config,
	store *postgres.Store,
	cache *redis.Cache,
	logger *zap.Logger,
) (*Bot, error) {
	pref := tele.Settings{
		Token:  cfg.TelegramToken,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
	}

	b, err := tele.NewBot(pref)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot: %w", err)
	}

	bot := &Bot{
		bot:    b,
		store:  store,
		cache:  cache,
		config: cfg,
		logger: logger,
	}

	bot.setupMiddleware()

	logger.Info("bot initialized successfully")

	return bot, nil
}

// AttachSweeper wires the discovery sweeper and registers handlers.
// The sweeper needs the underlying telegram client for delivery, so
// it is built after the bot and attached here.
func (b *Bot) AttachSweeper(sw *scheduler.Sweeper) {
	b.sweeper = sw
	b.registerHandlers()
}

func (b *Bot) setupMiddleware() {
	b.bot.Use(middleware.Recovery(b.logger))

	b.bot.Use(middleware.Logger(b.logger))

	b.bot.Use(middleware.RateLimit(b.cache, b.logger))
}

func (b *Bot) registerHandlers() {
	ctx := &handlers.Context{
		Store:   b.store,
		Cache:   b.cache,
		Sweeper: b.sweeper,
		Config:  b.config,
		Logger:  b.logger,
	}

	b.bot.Handle("/start", handlers.HandleStart(ctx))
	b.bot.Handle("/help", handlers.HandleHelp(ctx))
	b.bot.Handle("/status", handlers.HandleStatus(ctx))
	b.bot.Handle("/band", handlers.HandleBand(ctx))
	b.bot.Handle("/run", handlers.HandleRun(ctx))

	b.bot.Handle(tele.OnDocument, handlers.HandleDocument(ctx))

	b.bot.Handle(tele.OnText, handlers.HandleText(ctx))

	b.logger.Info("handlers registered")
}

func (b *Bot) Start(ctx context.Context) error {
	b.logger.Info("starting bot...")

	go b.bot.Start()

	<-ctx.Done()

	b.logger.Info("stopping bot...")
	b.bot.Stop()

	return nil
}

func (b *Bot) Stop() {
	b.logger.Info("bot stopped")
	b.bot.Stop()
}

func (b *Bot) GetBot() *tele.Bot {
	return b.bot
}
