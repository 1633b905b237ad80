package notify

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"

	"jobscout-bot/internal/models"
)

// Telegram sends tiered matches as Telegram messages: one summary, then
// one message per match with an inline link button.
type Telegram struct {
	bot    *tele.Bot
	logger *zap.Logger
}

func NewTelegram(bot *tele.Bot, logger *zap.Logger) *Telegram {
	return &Telegram{bot: bot, logger: logger}
}

func (t *Telegram) Deliver(ctx context.Context, userID int64, matches models.TieredMatches) error {
	if matches.Total() == 0 {
		return nil
	}

	recipient := &tele.User{ID: userID}

	if _, err := t.bot.Send(recipient, FormatSummary(matches), tele.ModeMarkdownV2); err != nil {
		return fmt.Errorf("send summary: %w", err)
	}

	t.sendTier(ctx, recipient, "🎯 *Strong matches*", matches.Strong)
	t.sendTier(ctx, recipient, "🤔 *Worth a look*", matches.Possible)

	t.logger.Info("matches delivered",
		zap.Int64("user_id", userID),
		zap.Int("strong", len(matches.Strong)),
		zap.Int("possible", len(matches.Possible)),
	)

	return nil
}

func (t *Telegram) sendTier(ctx context.Context, recipient *tele.User, header string, matches []models.Match) {
	if len(matches) == 0 {
		return
	}

	if _, err := t.bot.Send(recipient, header, tele.ModeMarkdownV2); err != nil {
		t.logger.Error("failed to send tier header",
			zap.Int64("user_id", recipient.ID),
			zap.Error(err),
		)
		return
	}

	for i, m := range matches {
		select {
		case <-ctx.Done():
			return
		default:
		}

		message := FormatMatch(m)
		keyboard := postingKeyboard(m.Posting.URL)

		if _, err := t.bot.Send(recipient, message, keyboard, tele.ModeMarkdownV2); err != nil {
			t.logger.Error("failed to send match",
				zap.Int64("user_id", recipient.ID),
				zap.String("title", m.Posting.Title),
				zap.Error(err),
			)
			continue
		}

		if i < len(matches)-1 {
			time.Sleep(500 * time.Millisecond)
		}
	}
}

func postingKeyboard(url string) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	if url == "" {
		return markup
	}
	btn := markup.URL("🔗 Open posting", url)
	markup.Inline(markup.Row(btn))
	return markup
}
