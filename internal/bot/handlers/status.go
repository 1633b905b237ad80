package handlers

import (
	"context"
	"fmt"
	"strings"
	"time"

	"jobscout-bot/internal/bot/utils"
	"jobscout-bot/internal/notify"
	"jobscout-bot/internal/profile"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// /status command
func HandleStatus(ctx *Context) tele.HandlerFunc {
	return func(c tele.Context) error {
		userID := c.Sender().ID

		dbCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		prof, err := ctx.Store.GetProfile(dbCtx, userID)
		if err != nil {
			ctx.Logger.Error("failed to get profile",
				zap.Int64("user_id", userID),
				zap.Error(err),
			)
			return c.Send("😔 Could not load your profile")
		}
		if prof == nil {
			return c.Send("You don't have a profile yet. Use /start to create one.")
		}

		seen, err := ctx.Store.SeenCount(dbCtx, userID)
		if err != nil {
			ctx.Logger.Error("failed to count seen postings", zap.Error(err))
			seen = 0
		}

		return c.Send(formatStatusMessage(prof, seen), tele.ModeMarkdownV2)
	}
}

func formatStatusMessage(prof *profile.Profile, seen int) string {
	var b strings.Builder

	b.WriteString("*📊 Your profile*\n\n")
	b.WriteString(fmt.Sprintf("State: %s\n", notify.EscapeMarkdown(string(prof.State))))

	if len(prof.RoleKeywords) > 0 {
		b.WriteString(fmt.Sprintf("Roles: %s\n", notify.EscapeMarkdown(strings.Join(prof.RoleKeywords, ", "))))
	}
	if prof.YearsExperience > 0 {
		b.WriteString(fmt.Sprintf("Experience: %d years\n", prof.YearsExperience))
	}
	if prof.WorkMode != "" {
		b.WriteString(fmt.Sprintf("Work mode: %s\n", notify.EscapeMarkdown(string(prof.WorkMode))))
	}
	if prof.Location != "" {
		b.WriteString(fmt.Sprintf("Location: %s\n", notify.EscapeMarkdown(prof.Location)))
	}
	if prof.CompBand != "" {
		b.WriteString(fmt.Sprintf("Compensation band: %s\n", notify.EscapeMarkdown(string(prof.CompBand))))
	}
	b.WriteString(fmt.Sprintf("Skills on file: %d\n", len(prof.Skills)))
	b.WriteString(fmt.Sprintf("\nPostings reviewed so far: %d", seen))

	return b.String()
}

// /band command
func HandleBand(ctx *Context) tele.HandlerFunc {
	return func(c tele.Context) error {
		return c.Send(
			"💰 Pick your compensation band (LPA):",
			utils.CompBandKeyboard(),
		)
	}
}

// /run command: trigger a discovery sweep for this user right away
// instead of waiting for the next timer tick.
func HandleRun(ctx *Context) tele.HandlerFunc {
	return func(c tele.Context) error {
		userID := c.Sender().ID

		dbCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		prof, err := ctx.Store.GetProfile(dbCtx, userID)
		if err != nil {
			ctx.Logger.Error("failed to get profile", zap.Int64("user_id", userID), zap.Error(err))
			return c.Send("😔 Something went wrong. Please try again later.")
		}
		if prof == nil || prof.State != profile.StateActive {
			return c.Send("Finish onboarding first — use /start.")
		}

		ctx.Sweeper.RunNow(userID)
		return c.Send("🔍 Looking for fresh postings, I'll message you if anything scores well.")
	}
}
