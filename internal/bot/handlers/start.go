package handlers

import (
	"context"
	"time"

	"jobscout-bot/internal/profile"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// /start command
func HandleStart(ctx *Context) tele.HandlerFunc {
	return func(c tele.Context) error {
		userID := c.Sender().ID

		ctx.Logger.Info("user started bot",
			zap.Int64("user_id", userID),
			zap.String("username", c.Sender().Username),
		)

		dbCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		prof, err := ctx.Store.GetProfile(dbCtx, userID)
		if err != nil {
			ctx.Logger.Error("get profile failed", zap.Int64("user_id", userID), zap.Error(err))
			return c.Send("😔 Something went wrong. Please try again later.")
		}

		if prof == nil {
			prof = &profile.Profile{
				UserID: userID,
				State:  profile.StateAwaitingCV,
			}
			if err := ctx.Store.SaveProfile(dbCtx, prof); err != nil {
				ctx.Logger.Error("failed to create profile", zap.Int64("user_id", userID), zap.Error(err))
				return c.Send("😔 Something went wrong. Please try again later.")
			}
			ctx.Logger.Info("new profile created", zap.Int64("user_id", userID))
		}

		cacheState(ctx, userID, prof.State)

		if prof.State == profile.StateActive {
			return c.Send(
				"👋 Welcome back!\n\n" +
					"You are all set — I am watching job boards for you.\n" +
					"Upload a new CV any time to refresh your profile, or use /status.",
			)
		}

		return c.Send(
			"👋 Welcome!\n\n" +
				"Step 1️⃣: Upload your CV (PDF or plain text).",
		)
	}
}

func cacheState(ctx *Context, userID int64, state profile.State) {
	cctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := ctx.Cache.SetOnboardingState(cctx, userID, string(state)); err != nil {
		ctx.Logger.Warn("failed to cache onboarding state",
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
	}
}
