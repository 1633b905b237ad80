package handlers

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"jobscout-bot/internal/bot/utils"
	"jobscout-bot/internal/profile"
	"jobscout-bot/internal/resume"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// HandleDocument processes a CV upload. A fresh upload re-derives the
// profile fragment; during onboarding it advances the flow to the
// work-mode question.
func HandleDocument(ctx *Context) tele.HandlerFunc {
	return func(c tele.Context) error {
		userID := c.Sender().ID
		doc := c.Message().Document
		if doc == nil {
			return nil
		}

		ctx.Logger.Info("cv uploaded",
			zap.Int64("user_id", userID),
			zap.String("file_name", doc.FileName),
		)

		path := filepath.Join(os.TempDir(), fmt.Sprintf("cv-%d-%s", userID, filepath.Base(doc.FileName)))
		if err := c.Bot().Download(&doc.File, path); err != nil {
			ctx.Logger.Error("failed to download cv",
				zap.Int64("user_id", userID),
				zap.Error(err),
			)
			return c.Send("😔 Could not download the file. Please try again.")
		}
		defer os.Remove(path)

		text, err := resume.ExtractText(path)
		if err != nil {
			ctx.Logger.Warn("cv extraction failed",
				zap.Int64("user_id", userID),
				zap.Error(err),
			)
			// fall through with empty text: parsing is best-effort
		}
		frag := resume.Parse(text)

		dbCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		prof, err := ctx.Store.GetProfile(dbCtx, userID)
		if err != nil {
			ctx.Logger.Error("get profile failed", zap.Int64("user_id", userID), zap.Error(err))
			return c.Send("😔 Something went wrong. Please try again later.")
		}
		if prof == nil {
			// uploaded before /start; create the row on the spot
			prof = &profile.Profile{UserID: userID, State: profile.StateAwaitingCV}
		}

		prof.RoleKeywords = frag.RoleKeywords
		prof.Skills = frag.Skills
		prof.YearsExperience = frag.YearsExperience

		advanced := false
		if prof.State == profile.StateAwaitingCV {
			if err := prof.Advance(profile.StateAwaitingMode); err != nil {
				ctx.Logger.Error("onboarding transition failed", zap.Int64("user_id", userID), zap.Error(err))
				return c.Send("😔 Something went wrong. Please try again later.")
			}
			advanced = true
		}

		if err := ctx.Store.SaveProfile(dbCtx, prof); err != nil {
			ctx.Logger.Error("failed to save profile", zap.Int64("user_id", userID), zap.Error(err))
			return c.Send("😔 Something went wrong. Please try again later.")
		}
		cacheState(ctx, userID, prof.State)

		if advanced {
			return c.Send(
				"✅ CV processed.\n\n"+
					"Step 2️⃣: Preferred work mode?\n"+
					"Type one: Remote / Hybrid / Onsite / All",
				utils.WorkModeKeyboard(),
			)
		}
		return c.Send("✅ CV processed — profile refreshed.")
	}
}

// HandleText routes free-text answers by onboarding state.
func HandleText(ctx *Context) tele.HandlerFunc {
	return func(c tele.Context) error {
		userID := c.Sender().ID
		text := strings.TrimSpace(c.Text())

		state := currentState(ctx, userID)

		switch state {
		case profile.StateAwaitingCV:
			return c.Send("📄 Please upload your CV first (PDF or plain text).")

		case profile.StateAwaitingMode:
			return handleModeAnswer(ctx, c, text)

		case profile.StateAwaitingLocation:
			return handleLocationAnswer(ctx, c, text)

		case profile.StateActive:
			if profile.IsValidCompBand(text) {
				return saveCompBand(ctx, c, text)
			}
			return c.Send("✅ You are all set. Use /status to see your profile, or upload a new CV to refresh it.")

		default:
			return c.Send("Use /start to begin.")
		}
	}
}

func handleModeAnswer(ctx *Context, c tele.Context, text string) error {
	userID := c.Sender().ID

	mode, ok := profile.ParseWorkMode(text)
	if !ok {
		return c.Send(
			"Please pick a work mode:\nRemote / Hybrid / Onsite / All",
			utils.WorkModeKeyboard(),
		)
	}

	dbCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	prof, err := ctx.Store.GetProfile(dbCtx, userID)
	if err != nil || prof == nil {
		ctx.Logger.Error("get profile failed", zap.Int64("user_id", userID), zap.Error(err))
		return c.Send("😔 Something went wrong. Please use /start again.")
	}

	prof.WorkMode = mode
	next := profile.NextAfterMode(mode)
	if err := prof.Advance(next); err != nil {
		ctx.Logger.Error("onboarding transition failed", zap.Int64("user_id", userID), zap.Error(err))
		return c.Send("😔 Something went wrong. Please use /start again.")
	}

	if err := ctx.Store.SaveProfile(dbCtx, prof); err != nil {
		ctx.Logger.Error("failed to save profile", zap.Int64("user_id", userID), zap.Error(err))
		return c.Send("😔 Something went wrong. Please try again later.")
	}
	cacheState(ctx, userID, prof.State)

	if next == profile.StateActive {
		return finishOnboarding(ctx, c)
	}

	return c.Send(
		"Step 3️⃣: Preferred location(s)?\nExample: Bangalore, India",
		utils.RemoveKeyboard(),
	)
}

func handleLocationAnswer(ctx *Context, c tele.Context, text string) error {
	userID := c.Sender().ID

	if text == "" {
		return c.Send("Please send a location, e.g. Bangalore, India")
	}

	dbCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	prof, err := ctx.Store.GetProfile(dbCtx, userID)
	if err != nil || prof == nil {
		ctx.Logger.Error("get profile failed", zap.Int64("user_id", userID), zap.Error(err))
		return c.Send("😔 Something went wrong. Please use /start again.")
	}

	prof.Location = text
	if err := prof.Advance(profile.StateActive); err != nil {
		ctx.Logger.Error("onboarding transition failed", zap.Int64("user_id", userID), zap.Error(err))
		return c.Send("😔 Something went wrong. Please use /start again.")
	}

	if err := ctx.Store.SaveProfile(dbCtx, prof); err != nil {
		ctx.Logger.Error("failed to save profile", zap.Int64("user_id", userID), zap.Error(err))
		return c.Send("😔 Something went wrong. Please try again later.")
	}
	cacheState(ctx, userID, prof.State)

	return finishOnboarding(ctx, c)
}

// finishOnboarding confirms setup and kicks off the user's first
// discovery run immediately, ahead of the next timer sweep.
func finishOnboarding(ctx *Context, c tele.Context) error {
	userID := c.Sender().ID

	ctx.Logger.Info("onboarding complete", zap.Int64("user_id", userID))
	ctx.Sweeper.RunNow(userID)

	return c.Send(
		"🚀 All set!\n"+
			"I will now send you relevant jobs automatically.\n\n"+
			"Optional: send a compensation band to store it (e.g. 10-20).",
		utils.CompBandKeyboard(),
	)
}

func saveCompBand(ctx *Context, c tele.Context, text string) error {
	userID := c.Sender().ID

	dbCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	prof, err := ctx.Store.GetProfile(dbCtx, userID)
	if err != nil || prof == nil {
		ctx.Logger.Error("get profile failed", zap.Int64("user_id", userID), zap.Error(err))
		return c.Send("😔 Something went wrong. Please try again later.")
	}

	prof.CompBand = profile.CompBand(text)
	if err := ctx.Store.SaveProfile(dbCtx, prof); err != nil {
		ctx.Logger.Error("failed to save profile", zap.Int64("user_id", userID), zap.Error(err))
		return c.Send("😔 Something went wrong. Please try again later.")
	}

	return c.Send(fmt.Sprintf("💰 Compensation band saved: %s", text), utils.RemoveKeyboard())
}

// currentState reads the cached onboarding state, falling back to the
// profile row when the cache misses.
func currentState(ctx *Context, userID int64) profile.State {
	cctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if raw, err := ctx.Cache.GetOnboardingState(cctx, userID); err == nil {
		if st, perr := profile.ParseState(raw); perr == nil {
			return st
		}
	}

	dbCtx, cancel2 := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel2()

	prof, err := ctx.Store.GetProfile(dbCtx, userID)
	if err != nil || prof == nil {
		return profile.StateAwaitingCV
	}
	cacheState(ctx, userID, prof.State)
	return prof.State
}
