package handlers

import (
	tele "gopkg.in/telebot.v3"
)

// /help
func HandleHelp(ctx *Context) tele.HandlerFunc {
	return func(c tele.Context) error {
		helpMsg := "*🤖 JobScout Bot*\n\n" +
			"I read your CV, watch job boards and message you when a posting fits\\.\n\n" +
			"*Commands*\n" +
			"/start — create a profile and begin onboarding\n" +
			"/status — show your profile and stats\n" +
			"/band — set your compensation band\n" +
			"/run — check for new postings now\n" +
			"/help — this message\n\n" +
			"Upload a new CV at any time to refresh your profile\\."

		return c.Send(helpMsg, tele.ModeMarkdownV2)
	}
}
