package notify

import (
	"fmt"
	"strings"

	"jobscout-bot/internal/models"
)

// Format match for Telegram (MarkdownV2)
func FormatMatch(m models.Match) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("*%s*\n\n", EscapeMarkdown(m.Posting.Title)))

	if m.Posting.Company != "" {
		sb.WriteString(fmt.Sprintf("🏢 *Company:* %s\n", EscapeMarkdown(m.Posting.Company)))
	}

	if m.Posting.Location != "" {
		sb.WriteString(fmt.Sprintf("📍 *Location:* %s\n", EscapeMarkdown(m.Posting.Location)))
	}

	sb.WriteString(fmt.Sprintf("🗂 *Source:* %s\n", EscapeMarkdown(m.Posting.SourceID)))
	sb.WriteString(fmt.Sprintf("⭐ *Score:* %d\n", m.Score))

	return sb.String()
}

func FormatSummary(t models.TieredMatches) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("🔔 *New job matches\\!*\n\nFound for you: %d\n", t.Total()))

	if len(t.Strong) > 0 {
		sb.WriteString(fmt.Sprintf("🎯 Strong matches: %d\n", len(t.Strong)))
	}
	if len(t.Possible) > 0 {
		sb.WriteString(fmt.Sprintf("🤔 Worth a look: %d\n", len(t.Possible)))
	}

	return sb.String()
}

// EscapeMarkdown escapes MarkdownV2 special characters.
func EscapeMarkdown(text string) string {
	special := []string{
		"_", "*", "[", "]", "(", ")", "~", "`", ">",
		"#", "+", "-", "=", "|", "{", "}", ".", "!",
	}
	for _, ch := range special {
		text = strings.ReplaceAll(text, ch, "\\"+ch)
	}
	return text
}
