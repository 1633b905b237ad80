package sources

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// stripHTML reduces an ATS description (usually an HTML fragment) to
// plain text for keyword matching. Falls back to the raw string when
// the fragment does not parse.
func stripHTML(s string) string {
	if !strings.Contains(s, "<") {
		return strings.TrimSpace(s)
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return strings.TrimSpace(s)
	}
	return strings.TrimSpace(strings.Join(strings.Fields(doc.Text()), " "))
}
