package notify

import (
	"strings"
	"testing"

	"jobscout-bot/internal/models"
)

func TestEscapeMarkdown(t *testing.T) {
	got := EscapeMarkdown("C++ Developer (Sr.) - Acme!")
	want := `C\+\+ Developer \(Sr\.\) \- Acme\!`
	if got != want {
		t.Errorf("EscapeMarkdown = %q, want %q", got, want)
	}
}

func TestFormatMatch(t *testing.T) {
	m := models.Match{
		Posting: models.Posting{
			SourceID: "greenhouse",
			Title:    "Brand Manager",
			Company:  "Acme Inc.",
			Location: "Mumbai, India",
		},
		Score: 7,
	}

	got := FormatMatch(m)

	for _, want := range []string{
		"*Brand Manager*",
		`Acme Inc\.`,
		"📍",
		"greenhouse",
		"*Score:* 7",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("FormatMatch missing %q in:\n%s", want, got)
		}
	}
}

func TestFormatMatch_OmitsEmptyFields(t *testing.T) {
	m := models.Match{Posting: models.Posting{SourceID: "adzuna", Title: "X"}, Score: 5}
	got := FormatMatch(m)
	if strings.Contains(got, "Company") || strings.Contains(got, "Location") {
		t.Errorf("empty fields should be omitted:\n%s", got)
	}
}

func TestFormatSummary(t *testing.T) {
	tiers := models.TieredMatches{
		Strong:   []models.Match{{Score: 9}},
		Possible: []models.Match{{Score: 6}, {Score: 5}},
	}

	got := FormatSummary(tiers)

	if !strings.Contains(got, "Found for you: 3") {
		t.Errorf("summary missing total:\n%s", got)
	}
	if !strings.Contains(got, "Strong matches: 1") || !strings.Contains(got, "Worth a look: 2") {
		t.Errorf("summary missing tier counts:\n%s", got)
	}
}

func TestFormatSummary_SingleTier(t *testing.T) {
	got := FormatSummary(models.TieredMatches{Possible: []models.Match{{Score: 6}}})
	if strings.Contains(got, "Strong matches") {
		t.Errorf("empty tier should be omitted:\n%s", got)
	}
}
