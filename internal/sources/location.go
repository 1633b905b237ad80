package sources

import (
	"strings"

	"jobscout-bot/internal/models"
)

// FilterByLocation keeps postings whose location mentions any allowed
// term. An empty allow-list keeps everything; "remote" postings always
// pass since they are not tied to a place.
func FilterByLocation(allow []string, postings []models.Posting) []models.Posting {
	if len(allow) == 0 {
		return postings
	}

	out := postings[:0]
	for _, p := range postings {
		if locationAllowed(allow, p) {
			out = append(out, p)
		}
	}
	return out
}

func locationAllowed(allow []string, p models.Posting) bool {
	loc := strings.ToLower(p.Location)
	if strings.Contains(loc, "remote") {
		return true
	}
	for _, a := range allow {
		a = strings.ToLower(strings.TrimSpace(a))
		if a == "" {
			continue
		}
		if strings.Contains(loc, a) {
			return true
		}
	}
	return false
}
