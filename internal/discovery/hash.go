package discovery

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"jobscout-bot/internal/models"
)

// SeenHash fingerprints a posting for dedup. The canonical link is
// preferred: titles and companies repeat across unrelated postings, a
// canonical URL does not. Without a link we fall back to
// title|company|external_key.
func SeenHash(p models.Posting) string {
	var key string
	if u := strings.TrimSpace(p.URL); u != "" {
		key = "link|" + u
	} else {
		key = "tck|" + norm(p.Title) + "|" + norm(p.Company) + "|" + strings.TrimSpace(p.ExternalKey)
	}
	sum := sha256.Sum256([]byte(key))
	return hex.EncodeToString(sum[:])
}

func norm(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
