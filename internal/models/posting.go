package models

import "time"

// Posting is one normalized job listing from a source backend.
// It is rebuilt on every poll and never persisted as a whole; only its
// seen-hash and score survive a discovery run.
type Posting struct {
	SourceID    string
	ExternalKey string // backend's own unique reference
	Title       string
	Company     string
	Location    string
	Description string
	URL         string // canonical link, preferred dedup key
}

// SeenRecord marks one posting as delivered to one user.
type SeenRecord struct {
	UserID       int64     `db:"user_id"`
	PostingHash  string    `db:"posting_hash"`
	Score        int       `db:"score"`
	DiscoveredAt time.Time `db:"discovered_at"`
}

// Match pairs a posting with the score it received during discovery.
type Match struct {
	Posting Posting
	Score   int
}

// TieredMatches groups one run's matches into confidence buckets.
// Order within each bucket is the ranked order from the discovery run.
type TieredMatches struct {
	Strong   []Match
	Possible []Match
}

func (t TieredMatches) Total() int {
	return len(t.Strong) + len(t.Possible)
}

// PartitionMatches splits ranked matches into strong and possible tiers.
// Matches must already be sorted descending by score.
func PartitionMatches(matches []Match, strongMin int) TieredMatches {
	var t TieredMatches
	for _, m := range matches {
		if m.Score >= strongMin {
			t.Strong = append(t.Strong, m)
		} else {
			t.Possible = append(t.Possible, m)
		}
	}
	return t
}
