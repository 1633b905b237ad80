// Package score computes a relevance score for a (posting, profile)
// pair. Scoring is a pure function: case-insensitive substring matching
// against configured keyword lists, no I/O, no tokenization.
package score

import (
	"strings"

	"jobscout-bot/internal/models"
	"jobscout-bot/internal/profile"
)

type Scorer struct {
	Weights Weights
}

// Score returns an integer in [0, MaxScore]. Identical inputs always
// produce identical output.
func (s Scorer) Score(p models.Posting, prof *profile.Profile) int {
	title := strings.ToLower(p.Title)
	desc := strings.ToLower(p.Description)

	total := s.Weights.BaseScore

	if containsAny(title, prof.RoleKeywords) || containsAny(title, s.Weights.RoleKeywords) {
		total += s.Weights.TitleMatchWeight
	}

	if containsAny(title, s.Weights.CategoryKeywords) {
		total += s.Weights.CategoryWeight
	}

	if containsAny(title, s.Weights.SeniorityKeywords) {
		total += s.Weights.SeniorityWeight
	}

	if prof.Location != "" &&
		strings.Contains(strings.ToLower(p.Location), strings.ToLower(prof.Location)) {
		total += s.Weights.LocationWeight
	}

	if desc != "" && containsAny(desc, prof.TopSkills(s.Weights.TopSkills)) {
		total += s.Weights.SkillWeight
	}

	if total > s.Weights.MaxScore {
		total = s.Weights.MaxScore
	}
	if total < 0 {
		total = 0
	}
	return total
}

func containsAny(text string, needles []string) bool {
	for _, n := range needles {
		n = strings.ToLower(strings.TrimSpace(n))
		if n == "" {
			continue
		}
		if strings.Contains(text, n) {
			return true
		}
	}
	return false
}
