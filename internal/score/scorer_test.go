package score_test

import (
	"testing"

	"jobscout-bot/internal/models"
	"jobscout-bot/internal/profile"
	"jobscout-bot/internal/score"
)

func marketerProfile() *profile.Profile {
	return &profile.Profile{
		UserID:       1,
		RoleKeywords: []string{"brand manager"},
		Skills:       []string{"branding", "analytics", "campaigns"},
		Location:     "Mumbai",
	}
}

func TestScore_Deterministic(t *testing.T) {
	s := score.Scorer{Weights: score.Default()}
	p := models.Posting{
		Title:       "Senior Brand Manager",
		Company:     "Acme",
		Location:    "Mumbai, India",
		Description: "Own branding and campaigns end to end.",
	}
	prof := marketerProfile()

	first := s.Score(p, prof)
	for i := 0; i < 5; i++ {
		if got := s.Score(p, prof); got != first {
			t.Fatalf("score changed between identical calls: %d then %d", first, got)
		}
	}
}

func TestScore_SeniorBrandManager(t *testing.T) {
	w := score.Default()
	s := score.Scorer{Weights: w}
	p := models.Posting{
		Title:       "Senior Brand Manager",
		Company:     "Acme",
		Location:    "Bangalore, India",
		Description: "Own branding end to end.",
	}

	// base 1 + title 4 + seniority 1 + skill 1; location doesn't match
	got := s.Score(p, marketerProfile())
	if got != 7 {
		t.Errorf("Score = %d, want 7", got)
	}
	if got < w.NotifyMinScore {
		t.Errorf("Score %d below notify threshold %d", got, w.NotifyMinScore)
	}
}

func TestScore_LocationBonus(t *testing.T) {
	w := score.Default()
	s := score.Scorer{Weights: w}
	p := models.Posting{
		Title:       "Senior Brand Manager",
		Company:     "Acme",
		Location:    "Mumbai, India",
		Description: "Own branding end to end.",
	}

	// same posting relocated to the profile's city scores one higher
	if got := s.Score(p, marketerProfile()); got != 8 {
		t.Errorf("Score = %d, want 8", got)
	}
}

func TestScore_InternPostingBelowThreshold(t *testing.T) {
	w := score.Default()
	s := score.Scorer{Weights: w}
	p := models.Posting{
		Title:       "Marketing Intern",
		Company:     "Acme",
		Location:    "Remote",
		Description: "Entry level internship.",
	}

	// base 1 + category 2 only: no title match, no seniority, no
	// location, no skill
	got := s.Score(p, marketerProfile())
	if got != 3 {
		t.Errorf("Score = %d, want 3", got)
	}
	if got >= w.NotifyMinScore {
		t.Errorf("Score %d should stay below notify threshold %d", got, w.NotifyMinScore)
	}
}

func TestScore_EmptyProfileGetsBaseOnly(t *testing.T) {
	s := score.Scorer{Weights: score.Default()}
	p := models.Posting{Title: "Welder", Location: "Pune"}

	got := s.Score(p, &profile.Profile{})
	if got != score.Default().BaseScore {
		t.Errorf("Score = %d, want base %d", got, score.Default().BaseScore)
	}
}

func TestScore_ClampedToMax(t *testing.T) {
	w := score.Default()
	w.TitleMatchWeight = 50
	s := score.Scorer{Weights: w}
	p := models.Posting{Title: "Senior Brand Manager", Location: "Mumbai", Description: "branding"}

	if got := s.Score(p, marketerProfile()); got != w.MaxScore {
		t.Errorf("Score = %d, want clamped max %d", got, w.MaxScore)
	}
}

func TestScore_CaseInsensitive(t *testing.T) {
	s := score.Scorer{Weights: score.Default()}
	lower := models.Posting{Title: "senior brand manager", Location: "mumbai", Description: "branding"}
	upper := models.Posting{Title: "SENIOR BRAND MANAGER", Location: "MUMBAI", Description: "BRANDING"}

	prof := marketerProfile()
	if a, b := s.Score(lower, prof), s.Score(upper, prof); a != b {
		t.Errorf("case changed the score: %d vs %d", a, b)
	}
}

func TestScore_TopSkillsBound(t *testing.T) {
	w := score.Default()
	w.TopSkills = 2
	s := score.Scorer{Weights: w}

	prof := marketerProfile()
	prof.Skills = []string{"alpha", "beta", "gamma"}

	// "gamma" is past the top-N cutoff, must not count
	p := models.Posting{Title: "Welder", Description: "we need gamma knowledge"}
	if got := s.Score(p, prof); got != w.BaseScore {
		t.Errorf("Score = %d, want base %d (skill outside top-N matched)", got, w.BaseScore)
	}

	p.Description = "alpha required"
	if got := s.Score(p, prof); got != w.BaseScore+w.SkillWeight {
		t.Errorf("Score = %d, want %d", got, w.BaseScore+w.SkillWeight)
	}
}
