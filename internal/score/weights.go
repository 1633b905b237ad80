package score

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Weights is the scoring configuration: keyword lists plus the weight
// each signal contributes. Loaded from YAML so tuning never needs a
// rebuild.
type Weights struct {
	RoleKeywords      []string `yaml:"role_keywords"`      // merged with the profile's own
	CategoryKeywords  []string `yaml:"category_keywords"`  // role-category terms
	SeniorityKeywords []string `yaml:"seniority_keywords"`

	TitleMatchWeight int `yaml:"title_match_weight"`
	CategoryWeight   int `yaml:"category_weight"`
	SeniorityWeight  int `yaml:"seniority_weight"`
	LocationWeight   int `yaml:"location_weight"`
	SkillWeight      int `yaml:"skill_weight"`

	BaseScore int `yaml:"base_score"`
	MaxScore  int `yaml:"max_score"`

	NotifyMinScore int `yaml:"notify_min_score"` // minimum delivery threshold
	StrongMinScore int `yaml:"strong_min_score"` // "strong" tier cutoff
	TopSkills      int `yaml:"top_skills"`       // profile skills considered per posting
}

// Default returns the built-in weights used when no rules file is
// configured.
func Default() Weights {
	return Weights{
		CategoryKeywords: []string{
			"marketing", "sales", "engineering", "product",
			"operations", "finance", "design", "data",
		},
		SeniorityKeywords: []string{
			"senior", "manager", "lead", "head", "director", "principal",
		},
		TitleMatchWeight: 4,
		CategoryWeight:   2,
		SeniorityWeight:  1,
		LocationWeight:   1,
		SkillWeight:      1,
		BaseScore:        1,
		MaxScore:         10,
		NotifyMinScore:   5,
		StrongMinScore:   8,
		TopSkills:        10,
	}
}

// Load reads a YAML rules file over the defaults; missing keys keep
// their default values. An empty path returns the defaults unchanged.
func Load(path string) (Weights, error) {
	w := Default()
	if path == "" {
		return w, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return w, fmt.Errorf("read scoring rules: %w", err)
	}
	if err := yaml.Unmarshal(b, &w); err != nil {
		return w, fmt.Errorf("parse scoring rules: %w", err)
	}
	return w, w.Validate()
}

func (w Weights) Validate() error {
	if w.MaxScore < 1 {
		return fmt.Errorf("max_score must be positive")
	}
	if w.NotifyMinScore > w.MaxScore {
		return fmt.Errorf("notify_min_score %d exceeds max_score %d", w.NotifyMinScore, w.MaxScore)
	}
	if w.StrongMinScore < w.NotifyMinScore {
		return fmt.Errorf("strong_min_score %d below notify_min_score %d", w.StrongMinScore, w.NotifyMinScore)
	}
	return nil
}
