package profile

import (
	"strings"
	"time"
)

// WorkMode is the user's preferred work arrangement.
type WorkMode string

const (
	WorkModeRemote WorkMode = "remote"
	WorkModeHybrid WorkMode = "hybrid"
	WorkModeOnsite WorkMode = "onsite"
	WorkModeAll    WorkMode = "all"
)

// ParseWorkMode accepts the user's raw answer case-insensitively.
func ParseWorkMode(s string) (WorkMode, bool) {
	switch WorkMode(strings.ToLower(strings.TrimSpace(s))) {
	case WorkModeRemote:
		return WorkModeRemote, true
	case WorkModeHybrid:
		return WorkModeHybrid, true
	case WorkModeOnsite:
		return WorkModeOnsite, true
	case WorkModeAll:
		return WorkModeAll, true
	}
	return "", false
}

// NeedsLocation reports whether the mode requires a location answer
// before onboarding can complete.
func (m WorkMode) NeedsLocation() bool {
	return m != WorkModeRemote
}

// CompBand is a total-compensation range, stored as a preference only.
type CompBand string

const (
	CompBandUnset  CompBand = ""
	CompBand0to5   CompBand = "0-5"
	CompBand5to10  CompBand = "5-10"
	CompBand10to20 CompBand = "10-20"
	CompBand20to35 CompBand = "20-35"
	CompBand35Plus CompBand = "35+"
)

func CompBandOptions() []CompBand {
	return []CompBand{CompBand0to5, CompBand5to10, CompBand10to20, CompBand20to35, CompBand35Plus}
}

func IsValidCompBand(s string) bool {
	for _, b := range CompBandOptions() {
		if string(b) == s {
			return true
		}
	}
	return false
}

// Profile holds everything the discovery engine knows about one user.
// Created once on CV upload and updated in place as onboarding steps
// complete; never duplicated.
type Profile struct {
	UserID          int64     `db:"user_id"`
	RoleKeywords    []string  `db:"role_keywords"`
	Skills          []string  `db:"skills"` // ordered, bounded (top-N resume tokens)
	YearsExperience int       `db:"years_experience"`
	CompBand        CompBand  `db:"comp_band"`
	WorkMode        WorkMode  `db:"work_mode"`
	Location        string    `db:"location"`
	State           State     `db:"onboarding_state"`
	CreatedAt       time.Time `db:"created_at"`
	UpdatedAt       time.Time `db:"updated_at"`
}

// TopSkills returns at most n skills preserving extraction order.
func (p *Profile) TopSkills(n int) []string {
	if n <= 0 || len(p.Skills) <= n {
		return p.Skills
	}
	return p.Skills[:n]
}
