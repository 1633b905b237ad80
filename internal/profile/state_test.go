package profile_test

import (
	"testing"

	"jobscout-bot/internal/profile"
)

func TestParseState_ValidValues(t *testing.T) {
	valid := []string{"awaiting_cv", "awaiting_mode", "awaiting_location", "active"}
	for _, s := range valid {
		got, err := profile.ParseState(s)
		if err != nil {
			t.Errorf("ParseState(%q) returned unexpected error: %v", s, err)
		}
		if string(got) != s {
			t.Errorf("ParseState(%q) = %q, want %q", s, got, s)
		}
	}
}

func TestParseState_InvalidValue(t *testing.T) {
	_, err := profile.ParseState("onboarded")
	if err == nil {
		t.Error("ParseState(\"onboarded\") expected error, got nil")
	}
}

func TestParseState_EmptyString(t *testing.T) {
	_, err := profile.ParseState("")
	if err == nil {
		t.Error("ParseState(\"\") expected error, got nil")
	}
}

func TestCanTransition_ValidForward(t *testing.T) {
	cases := []struct {
		from, to profile.State
	}{
		{profile.StateAwaitingCV, profile.StateAwaitingMode},
		{profile.StateAwaitingMode, profile.StateAwaitingLocation},
		{profile.StateAwaitingMode, profile.StateActive}, // remote skips location
		{profile.StateAwaitingLocation, profile.StateActive},
	}
	for _, c := range cases {
		if !profile.CanTransition(c.from, c.to) {
			t.Errorf("CanTransition(%s, %s) should be allowed", c.from, c.to)
		}
	}
}

func TestCanTransition_Blocked(t *testing.T) {
	cases := []struct {
		from, to profile.State
	}{
		{profile.StateAwaitingCV, profile.StateActive},           // skipping mode
		{profile.StateAwaitingCV, profile.StateAwaitingLocation}, // skipping mode
		{profile.StateActive, profile.StateAwaitingCV},           // active is terminal
		{profile.StateActive, profile.StateAwaitingMode},
		{profile.StateAwaitingLocation, profile.StateAwaitingMode}, // backwards
		{profile.StateAwaitingMode, profile.StateAwaitingCV},       // backwards
	}
	for _, c := range cases {
		if profile.CanTransition(c.from, c.to) {
			t.Errorf("CanTransition(%s, %s) should be blocked", c.from, c.to)
		}
	}
}

func TestAdvance_ValidEdge(t *testing.T) {
	p := &profile.Profile{State: profile.StateAwaitingCV}
	if err := p.Advance(profile.StateAwaitingMode); err != nil {
		t.Fatalf("Advance returned unexpected error: %v", err)
	}
	if p.State != profile.StateAwaitingMode {
		t.Errorf("state = %s, want %s", p.State, profile.StateAwaitingMode)
	}
}

func TestAdvance_InvalidEdgeKeepsState(t *testing.T) {
	p := &profile.Profile{State: profile.StateAwaitingCV}
	if err := p.Advance(profile.StateActive); err == nil {
		t.Fatal("Advance(awaiting_cv -> active) expected error, got nil")
	}
	if p.State != profile.StateAwaitingCV {
		t.Errorf("failed transition mutated state to %s", p.State)
	}
}

func TestNextAfterMode(t *testing.T) {
	cases := []struct {
		mode profile.WorkMode
		want profile.State
	}{
		{profile.WorkModeRemote, profile.StateActive},
		{profile.WorkModeHybrid, profile.StateAwaitingLocation},
		{profile.WorkModeOnsite, profile.StateAwaitingLocation},
		{profile.WorkModeAll, profile.StateAwaitingLocation},
	}
	for _, c := range cases {
		if got := profile.NextAfterMode(c.mode); got != c.want {
			t.Errorf("NextAfterMode(%s) = %s, want %s", c.mode, got, c.want)
		}
	}
}

func TestParseWorkMode(t *testing.T) {
	cases := []struct {
		in   string
		want profile.WorkMode
		ok   bool
	}{
		{"remote", profile.WorkModeRemote, true},
		{"Remote", profile.WorkModeRemote, true},
		{"  HYBRID ", profile.WorkModeHybrid, true},
		{"onsite", profile.WorkModeOnsite, true},
		{"all", profile.WorkModeAll, true},
		{"office", "", false},
		{"", "", false},
	}
	for _, c := range cases {
		got, ok := profile.ParseWorkMode(c.in)
		if ok != c.ok || got != c.want {
			t.Errorf("ParseWorkMode(%q) = (%q, %v), want (%q, %v)", c.in, got, ok, c.want, c.ok)
		}
	}
}

func TestIsValidCompBand(t *testing.T) {
	for _, b := range profile.CompBandOptions() {
		if !profile.IsValidCompBand(string(b)) {
			t.Errorf("IsValidCompBand(%q) should be true", b)
		}
	}
	for _, s := range []string{"", "5-15", "a lot"} {
		if profile.IsValidCompBand(s) {
			t.Errorf("IsValidCompBand(%q) should be false", s)
		}
	}
}

func TestTopSkills(t *testing.T) {
	p := &profile.Profile{Skills: []string{"python", "excel", "sql", "tableau"}}

	got := p.TopSkills(2)
	if len(got) != 2 || got[0] != "python" || got[1] != "excel" {
		t.Errorf("TopSkills(2) = %v, want [python excel]", got)
	}
	if got := p.TopSkills(10); len(got) != 4 {
		t.Errorf("TopSkills(10) = %v, want all four", got)
	}
	if got := p.TopSkills(0); len(got) != 4 {
		t.Errorf("TopSkills(0) = %v, want all four", got)
	}
}
