package resume

import (
	"regexp"
	"strconv"
	"strings"
)

// MaxSkills bounds the skill list kept on a profile.
const MaxSkills = 40

var (
	yearsRe = regexp.MustCompile(`(\d+)\+?\s+years`)
	titleRe = regexp.MustCompile(`(account manager|brand manager|product manager|project manager|manager|lead|engineer|developer|consultant|analyst|designer)`)
	tokenRe = regexp.MustCompile(`\b[a-zA-Z]{3,}\b`)
)

// Fragment is what the resume contributes to a profile: candidate role
// keywords and a bounded, ordered skill list.
type Fragment struct {
	RoleKeywords    []string
	Skills          []string
	YearsExperience int
}

// Parse derives a Fragment from resume text. Empty text yields an
// empty fragment, never an error.
func Parse(text string) Fragment {
	lower := strings.ToLower(text)

	var frag Fragment

	for _, m := range yearsRe.FindAllStringSubmatch(lower, -1) {
		if n, err := strconv.Atoi(m[1]); err == nil && n > frag.YearsExperience {
			// resumes repeat "N years" per role; keep the max
			frag.YearsExperience = n
		}
	}

	seenRoles := map[string]bool{}
	for _, m := range titleRe.FindAllString(lower, -1) {
		if !seenRoles[m] {
			seenRoles[m] = true
			frag.RoleKeywords = append(frag.RoleKeywords, m)
		}
	}

	seenSkills := map[string]bool{}
	for _, tok := range tokenRe.FindAllString(lower, -1) {
		if seenSkills[tok] {
			continue
		}
		seenSkills[tok] = true
		frag.Skills = append(frag.Skills, tok)
		if len(frag.Skills) >= MaxSkills {
			break
		}
	}

	return frag
}
