package models

import "strings"

// CandidateProfile is the resume-derived input to one recommendation
// request. It is assembled by the CV-parsing layer and never mutated here.
type CandidateProfile struct {
	Skills          []string `json:"skills"`
	ExperienceYears *int     `json:"experience_years,omitempty"`
	ExperienceText  string   `json:"experience_text,omitempty"`
	RecentTitles    []string `json:"recent_titles"`
	Location        string   `json:"location,omitempty"`
}

// NormalizedSkills returns the profile's skills lower-cased, trimmed and
// deduplicated, preserving first-seen order.
func (p *CandidateProfile) NormalizedSkills() []string {
	seen := make(map[string]bool, len(p.Skills))
	out := make([]string, 0, len(p.Skills))
	for _, skill := range p.Skills {
		s := strings.ToLower(strings.TrimSpace(skill))
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}

// Years returns the numeric experience years, falling back to the first
// number found in the free-text experience field.
func (p *CandidateProfile) Years() int {
	if p.ExperienceYears != nil {
		return *p.ExperienceYears
	}
	years := 0
	inNumber := false
	for _, r := range p.ExperienceText {
		if r >= '0' && r <= '9' {
			years = years*10 + int(r-'0')
			inNumber = true
		} else if inNumber {
			break
		}
	}
	return years
}
