package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"sort"
	"strconv"
	"strings"

	"careercompass-jobs/pkg/models"
)

// fingerprintFields is the canonical representation hashed into a cache
// key. Each list is lower-cased, deduplicated, and sorted first, so profiles
// that differ only in field order or repeated entries collide to the same
// fingerprint.
type fingerprintFields struct {
	Skills     []string `json:"skills"`
	Experience string   `json:"experience"`
	Titles     []string `json:"titles"`
	Location   string   `json:"location"`
}

// Fingerprint derives the stable cache key for a candidate profile.
func Fingerprint(profile *models.CandidateProfile) string {
	skills := normalizeList(profile.Skills)
	titles := normalizeList(profile.RecentTitles)

	experience := strings.ToLower(strings.TrimSpace(profile.ExperienceText))
	if profile.ExperienceYears != nil {
		experience = strings.TrimSpace(experience + " " + strconv.Itoa(*profile.ExperienceYears))
	}

	fields := fingerprintFields{
		Skills:     skills,
		Experience: experience,
		Titles:     titles,
		Location:   strings.ToLower(strings.TrimSpace(profile.Location)),
	}

	data, _ := json.Marshal(fields)
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

func normalizeList(items []string) []string {
	seen := make(map[string]bool, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		s := strings.ToLower(strings.TrimSpace(item))
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}
