package scoring

import (
	"sort"
	"strings"

	"careercompass-jobs/internal/location"
	"careercompass-jobs/pkg/models"
)

// Location priority tiers. The candidate's exact country scores strictly
// above remote so local postings always dominate.
const (
	priorityExactCountry    = 120.0
	priorityRemote          = 100.0
	priorityTightCluster    = 90.0
	priorityEurope          = 85.0
	priorityEnglishCluster  = 85.0
	priorityTechHub         = 75.0
	priorityEnglishSpeaking = 70.0
	priorityOther           = 50.0
	priorityUnknownDefault  = 60.0
)

// LocationPriority computes the 0-120 geographic fit score for a posting.
// candidateCountry is the resolved canonical country, or empty when unknown.
func LocationPriority(posting *models.JobPosting, candidateCountry string) float64 {
	remote := posting.Remote || location.IsRemote(posting.Location)

	if candidateCountry == "" {
		// Without a candidate location, remote postings and tech hubs are
		// the only meaningful tiers.
		if remote {
			return priorityRemote
		}
		if location.TechHubs[posting.Country] {
			return priorityTechHub
		}
		return priorityUnknownDefault
	}

	if posting.Country == candidateCountry {
		return priorityExactCountry
	}

	if remote {
		return priorityRemote
	}

	if location.EuropeanCountries[candidateCountry] && location.EuropeanCountries[posting.Country] {
		if location.DACHBenelux[candidateCountry] && location.DACHBenelux[posting.Country] {
			return priorityTightCluster
		}
		if location.Nordics[candidateCountry] && location.Nordics[posting.Country] {
			return priorityTightCluster
		}
		return priorityEurope
	}

	if location.EnglishSpeaking[candidateCountry] && location.EnglishSpeaking[posting.Country] {
		return priorityEnglishCluster
	}

	if location.TechHubs[posting.Country] {
		return priorityTechHub
	}

	if location.EnglishSpeaking[posting.Country] {
		return priorityEnglishSpeaking
	}

	return priorityOther
}

// Rank scores every posting against the profile and sorts the slice into
// its final order. Weights shift per bucket so postings in the candidate's
// own country stay strictly dominant, remote postings come next, and
// everything else competes on relevance.
func Rank(postings []models.JobPosting, profile *models.CandidateProfile, candidateCountry string) []models.JobPosting {
	for i := range postings {
		p := &postings[i]

		rel := Score(p, profile)
		locationPriority := LocationPriority(p, candidateCountry)
		remote := p.Remote || location.IsRemote(p.Location)

		var combined float64
		switch {
		case candidateCountry != "" && p.Country == candidateCountry:
			combined = locationPriority*0.5 + rel.TitleMatch*0.2 + rel.SkillsMatch*0.2 + rel.ExperienceMatch*0.1 + 40
		case remote:
			combined = locationPriority*0.4 + rel.TitleMatch*0.25 + rel.SkillsMatch*0.25 + rel.ExperienceMatch*0.1 + 20
		default:
			combined = locationPriority*0.25 + rel.TitleMatch*0.35 + rel.SkillsMatch*0.25 + rel.ExperienceMatch*0.15
		}

		p.Scores = models.Scores{
			Relevance:        relevanceScore(p, rel),
			LocationPriority: locationPriority,
			TitleMatch:       rel.TitleMatch,
			SkillsMatch:      rel.SkillsMatch,
			ExperienceMatch:  rel.ExperienceMatch,
			Combined:         combined,
		}
	}

	// Stable sort on the full tie-break tuple keeps repeated runs on
	// identical input in identical order.
	sort.SliceStable(postings, func(i, j int) bool {
		a, b := postings[i].Scores, postings[j].Scores
		if a.Combined != b.Combined {
			return a.Combined > b.Combined
		}
		if a.LocationPriority != b.LocationPriority {
			return a.LocationPriority > b.LocationPriority
		}
		if a.TitleMatch != b.TitleMatch {
			return a.TitleMatch > b.TitleMatch
		}
		if a.SkillsMatch != b.SkillsMatch {
			return a.SkillsMatch > b.SkillsMatch
		}
		return a.ExperienceMatch > b.ExperienceMatch
	})

	return postings
}

var qualityCompanyKeywords = []string{"tech", "data", "software", "digital", "innovation"}

// relevanceScore folds the sub-scores into the single 0-100 relevance
// number exposed for observability: skills 40%, title 30%, experience 20%,
// with the last 10% reserved for role and company quality signals.
func relevanceScore(p *models.JobPosting, rel Relevance) float64 {
	score := rel.SkillsMatch*0.4 + rel.TitleMatch*0.3 + rel.ExperienceMatch*0.2

	if containsKeyword(strings.ToLower(p.Title), seniorityKeywords) {
		score += 5
	}
	if containsKeyword(strings.ToLower(p.Company), qualityCompanyKeywords) {
		score += 5
	}

	return min(100.0, score)
}
