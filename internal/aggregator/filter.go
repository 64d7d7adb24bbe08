package aggregator

import (
	"strings"

	"careercompass-jobs/pkg/models"
)

var dataRoleAllowList = []string{
	"data engineer", "data architect", "data scientist", "data analyst",
	"data platform", "data pipeline", "analytics engineer", "ml engineer",
	"machine learning", "big data", "etl", "data warehouse",
}

var seniorInfraRoles = []string{
	"solution architect", "cloud architect", "platform engineer",
	"devops engineer", "infrastructure engineer",
}

var seniorityMarkers = []string{"senior", "lead", "principal"}

var technicalRoleKeywords = []string{
	"engineer", "developer", "architect", "analyst", "scientist",
}

var specialistProfileKeywords = []string{
	"data engineer", "data architect", "data scientist", "data analyst", "data platform",
}

// FilterByProfile trims aggregated postings to the candidate's role family.
// Data specialists only see data roles plus senior infrastructure roles;
// everyone else keeps the full technical set. The filter never empties the
// result set: if nothing survives, the unfiltered postings are returned.
func FilterByProfile(postings []models.JobPosting, profile *models.CandidateProfile) []models.JobPosting {
	if len(postings) == 0 {
		return postings
	}

	specialist := isDataSpecialist(profile)
	filtered := make([]models.JobPosting, 0, len(postings))

	for _, p := range postings {
		title := strings.ToLower(p.Title)

		if specialist {
			if containsAny(title, dataRoleAllowList) {
				filtered = append(filtered, p)
			} else if containsAny(title, seniorInfraRoles) && containsAny(title, seniorityMarkers) {
				filtered = append(filtered, p)
			}
			continue
		}

		if containsAny(title, technicalRoleKeywords) {
			filtered = append(filtered, p)
		}
	}

	if len(filtered) == 0 {
		return postings
	}
	return filtered
}

func isDataSpecialist(profile *models.CandidateProfile) bool {
	joined := strings.ToLower(strings.Join(profile.RecentTitles, " "))
	return containsAny(joined, specialistProfileKeywords)
}
