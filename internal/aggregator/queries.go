package aggregator

import (
	"strings"

	"careercompass-jobs/internal/scoring"
	"careercompass-jobs/pkg/models"
)

// dataQueryTech marks skills worth folding into a synthesized data
// engineering query.
var dataQueryTech = []string{
	"python", "sql", "spark", "kafka", "airflow", "snowflake", "aws", "azure", "data",
}

var specialistTitleKeywords = []string{
	"data engineer", "data architect", "data platform", "data pipeline",
}

// DeriveQueries turns a candidate profile into at most max search queries.
// Title-derived queries come first, with specialist data titles promoted to
// the front. Skill-synthesized queries follow, and a keyword fallback covers
// profiles that yield nothing usable.
func DeriveQueries(profile *models.CandidateProfile, max int) []string {
	if max <= 0 {
		return nil
	}

	var queries []string

	for _, title := range profile.RecentTitles {
		cleaned := scoring.CleanTitle(title)
		if len(cleaned) <= 5 {
			continue
		}
		if containsAny(cleaned, specialistTitleKeywords) {
			queries = append([]string{cleaned}, queries...)
		} else {
			queries = append(queries, cleaned)
		}
	}

	dataSkills := collectQuerySkills(profile.NormalizedSkills())
	if len(dataSkills) >= 3 {
		queries = append(queries, "Data Engineer "+strings.Join(dataSkills[:3], " "))
		queries = append(queries, "Data Architect "+strings.Join(dataSkills[:2], " "))
	} else if len(dataSkills) > 0 {
		queries = append(queries, "Data Engineer "+strings.Join(dataSkills, " "))
	}

	if len(queries) == 0 {
		queries = fallbackQueries(profile.NormalizedSkills())
	}

	if len(queries) > max {
		queries = queries[:max]
	}
	return queries
}

// collectQuerySkills picks query-worthy skills from the top of the profile,
// promoting data technologies to the front.
func collectQuerySkills(skills []string) []string {
	if len(skills) > 10 {
		skills = skills[:10]
	}

	var out []string
	for _, skill := range skills {
		if len(skill) <= 2 || strings.Contains(skill, "certif") {
			continue
		}
		if containsAny(skill, dataQueryTech) {
			out = append([]string{skill}, out...)
		} else {
			out = append(out, skill)
		}
	}
	return out
}

// fallbackQueries maps a skill set to generic role queries when no titles
// or skills produced a targeted one.
func fallbackQueries(skills []string) []string {
	joined := strings.Join(skills, " ")

	if strings.Contains(joined, "data") {
		if containsAny(joined, []string{"architect", "architecture", "solution"}) {
			return []string{"Data Architect", "Solution Architect Data", "Data Platform Architect"}
		}
		return []string{"Data Engineer", "Senior Data Engineer", "Data Pipeline Engineer"}
	}
	if containsAny(joined, []string{"software", "developer", "programming"}) {
		return []string{"Software Engineer", "Backend Engineer", "Full Stack Engineer"}
	}
	return []string{"Software Developer", "Engineer"}
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
