package scoring

import (
	"regexp"
	"strings"

	"careercompass-jobs/pkg/models"
)

// Keyword tables driving the heuristic scoring. Kept as data so individual
// entries can be tested and tuned without touching the scoring logic.
var (
	dataRoleKeywords = []string{
		"data engineer", "data engineering", "data pipeline", "etl",
		"data architect", "data architecture", "big data", "data platform",
	}

	softwareRoleKeywords = []string{
		"software engineer", "software developer", "backend engineer",
		"frontend engineer", "full stack", "web developer",
	}

	seniorityKeywords = []string{
		"senior", "lead", "principal", "staff", "architect", "manager",
		"director", "head of",
	}

	dataEngineeringSkills = []string{
		"python", "sql", "spark", "kafka", "airflow", "snowflake", "aws",
		"azure", "gcp", "etl", "data pipeline", "big data", "hadoop", "hive",
		"cassandra", "elasticsearch", "mongodb", "postgresql", "mysql",
		"redshift", "databricks", "dbt", "terraform", "docker", "kubernetes",
	}

	architectureSkills = []string{
		"microservices", "system design", "distributed systems",
		"cloud architecture", "solution architect", "data architecture",
		"api design", "scalability", "performance",
	}

	// criticalDataSkills are the high-signal technical keywords that earn an
	// extra multiplier wherever they match.
	criticalDataSkills = []string{
		"python", "sql", "spark", "kafka", "aws", "azure", "airflow", "snowflake",
	}
)

var (
	phonePattern = regexp.MustCompile(`\+?\d{1,3}[-.\s]?\d{3,4}[-.\s]?\d{3,4}[-.\s]?\d{3,4}`)
	emailPattern = regexp.MustCompile(`\S+@\S+`)
	certPattern  = regexp.MustCompile(`(?i)certified|certification`)
)

// Relevance holds the per-posting sub-scores computed against a profile.
// Each score is in [0,100].
type Relevance struct {
	SkillsMatch     float64
	TitleMatch      float64
	ExperienceMatch float64
}

// Score computes all relevance sub-scores for one posting.
func Score(posting *models.JobPosting, profile *models.CandidateProfile) Relevance {
	return Relevance{
		SkillsMatch:     SkillsMatch(posting, profile),
		TitleMatch:      TitleMatch(posting.Title, profile.RecentTitles),
		ExperienceMatch: ExperienceMatch(posting.ExperienceLevel, profile),
	}
}

// SkillsMatch scores how well the candidate's skills cover the posting.
// Declared required skills weigh more than free-text mentions, recognized
// data-engineering skills more than generic ones, and a bonus proportional
// to the fraction of skills that matched at all rounds out the score.
func SkillsMatch(posting *models.JobPosting, profile *models.CandidateProfile) float64 {
	skills := profile.NormalizedSkills()
	if len(skills) == 0 {
		return 0
	}

	title := strings.ToLower(posting.Title)
	description := strings.ToLower(posting.Description)

	var total float64
	matched := 0

	for _, skill := range skills {
		if len(skill) < 2 {
			continue
		}

		var score float64

		for _, required := range posting.RequiredSkills {
			req := strings.ToLower(required)
			if strings.Contains(req, skill) || strings.Contains(skill, req) {
				switch {
				case containsAny(skill, dataEngineeringSkills):
					score = max(score, 15.0)
				case containsAny(skill, architectureSkills):
					score = max(score, 12.0)
				default:
					score = max(score, 8.0)
				}
			}
		}

		if strings.Contains(title, skill) {
			if containsAny(skill, dataEngineeringSkills) {
				score = max(score, 12.0)
			} else {
				score = max(score, 6.0)
			}
		}

		if strings.Contains(description, skill) {
			if containsAny(skill, dataEngineeringSkills) {
				score = max(score, 8.0)
			} else {
				score = max(score, 3.0)
			}
		}

		if containsAny(skill, criticalDataSkills) {
			score *= 1.5
		}

		total += score
		if score > 0 {
			matched++
		}
	}

	base := (total / float64(len(skills))) * 8
	bonus := (float64(matched) / float64(len(skills))) * 30

	return min(100.0, base+bonus)
}

// TitleMatch scores a posting title against the candidate's recent titles.
// Scores from multiple titles are summed and capped at 100, so several weak
// matches can outweigh a single strong one only up to the cap.
func TitleMatch(postingTitle string, recentTitles []string) float64 {
	if postingTitle == "" || len(recentTitles) == 0 {
		return 0
	}

	jobTitle := strings.ToLower(postingTitle)
	jobIsData := containsKeyword(jobTitle, dataRoleKeywords)
	jobIsSoftware := containsKeyword(jobTitle, softwareRoleKeywords)
	jobIsSenior := containsKeyword(jobTitle, seniorityKeywords)

	var total float64

	for _, recent := range recentTitles {
		candidate := CleanTitle(recent)
		if len(candidate) < 3 {
			continue
		}

		candidateIsData := containsKeyword(candidate, dataRoleKeywords)
		candidateIsSoftware := containsKeyword(candidate, softwareRoleKeywords)

		// Role-family agreement dominates everything else
		switch {
		case candidateIsData && jobIsData:
			total += 80.0
		case candidateIsSoftware && jobIsSoftware:
			total += 70.0
		case candidateIsData && jobIsSoftware:
			total += 20.0
		case candidateIsSoftware && jobIsData:
			total += 25.0
		}

		if strings.Contains(jobTitle, candidate) || strings.Contains(candidate, jobTitle) {
			total += 30.0
			continue
		}

		candidateWords := significantWords(candidate)
		jobWords := significantWords(jobTitle)

		wordMatches := 0
		for _, cw := range candidateWords {
			for _, jw := range jobWords {
				if cw == jw {
					wordMatches += 3
				} else if strings.Contains(cw, jw) || strings.Contains(jw, cw) {
					wordMatches++
				}
			}
		}
		if len(candidateWords) > 0 {
			total += min(20.0, float64(wordMatches)/float64(len(candidateWords))*20)
		}

		candidateIsSenior := containsKeyword(candidate, seniorityKeywords)
		if candidateIsSenior && jobIsSenior {
			total += 15.0
		} else if !candidateIsSenior && !jobIsSenior {
			total += 5.0
		}
	}

	return min(100.0, total)
}

// experienceBracket maps candidate years onto the posting levels considered
// a fit, with the score awarded on a match.
type experienceBracket struct {
	minYears int
	levels   []models.ExperienceLevel
	score    float64
}

var experienceBrackets = []experienceBracket{
	{15, []models.ExperienceLevel{models.ExperiencePrincipal, models.ExperienceSenior, models.ExperienceLead}, 100},
	{10, []models.ExperienceLevel{models.ExperienceSenior, models.ExperienceLead, models.ExperiencePrincipal}, 95},
	{7, []models.ExperienceLevel{models.ExperienceSenior, models.ExperienceLead, models.ExperienceMidLevel}, 90},
	{5, []models.ExperienceLevel{models.ExperienceSenior, models.ExperienceMidLevel}, 85},
	{3, []models.ExperienceLevel{models.ExperienceMidLevel, models.ExperienceSenior}, 80},
	{1, []models.ExperienceLevel{models.ExperienceEntryLevel, models.ExperienceMidLevel}, 75},
	{0, []models.ExperienceLevel{models.ExperienceEntryLevel}, 70},
}

// ExperienceMatch scores the posting's declared seniority against the
// bracket expected from the candidate's years of experience, with partial
// credit for adjacent brackets and a neutral score when either side is
// unspecified.
func ExperienceMatch(level models.ExperienceLevel, profile *models.CandidateProfile) float64 {
	if profile.ExperienceYears == nil && profile.ExperienceText == "" {
		return 50.0
	}
	if level == models.ExperienceUnspecified || level == "" {
		return 60.0
	}

	years := profile.Years()

	for _, bracket := range experienceBrackets {
		if years < bracket.minYears {
			continue
		}
		for _, l := range bracket.levels {
			if l == level {
				return bracket.score
			}
		}
		break
	}

	// Adjacent-bracket partial credit
	switch {
	case years >= 8 && (level == models.ExperienceSenior || level == models.ExperienceLead):
		return 85.0
	case years >= 3 && level == models.ExperienceMidLevel:
		return 80.0
	case years <= 2 && level == models.ExperienceEntryLevel:
		return 75.0
	}

	return 60.0
}

// CleanTitle normalizes a resume-derived title: lower-cased, stripped of
// decorative bullets, contact details and certification noise.
func CleanTitle(title string) string {
	cleaned := strings.ToLower(strings.ReplaceAll(title, "❖", ""))
	cleaned = phonePattern.ReplaceAllString(cleaned, "")
	cleaned = emailPattern.ReplaceAllString(cleaned, "")
	cleaned = certPattern.ReplaceAllString(cleaned, "")
	return strings.TrimSpace(strings.Join(strings.Fields(cleaned), " "))
}

// IsDataRole reports whether a title belongs to the data-engineering family.
func IsDataRole(title string) bool {
	return containsKeyword(strings.ToLower(title), dataRoleKeywords)
}

func containsKeyword(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

func containsAny(skill string, table []string) bool {
	for _, entry := range table {
		if strings.Contains(skill, entry) {
			return true
		}
	}
	return false
}

func significantWords(text string) []string {
	words := strings.Fields(text)
	out := words[:0]
	for _, w := range words {
		if len(w) > 2 {
			out = append(out, w)
		}
	}
	return out
}
