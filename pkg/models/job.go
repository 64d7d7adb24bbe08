package models

import "time"

// ExperienceLevel is the normalized seniority bracket declared by a job posting.
type ExperienceLevel string

const (
	ExperienceEntryLevel  ExperienceLevel = "entry"
	ExperienceMidLevel    ExperienceLevel = "mid"
	ExperienceSenior      ExperienceLevel = "senior"
	ExperienceLead        ExperienceLevel = "lead"
	ExperiencePrincipal   ExperienceLevel = "principal"
	ExperienceUnspecified ExperienceLevel = "unspecified"
)

// JobPosting represents one external job listing normalized into the
// canonical shape shared by all source clients.
type JobPosting struct {
	ID              string          `json:"id"`
	Title           string          `json:"title"`
	Company         string          `json:"company"`
	Location        string          `json:"location"`
	Country         string          `json:"country,omitempty"`
	Salary          string          `json:"salary,omitempty"`
	Description     string          `json:"description,omitempty"`
	RequiredSkills  []string        `json:"required_skills,omitempty"`
	ExperienceLevel ExperienceLevel `json:"experience_level"`
	Remote          bool            `json:"remote"`
	Source          string          `json:"source"`
	PostedAt        *time.Time      `json:"posted_at,omitempty"`
	ApplyURL        string          `json:"apply_url"`
	Scores          Scores          `json:"scores"`
}

// Scores holds the sub-scores computed during ranking. They are written
// once by the ranker and returned for observability.
type Scores struct {
	Relevance        float64 `json:"relevance"`
	LocationPriority float64 `json:"location_priority"`
	TitleMatch       float64 `json:"title_match"`
	SkillsMatch      float64 `json:"skills_match"`
	ExperienceMatch  float64 `json:"experience_match"`
	Combined         float64 `json:"combined"`
}
