package scoring

import (
	"testing"

	"careercompass-jobs/pkg/models"
)

func intPtr(n int) *int { return &n }

func TestSkillsMatchPrefersDataSkills(t *testing.T) {
	profile := &models.CandidateProfile{
		Skills: []string{"Python", "SQL", "Spark"},
	}
	posting := &models.JobPosting{
		Title:          "Data Engineer",
		Description:    "Build pipelines with Python, SQL and Spark on AWS.",
		RequiredSkills: []string{"Python", "SQL", "Spark"},
	}

	score := SkillsMatch(posting, profile)
	if score <= 0 {
		t.Fatalf("expected positive score, got %f", score)
	}
	if score > 100 {
		t.Fatalf("score exceeds cap: %f", score)
	}

	// The same posting scored against unrelated skills should rank lower.
	unrelated := &models.CandidateProfile{Skills: []string{"Photoshop", "Copywriting"}}
	if low := SkillsMatch(posting, unrelated); low >= score {
		t.Errorf("unrelated skills scored %f, matching skills %f", low, score)
	}
}

func TestSkillsMatchEmptyProfile(t *testing.T) {
	posting := &models.JobPosting{Title: "Data Engineer"}
	if got := SkillsMatch(posting, &models.CandidateProfile{}); got != 0 {
		t.Errorf("expected 0 for empty skills, got %f", got)
	}
}

func TestTitleMatchRoleFamily(t *testing.T) {
	dataScore := TitleMatch("Senior Data Engineer", []string{"Data Engineer"})
	crossScore := TitleMatch("Senior Data Engineer", []string{"Software Engineer"})
	noneScore := TitleMatch("Marketing Manager", []string{"Data Engineer"})

	if dataScore <= crossScore {
		t.Errorf("same-family match %f should beat cross-family %f", dataScore, crossScore)
	}
	if crossScore <= noneScore {
		t.Errorf("cross-family match %f should beat no-family %f", crossScore, noneScore)
	}
}

func TestTitleMatchCapped(t *testing.T) {
	titles := []string{"Senior Data Engineer", "Data Engineer", "Lead Data Engineer"}
	if got := TitleMatch("Senior Data Engineer", titles); got > 100 {
		t.Errorf("score exceeds cap: %f", got)
	}
}

func TestTitleMatchEmptyInputs(t *testing.T) {
	if got := TitleMatch("", []string{"Data Engineer"}); got != 0 {
		t.Errorf("empty posting title scored %f", got)
	}
	if got := TitleMatch("Data Engineer", nil); got != 0 {
		t.Errorf("no recent titles scored %f", got)
	}
}

func TestExperienceMatchBrackets(t *testing.T) {
	tests := []struct {
		years int
		level models.ExperienceLevel
		want  float64
	}{
		{15, models.ExperiencePrincipal, 100},
		{10, models.ExperienceSenior, 95},
		{7, models.ExperienceSenior, 90},
		{5, models.ExperienceMidLevel, 85},
		{3, models.ExperienceMidLevel, 80},
		{1, models.ExperienceEntryLevel, 75},
		{0, models.ExperienceEntryLevel, 70},
	}

	for _, tt := range tests {
		profile := &models.CandidateProfile{ExperienceYears: intPtr(tt.years)}
		if got := ExperienceMatch(tt.level, profile); got != tt.want {
			t.Errorf("ExperienceMatch(%s, %d years) = %f, want %f", tt.level, tt.years, got, tt.want)
		}
	}
}

func TestExperienceMatchNeutralScores(t *testing.T) {
	// No candidate experience at all.
	if got := ExperienceMatch(models.ExperienceSenior, &models.CandidateProfile{}); got != 50 {
		t.Errorf("missing candidate experience scored %f, want 50", got)
	}

	// Posting without a declared level.
	profile := &models.CandidateProfile{ExperienceYears: intPtr(5)}
	if got := ExperienceMatch(models.ExperienceUnspecified, profile); got != 60 {
		t.Errorf("unspecified posting level scored %f, want 60", got)
	}
}

func TestExperienceMatchFreeText(t *testing.T) {
	profile := &models.CandidateProfile{ExperienceText: "12 years in data platforms"}
	if got := ExperienceMatch(models.ExperienceSenior, profile); got != 95 {
		t.Errorf("free-text years scored %f, want 95", got)
	}
}

func TestCleanTitle(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"❖ Senior Data Engineer", "senior data engineer"},
		{"Data Architect jane@example.com", "data architect"},
		{"AWS Certified Solutions Architect", "aws solutions architect"},
		{"  Data   Engineer  ", "data engineer"},
	}

	for _, tt := range tests {
		if got := CleanTitle(tt.input); got != tt.want {
			t.Errorf("CleanTitle(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestIsDataRole(t *testing.T) {
	if !IsDataRole("Senior Data Engineer") {
		t.Error("expected data engineer to be a data role")
	}
	if IsDataRole("Marketing Manager") {
		t.Error("expected marketing manager not to be a data role")
	}
}
