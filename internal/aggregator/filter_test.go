package aggregator

import (
	"testing"

	"careercompass-jobs/pkg/models"
)

func titled(titles ...string) []models.JobPosting {
	out := make([]models.JobPosting, len(titles))
	for i, title := range titles {
		out[i] = models.JobPosting{Title: title, Company: "Acme", ApplyURL: "https://example.org"}
	}
	return out
}

func TestFilterByProfileDataSpecialist(t *testing.T) {
	profile := &models.CandidateProfile{RecentTitles: []string{"Senior Data Engineer"}}

	postings := titled(
		"Data Engineer",
		"Machine Learning Engineer",
		"Senior Cloud Architect",
		"Cloud Architect",
		"Marketing Manager",
		"Frontend Developer",
	)

	filtered := FilterByProfile(postings, profile)

	want := map[string]bool{
		"Data Engineer":             true,
		"Machine Learning Engineer": true,
		"Senior Cloud Architect":    true,
	}
	if len(filtered) != len(want) {
		t.Fatalf("expected %d postings, got %d: %+v", len(want), len(filtered), filtered)
	}
	for _, p := range filtered {
		if !want[p.Title] {
			t.Errorf("unexpected posting survived: %q", p.Title)
		}
	}
}

func TestFilterByProfileGeneralist(t *testing.T) {
	profile := &models.CandidateProfile{RecentTitles: []string{"Software Engineer"}}

	postings := titled(
		"Backend Developer",
		"Data Analyst",
		"Marketing Manager",
		"Research Scientist",
	)

	filtered := FilterByProfile(postings, profile)

	if len(filtered) != 3 {
		t.Fatalf("expected 3 technical postings, got %d", len(filtered))
	}
	for _, p := range filtered {
		if p.Title == "Marketing Manager" {
			t.Error("non-technical posting survived")
		}
	}
}

func TestFilterByProfileNeverEmpties(t *testing.T) {
	profile := &models.CandidateProfile{RecentTitles: []string{"Data Engineer"}}
	postings := titled("Marketing Manager", "Sales Lead")

	filtered := FilterByProfile(postings, profile)

	if len(filtered) != len(postings) {
		t.Fatalf("filter emptied the set: got %d postings", len(filtered))
	}
}

func TestFilterByProfileEmptyInput(t *testing.T) {
	profile := &models.CandidateProfile{RecentTitles: []string{"Data Engineer"}}

	if got := FilterByProfile(nil, profile); len(got) != 0 {
		t.Errorf("expected empty output for empty input, got %d", len(got))
	}
}
