package aggregator

import (
	"strings"
	"testing"

	"careercompass-jobs/pkg/models"
)

func TestDeriveQueriesPromotesSpecialistTitles(t *testing.T) {
	profile := &models.CandidateProfile{
		Skills:       []string{"Photoshop"},
		RecentTitles: []string{"Project Manager", "Senior Data Engineer"},
	}

	queries := DeriveQueries(profile, 3)

	if len(queries) == 0 {
		t.Fatal("expected queries")
	}
	if !strings.Contains(queries[0], "data engineer") {
		t.Errorf("expected specialist title first, got %q", queries[0])
	}
}

func TestDeriveQueriesSynthesizesFromSkills(t *testing.T) {
	profile := &models.CandidateProfile{
		Skills: []string{"Python", "SQL", "Spark", "Airflow"},
	}

	queries := DeriveQueries(profile, 3)

	found := false
	for _, q := range queries {
		if strings.HasPrefix(q, "Data Engineer ") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a skill-synthesized data engineer query, got %v", queries)
	}
}

func TestDeriveQueriesSkipsCertificationSkills(t *testing.T) {
	profile := &models.CandidateProfile{
		Skills: []string{"AWS Certified Architect", "Python", "SQL", "Spark"},
	}

	for _, q := range DeriveQueries(profile, 3) {
		if strings.Contains(strings.ToLower(q), "certified") {
			t.Errorf("certification leaked into query %q", q)
		}
	}
}

func TestDeriveQueriesFallbacks(t *testing.T) {
	// Certification-only and too-short skills never produce targeted
	// queries, which forces the keyword fallback path.
	tests := []struct {
		name   string
		skills []string
		want   string
	}{
		{"data architect profile", []string{"certified data solution architecture"}, "Data Architect"},
		{"data profile", []string{"certified database administration"}, "Data Engineer"},
		{"software profile", []string{"certified software tester"}, "Software Engineer"},
		{"generic profile", []string{"ms"}, "Software Developer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile := &models.CandidateProfile{Skills: tt.skills}
			queries := DeriveQueries(profile, 3)
			if len(queries) == 0 || queries[0] != tt.want {
				t.Errorf("queries = %v, want first %q", queries, tt.want)
			}
		})
	}
}

func TestDeriveQueriesCap(t *testing.T) {
	profile := &models.CandidateProfile{
		Skills:       []string{"Python", "SQL", "Spark"},
		RecentTitles: []string{"Senior Data Engineer", "Data Architect", "Platform Engineer"},
	}

	if got := DeriveQueries(profile, 2); len(got) != 2 {
		t.Errorf("expected 2 queries, got %d", len(got))
	}
	if got := DeriveQueries(profile, 0); got != nil {
		t.Errorf("expected nil for zero limit, got %v", got)
	}
}

func TestDeriveQueriesShortTitlesIgnored(t *testing.T) {
	profile := &models.CandidateProfile{
		Skills:       []string{"excel"},
		RecentTitles: []string{"CEO", "   "},
	}

	queries := DeriveQueries(profile, 3)
	for _, q := range queries {
		if strings.Contains(strings.ToLower(q), "ceo") {
			t.Errorf("short title leaked into query %q", q)
		}
	}
}
