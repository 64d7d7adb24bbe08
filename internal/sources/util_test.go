package sources

import (
	"strings"
	"testing"
	"unicode/utf8"

	"careercompass-jobs/pkg/models"
)

func TestCleanText(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"plain text", "plain text"},
		{"<p>Build <b>pipelines</b></p>", "Build pipelines"},
		{"spaces\n\tand   newlines", "spaces and newlines"},
		{"AT&amp;T role", "AT&T role"},
	}

	for _, tt := range tests {
		if got := cleanText(tt.input); got != tt.want {
			t.Errorf("cleanText(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestExtractSalaryRange(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"$80,000 - $120,000 per year", "$80,000 - $120,000"},
		{"€60,000 - €80,000", "€60,000 - €80,000"},
		{"from $95,000", "$95,000"},
		{"competitive", "competitive"},
	}

	for _, tt := range tests {
		if got := extractSalaryRange(tt.input); got != tt.want {
			t.Errorf("extractSalaryRange(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestFormatSalaryBounds(t *testing.T) {
	tests := []struct {
		min, max float64
		want     string
	}{
		{60000, 80000, "$60,000 - $80,000"},
		{95000, 0, "$95,000+"},
		{0, 0, ""},
		{1234567, 0, "$1,234,567+"},
	}

	for _, tt := range tests {
		if got := formatSalaryBounds(tt.min, tt.max); got != tt.want {
			t.Errorf("formatSalaryBounds(%v, %v) = %q, want %q", tt.min, tt.max, got, tt.want)
		}
	}
}

func TestNormalizeExperienceLevel(t *testing.T) {
	tests := []struct {
		input string
		want  models.ExperienceLevel
	}{
		{"", models.ExperienceUnspecified},
		{"Not specified", models.ExperienceUnspecified},
		{"Senior level, 7+ years", models.ExperienceSenior},
		{"Principal Engineer", models.ExperiencePrincipal},
		{"Staff position", models.ExperiencePrincipal},
		{"Team Lead", models.ExperienceLead},
		{"Junior / Graduate", models.ExperienceEntryLevel},
		{"Mid-level", models.ExperienceMidLevel},
		{"whatever else", models.ExperienceUnspecified},
	}

	for _, tt := range tests {
		if got := normalizeExperienceLevel(tt.input); got != tt.want {
			t.Errorf("normalizeExperienceLevel(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestTruncateSnippet(t *testing.T) {
	if got := truncateSnippet("short", 10); got != "short" {
		t.Errorf("truncateSnippet = %q", got)
	}
	if got := truncateSnippet("0123456789abc", 10); got != "0123456789..." {
		t.Errorf("truncateSnippet = %q", got)
	}

	// A cut that would land inside a multi-byte rune backs up to its start.
	if got := truncateSnippet("développeur", 2); got != "d..." {
		t.Errorf("truncateSnippet = %q", got)
	}
	if !utf8.ValidString(truncateSnippet(strings.Repeat("é", 300), 499)) {
		t.Error("expected truncated snippet to remain valid UTF-8")
	}
}
