package sources

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"

	"careercompass-jobs/pkg/models"
)

var salaryPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\$[\d,]+\s*-\s*\$[\d,]+`),
	regexp.MustCompile(`£[\d,]+\s*-\s*£[\d,]+`),
	regexp.MustCompile(`€[\d,]+\s*-\s*€[\d,]+`),
	regexp.MustCompile(`\$[\d,]+`),
	regexp.MustCompile(`£[\d,]+`),
	regexp.MustCompile(`€[\d,]+`),
}

// cleanText strips HTML markup from provider text and collapses whitespace.
// Providers mix plain text, entities and full HTML fragments in the same
// fields, so everything goes through the same parser.
func cleanText(text string) string {
	if text == "" {
		return ""
	}

	if strings.ContainsAny(text, "<&") {
		doc, err := goquery.NewDocumentFromReader(strings.NewReader(text))
		if err == nil {
			text = doc.Text()
		}
	}

	return strings.Join(strings.Fields(text), " ")
}

// extractSalaryRange normalizes provider salary text into a short
// human-readable range string. Unrecognized formats pass through untouched.
func extractSalaryRange(salaryText string) string {
	if salaryText == "" {
		return ""
	}
	for _, p := range salaryPatterns {
		if match := p.FindString(salaryText); match != "" {
			return match
		}
	}
	return salaryText
}

// formatSalaryBounds renders numeric salary bounds the way aggregator
// providers expose them: a range, or an open-ended minimum.
func formatSalaryBounds(min, max float64) string {
	switch {
	case min > 0 && max > 0:
		return fmt.Sprintf("$%s - $%s", groupThousands(int64(min)), groupThousands(int64(max)))
	case min > 0:
		return fmt.Sprintf("$%s+", groupThousands(int64(min)))
	default:
		return ""
	}
}

func groupThousands(n int64) string {
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}

// normalizeExperienceLevel maps a provider's free-text seniority label onto
// the canonical bracket enum.
func normalizeExperienceLevel(raw string) models.ExperienceLevel {
	level := strings.ToLower(raw)
	switch {
	case level == "" || strings.Contains(level, "not specified") || strings.Contains(level, "unspecified"):
		return models.ExperienceUnspecified
	case strings.Contains(level, "principal") || strings.Contains(level, "staff") || strings.Contains(level, "director"):
		return models.ExperiencePrincipal
	case strings.Contains(level, "lead") || strings.Contains(level, "head"):
		return models.ExperienceLead
	case strings.Contains(level, "senior"):
		return models.ExperienceSenior
	case strings.Contains(level, "junior") || strings.Contains(level, "entry") ||
		strings.Contains(level, "graduate") || strings.Contains(level, "intern"):
		return models.ExperienceEntryLevel
	case strings.Contains(level, "mid") || strings.Contains(level, "intermediate"):
		return models.ExperienceMidLevel
	default:
		return models.ExperienceUnspecified
	}
}

// truncateSnippet limits descriptions to a short snippet for responses.
// The cut lands on a rune boundary so multi-byte text is never split.
func truncateSnippet(text string, max int) string {
	if len(text) <= max {
		return text
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(text[cut]) {
		cut--
	}
	return text[:cut] + "..."
}
