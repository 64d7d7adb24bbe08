package sources

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"careercompass-jobs/internal/config"
	"careercompass-jobs/pkg/models"
)

// adzunaCountryCodes maps canonical country names to Adzuna market codes.
// Markets Adzuna does not serve fall back to the US index.
var adzunaCountryCodes = map[string]string{
	"United States":  "us",
	"United Kingdom": "gb",
	"Germany":        "de",
	"France":         "fr",
	"Canada":         "ca",
	"Australia":      "au",
	"Netherlands":    "nl",
	"Austria":        "at",
	"Poland":         "pl",
}

// adzunaJob represents a single job in the Adzuna API response.
type adzunaJob struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Company struct {
		DisplayName string `json:"display_name"`
	} `json:"company"`
	Location struct {
		DisplayName string   `json:"display_name"`
		Area        []string `json:"area"`
	} `json:"location"`
	SalaryMin    float64 `json:"salary_min"`
	SalaryMax    float64 `json:"salary_max"`
	Description  string  `json:"description"`
	ContractType string  `json:"contract_type"`
	Created      string  `json:"created"`
	RedirectURL  string  `json:"redirect_url"`
}

// adzunaResponse is the top-level Adzuna search response.
type adzunaResponse struct {
	Results []adzunaJob `json:"results"`
}

// AdzunaClient fetches jobs from the Adzuna aggregator API.
type AdzunaClient struct {
	appID   string
	appKey  string
	baseURL string
	client  *http.Client
}

// NewAdzunaClient creates a new Adzuna client.
func NewAdzunaClient(cfg *config.Config, client *http.Client) *AdzunaClient {
	return &AdzunaClient{
		appID:   cfg.Sources.Adzuna.AppID,
		appKey:  cfg.Sources.Adzuna.AppKey,
		baseURL: cfg.Sources.Adzuna.BaseURL,
		client:  client,
	}
}

// Name returns the provenance label for Adzuna postings.
func (c *AdzunaClient) Name() string {
	return "Adzuna"
}

// Available reports whether Adzuna credentials were configured.
func (c *AdzunaClient) Available() bool {
	return c.appID != "" && c.appKey != ""
}

// Search queries the Adzuna market matching the country hint and normalizes
// the results.
func (c *AdzunaClient) Search(ctx context.Context, query, location, countryHint string) ([]models.JobPosting, error) {
	if !c.Available() {
		return nil, ErrSourceUnavailable
	}

	countryCode, ok := adzunaCountryCodes[countryHint]
	if !ok {
		countryCode = "us"
	}

	params := url.Values{}
	params.Set("app_id", c.appID)
	params.Set("app_key", c.appKey)
	params.Set("results_per_page", "20")
	params.Set("what", query)
	params.Set("content-type", "application/json")
	if location != "" {
		params.Set("where", location)
	}

	endpoint := fmt.Sprintf("%s/%s/search/1?%s", c.baseURL, countryCode, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("adzuna search: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("adzuna search: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("adzuna search: unexpected status %d", resp.StatusCode)
	}

	var azResp adzunaResponse
	if err := json.NewDecoder(resp.Body).Decode(&azResp); err != nil {
		return nil, fmt.Errorf("adzuna search: %w", err)
	}

	jobs := make([]models.JobPosting, 0, len(azResp.Results))
	for i, aj := range azResp.Results {
		id := aj.ID
		if id == "" {
			id = fmt.Sprintf("%d", i)
		}

		// Adzuna's area hierarchy starts at the country
		country := ""
		if len(aj.Location.Area) > 0 {
			country = aj.Location.Area[0]
		}

		description := cleanText(aj.Description)
		title := cleanText(aj.Title)
		remote := strings.Contains(strings.ToLower(title), "remote") ||
			strings.Contains(strings.ToLower(description), "remote")

		applyURL := aj.RedirectURL
		if applyURL == "" {
			applyURL = "https://www.adzuna.com/search?q=" + url.QueryEscape(title)
		}

		job := models.JobPosting{
			ID:              "adzuna:" + id,
			Title:           title,
			Company:         cleanText(aj.Company.DisplayName),
			Location:        cleanText(aj.Location.DisplayName),
			Country:         country,
			Salary:          formatSalaryBounds(aj.SalaryMin, aj.SalaryMax),
			Description:     truncateSnippet(description, 500),
			ExperienceLevel: models.ExperienceUnspecified,
			Remote:          remote,
			Source:          c.Name(),
			ApplyURL:        applyURL,
		}

		if aj.Created != "" {
			if t, err := time.Parse(time.RFC3339, aj.Created); err == nil {
				job.PostedAt = &t
			}
		}

		jobs = append(jobs, job)
	}

	return jobs, nil
}
