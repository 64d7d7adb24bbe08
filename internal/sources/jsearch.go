package sources

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"careercompass-jobs/internal/config"
	"careercompass-jobs/pkg/models"
)

// jsearchJob represents a single job in the JSearch API response.
type jsearchJob struct {
	JobID              string   `json:"job_id"`
	Title              string   `json:"job_title"`
	EmployerName       string   `json:"employer_name"`
	City               string   `json:"job_city"`
	Country            string   `json:"job_country"`
	Description        string   `json:"job_description"`
	RequiredSkills     []string `json:"job_required_skills"`
	ExperienceRequired string   `json:"job_experience_required"`
	EmploymentType     string   `json:"job_employment_type"`
	IsRemote           bool     `json:"job_is_remote"`
	PostedAt           string   `json:"job_posted_at_datetime_utc"`
	ApplyLink          string   `json:"job_apply_link"`
	Salary             string   `json:"job_salary"`
}

// jsearchResponse is the top-level JSearch search response.
type jsearchResponse struct {
	Data []jsearchJob `json:"data"`
}

// JSearchClient fetches jobs from the JSearch aggregator on RapidAPI, which
// indexes LinkedIn and Indeed postings.
type JSearchClient struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// NewJSearchClient creates a new JSearch client.
func NewJSearchClient(cfg *config.Config, client *http.Client) *JSearchClient {
	return &JSearchClient{
		apiKey:  cfg.Sources.JSearch.APIKey,
		baseURL: cfg.Sources.JSearch.BaseURL,
		client:  client,
	}
}

// Name returns the provenance label for JSearch postings.
func (c *JSearchClient) Name() string {
	return "JSearch"
}

// Available reports whether a RapidAPI key was configured.
func (c *JSearchClient) Available() bool {
	return c.apiKey != ""
}

// Search queries JSearch and normalizes the results.
func (c *JSearchClient) Search(ctx context.Context, query, location, countryHint string) ([]models.JobPosting, error) {
	if !c.Available() {
		return nil, ErrSourceUnavailable
	}

	params := url.Values{}
	params.Set("query", query)
	params.Set("page", "1")
	params.Set("num_pages", "1")
	params.Set("date_posted", "month")
	if location != "" {
		params.Set("location", location)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/search?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("jsearch search: %w", err)
	}
	req.Header.Set("X-RapidAPI-Key", c.apiKey)
	req.Header.Set("X-RapidAPI-Host", "jsearch.p.rapidapi.com")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("jsearch search: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("jsearch search: unexpected status %d", resp.StatusCode)
	}

	var jsResp jsearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&jsResp); err != nil {
		return nil, fmt.Errorf("jsearch search: %w", err)
	}

	jobs := make([]models.JobPosting, 0, len(jsResp.Data))
	for i, jj := range jsResp.Data {
		id := jj.JobID
		if id == "" {
			id = fmt.Sprintf("%d", i)
		}

		loc := jj.City
		if jj.Country != "" {
			if loc != "" {
				loc += ", "
			}
			loc += jj.Country
		}

		applyURL := jj.ApplyLink
		if applyURL == "" {
			applyURL = "https://www.indeed.com/jobs?q=" + url.QueryEscape(jj.Title)
		}

		job := models.JobPosting{
			ID:              "jsearch:" + id,
			Title:           cleanText(jj.Title),
			Company:         cleanText(jj.EmployerName),
			Location:        cleanText(loc),
			Country:         jj.Country,
			Salary:          extractSalaryRange(jj.Salary),
			Description:     truncateSnippet(cleanText(jj.Description), 500),
			RequiredSkills:  jj.RequiredSkills,
			ExperienceLevel: normalizeExperienceLevel(jj.ExperienceRequired),
			Remote:          jj.IsRemote,
			Source:          c.Name(),
			ApplyURL:        applyURL,
		}

		if jj.PostedAt != "" {
			if t, err := time.Parse(time.RFC3339, jj.PostedAt); err == nil {
				job.PostedAt = &t
			}
		}

		jobs = append(jobs, job)
	}

	return jobs, nil
}
