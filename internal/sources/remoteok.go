package sources

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"careercompass-jobs/internal/config"
	"careercompass-jobs/pkg/models"
)

const remoteOKMaxResults = 10

// remoteOKJob represents a single job in the RemoteOK API response.
type remoteOKJob struct {
	ID          json.Number `json:"id"`
	Position    string      `json:"position"`
	Company     string      `json:"company"`
	Tags        []string    `json:"tags"`
	Description string      `json:"description"`
	SalaryMin   float64     `json:"salary_min"`
	SalaryMax   float64     `json:"salary_max"`
	ApplyURL    string      `json:"apply_url"`
	URL         string      `json:"url"`
	Epoch       json.Number `json:"epoch"`
}

// RemoteOKClient fetches remote jobs from the RemoteOK public API. It needs
// no credentials and is always available.
type RemoteOKClient struct {
	baseURL   string
	userAgent string
	client    *http.Client
}

// NewRemoteOKClient creates a new RemoteOK client.
func NewRemoteOKClient(cfg *config.Config, client *http.Client) *RemoteOKClient {
	return &RemoteOKClient{
		baseURL:   cfg.Sources.RemoteOK.BaseURL,
		userAgent: cfg.Sources.UserAgent,
		client:    client,
	}
}

// Name returns the provenance label for RemoteOK postings.
func (c *RemoteOKClient) Name() string {
	return "RemoteOK"
}

// Available always reports true; RemoteOK requires no credentials.
func (c *RemoteOKClient) Available() bool {
	return true
}

// Search fetches the RemoteOK feed and filters it against the query terms.
// The location arguments are ignored; every posting is remote.
func (c *RemoteOKClient) Search(ctx context.Context, query, _, _ string) ([]models.JobPosting, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL, nil)
	if err != nil {
		return nil, fmt.Errorf("remoteok search: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("remoteok search: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("remoteok search: unexpected status %d", resp.StatusCode)
	}

	var feed []json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&feed); err != nil {
		return nil, fmt.Errorf("remoteok search: %w", err)
	}

	terms := strings.Fields(strings.ToLower(query))

	jobs := make([]models.JobPosting, 0, remoteOKMaxResults)
	// The first feed element is a legal notice, not a posting
	for _, raw := range feed[min(1, len(feed)):] {
		if len(jobs) >= remoteOKMaxResults {
			break
		}

		var rj remoteOKJob
		if err := json.Unmarshal(raw, &rj); err != nil || rj.Position == "" {
			continue
		}

		if !matchesTerms(&rj, terms) {
			continue
		}

		id := rj.ID.String()
		applyURL := rj.ApplyURL
		if applyURL == "" {
			applyURL = rj.URL
		}
		if applyURL == "" {
			applyURL = "https://remoteok.io/remote-jobs/" + id
		}

		job := models.JobPosting{
			ID:              "remoteok:" + id,
			Title:           cleanText(rj.Position),
			Company:         cleanText(rj.Company),
			Location:        "Remote",
			Salary:          formatSalaryBounds(rj.SalaryMin, rj.SalaryMax),
			Description:     truncateSnippet(cleanText(rj.Description), 500),
			RequiredSkills:  rj.Tags,
			ExperienceLevel: models.ExperienceUnspecified,
			Remote:          true,
			Source:          c.Name(),
			ApplyURL:        applyURL,
		}

		if epoch, err := rj.Epoch.Int64(); err == nil && epoch > 0 {
			t := time.Unix(epoch, 0)
			job.PostedAt = &t
		}

		jobs = append(jobs, job)
	}

	return jobs, nil
}

// matchesTerms reports whether any query term appears in the posting's
// position or description. An empty query matches everything.
func matchesTerms(rj *remoteOKJob, terms []string) bool {
	if len(terms) == 0 {
		return true
	}
	position := strings.ToLower(rj.Position)
	description := strings.ToLower(rj.Description)
	for _, term := range terms {
		if strings.Contains(position, term) || strings.Contains(description, term) {
			return true
		}
	}
	return false
}
