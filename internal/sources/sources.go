package sources

import (
	"context"
	"errors"
	"net/http"

	"careercompass-jobs/internal/config"
	"careercompass-jobs/pkg/models"
)

// ErrSourceUnavailable is returned by clients that lack required
// configuration. Unavailable clients are excluded from fan-out at startup
// instead of failing per call.
var ErrSourceUnavailable = errors.New("job source unavailable")

// Client defines the interface for all external job-listing sources.
type Client interface {
	// Name returns the provenance label attached to postings from this source.
	Name() string

	// Available reports whether the client has the configuration it needs.
	Available() bool

	// Search runs one provider query and returns normalized postings.
	Search(ctx context.Context, query, location, countryHint string) ([]models.JobPosting, error)
}

// NewClients builds all configured source clients. Clients missing
// credentials are still returned; the aggregator skips them based on
// Available so their absence is visible in health checks.
func NewClients(cfg *config.Config) []Client {
	httpClient := &http.Client{Timeout: cfg.Sources.RequestTimeout}

	return []Client{
		NewJSearchClient(cfg, httpClient),
		NewAdzunaClient(cfg, httpClient),
		NewRemoteOKClient(cfg, httpClient),
	}
}

// AvailableClients filters the client list down to usable sources.
func AvailableClients(clients []Client) []Client {
	out := make([]Client, 0, len(clients))
	for _, c := range clients {
		if c.Available() {
			out = append(out, c)
		}
	}
	return out
}
