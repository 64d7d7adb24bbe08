package aggregator

import (
	"context"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"careercompass-jobs/internal/config"
	"careercompass-jobs/internal/location"
	"careercompass-jobs/internal/logging"
	"careercompass-jobs/internal/sources"
	"careercompass-jobs/pkg/models"
)

// suspiciousTitleKeywords flag spam postings that no provider filter caught.
var suspiciousTitleKeywords = []string{
	"make money", "work from home", "easy money", "no experience",
}

var placeholderCompanyKeywords = []string{"test", "example", "sample"}

// Aggregator fans profile-derived queries out across the configured job
// sources and merges the results into one deduplicated, validated set.
type Aggregator struct {
	clients  []sources.Client
	resolver *location.Resolver
	cfg      *config.Config
	logger   logging.Logger
	limiter  *rate.Limiter
}

// New creates an aggregator over the usable subset of the given clients.
func New(cfg *config.Config, clients []sources.Client, resolver *location.Resolver) *Aggregator {
	return &Aggregator{
		clients:  sources.AvailableClients(clients),
		resolver: resolver,
		cfg:      cfg,
		logger:   logging.GetGlobalLogger(),
		limiter:  rate.NewLimiter(rate.Every(cfg.Aggregator.QueryDelay), 1),
	}
}

// Sources returns the clients participating in fan-out.
func (a *Aggregator) Sources() []sources.Client {
	return a.clients
}

// Aggregate runs every derived query against every available source and
// returns the merged postings. Individual source failures are absorbed; a
// deadline on ctx bounds the whole fan-out and partial results win over
// none. Countries are normalized so ranking compares canonical names.
func (a *Aggregator) Aggregate(ctx context.Context, profile *models.CandidateProfile, countryHint string) []models.JobPosting {
	if len(a.clients) == 0 {
		a.logger.Warn("No job sources available, returning empty result set")
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, a.cfg.Aggregator.RequestDeadline)
	defer cancel()

	queries := DeriveQueries(profile, a.cfg.Aggregator.MaxQueries)
	a.logger.Info("Starting job aggregation", map[string]interface{}{
		"queries": queries,
		"sources": len(a.clients),
		"country": countryHint,
	})

	var (
		mu        sync.Mutex
		collected []models.JobPosting
	)

	for i, query := range queries {
		if i > 0 {
			// Pace query rounds so provider rate limits stay intact.
			if err := a.limiter.Wait(ctx); err != nil {
				break
			}
		}

		var wg sync.WaitGroup
		for _, client := range a.clients {
			wg.Add(1)
			go func(c sources.Client, q string) {
				defer wg.Done()

				start := time.Now()
				postings, err := c.Search(ctx, q, profile.Location, countryHint)
				if err != nil {
					a.logger.Warn("Job source query failed", map[string]interface{}{
						"source": c.Name(),
						"query":  q,
						"error":  err.Error(),
					})
					return
				}

				a.logger.Debug("Job source query completed", map[string]interface{}{
					"source":   c.Name(),
					"query":    q,
					"results":  len(postings),
					"duration": time.Since(start).String(),
				})

				mu.Lock()
				collected = append(collected, postings...)
				mu.Unlock()
			}(client, query)
		}
		wg.Wait()

		if ctx.Err() != nil {
			break
		}
	}

	merged := a.merge(collected)
	a.logger.Info("Job aggregation completed", map[string]interface{}{
		"raw_results":    len(collected),
		"merged_results": len(merged),
	})
	return merged
}

// merge deduplicates on normalized (title, company), drops invalid
// postings and fills in canonical countries. First occurrence wins so
// source ordering stays deterministic.
func (a *Aggregator) merge(postings []models.JobPosting) []models.JobPosting {
	seen := make(map[[2]string]struct{}, len(postings))
	out := make([]models.JobPosting, 0, len(postings))

	for _, p := range postings {
		if !validPosting(&p) {
			continue
		}

		key := [2]string{
			strings.ToLower(strings.TrimSpace(p.Title)),
			strings.ToLower(strings.TrimSpace(p.Company)),
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		if p.Country == "" {
			p.Country = a.resolver.Resolve(p.Location)
		} else if canonical := a.resolver.Resolve(p.Country); canonical != "" {
			p.Country = canonical
		}
		if !p.Remote && location.IsRemote(p.Location) {
			p.Remote = true
		}

		out = append(out, p)
	}
	return out
}

// validPosting enforces the minimum fields a posting needs to be shown
// and rejects obvious spam.
func validPosting(p *models.JobPosting) bool {
	if strings.TrimSpace(p.Title) == "" || strings.TrimSpace(p.Company) == "" || strings.TrimSpace(p.ApplyURL) == "" {
		return false
	}

	title := strings.ToLower(p.Title)
	if containsAny(title, suspiciousTitleKeywords) {
		return false
	}

	company := strings.ToLower(strings.TrimSpace(p.Company))
	if len(company) < 2 {
		return false
	}
	for _, kw := range placeholderCompanyKeywords {
		if company == kw || strings.HasPrefix(company, kw+" ") {
			return false
		}
	}
	return true
}
