package recommend

import (
	"context"
	"fmt"
	"testing"
	"time"

	"careercompass-jobs/internal/aggregator"
	"careercompass-jobs/internal/cache"
	"careercompass-jobs/internal/config"
	"careercompass-jobs/internal/location"
	"careercompass-jobs/internal/sources"
	"careercompass-jobs/pkg/models"
)

// countingClient serves canned postings and records how often it was hit.
type countingClient struct {
	jobs  []models.JobPosting
	calls int
}

func (c *countingClient) Name() string    { return "fake" }
func (c *countingClient) Available() bool { return true }

func (c *countingClient) Search(_ context.Context, _, _, _ string) ([]models.JobPosting, error) {
	c.calls++
	return c.jobs, nil
}

func testServiceConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Aggregator.MaxQueries = 1
	cfg.Aggregator.QueryDelay = time.Millisecond
	cfg.Aggregator.RequestDeadline = 5 * time.Second
	cfg.Aggregator.MaxResults = 15
	cfg.Cache.ProfileTTL = time.Minute
	cfg.Cache.UserTTL = time.Minute
	return cfg
}

func newTestService(cfg *config.Config, client sources.Client) *Service {
	resolver := location.NewResolver()
	agg := aggregator.New(cfg, []sources.Client{client}, resolver)
	return NewService(cfg, agg, resolver, cache.NewProfileCache(cfg.Cache.ProfileTTL), cache.NewUserCache(cfg.Cache.UserTTL), nil)
}

func engineerPostings(n int) []models.JobPosting {
	out := make([]models.JobPosting, n)
	for i := range out {
		out[i] = models.JobPosting{
			Title:    fmt.Sprintf("Data Engineer %d", i),
			Company:  fmt.Sprintf("Company %d", i),
			ApplyURL: "https://example.org/apply",
			Location: "Amsterdam, Netherlands",
		}
	}
	return out
}

func sampleRequest() *models.RecommendRequest {
	return &models.RecommendRequest{
		Skills:       []string{"Python", "SQL"},
		RecentTitles: []string{"Senior Data Engineer"},
		Location:     "Amsterdam, Netherlands",
	}
}

func TestRecommendFreshRun(t *testing.T) {
	client := &countingClient{jobs: engineerPostings(3)}
	svc := newTestService(testServiceConfig(), client)

	result, err := svc.Recommend(context.Background(), sampleRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.FromCache {
		t.Error("fresh run must not be served from cache")
	}
	if len(result.Jobs) != 3 {
		t.Fatalf("expected 3 jobs, got %d", len(result.Jobs))
	}
	if result.Country != "Netherlands" {
		t.Errorf("Country = %q, want Netherlands", result.Country)
	}
	if client.calls == 0 {
		t.Error("expected the source to be queried")
	}
}

func TestRecommendProfileCacheHit(t *testing.T) {
	client := &countingClient{jobs: engineerPostings(2)}
	svc := newTestService(testServiceConfig(), client)

	first, err := svc.Recommend(context.Background(), sampleRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	callsAfterFirst := client.calls

	second, err := svc.Recommend(context.Background(), sampleRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !second.FromCache {
		t.Error("expected second run to hit the profile cache")
	}
	if client.calls != callsAfterFirst {
		t.Error("cached run must not query sources")
	}
	if len(second.Jobs) != len(first.Jobs) {
		t.Errorf("cached run returned %d jobs, fresh run %d", len(second.Jobs), len(first.Jobs))
	}
}

func TestRecommendUserTierBackfill(t *testing.T) {
	client := &countingClient{jobs: engineerPostings(2)}
	svc := newTestService(testServiceConfig(), client)

	req := sampleRequest()
	req.UserID = "user-1"

	if _, err := svc.Recommend(context.Background(), req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	stats := svc.CacheStats()
	if stats.Users.ActiveUsers != 1 {
		t.Errorf("active users = %d, want 1", stats.Users.ActiveUsers)
	}

	second, err := svc.Recommend(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !second.FromCache {
		t.Error("expected user tier hit")
	}
}

func TestRecommendForceRefresh(t *testing.T) {
	client := &countingClient{jobs: engineerPostings(2)}
	svc := newTestService(testServiceConfig(), client)

	req := sampleRequest()
	if _, err := svc.Recommend(context.Background(), req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	callsAfterFirst := client.calls

	req.ForceRefresh = true
	result, err := svc.Recommend(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.FromCache {
		t.Error("force refresh must bypass caches")
	}
	if client.calls == callsAfterFirst {
		t.Error("force refresh must query sources again")
	}
}

func TestRecommendRejectsUnusableProfile(t *testing.T) {
	client := &countingClient{jobs: engineerPostings(1)}
	svc := newTestService(testServiceConfig(), client)

	req := &models.RecommendRequest{Skills: []string{"   ", ""}}
	if _, err := svc.Recommend(context.Background(), req); err == nil {
		t.Fatal("expected error for profile without usable skills")
	}
	if client.calls != 0 {
		t.Error("unusable profile must not trigger aggregation")
	}
}

func TestRecommendEmptyRunNotCached(t *testing.T) {
	client := &countingClient{}
	svc := newTestService(testServiceConfig(), client)

	result, err := svc.Recommend(context.Background(), sampleRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Jobs) != 0 {
		t.Fatalf("expected no jobs, got %d", len(result.Jobs))
	}
	if result.Message == "" {
		t.Error("expected an explanatory message for empty results")
	}

	stats := svc.CacheStats()
	if stats.Profile.Sets != 0 {
		t.Errorf("empty run was cached: sets = %d", stats.Profile.Sets)
	}
}

func TestRecommendCapsResults(t *testing.T) {
	cfg := testServiceConfig()
	cfg.Aggregator.MaxResults = 5
	client := &countingClient{jobs: engineerPostings(20)}
	svc := newTestService(cfg, client)

	result, err := svc.Recommend(context.Background(), sampleRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Jobs) != 5 {
		t.Fatalf("expected capped result of 5, got %d", len(result.Jobs))
	}
}

func TestInvalidateAndRefreshUser(t *testing.T) {
	client := &countingClient{jobs: engineerPostings(1)}
	svc := newTestService(testServiceConfig(), client)

	req := sampleRequest()
	req.UserID = "user-1"
	if _, err := svc.Recommend(context.Background(), req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !svc.InvalidateUser(context.Background(), "user-1") {
		t.Error("expected invalidation of cached user to report true")
	}
	if svc.InvalidateUser(context.Background(), "user-1") {
		t.Error("expected second invalidation to report false")
	}

	if count := svc.RefreshUser(context.Background(), "user-1"); count != 1 {
		t.Errorf("refresh count = %d, want 1", count)
	}
	if count := svc.RefreshUser(context.Background(), "user-1"); count != 2 {
		t.Errorf("refresh count = %d, want 2", count)
	}
}

func TestClearCaches(t *testing.T) {
	client := &countingClient{jobs: engineerPostings(1)}
	svc := newTestService(testServiceConfig(), client)

	req := sampleRequest()
	req.UserID = "user-1"
	if _, err := svc.Recommend(context.Background(), req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	profileEntries, userEntries := svc.ClearCaches()
	if profileEntries != 1 || userEntries != 1 {
		t.Errorf("cleared %d/%d entries, want 1/1", profileEntries, userEntries)
	}
}
