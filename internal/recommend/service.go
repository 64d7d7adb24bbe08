package recommend

import (
	"context"

	"careercompass-jobs/internal/aggregator"
	"careercompass-jobs/internal/cache"
	"careercompass-jobs/internal/config"
	"careercompass-jobs/internal/location"
	"careercompass-jobs/internal/logging"
	"careercompass-jobs/internal/scoring"
	"careercompass-jobs/pkg/models"
	"careercompass-jobs/pkg/utils"
)

// Result carries a recommendation run's output plus its provenance.
type Result struct {
	Jobs      []models.JobPosting
	FromCache bool
	Country   string
	Message   string
}

// Service orchestrates the recommendation pipeline: cache tiers first, then
// aggregation, profile filtering, ranking and the result cap.
type Service struct {
	cfg          *config.Config
	aggregator   *aggregator.Aggregator
	resolver     *location.Resolver
	profileCache *cache.ProfileCache
	userCache    *cache.UserCache
	redis        *cache.RedisClient
	logger       logging.Logger
}

// NewService wires the recommendation pipeline. The Redis client is
// optional; a nil client keeps the user tier purely in memory.
func NewService(cfg *config.Config, agg *aggregator.Aggregator, resolver *location.Resolver, profileCache *cache.ProfileCache, userCache *cache.UserCache, redis *cache.RedisClient) *Service {
	return &Service{
		cfg:          cfg,
		aggregator:   agg,
		resolver:     resolver,
		profileCache: profileCache,
		userCache:    userCache,
		redis:        redis,
		logger:       logging.GetGlobalLogger(),
	}
}

// Recommend produces ranked job recommendations for a candidate. Lookup
// order is user tier, then profile tier, then a full aggregation run.
// ForceRefresh skips both cache tiers but still stores the fresh result.
func (s *Service) Recommend(ctx context.Context, req *models.RecommendRequest) (*Result, error) {
	profile := req.Profile()
	if len(profile.NormalizedSkills()) == 0 {
		return nil, utils.NewProfileError("profile contains no usable skills")
	}

	fingerprint := cache.Fingerprint(&profile)
	country := s.resolver.Resolve(profile.Location)

	if !req.ForceRefresh {
		if result := s.lookupCached(ctx, req.UserID, fingerprint); result != nil {
			result.Country = country
			return result, nil
		}
	}

	jobs := s.aggregator.Aggregate(ctx, &profile, country)
	jobs = aggregator.FilterByProfile(jobs, &profile)
	jobs = scoring.Rank(jobs, &profile, country)

	if max := s.cfg.Aggregator.MaxResults; len(jobs) > max {
		jobs = jobs[:max]
	}

	result := &Result{Jobs: jobs, Country: country}
	if len(jobs) == 0 {
		// Empty runs are never cached; the next request retries
		result.Message = "no jobs found for this profile"
		return result, nil
	}

	s.profileCache.Store(fingerprint, jobs, s.cfg.Cache.ProfileTTL)
	s.storeUser(ctx, req.UserID, fingerprint, jobs)

	return result, nil
}

// lookupCached checks the user tier (memory, then Redis) and falls back to
// the profile tier. A profile-tier hit back-fills the user tier so the next
// request from the same user short-circuits earlier.
func (s *Service) lookupCached(ctx context.Context, userID, fingerprint string) *Result {
	if userID != "" {
		if jobs, ok := s.userCache.Lookup(userID, fingerprint); ok {
			return &Result{Jobs: jobs, FromCache: true}
		}
		if s.redis != nil {
			jobs, ok, err := s.redis.GetUserJobs(ctx, userID, fingerprint)
			if err != nil {
				s.logger.Warn("Redis user cache lookup failed", map[string]interface{}{
					"user_id": userID,
					"error":   err.Error(),
				})
			} else if ok {
				s.userCache.Store(userID, fingerprint, jobs, s.cfg.Cache.UserTTL)
				return &Result{Jobs: jobs, FromCache: true}
			}
		}
	}

	if jobs, ok := s.profileCache.Lookup(fingerprint); ok {
		if userID != "" {
			s.storeUser(ctx, userID, fingerprint, jobs)
		}
		return &Result{Jobs: jobs, FromCache: true}
	}
	return nil
}

func (s *Service) storeUser(ctx context.Context, userID, fingerprint string, jobs []models.JobPosting) {
	if userID == "" {
		return
	}

	s.userCache.Store(userID, fingerprint, jobs, s.cfg.Cache.UserTTL)
	if s.redis != nil {
		if err := s.redis.SetUserJobs(ctx, userID, fingerprint, jobs); err != nil {
			s.logger.Warn("Redis user cache store failed", map[string]interface{}{
				"user_id": userID,
				"error":   err.Error(),
			})
		}
	}
}

// InvalidateUser drops a user's cached recommendations from memory and Redis.
func (s *Service) InvalidateUser(ctx context.Context, userID string) bool {
	existed := s.userCache.Invalidate(userID)
	if s.redis != nil {
		if err := s.redis.DeleteUserJobs(ctx, userID); err != nil {
			s.logger.Warn("Redis user cache delete failed", map[string]interface{}{
				"user_id": userID,
				"error":   err.Error(),
			})
		}
	}
	return existed
}

// RefreshUser forces a user's next request to bypass the cache and returns
// their cumulative refresh count.
func (s *Service) RefreshUser(ctx context.Context, userID string) int64 {
	count := s.userCache.Refresh(userID)
	if s.redis != nil {
		if err := s.redis.DeleteUserJobs(ctx, userID); err != nil {
			s.logger.Warn("Redis user cache delete failed", map[string]interface{}{
				"user_id": userID,
				"error":   err.Error(),
			})
		}
	}
	return count
}

// ClearCaches empties both tiers, returning the dropped entry counts.
func (s *Service) ClearCaches() (profileEntries, userEntries int) {
	return s.profileCache.Clear(), s.userCache.Clear()
}

// CacheStats returns counters for both cache tiers.
func (s *Service) CacheStats() models.CacheStatsResponse {
	return models.CacheStatsResponse{
		Profile: s.profileCache.Stats(),
		Users:   s.userCache.Stats(),
	}
}
