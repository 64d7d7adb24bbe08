package models

import "time"

// RecommendResponse represents the response from a recommendation request.
type RecommendResponse struct {
	Success        bool          `json:"success"`
	Jobs           []JobPosting  `json:"jobs"`
	Count          int           `json:"count"`
	Message        string        `json:"message,omitempty"`
	FromCache      bool          `json:"from_cache"`
	Country        string        `json:"detected_country,omitempty"`
	ProcessingTime time.Duration `json:"processing_time"`
	RequestID      string        `json:"request_id"`
}

// CacheStatsResponse exposes cache statistics for operational monitoring.
type CacheStatsResponse struct {
	Profile CacheStats `json:"profile_cache"`
	Users   UserStats  `json:"user_cache"`
}

// CacheStats reports the profile-tier cache counters.
type CacheStats struct {
	Hits           int64   `json:"hits"`
	Misses         int64   `json:"misses"`
	Sets           int64   `json:"sets"`
	Evictions      int64   `json:"evictions"`
	EntryCount     int     `json:"entry_count"`
	HitRatePercent float64 `json:"hit_rate_percent"`
}

// UserStats reports the user-tier cache counters.
type UserStats struct {
	ActiveUsers     int   `json:"active_users"`
	TotalCachedJobs int   `json:"total_cached_jobs"`
	Hits            int64 `json:"hits"`
	Misses          int64 `json:"misses"`
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Version   string            `json:"version"`
	Uptime    time.Duration     `json:"uptime"`
	Checks    map[string]string `json:"checks,omitempty"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error     string    `json:"error"`
	Message   string    `json:"message"`
	RequestID string    `json:"request_id"`
	Timestamp time.Time `json:"timestamp"`
}
