package models

// RecommendRequest represents the request payload for a job recommendation run.
type RecommendRequest struct {
	Skills          []string `json:"skills" validate:"required,min=1,dive,min=1"`
	ExperienceYears *int     `json:"experience_years,omitempty" validate:"omitempty,gte=0,lte=60"`
	ExperienceText  string   `json:"experience_text,omitempty"`
	RecentTitles    []string `json:"recent_titles,omitempty" validate:"max=5"`
	Location        string   `json:"location,omitempty"`
	UserID          string   `json:"user_id,omitempty"`
	ForceRefresh    bool     `json:"force_refresh,omitempty"`
}

// Profile converts the request into the immutable profile consumed by the
// recommendation pipeline.
func (r *RecommendRequest) Profile() CandidateProfile {
	return CandidateProfile{
		Skills:          r.Skills,
		ExperienceYears: r.ExperienceYears,
		ExperienceText:  r.ExperienceText,
		RecentTitles:    r.RecentTitles,
		Location:        r.Location,
	}
}
