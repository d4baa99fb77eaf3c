package candidates

// Candidate represents one screened applicant attached to a job posting.
// Numeric fields are pointers so a score the screening pipeline never
// produced is distinguishable from a real zero.
type Candidate struct {
	ID              string   `json:"id"`
	JobID           string   `json:"-"`
	Name            string   `json:"name"`
	Email           string   `json:"email"`
	MatchScore      *float64 `json:"match_score"`
	GPA             *float64 `json:"gpa"`
	Education       string   `json:"education"`
	Skills          []string `json:"skills"`
	TotalExperience *float64 `json:"total_experience"`
	ScoringReason   string   `json:"scoring_reason,omitempty"`
}
