package jobs

// Job is one open position candidates are screened against.
type Job struct {
	ID                 string   `json:"id"`
	JobTitle           string   `json:"job_title"`
	MinGPA             *float64 `json:"min_gpa"`
	DegreeRequirements string   `json:"degree_requirements"`
	JobDescription     string   `json:"job_description"`
}
