package candidates

import "context"

// Repo defines persistence operations for candidates.
type Repo interface {
	Create(ctx context.Context, candidate Candidate) error
	ListByJob(ctx context.Context, jobID string) ([]Candidate, error)
	Search(ctx context.Context, query string) ([]Candidate, error)
}
