package candidates

import (
	"context"
	"strings"
	"sync"
)

// MemoryRepo stores candidates in memory and is safe for concurrent use.
type MemoryRepo struct {
	mu    sync.RWMutex
	byID  map[string]Candidate
	byJob map[string][]Candidate
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		byID:  make(map[string]Candidate),
		byJob: make(map[string][]Candidate),
	}
}

// Create stores the candidate.
func (r *MemoryRepo) Create(ctx context.Context, candidate Candidate) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[candidate.ID] = candidate
	r.byJob[candidate.JobID] = append(r.byJob[candidate.JobID], candidate)
	return nil
}

// ListByJob returns all candidates attached to the job, in insertion order.
func (r *MemoryRepo) ListByJob(ctx context.Context, jobID string) ([]Candidate, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	stored := r.byJob[jobID]
	out := make([]Candidate, len(stored))
	copy(out, stored)
	return out, nil
}

// Search returns candidates whose name, education, or any skill contains the
// query, case-insensitively.
func (r *MemoryRepo) Search(ctx context.Context, query string) ([]Candidate, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	needle := strings.ToLower(strings.TrimSpace(query))
	if needle == "" {
		return []Candidate{}, nil
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []Candidate{}
	for _, jobCandidates := range r.byJob {
		for _, candidate := range jobCandidates {
			if candidateMatches(candidate, needle) {
				out = append(out, candidate)
			}
		}
	}
	return out, nil
}

func candidateMatches(candidate Candidate, needle string) bool {
	if strings.Contains(strings.ToLower(candidate.Name), needle) {
		return true
	}
	if strings.Contains(strings.ToLower(candidate.Education), needle) {
		return true
	}
	for _, skill := range candidate.Skills {
		if strings.Contains(strings.ToLower(skill), needle) {
			return true
		}
	}
	return false
}
