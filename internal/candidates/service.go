package candidates

import (
	"context"
	"sort"

	"screening-backend/internal/rolematch"
)

// Service coordinates candidate listing, ranking, and role-aware search.
type Service struct {
	Repo Repo
}

// NewService constructs a Service.
func NewService(repo Repo) *Service {
	return &Service{Repo: repo}
}

// ListRanked fetches the candidates for a job and returns the requested
// page of the ranked list.
func (s *Service) ListRanked(ctx context.Context, jobID string, state PagerState) (Page, error) {
	list, err := s.Repo.ListByJob(ctx, jobID)
	if err != nil {
		return Page{}, err
	}
	return RankPage(list, state), nil
}

// Search runs a candidate search. When the query fuzzy-matches a known job
// role the canonical role name is searched instead, and the substituted
// query is returned alongside the results so callers can surface it.
// Results come back sorted by match score descending regardless of which
// repo served them; candidates without a score sort last.
func (s *Service) Search(ctx context.Context, query string) ([]Candidate, string, error) {
	state := rolematch.QueryState{}.WithQuery(query)
	results, err := s.Repo.Search(ctx, state.EffectiveQuery())
	if err != nil {
		return nil, "", err
	}
	sort.SliceStable(results, func(i, j int) bool {
		return floatValue(results[i].MatchScore) > floatValue(results[j].MatchScore)
	})
	return results, state.CorrectedQuery, nil
}
