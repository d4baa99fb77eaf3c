package candidates

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func seedSearchable(t *testing.T, repo *MemoryRepo, id, jobID string, score *float64) {
	t.Helper()
	err := repo.Create(context.Background(), Candidate{
		ID:         id,
		JobID:      jobID,
		Name:       "Candidate " + id,
		MatchScore: score,
		Skills:     []string{"Go"},
	})
	require.NoError(t, err)
}

func TestSearchResultsSortedByMatchScoreDescending(t *testing.T) {
	repo := NewMemoryRepo()
	low, high, mid := 10.0, 90.0, 50.0
	// Separate jobs so results cross map entries inside the memory repo.
	seedSearchable(t, repo, "cand-low", "job-1", &low)
	seedSearchable(t, repo, "cand-high", "job-2", &high)
	seedSearchable(t, repo, "cand-mid", "job-3", &mid)
	seedSearchable(t, repo, "cand-unscored", "job-4", nil)

	svc := NewService(repo)
	results, _, err := svc.Search(context.Background(), "go")
	require.NoError(t, err)
	require.Len(t, results, 4)

	ids := make([]string, len(results))
	for i, c := range results {
		ids[i] = c.ID
	}
	require.Equal(t, []string{"cand-high", "cand-mid", "cand-low", "cand-unscored"}, ids)
}

func TestSearchSortIsStableForEqualScores(t *testing.T) {
	repo := NewMemoryRepo()
	score := 75.0
	seedSearchable(t, repo, "cand-a", "job-1", &score)
	seedSearchable(t, repo, "cand-b", "job-1", &score)

	svc := NewService(repo)
	results, _, err := svc.Search(context.Background(), "go")
	require.NoError(t, err)
	require.Len(t, results, 2)
	require.Equal(t, "cand-a", results[0].ID)
	require.Equal(t, "cand-b", results[1].ID)
}
