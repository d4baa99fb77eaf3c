package candidates

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scoredCandidates(n int) []Candidate {
	list := make([]Candidate, 0, n)
	for i := 0; i < n; i++ {
		score := float64(i)
		list = append(list, Candidate{
			ID:         fmt.Sprintf("cand-%d", i),
			Name:       fmt.Sprintf("Candidate %d", i),
			MatchScore: &score,
		})
	}
	return list
}

func TestRankPageSlicing(t *testing.T) {
	list := scoredCandidates(23)

	state := NewPagerState().WithPage(3)
	page := RankPage(list, state)

	assert.Len(t, page.Items, 3)
	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, 23, page.TotalItems)
	assert.Equal(t, 21, page.Items[0].Rank)
	assert.Equal(t, 23, page.Items[2].Rank)

	// Switching the page size resets to the first page.
	state = state.WithPageSize(5)
	assert.Equal(t, 1, state.Page)
	page = RankPage(list, state)
	assert.Len(t, page.Items, 5)
	assert.Equal(t, 5, page.TotalPages)
	assert.Equal(t, 1, page.Items[0].Rank)
}

func TestRankPageSortsDescending(t *testing.T) {
	list := scoredCandidates(10)
	page := RankPage(list, NewPagerState())

	require.Len(t, page.Items, 10)
	for i := 1; i < len(page.Items); i++ {
		prev := *page.Items[i-1].MatchScore
		cur := *page.Items[i].MatchScore
		assert.GreaterOrEqual(t, prev, cur)
	}
	assert.Equal(t, "cand-9", page.Items[0].ID)
}

func TestRankPageStableForTies(t *testing.T) {
	score := 75.0
	list := []Candidate{
		{ID: "first", MatchScore: &score},
		{ID: "second", MatchScore: &score},
		{ID: "third", MatchScore: &score},
	}
	page := RankPage(list, NewPagerState())

	require.Len(t, page.Items, 3)
	assert.Equal(t, "first", page.Items[0].ID)
	assert.Equal(t, "second", page.Items[1].ID)
	assert.Equal(t, "third", page.Items[2].ID)
}

func TestRankPageMissingScoresSortAsZero(t *testing.T) {
	high := 90.0
	list := []Candidate{
		{ID: "unscored"},
		{ID: "scored", MatchScore: &high},
	}
	page := RankPage(list, NewPagerState())

	require.Len(t, page.Items, 2)
	assert.Equal(t, "scored", page.Items[0].ID)
	assert.Equal(t, "unscored", page.Items[1].ID)
}

func TestRankPageAlternateSortKeys(t *testing.T) {
	lowGPA, highGPA := 2.8, 3.9
	shortExp, longExp := 1.0, 7.5
	list := []Candidate{
		{ID: "a", GPA: &lowGPA, TotalExperience: &longExp},
		{ID: "b", GPA: &highGPA, TotalExperience: &shortExp},
	}

	page := RankPage(list, NewPagerState().WithSortKey(SortByGPA))
	assert.Equal(t, "b", page.Items[0].ID)

	page = RankPage(list, NewPagerState().WithSortKey(SortByTotalExperience))
	assert.Equal(t, "a", page.Items[0].ID)
}

func TestRankPageClampsOutOfRangePage(t *testing.T) {
	list := scoredCandidates(8)

	page := RankPage(list, NewPagerState().WithPage(99))
	assert.Equal(t, 1, page.Page)
	assert.Len(t, page.Items, 8)

	page = RankPage(list, PagerState{SortKey: SortByMatchScore, Page: -4, PageSize: 5})
	assert.Equal(t, 1, page.Page)
	assert.Len(t, page.Items, 5)
}

func TestRankPageEmptyInput(t *testing.T) {
	page := RankPage(nil, NewPagerState())
	assert.Empty(t, page.Items)
	assert.Equal(t, 0, page.TotalPages)
	assert.Equal(t, 0, page.TotalItems)
}

func TestRankPageDoesNotMutateInput(t *testing.T) {
	list := scoredCandidates(6)
	original := make([]string, len(list))
	for i, c := range list {
		original[i] = c.ID
	}

	_ = RankPage(list, NewPagerState())

	for i, c := range list {
		assert.Equal(t, original[i], c.ID)
	}
}

func TestPagerStateFallbacks(t *testing.T) {
	state := NewPagerState().WithSortKey("salary")
	assert.Equal(t, SortByMatchScore, state.SortKey)

	state = state.WithPageSize(7)
	assert.Equal(t, DefaultPageSize, state.PageSize)
	assert.Equal(t, 1, state.Page)
}
