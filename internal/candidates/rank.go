package candidates

import "sort"

// Sort keys accepted by RankPage. Sorting is descending only.
const (
	SortByMatchScore      = "match_score"
	SortByGPA             = "gpa"
	SortByTotalExperience = "total_experience"
)

// DefaultPageSize is used when the caller supplies no page size.
const DefaultPageSize = 10

var allowedPageSizes = map[int]bool{5: true, 10: true, 25: true, 50: true}

// ValidSortKey reports whether key is one of the supported sort keys.
func ValidSortKey(key string) bool {
	switch key {
	case SortByMatchScore, SortByGPA, SortByTotalExperience:
		return true
	}
	return false
}

// ValidPageSize reports whether size is one of the supported page sizes.
func ValidPageSize(size int) bool {
	return allowedPageSizes[size]
}

// RankedCandidate pairs a candidate with its 1-based position in the full
// sorted list. Rank is derived at read time, never persisted.
type RankedCandidate struct {
	Candidate
	Rank int `json:"rank"`
}

// Page is one page of ranked candidates.
type Page struct {
	Items      []RankedCandidate `json:"data"`
	Page       int               `json:"page"`
	PageSize   int               `json:"page_size"`
	TotalPages int               `json:"total_pages"`
	TotalItems int               `json:"total_items"`
}

// PagerState holds the paging controls for a ranking view. Transitions
// return a new state and never mutate the receiver.
type PagerState struct {
	SortKey  string
	Page     int
	PageSize int
}

// NewPagerState returns the default paging controls.
func NewPagerState() PagerState {
	return PagerState{SortKey: SortByMatchScore, Page: 1, PageSize: DefaultPageSize}
}

// WithSortKey switches the sort key. Unknown keys fall back to match_score.
func (s PagerState) WithSortKey(key string) PagerState {
	if !ValidSortKey(key) {
		key = SortByMatchScore
	}
	s.SortKey = key
	return s
}

// WithPage moves to the given page. Values below 1 snap to 1; RankPage
// clamps the upper bound against the actual total.
func (s PagerState) WithPage(page int) PagerState {
	if page < 1 {
		page = 1
	}
	s.Page = page
	return s
}

// WithPageSize switches the page size and resets to the first page.
// Unsupported sizes fall back to the default.
func (s PagerState) WithPageSize(size int) PagerState {
	if !allowedPageSizes[size] {
		size = DefaultPageSize
	}
	s.PageSize = size
	s.Page = 1
	return s
}

// RankPage sorts candidates descending by the state's sort key and returns
// the requested page. The sort is stable, so candidates with equal keys keep
// their incoming relative order. Missing numeric fields sort as 0. A page
// beyond the last clamps to the last page. The input slice is not modified.
func RankPage(list []Candidate, state PagerState) Page {
	state = state.WithSortKey(state.SortKey)
	if !allowedPageSizes[state.PageSize] {
		state.PageSize = DefaultPageSize
	}
	if state.Page < 1 {
		state.Page = 1
	}

	sorted := make([]Candidate, len(list))
	copy(sorted, list)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sortValue(sorted[i], state.SortKey) > sortValue(sorted[j], state.SortKey)
	})

	totalPages := (len(sorted) + state.PageSize - 1) / state.PageSize
	if totalPages > 0 && state.Page > totalPages {
		state.Page = totalPages
	}

	start := (state.Page - 1) * state.PageSize
	if start > len(sorted) {
		start = len(sorted)
	}
	end := start + state.PageSize
	if end > len(sorted) {
		end = len(sorted)
	}

	items := make([]RankedCandidate, 0, end-start)
	for i := start; i < end; i++ {
		items = append(items, RankedCandidate{Candidate: sorted[i], Rank: i + 1})
	}

	return Page{
		Items:      items,
		Page:       state.Page,
		PageSize:   state.PageSize,
		TotalPages: totalPages,
		TotalItems: len(sorted),
	}
}

func sortValue(c Candidate, key string) float64 {
	switch key {
	case SortByGPA:
		return floatValue(c.GPA)
	case SortByTotalExperience:
		return floatValue(c.TotalExperience)
	default:
		return floatValue(c.MatchScore)
	}
}

func floatValue(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
