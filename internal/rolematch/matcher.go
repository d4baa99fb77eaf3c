package rolematch

import (
	"sort"
	"strings"
)

// Scoring constants. The threshold and weights are named so tests can pin
// exact boundary behavior.
const (
	// acceptThreshold is the score a candidate alias must exceed (strictly)
	// before the query is treated as a role search.
	acceptThreshold = 0.6

	// minSubstringLen guards short inputs: queries shorter than this are only
	// eligible for exact-equality and whole-token overlap, never substring or
	// partial-token scoring. Short aliases like "ba" remain reachable through
	// exact equality.
	minSubstringLen = 3

	tokenOverlapBase    = 0.6
	tokenOverlapWeight  = 0.4
	aliasContainsBase   = 0.7
	aliasContainsWeight = 0.3
	inputContainsBase   = 0.8
	inputContainsWeight = 0.2
	partialTokenWeight  = 0.8
)

// Match fuzzy-matches a free-text query against the role alias table. It
// returns the canonical role key and true when an alias scores above the
// acceptance threshold; otherwise it returns "" and false, and the caller
// should treat the query as a literal skill search.
func Match(query string) (string, bool) {
	role, score := bestMatch(query)
	if score > acceptThreshold {
		return role, true
	}
	return "", false
}

func bestMatch(query string) (string, float64) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return "", 0
	}
	qTokens := strings.Fields(q)

	// Sorted iteration keeps tie-breaking deterministic across calls.
	roles := make([]string, 0, len(roleAliases))
	for role := range roleAliases {
		roles = append(roles, role)
	}
	sort.Strings(roles)

	bestRole := ""
	bestScore := 0.0
	for _, role := range roles {
		for _, alias := range roleAliases[role] {
			if q == alias {
				return role, 1.0
			}
			score := scoreAlias(q, qTokens, alias)
			if score > bestScore {
				bestScore = score
				bestRole = role
			}
		}
	}
	return bestRole, bestScore
}

// scoreAlias combines the token-overlap, substring and partial-token rules
// and returns the highest score.
func scoreAlias(q string, qTokens []string, alias string) float64 {
	aTokens := strings.Fields(alias)
	score := tokenOverlapScore(qTokens, aTokens)

	if len(q) >= minSubstringLen {
		if s := substringScore(q, alias); s > score {
			score = s
		}
		if s := partialTokenScore(qTokens, aTokens); s > score {
			score = s
		}
	}
	return score
}

func tokenOverlapScore(qTokens, aTokens []string) float64 {
	overlap := 0
	for _, qt := range qTokens {
		for _, at := range aTokens {
			if qt == at {
				overlap++
				break
			}
		}
	}
	if overlap == 0 {
		return 0
	}
	return tokenOverlapBase + tokenOverlapWeight*float64(overlap)/float64(maxInt(len(qTokens), len(aTokens)))
}

func substringScore(q, alias string) float64 {
	score := 0.0
	if strings.Contains(alias, q) {
		score = aliasContainsBase + aliasContainsWeight*float64(len(q))/float64(len(alias))
	}
	if strings.Contains(q, alias) {
		if s := inputContainsBase + inputContainsWeight*float64(len(alias))/float64(len(q)); s > score {
			score = s
		}
	}
	return score
}

func partialTokenScore(qTokens, aTokens []string) float64 {
	matched := 0
	for _, qt := range qTokens {
		for _, at := range aTokens {
			if tokensRelated(qt, at) {
				matched++
				break
			}
		}
	}
	if matched == 0 {
		return 0
	}
	return partialTokenWeight * float64(matched) / float64(maxInt(len(qTokens), len(aTokens)))
}

// tokensRelated reports whether two tokens are prefixes of one another, or
// overlap as substrings when both are at least minSubstringLen long.
func tokensRelated(a, b string) bool {
	if strings.HasPrefix(a, b) || strings.HasPrefix(b, a) {
		return true
	}
	if len(a) >= minSubstringLen && len(b) >= minSubstringLen {
		return strings.Contains(a, b) || strings.Contains(b, a)
	}
	return false
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
