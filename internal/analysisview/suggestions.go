package analysisview

import "strings"

// Suggestion rule thresholds.
const (
	jobReqSuggestMax     = 80
	niceToHaveSuggestMax = 50
	maxListedKeywords    = 5
)

type suggestionInput struct {
	jobRequirementsPct *float64
	niceToHavePct      *float64
	educationFound     bool
	missingKeywords    []string
}

// buildSuggestions evaluates each rule independently and appends a suggestion
// for every rule that fires. The returned list is never empty: when nothing
// fires, a generic medium/low pair is emitted instead.
func buildSuggestions(in suggestionInput) []Suggestion {
	suggestions := make([]Suggestion, 0, 4)

	if in.jobRequirementsPct != nil && *in.jobRequirementsPct < jobReqSuggestMax {
		suggestions = append(suggestions, Suggestion{
			Title:       "Add Relevant Technical Keywords",
			Description: "Include the specific technologies and tools mentioned in the job description",
			Priority:    PriorityHigh,
		})
	}

	if in.niceToHavePct != nil && *in.niceToHavePct < niceToHaveSuggestMax {
		suggestions = append(suggestions, Suggestion{
			Title:       "Quantify Achievements",
			Description: "Add specific numbers and metrics to your accomplishments",
			Priority:    PriorityMedium,
		})
	}

	if !in.educationFound {
		suggestions = append(suggestions, Suggestion{
			Title:       "Highlight Relevant Education",
			Description: "Emphasize the educational background that matches the job requirements",
			Priority:    PriorityHigh,
		})
	}

	if len(in.missingKeywords) > 0 {
		listed := in.missingKeywords
		if len(listed) > maxListedKeywords {
			listed = listed[:maxListedKeywords]
		}
		suggestions = append(suggestions, Suggestion{
			Title:       "Add Required Keywords",
			Description: "Suggested keywords: " + strings.Join(listed, ", "),
			Priority:    PriorityHigh,
		})
	}

	if len(suggestions) == 0 {
		return genericSuggestions()
	}
	return suggestions
}

// genericSuggestions is the fallback pair shown when no rule fires.
func genericSuggestions() []Suggestion {
	return []Suggestion{
		{
			Title:       "Optimize for ATS",
			Description: "Make sure your CV parses cleanly in Applicant Tracking Systems",
			Priority:    PriorityMedium,
		},
		{
			Title:       "Skills Match",
			Description: "Your CV shows a good fit for this position",
			Priority:    PriorityLow,
		},
	}
}
