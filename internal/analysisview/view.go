package analysisview

// Display sentinels for fields the backend did not return. The rendering
// layer shows these verbatim instead of blank values.
const (
	NotFound = "Not found"
	NA       = "N/A"
)

// ATS status labels derived from the compatibility score.
const (
	StatusExcellent = "Excellent"
	StatusGood      = "Good"
	StatusFair      = "Fair"
	StatusPoor      = "Poor"
)

// Format and readability labels.
const (
	FormatPass             = "Pass"
	FormatNeedsImprovement = "Needs Improvement"
	ReadabilityGood        = "Good"
	ReadabilityFair        = "Fair"
)

// Suggestion priorities.
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// AnalysisView is the single canonical analysis shape the UI renders from,
// independent of which backend endpoint produced the data.
type AnalysisView struct {
	OverallScore     int              `json:"overallScore"`
	Passed           bool             `json:"passed"`
	ATSCompatibility ATSCompatibility `json:"atsCompatibility"`
	KeywordAnalysis  KeywordAnalysis  `json:"keywordAnalysis"`
	JobInfo          JobInfo          `json:"jobInfo"`
	CandidateInfo    CandidateInfo    `json:"candidateInfo"`
	Suggestions      []Suggestion     `json:"suggestions"`
}

// ATSCompatibility describes how well the CV survives automated parsing.
type ATSCompatibility struct {
	Score            int    `json:"score"`
	FormatCheck      string `json:"formatCheck"`
	Readability      string `json:"readability"`
	SectionsComplete bool   `json:"sectionsComplete"`
	ContactComplete  bool   `json:"contactComplete"`
	StatusLabel      string `json:"statusLabel"`
}

// KeywordAnalysis summarizes keyword coverage against the job description.
type KeywordAnalysis struct {
	Matched          []string `json:"matched"`
	Missing          []string `json:"missing"`
	TotalWords       int      `json:"totalWords"`
	SkillsFoundCount int      `json:"skillsFoundCount"`
}

// JobInfo names the job the CV was scored against.
type JobInfo struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	Requirements string `json:"requirements,omitempty"`
}

// CandidateInfo carries the fields parsed out of the CV. Numeric fields are
// pointers so "not parsed" is distinguishable from zero.
type CandidateInfo struct {
	Name            string   `json:"name"`
	Email           string   `json:"email"`
	Phone           string   `json:"phone"`
	GPA             *float64 `json:"gpa,omitempty"`
	ExperienceYears *float64 `json:"experienceYears,omitempty"`
	Education       string   `json:"education"`
	Major           string   `json:"major"`
}

// Suggestion is one improvement hint shown to the job seeker.
type Suggestion struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
}

// DefaultView returns the all-default AnalysisView used when the raw payload
// matches no known shape. Every field is renderable.
func DefaultView() AnalysisView {
	view := AnalysisView{
		OverallScore: 0,
		Passed:       true,
		ATSCompatibility: ATSCompatibility{
			Score:       0,
			FormatCheck: FormatNeedsImprovement,
			Readability: ReadabilityFair,
			StatusLabel: StatusPoor,
		},
		KeywordAnalysis: KeywordAnalysis{
			Matched: []string{},
			Missing: []string{},
		},
		JobInfo: JobInfo{
			Title:       NotFound,
			Description: NotFound,
		},
		CandidateInfo: defaultCandidateInfo(),
	}
	view.Suggestions = genericSuggestions()
	return view
}

func defaultCandidateInfo() CandidateInfo {
	return CandidateInfo{
		Name:      NotFound,
		Email:     NotFound,
		Phone:     NotFound,
		Education: NA,
		Major:     NA,
	}
}
