package analysisview

import (
	"encoding/json"
	"math"
	"strings"
)

// ATS score weighting for Astra-style responses. Reverse-engineered from the
// scoring backend; treat as the versioned default, not an immutable law.
const (
	atsJobReqWeight     = 0.6
	atsNiceToHaveWeight = 0.2
	atsEmailBonus       = 10
	atsPhoneBonus       = 10
)

// Label thresholds shared by both response shapes.
const (
	statusExcellentMin = 80
	statusGoodMin      = 60
	statusFairMin      = 40
	formatPassMin      = 70
	readabilityGoodMin = 65
	sectionsMin        = 60
)

// rawEnvelope covers the union of the supported backend response shapes.
// Presence of analysis_result marks Astra-style; presence of match_score
// marks General-style.
type rawEnvelope struct {
	AnalysisResult  *rawAstraResult     `json:"analysis_result"`
	MatchScore      *float64            `json:"match_score"`
	ATSFriendliness *rawATSFriendliness `json:"ats_friendliness"`
	KeywordAnalysis *rawKeywordAnalysis `json:"keyword_analysis"`
	JobInfo         *rawJobInfo         `json:"job_info"`
	ParsedInfo      *rawParsedInfo      `json:"parsed_info"`
}

type rawAstraResult struct {
	SkorAkhir  *float64       `json:"skor_akhir"`
	DetailSkor *rawDetailSkor `json:"detail_skor"`
	Lulus      *bool          `json:"lulus"`
}

type rawDetailSkor struct {
	JobRequirements *rawScoreComponent `json:"job_requirements"`
	NiceToHave      *rawScoreComponent `json:"nice_to_have"`
	Wajib           *rawWajib          `json:"wajib"`
}

type rawScoreComponent struct {
	Persentase *float64 `json:"persentase"`
}

type rawWajib struct {
	Detail *rawWajibDetail `json:"detail"`
}

type rawWajibDetail struct {
	Jurusan string `json:"jurusan"`
}

type rawATSFriendliness struct {
	CompatibilityScore *float64             `json:"compatibility_score"`
	OverallScore       *float64             `json:"overall_score"`
	ATSStatus          string               `json:"ats_status"`
	CommonSections     *rawCommonSections   `json:"common_sections"`
	ContactInfo        *rawContactChecklist `json:"contact_info"`
}

type rawCommonSections struct {
	Experience bool `json:"experience"`
	Education  bool `json:"education"`
}

type rawContactChecklist struct {
	EmailFound bool `json:"email_found"`
	PhoneFound bool `json:"phone_found"`
}

type rawKeywordAnalysis struct {
	MatchedKeywords  []string `json:"matched_keywords"`
	MissingKeywords  []string `json:"missing_keywords"`
	TotalWords       int      `json:"total_words"`
	SkillsFoundCount int      `json:"skills_found_count"`
}

type rawJobInfo struct {
	Nama         string `json:"nama"`
	Deskripsi    string `json:"deskripsi"`
	Requirements string `json:"requirements"`
}

type rawParsedInfo struct {
	Name            string   `json:"name"`
	Email           string   `json:"email"`
	Phone           string   `json:"phone"`
	GPA             *float64 `json:"gpa"`
	ExperienceYears *float64 `json:"experience_years"`
	Education       string   `json:"education"`
	Major           string   `json:"major"`
}

// Normalize maps any supported raw backend response into the canonical
// AnalysisView. It is total: unknown or malformed payloads produce the
// all-default view rather than an error, so callers always receive a
// renderable object.
func Normalize(raw json.RawMessage) AnalysisView {
	if len(raw) == 0 {
		return DefaultView()
	}
	var envelope rawEnvelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return DefaultView()
	}

	switch {
	case envelope.AnalysisResult != nil:
		return normalizeAstra(envelope)
	case envelope.MatchScore != nil:
		return normalizeGeneral(envelope)
	default:
		return DefaultView()
	}
}

func normalizeAstra(envelope rawEnvelope) AnalysisView {
	result := envelope.AnalysisResult

	overall := clampScore(roundScore(floatOrZero(result.SkorAkhir)))
	atsScore := astraATSScore(result, envelope.ParsedInfo)

	var jobReq, niceToHave *float64
	educationFound := false
	if result.DetailSkor != nil {
		if result.DetailSkor.JobRequirements != nil {
			jobReq = result.DetailSkor.JobRequirements.Persentase
		}
		if result.DetailSkor.NiceToHave != nil {
			niceToHave = result.DetailSkor.NiceToHave.Persentase
		}
		if result.DetailSkor.Wajib != nil && result.DetailSkor.Wajib.Detail != nil {
			educationFound = strings.TrimSpace(result.DetailSkor.Wajib.Detail.Jurusan) != ""
		}
	}

	view := AnalysisView{
		OverallScore: overall,
		Passed:       boolOrDefault(result.Lulus, true),
		ATSCompatibility: ATSCompatibility{
			Score:            atsScore,
			FormatCheck:      formatCheckLabel(atsScore),
			Readability:      readabilityLabel(atsScore),
			SectionsComplete: atsScore >= sectionsMin,
			ContactComplete:  envelope.ParsedInfo != nil && envelope.ParsedInfo.Email != "",
			StatusLabel:      statusLabel(atsScore),
		},
		KeywordAnalysis: normalizeKeywords(envelope.KeywordAnalysis),
		JobInfo:         normalizeJobInfo(envelope.JobInfo),
		CandidateInfo:   normalizeCandidateInfo(envelope.ParsedInfo),
	}
	view.Suggestions = buildSuggestions(suggestionInput{
		jobRequirementsPct: jobReq,
		niceToHavePct:      niceToHave,
		educationFound:     educationFound,
	})
	return view
}

func normalizeGeneral(envelope rawEnvelope) AnalysisView {
	overall := clampScore(roundScore(floatOrZero(envelope.MatchScore)))

	atsScore := 0
	statusOverride := ""
	sectionsComplete := false
	contactComplete := false
	if ats := envelope.ATSFriendliness; ats != nil {
		switch {
		case ats.CompatibilityScore != nil:
			atsScore = clampScore(roundScore(*ats.CompatibilityScore))
		case ats.OverallScore != nil:
			atsScore = clampScore(roundScore(*ats.OverallScore))
		}
		statusOverride = strings.TrimSpace(ats.ATSStatus)
		if ats.CommonSections != nil {
			sectionsComplete = ats.CommonSections.Experience && ats.CommonSections.Education
		}
		if ats.ContactInfo != nil {
			contactComplete = ats.ContactInfo.EmailFound && ats.ContactInfo.PhoneFound
		}
	}

	status := statusLabel(atsScore)
	if statusOverride != "" {
		status = statusOverride
	}

	jobInfo := JobInfo{
		Title:       "General CV Analysis",
		Description: "Analysis completed successfully",
	}
	if envelope.JobInfo != nil && strings.TrimSpace(envelope.JobInfo.Nama) != "" {
		jobInfo = normalizeJobInfo(envelope.JobInfo)
	}

	keywords := normalizeKeywords(envelope.KeywordAnalysis)

	view := AnalysisView{
		OverallScore: overall,
		Passed:       true,
		ATSCompatibility: ATSCompatibility{
			Score:            atsScore,
			FormatCheck:      formatCheckLabel(atsScore),
			Readability:      readabilityLabel(atsScore),
			SectionsComplete: sectionsComplete,
			ContactComplete:  contactComplete,
			StatusLabel:      status,
		},
		KeywordAnalysis: keywords,
		JobInfo:         jobInfo,
		CandidateInfo:   normalizeCandidateInfo(envelope.ParsedInfo),
	}
	view.Suggestions = buildSuggestions(suggestionInput{
		educationFound:  true,
		missingKeywords: keywords.Missing,
	})
	return view
}

// astraATSScore derives the ATS score from the Astra scoring detail plus
// contact bonuses, clamped into [0,100].
func astraATSScore(result *rawAstraResult, parsed *rawParsedInfo) int {
	score := 0.0
	if result.DetailSkor != nil {
		if jr := result.DetailSkor.JobRequirements; jr != nil && jr.Persentase != nil {
			score += *jr.Persentase * atsJobReqWeight
		}
		if nth := result.DetailSkor.NiceToHave; nth != nil && nth.Persentase != nil {
			score += *nth.Persentase * atsNiceToHaveWeight
		}
	}
	if parsed != nil {
		if parsed.Email != "" {
			score += atsEmailBonus
		}
		if parsed.Phone != "" {
			score += atsPhoneBonus
		}
	}
	return clampScore(roundScore(score))
}

func normalizeKeywords(raw *rawKeywordAnalysis) KeywordAnalysis {
	out := KeywordAnalysis{
		Matched: []string{},
		Missing: []string{},
	}
	if raw == nil {
		return out
	}
	if raw.MatchedKeywords != nil {
		out.Matched = raw.MatchedKeywords
	}
	if raw.MissingKeywords != nil {
		out.Missing = raw.MissingKeywords
	}
	out.TotalWords = raw.TotalWords
	out.SkillsFoundCount = raw.SkillsFoundCount
	if out.SkillsFoundCount == 0 {
		out.SkillsFoundCount = len(out.Matched)
	}
	return out
}

func normalizeJobInfo(raw *rawJobInfo) JobInfo {
	out := JobInfo{
		Title:       NotFound,
		Description: NotFound,
	}
	if raw == nil {
		return out
	}
	if title := strings.TrimSpace(raw.Nama); title != "" {
		out.Title = title
	}
	if desc := strings.TrimSpace(raw.Deskripsi); desc != "" {
		out.Description = desc
	}
	out.Requirements = strings.TrimSpace(raw.Requirements)
	return out
}

func normalizeCandidateInfo(raw *rawParsedInfo) CandidateInfo {
	out := defaultCandidateInfo()
	if raw == nil {
		return out
	}
	if v := strings.TrimSpace(raw.Name); v != "" {
		out.Name = v
	}
	if v := strings.TrimSpace(raw.Email); v != "" {
		out.Email = v
	}
	if v := strings.TrimSpace(raw.Phone); v != "" {
		out.Phone = v
	}
	if v := strings.TrimSpace(raw.Education); v != "" {
		out.Education = v
	}
	if v := strings.TrimSpace(raw.Major); v != "" {
		out.Major = v
	}
	out.GPA = raw.GPA
	out.ExperienceYears = raw.ExperienceYears
	return out
}

func statusLabel(score int) string {
	switch {
	case score >= statusExcellentMin:
		return StatusExcellent
	case score >= statusGoodMin:
		return StatusGood
	case score >= statusFairMin:
		return StatusFair
	default:
		return StatusPoor
	}
}

func formatCheckLabel(score int) string {
	if score >= formatPassMin {
		return FormatPass
	}
	return FormatNeedsImprovement
}

func readabilityLabel(score int) string {
	if score >= readabilityGoodMin {
		return ReadabilityGood
	}
	return ReadabilityFair
}

func clampScore(value int) int {
	if value < 0 {
		return 0
	}
	if value > 100 {
		return 100
	}
	return value
}

func roundScore(value float64) int {
	return int(math.Round(value))
}

func floatOrZero(value *float64) float64 {
	if value == nil {
		return 0
	}
	return *value
}

func boolOrDefault(value *bool, def bool) bool {
	if value == nil {
		return def
	}
	return *value
}
