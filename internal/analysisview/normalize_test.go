package analysisview

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeUnknownShapeIsTotal(t *testing.T) {
	payloads := []string{
		`{}`,
		`{"foo": 1, "bar": "baz"}`,
		`{"analysis_result": null, "something": []}`,
		`null`,
		``,
		`{not valid json`,
	}
	for _, payload := range payloads {
		view := Normalize(json.RawMessage(payload))
		assert.Equal(t, 0, view.OverallScore, "payload %q", payload)
		assert.True(t, view.Passed, "payload %q", payload)
		assert.NotEmpty(t, view.Suggestions, "payload %q", payload)
		assert.NotNil(t, view.KeywordAnalysis.Matched, "payload %q", payload)
		assert.NotNil(t, view.KeywordAnalysis.Missing, "payload %q", payload)
		assert.Equal(t, NotFound, view.JobInfo.Title, "payload %q", payload)
	}
}

func TestNormalizeAstraStyle(t *testing.T) {
	raw := json.RawMessage(`{
		"analysis_result": {
			"skor_akhir": 75,
			"lulus": true,
			"detail_skor": {
				"job_requirements": {"persentase": 90},
				"nice_to_have": {"persentase": 50},
				"wajib": {"detail": {"jurusan": "Informatics"}}
			}
		},
		"job_info": {"nama": "ERP Business Analyst", "deskripsi": "Analyze ERP flows"},
		"parsed_info": {"name": "Budi", "email": "budi@example.com", "phone": "08123", "gpa": 3.4}
	}`)

	view := Normalize(raw)

	assert.Equal(t, 75, view.OverallScore)
	assert.True(t, view.Passed)
	// 0.6*90 + 0.2*50 + 10 (email) + 10 (phone) = 84
	assert.Equal(t, 84, view.ATSCompatibility.Score)
	assert.Equal(t, StatusExcellent, view.ATSCompatibility.StatusLabel)
	assert.Equal(t, FormatPass, view.ATSCompatibility.FormatCheck)
	assert.Equal(t, ReadabilityGood, view.ATSCompatibility.Readability)
	assert.True(t, view.ATSCompatibility.SectionsComplete)
	assert.True(t, view.ATSCompatibility.ContactComplete)
	assert.Equal(t, "ERP Business Analyst", view.JobInfo.Title)
	assert.Equal(t, "Budi", view.CandidateInfo.Name)
	require.NotNil(t, view.CandidateInfo.GPA)
	assert.InDelta(t, 3.4, *view.CandidateInfo.GPA, 0.001)
}

func TestNormalizeAstraClampsATSScore(t *testing.T) {
	over := json.RawMessage(`{
		"analysis_result": {
			"skor_akhir": 100,
			"detail_skor": {
				"job_requirements": {"persentase": 300},
				"nice_to_have": {"persentase": 200}
			}
		},
		"parsed_info": {"email": "a@b.c", "phone": "1"}
	}`)
	view := Normalize(over)
	assert.Equal(t, 100, view.ATSCompatibility.Score)

	under := json.RawMessage(`{
		"analysis_result": {
			"skor_akhir": -5,
			"detail_skor": {
				"job_requirements": {"persentase": -400}
			}
		}
	}`)
	view = Normalize(under)
	assert.Equal(t, 0, view.ATSCompatibility.Score)
	assert.Equal(t, 0, view.OverallScore)
}

func TestNormalizeAstraPassedDefaultsTrue(t *testing.T) {
	view := Normalize(json.RawMessage(`{"analysis_result": {"skor_akhir": 40}}`))
	assert.True(t, view.Passed)

	view = Normalize(json.RawMessage(`{"analysis_result": {"skor_akhir": 40, "lulus": false}}`))
	assert.False(t, view.Passed)
}

func TestNormalizeGeneralStyle(t *testing.T) {
	raw := json.RawMessage(`{
		"match_score": 72.4,
		"ats_friendliness": {
			"compatibility_score": 68,
			"common_sections": {"experience": true, "education": true},
			"contact_info": {"email_found": true, "phone_found": false}
		},
		"keyword_analysis": {
			"matched_keywords": ["go", "sql"],
			"missing_keywords": ["docker", "kubernetes", "aws", "terraform", "ansible", "helm"],
			"total_words": 412
		},
		"parsed_info": {"name": "Sari"}
	}`)

	view := Normalize(raw)

	assert.Equal(t, 72, view.OverallScore)
	assert.Equal(t, 68, view.ATSCompatibility.Score)
	assert.Equal(t, StatusGood, view.ATSCompatibility.StatusLabel)
	assert.Equal(t, FormatNeedsImprovement, view.ATSCompatibility.FormatCheck)
	assert.Equal(t, ReadabilityGood, view.ATSCompatibility.Readability)
	assert.True(t, view.ATSCompatibility.SectionsComplete)
	assert.False(t, view.ATSCompatibility.ContactComplete)

	assert.Equal(t, []string{"go", "sql"}, view.KeywordAnalysis.Matched)
	assert.Equal(t, 412, view.KeywordAnalysis.TotalWords)
	assert.Equal(t, 2, view.KeywordAnalysis.SkillsFoundCount)

	assert.Equal(t, "General CV Analysis", view.JobInfo.Title)
	assert.Equal(t, "Sari", view.CandidateInfo.Name)
	assert.Equal(t, NotFound, view.CandidateInfo.Email)
	assert.Equal(t, NA, view.CandidateInfo.Education)

	// Missing keywords fire the keyword suggestion, capped at five listed.
	require.NotEmpty(t, view.Suggestions)
	assert.Equal(t, "Add Required Keywords", view.Suggestions[0].Title)
	assert.Contains(t, view.Suggestions[0].Description, "docker")
	assert.NotContains(t, view.Suggestions[0].Description, "helm")
}

func TestNormalizeGeneralFallsBackToATSOverallScore(t *testing.T) {
	raw := json.RawMessage(`{
		"match_score": 50,
		"ats_friendliness": {"overall_score": 81}
	}`)
	view := Normalize(raw)
	assert.Equal(t, 81, view.ATSCompatibility.Score)
	assert.Equal(t, StatusExcellent, view.ATSCompatibility.StatusLabel)
}

func TestNormalizeGeneralHonorsStatusOverride(t *testing.T) {
	raw := json.RawMessage(`{
		"match_score": 50,
		"ats_friendliness": {"compatibility_score": 30, "ats_status": "Good"}
	}`)
	view := Normalize(raw)
	assert.Equal(t, "Good", view.ATSCompatibility.StatusLabel)
}

func TestStatusLabelBoundaries(t *testing.T) {
	cases := []struct {
		score int
		want  string
	}{
		{100, StatusExcellent},
		{80, StatusExcellent},
		{79, StatusGood},
		{60, StatusGood},
		{59, StatusFair},
		{40, StatusFair},
		{39, StatusPoor},
		{0, StatusPoor},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, statusLabel(tc.score), "score %d", tc.score)
	}
}

func TestNormalizeIsIdempotent(t *testing.T) {
	raw := json.RawMessage(`{
		"analysis_result": {
			"skor_akhir": 61,
			"detail_skor": {
				"job_requirements": {"persentase": 55},
				"nice_to_have": {"persentase": 30}
			}
		},
		"parsed_info": {"email": "x@y.z"}
	}`)
	first := Normalize(raw)
	second := Normalize(raw)
	assert.Equal(t, first, second)
}

func TestNormalizeNeverMutatesInput(t *testing.T) {
	raw := json.RawMessage(`{"match_score": 10}`)
	before := string(raw)
	_ = Normalize(raw)
	assert.Equal(t, before, string(raw))
}
