package analyses

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"screening-backend/internal/analysisview"
	"screening-backend/internal/candidates"
	"screening-backend/internal/extract"
	"screening-backend/internal/jobs"
	"screening-backend/internal/shared/telemetry"
)

// Service coordinates CV analysis, history, and bulk job screening.
type Service struct {
	Repo       Repo
	Candidates candidates.Repo
	Client     *Client
}

// NewService constructs a Service.
func NewService(repo Repo, candidateRepo candidates.Repo, client *Client) *Service {
	return &Service{Repo: repo, Candidates: candidateRepo, Client: client}
}

// Analyze runs the uploaded CV through the analysis backend, normalizes the
// first successful response, enriches missing word/contact fields from the
// extracted text, and stores a history record for the user.
func (s *Service) Analyze(ctx context.Context, userID, fileName, mimeType string, file []byte) (analysisview.AnalysisView, error) {
	raw, endpointName, err := s.Client.Analyze(ctx, fileName, file)
	if err != nil {
		return analysisview.AnalysisView{}, err
	}

	view := analysisview.Normalize(raw)
	s.enrich(ctx, &view, file, mimeType, fileName)

	record := Analysis{
		ID:           uuid.NewString(),
		UserID:       userID,
		FileName:     fileName,
		Endpoint:     endpointName,
		OverallScore: view.OverallScore,
		Passed:       view.Passed,
		CreatedAt:    time.Now().UTC(),
	}
	if payload, err := json.Marshal(view); err == nil {
		record.Result = payload
	} else {
		telemetry.Warn("analysis.result_marshal_failed", map[string]any{
			"user_id": userID,
			"file":    fileName,
			"error":   err.Error(),
		})
	}
	if err := s.Repo.Create(ctx, record); err != nil {
		return analysisview.AnalysisView{}, fmt.Errorf("store analysis: %w", err)
	}
	return view, nil
}

// History returns the user's past analyses, newest first.
func (s *Service) History(ctx context.Context, userID string, limit, offset int) ([]Analysis, error) {
	return s.Repo.ListByUser(ctx, userID, limit, offset)
}

// UploadedFile is one CV from a bulk screening request.
type UploadedFile struct {
	Name     string
	MimeType string
	Data     []byte
}

// RejectionDetail explains why one CV did not pass screening.
type RejectionDetail struct {
	FileName string `json:"file_name"`
	Name     string `json:"name,omitempty"`
	Reason   string `json:"reason"`
}

// ScreenSummary aggregates the outcome of a bulk screening run.
type ScreenSummary struct {
	SuccessCount     int               `json:"success_count"`
	ErrorCount       int               `json:"error_count"`
	PassedCount      int               `json:"passed_count"`
	RejectedCount    int               `json:"rejected_count"`
	RejectionDetails []RejectionDetail `json:"rejection_details"`
}

// Screen analyzes each uploaded CV against the job and records passing
// candidates. Failures on individual files are counted, not fatal; the run
// always produces a summary.
func (s *Service) Screen(ctx context.Context, job jobs.Job, files []UploadedFile) ScreenSummary {
	summary := ScreenSummary{RejectionDetails: []RejectionDetail{}}

	for _, file := range files {
		raw, _, err := s.Client.Analyze(ctx, file.Name, file.Data)
		if err != nil {
			summary.ErrorCount++
			summary.RejectionDetails = append(summary.RejectionDetails, RejectionDetail{
				FileName: file.Name,
				Reason:   "analysis failed: " + err.Error(),
			})
			continue
		}
		summary.SuccessCount++

		view := analysisview.Normalize(raw)
		s.enrich(ctx, &view, file.Data, file.MimeType, file.Name)

		if reason := rejectionReason(job, view); reason != "" {
			summary.RejectedCount++
			summary.RejectionDetails = append(summary.RejectionDetails, RejectionDetail{
				FileName: file.Name,
				Name:     candidateName(view, file.Name),
				Reason:   reason,
			})
			continue
		}

		summary.PassedCount++
		score := float64(view.OverallScore)
		candidate := candidates.Candidate{
			ID:              uuid.NewString(),
			JobID:           job.ID,
			Name:            candidateName(view, file.Name),
			Email:           displayValue(view.CandidateInfo.Email),
			MatchScore:      &score,
			GPA:             view.CandidateInfo.GPA,
			Education:       displayValue(view.CandidateInfo.Education),
			Skills:          view.KeywordAnalysis.Matched,
			TotalExperience: view.CandidateInfo.ExperienceYears,
			ScoringReason:   fmt.Sprintf("overall score %d, ATS %s", view.OverallScore, view.ATSCompatibility.StatusLabel),
		}
		if err := s.Candidates.Create(ctx, candidate); err != nil {
			telemetry.Error("screening.store_candidate", map[string]any{
				"job_id": job.ID,
				"file":   file.Name,
				"error":  err.Error(),
			})
		}
	}
	return summary
}

// rejectionReason returns "" when the candidate clears the job's minimum
// requirements.
func rejectionReason(job jobs.Job, view analysisview.AnalysisView) string {
	if !view.Passed {
		return "did not meet the minimum scoring requirements"
	}
	if job.MinGPA != nil {
		if view.CandidateInfo.GPA == nil {
			return fmt.Sprintf("GPA not found on CV, minimum %.2f required", *job.MinGPA)
		}
		if *view.CandidateInfo.GPA < *job.MinGPA {
			return fmt.Sprintf("GPA %.2f below minimum %.2f", *view.CandidateInfo.GPA, *job.MinGPA)
		}
	}
	if job.DegreeRequirements != "" &&
		displayValue(view.CandidateInfo.Education) == "" &&
		displayValue(view.CandidateInfo.Major) == "" {
		return "degree requirement could not be verified from the CV"
	}
	return ""
}

// enrich fills word counts and contact fields the upstream response omitted,
// using text extracted from the uploaded file. Best effort: extraction
// failures leave the view untouched.
func (s *Service) enrich(ctx context.Context, view *analysisview.AnalysisView, file []byte, mimeType, fileName string) {
	needsWords := view.KeywordAnalysis.TotalWords == 0
	needsEmail := view.CandidateInfo.Email == analysisview.NotFound
	needsPhone := view.CandidateInfo.Phone == analysisview.NotFound
	if !needsWords && !needsEmail && !needsPhone {
		return
	}

	text, err := extract.Text(ctx, file, mimeType, fileName)
	if err != nil {
		return
	}
	if needsWords {
		view.KeywordAnalysis.TotalWords = extract.WordCount(text)
	}
	if needsEmail {
		if email := extract.Email(text); email != "" {
			view.CandidateInfo.Email = email
		}
	}
	if needsPhone {
		if phone := extract.Phone(text); phone != "" {
			view.CandidateInfo.Phone = phone
		}
	}
}

// candidateName prefers the parsed name and falls back to the file name.
func candidateName(view analysisview.AnalysisView, fileName string) string {
	if name := displayValue(view.CandidateInfo.Name); name != "" {
		return name
	}
	base := filepath.Base(fileName)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// displayValue strips the "Not found"/"N/A" sentinels for storage.
func displayValue(v string) string {
	if v == analysisview.NotFound || v == analysisview.NA {
		return ""
	}
	return v
}
