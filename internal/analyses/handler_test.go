package analyses

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"screening-backend/internal/candidates"
	"screening-backend/internal/jobs"
)

// upstreamStub answers the Astra ERP endpoint based on the uploaded file name
// so bulk tests can exercise mixed outcomes in one run.
func upstreamStub(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, header, err := r.FormFile("cv_file")
		if err != nil {
			http.Error(w, "missing cv_file", http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		switch header.Filename {
		case "low-gpa.pdf":
			_, _ = w.Write([]byte(`{
				"analysis_result": {"skor_akhir": 65, "lulus": true},
				"parsed_info": {"name": "Sari", "email": "sari@example.com", "phone": "0812", "gpa": 2.1}
			}`))
		case "broken.pdf":
			http.Error(w, "boom", http.StatusInternalServerError)
		default:
			_, _ = w.Write([]byte(`{
				"analysis_result": {"skor_akhir": 82, "lulus": true, "detail_skor": {"job_requirements": {"persentase": 90}}},
				"parsed_info": {"name": "Budi", "email": "budi@example.com", "phone": "0813", "gpa": 3.5}
			}`))
		}
	}))
}

type analysisTestEnv struct {
	router     *gin.Engine
	repo       *MemoryRepo
	candidates *candidates.MemoryRepo
	jobs       *jobs.MemoryRepo
}

func setupAnalysisRouter(t *testing.T, upstreamURL string, timeout time.Duration) analysisTestEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := NewMemoryRepo()
	candidateRepo := candidates.NewMemoryRepo()
	jobRepo := jobs.NewMemoryRepo()
	svc := NewService(repo, candidateRepo, NewClient(upstreamURL, timeout))
	handler := NewHandler(svc, jobRepo)

	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("userId", "user-1")
		c.Next()
	})
	handler.RegisterJobSeekerRoutes(router.Group("/api/jobseeker"))
	handler.RegisterHRRoutes(router.Group("/api/hr"))

	return analysisTestEnv{router: router, repo: repo, candidates: candidateRepo, jobs: jobRepo}
}

func multipartBody(t *testing.T, field string, fileNames ...string) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for _, name := range fileNames {
		part, err := writer.CreateFormFile(field, name)
		if err != nil {
			t.Fatalf("create form file: %v", err)
		}
		if _, err := part.Write([]byte("fake cv bytes")); err != nil {
			t.Fatalf("write form file: %v", err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close multipart writer: %v", err)
	}
	return body, writer.FormDataContentType()
}

func TestAnalyzeReturnsViewAndStoresHistory(t *testing.T) {
	upstream := upstreamStub(t)
	t.Cleanup(upstream.Close)
	env := setupAnalysisRouter(t, upstream.URL, time.Second)

	body, contentType := multipartBody(t, "cv_file", "cv.pdf")
	req := httptest.NewRequest(http.MethodPost, "/api/jobseeker/analyze", body)
	req.Header.Set("Content-Type", contentType)
	resp := httptest.NewRecorder()
	env.router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var view struct {
		OverallScore int  `json:"overallScore"`
		Passed       bool `json:"passed"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&view); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if view.OverallScore != 82 || !view.Passed {
		t.Fatalf("unexpected view: %+v", view)
	}

	history, err := env.repo.ListByUser(context.Background(), "user-1", 10, 0)
	if err != nil {
		t.Fatalf("list history: %v", err)
	}
	if len(history) != 1 {
		t.Fatalf("expected 1 stored analysis, got %d", len(history))
	}
	if history[0].Endpoint != "Astra ERP Analyst" {
		t.Fatalf("expected first endpoint recorded, got %q", history[0].Endpoint)
	}
	if history[0].OverallScore != 82 {
		t.Fatalf("expected stored score 82, got %d", history[0].OverallScore)
	}
}

func TestAnalyzeRequiresFile(t *testing.T) {
	upstream := upstreamStub(t)
	t.Cleanup(upstream.Close)
	env := setupAnalysisRouter(t, upstream.URL, time.Second)

	req := httptest.NewRequest(http.MethodPost, "/api/jobseeker/analyze", nil)
	resp := httptest.NewRecorder()
	env.router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}
}

func TestAnalyzeUpstreamDownReturns502(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusServiceUnavailable)
	}))
	t.Cleanup(upstream.Close)
	env := setupAnalysisRouter(t, upstream.URL, time.Second)

	body, contentType := multipartBody(t, "cv_file", "cv.pdf")
	req := httptest.NewRequest(http.MethodPost, "/api/jobseeker/analyze", body)
	req.Header.Set("Content-Type", contentType)
	resp := httptest.NewRecorder()
	env.router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadGateway {
		t.Fatalf("expected status 502, got %d", resp.Code)
	}

	history, err := env.repo.ListByUser(context.Background(), "user-1", 10, 0)
	if err != nil {
		t.Fatalf("list history: %v", err)
	}
	if len(history) != 0 {
		t.Fatalf("expected no stored analysis after failure, got %d", len(history))
	}
}

func TestAnalyzeUpstreamTimeoutReturns504(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(150 * time.Millisecond)
		_, _ = w.Write([]byte(`{}`))
	}))
	t.Cleanup(upstream.Close)
	env := setupAnalysisRouter(t, upstream.URL, 30*time.Millisecond)

	body, contentType := multipartBody(t, "cv_file", "cv.pdf")
	req := httptest.NewRequest(http.MethodPost, "/api/jobseeker/analyze", body)
	req.Header.Set("Content-Type", contentType)
	resp := httptest.NewRecorder()
	env.router.ServeHTTP(resp, req)

	if resp.Code != http.StatusGatewayTimeout {
		t.Fatalf("expected status 504, got %d", resp.Code)
	}
}

func TestListHistory(t *testing.T) {
	upstream := upstreamStub(t)
	t.Cleanup(upstream.Close)
	env := setupAnalysisRouter(t, upstream.URL, time.Second)

	if err := env.repo.Create(context.Background(), Analysis{
		ID:           "analysis-1",
		UserID:       "user-1",
		FileName:     "cv.pdf",
		Endpoint:     "Astra ERP Analyst",
		OverallScore: 82,
		Passed:       true,
		CreatedAt:    time.Now().UTC(),
	}); err != nil {
		t.Fatalf("seed analysis: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/jobseeker/analyses", nil)
	resp := httptest.NewRecorder()
	env.router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}

	var history []struct {
		ID           string `json:"id"`
		OverallScore int    `json:"overallScore"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&history); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(history) != 1 || history[0].ID != "analysis-1" {
		t.Fatalf("unexpected history: %+v", history)
	}
}

func TestBulkScreenSummaryCounts(t *testing.T) {
	upstream := upstreamStub(t)
	t.Cleanup(upstream.Close)
	env := setupAnalysisRouter(t, upstream.URL, time.Second)

	minGPA := 3.0
	if err := env.jobs.Create(context.Background(), jobs.Job{
		ID:       "job-1",
		JobTitle: "Data Engineer",
		MinGPA:   &minGPA,
	}); err != nil {
		t.Fatalf("seed job: %v", err)
	}

	body, contentType := multipartBody(t, "cv_files", "good.pdf", "low-gpa.pdf", "broken.pdf")
	req := httptest.NewRequest(http.MethodPost, "/api/hr/jobs/job-1/upload", body)
	req.Header.Set("Content-Type", contentType)
	resp := httptest.NewRecorder()
	env.router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var summary ScreenSummary
	if err := json.NewDecoder(resp.Body).Decode(&summary); err != nil {
		t.Fatalf("decode summary: %v", err)
	}
	if summary.SuccessCount != 2 || summary.ErrorCount != 1 {
		t.Fatalf("expected 2 successes and 1 error, got %+v", summary)
	}
	if summary.PassedCount != 1 || summary.RejectedCount != 1 {
		t.Fatalf("expected 1 passed and 1 rejected, got %+v", summary)
	}
	if len(summary.RejectionDetails) != 2 {
		t.Fatalf("expected 2 rejection details, got %d", len(summary.RejectionDetails))
	}

	stored, err := env.candidates.ListByJob(context.Background(), "job-1")
	if err != nil {
		t.Fatalf("list candidates: %v", err)
	}
	if len(stored) != 1 {
		t.Fatalf("expected 1 stored candidate, got %d", len(stored))
	}
	if stored[0].Name != "Budi" {
		t.Fatalf("expected parsed candidate name, got %q", stored[0].Name)
	}
	if stored[0].GPA == nil || *stored[0].GPA != 3.5 {
		t.Fatalf("expected gpa 3.5, got %v", stored[0].GPA)
	}
}

func TestBulkScreenUnknownJob(t *testing.T) {
	upstream := upstreamStub(t)
	t.Cleanup(upstream.Close)
	env := setupAnalysisRouter(t, upstream.URL, time.Second)

	body, contentType := multipartBody(t, "cv_files", "good.pdf")
	req := httptest.NewRequest(http.MethodPost, "/api/hr/jobs/missing/upload", body)
	req.Header.Set("Content-Type", contentType)
	resp := httptest.NewRecorder()
	env.router.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", resp.Code)
	}
}
