package analyses

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"screening-backend/internal/jobs"
	"screening-backend/internal/shared/server/middleware"
	"screening-backend/internal/shared/server/respond"
)

// maxUploadBytes caps a single CV upload.
const maxUploadBytes = 10 << 20

// Handler wires HTTP handlers to the analyses service.
type Handler struct {
	Svc  *Service
	Jobs jobs.Repo
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service, jobRepo jobs.Repo) *Handler {
	return &Handler{Svc: svc, Jobs: jobRepo}
}

// RegisterJobSeekerRoutes attaches the job-seeker analysis routes.
func (h *Handler) RegisterJobSeekerRoutes(rg *gin.RouterGroup) {
	rg.POST("/analyze", h.analyze)
	rg.GET("/analyses", h.listHistory)
}

// RegisterHRRoutes attaches the bulk screening route.
func (h *Handler) RegisterHRRoutes(rg *gin.RouterGroup) {
	rg.POST("/jobs/:id/upload", h.bulkScreen)
}

func (h *Handler) analyze(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	fileHeader, err := c.FormFile("cv_file")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "cv_file is required", nil)
		return
	}
	if fileHeader.Size > maxUploadBytes {
		respond.Error(c, http.StatusRequestEntityTooLarge, "validation_error", "cv_file exceeds the size limit", nil)
		return
	}

	data, err := readUpload(fileHeader)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "failed to read cv_file", nil)
		return
	}

	view, err := h.Svc.Analyze(c.Request.Context(), userID, fileHeader.Filename, fileHeader.Header.Get("Content-Type"), data)
	if err != nil {
		respondUpstreamError(c, err)
		return
	}

	respond.JSON(c, http.StatusOK, view)
}

func (h *Handler) listHistory(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	limit := 20
	offset := 0
	if v := c.Query("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			limit = parsed
		}
	}
	if v := c.Query("offset"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			offset = parsed
		}
	}

	history, err := h.Svc.History(c.Request.Context(), userID, limit, offset)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list analyses", nil)
		return
	}

	resp := make([]gin.H, 0, len(history))
	for _, a := range history {
		resp = append(resp, gin.H{
			"id":           a.ID,
			"fileName":     a.FileName,
			"endpoint":     a.Endpoint,
			"overallScore": a.OverallScore,
			"passed":       a.Passed,
			"createdAt":    a.CreatedAt,
		})
	}
	respond.JSON(c, http.StatusOK, resp)
}

func (h *Handler) bulkScreen(c *gin.Context) {
	jobID := c.Param("id")
	if jobID == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "job id is required", nil)
		return
	}

	job, err := h.Jobs.GetByID(c.Request.Context(), jobID)
	if err != nil {
		switch {
		case errors.Is(err, jobs.ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "job not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch job", nil)
		}
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "multipart form is required", nil)
		return
	}
	fileHeaders := form.File["cv_files"]
	if len(fileHeaders) == 0 {
		respond.Error(c, http.StatusBadRequest, "validation_error", "at least one cv_files entry is required", nil)
		return
	}

	files := make([]UploadedFile, 0, len(fileHeaders))
	for _, fh := range fileHeaders {
		if fh.Size > maxUploadBytes {
			respond.Error(c, http.StatusRequestEntityTooLarge, "validation_error", fh.Filename+" exceeds the size limit", nil)
			return
		}
		data, err := readUpload(fh)
		if err != nil {
			respond.Error(c, http.StatusBadRequest, "validation_error", "failed to read "+fh.Filename, nil)
			return
		}
		files = append(files, UploadedFile{
			Name:     fh.Filename,
			MimeType: fh.Header.Get("Content-Type"),
			Data:     data,
		})
	}

	summary := h.Svc.Screen(c.Request.Context(), job, files)
	respond.JSON(c, http.StatusOK, summary)
}

func respondUpstreamError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrUpstreamTimeout):
		respond.Error(c, http.StatusGatewayTimeout, "upstream_timeout", "analysis backend timed out", nil)
	case errors.Is(err, ErrUpstreamUnavailable):
		respond.Error(c, http.StatusBadGateway, "upstream_error", "analysis backend is unavailable", nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to analyze cv", nil)
	}
}

func readUpload(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(io.LimitReader(f, maxUploadBytes+1))
}
