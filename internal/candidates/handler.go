package candidates

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"screening-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the candidates service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches candidate routes to the HR router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/jobs/:id/candidates", h.listForJob)
	rg.GET("/candidates/search", h.search)
}

func (h *Handler) listForJob(c *gin.Context) {
	jobID := c.Param("id")
	if jobID == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "job id is required", nil)
		return
	}

	state := NewPagerState()

	if v := c.Query("sort"); v != "" {
		if !ValidSortKey(v) {
			respond.Error(c, http.StatusBadRequest, "validation_error", "unsupported sort key", []map[string]string{
				{"field": "sort", "issue": "must be match_score, gpa, or total_experience"},
			})
			return
		}
		state = state.WithSortKey(v)
	}

	if v := c.Query("page_size"); v != "" {
		size, err := strconv.Atoi(v)
		if err != nil || !ValidPageSize(size) {
			respond.Error(c, http.StatusBadRequest, "validation_error", "unsupported page size", []map[string]string{
				{"field": "page_size", "issue": "must be 5, 10, 25, or 50"},
			})
			return
		}
		state = state.WithPageSize(size)
	}

	if v := c.Query("page"); v != "" {
		if page, err := strconv.Atoi(v); err == nil {
			state = state.WithPage(page)
		}
	}

	page, err := h.Svc.ListRanked(c.Request.Context(), jobID, state)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list candidates", nil)
		return
	}

	respond.JSON(c, http.StatusOK, page)
}

func (h *Handler) search(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "query parameter q is required", nil)
		return
	}

	results, correctedQuery, err := h.Svc.Search(c.Request.Context(), query)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to search candidates", nil)
		return
	}

	resp := gin.H{"data": results}
	if correctedQuery != "" {
		resp["corrected_query"] = correctedQuery
	}
	respond.JSON(c, http.StatusOK, resp)
}
