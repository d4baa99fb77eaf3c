package gencv

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"screening-backend/internal/shared/server/respond"
)

// Handler proxies CV generation requests to the upstream renderer.
type Handler struct {
	Client *Client
}

// NewHandler constructs a Handler.
func NewHandler(client *Client) *Handler {
	return &Handler{Client: client}
}

// RegisterRoutes attaches the generation route to the job-seeker group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/generate-cv", h.generate)
}

func (h *Handler) generate(c *gin.Context) {
	var request Request
	if err := c.ShouldBindJSON(&request); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid cv fields", nil)
		return
	}

	pdf, err := h.Client.Generate(c.Request.Context(), request)
	if err != nil {
		switch {
		case errors.Is(err, ErrUpstreamTimeout):
			respond.Error(c, http.StatusGatewayTimeout, "upstream_timeout", "cv generation timed out", nil)
		case errors.Is(err, ErrUpstreamUnavailable):
			respond.Error(c, http.StatusBadGateway, "upstream_error", "cv generator is unavailable", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to generate cv", nil)
		}
		return
	}

	c.Data(http.StatusOK, "application/pdf", pdf)
}
