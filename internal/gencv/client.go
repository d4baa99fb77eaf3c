package gencv

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"
)

const previewPath = "/api/cv/preview"

var (
	// ErrUpstreamTimeout marks a generation call that hit the client-side
	// deadline.
	ErrUpstreamTimeout = errors.New("cv generation timed out")

	// ErrUpstreamUnavailable covers every non-timeout failure from the
	// generator backend.
	ErrUpstreamUnavailable = errors.New("cv generator unavailable")
)

// Request carries the structured CV fields sent to the generator.
type Request struct {
	ExtractedName  string   `json:"extracted_name" binding:"required"`
	Email          string   `json:"email"`
	Phone          string   `json:"phone"`
	Summary        string   `json:"summary"`
	WorkExperience string   `json:"work_experience"`
	Education      string   `json:"education"`
	Skills         []string `json:"skills"`
	Template       string   `json:"template"`
}

// Client calls the CV generation backend.
type Client struct {
	BaseURL string
	HTTP    *http.Client
	Timeout time.Duration
}

// NewClient constructs a Client with a per-call timeout.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		BaseURL: baseURL,
		HTTP:    &http.Client{},
		Timeout: timeout,
	}
}

// Generate posts the CV fields and returns the rendered PDF as opaque bytes.
func (c *Client) Generate(ctx context.Context, request Request) ([]byte, error) {
	if c.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}

	payload, err := json.Marshal(request)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+previewPath, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, classifyTransportError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: generator returned status %d", ErrUpstreamUnavailable, resp.StatusCode)
	}

	pdf, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, classifyTransportError(err)
	}
	return pdf, nil
}

func classifyTransportError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", ErrUpstreamTimeout, err)
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return fmt.Errorf("%w: %v", ErrUpstreamTimeout, err)
	}
	return fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
}
