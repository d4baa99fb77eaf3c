package analyses

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net"
	"net/http"
	"time"

	"screening-backend/internal/shared/telemetry"
)

// analyzeEndpoints is the fallback chain tried in order; the first endpoint
// that answers 200 wins. The specialized Astra analyzers are preferred over
// the general one because their responses carry the full scoring detail.
var analyzeEndpoints = []upstreamEndpoint{
	{name: "Astra ERP Analyst", path: "/api/astra/analyze/erp_business_analyst"},
	{name: "Astra Data Engineer", path: "/api/astra/analyze/it_data_engineer"},
	{name: "General CV Analysis", path: "/api/jobseeker/analyze"},
}

type upstreamEndpoint struct {
	name string
	path string
}

// Client calls the CV analysis backend.
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

// Analyze posts the CV to each analysis endpoint in fallback order and
// returns the first successful raw payload together with the name of the
// endpoint that produced it. When every endpoint fails, the last error is
// returned; a timeout anywhere in the chain surfaces as ErrUpstreamTimeout
// only if no later endpoint succeeds.
func (c *Client) Analyze(ctx context.Context, fileName string, file []byte) (json.RawMessage, string, error) {
	var lastErr error
	for _, endpoint := range analyzeEndpoints {
		raw, err := c.post(ctx, endpoint.path, fileName, file)
		if err == nil {
			return raw, endpoint.name, nil
		}
		lastErr = err
		telemetry.Warn("analysis.upstream_failed", map[string]any{
			"endpoint": endpoint.name,
			"error":    err.Error(),
		})
		if ctx.Err() != nil {
			break
		}
	}
	if lastErr == nil {
		lastErr = ErrUpstreamUnavailable
	}
	return nil, "", lastErr
}

func (c *Client) post(ctx context.Context, path, fileName string, file []byte) (json.RawMessage, error) {
	callCtx := ctx
	if c.Timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("cv_file", fileName)
	if err != nil {
		return nil, err
	}
	if _, err := part.Write(file); err != nil {
		return nil, err
	}
	if err := writer.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(callCtx, http.MethodPost, c.BaseURL+path, &body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, classifyTransportError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %s returned status %d", ErrUpstreamUnavailable, path, resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, classifyTransportError(err)
	}
	return json.RawMessage(raw), nil
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
