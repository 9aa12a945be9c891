package certificate

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
)

// HTTPConverter implements RenderCapability against an HTML-to-PDF converter
// service. The converter accepts raw HTML on its index route and answers
// with the PDF bytes.
type HTTPConverter struct {
	url    string
	client *http.Client
}

func NewHTTPConverter(url string) *HTTPConverter {
	return &HTTPConverter{
		url:    url,
		client: &http.Client{},
	}
}

func (c *HTTPConverter) RenderPDF(ctx context.Context, html []byte) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to build converter request: %w", err)
	}
	req.Header.Set("Content-Type", "text/html; charset=utf-8")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("converter request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("converter returned status %d: %s", resp.StatusCode, string(body))
	}

	pdf, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read converter response: %w", err)
	}
	if len(pdf) == 0 {
		return nil, fmt.Errorf("converter returned an empty document")
	}

	return pdf, nil
}
