
// Package source loads a CSV report from a local path or an http(s) URL.
package source

import (
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"
)

// csvTypes are the media types report exports are served with. An absent
// Content-Type is accepted as well.
var csvTypes = map[string]bool{
	"text/csv":                 true,
	"text/plain":               true,
	"application/csv":          true,
	"application/vnd.ms-excel": true,
	"application/octet-stream": true,
}

type HTTPClient struct {
	client    *http.Client
	sizeCap   int64
	userAgent string
}

// NewHTTPClient returns a client for the handful of report downloads a
// conversion makes. timeout bounds each request, sizeCap each body.
func NewHTTPClient(timeout time.Duration, sizeCap int64) *HTTPClient {
	return &HTTPClient{
		client:    &http.Client{Timeout: timeout},
		sizeCap:   sizeCap,
		userAgent: "brightedge-report-api/1.0",
	}
}

// Fetch downloads a report and returns its body and Content-Type.
func (h *HTTPClient) Fetch(ctx context.Context, rawURL string) ([]byte, string, error) {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return nil, "", fmt.Errorf("invalid url %q", rawURL)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, "", err
	}
	req.Header.Set("Accept", "text/csv,text/plain;q=0.9,*/*;q=0.5")
	req.Header.Set("Accept-Encoding", "gzip")
	req.Header.Set("User-Agent", h.userAgent)

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 400 {
		return nil, "", fmt.Errorf("http status %d", resp.StatusCode)
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType != "" {
		mediaType, _, _ := mime.ParseMediaType(contentType)
		if !csvTypes[mediaType] {
			return nil, "", fmt.Errorf("unexpected content type %q", contentType)
		}
	}

	var body io.Reader = resp.Body
	if strings.EqualFold(resp.Header.Get("Content-Encoding"), "gzip") {
		gz, err := gzip.NewReader(resp.Body)
		if err != nil {
			return nil, "", err
		}
		defer gz.Close()
		body = gz
	}

	data, err := readCapped(body, h.sizeCap)
	if err != nil {
		return nil, "", err
	}
	return data, contentType, nil
}

// Open reads location as a URL when it has an http(s) scheme and as a file
// path otherwise. Files carry no content type.
func (h *HTTPClient) Open(ctx context.Context, location string) ([]byte, string, error) {
	if strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://") {
		return h.Fetch(ctx, location)
	}
	f, err := os.Open(location)
	if err != nil {
		return nil, "", err
	}
	defer f.Close()
	data, err := readCapped(f, h.sizeCap)
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", location, err)
	}
	return data, "", nil
}

func readCapped(r io.Reader, sizeCap int64) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, sizeCap+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > sizeCap {
		return nil, fmt.Errorf("report larger than %d bytes", sizeCap)
	}
	return data, nil
}
