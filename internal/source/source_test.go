
package source

import (
	"compress/gzip"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchCSV(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.WriteHeader(200)
		_, _ = w.Write([]byte("Issue Name,Issue Priority\nx,High\n"))
	}))
	defer ts.Close()

	client := NewHTTPClient(5*time.Second, 1024)
	data, ct, err := client.Fetch(context.Background(), ts.URL)
	require.NoError(t, err)
	assert.Equal(t, "text/csv; charset=utf-8", ct)
	assert.Equal(t, "Issue Name,Issue Priority\nx,High\n", string(data))
}

func TestFetchGzip(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Encoding", "gzip")
		gz := gzip.NewWriter(w)
		_, _ = gz.Write([]byte("a,b\n1,2\n"))
		_ = gz.Close()
	}))
	defer ts.Close()

	client := NewHTTPClient(5*time.Second, 1024)
	data, _, err := client.Fetch(context.Background(), ts.URL)
	require.NoError(t, err)
	assert.Equal(t, "a,b\n1,2\n", string(data))
}

func TestRejectHTML(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.WriteHeader(200)
		_, _ = w.Write([]byte("<html></html>"))
	}))
	defer ts.Close()

	client := NewHTTPClient(5*time.Second, 1024)
	_, _, err := client.Fetch(context.Background(), ts.URL)
	assert.Error(t, err)
}

func TestFetchStatusAndSizeCap(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/csv")
		_, _ = w.Write([]byte(strings.Repeat("a,b\n", 100)))
	}))
	defer ts.Close()

	client := NewHTTPClient(5*time.Second, 64)
	_, _, err := client.Fetch(context.Background(), ts.URL+"/missing")
	assert.ErrorContains(t, err, "404")

	_, _, err = client.Fetch(context.Background(), ts.URL+"/big")
	assert.ErrorContains(t, err, "larger than 64 bytes")

	_, _, err = client.Fetch(context.Background(), "ftp://example.com/x.csv")
	assert.Error(t, err)
}

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "crawl.csv")
	require.NoError(t, os.WriteFile(path, []byte("a,b\n"), 0o600))

	client := NewHTTPClient(time.Second, 1024)
	data, ct, err := client.Open(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "a,b\n", string(data))
	assert.Empty(t, ct)

	_, _, err = client.Open(context.Background(), filepath.Join(t.TempDir(), "nope.csv"))
	assert.Error(t, err)
}

func TestFetchTimeout(t *testing.T) {
	release := make(chan struct{})
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer ts.Close()
	defer close(release)

	client := NewHTTPClient(50*time.Millisecond, 1024)
	_, _, err := client.Fetch(context.Background(), ts.URL)
	assert.Error(t, err)
}
