package main

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"brightedge-report-api/internal/models"
)

const crawlCSV = "Crawl Overview,,\n,,\nSummary,,\nTotal URLs,10,100%\n"

const issuesCSV = "Issue Name,Issue Priority\nBroken link,Low\nSEO: Missing title,High\n"

func writeTemp(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

// execute runs a fresh command tree so flag values never carry between tests.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestConvertURLToYAMLFile(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/csv")
		_, _ = w.Write([]byte(issuesCSV))
	}))
	defer ts.Close()

	dest := filepath.Join(t.TempDir(), "report.yaml")
	_, err := execute(t, "convert",
		"--crawl-overview", writeTemp(t, "crawl.csv", crawlCSV),
		"--issues-overview", ts.URL+"/issues.csv",
		"--format", "yaml",
		"--top-issues", "1",
		"--output", dest,
	)
	require.NoError(t, err)

	raw, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.YAMLEq(t, `
crawl_overview:
  Summary:
    - title: Total URLs
      number of URLs: "10"
      percentage: 100%
issues_overview:
  - issue: Missing title
    tag: SEO
    priority: High
`, string(raw))
}

// Runs after the YAML/file test: defaults must be back to JSON on stdout
// with all issues kept.
func TestConvertDefaultsToJSONOnStdout(t *testing.T) {
	out, err := execute(t, "convert",
		"--crawl-overview", writeTemp(t, "crawl.csv", crawlCSV),
		"--issues-overview", writeTemp(t, "issues.csv", issuesCSV),
	)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"crawl_overview": {"Summary": [{"title":"Total URLs","number of URLs":"10","percentage":"100%"}]},
		"issues_overview": [
			{"issue":"Missing title","tag":"SEO","priority":"High"},
			{"issue":"Broken link","tag":"General","priority":"Low"}
		]
	}`, out)
}

func TestConvertRequiresBothInputs(t *testing.T) {
	_, err := execute(t, "convert", "--crawl-overview", writeTemp(t, "crawl.csv", crawlCSV))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "issues-overview")
}

func TestConvertSchemaError(t *testing.T) {
	_, err := execute(t, "convert",
		"--crawl-overview", writeTemp(t, "crawl.csv", crawlCSV),
		"--issues-overview", writeTemp(t, "issues.csv", "Issue Name\nx\n"),
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Issue Priority")
}

type closeErrWriter struct {
	bytes.Buffer
	closeErr error
}

func (w *closeErrWriter) Close() error { return w.closeErr }

func TestWriteAndCloseReportsCloseError(t *testing.T) {
	var report models.Report

	w := &closeErrWriter{closeErr: errors.New("disk full")}
	err := writeAndClose(w, "json", report)
	require.Error(t, err)
	assert.ErrorContains(t, err, "close output: disk full")
	assert.NotZero(t, w.Len())

	// a write error wins over the close error
	w = &closeErrWriter{closeErr: errors.New("disk full")}
	err = writeAndClose(w, "xml", report)
	require.Error(t, err)
	assert.NotContains(t, err.Error(), "disk full")

	require.NoError(t, writeAndClose(&closeErrWriter{}, "json", report))
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "report-cli dev\n", out)
}
