
package ioformats

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperr "brightedge-report-api/internal/errors"
)

func TestReadTable(t *testing.T) {
	src := "Issue Name,Issue Priority,Note\n" +
		"\"Links: Broken, internal\",High,\"multi\nline\"\n" +
		"\"Quote \"\"here\"\"\",Low\n" +
		",,\n"

	tb, err := ReadTable("issues_overview", strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, []string{"Issue Name", "Issue Priority", "Note"}, tb.Header)
	require.Len(t, tb.Rows, 3)

	assert.Equal(t, "Links: Broken, internal", tb.Value(0, "Issue Name").String())
	assert.Equal(t, "multi\nline", tb.Value(0, "Note").String())
	assert.Equal(t, `Quote "here"`, tb.Value(1, "Issue Name").String())

	// short row is padded with a missing cell
	assert.False(t, tb.Rows[1][2].Valid)
	assert.True(t, tb.Rows[1][2].Empty())

	assert.True(t, tb.Rows[2].Blank())
}

func TestReadTableErrors(t *testing.T) {
	_, err := ReadTable("crawl_overview", strings.NewReader(""))
	require.Error(t, err)
	assert.Equal(t, apperr.CodeInputFormatError, apperr.GetCode(err))
	assert.Contains(t, err.Error(), "crawl_overview")

	_, err = ReadTable("crawl_overview", strings.NewReader("a,b\n\"unterminated,1\n"))
	require.Error(t, err)
	assert.Equal(t, apperr.CodeInputFormatError, apperr.GetCode(err))

	_, err = ReadTable("crawl_overview", strings.NewReader("a,b\n1,2,3\n"))
	require.Error(t, err)
	assert.Equal(t, apperr.CodeInputFormatError, apperr.GetCode(err))
	assert.Contains(t, err.Error(), "line 2")
}
