
package models

import (
	"bytes"
	"encoding/json"
)

// Cell is a single CSV value. Valid is false when the row was too short to
// hold the column at all.
type Cell struct {
	Value string
	Valid bool
}

func (c Cell) Empty() bool { return !c.Valid || c.Value == "" }

// String returns the cell value, "" for a missing cell.
func (c Cell) String() string {
	if !c.Valid {
		return ""
	}
	return c.Value
}

type Row []Cell

// At returns cell i, or a missing cell when the row is shorter.
func (r Row) At(i int) Cell {
	if i < 0 || i >= len(r) {
		return Cell{}
	}
	return r[i]
}

// Blank reports whether every cell in the row is empty or missing.
func (r Row) Blank() bool {
	for _, c := range r {
		if !c.Empty() {
			return false
		}
	}
	return true
}

// Table is a header row plus data rows, every row padded to the header width.
type Table struct {
	Header []string
	Rows   []Row
}

// Column looks up a header name. The match is exact and case-sensitive.
func (t *Table) Column(name string) (int, bool) {
	for i, h := range t.Header {
		if h == name {
			return i, true
		}
	}
	return -1, false
}

// Value returns the named column of row i.
func (t *Table) Value(i int, name string) Cell {
	col, ok := t.Column(name)
	if !ok || i < 0 || i >= len(t.Rows) {
		return Cell{}
	}
	return t.Rows[i].At(col)
}

type CrawlRecord struct {
	Title        string `json:"title" yaml:"title"`
	NumberOfURLs string `json:"number of URLs" yaml:"number of URLs"`
	Percentage   string `json:"percentage" yaml:"percentage"`
}

type CrawlSection struct {
	Title   string
	Records []CrawlRecord
}

// CrawlResult maps section titles to their records. Keys keep the order in
// which a title was first seen; setting an existing title replaces its records.
type CrawlResult struct {
	sections []CrawlSection
	index    map[string]int
}

func (c *CrawlResult) Set(title string, records []CrawlRecord) {
	if records == nil {
		records = []CrawlRecord{}
	}
	if c.index == nil {
		c.index = map[string]int{}
	}
	if i, ok := c.index[title]; ok {
		c.sections[i].Records = records
		return
	}
	c.index[title] = len(c.sections)
	c.sections = append(c.sections, CrawlSection{Title: title, Records: records})
}

func (c CrawlResult) Get(title string) ([]CrawlRecord, bool) {
	i, ok := c.index[title]
	if !ok {
		return nil, false
	}
	return c.sections[i].Records, true
}

func (c CrawlResult) Len() int { return len(c.sections) }

func (c CrawlResult) Titles() []string {
	out := make([]string, 0, len(c.sections))
	for _, s := range c.sections {
		out = append(out, s.Title)
	}
	return out
}

// Sections returns the sections in key order. The slice is a copy.
func (c CrawlResult) Sections() []CrawlSection {
	return append([]CrawlSection(nil), c.sections...)
}

func (c CrawlResult) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, s := range c.sections {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(s.Title)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(s.Records)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

type IssueRecord struct {
	Issue    string `json:"issue" yaml:"issue"`
	Tag      string `json:"tag" yaml:"tag"`
	Priority string `json:"priority" yaml:"priority"`
}

type IssuesResult []IssueRecord

// Report is the merged response of both parsers.
type Report struct {
	CrawlOverview  CrawlResult  `json:"crawl_overview"`
	IssuesOverview IssuesResult `json:"issues_overview"`
}
