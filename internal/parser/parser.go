
// Package parser reshapes the crawl overview and issues overview CSV exports
// of a site audit into typed records.
package parser

import (
	"fmt"

	apperr "brightedge-report-api/internal/errors"
	"brightedge-report-api/internal/models"
)

// DefaultTopIssues is how many issues IssuesOverview keeps after sorting.
const DefaultTopIssues = 15

// Upload names used in error messages.
const (
	CrawlOverviewUpload  = "crawl_overview"
	IssuesOverviewUpload = "issues_overview"
)

// Parser holds no per-call state and is safe for concurrent use.
type Parser struct {
	topIssues int
}

type Option func(*Parser)

// WithTopIssues changes how many issues are kept. Values below zero are ignored.
func WithTopIssues(n int) Option {
	return func(p *Parser) {
		if n >= 0 {
			p.topIssues = n
		}
	}
}

func New(opts ...Option) *Parser {
	p := &Parser{topIssues: DefaultTopIssues}
	for _, o := range opts {
		o(p)
	}
	return p
}

func (p *Parser) TopIssues() int { return p.topIssues }

// Report runs both parsers. Either both succeed or no report is returned.
func (p *Parser) Report(crawl, issues *models.Table) (models.Report, error) {
	c, err := p.CrawlOverview(crawl)
	if err != nil {
		return models.Report{}, err
	}
	i, err := p.IssuesOverview(issues)
	if err != nil {
		return models.Report{}, err
	}
	return models.Report{CrawlOverview: c, IssuesOverview: i}, nil
}

func checkRectangular(upload string, t *models.Table) error {
	if t == nil {
		return apperr.InputFormat(upload, fmt.Errorf("no table"))
	}
	for i, r := range t.Rows {
		if len(r) > len(t.Header) {
			return apperr.InputFormat(upload,
				fmt.Errorf("row %d: expected %d fields, saw %d", i+1, len(t.Header), len(r)))
		}
	}
	return nil
}
