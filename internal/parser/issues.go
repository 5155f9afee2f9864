
package parser

import (
	"brightedge-report-api/internal/classifier"
	apperr "brightedge-report-api/internal/errors"
	"brightedge-report-api/internal/models"
)

const (
	ColumnIssueName     = "Issue Name"
	ColumnIssuePriority = "Issue Priority"
)

// IssuesOverview turns each row into an issue record, orders them by
// priority (stable) and keeps the top p.TopIssues().
func (p *Parser) IssuesOverview(t *models.Table) (models.IssuesResult, error) {
	if err := checkRectangular(IssuesOverviewUpload, t); err != nil {
		return nil, err
	}

	_, hasName := t.Column(ColumnIssueName)
	_, hasPrio := t.Column(ColumnIssuePriority)
	var missing []string
	if !hasName {
		missing = append(missing, ColumnIssueName)
	}
	if !hasPrio {
		missing = append(missing, ColumnIssuePriority)
	}
	if len(missing) > 0 {
		return nil, apperr.Schema(IssuesOverviewUpload, missing...)
	}

	issues := make([]models.IssueRecord, 0, len(t.Rows))
	for i := range t.Rows {
		tag, issue := classifier.SplitIssueName(t.Value(i, ColumnIssueName).String())
		issues = append(issues, models.IssueRecord{
			Issue:    issue,
			Tag:      tag,
			Priority: t.Value(i, ColumnIssuePriority).String(),
		})
	}

	return models.IssuesResult(classifier.Top(issues, p.topIssues)), nil
}
