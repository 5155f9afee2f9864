
package classifier

import (
	"sort"
	"strings"

	"brightedge-report-api/internal/models"
)

// DefaultTag is used for issue names without a "<tag>: " prefix.
const DefaultTag = "General"

// UnknownRank is the rank of any priority label outside High/Medium/Low.
// It sorts after Low.
const UnknownRank = 4

var priorityRank = map[string]int{
	"High":   1,
	"Medium": 2,
	"Low":    3,
}

// SplitIssueName splits "SEO: Missing title" into ("SEO", "Missing title").
// Names without a colon get DefaultTag and are returned untouched.
func SplitIssueName(name string) (tag, issue string) {
	before, after, found := strings.Cut(name, ":")
	if !found {
		return DefaultTag, name
	}
	return strings.TrimSpace(before), strings.TrimSpace(after)
}

// Rank maps a priority label to its sort key. Labels are case-sensitive.
func Rank(priority string) int {
	if r, ok := priorityRank[priority]; ok {
		return r
	}
	return UnknownRank
}

// SortByPriority stably orders issues High, Medium, Low, then anything else.
func SortByPriority(issues []models.IssueRecord) {
	sort.SliceStable(issues, func(i, j int) bool {
		return Rank(issues[i].Priority) < Rank(issues[j].Priority)
	})
}

// Top sorts issues by priority and keeps the first n.
func Top(issues []models.IssueRecord, n int) []models.IssueRecord {
	SortByPriority(issues)
	if n >= 0 && n < len(issues) {
		issues = issues[:n]
	}
	return issues
}
