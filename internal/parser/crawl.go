
package parser

import (
	"brightedge-report-api/internal/models"
)

// CrawlOverview splits the crawl overview into sections on blank rows.
//
// The first blank row is taken to be the separator under the report header
// and is not a section boundary. Each remaining section's first non-blank row
// holds the title in its first cell; the rows after it are records of
// (title, number of URLs, percentage). A repeated title replaces the earlier
// section's records.
func (p *Parser) CrawlOverview(t *models.Table) (models.CrawlResult, error) {
	var result models.CrawlResult
	if err := checkRectangular(CrawlOverviewUpload, t); err != nil {
		return result, err
	}

	var cuts []int
	for i, r := range t.Rows {
		if r.Blank() {
			cuts = append(cuts, i)
		}
	}
	if len(cuts) > 0 {
		cuts = cuts[1:]
	}

	start := 0
	for _, end := range cuts {
		addSection(&result, t.Rows[start:end])
		start = end + 1
	}
	addSection(&result, t.Rows[start:])

	return result, nil
}

func addSection(result *models.CrawlResult, segment []models.Row) {
	rows := make([]models.Row, 0, len(segment))
	for _, r := range segment {
		if !r.Blank() {
			rows = append(rows, r)
		}
	}
	if len(rows) == 0 {
		return
	}

	records := make([]models.CrawlRecord, 0, len(rows)-1)
	for _, r := range rows[1:] {
		records = append(records, models.CrawlRecord{
			Title:        r.At(0).String(),
			NumberOfURLs: r.At(1).String(),
			Percentage:   r.At(2).String(),
		})
	}
	result.Set(rows[0].At(0).String(), records)
}
