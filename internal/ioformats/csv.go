
package ioformats

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	apperr "brightedge-report-api/internal/errors"
	"brightedge-report-api/internal/models"
)

// ReadTable reads CSV text into a Table. The first record is the header;
// rows shorter than the header are padded with missing cells, longer rows
// are rejected.
func ReadTable(upload string, r io.Reader) (*models.Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	records, err := cr.ReadAll()
	if err != nil {
		return nil, apperr.InputFormat(upload, err)
	}
	if len(records) == 0 {
		return nil, apperr.InputFormat(upload, errors.New("empty csv"))
	}

	header := records[0]
	t := &models.Table{Header: header, Rows: make([]models.Row, 0, len(records)-1)}
	for i, rec := range records[1:] {
		if len(rec) > len(header) {
			// line numbers are 1-based and the header is line 1
			return nil, apperr.InputFormat(upload,
				fmt.Errorf("line %d: expected %d fields, saw %d", i+2, len(header), len(rec)))
		}
		row := make(models.Row, len(header))
		for j, v := range rec {
			row[j] = models.Cell{Value: v, Valid: true}
		}
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}
