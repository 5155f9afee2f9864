
package server

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	apperr "brightedge-report-api/internal/errors"
	"brightedge-report-api/internal/ioformats"
	"brightedge-report-api/internal/models"
	"brightedge-report-api/internal/parser"
)

// multipartMemory is how much of the form is held in memory before parts
// spill to temp files.
const multipartMemory = 32 << 20

// POST /process-csv  multipart: crawl_overview=@file issues_overview=@file
func (s *Server) handleProcessCSV(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxUpload)
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			s.writeError(w, apperr.New(apperr.CodeTooLarge,
				fmt.Sprintf("upload exceeds %d bytes", tooLarge.Limit)))
			return
		}
		s.writeError(w, apperr.InvalidInput("multipart parse error: "+err.Error()))
		return
	}
	defer func() { _ = r.MultipartForm.RemoveAll() }()

	crawl, err := s.readUpload(r, parser.CrawlOverviewUpload)
	if err != nil {
		s.writeError(w, err)
		return
	}
	issues, err := s.readUpload(r, parser.IssuesOverviewUpload)
	if err != nil {
		s.writeError(w, err)
		return
	}

	report, err := s.parser.Report(crawl, issues)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.log.Debugf("processed csv: %d crawl sections, %d issues",
		report.CrawlOverview.Len(), len(report.IssuesOverview))
	writeJSON(w, http.StatusOK, report)
}

func (s *Server) readUpload(r *http.Request, name string) (*models.Table, error) {
	f, hdr, err := r.FormFile(name)
	if err != nil {
		return nil, apperr.InvalidInput(fmt.Sprintf("file part '%s' required", name))
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, apperr.Wrap(err, "read "+name)
	}
	return ioformats.ReadUpload(name, data, hdr.Header.Get("Content-Type"))
}

type errorBody struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func statusFor(code string) int {
	switch code {
	case apperr.CodeDecodeError, apperr.CodeInputFormatError, apperr.CodeInvalidInput:
		return http.StatusBadRequest
	case apperr.CodeSchemaError:
		return http.StatusUnprocessableEntity
	case apperr.CodeTooLarge:
		return http.StatusRequestEntityTooLarge
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	code := apperr.GetCode(err)
	status := statusFor(code)
	if status >= http.StatusInternalServerError {
		s.log.Errorf("process csv: %v", err)
	} else {
		s.log.Debugf("rejected upload: %v", err)
	}
	writeJSON(w, status, errorBody{Error: err.Error(), Code: code})
}
