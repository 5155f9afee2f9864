
package server

import (
	"html/template"
	"net/http"
)

var indexTmpl = template.Must(template.New("index").Parse(`<!doctype html>
<html lang="en">
<head><meta charset="utf-8"><title>Crawl report converter</title></head>
<body>
<h1>Crawl report converter</h1>
<form action="{{.Action}}" method="post" enctype="multipart/form-data">
  <label>Crawl overview CSV <input type="file" name="crawl_overview" accept=".csv,text/csv" required></label>
  <label>Issues overview CSV <input type="file" name="issues_overview" accept=".csv,text/csv" required></label>
  <button type="submit">Convert</button>
</form>
</body>
</html>
`))

func (s *Server) handleIndex(action string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := indexTmpl.Execute(w, struct{ Action string }{action}); err != nil {
			s.log.Errorf("render index: %v", err)
		}
	}
}
