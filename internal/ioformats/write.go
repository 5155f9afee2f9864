
package ioformats

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"brightedge-report-api/internal/models"
)

// WriteJSON writes the report as indented JSON.
func WriteJSON(w io.Writer, r models.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

// WriteYAML writes the report as YAML. Crawl sections keep their order.
func WriteYAML(w io.Writer, r models.Report) error {
	crawl := &yaml.Node{Kind: yaml.MappingNode}
	for _, s := range r.CrawlOverview.Sections() {
		var records yaml.Node
		if err := records.Encode(s.Records); err != nil {
			return err
		}
		crawl.Content = append(crawl.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s.Title},
			&records)
	}

	issues := r.IssuesOverview
	if issues == nil {
		issues = models.IssuesResult{}
	}
	var issuesNode yaml.Node
	if err := issuesNode.Encode(issues); err != nil {
		return err
	}

	doc := &yaml.Node{Kind: yaml.MappingNode, Content: []*yaml.Node{
		{Kind: yaml.ScalarNode, Value: "crawl_overview"}, crawl,
		{Kind: yaml.ScalarNode, Value: "issues_overview"}, &issuesNode,
	}}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return err
	}
	return enc.Close()
}

// Write dispatches on format, "json" or "yaml".
func Write(w io.Writer, format string, r models.Report) error {
	switch format {
	case "", "json":
		return WriteJSON(w, r)
	case "yaml", "yml":
		return WriteYAML(w, r)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}
