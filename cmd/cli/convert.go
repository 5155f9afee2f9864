package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"brightedge-report-api/internal/ioformats"
	"brightedge-report-api/internal/models"
	"brightedge-report-api/internal/parser"
	"brightedge-report-api/internal/source"
)

func newConvertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert a crawl overview and an issues overview export",
		Long: `Convert reads both CSV exports, splits the crawl overview into sections,
keeps the highest priority issues and writes the merged report.`,
		Args: cobra.NoArgs,
		RunE: runConvert,
	}

	cmd.Flags().String("crawl-overview", "", "crawl overview CSV (path or URL)")
	cmd.Flags().String("issues-overview", "", "issues overview CSV (path or URL)")
	cmd.Flags().StringP("output", "o", "", "output file (default stdout)")
	cmd.Flags().String("format", "json", "output format: json or yaml")
	cmd.Flags().Int("top-issues", parser.DefaultTopIssues, "number of issues to keep")
	cmd.Flags().Duration("timeout", 30*time.Second, "timeout for URL inputs")
	cmd.Flags().Int64("max-bytes", 32<<20, "maximum size of each input")
	_ = cmd.MarkFlagRequired("crawl-overview")
	_ = cmd.MarkFlagRequired("issues-overview")
	return cmd
}

func runConvert(cmd *cobra.Command, args []string) error {
	crawlLoc, _ := cmd.Flags().GetString("crawl-overview")
	issuesLoc, _ := cmd.Flags().GetString("issues-overview")
	out, _ := cmd.Flags().GetString("output")
	format, _ := cmd.Flags().GetString("format")
	top, _ := cmd.Flags().GetInt("top-issues")
	timeout, _ := cmd.Flags().GetDuration("timeout")
	maxBytes, _ := cmd.Flags().GetInt64("max-bytes")

	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	client := source.NewHTTPClient(timeout, maxBytes)
	crawl, err := load(ctx, client, parser.CrawlOverviewUpload, crawlLoc)
	if err != nil {
		return err
	}
	issues, err := load(ctx, client, parser.IssuesOverviewUpload, issuesLoc)
	if err != nil {
		return err
	}

	report, err := parser.New(parser.WithTopIssues(top)).Report(crawl, issues)
	if err != nil {
		return err
	}

	if out == "" {
		return ioformats.Write(cmd.OutOrStdout(), format, report)
	}
	return writeFile(out, format, report)
}

func writeFile(path, format string, report models.Report) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	return writeAndClose(f, format, report)
}

// writeAndClose returns the Close error when the write itself succeeded.
func writeAndClose(wc io.WriteCloser, format string, report models.Report) (err error) {
	defer func() {
		if cerr := wc.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close output: %w", cerr)
		}
	}()
	return ioformats.Write(wc, format, report)
}

func load(ctx context.Context, client *source.HTTPClient, name, location string) (*models.Table, error) {
	data, contentType, err := client.Open(ctx, location)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	return ioformats.ReadUpload(name, data, contentType)
}
