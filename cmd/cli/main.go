package main

import (
	"os"

	"github.com/spf13/cobra"
)

// version is set at build time via ldflags.
var version = "dev"

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "report-cli",
		Short: "Convert crawl and issues overview CSV exports to JSON or YAML",
		Long: `report-cli runs the same conversion as the report API without a server.
Inputs may be local paths or http(s) URLs.`,
		SilenceUsage: true,
	}
	root.AddCommand(newConvertCmd(), newVersionCmd())
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
