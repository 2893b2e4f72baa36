package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"brandlens-cli/internal/agent"
	"brandlens-cli/internal/export"
	"brandlens-cli/internal/normalize"
	"brandlens-cli/internal/render"

	"github.com/spf13/cobra"
)

var (
	exportOutput  string
	exportOutFile string
	exportSort    string
	exportDesc    bool
	exportFilter  string
)

var exportCmd = &cobra.Command{
	Use:   "export [saved-response.json]",
	Short: "Re-run normalization over a saved agent response",
	Long: `Runs the normalization engine over a raw agent response body saved with
'research --save-raw' (or '-' for stdin) and writes the brand list as CSV,
JSON, or a table. Useful for re-exporting past results and for debugging
responses the extractor could not handle.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		body, err := readBody(args[0])
		if err != nil {
			return err
		}

		resp := agent.ParseAgentResponse(body)
		brands := normalize.ExtractBrands(resp)
		if len(brands) == 0 {
			return normalize.NewExtractionError(resp)
		}
		meta := countsFor(brands, normalize.ExtractMeta(resp))

		brands = render.Filter(brands, exportFilter)
		brands = render.Sort(brands, render.SortKey(exportSort), exportDesc)

		out := os.Stdout
		if exportOutFile != "" {
			finalPath := resolvePath(exportOutFile)
			if err := os.MkdirAll(filepath.Dir(finalPath), 0755); err != nil {
				return fmt.Errorf("creating result directory: %w", err)
			}
			file, err := os.Create(finalPath)
			if err != nil {
				return fmt.Errorf("creating output file: %w", err)
			}
			defer file.Close()
			out = file
			absPath, _ := filepath.Abs(finalPath)
			fmt.Fprintf(os.Stderr, "Saving output to %s\n", absPath)
		}

		switch strings.ToLower(exportOutput) {
		case "json":
			return export.WriteJSON(out, export.Results{Brands: brands, Meta: meta})
		case "csv":
			return export.WriteCSV(out, brands)
		case "table":
			render.Table(out, brands)
			fmt.Fprintln(os.Stderr, render.MetaLine(meta))
			return nil
		default:
			return fmt.Errorf("unknown output format: %s", exportOutput)
		}
	},
}

func readBody(arg string) ([]byte, error) {
	if arg == "-" {
		return io.ReadAll(os.Stdin)
	}
	body, err := os.ReadFile(arg)
	if err != nil {
		return nil, fmt.Errorf("reading saved response: %w", err)
	}
	return body, nil
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "csv", "Output format: csv, json, table")
	exportCmd.Flags().StringVar(&exportOutFile, "out", "", "Output file path (default saved to 'result/' directory)")
	exportCmd.Flags().StringVar(&exportSort, "sort", "name", "Sort column: name, status, category, confidence")
	exportCmd.Flags().BoolVar(&exportDesc, "desc", false, "Sort descending")
	exportCmd.Flags().StringVar(&exportFilter, "filter", "", "Keep only brands matching this substring")
}
